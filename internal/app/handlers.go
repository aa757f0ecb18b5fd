package app

import (
	httpH "github.com/datainsight/sst-backend/internal/http/handlers"
	"github.com/datainsight/sst-backend/internal/platform/logger"
)

type Handlers struct {
	Auth       *httpH.AuthHandler
	User       *httpH.UserHandler
	Exam       *httpH.ExamHandler
	Assessment *httpH.AssessmentHandler
	Exposure   *httpH.ExposureHandler
	PGR        *httpH.PGRHandler
	Dashboard  *httpH.DashboardHandler
	Health     *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:       httpH.NewAuthHandler(s.Auth),
		User:       httpH.NewUserHandler(s.User),
		Exam:       httpH.NewExamHandler(s.Exam),
		Assessment: httpH.NewAssessmentHandler(s.Assessment),
		Exposure:   httpH.NewExposureHandler(s.Exposure),
		PGR:        httpH.NewPGRHandler(s.PGR),
		Dashboard:  httpH.NewDashboardHandler(s.Dashboard),
		Health:     httpH.NewHealthHandler(),
	}
}

package app

import (
	"gorm.io/gorm"

	"github.com/datainsight/sst-backend/internal/platform/logger"
	"github.com/datainsight/sst-backend/internal/services"
)

type Services struct {
	Auth       services.AuthService
	User       services.UserService
	Exam       services.ExamService
	Assessment services.AssessmentService
	Exposure   services.ExposureService
	PGR        services.PGRService
	Dashboard  services.DashboardService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:       services.NewAuthService(db, log, r.User, r.UserToken, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		User:       services.NewUserService(db, log, r.User),
		Exam:       services.NewExamService(db, log, r.Exam),
		Assessment: services.NewAssessmentService(db, log, r.Assessment),
		Exposure:   services.NewExposureService(db, log, r.Exposure),
		PGR:        services.NewPGRService(db, log, r.PGR),
		Dashboard:  services.NewDashboardService(db, log, r.Dashboard),
	}
}

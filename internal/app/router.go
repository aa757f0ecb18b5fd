package app

import (
	"github.com/gin-gonic/gin"

	httpserver "github.com/datainsight/sst-backend/internal/http"
	"github.com/datainsight/sst-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, handlers Handlers, middleware Middleware) *gin.Engine {
	return httpserver.NewRouter(httpserver.RouterConfig{
		Log:               log,
		AuthHandler:       handlers.Auth,
		AuthMiddleware:    middleware.Auth,
		UserHandler:       handlers.User,
		ExamHandler:       handlers.Exam,
		AssessmentHandler: handlers.Assessment,
		ExposureHandler:   handlers.Exposure,
		PGRHandler:        handlers.PGR,
		DashboardHandler:  handlers.Dashboard,
		HealthHandler:     handlers.Health,
	})
}

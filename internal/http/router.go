package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/datainsight/sst-backend/internal/http/handlers"
	httpMW "github.com/datainsight/sst-backend/internal/http/middleware"
	"github.com/datainsight/sst-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware
	UserHandler    *httpH.UserHandler

	ExamHandler       *httpH.ExamHandler
	AssessmentHandler *httpH.AssessmentHandler
	ExposureHandler   *httpH.ExposureHandler
	PGRHandler        *httpH.PGRHandler
	DashboardHandler  *httpH.DashboardHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/auth/register", cfg.AuthHandler.Register)
			api.POST("/auth/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/auth/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/auth/logout", cfg.AuthHandler.Logout)
		}

		// User (Me)
		if cfg.UserHandler != nil {
			protected.GET("/me", cfg.UserHandler.GetMe)
		}

		// ASO (medical exams)
		if cfg.ExamHandler != nil {
			protected.POST("/aso/records", cfg.ExamHandler.Create)
			protected.GET("/aso/records", cfg.ExamHandler.List)
			protected.DELETE("/aso/records/:id", cfg.ExamHandler.Delete)
		}

		// NR-17 (ergonomic assessments)
		if cfg.AssessmentHandler != nil {
			protected.POST("/nr17/records", cfg.AssessmentHandler.Create)
			protected.GET("/nr17/records", cfg.AssessmentHandler.List)
		}

		// LTCAT (exposure agents)
		if cfg.ExposureHandler != nil {
			protected.POST("/ltcat/records", cfg.ExposureHandler.Create)
			protected.GET("/ltcat/records", cfg.ExposureHandler.List)
			protected.GET("/ltcat/records/:id", cfg.ExposureHandler.Get)
			protected.PUT("/ltcat/records/:id", cfg.ExposureHandler.Update)
			protected.DELETE("/ltcat/records/:id", cfg.ExposureHandler.Delete)
		}

		// PGR (hazard inventory)
		if cfg.PGRHandler != nil {
			protected.POST("/pgr/companies", cfg.PGRHandler.CreateCompany)
			protected.GET("/pgr/companies", cfg.PGRHandler.ListCompanies)
			protected.POST("/pgr/sectors", cfg.PGRHandler.CreateSector)
			protected.GET("/pgr/sectors/by-company/:id", cfg.PGRHandler.ListSectorsByCompany)
			protected.POST("/pgr/hazards", cfg.PGRHandler.CreateHazard)
			protected.GET("/pgr/hazards/by-sector/:id", cfg.PGRHandler.ListHazardsBySector)
			protected.POST("/pgr/risks", cfg.PGRHandler.CreateRisk)
			protected.GET("/pgr/risks/by-hazard/:id", cfg.PGRHandler.ListRisksByHazard)
			protected.POST("/pgr/actions", cfg.PGRHandler.CreateAction)
			protected.GET("/pgr/actions/by-risk/:id", cfg.PGRHandler.ListActionsByRisk)
		}

		// Dashboard
		if cfg.DashboardHandler != nil {
			protected.GET("/dashboard/overview", cfg.DashboardHandler.GetOverview)
			protected.GET("/dashboard/exam-module", cfg.DashboardHandler.GetExamModule)
		}
	}

	return r
}

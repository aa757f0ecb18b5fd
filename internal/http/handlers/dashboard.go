package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/datainsight/sst-backend/internal/http/response"
	"github.com/datainsight/sst-backend/internal/services"
)

// DashboardHandler serves the aggregate summaries. Both endpoints
// always answer 200: partial backend failures surface as zeroed
// fields, never as an error status.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (dh *DashboardHandler) GetOverview(c *gin.Context) {
	response.RespondOK(c, dh.dashboardService.GetOverviewSummary(c.Request.Context()))
}

func (dh *DashboardHandler) GetExamModule(c *gin.Context) {
	response.RespondOK(c, dh.dashboardService.GetExamModuleSummary(c.Request.Context()))
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/http/response"
	"github.com/datainsight/sst-backend/internal/services"
)

type AssessmentHandler struct {
	assessmentService services.AssessmentService
}

func NewAssessmentHandler(assessmentService services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

func (ah *AssessmentHandler) Create(c *gin.Context) {
	var req struct {
		Company         string  `json:"empresa"`
		Sector          string  `json:"setor"`
		JobFunction     string  `json:"funcao"`
		Worker          string  `json:"trabalhador"`
		WorkstationType string  `json:"tipo_posto"`
		AssessmentDate  string  `json:"data_avaliacao"`
		RiskLevel       *string `json:"risco"`
		Score           *int    `json:"score"`
		Notes           string  `json:"observacoes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	assessmentDate, err := parseDate(req.AssessmentDate)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	record := domain.ErgonomicAssessment{
		Company:         req.Company,
		Sector:          req.Sector,
		JobFunction:     req.JobFunction,
		Worker:          req.Worker,
		WorkstationType: req.WorkstationType,
		AssessmentDate:  assessmentDate,
		RiskLevel:       req.RiskLevel,
		Score:           req.Score,
		Notes:           req.Notes,
	}
	created, err := ah.assessmentService.Create(c.Request.Context(), &record)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, created)
}

func (ah *AssessmentHandler) List(c *gin.Context) {
	records, err := ah.assessmentService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, records)
}

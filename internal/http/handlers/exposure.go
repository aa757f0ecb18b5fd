package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/http/response"
	"github.com/datainsight/sst-backend/internal/services"
)

type ExposureHandler struct {
	exposureService services.ExposureService
}

func NewExposureHandler(exposureService services.ExposureService) *ExposureHandler {
	return &ExposureHandler{exposureService: exposureService}
}

type exposureRequest struct {
	Company           *string  `json:"empresa"`
	CNPJ              *string  `json:"cnpj"`
	Sector            *string  `json:"setor"`
	JobFunction       *string  `json:"funcao"`
	GHE               *string  `json:"ghe"`
	Agent             *string  `json:"agente"`
	Classification    *string  `json:"classificacao"`
	Source            *string  `json:"fonte"`
	Medium            *string  `json:"meio"`
	Intensity         *string  `json:"intensidade"`
	Unit              *string  `json:"unidade"`
	DailyHours        *float64 `json:"jornada"`
	DaysPerWeek       *int     `json:"dias_semana"`
	ExposureYears     *float64 `json:"tempo_anos"`
	PPEEffective      *string  `json:"epi_eficaz"`
	RegulatoryFraming *string  `json:"enquadramento"`
	EvaluationDate    *string  `json:"data_avaliacao"`
	Responsible       *string  `json:"responsavel"`
	Notes             *string  `json:"observacoes"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (xh *ExposureHandler) Create(c *gin.Context) {
	var req exposureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	evaluationDate, err := parseOptionalDate(deref(req.EvaluationDate))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	record := domain.ExposureAgentRecord{
		Company:           deref(req.Company),
		CNPJ:              deref(req.CNPJ),
		Sector:            deref(req.Sector),
		JobFunction:       deref(req.JobFunction),
		GHE:               deref(req.GHE),
		Agent:             req.Agent,
		Classification:    deref(req.Classification),
		Source:            deref(req.Source),
		Medium:            deref(req.Medium),
		Intensity:         deref(req.Intensity),
		Unit:              deref(req.Unit),
		DailyHours:        req.DailyHours,
		DaysPerWeek:       req.DaysPerWeek,
		ExposureYears:     req.ExposureYears,
		PPEEffective:      deref(req.PPEEffective),
		RegulatoryFraming: deref(req.RegulatoryFraming),
		EvaluationDate:    evaluationDate,
		Responsible:       deref(req.Responsible),
		Notes:             deref(req.Notes),
	}
	created, err := xh.exposureService.Create(c.Request.Context(), &record)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (xh *ExposureHandler) Get(c *gin.Context) {
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	record, err := xh.exposureService.Get(c.Request.Context(), recordID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, record)
}

func (xh *ExposureHandler) List(c *gin.Context) {
	records, err := xh.exposureService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, records)
}

func (xh *ExposureHandler) Update(c *gin.Context) {
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req exposureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	update := services.ExposureUpdate{
		Company:           req.Company,
		CNPJ:              req.CNPJ,
		Sector:            req.Sector,
		JobFunction:       req.JobFunction,
		GHE:               req.GHE,
		Agent:             req.Agent,
		Classification:    req.Classification,
		Source:            req.Source,
		Medium:            req.Medium,
		Intensity:         req.Intensity,
		Unit:              req.Unit,
		DailyHours:        req.DailyHours,
		DaysPerWeek:       req.DaysPerWeek,
		ExposureYears:     req.ExposureYears,
		PPEEffective:      req.PPEEffective,
		RegulatoryFraming: req.RegulatoryFraming,
		Responsible:       req.Responsible,
		Notes:             req.Notes,
	}
	if req.EvaluationDate != nil {
		evaluationDate, err := parseOptionalDate(*req.EvaluationDate)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		update.EvaluationDate = evaluationDate
	}
	updated, err := xh.exposureService.Update(c.Request.Context(), recordID, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, updated)
}

func (xh *ExposureHandler) Delete(c *gin.Context) {
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := xh.exposureService.Delete(c.Request.Context(), recordID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

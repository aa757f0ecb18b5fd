package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/http/response"
	"github.com/datainsight/sst-backend/internal/services"
)

type ExamHandler struct {
	examService services.ExamService
}

func NewExamHandler(examService services.ExamService) *ExamHandler {
	return &ExamHandler{examService: examService}
}

func (eh *ExamHandler) Create(c *gin.Context) {
	var req struct {
		Name           string `json:"nome"`
		CPF            string `json:"cpf"`
		JobFunction    string `json:"funcao"`
		Sector         string `json:"setor"`
		ExamType       string `json:"tipo_exame"`
		ExamDate       string `json:"data_exame"`
		Physician      string `json:"medico"`
		Result         string `json:"resultado"`
		ExpirationDate string `json:"data_validade"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	examDate, err := parseDate(req.ExamDate)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	expirationDate, err := parseOptionalDate(req.ExpirationDate)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	record := domain.ExamRecord{
		Name:           req.Name,
		CPF:            req.CPF,
		JobFunction:    req.JobFunction,
		Sector:         req.Sector,
		ExamType:       req.ExamType,
		ExamDate:       examDate,
		Physician:      req.Physician,
		Result:         req.Result,
		ExpirationDate: expirationDate,
	}
	created, err := eh.examService.Create(c.Request.Context(), &record)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, created)
}

func (eh *ExamHandler) List(c *gin.Context) {
	records, err := eh.examService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, records)
}

// Delete always answers 200: removing a record that is already gone
// is reported, not failed.
func (eh *ExamHandler) Delete(c *gin.Context) {
	recordID, err := parseIDParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	removed, err := eh.examService.Delete(c.Request.Context(), recordID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true, "removed": removed})
}

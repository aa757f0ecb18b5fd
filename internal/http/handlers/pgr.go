package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/http/response"
	"github.com/datainsight/sst-backend/internal/services"
)

// PGRHandler exposes the hazard-inventory graph. Creation endpoints
// answer 201; child listings hang off their parent's id.
type PGRHandler struct {
	pgrService services.PGRService
}

func NewPGRHandler(pgrService services.PGRService) *PGRHandler {
	return &PGRHandler{pgrService: pgrService}
}

func (ph *PGRHandler) CreateCompany(c *gin.Context) {
	var req struct {
		Name      string `json:"name"`
		CNPJ      string `json:"cnpj"`
		Address   string `json:"endereco"`
		Activity  string `json:"atividade"`
		RiskGrade int    `json:"grau_risco"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	company := domain.Company{
		Name:      req.Name,
		CNPJ:      req.CNPJ,
		Address:   req.Address,
		Activity:  req.Activity,
		RiskGrade: req.RiskGrade,
	}
	created, err := ph.pgrService.CreateCompany(c.Request.Context(), &company)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (ph *PGRHandler) ListCompanies(c *gin.Context) {
	companies, err := ph.pgrService.ListCompanies(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, companies)
}

func (ph *PGRHandler) CreateSector(c *gin.Context) {
	var req struct {
		CompanyID   uint   `json:"company_id"`
		Name        string `json:"nome"`
		Description string `json:"descricao"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	sector := domain.Sector{
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Description: req.Description,
	}
	created, err := ph.pgrService.CreateSector(c.Request.Context(), &sector)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (ph *PGRHandler) ListSectorsByCompany(c *gin.Context) {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	sectors, err := ph.pgrService.ListSectorsByCompany(c.Request.Context(), companyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, sectors)
}

func (ph *PGRHandler) CreateHazard(c *gin.Context) {
	var req struct {
		SectorID    uint   `json:"sector_id"`
		Name        string `json:"nome"`
		Agent       string `json:"agente"`
		Source      string `json:"fonte"`
		Description string `json:"descricao"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	hazard := domain.Hazard{
		SectorID:    req.SectorID,
		Name:        req.Name,
		Agent:       req.Agent,
		Source:      req.Source,
		Description: req.Description,
	}
	created, err := ph.pgrService.CreateHazard(c.Request.Context(), &hazard)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (ph *PGRHandler) ListHazardsBySector(c *gin.Context) {
	sectorID, err := parseIDParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	hazards, err := ph.pgrService.ListHazardsBySector(c.Request.Context(), sectorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, hazards)
}

func (ph *PGRHandler) CreateRisk(c *gin.Context) {
	var req struct {
		HazardID         uint   `json:"hazard_id"`
		Probability      int    `json:"probabilidade"`
		Severity         int    `json:"severidade"`
		ExistingMeasures string `json:"medidas_existentes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	risk := domain.Risk{
		HazardID:         req.HazardID,
		Probability:      req.Probability,
		Severity:         req.Severity,
		ExistingMeasures: req.ExistingMeasures,
	}
	created, err := ph.pgrService.CreateRisk(c.Request.Context(), &risk)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (ph *PGRHandler) ListRisksByHazard(c *gin.Context) {
	hazardID, err := parseIDParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	risks, err := ph.pgrService.ListRisksByHazard(c.Request.Context(), hazardID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, risks)
}

func (ph *PGRHandler) CreateAction(c *gin.Context) {
	var req struct {
		RiskID         uint   `json:"risk_id"`
		Recommendation string `json:"recomendacao"`
		Kind           string `json:"tipo"`
		Deadline       string `json:"prazo"`
		Responsible    string `json:"responsavel"`
		Status         string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	deadline, err := parseOptionalDate(req.Deadline)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	action := domain.ControlAction{
		RiskID:         req.RiskID,
		Recommendation: req.Recommendation,
		Kind:           req.Kind,
		Deadline:       deadline,
		Responsible:    req.Responsible,
		Status:         req.Status,
	}
	created, err := ph.pgrService.CreateAction(c.Request.Context(), &action)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (ph *PGRHandler) ListActionsByRisk(c *gin.Context) {
	riskID, err := parseIDParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	actions, err := ph.pgrService.ListActionsByRisk(c.Request.Context(), riskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, actions)
}

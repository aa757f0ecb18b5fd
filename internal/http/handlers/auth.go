package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datainsight/sst-backend/internal/domain"
	"github.com/datainsight/sst-backend/internal/http/response"
	"github.com/datainsight/sst-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		Name      string `json:"name"`
		Role      string `json:"role"`
		Plan      string `json:"plan"`
		CompanyID *uint  `json:"company_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	user := domain.User{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		Role:      req.Role,
		Plan:      req.Plan,
		CompanyID: req.CompanyID,
	}
	created, err := ah.authService.Register(c.Request.Context(), &user)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"id": created.ID, "email": created.Email, "name": created.Name})
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	result, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondError(c, http.StatusUnauthorized, "invalid_credentials", err)
		return
	}
	response.RespondOK(c, loginPayload(ah, result))
}

func (ah *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	result, err := ah.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.RespondError(c, http.StatusUnauthorized, "refresh_failed", err)
		return
	}
	response.RespondOK(c, loginPayload(ah, result))
}

func (ah *AuthHandler) Logout(c *gin.Context) {
	if err := ah.authService.Logout(c.Request.Context()); err != nil {
		response.RespondError(c, http.StatusBadRequest, "logout_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// loginPayload keeps the login and refresh responses in lockstep with
// what the dashboard frontend stores after sign-in.
func loginPayload(ah *AuthHandler, result *services.LoginResult) gin.H {
	return gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"token_type":    "bearer",
		"expires_in":    int(ah.authService.AccessTTL().Seconds()),
		"name":          result.User.Name,
		"role":          result.User.Role,
		"plan":          result.User.Plan,
		"company_id":    result.User.CompanyID,
	}
}

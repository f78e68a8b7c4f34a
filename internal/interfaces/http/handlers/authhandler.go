package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gramseva/internal/application/admin/usecases"
	"gramseva/internal/shared/config"
	"gramseva/internal/shared/logger"
	"gramseva/internal/shared/utils"
)

type AuthHandler struct {
	loginUC    usecases.LoginExecutor
	sessionCfg *config.SessionConfig
	cookieCfg  config.CookieConfig
	logger     logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	sessionCfg *config.SessionConfig,
	cookieCfg config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		loginUC:    loginUC,
		sessionCfg: sessionCfg,
		cookieCfg:  cookieCfg,
		logger:     logger.NewLogger(),
	}
}

type LoginRequest struct {
	AdminID  string `json:"admin_id" form:"admin_id" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Login handles POST /login. On success the signed session token is set as
// an HttpOnly cookie; the token is also returned for non-browser clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Admin ID and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		AdminID:  req.AdminID,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	utils.SetSessionCookie(c, h.cookieCfg, h.sessionCfg.CookieName, result.Token, maxAge)

	utils.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"admin_id":   result.AdminID,
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
	})
}

// Logout handles POST /logout by clearing the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookieCfg, h.sessionCfg.CookieName)
	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// LoginPage handles GET /login for browser clients.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Log in with your admin credentials", gin.H{
		"fields": []string{"admin_id", "password"},
	})
}

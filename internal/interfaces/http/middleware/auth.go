package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gramseva/internal/infrastructure/auth"
	"gramseva/internal/shared/config"
	"gramseva/internal/shared/utils"
)

const ContextAdminID = "admin_id"

// AdminAuth gates the admin area behind a valid session cookie. Browser
// page requests are redirected to the login form; API requests get a 401.
func AdminAuth(tokens *auth.SessionTokenService, sessionCfg *config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, sessionCfg.CookieName)
		if token == "" {
			reject(c)
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			reject(c)
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Next()
	}
}

func reject(c *gin.Context) {
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
	c.Abort()
}

func wantsHTML(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "text/html")
}

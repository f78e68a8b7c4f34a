package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gramseva/internal/shared/config"
)

// SetSessionCookie sets the admin session token as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, name, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		name,
		token,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearSessionCookie removes the admin session cookie.
func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, name string) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		name,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// GetTokenFromCookie retrieves a token value from the named cookie.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

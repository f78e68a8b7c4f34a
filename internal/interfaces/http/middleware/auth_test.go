package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gramseva/internal/infrastructure/auth"
	"gramseva/internal/shared/config"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *auth.SessionTokenService, *config.SessionConfig) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessionCfg := &config.SessionConfig{
		Secret:     "test-secret",
		ExpHours:   1,
		CookieName: "admin_session",
	}
	tokens := auth.NewSessionTokenService(sessionCfg)

	r := gin.New()
	r.GET("/admin", AdminAuth(tokens, sessionCfg), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextAdminID))
	})
	return r, tokens, sessionCfg
}

func TestAdminAuth(t *testing.T) {
	t.Run("passes a valid session through", func(t *testing.T) {
		router, tokens, cfg := setupAuthRouter(t)

		token, _, err := tokens.Issue("admin")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: token})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin", w.Body.String())
	})

	t.Run("missing cookie gets a 401 for API clients", func(t *testing.T) {
		router, _, _ := setupAuthRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Accept", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing cookie redirects browsers to login", func(t *testing.T) {
		router, _, _ := setupAuthRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("rejects a forged token", func(t *testing.T) {
		router, _, cfg := setupAuthRouter(t)

		forged := auth.NewSessionTokenService(&config.SessionConfig{
			Secret:   "attacker-secret",
			ExpHours: 1,
		})
		token, _, err := forged.Issue("admin")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: token})
		req.Header.Set("Accept", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

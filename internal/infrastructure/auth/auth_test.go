package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gramseva/internal/shared/config"
)

func TestPasswordVerifier_Verify(t *testing.T) {
	v := NewPasswordVerifier()

	t.Run("accepts a matching plain-text credential", func(t *testing.T) {
		assert.True(t, v.Verify("admin123", "admin123"))
		assert.False(t, v.Verify("wrong", "admin123"))
	})

	t.Run("accepts a matching bcrypt hash", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
		require.NoError(t, err)

		assert.True(t, v.Verify("admin123", string(hash)))
		assert.False(t, v.Verify("wrong", string(hash)))
	})

	t.Run("a stored hash never matches as plain text", func(t *testing.T) {
		hash, err := v.Hash("admin123")
		require.NoError(t, err)

		assert.False(t, v.Verify(hash, hash))
	})
}

func TestSessionTokenService(t *testing.T) {
	cfg := &config.SessionConfig{
		Secret:   "test-secret",
		ExpHours: 1,
	}
	svc := NewSessionTokenService(cfg)

	t.Run("round-trips claims", func(t *testing.T) {
		token, expiresAt, err := svc.Issue("admin")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.True(t, expiresAt.After(time.Now()))

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.AdminID)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewSessionTokenService(&config.SessionConfig{Secret: "different", ExpHours: 1})
		token, _, err := other.Issue("admin")
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		assert.Error(t, err)
	})
}

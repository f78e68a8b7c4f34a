package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gramseva/internal/shared/config"
)

type SessionClaims struct {
	AdminID string `json:"admin_id"`
	jwt.RegisteredClaims
}

// SessionTokenService signs and verifies the token carried in the admin
// session cookie.
type SessionTokenService struct {
	secret   []byte
	expHours int
}

func NewSessionTokenService(cfg *config.SessionConfig) *SessionTokenService {
	return &SessionTokenService{
		secret:   []byte(cfg.Secret),
		expHours: cfg.ExpHours,
	}
}

func (s *SessionTokenService) Issue(adminID string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(time.Duration(s.expHours) * time.Hour)

	claims := &SessionClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, expiresAt, nil
}

func (s *SessionTokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid session token")
}

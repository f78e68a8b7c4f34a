package usecases

import (
	"context"
	"strings"
	"time"

	"gramseva/internal/domain/admin"
	"gramseva/internal/shared/errors"
	"gramseva/internal/shared/logger"
)

type LoginCommand struct {
	AdminID  string
	Password string
}

type LoginResult struct {
	AdminID   string
	Token     string
	ExpiresAt time.Time
}

// PasswordVerifier checks a presented password against the stored
// credential. Implementations must take comparable time for unknown
// accounts and wrong passwords.
type PasswordVerifier interface {
	Verify(password, stored string) bool
	// DummyVerify burns the same work as Verify for a nonexistent account.
	DummyVerify(password string)
}

// SessionIssuer mints the signed token carried in the admin session cookie.
type SessionIssuer interface {
	Issue(adminID string) (token string, expiresAt time.Time, err error)
}

type LoginUseCase struct {
	adminRepo admin.Repository
	verifier  PasswordVerifier
	sessions  SessionIssuer
	logger    logger.Interface
}

func NewLoginUseCase(
	adminRepo admin.Repository,
	verifier PasswordVerifier,
	sessions SessionIssuer,
	log logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		adminRepo: adminRepo,
		verifier:  verifier,
		sessions:  sessions,
		logger:    log,
	}
}

// Execute verifies admin credentials. A missing account and a wrong
// password produce the same generic failure; only storage connectivity
// surfaces differently, as a service-unavailable condition.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	adminID := strings.TrimSpace(cmd.AdminID)
	if adminID == "" || cmd.Password == "" {
		return nil, errors.NewUnauthorizedError("Invalid credentials. Please try again.")
	}

	account, err := uc.adminRepo.GetByAdminID(ctx, adminID)
	if err != nil {
		uc.logger.Errorw("admin lookup failed", "error", err)
		return nil, errors.NewUnavailableError("Login is temporarily unavailable. Please try again.")
	}

	if account == nil {
		uc.verifier.DummyVerify(cmd.Password)
		uc.logger.Warnw("failed login attempt", "admin_id", adminID)
		return nil, errors.NewUnauthorizedError("Invalid credentials. Please try again.")
	}

	if !uc.verifier.Verify(cmd.Password, account.Password()) {
		uc.logger.Warnw("failed login attempt", "admin_id", adminID)
		return nil, errors.NewUnauthorizedError("Invalid credentials. Please try again.")
	}

	token, expiresAt, err := uc.sessions.Issue(account.AdminID())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err)
		return nil, errors.NewInternalError("failed to establish session")
	}

	uc.logger.Infow("admin logged in", "admin_id", account.AdminID())

	return &LoginResult{
		AdminID:   account.AdminID(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

package admin

import (
	"context"
	"fmt"
	"time"
)

// Account is an administrator credential pair. The password column holds
// either a bcrypt hash or, for compatibility with the original deployment,
// the plain-text password itself; the verifier accepts both.
type Account struct {
	id        uint
	adminID   string
	password  string
	createdAt time.Time
}

func NewAccount(adminID, password string) (*Account, error) {
	if len(adminID) == 0 {
		return nil, fmt.Errorf("admin ID is required")
	}
	if len(password) == 0 {
		return nil, fmt.Errorf("password is required")
	}
	return &Account{
		adminID:   adminID,
		password:  password,
		createdAt: time.Now(),
	}, nil
}

func ReconstructAccount(id uint, adminID, password string, createdAt time.Time) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	return &Account{
		id:        id,
		adminID:   adminID,
		password:  password,
		createdAt: createdAt,
	}, nil
}

func (a *Account) ID() uint {
	return a.id
}

func (a *Account) AdminID() string {
	return a.adminID
}

func (a *Account) Password() string {
	return a.password
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// Repository looks up administrator accounts. GetByAdminID returns
// (nil, nil) when no account matches; an error means the store itself is
// unavailable, which callers must not present as an authentication failure.
type Repository interface {
	GetByAdminID(ctx context.Context, adminID string) (*Account, error)
}

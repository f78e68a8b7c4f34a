package contact

import (
	"context"
	"time"
)

// EmergencyContact is static reference data: seeded once at first run and
// read-only thereafter.
type EmergencyContact struct {
	ID          uint
	Name        string
	Phone       string
	Email       string
	Description string
	CreatedAt   time.Time
}

type Repository interface {
	List(ctx context.Context) ([]*EmergencyContact, error)
}

package ticket

import "context"

// Repository persists tickets. List returns tickets ordered by creation
// time descending, ties broken by id descending (most recent first); the
// admin dashboard depends on that ordering.
type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context) ([]*Ticket, error)
}

package chat

import "context"

// Repository appends chat exchanges and reads them back for the admin view,
// ordered most recent first (created_at descending, id descending).
type Repository interface {
	Append(ctx context.Context, exchange *Exchange) error
	List(ctx context.Context) ([]*Exchange, error)
}

// UnansweredRepository is a write-only audit sink for inputs that fell
// through to the fallback response. Nothing reads it back; it feeds no
// learning loop.
type UnansweredRepository interface {
	Log(ctx context.Context, query string) error
}

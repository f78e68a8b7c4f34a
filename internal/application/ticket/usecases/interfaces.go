package usecases

import "context"

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context) (*ListTicketsResult, error)
}

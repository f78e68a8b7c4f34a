package usecases

import "context"

type AskChatbotExecutor interface {
	Execute(ctx context.Context, cmd AskChatbotCommand) (*AskChatbotResult, error)
}

type ListExchangesExecutor interface {
	Execute(ctx context.Context) (*ListExchangesResult, error)
}

package usecases

import (
	"context"
	"time"

	"gramseva/internal/domain/chat"
	"gramseva/internal/shared/errors"
	"gramseva/internal/shared/logger"
)

type ExchangeDTO struct {
	ID          uint      `json:"id"`
	UserInput   string    `json:"user_input"`
	BotResponse string    `json:"bot_response"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListExchangesResult struct {
	Exchanges []ExchangeDTO
}

// InputSanitizer strips markup from logged user input before the admin view.
type InputSanitizer interface {
	StripTags(content string) string
}

type ListExchangesUseCase struct {
	chatRepo  chat.Repository
	sanitizer InputSanitizer
	logger    logger.Interface
}

func NewListExchangesUseCase(chatRepo chat.Repository, sanitizer InputSanitizer, log logger.Interface) *ListExchangesUseCase {
	return &ListExchangesUseCase{
		chatRepo:  chatRepo,
		sanitizer: sanitizer,
		logger:    log,
	}
}

func (uc *ListExchangesUseCase) Execute(ctx context.Context) (*ListExchangesResult, error) {
	exchanges, err := uc.chatRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list chat exchanges", "error", err)
		return nil, errors.NewUnavailableError("Chat logs are temporarily unavailable. Please try again.")
	}

	dtos := make([]ExchangeDTO, len(exchanges))
	for i, e := range exchanges {
		input := e.UserInput()
		if uc.sanitizer != nil {
			input = uc.sanitizer.StripTags(input)
		}
		dtos[i] = ExchangeDTO{
			ID:          e.ID(),
			UserInput:   input,
			BotResponse: e.BotResponse(),
			Language:    e.Language(),
			CreatedAt:   e.CreatedAt(),
		}
	}

	return &ListExchangesResult{Exchanges: dtos}, nil
}

package chat

import (
	"fmt"
	"strings"
	"time"
)

// DefaultLanguage is the language recorded when the caller does not ask for
// a translated reply.
const DefaultLanguage = "en"

// Exchange is one (user input, bot response) pair logged from the chatbot
// interface. Exchanges are append-only; they are never updated.
type Exchange struct {
	id          uint
	userInput   string
	botResponse string
	language    string
	createdAt   time.Time
}

func NewExchange(userInput, botResponse, language string) (*Exchange, error) {
	userInput = strings.TrimSpace(userInput)
	if len(userInput) == 0 {
		return nil, fmt.Errorf("user input is required")
	}
	if len(botResponse) == 0 {
		return nil, fmt.Errorf("bot response is required")
	}
	if language == "" {
		language = DefaultLanguage
	}

	return &Exchange{
		userInput:   userInput,
		botResponse: botResponse,
		language:    language,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructExchange(id uint, userInput, botResponse, language string, createdAt time.Time) (*Exchange, error) {
	if id == 0 {
		return nil, fmt.Errorf("exchange ID cannot be zero")
	}
	if language == "" {
		language = DefaultLanguage
	}
	return &Exchange{
		id:          id,
		userInput:   userInput,
		botResponse: botResponse,
		language:    language,
		createdAt:   createdAt,
	}, nil
}

func (e *Exchange) ID() uint {
	return e.id
}

func (e *Exchange) UserInput() string {
	return e.userInput
}

func (e *Exchange) BotResponse() string {
	return e.botResponse
}

func (e *Exchange) Language() string {
	return e.language
}

func (e *Exchange) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Exchange) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("exchange ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("exchange ID cannot be zero")
	}
	e.id = id
	return nil
}

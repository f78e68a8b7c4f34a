package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gramseva/internal/domain/chat"
	"gramseva/internal/domain/chatbot"
	"gramseva/internal/shared/errors"
)

func newTestUseCase(t *testing.T, chatRepo *mockChatRepository, unanswered *mockUnansweredRepository,
	translator *mockTranslator, recorder *mockChatRecorder) *AskChatbotUseCase {
	t.Helper()

	classifier, err := chatbot.NewClassifier()
	require.NoError(t, err)

	return NewAskChatbotUseCase(classifier, chatRepo, unanswered,
		translator, &mockRenderer{}, recorder, testLogger())
}

func TestAskChatbotUseCase_Execute(t *testing.T) {
	t.Run("answers a matched category and logs the exchange", func(t *testing.T) {
		chatRepo := &mockChatRepository{
			AppendFunc: func(ctx context.Context, e *chat.Exchange) error {
				return e.SetID(11)
			},
		}
		recorder := &mockChatRecorder{}
		uc := newTestUseCase(t, chatRepo, newMockUnansweredRepository(), &mockTranslator{}, recorder)

		result, err := uc.Execute(context.Background(), AskChatbotCommand{
			Query: "there is no electricity in our village",
		})

		require.NoError(t, err)
		assert.True(t, result.Matched)
		assert.Equal(t, "electricity", result.Category)
		assert.Equal(t, chat.DefaultLanguage, result.Language)
		assert.Equal(t, uint(11), result.ExchangeID)
		assert.NotEmpty(t, result.ResponseHTML)

		require.Len(t, chatRepo.appended, 1)
		assert.Equal(t, result.Response, chatRepo.appended[0].BotResponse())
		assert.Equal(t, []string{"electricity"}, recorder.categories)
	})

	t.Run("rejects an empty query", func(t *testing.T) {
		uc := newTestUseCase(t, &mockChatRepository{}, newMockUnansweredRepository(),
			&mockTranslator{}, &mockChatRecorder{})

		for _, query := range []string{"", "   ", "\t\n"} {
			result, err := uc.Execute(context.Background(), AskChatbotCommand{Query: query})
			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		}
	})

	t.Run("records an unanswered query on fallback", func(t *testing.T) {
		unanswered := newMockUnansweredRepository()
		chatRepo := &mockChatRepository{}
		recorder := &mockChatRecorder{}
		uc := newTestUseCase(t, chatRepo, unanswered, &mockTranslator{}, recorder)

		result, err := uc.Execute(context.Background(), AskChatbotCommand{
			Query: "xyzzy quux nothing matches this",
		})

		require.NoError(t, err)
		assert.False(t, result.Matched)
		assert.Equal(t, chatbot.FallbackResponse, result.Response)
		assert.Equal(t, 1, recorder.fallbacks)

		select {
		case q := <-unanswered.logged:
			assert.Equal(t, "xyzzy quux nothing matches this", q)
		case <-time.After(2 * time.Second):
			t.Fatal("unanswered query was never logged")
		}

		// The fallback exchange is still logged to the chat history.
		require.Len(t, chatRepo.appended, 1)
	})

	t.Run("failed unanswered write does not fail the request", func(t *testing.T) {
		unanswered := newMockUnansweredRepository()
		unanswered.LogFunc = func(ctx context.Context, query string) error {
			return fmt.Errorf("table locked")
		}
		uc := newTestUseCase(t, &mockChatRepository{}, unanswered, &mockTranslator{}, &mockChatRecorder{})

		result, err := uc.Execute(context.Background(), AskChatbotCommand{Query: "gibberish input"})

		require.NoError(t, err)
		assert.False(t, result.Matched)

		select {
		case <-unanswered.logged:
		case <-time.After(2 * time.Second):
			t.Fatal("unanswered repository was never called")
		}
	})

	t.Run("translates the reply when a language is requested", func(t *testing.T) {
		translator := &mockTranslator{
			TranslateFunc: func(ctx context.Context, text, targetLang string) (string, error) {
				assert.Equal(t, "hi", targetLang)
				return "अनुवादित उत्तर", nil
			},
		}
		chatRepo := &mockChatRepository{}
		uc := newTestUseCase(t, chatRepo, newMockUnansweredRepository(), translator, &mockChatRecorder{})

		result, err := uc.Execute(context.Background(), AskChatbotCommand{
			Query:    "water problem in my area",
			Language: "hi",
		})

		require.NoError(t, err)
		assert.Equal(t, "अनुवादित उत्तर", result.Response)
		assert.Equal(t, "hi", result.Language)

		require.Len(t, chatRepo.appended, 1)
		assert.Equal(t, "hi", chatRepo.appended[0].Language())
	})

	t.Run("keeps English when translation fails", func(t *testing.T) {
		translator := &mockTranslator{
			TranslateFunc: func(ctx context.Context, text, targetLang string) (string, error) {
				return "", fmt.Errorf("endpoint unreachable")
			},
		}
		uc := newTestUseCase(t, &mockChatRepository{}, newMockUnansweredRepository(),
			translator, &mockChatRecorder{})

		result, err := uc.Execute(context.Background(), AskChatbotCommand{
			Query:    "water problem in my area",
			Language: "hi",
		})

		require.NoError(t, err)
		assert.Equal(t, chat.DefaultLanguage, result.Language)
		assert.NotEmpty(t, result.Response)
	})

	t.Run("skips translation for the default language", func(t *testing.T) {
		translator := &mockTranslator{}
		uc := newTestUseCase(t, &mockChatRepository{}, newMockUnansweredRepository(),
			translator, &mockChatRecorder{})

		_, err := uc.Execute(context.Background(), AskChatbotCommand{
			Query:    "water problem",
			Language: "en",
		})

		require.NoError(t, err)
		assert.Equal(t, 0, translator.calls)
	})

	t.Run("surfaces chat log write failures as unavailable", func(t *testing.T) {
		chatRepo := &mockChatRepository{
			AppendFunc: func(ctx context.Context, e *chat.Exchange) error {
				return fmt.Errorf("disk full")
			},
		}
		uc := newTestUseCase(t, chatRepo, newMockUnansweredRepository(), &mockTranslator{}, &mockChatRecorder{})

		result, err := uc.Execute(context.Background(), AskChatbotCommand{Query: "water problem"})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.IsUnavailableError(err))
		assert.NotContains(t, err.Error(), "disk full")
	})
}

func TestListExchangesUseCase_Execute(t *testing.T) {
	t.Run("sanitizes logged input", func(t *testing.T) {
		created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		chatRepo := &mockChatRepository{
			ListFunc: func(ctx context.Context) ([]*chat.Exchange, error) {
				e, err := chat.ReconstructExchange(1, "<b>water</b> issue", "reply", "en", created)
				require.NoError(t, err)
				return []*chat.Exchange{e}, nil
			},
		}
		sanitizer := &mockInputSanitizer{
			StripTagsFunc: func(content string) string {
				return "water issue"
			},
		}

		uc := NewListExchangesUseCase(chatRepo, sanitizer, testLogger())
		result, err := uc.Execute(context.Background())

		require.NoError(t, err)
		require.Len(t, result.Exchanges, 1)
		assert.Equal(t, "water issue", result.Exchanges[0].UserInput)
		assert.Equal(t, created, result.Exchanges[0].CreatedAt)
	})

	t.Run("surfaces storage failures as unavailable", func(t *testing.T) {
		chatRepo := &mockChatRepository{
			ListFunc: func(ctx context.Context) ([]*chat.Exchange, error) {
				return nil, fmt.Errorf("database locked")
			},
		}

		uc := NewListExchangesUseCase(chatRepo, &mockInputSanitizer{}, testLogger())
		result, err := uc.Execute(context.Background())

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.IsUnavailableError(err))
	})
}

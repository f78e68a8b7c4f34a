package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gramseva/internal/application/chat/usecases"
	"gramseva/internal/shared/errors"
)

type mockAskChatbotExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.AskChatbotCommand) (*usecases.AskChatbotResult, error)
}

func (m *mockAskChatbotExecutor) Execute(ctx context.Context, cmd usecases.AskChatbotCommand) (*usecases.AskChatbotResult, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return &usecases.AskChatbotResult{
		Response: "canned reply",
		Category: "water",
		Language: "en",
		Matched:  true,
	}, nil
}

func setupChatbotRouter(executor *mockAskChatbotExecutor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chatbot", NewChatbotHandler(executor).Ask)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatbotHandler_Ask(t *testing.T) {
	t.Run("returns the classified reply", func(t *testing.T) {
		router := setupChatbotRouter(&mockAskChatbotExecutor{})

		w := postJSON(t, router, "/chatbot", `{"query": "water problem"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Success bool `json:"success"`
			Data    struct {
				Response string `json:"response"`
				Category string `json:"category"`
				Matched  bool   `json:"matched"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, "canned reply", response.Data.Response)
		assert.Equal(t, "water", response.Data.Category)
		assert.True(t, response.Data.Matched)
	})

	t.Run("missing query is a 400", func(t *testing.T) {
		executorCalled := false
		executor := &mockAskChatbotExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.AskChatbotCommand) (*usecases.AskChatbotResult, error) {
				executorCalled = true
				return nil, nil
			},
		}
		router := setupChatbotRouter(executor)

		for _, body := range []string{`{}`, `{"query": ""}`, `not json`} {
			w := postJSON(t, router, "/chatbot", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		}
		assert.False(t, executorCalled)
	})

	t.Run("whitespace query is a 400 from the use case", func(t *testing.T) {
		executor := &mockAskChatbotExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.AskChatbotCommand) (*usecases.AskChatbotResult, error) {
				return nil, errors.NewValidationError("query is required")
			},
		}
		router := setupChatbotRouter(executor)

		w := postJSON(t, router, "/chatbot", `{"query": "   "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("passes the requested language through", func(t *testing.T) {
		var gotLanguage string
		executor := &mockAskChatbotExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.AskChatbotCommand) (*usecases.AskChatbotResult, error) {
				gotLanguage = cmd.Language
				return &usecases.AskChatbotResult{Response: "r", Category: "water", Language: cmd.Language, Matched: true}, nil
			},
		}
		router := setupChatbotRouter(executor)

		w := postJSON(t, router, "/chatbot", `{"query": "pani", "language": "hi"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hi", gotLanguage)
	})
}

package usecases

import (
	"context"

	"gramseva/internal/domain/chat"
	"gramseva/internal/shared/logger"
)

type mockChatRepository struct {
	AppendFunc func(ctx context.Context, e *chat.Exchange) error
	ListFunc   func(ctx context.Context) ([]*chat.Exchange, error)
	appended   []*chat.Exchange
}

func (m *mockChatRepository) Append(ctx context.Context, e *chat.Exchange) error {
	m.appended = append(m.appended, e)
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, e)
	}
	return nil
}

func (m *mockChatRepository) List(ctx context.Context) ([]*chat.Exchange, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// mockUnansweredRepository signals on logged so tests can wait for the
// fire-and-forget write.
type mockUnansweredRepository struct {
	LogFunc func(ctx context.Context, query string) error
	logged  chan string
}

func newMockUnansweredRepository() *mockUnansweredRepository {
	return &mockUnansweredRepository{logged: make(chan string, 1)}
}

func (m *mockUnansweredRepository) Log(ctx context.Context, query string) error {
	if m.LogFunc != nil {
		err := m.LogFunc(ctx, query)
		m.logged <- query
		return err
	}
	m.logged <- query
	return nil
}

type mockTranslator struct {
	TranslateFunc func(ctx context.Context, text, targetLang string) (string, error)
	calls         int
}

func (m *mockTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	m.calls++
	if m.TranslateFunc != nil {
		return m.TranslateFunc(ctx, text, targetLang)
	}
	return text, nil
}

type mockRenderer struct {
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

type mockChatRecorder struct {
	categories []string
	fallbacks  int
}

func (m *mockChatRecorder) RecordChatRequest(category string, matched bool) {
	m.categories = append(m.categories, category)
	if !matched {
		m.fallbacks++
	}
}

type mockInputSanitizer struct {
	StripTagsFunc func(content string) string
}

func (m *mockInputSanitizer) StripTags(content string) string {
	if m.StripTagsFunc != nil {
		return m.StripTagsFunc(content)
	}
	return content
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

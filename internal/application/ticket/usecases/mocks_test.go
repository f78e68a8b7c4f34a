package usecases

import (
	"context"

	"gramseva/internal/domain/ticket"
	"gramseva/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc    func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// mockNotifier signals on notified so tests can wait for the fire-and-forget
// email send.
type mockNotifier struct {
	NotifyNewTicketFunc func(name, category, location, issue string) error
	notified            chan string
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{notified: make(chan string, 1)}
}

func (m *mockNotifier) NotifyNewTicket(name, category, location, issue string) error {
	var err error
	if m.NotifyNewTicketFunc != nil {
		err = m.NotifyNewTicketFunc(name, category, location, issue)
	}
	m.notified <- name
	return err
}

type mockRecorder struct {
	ticketsCreated int
}

func (m *mockRecorder) RecordTicketCreated() {
	m.ticketsCreated++
}

type mockSanitizer struct {
	StripTagsFunc func(content string) string
}

func (m *mockSanitizer) StripTags(content string) string {
	if m.StripTagsFunc != nil {
		return m.StripTagsFunc(content)
	}
	return content
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

package usecases

import (
	"context"
	"strings"
	"time"

	"gramseva/internal/domain/ticket"
	"gramseva/internal/shared/errors"
	"gramseva/internal/shared/goroutine"
	"gramseva/internal/shared/logger"
)

type CreateTicketCommand struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Category string
	Issue    string
	// FilePath is set by the handler only after the uploaded attachment was
	// written to storage; the ticket row and the file are two independent
	// operations with no compensating rollback.
	FilePath string
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	Priority  string
	CreatedAt time.Time
}

// TicketNotifier announces new tickets to the administrator. Notification
// is best-effort; failures never fail ticket creation.
type TicketNotifier interface {
	NotifyNewTicket(name, category, location, issue string) error
}

// TicketRecorder counts submitted tickets for the metrics endpoint.
type TicketRecorder interface {
	RecordTicketCreated()
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	notifier   TicketNotifier
	recorder   TicketRecorder
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	notifier TicketNotifier,
	recorder TicketRecorder,
	log logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		recorder:   recorder,
		logger:     log,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	var email, phone *string
	if strings.TrimSpace(cmd.Email) != "" {
		e := cmd.Email
		email = &e
	}
	if strings.TrimSpace(cmd.Phone) != "" {
		p := cmd.Phone
		phone = &p
	}

	newTicket, err := ticket.NewTicket(cmd.Name, cmd.Location, cmd.Category, cmd.Issue, email, phone)
	if err != nil {
		uc.logger.Warnw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.FilePath != "" {
		if err := newTicket.AttachFile(cmd.FilePath); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewUnavailableError("Could not submit your request right now. Please try again.")
	}

	if uc.recorder != nil {
		uc.recorder.RecordTicketCreated()
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"category", newTicket.Category(),
		"location", newTicket.Location())

	if uc.notifier != nil {
		uc.notifyAdmin(newTicket)
	}

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		Priority:  newTicket.Priority().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

// notifyAdmin sends the new-ticket email off the request path. A slow or
// unreachable SMTP server must never stall the submission response.
func (uc *CreateTicketUseCase) notifyAdmin(t *ticket.Ticket) {
	id := t.ID()
	name, category, location, issue := t.Name(), t.Category(), t.Location(), t.Issue()
	goroutine.SafeGo(uc.logger, "notify-new-ticket", func() {
		if err := uc.notifier.NotifyNewTicket(name, category, location, issue); err != nil {
			uc.logger.Warnw("ticket notification failed", "error", err, "ticket_id", id)
		}
	})
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return errors.NewValidationError("name is required")
	}
	if strings.TrimSpace(cmd.Location) == "" {
		return errors.NewValidationError("location is required")
	}
	if strings.TrimSpace(cmd.Category) == "" {
		return errors.NewValidationError("category is required")
	}
	if strings.TrimSpace(cmd.Issue) == "" {
		return errors.NewValidationError("issue description is required")
	}
	if email := strings.TrimSpace(cmd.Email); email != "" && !strings.Contains(email, "@") {
		return errors.NewValidationError("invalid email address")
	}
	return nil
}

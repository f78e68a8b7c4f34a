package usecases

import (
	"context"
	"time"

	"gramseva/internal/domain/ticket"
	"gramseva/internal/shared/errors"
	"gramseva/internal/shared/logger"
)

type TicketDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Location  string    `json:"location"`
	Category  string    `json:"category"`
	Issue     string    `json:"issue"`
	FilePath  *string   `json:"file_path"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListTicketsResult struct {
	Tickets []TicketDTO
}

// TextSanitizer strips markup from user-submitted text before it is shown
// on the admin dashboard.
type TextSanitizer interface {
	StripTags(content string) string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	sanitizer  TextSanitizer
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	sanitizer TextSanitizer,
	log logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		sanitizer:  sanitizer,
		logger:     log,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context) (*ListTicketsResult, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewUnavailableError("Tickets are temporarily unavailable. Please try again.")
	}

	dtos := make([]TicketDTO, len(tickets))
	for i, t := range tickets {
		dtos[i] = uc.toDTO(t)
	}

	return &ListTicketsResult{Tickets: dtos}, nil
}

func (uc *ListTicketsUseCase) toDTO(t *ticket.Ticket) TicketDTO {
	dto := TicketDTO{
		ID:        t.ID(),
		Name:      t.Name(),
		Email:     t.Email(),
		Phone:     t.Phone(),
		Location:  t.Location(),
		Category:  t.Category(),
		Issue:     t.Issue(),
		FilePath:  t.FilePath(),
		Status:    t.Status().String(),
		Priority:  t.Priority().String(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
	if uc.sanitizer != nil {
		dto.Name = uc.sanitizer.StripTags(dto.Name)
		dto.Location = uc.sanitizer.StripTags(dto.Location)
		dto.Category = uc.sanitizer.StripTags(dto.Category)
		dto.Issue = uc.sanitizer.StripTags(dto.Issue)
	}
	return dto
}

package mappers

import (
	"time"

	"gramseva/internal/domain/ticket"
	vo "gramseva/internal/domain/ticket/valueobjects"
	"gramseva/internal/infrastructure/persistence/models"
)

type TicketMapper struct{}

func NewTicketMapper() TicketMapper {
	return TicketMapper{}
}

func (TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
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
		CreatedAt: t.CreatedAt().UnixMilli(),
		UpdatedAt: t.UpdatedAt().UnixMilli(),
	}
}

func (TicketMapper) ToDomain(m *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewStatus(m.Status)
	if err != nil {
		return nil, err
	}
	priority, err := vo.NewPriority(m.Priority)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructTicket(
		m.ID,
		m.Name,
		m.Email,
		m.Phone,
		m.Location,
		m.Category,
		m.Issue,
		m.FilePath,
		status,
		priority,
		time.UnixMilli(m.CreatedAt),
		time.UnixMilli(m.UpdatedAt),
	)
}

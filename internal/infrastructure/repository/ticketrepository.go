package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gramseva/internal/domain/ticket"
	"gramseva/internal/infrastructure/persistence/mappers"
	"gramseva/internal/infrastructure/persistence/models"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List returns all tickets, most recent first. The admin view depends on
// this ordering: created_at descending with id descending as tiebreak.
func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel

	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}

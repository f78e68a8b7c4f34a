package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gramseva/internal/domain/chat"
	"gramseva/internal/infrastructure/persistence/models"
)

type ChatLogRepository struct {
	db *gorm.DB
}

func NewChatLogRepository(db *gorm.DB) *ChatLogRepository {
	return &ChatLogRepository{db: db}
}

func (r *ChatLogRepository) Append(ctx context.Context, e *chat.Exchange) error {
	model := &models.ChatLogModel{
		UserInput:   e.UserInput(),
		BotResponse: e.BotResponse(),
		Language:    e.Language(),
		CreatedAt:   e.CreatedAt().UnixMilli(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append chat exchange: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *ChatLogRepository) List(ctx context.Context) ([]*chat.Exchange, error) {
	var logModels []models.ChatLogModel

	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&logModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list chat exchanges: %w", err)
	}

	exchanges := make([]*chat.Exchange, len(logModels))
	for i, model := range logModels {
		e, err := chat.ReconstructExchange(
			model.ID,
			model.UserInput,
			model.BotResponse,
			model.Language,
			time.UnixMilli(model.CreatedAt),
		)
		if err != nil {
			return nil, err
		}
		exchanges[i] = e
	}

	return exchanges, nil
}

// UnansweredQueryRepository is the write-only audit sink for inputs that
// got the fallback response.
type UnansweredQueryRepository struct {
	db *gorm.DB
}

func NewUnansweredQueryRepository(db *gorm.DB) *UnansweredQueryRepository {
	return &UnansweredQueryRepository{db: db}
}

func (r *UnansweredQueryRepository) Log(ctx context.Context, query string) error {
	model := &models.UnansweredQueryModel{
		Query: query,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to log unanswered query: %w", err)
	}

	return nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gramseva/internal/domain/contact"
	"gramseva/internal/infrastructure/persistence/models"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// List returns contacts most recent first, created_at descending with id
// descending as tiebreak, the same ordering every other list read uses.
func (r *ContactRepository) List(ctx context.Context) ([]*contact.EmergencyContact, error) {
	var rows []models.EmergencyContactModel

	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list emergency contacts: %w", err)
	}

	contacts := make([]*contact.EmergencyContact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, &contact.EmergencyContact{
			ID:          row.ID,
			Name:        row.Name,
			Phone:       row.Phone,
			Email:       row.Email,
			Description: row.Description,
			CreatedAt:   time.UnixMilli(row.CreatedAt),
		})
	}
	return contacts, nil
}

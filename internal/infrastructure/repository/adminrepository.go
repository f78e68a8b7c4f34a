package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gramseva/internal/domain/admin"
	"gramseva/internal/infrastructure/persistence/models"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByAdminID returns (nil, nil) when no account matches. An error means
// the store itself failed, which callers surface as service-unavailable
// rather than an authentication failure.
func (r *AdminRepository) GetByAdminID(ctx context.Context, adminID string) (*admin.Account, error) {
	var model models.AdminModel

	err := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	return admin.ReconstructAccount(
		model.ID,
		model.AdminID,
		model.Password,
		time.UnixMilli(model.CreatedAt),
	)
}

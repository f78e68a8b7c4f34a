package migration

import (
	"fmt"

	"gorm.io/gorm"

	"gramseva/internal/infrastructure/persistence/models"
	"gramseva/internal/shared/logger"
)

// defaultContacts is the emergency directory shipped with a fresh install.
// Numbers are the national Indian helplines.
var defaultContacts = []models.EmergencyContactModel{
	{Name: "Police", Phone: "100", Description: "Police emergency helpline"},
	{Name: "Fire Brigade", Phone: "101", Description: "Fire and rescue services"},
	{Name: "Ambulance", Phone: "108", Description: "Medical emergency services"},
	{Name: "Women Helpline", Phone: "1091", Description: "Women in distress helpline"},
	{Name: "Child Helpline", Phone: "1098", Description: "Child protection services"},
}

// Seed inserts the default admin account and emergency contacts on a fresh
// database. Tables that already hold rows are left untouched, so re-running
// it is safe.
func Seed(db *gorm.DB, adminID, adminPassword string) error {
	log := logger.NewLogger().With("component", "migration.seed")

	var adminCount int64
	if err := db.Model(&models.AdminModel{}).Count(&adminCount).Error; err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if adminCount == 0 {
		account := models.AdminModel{
			AdminID:  adminID,
			Password: adminPassword,
		}
		if err := db.Create(&account).Error; err != nil {
			return fmt.Errorf("failed to seed admin account: %w", err)
		}
		log.Infow("seeded default admin account", "admin_id", adminID)
	}

	var contactCount int64
	if err := db.Model(&models.EmergencyContactModel{}).Count(&contactCount).Error; err != nil {
		return fmt.Errorf("failed to count emergency contacts: %w", err)
	}
	if contactCount == 0 {
		contacts := make([]models.EmergencyContactModel, len(defaultContacts))
		copy(contacts, defaultContacts)
		if err := db.Create(&contacts).Error; err != nil {
			return fmt.Errorf("failed to seed emergency contacts: %w", err)
		}
		log.Infow("seeded emergency contacts", "count", len(contacts))
	}

	return nil
}

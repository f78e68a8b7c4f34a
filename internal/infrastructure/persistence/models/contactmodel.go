package models

type EmergencyContactModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Phone       string `gorm:"size:30;not null"`
	Email       string `gorm:"size:200"`
	Description string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (EmergencyContactModel) TableName() string {
	return "emergency_contacts"
}

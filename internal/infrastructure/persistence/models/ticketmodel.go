package models

type TicketModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:100;not null"`
	Email     *string `gorm:"size:200"`
	Phone     *string `gorm:"size:30"`
	Location  string  `gorm:"size:200;not null"`
	Category  string  `gorm:"size:50;not null;index"`
	Issue     string  `gorm:"type:text;not null"`
	FilePath  *string `gorm:"size:500"`
	Status    string  `gorm:"size:20;not null;default:pending;index"`
	Priority  string  `gorm:"size:20;not null;default:medium"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

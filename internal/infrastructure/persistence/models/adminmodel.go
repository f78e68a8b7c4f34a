package models

type AdminModel struct {
	ID        uint   `gorm:"primaryKey"`
	AdminID   string `gorm:"uniqueIndex;size:50;not null"`
	Password  string `gorm:"size:200;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AdminModel) TableName() string {
	return "admins"
}

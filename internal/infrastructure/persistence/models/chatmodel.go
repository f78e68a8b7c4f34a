package models

type ChatLogModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserInput   string `gorm:"type:text;not null"`
	BotResponse string `gorm:"type:text;not null"`
	Language    string `gorm:"size:10;not null;default:en"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ChatLogModel) TableName() string {
	return "chat_logs"
}

type UnansweredQueryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Query     string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (UnansweredQueryModel) TableName() string {
	return "unanswered_queries"
}

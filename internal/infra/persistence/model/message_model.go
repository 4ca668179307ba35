package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Content        string    `gorm:"type:text;not null"`
	SentAt         time.Time `gorm:"index"`
	IsRead         bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}

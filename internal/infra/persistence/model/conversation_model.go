package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel mirrors the 'conversations' table. PairKey is the canonical
// ordering of the two participant IDs; its unique index guarantees at most one
// conversation per pair of users regardless of who initiated.
type ConversationModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PairKey             string    `gorm:"type:varchar(80);unique;not null"`
	InitiatorID         uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Status              string    `gorm:"type:varchar(16);not null;index"`
	IntroductoryMessage string    `gorm:"type:text"`
	CreatedAt           time.Time
	LastMessageAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BankLink is a connected institution. Cursor is the provider's incremental
// sync position; an empty cursor means the next sync starts from scratch.
type BankLink struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	InstitutionName string     `gorm:"type:varchar(255)" json:"institution_name"`
	ItemID          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"item_id"`
	AccessToken     string     `gorm:"type:text;not null" json:"-"`
	Cursor          string     `gorm:"type:text" json:"-"`
	LastSyncAt      *time.Time `json:"last_sync_at,omitempty"`
	LastError       string     `gorm:"type:text" json:"last_error,omitempty"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`
}

func (l *BankLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (l *BankLink) TableName() string {
	return "bank_links"
}

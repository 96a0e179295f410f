package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const DefaultBillCategory = "Other"

var (
	ErrBillNameRequired = errors.New("bill name is required")
	ErrInvalidDueDay    = errors.New("due day must be between 1 and 31")
	ErrNegativeAmount   = errors.New("amount must not be negative")
)

// Bill is a user-declared recurring obligation due on the same day each month.
type Bill struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	DueDay          int             `gorm:"not null" json:"due_day"`
	Category        string          `gorm:"type:varchar(50);not null;default:'Other'" json:"category"`
	AutoDetected    bool            `gorm:"not null;default:false" json:"auto_detected"`
	SourceSignature string          `gorm:"type:varchar(255);index" json:"source_signature,omitempty"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Category == "" {
		b.Category = DefaultBillCategory
	}
	return b.Validate()
}

func (b *Bill) BeforeUpdate(tx *gorm.DB) error {
	return b.Validate()
}

func (b *Bill) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrBillNameRequired
	}
	if b.DueDay < 1 || b.DueDay > 31 {
		return ErrInvalidDueDay
	}
	if b.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

func (b *Bill) TableName() string {
	return "bills"
}

// DueDateIn returns the bill's due date in the given month. A due day past
// the end of a short month falls on its last day.
func (b *Bill) DueDateIn(year int, month time.Month) time.Time {
	day := b.DueDay
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

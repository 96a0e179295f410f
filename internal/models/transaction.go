package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionIDRequired = errors.New("transaction id is required")
	ErrTransactionNoName     = errors.New("transaction needs a name or merchant name")
)

// Transaction is a normalized bank transaction. ID is the provider's
// transaction id and Amount is signed: negative is money leaving the account.
// Only Category and CategorizedAt change after the row is written.
type Transaction struct {
	ID            string          `gorm:"type:varchar(100);primaryKey" json:"id"`
	AccountID     string          `gorm:"type:varchar(100);index" json:"account_id,omitempty"`
	Date          time.Time       `gorm:"type:date;not null;index" json:"date"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Name          string          `gorm:"type:text" json:"name"`
	MerchantName  string          `gorm:"type:varchar(255)" json:"merchant_name,omitempty"`
	Category      Category        `gorm:"type:varchar(20);index" json:"category,omitempty"`
	CategorizedAt *time.Time      `json:"categorized_at,omitempty"`
	CreatedAt     time.Time       `gorm:"not null" json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	return t.Validate()
}

func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrTransactionIDRequired
	}
	if strings.TrimSpace(t.Name) == "" && strings.TrimSpace(t.MerchantName) == "" {
		return ErrTransactionNoName
	}
	if t.Category != "" && !t.Category.IsValid() {
		return ErrInvalidCategory
	}
	return nil
}

func (t *Transaction) TableName() string {
	return "transactions"
}

// IsOutflow reports whether money left the account.
func (t *Transaction) IsOutflow() bool {
	return t.Amount.IsNegative()
}

// Label prefers the merchant name over the raw description.
func (t *Transaction) Label() string {
	if m := strings.TrimSpace(t.MerchantName); m != "" {
		return m
	}
	return strings.TrimSpace(t.Name)
}

// SearchText is the lowercased merchant and description used for keyword matching.
func (t *Transaction) SearchText() string {
	return strings.ToLower(strings.TrimSpace(t.MerchantName + " " + t.Name))
}

// IsUncategorized reports whether no category has been assigned yet.
func (t *Transaction) IsUncategorized() bool {
	return t.Category == ""
}

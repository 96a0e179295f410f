package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrDebtNameRequired = errors.New("debt account name is required")
	ErrInvalidAPR       = errors.New("apr must be between 0 and 100")
)

// DebtAccount is a loan or card balance the user is paying down. APR is a percentage.
type DebtAccount struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Balance        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance"`
	APR            decimal.Decimal `gorm:"column:apr;type:decimal(5,2);not null;default:0" json:"apr"`
	MinimumPayment decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"minimum_payment"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

func (d *DebtAccount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return d.Validate()
}

func (d *DebtAccount) BeforeUpdate(tx *gorm.DB) error {
	return d.Validate()
}

func (d *DebtAccount) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrDebtNameRequired
	}
	if d.Balance.IsNegative() || d.MinimumPayment.IsNegative() {
		return ErrNegativeAmount
	}
	if d.APR.IsNegative() || d.APR.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidAPR
	}
	return nil
}

func (d *DebtAccount) TableName() string {
	return "debt_accounts"
}

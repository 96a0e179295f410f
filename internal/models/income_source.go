package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeFrequency is how often a manual income source pays out.
type IncomeFrequency string

const (
	FrequencyWeekly      IncomeFrequency = "weekly"
	FrequencyBiweekly    IncomeFrequency = "biweekly"
	FrequencySemimonthly IncomeFrequency = "semimonthly"
	FrequencyMonthly     IncomeFrequency = "monthly"
	FrequencyYearly      IncomeFrequency = "yearly"
)

var (
	ErrInvalidFrequency        = errors.New("invalid income frequency")
	ErrIncomeNameRequired      = errors.New("income source name is required")
	ErrIncomeAmountNotPositive = errors.New("income amount must be positive")
)

func (f IncomeFrequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencySemimonthly, FrequencyMonthly, FrequencyYearly:
		return true
	default:
		return false
	}
}

// IncomeSource is a user-declared income stream. When any exist they replace
// the transaction-based income estimate.
type IncomeSource struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Frequency IncomeFrequency `gorm:"type:varchar(20);not null;default:'monthly'" json:"frequency"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

func (i *IncomeSource) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Frequency == "" {
		i.Frequency = FrequencyMonthly
	}
	return i.Validate()
}

func (i *IncomeSource) BeforeUpdate(tx *gorm.DB) error {
	return i.Validate()
}

func (i *IncomeSource) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrIncomeNameRequired
	}
	if !i.Amount.IsPositive() {
		return ErrIncomeAmountNotPositive
	}
	if !i.Frequency.IsValid() {
		return ErrInvalidFrequency
	}
	return nil
}

func (i *IncomeSource) TableName() string {
	return "income_sources"
}

// MonthlyEquivalent converts the payout to an average calendar month.
func (i *IncomeSource) MonthlyEquivalent() decimal.Decimal {
	twelve := decimal.NewFromInt(12)
	switch i.Frequency {
	case FrequencyWeekly:
		return i.Amount.Mul(decimal.NewFromInt(52)).Div(twelve)
	case FrequencyBiweekly:
		return i.Amount.Mul(decimal.NewFromInt(26)).Div(twelve)
	case FrequencySemimonthly:
		return i.Amount.Mul(decimal.NewFromInt(2))
	case FrequencyYearly:
		return i.Amount.Div(twelve)
	default:
		return i.Amount
	}
}

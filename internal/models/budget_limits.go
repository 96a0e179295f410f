package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetLimitsID is the primary key of the single budget row.
const BudgetLimitsID = 1

// BudgetLimits are the user's monthly allocations. Savings is a target, the
// other two are spending caps. Zero means "not set".
type BudgetLimits struct {
	ID            int             `gorm:"primaryKey" json:"-"`
	Groceries     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"groceries"`
	Savings       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"savings"`
	Miscellaneous decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"miscellaneous"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (b *BudgetLimits) TableName() string {
	return "budget_limits"
}

func (b *BudgetLimits) Validate() error {
	if b.Groceries.IsNegative() || b.Savings.IsNegative() || b.Miscellaneous.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// Total is the sum of all allocations.
func (b BudgetLimits) Total() decimal.Decimal {
	return b.Groceries.Add(b.Savings).Add(b.Miscellaneous)
}

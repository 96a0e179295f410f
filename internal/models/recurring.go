package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cadence is the detected repeat interval of a recurring charge.
type Cadence string

const (
	CadenceWeekly   Cadence = "weekly"
	CadenceBiweekly Cadence = "biweekly"
	CadenceMonthly  Cadence = "monthly"
)

// RecurringBillCandidate is a group of outgoing transactions that look like
// the same bill paid on a regular cadence. It is derived, never stored.
type RecurringBillCandidate struct {
	Signature        string          `json:"signature"`
	Name             string          `json:"name"`
	TypicalAmount    decimal.Decimal `json:"typical_amount"`
	MinAmount        decimal.Decimal `json:"min_amount"`
	MaxAmount        decimal.Decimal `json:"max_amount"`
	TolerancePct     decimal.Decimal `json:"tolerance_pct"`
	Cadence          Cadence         `json:"cadence"`
	CadenceDays      int             `json:"cadence_days"`
	LastDate         time.Time       `json:"last_date"`
	NextExpectedDate time.Time       `json:"next_expected_date"`
	Occurrences      int             `json:"occurrences"`
	Category         Category        `json:"category"`
}

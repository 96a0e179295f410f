package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProjectionSource string

const (
	SourceManualBill        ProjectionSource = "manual_bill"
	SourceDetectedRecurring ProjectionSource = "detected_recurring"
)

// ProjectedBill is one expected future payment.
type ProjectedBill struct {
	Date     time.Time        `json:"date"`
	Amount   decimal.Decimal  `json:"amount"`
	Name     string           `json:"name"`
	Source   ProjectionSource `json:"source"`
	Category string           `json:"category"`
}

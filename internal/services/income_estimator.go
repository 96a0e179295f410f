package services

import (
	"time"

	"budget-coach/internal/models"

	"github.com/shopspring/decimal"
)

type incomeEstimator struct {
	windowDays int
}

func NewIncomeEstimator(windowDays int) IncomeEstimatorInterface {
	return &incomeEstimator{windowDays: windowDays}
}

// Estimate prefers manually entered income. Without any, it sums
// income-category transactions in the window ending at asOf.
func (e *incomeEstimator) Estimate(transactions []models.Transaction, manual []models.IncomeSource, asOf time.Time) models.IncomeEstimate {
	if len(manual) > 0 {
		total := decimal.Zero
		for i := range manual {
			total = total.Add(manual[i].MonthlyEquivalent())
		}
		return models.IncomeEstimate{
			Amount: total.Round(2),
			Source: models.IncomeFromManual,
		}
	}

	start, end := WindowBounds(asOf, e.windowDays)
	total := decimal.Zero
	count := 0
	for i := range transactions {
		t := &transactions[i]
		if t.Category != models.CategoryIncome || !t.Amount.IsPositive() || !InWindow(t.Date, start, end) {
			continue
		}
		total = total.Add(t.Amount)
		count++
	}

	return models.IncomeEstimate{
		Amount:           total.Round(2),
		Source:           models.IncomeFromEstimated,
		TransactionCount: count,
	}
}

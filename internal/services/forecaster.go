package services

import (
	"errors"
	"sort"
	"time"

	"budget-coach/internal/models"
)

var ErrInvalidHorizon = errors.New("forecast horizon must be positive")

type forecaster struct{}

func NewForecaster() ForecasterInterface {
	return &forecaster{}
}

// Forecast projects manual bills and detected recurring charges into
// [asOf, asOf+horizonDays]. A detected charge already tracked as a manual
// bill is not projected twice.
func (f *forecaster) Forecast(bills []models.Bill, candidates []models.RecurringBillCandidate, asOf time.Time, horizonDays int) ([]models.ProjectedBill, error) {
	if horizonDays <= 0 {
		return nil, ErrInvalidHorizon
	}

	start := models.Day(asOf)
	end := start.AddDate(0, 0, horizonDays)

	tracked := make(map[string]struct{}, len(bills)*2)
	for i := range bills {
		if bills[i].SourceSignature != "" {
			tracked[bills[i].SourceSignature] = struct{}{}
		}
		if sig := MerchantSignature(bills[i].Name); sig != "" {
			tracked[sig] = struct{}{}
		}
	}

	projected := make([]models.ProjectedBill, 0)
	for i := range bills {
		projected = append(projected, projectBill(&bills[i], start, end)...)
	}
	for i := range candidates {
		if _, ok := tracked[candidates[i].Signature]; ok {
			continue
		}
		projected = append(projected, projectCandidate(&candidates[i], start, end)...)
	}

	sort.Slice(projected, func(i, j int) bool {
		a, b := projected[i], projected[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.LessThan(b.Amount)
		}
		return a.Source < b.Source
	})
	return projected, nil
}

func projectBill(bill *models.Bill, start, end time.Time) []models.ProjectedBill {
	var out []models.ProjectedBill
	year, month := start.Year(), start.Month()
	for {
		due := bill.DueDateIn(year, month)
		if due.After(end) {
			return out
		}
		if !due.Before(start) {
			out = append(out, models.ProjectedBill{
				Date:     due,
				Amount:   bill.Amount.Round(2),
				Name:     bill.Name,
				Source:   models.SourceManualBill,
				Category: bill.Category,
			})
		}
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
}

func projectCandidate(candidate *models.RecurringBillCandidate, start, end time.Time) []models.ProjectedBill {
	if candidate.CadenceDays <= 0 {
		return nil
	}

	var out []models.ProjectedBill
	date := models.Day(candidate.NextExpectedDate)
	for date.Before(start) {
		date = date.AddDate(0, 0, candidate.CadenceDays)
	}
	for !date.After(end) {
		out = append(out, models.ProjectedBill{
			Date:     date,
			Amount:   candidate.TypicalAmount,
			Name:     candidate.Name,
			Source:   models.SourceDetectedRecurring,
			Category: string(candidate.Category),
		})
		date = date.AddDate(0, 0, candidate.CadenceDays)
	}
	return out
}

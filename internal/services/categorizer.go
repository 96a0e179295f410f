package services

import (
	"strings"
	"time"

	"budget-coach/internal/config"
	"budget-coach/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryRule assigns Category to any transaction Match accepts.
type CategoryRule struct {
	Name     string
	Category models.Category
	Match    func(t *models.Transaction) bool
}

type categorizer struct {
	rules      []CategoryRule
	windowDays int
}

// NewCategorizer builds the ordered rule list. The first matching rule wins
// and the final rule matches everything, so every transaction gets exactly
// one category.
func NewCategorizer(cfg config.AnalysisConfig) CategorizerInterface {
	threshold := cfg.IncomeThreshold
	midFloor := cfg.MidIncomeFloor
	incomeKeywords := lowerAll(cfg.IncomeKeywords)
	ignoreKeywords := lowerAll(cfg.IgnoreKeywords)
	groceryKeywords := lowerAll(cfg.GroceryKeywords)
	billKeywords := lowerAll(cfg.BillKeywords)

	rules := []CategoryRule{
		{
			Name:     "income_threshold",
			Category: models.CategoryIncome,
			Match: func(t *models.Transaction) bool {
				return t.Amount.IsPositive() && t.Amount.GreaterThanOrEqual(threshold)
			},
		},
		{
			Name:     "income_keyword",
			Category: models.CategoryIncome,
			Match: func(t *models.Transaction) bool {
				text := t.SearchText()
				return t.Amount.IsPositive() && containsAny(text, incomeKeywords) && !containsAny(text, ignoreKeywords)
			},
		},
		{
			Name:     "income_mid_deposit",
			Category: models.CategoryIncome,
			Match: func(t *models.Transaction) bool {
				return t.Amount.GreaterThan(midFloor) && !containsAny(t.SearchText(), ignoreKeywords)
			},
		},
		{
			Name:     "grocery_keyword",
			Category: models.CategoryGroceries,
			Match: func(t *models.Transaction) bool {
				return containsAny(t.SearchText(), groceryKeywords)
			},
		},
		{
			Name:     "bill_keyword",
			Category: models.CategoryBills,
			Match: func(t *models.Transaction) bool {
				return containsAny(t.SearchText(), billKeywords)
			},
		},
		{
			Name:     "fallback",
			Category: models.CategoryMiscellaneous,
			Match:    func(*models.Transaction) bool { return true },
		},
	}

	return &categorizer{rules: rules, windowDays: cfg.CategorizationWindowDays}
}

func (c *categorizer) Rules() []CategoryRule {
	return c.rules
}

// Classify returns the category for t without modifying it.
func (c *categorizer) Classify(t *models.Transaction) models.Category {
	for _, rule := range c.rules {
		if rule.Match(t) {
			return rule.Category
		}
	}
	return models.CategoryMiscellaneous
}

// Categorize assigns t its category and returns it.
func (c *categorizer) Categorize(t *models.Transaction) models.Category {
	t.Category = c.Classify(t)
	return t.Category
}

// CategorizeWindow re-categorizes transactions dated within the window ending
// at asOf, in place. Older transactions keep whatever category they have
// unless they never had one. It returns the transactions whose category changed.
func (c *categorizer) CategorizeWindow(transactions []models.Transaction, asOf time.Time) []models.Transaction {
	start, end := WindowBounds(asOf, c.windowDays)
	at := models.Day(asOf)

	var changed []models.Transaction
	for i := range transactions {
		t := &transactions[i]
		if !InWindow(t.Date, start, end) && !t.IsUncategorized() {
			continue
		}
		category := c.Classify(t)
		if category == t.Category {
			continue
		}
		t.Category = category
		t.CategorizedAt = &at
		changed = append(changed, *t)
	}
	return changed
}

// WindowBounds returns the inclusive [start, end] day range of a look-back
// window of days calendar days ending at asOf, so asOf-days itself is outside.
func WindowBounds(asOf time.Time, days int) (time.Time, time.Time) {
	end := models.Day(asOf)
	return end.AddDate(0, 0, 1-days), end
}

func InWindow(date, start, end time.Time) bool {
	d := models.Day(date)
	return !d.Before(start) && !d.After(end)
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(strings.TrimSpace(v))
	}
	return out
}

// SumSpending totals outflows by category for transactions inside the window.
// Positive amounts outside the income category, such as refunds, are ignored.
func SumSpending(transactions []models.Transaction, start, end time.Time) models.CategoryTotals {
	totals := models.CategoryTotals{
		Groceries:     decimal.Zero,
		Bills:         decimal.Zero,
		Miscellaneous: decimal.Zero,
	}
	for i := range transactions {
		t := &transactions[i]
		if !t.IsOutflow() || !InWindow(t.Date, start, end) {
			continue
		}
		spent := t.Amount.Abs()
		switch t.Category {
		case models.CategoryGroceries:
			totals.Groceries = totals.Groceries.Add(spent)
		case models.CategoryBills:
			totals.Bills = totals.Bills.Add(spent)
		case models.CategoryMiscellaneous:
			totals.Miscellaneous = totals.Miscellaneous.Add(spent)
		}
	}
	return totals
}

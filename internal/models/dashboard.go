package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type IncomeSourceKind string

const (
	IncomeFromManual    IncomeSourceKind = "manual"
	IncomeFromEstimated IncomeSourceKind = "estimated"
)

// IncomeEstimate is the monthly income figure and where it came from.
type IncomeEstimate struct {
	Amount           decimal.Decimal  `json:"amount"`
	Source           IncomeSourceKind `json:"source"`
	TransactionCount int              `json:"transaction_count"`
}

// CategoryTotals are absolute outflow totals over the analysis window.
type CategoryTotals struct {
	Groceries     decimal.Decimal `json:"groceries"`
	Bills         decimal.Decimal `json:"bills"`
	Miscellaneous decimal.Decimal `json:"miscellaneous"`
}

func (c CategoryTotals) Total() decimal.Decimal {
	return c.Groceries.Add(c.Bills).Add(c.Miscellaneous)
}

// For returns the total for a spending category, zero for anything else.
func (c CategoryTotals) For(category Category) decimal.Decimal {
	switch category {
	case CategoryGroceries:
		return c.Groceries
	case CategoryBills:
		return c.Bills
	case CategoryMiscellaneous:
		return c.Miscellaneous
	default:
		return decimal.Zero
	}
}

// DashboardStats mirrors the planning figures shown next to the spending summary.
type DashboardStats struct {
	ManualBillsTotal    decimal.Decimal `json:"manual_bills_total"`
	DebtMinimumPayments decimal.Decimal `json:"debt_minimum_payments"`
	DebtBalance         decimal.Decimal `json:"debt_balance"`
	GroceriesBudget     decimal.Decimal `json:"groceries_budget"`
	SavingsBudget       decimal.Decimal `json:"savings_budget"`
	MiscellaneousBudget decimal.Decimal `json:"miscellaneous_budget"`
	TotalAllocated      decimal.Decimal `json:"total_allocated"`
	Remaining           decimal.Decimal `json:"remaining"`
}

// ComponentError records an analysis stage that failed while the rest of the
// snapshot was still produced.
type ComponentError struct {
	Component string `json:"component"`
	Message   string `json:"message"`
}

// DashboardSnapshot is the full analysis result for one as-of date.
type DashboardSnapshot struct {
	AsOf               time.Time                `json:"as_of"`
	Income             IncomeEstimate           `json:"income"`
	Spending           CategoryTotals           `json:"spending"`
	TotalSpend         decimal.Decimal          `json:"total_spend"`
	NetIncome          decimal.Decimal          `json:"net_income"`
	SavingsRate        decimal.Decimal          `json:"savings_rate"`
	Stats              DashboardStats           `json:"stats"`
	RecurringBills     []RecurringBillCandidate `json:"recurring_bills"`
	Forecast           []ProjectedBill          `json:"forecast"`
	Insights           []Insight                `json:"insights"`
	RecentTransactions []Transaction            `json:"recent_transactions"`
	Errors             []ComponentError         `json:"errors,omitempty"`
}

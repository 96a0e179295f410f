package dto

import (
	"github.com/shopspring/decimal"

	"budget-coach/internal/models"
)

type BillRequest struct {
	Name     string          `json:"name" validate:"required,max=255"`
	Amount   decimal.Decimal `json:"amount" validate:"non_negative_amount"`
	DueDay   int             `json:"due_day" validate:"due_day"`
	Category string          `json:"category" validate:"omitempty,max=50"`
}

type IncomeSourceRequest struct {
	Name      string          `json:"name" validate:"required,max=255"`
	Amount    decimal.Decimal `json:"amount" validate:"positive_amount"`
	Frequency string          `json:"frequency" validate:"required,income_frequency"`
}

type DebtAccountRequest struct {
	Name           string          `json:"name" validate:"required,max=255"`
	Balance        decimal.Decimal `json:"balance" validate:"non_negative_amount"`
	APR            decimal.Decimal `json:"apr" validate:"apr"`
	MinimumPayment decimal.Decimal `json:"minimum_payment" validate:"non_negative_amount"`
}

type BudgetLimitsRequest struct {
	Groceries     decimal.Decimal `json:"groceries" validate:"non_negative_amount"`
	Savings       decimal.Decimal `json:"savings" validate:"non_negative_amount"`
	Miscellaneous decimal.Decimal `json:"miscellaneous" validate:"non_negative_amount"`
}

// PromoteRecurringRequest turns a detected recurring charge into a tracked bill.
type PromoteRecurringRequest struct {
	Signature string `json:"signature" validate:"required"`
	Category  string `json:"category" validate:"omitempty,max=50"`
}

type ImportTransactionsRequest struct {
	Transactions []ProviderTransaction `json:"transactions" validate:"required"`
	// OutflowPositive marks records that use the provider convention where
	// positive amounts are money leaving the account.
	OutflowPositive bool `json:"outflow_positive"`
}

type ExchangeTokenRequest struct {
	PublicToken     string `json:"public_token" validate:"required"`
	InstitutionName string `json:"institution_name" validate:"omitempty,max=255"`
}

type LinkTokenResponse struct {
	LinkToken  string `json:"link_token"`
	Expiration string `json:"expiration,omitempty"`
}

type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// SyncResult reports how a batch of provider records was absorbed.
type SyncResult struct {
	Accepted   int `json:"accepted"`
	Skipped    int `json:"skipped"`
	Duplicates int `json:"duplicates"`
}

// LinkSyncResult is the outcome of syncing one bank link.
type LinkSyncResult struct {
	LinkID          string `json:"link_id"`
	InstitutionName string `json:"institution_name,omitempty"`
	SyncResult
	Error string `json:"error,omitempty"`
}

type BankSyncResponse struct {
	Links []LinkSyncResult `json:"links"`
	Total SyncResult       `json:"total"`
}

// AnalysisResponse is the spending analysis without the coaching layer.
type AnalysisResponse struct {
	AsOf           string                          `json:"as_of"`
	Spending       models.CategoryTotals           `json:"spending"`
	Income         models.IncomeEstimate           `json:"income"`
	RecurringBills []models.RecurringBillCandidate `json:"recurring_bills"`
	Forecast       []models.ProjectedBill          `json:"forecast"`
}

type TransactionFilters struct {
	From     string `query:"from"`
	To       string `query:"to"`
	Category string `query:"category"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

type PaginationInfo struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

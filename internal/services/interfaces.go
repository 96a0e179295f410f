package services

import (
	"context"
	"time"

	"budget-coach/internal/dto"
	"budget-coach/internal/models"
	"budget-coach/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NormalizerInterface turns raw provider records into stored transactions.
type NormalizerInterface interface {
	Normalize(records []dto.ProviderTransaction, convention SignConvention, known map[string]struct{}) NormalizeResult
}

// CategorizerInterface assigns every transaction exactly one category.
type CategorizerInterface interface {
	Rules() []CategoryRule
	Classify(t *models.Transaction) models.Category
	Categorize(t *models.Transaction) models.Category
	CategorizeWindow(transactions []models.Transaction, asOf time.Time) []models.Transaction
}

type RecurrenceDetectorInterface interface {
	Detect(transactions []models.Transaction) []models.RecurringBillCandidate
}

type IncomeEstimatorInterface interface {
	Estimate(transactions []models.Transaction, manual []models.IncomeSource, asOf time.Time) models.IncomeEstimate
}

type ForecasterInterface interface {
	Forecast(bills []models.Bill, candidates []models.RecurringBillCandidate, asOf time.Time, horizonDays int) ([]models.ProjectedBill, error)
}

type InsightGeneratorInterface interface {
	Rules() []InsightRule
	Generate(in InsightInput) []models.Insight
}

// DashboardServiceInterface is the read side of the engine.
type DashboardServiceInterface interface {
	ComputeDashboard(ctx context.Context, asOf time.Time) (*models.DashboardSnapshot, error)
	Analyze(ctx context.Context, asOf time.Time, horizonDays int) (*dto.AnalysisResponse, error)
	DetectRecurringBills(transactions []models.Transaction) []models.RecurringBillCandidate
	ForecastBills(bills []models.Bill, candidates []models.RecurringBillCandidate, horizonDays int) ([]models.ProjectedBill, error)
}

// TransactionSyncServiceInterface is the write side of the ledger.
type TransactionSyncServiceInterface interface {
	SyncTransactions(ctx context.Context, records []dto.ProviderTransaction, convention SignConvention) (*dto.SyncResult, error)
	RemoveTransactions(ctx context.Context, ids []string) (int64, error)
	ListTransactions(query repositories.TransactionQuery) ([]models.Transaction, int64, error)
}

// ProviderClientInterface talks to the bank data provider. Implementations
// never retry; a failure is returned to the caller as is.
type ProviderClientInterface interface {
	CreateLinkToken(ctx context.Context, clientUserID string) (*dto.LinkTokenResponse, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (*dto.PlaidExchangeResponse, error)
	FetchTransactions(ctx context.Context, accessToken, cursor string) (*dto.ProviderSyncResult, error)
	RemoveItem(ctx context.Context, accessToken string) error
}

type BankLinkServiceInterface interface {
	CreateLinkToken(ctx context.Context) (*dto.LinkTokenResponse, error)
	ExchangePublicToken(ctx context.Context, req dto.ExchangeTokenRequest) (*models.BankLink, error)
	ListLinks() ([]models.BankLink, error)
	Disconnect(ctx context.Context, id uuid.UUID) error
	SyncAll(ctx context.Context) (*dto.BankSyncResponse, error)
}

// PlanningServiceInterface manages the user's manually entered plan.
type PlanningServiceInterface interface {
	CreateBill(req dto.BillRequest) (*models.Bill, error)
	ListBills() ([]models.Bill, error)
	UpdateBill(id uuid.UUID, req dto.BillRequest) (*models.Bill, error)
	DeleteBill(id uuid.UUID) error
	PromoteRecurring(ctx context.Context, req dto.PromoteRecurringRequest) (*models.Bill, error)

	CreateIncomeSource(req dto.IncomeSourceRequest) (*models.IncomeSource, error)
	ListIncomeSources() ([]models.IncomeSource, error)
	UpdateIncomeSource(id uuid.UUID, req dto.IncomeSourceRequest) (*models.IncomeSource, error)
	DeleteIncomeSource(id uuid.UUID) error

	CreateDebtAccount(req dto.DebtAccountRequest) (*models.DebtAccount, error)
	ListDebtAccounts() ([]models.DebtAccount, error)
	UpdateDebtAccount(id uuid.UUID, req dto.DebtAccountRequest) (*models.DebtAccount, error)
	DeleteDebtAccount(id uuid.UUID) error

	GetBudget() (*models.BudgetLimits, error)
	SaveBudget(req dto.BudgetLimitsRequest) (*models.BudgetLimits, error)
}

type AuthServiceInterface interface {
	Enabled() bool
	IssueToken(username, password string) (*dto.TokenResponse, error)
}

// TokenServiceInterface issues and validates owner access tokens.
type TokenServiceInterface interface {
	GenerateAccessToken(username string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// SyncLoggerInterface writes structured events for ledger writes and bank syncs.
type SyncLoggerInterface interface {
	LogSyncStarted(ctx context.Context, linkCount int)
	LogLinkSynced(ctx context.Context, linkID uuid.UUID, result dto.SyncResult, pages int, truncated bool)
	LogLinkFailed(ctx context.Context, linkID uuid.UUID, err error)
	LogSyncCompleted(ctx context.Context, total dto.SyncResult, failures int, duration time.Duration)
	LogBatchImported(ctx context.Context, source string, result dto.SyncResult)
	LogBillPromoted(ctx context.Context, billID uuid.UUID, signature string, amount decimal.Decimal)
}

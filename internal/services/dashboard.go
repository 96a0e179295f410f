package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"budget-coach/internal/config"
	"budget-coach/internal/dto"
	"budget-coach/internal/models"
	"budget-coach/internal/repositories"

	"github.com/shopspring/decimal"
)

// Dashboard stage names reported in ComponentError.
const (
	ComponentCategorization = "categorization"
	ComponentIncome         = "income"
	ComponentSpending       = "spending"
	ComponentRecurring      = "recurring_bills"
	ComponentForecast       = "forecast"
	ComponentInsights       = "insights"
	ComponentStats          = "stats"
	ComponentRecent         = "recent_transactions"
)

// DashboardInput is the stored state a dashboard is computed from.
type DashboardInput struct {
	Transactions  []models.Transaction
	Bills         []models.Bill
	IncomeSources []models.IncomeSource
	Debts         []models.DebtAccount
	Budget        models.BudgetLimits
}

// DashboardAssembler runs the analysis pipeline over an input without
// touching storage or the clock.
type DashboardAssembler struct {
	settings    config.AnalysisConfig
	categorizer CategorizerInterface
	detector    RecurrenceDetectorInterface
	estimator   IncomeEstimatorInterface
	forecaster  ForecasterInterface
	insights    InsightGeneratorInterface
}

func NewDashboardAssembler(settings config.AnalysisConfig) *DashboardAssembler {
	categorizer := NewCategorizer(settings)
	return &DashboardAssembler{
		settings:    settings,
		categorizer: categorizer,
		detector:    NewRecurrenceDetector(settings.AmountTolerancePct, categorizer),
		estimator:   NewIncomeEstimator(settings.CategorizationWindowDays),
		forecaster:  NewForecaster(),
		insights:    NewInsightGenerator(settings),
	}
}

// AssembleDashboard is a convenience wrapper around DashboardAssembler.Assemble.
func AssembleDashboard(input DashboardInput, asOf time.Time, settings config.AnalysisConfig) (models.DashboardSnapshot, []models.Transaction) {
	return NewDashboardAssembler(settings).Assemble(input, asOf)
}

// Assemble builds the snapshot for asOf from transactions dated on or before
// asOf. The input is not modified; the
// second return value holds the transactions whose category was assigned or
// changed so the caller can persist them. A failing stage is reported in
// Errors and leaves its section at the zero value.
func (a *DashboardAssembler) Assemble(input DashboardInput, asOf time.Time) (models.DashboardSnapshot, []models.Transaction) {
	asOf = models.Day(asOf)
	snapshot := models.DashboardSnapshot{
		AsOf:               asOf,
		Income:             models.IncomeEstimate{Amount: decimal.Zero, Source: models.IncomeFromEstimated},
		Spending:           models.CategoryTotals{Groceries: decimal.Zero, Bills: decimal.Zero, Miscellaneous: decimal.Zero},
		TotalSpend:         decimal.Zero,
		NetIncome:          decimal.Zero,
		SavingsRate:        decimal.Zero,
		RecurringBills:     []models.RecurringBillCandidate{},
		Forecast:           []models.ProjectedBill{},
		Insights:           []models.Insight{},
		RecentTransactions: []models.Transaction{},
	}
	g := &stageGuard{}

	transactions := transactionsThrough(input.Transactions, asOf)

	var changed []models.Transaction
	g.run(ComponentCategorization, func() error {
		changed = a.categorizer.CategorizeWindow(transactions, asOf)
		return nil
	})

	g.run(ComponentIncome, func() error {
		snapshot.Income = a.estimator.Estimate(transactions, input.IncomeSources, asOf)
		return nil
	})

	g.run(ComponentSpending, func() error {
		start, end := WindowBounds(asOf, a.settings.CategorizationWindowDays)
		spending := SumSpending(transactions, start, end)
		snapshot.Spending = models.CategoryTotals{
			Groceries:     spending.Groceries.Round(2),
			Bills:         spending.Bills.Round(2),
			Miscellaneous: spending.Miscellaneous.Round(2),
		}
		snapshot.TotalSpend = snapshot.Spending.Total()
		snapshot.NetIncome = snapshot.Income.Amount.Sub(snapshot.TotalSpend)
		snapshot.SavingsRate = SavingsRate(snapshot.Income.Amount, snapshot.TotalSpend)
		return nil
	})

	g.run(ComponentRecurring, func() error {
		snapshot.RecurringBills = a.detector.Detect(transactions)
		return nil
	})

	g.run(ComponentForecast, func() error {
		forecast, err := a.forecaster.Forecast(input.Bills, snapshot.RecurringBills, asOf, a.horizon())
		if err != nil {
			return err
		}
		snapshot.Forecast = forecast
		return nil
	})

	g.run(ComponentStats, func() error {
		snapshot.Stats = buildStats(input, snapshot.Income.Amount)
		return nil
	})

	g.run(ComponentInsights, func() error {
		snapshot.Insights = a.insights.Generate(InsightInput{
			AsOf:             asOf,
			Income:           snapshot.Income,
			Spending:         snapshot.Spending,
			Budget:           input.Budget,
			Debts:            input.Debts,
			Bills:            input.Bills,
			Forecast:         snapshot.Forecast,
			RecurringCount:   len(snapshot.RecurringBills),
			TransactionCount: len(transactions),
		})
		return nil
	})

	g.run(ComponentRecent, func() error {
		snapshot.RecentTransactions = recentTransactions(transactions, a.settings.RecentTransactionsLimit)
		return nil
	})

	snapshot.Errors = g.errors
	return snapshot, changed
}

func (a *DashboardAssembler) horizon() int {
	if a.settings.ForecastHorizonDays > 0 {
		return a.settings.ForecastHorizonDays
	}
	return 90
}

// stageGuard keeps one failing stage from taking down the whole dashboard.
type stageGuard struct {
	errors []models.ComponentError
}

func (g *stageGuard) run(component string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("dashboard stage panicked", "component", component, "panic", r)
			g.errors = append(g.errors, models.ComponentError{Component: component, Message: fmt.Sprintf("%v", r)})
		}
	}()
	if err := fn(); err != nil {
		g.errors = append(g.errors, models.ComponentError{Component: component, Message: err.Error()})
	}
}

func buildStats(input DashboardInput, income decimal.Decimal) models.DashboardStats {
	stats := models.DashboardStats{
		ManualBillsTotal:    decimal.Zero,
		DebtMinimumPayments: decimal.Zero,
		DebtBalance:         decimal.Zero,
		GroceriesBudget:     input.Budget.Groceries.Round(2),
		SavingsBudget:       input.Budget.Savings.Round(2),
		MiscellaneousBudget: input.Budget.Miscellaneous.Round(2),
	}
	for i := range input.Bills {
		stats.ManualBillsTotal = stats.ManualBillsTotal.Add(input.Bills[i].Amount)
	}
	for i := range input.Debts {
		stats.DebtMinimumPayments = stats.DebtMinimumPayments.Add(input.Debts[i].MinimumPayment)
		stats.DebtBalance = stats.DebtBalance.Add(input.Debts[i].Balance)
	}
	stats.ManualBillsTotal = stats.ManualBillsTotal.Round(2)
	stats.DebtMinimumPayments = stats.DebtMinimumPayments.Round(2)
	stats.DebtBalance = stats.DebtBalance.Round(2)
	stats.TotalAllocated = stats.ManualBillsTotal.Add(stats.DebtMinimumPayments).Add(input.Budget.Total()).Round(2)
	stats.Remaining = income.Sub(stats.TotalAllocated)
	return stats
}

// transactionsThrough copies the transactions dated on or before asOf.
func transactionsThrough(transactions []models.Transaction, asOf time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !models.Day(t.Date).After(asOf) {
			out = append(out, t)
		}
	}
	return out
}

// recentTransactions returns up to limit transactions, newest first.
func recentTransactions(transactions []models.Transaction, limit int) []models.Transaction {
	if limit <= 0 {
		limit = 10
	}
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

type dashboardService struct {
	store           repositories.LedgerStoreInterface
	transactionRepo repositories.TransactionRepositoryInterface
	assembler       *DashboardAssembler
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

func NewDashboardService(
	store repositories.LedgerStoreInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	settings config.AnalysisConfig,
	metrics MetricsRecorderInterface,
) DashboardServiceInterface {
	return &dashboardService{
		store:           store,
		transactionRepo: transactionRepo,
		assembler:       NewDashboardAssembler(settings),
		metrics:         metrics,
		now:             time.Now,
	}
}

// ComputeDashboard reads a consistent snapshot of the ledger, assembles the
// dashboard and stores any category assignments it made.
func (s *dashboardService) ComputeDashboard(ctx context.Context, asOf time.Time) (*models.DashboardSnapshot, error) {
	start := time.Now()

	input, err := s.readInput()
	if err != nil {
		s.metrics.IncrementCounter("dashboard.computed", map[string]string{"status": "failed"})
		return nil, err
	}

	snapshot, changed := s.assembler.Assemble(*input, asOf)
	s.persistCategories(ctx, changed)

	for _, componentErr := range snapshot.Errors {
		s.metrics.IncrementCounter("dashboard.component_error", map[string]string{"component": componentErr.Component})
	}
	s.metrics.IncrementCounter("dashboard.computed", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("dashboard.compute", time.Since(start))

	slog.InfoContext(ctx, "dashboard computed",
		"as_of", snapshot.AsOf.Format(models.DateLayout),
		"transactions", len(input.Transactions),
		"recategorized", len(changed),
		"recurring_bills", len(snapshot.RecurringBills),
		"insights", len(snapshot.Insights),
		"component_errors", len(snapshot.Errors),
		"duration_ms", time.Since(start).Milliseconds())

	return &snapshot, nil
}

// Analyze returns the spending analysis without stats or coaching.
func (s *dashboardService) Analyze(ctx context.Context, asOf time.Time, horizonDays int) (*dto.AnalysisResponse, error) {
	if horizonDays <= 0 || horizonDays > 365 {
		return nil, ErrInvalidHorizon
	}

	input, err := s.readInput()
	if err != nil {
		return nil, err
	}

	snapshot, changed := s.assembler.Assemble(*input, asOf)
	s.persistCategories(ctx, changed)

	forecast := snapshot.Forecast
	if horizonDays != s.assembler.horizon() {
		if forecast, err = s.assembler.forecaster.Forecast(input.Bills, snapshot.RecurringBills, snapshot.AsOf, horizonDays); err != nil {
			return nil, err
		}
	}

	return &dto.AnalysisResponse{
		AsOf:           snapshot.AsOf.Format(models.DateLayout),
		Spending:       snapshot.Spending,
		Income:         snapshot.Income,
		RecurringBills: snapshot.RecurringBills,
		Forecast:       forecast,
	}, nil
}

func (s *dashboardService) DetectRecurringBills(transactions []models.Transaction) []models.RecurringBillCandidate {
	return s.assembler.detector.Detect(transactions)
}

// ForecastBills projects bills and candidates from today.
func (s *dashboardService) ForecastBills(bills []models.Bill, candidates []models.RecurringBillCandidate, horizonDays int) ([]models.ProjectedBill, error) {
	return s.assembler.forecaster.Forecast(bills, candidates, s.now(), horizonDays)
}

func (s *dashboardService) readInput() (*DashboardInput, error) {
	snap, err := s.store.ReadSnapshot()
	if err != nil {
		slog.Error("failed to read ledger for dashboard", "error", err)
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}
	return &DashboardInput{
		Transactions:  snap.Transactions,
		Bills:         snap.Bills,
		IncomeSources: snap.IncomeSources,
		Debts:         snap.DebtAccounts,
		Budget:        snap.Budget,
	}, nil
}

// persistCategories stores category assignments. Failures are logged, not returned.
func (s *dashboardService) persistCategories(ctx context.Context, changed []models.Transaction) {
	if len(changed) == 0 {
		return
	}
	err := s.store.WithWriteLock(func() error {
		return s.transactionRepo.UpdateCategories(changed)
	})
	if err != nil {
		s.metrics.IncrementCounter("dashboard.component_error", map[string]string{"component": "category_persist"})
		slog.WarnContext(ctx, "failed to persist transaction categories", "count", len(changed), "error", err)
	}
}

// Package app wires configuration, storage and services into the objects the
// server and the command line tool run.
package app

import (
	"log/slog"
	"net/http"
	"os"

	"budget-coach/internal/config"
	"budget-coach/internal/database"
	"budget-coach/internal/handlers"
	"budget-coach/internal/repositories"
	"budget-coach/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App holds every long-lived service. It is built once per process.
type App struct {
	Config   *config.Config
	DB       *database.DB
	Registry *prometheus.Registry
	Metrics  services.MetricsRecorderInterface
	Logger   *slog.Logger

	// Breaker is nil when the generated sandbox provider is in use.
	Breaker    services.CircuitBreakerInterface
	Provider   services.ProviderClientInterface
	SyncLogger services.SyncLoggerInterface

	Dashboard services.DashboardServiceInterface
	Ledger    services.TransactionSyncServiceInterface
	BankLinks services.BankLinkServiceInterface
	Planning  services.PlanningServiceInterface
	Auth      services.AuthServiceInterface
	Tokens    services.TokenServiceInterface
	Passwords services.PasswordServiceInterface
}

func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewPrometheusMetrics(registry)
	syncLogger := services.NewSyncLogger(logger)

	store := repositories.NewLedgerStore(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)

	categorizer := services.NewCategorizer(cfg.Analysis)
	detector := services.NewRecurrenceDetector(cfg.Analysis.AmountTolerancePct, categorizer)
	ledger := services.NewTransactionSyncService(store, transactionRepo, services.NewNormalizer(), categorizer, metrics)

	a := &App{
		Config:     cfg,
		DB:         db,
		Registry:   registry,
		Metrics:    metrics,
		Logger:     logger,
		SyncLogger: syncLogger,
		Ledger:     ledger,
		Dashboard:  services.NewDashboardService(store, transactionRepo, cfg.Analysis, metrics),
		Planning: services.NewPlanningService(
			store,
			repositories.NewBillRepository(db.DB),
			repositories.NewIncomeSourceRepository(db.DB),
			repositories.NewDebtAccountRepository(db.DB),
			repositories.NewBudgetRepository(db.DB),
			detector,
			syncLogger,
		),
	}

	if cfg.Plaid.UseSandbox || cfg.Plaid.ClientID == "" {
		logger.Info("using generated sandbox bank provider")
		a.Provider = services.NewSandboxProvider()
	} else {
		a.Breaker = services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
		a.Provider = services.NewPlaidClient(&cfg.Plaid, a.Breaker, metrics, logger)
	}
	a.BankLinks = services.NewBankLinkService(repositories.NewBankLinkRepository(db.DB), a.Provider, ledger, syncLogger, metrics)

	a.Passwords = services.NewPasswordService(cfg.Security.BCryptCost)
	a.Tokens = services.NewTokenService(&cfg.Auth)
	a.Auth = services.NewAuthService(&cfg.Auth, a.Passwords, a.Tokens, metrics)

	return a
}

// Handlers builds the HTTP handlers over the app's services.
func (a *App) Handlers() handlers.Handlers {
	return handlers.Handlers{
		Health:      handlers.NewHealthCheckHandler(a.DB.DB, a.Breaker),
		Auth:        handlers.NewAuthHandler(a.Auth),
		Dashboard:   handlers.NewDashboardHandler(a.Dashboard, a.Config.Analysis.ForecastHorizonDays),
		Transaction: handlers.NewTransactionHandler(a.Ledger, a.SyncLogger),
		Bank:        handlers.NewBankHandler(a.BankLinks),
		Planning:    handlers.NewPlanningHandler(a.Planning),
	}
}

// MetricsHandler serves the app's registry in the Prometheus text format.
func (a *App) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{Registry: a.Registry})
}

// NewLogger returns a JSON logger in production and a debug-level text logger
// elsewhere.
func NewLogger(environment string) *slog.Logger {
	if environment == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

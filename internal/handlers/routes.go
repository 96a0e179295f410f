package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handlers groups every HTTP handler the API serves.
type Handlers struct {
	Health      *HealthCheckHandler
	Auth        *AuthHandler
	Dashboard   *DashboardHandler
	Transaction *TransactionHandler
	Bank        *BankHandler
	Planning    *PlanningHandler
}

// RegisterRoutes mounts the API on e. Everything under /api/v1 except token
// issuance goes through requireAuth.
func RegisterRoutes(e *echo.Echo, h Handlers, requireAuth echo.MiddlewareFunc, metrics http.Handler) {
	e.GET("/health", h.Health.HealthCheck)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	api := e.Group("/api/v1")
	api.POST("/auth/token", h.Auth.IssueToken)

	protected := api.Group("", requireAuth)

	protected.GET("/dashboard", h.Dashboard.GetDashboard)
	protected.GET("/analysis", h.Dashboard.GetAnalysis)

	protected.GET("/transactions", h.Transaction.ListTransactions)
	protected.POST("/transactions/import", h.Transaction.ImportTransactions)

	protected.POST("/bank/link-token", h.Bank.CreateLinkToken)
	protected.POST("/bank/exchange", h.Bank.ExchangePublicToken)
	protected.POST("/bank/sync", h.Bank.Sync)
	protected.GET("/bank/links", h.Bank.ListLinks)
	protected.DELETE("/bank/links/:id", h.Bank.Disconnect)

	protected.GET("/bills", h.Planning.ListBills)
	protected.POST("/bills", h.Planning.CreateBill)
	protected.POST("/bills/from-recurring", h.Planning.PromoteRecurring)
	protected.PUT("/bills/:id", h.Planning.UpdateBill)
	protected.DELETE("/bills/:id", h.Planning.DeleteBill)

	protected.GET("/income-sources", h.Planning.ListIncomeSources)
	protected.POST("/income-sources", h.Planning.CreateIncomeSource)
	protected.PUT("/income-sources/:id", h.Planning.UpdateIncomeSource)
	protected.DELETE("/income-sources/:id", h.Planning.DeleteIncomeSource)

	protected.GET("/debts", h.Planning.ListDebtAccounts)
	protected.POST("/debts", h.Planning.CreateDebtAccount)
	protected.PUT("/debts/:id", h.Planning.UpdateDebtAccount)
	protected.DELETE("/debts/:id", h.Planning.DeleteDebtAccount)

	protected.GET("/budget", h.Planning.GetBudget)
	protected.PUT("/budget", h.Planning.SaveBudget)
}

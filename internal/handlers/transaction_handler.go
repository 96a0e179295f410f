package handlers

import (
	"fmt"
	"net/http"

	"budget-coach/internal/dto"
	"budget-coach/internal/errors"
	"budget-coach/internal/models"
	"budget-coach/internal/repositories"
	"budget-coach/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	syncService services.TransactionSyncServiceInterface
	syncLogger  services.SyncLoggerInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	syncService services.TransactionSyncServiceInterface,
	syncLogger services.SyncLoggerInterface,
) *TransactionHandler {
	return &TransactionHandler{
		syncService: syncService,
		syncLogger:  syncLogger,
	}
}

// ListTransactions retrieves stored transactions, newest first
// @Summary List transactions
// @Description Retrieve paginated transactions filtered by date range and category
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param from query string false "Filter by start date (YYYY-MM-DD)"
// @Param to query string false "Filter by end date (YYYY-MM-DD)"
// @Param category query string false "Filter by category" Enums(income, groceries, bills, miscellaneous)
// @Param offset query int false "Number of transactions to skip" default(0)
// @Param limit query int false "Number of results per page (max 500)" default(50)
// @Success 200 {object} SuccessResponse{data=[]models.Transaction,meta=dto.PaginationInfo} "Transactions with pagination"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters or VALIDATION_005 - Invalid date"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var filters dto.TransactionFilters
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filters); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	query, qerr := parseTransactionQuery(filters)
	if qerr != nil {
		return qerr.send(c)
	}

	transactions, total, err := h.syncService.ListTransactions(query)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: transactions,
		Meta: dto.PaginationInfo{
			Limit:  query.Limit,
			Offset: query.Offset,
			Total:  total,
		},
	})
}

// ImportTransactions stores a batch of provider records
// @Summary Import transactions
// @Description Normalize, categorize and store a batch of transactions. Records already stored are counted as duplicates.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ImportTransactionsRequest true "Transactions to import"
// @Success 200 {object} SuccessResponse{data=dto.SyncResult} "Import summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or TRANSACTION_002 - Empty batch"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 413 {object} errors.ErrorResponse "TRANSACTION_003 - Batch too large"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/import [post]
func (h *TransactionHandler) ImportTransactions(c echo.Context) error {
	var req dto.ImportTransactionsRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	if len(req.Transactions) == 0 {
		return SendError(c, errors.TransactionBatchEmpty)
	}

	convention := services.OutflowNegative
	if req.OutflowPositive {
		convention = services.OutflowPositive
	}

	ctx := c.Request().Context()
	result, err := h.syncService.SyncTransactions(ctx, req.Transactions, convention)
	if err != nil {
		return SendServiceError(c, err)
	}
	h.syncLogger.LogBatchImported(ctx, "api", *result)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    result,
		Message: fmt.Sprintf("Imported %d transactions", result.Accepted),
	})
}

// queryError carries the code for a rejected list query.
type queryError struct {
	code   errors.ErrorCode
	detail string
}

func (e *queryError) send(c echo.Context) error {
	return SendError(c, e.code, errors.WithDetails(e.detail))
}

// parseTransactionQuery validates list filters and applies paging defaults
func parseTransactionQuery(filters dto.TransactionFilters) (repositories.TransactionQuery, *queryError) {
	query := repositories.TransactionQuery{
		Offset: filters.Offset,
		Limit:  filters.Limit,
	}

	if filters.From != "" {
		from, err := models.ParseDay(filters.From)
		if err != nil {
			return query, &queryError{errors.ValidationInvalidDate, "invalid from date, use YYYY-MM-DD"}
		}
		query.From = &from
	}

	if filters.To != "" {
		to, err := models.ParseDay(filters.To)
		if err != nil {
			return query, &queryError{errors.ValidationInvalidDate, "invalid to date, use YYYY-MM-DD"}
		}
		query.To = &to
	}

	if query.From != nil && query.To != nil && query.To.Before(*query.From) {
		return query, &queryError{errors.ValidationOutOfRange, "to must not be before from"}
	}

	if filters.Category != "" {
		category := models.Category(filters.Category)
		if !category.IsValid() {
			return query, &queryError{errors.ValidationInvalidFormat, "invalid category"}
		}
		query.Category = category
	}

	if query.Offset < 0 {
		return query, &queryError{errors.ValidationOutOfRange, "offset must not be negative"}
	}
	switch {
	case query.Limit < 0:
		return query, &queryError{errors.ValidationOutOfRange, "limit must be at least 1"}
	case query.Limit == 0:
		query.Limit = defaultPageLimit
	case query.Limit > maxPageLimit:
		query.Limit = maxPageLimit
	}

	return query, nil
}

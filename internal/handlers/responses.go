package handlers

import (
	stderrors "errors"
	"net/http"

	"budget-coach/internal/errors"
	"budget-coach/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business logic errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Not found errors: SendError(c, errors.BillNotFound)
//    - Provider errors: SendError(c, errors.BankLinkInvalid)
//
// 2. SendServiceError - For errors returned by the service layer. Known
//    sentinel errors map to their code, anything else is a system error.
//
// 3. SendSystemError - For system/internal errors (500 responses)
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// serviceErrorCodes maps service sentinel errors to API error codes.
var serviceErrorCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{services.ErrBillNotFound, errors.BillNotFound},
	{services.ErrRecurringNotFound, errors.BillRecurringNotFound},
	{services.ErrBillAlreadyTracked, errors.BillAlreadyTracked},
	{services.ErrIncomeSourceNotFound, errors.IncomeSourceNotFound},
	{services.ErrInvalidIncomeSchedule, errors.ValidationInvalidFormat},
	{services.ErrDebtAccountNotFound, errors.DebtAccountNotFound},
	{services.ErrInvalidBudgetLimits, errors.BudgetInvalidAllocation},
	{services.ErrInvalidHorizon, errors.AnalysisHorizonOutOfRange},
	{services.ErrBatchTooLarge, errors.TransactionBatchTooLarge},
	{services.ErrBankLinkNotFound, errors.BankLinkNotFound},
	{services.ErrBankLinkInvalid, errors.BankLinkInvalid},
	{services.ErrProviderRateLimited, errors.BankProviderRateLimit},
	{services.ErrProviderNotConfigured, errors.BankProviderNotEnabled},
	{services.ErrProviderUnavailable, errors.BankProviderFailure},
	{services.ErrCircuitBreakerOpen, errors.BankProviderFailure},
	{services.ErrInvalidCredentials, errors.AuthInvalidCredentials},
	{services.ErrAuthDisabled, errors.AuthDisabled},
}

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError translates a service error into its API error code.
func SendServiceError(c echo.Context, err error) error {
	if code, ok := serviceErrorCode(err); ok {
		return SendError(c, code)
	}
	return SendSystemError(c, err)
}

func serviceErrorCode(err error) (errors.ErrorCode, bool) {
	for _, known := range serviceErrorCodes {
		if stderrors.Is(err, known.err) {
			return known.code, true
		}
	}
	return "", false
}

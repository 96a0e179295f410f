package errors

// ErrorCode is a stable, client-facing error identifier.
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthDisabled           ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionBatchEmpty    ErrorCode = "TRANSACTION_002"
	TransactionBatchTooLarge ErrorCode = "TRANSACTION_003"
)

// Bill, income, debt and budget error codes
const (
	BillNotFound              ErrorCode = "BILL_001"
	BillRecurringNotFound     ErrorCode = "BILL_002"
	BillAlreadyTracked        ErrorCode = "BILL_003"
	IncomeSourceNotFound      ErrorCode = "INCOME_001"
	DebtAccountNotFound       ErrorCode = "DEBT_001"
	BudgetInvalidAllocation   ErrorCode = "BUDGET_001"
	AnalysisHorizonOutOfRange ErrorCode = "ANALYSIS_001"
)

// Bank link and provider error codes (BANK_*)
const (
	BankLinkNotFound       ErrorCode = "BANK_001"
	BankLinkInvalid        ErrorCode = "BANK_002"
	BankProviderFailure    ErrorCode = "BANK_003"
	BankProviderRateLimit  ErrorCode = "BANK_004"
	BankProviderNotEnabled ErrorCode = "BANK_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
	SystemRouteNotFound      ErrorCode = "SYSTEM_006"
)

var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid username or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthDisabled:           "Authentication is not configured on this server",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date, expected YYYY-MM-DD",

	TransactionNotFound:      "Transaction not found",
	TransactionBatchEmpty:    "No transactions supplied",
	TransactionBatchTooLarge: "Too many transactions in a single import",

	BillNotFound:              "Bill not found",
	BillRecurringNotFound:     "No recurring bill matches that signature",
	BillAlreadyTracked:        "A bill already tracks this recurring charge",
	IncomeSourceNotFound:      "Income source not found",
	DebtAccountNotFound:       "Debt account not found",
	BudgetInvalidAllocation:   "Budget allocations must be zero or positive",
	AnalysisHorizonOutOfRange: "Forecast horizon must be between 1 and 365 days",

	BankLinkNotFound:       "Bank connection not found",
	BankLinkInvalid:        "Bank connection needs to be re-linked",
	BankProviderFailure:    "Bank data provider request failed",
	BankProviderRateLimit:  "Bank data provider rate limit reached, try again later",
	BankProviderNotEnabled: "Bank data provider is not configured",

	SystemInternalError:      "An unexpected error occurred. Please report the trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a code, or a generic one.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

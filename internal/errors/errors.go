// Package errors provides the application error taxonomy for the ledger API.
// Service-layer errors are AppErrors so that every response carries a stable
// kind and code and never leaks storage details to clients.
package errors

import "net/http"

// Kind classifies an AppError for clients.
type Kind string

const (
	KindValidation     Kind = "ValidationError"
	KindAuthorization  Kind = "AuthorizationError"
	KindNotFound       Kind = "NotFoundError"
	KindTransaction    Kind = "TransactionError"
	KindAuthentication Kind = "AuthenticationError"
	KindConflict       Kind = "ConflictError"
	KindInternal       Kind = "InternalError"
)

// AppError represents a structured application error with a kind, an error
// code, a human-readable message, an HTTP status code and an optional
// internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Kind       Kind   `json:"kind"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/kind/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Kind:       sentinel.Kind,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Kind:       sentinel.Kind,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation errors.
var (
	ErrInvalidInput       = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", Kind: KindValidation, StatusCode: http.StatusBadRequest}
	ErrInvalidMonthFormat = &AppError{Code: "INVALID_MONTH_FORMAT", Message: "Month is not in a recognized format", Kind: KindValidation, StatusCode: http.StatusBadRequest}
	ErrInvalidAmount      = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be a positive value with at most two decimal places", Kind: KindValidation, StatusCode: http.StatusBadRequest}
	ErrUnknownCategory    = &AppError{Code: "UNKNOWN_CATEGORY", Message: "Category is not allocated in this budget", Kind: KindValidation, StatusCode: http.StatusBadRequest}
	ErrInvalidWindow      = &AppError{Code: "INVALID_WINDOW", Message: "Window length is out of range", Kind: KindValidation, StatusCode: http.StatusBadRequest}
)

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", Kind: KindAuthentication, StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid login name or password", Kind: KindAuthentication, StatusCode: http.StatusUnauthorized}
	ErrLedgerForbidden    = &AppError{Code: "LEDGER_FORBIDDEN", Message: "Ledger does not belong to the current user", Kind: KindAuthorization, StatusCode: http.StatusForbidden}
)

// Lookup errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "No budget found for this month", Kind: KindNotFound, StatusCode: http.StatusNotFound}
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", Kind: KindNotFound, StatusCode: http.StatusNotFound}
)

// User errors.
var (
	ErrDuplicateLogin = &AppError{Code: "DUPLICATE_LOGIN", Message: "A user with this login name already exists", Kind: KindConflict, StatusCode: http.StatusConflict}
)

// Storage errors.
var (
	ErrTransactionFailed = &AppError{Code: "TRANSACTION_FAILED", Message: "The change could not be saved; nothing was written", Kind: KindTransaction, StatusCode: http.StatusInternalServerError}
	ErrInternalServer    = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", Kind: KindInternal, StatusCode: http.StatusInternalServerError}
)

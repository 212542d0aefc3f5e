package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Ledger Business Rules (LED) ----
// Expected rejections: the caller resubmits with corrected input,
// nothing is retried automatically and nothing unwinds the process.

func ErrInvalidAmount() *AppError {
	return New("LED_001", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrInsufficientFunds() *AppError {
	return New("LED_002", "Insufficient balance in account", http.StatusPaymentRequired)
}

func ErrWithdrawalCeilingExceeded() *AppError {
	return New("LED_003", "Withdrawal amount exceeds the per-transaction ceiling", http.StatusUnprocessableEntity)
}

func ErrWithdrawalLimitExceeded() *AppError {
	return New("LED_004", "Maximum number of withdrawals reached", http.StatusUnprocessableEntity)
}

func ErrNotFound(entity string) *AppError {
	return New("LED_005", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrAccountNotOwned() *AppError {
	return New("LED_006", "Account does not belong to this customer", http.StatusForbidden)
}

// ---- Customer Registration (CUS) ----

func ErrInvalidNationalID() *AppError {
	return New("CUS_001", "Invalid CPF", http.StatusBadRequest)
}

func ErrCustomerExists() *AppError {
	return New("CUS_002", "A customer with this CPF is already registered", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-validation error.
func Validation(message string) *AppError {
	return New("LED_000", message, http.StatusBadRequest)
}

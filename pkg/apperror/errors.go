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

// ---- Access Control (ACC) ----

func ErrUnauthorized() *AppError {
	return New("ACC_001", "Caller is not the ledger owner", http.StatusForbidden)
}

func ErrSystemPaused() *AppError {
	return New("ACC_002", "Ledger is paused", http.StatusServiceUnavailable)
}

// ---- Settlement Ledger (SET) ----

func ErrNotVerified() *AppError {
	return New("SET_001", "Participant not verified", http.StatusForbidden)
}

func ErrInvalidAmount() *AppError {
	return New("SET_002", "Settlement amount must be greater than 0", http.StatusBadRequest)
}

func ErrSameParty() *AppError {
	return New("SET_003", "Plaintiff and defendant cannot be the same", http.StatusBadRequest)
}

func ErrDuplicateCaseNumber() *AppError {
	return New("SET_004", "Case number already used", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("SET_005", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrNoOpTransition() *AppError {
	return New("SET_006", "Status is already set to this value", http.StatusConflict)
}

func ErrInvalidStatus() *AppError {
	return New("SET_007", "Unknown settlement status", http.StatusBadRequest)
}

func ErrTransitionDenied() *AppError {
	return New("SET_008", "Status transition not permitted", http.StatusConflict)
}

// ---- Escrow Vault (ESC) ----

func ErrIncorrectAmount() *AppError {
	return New("ESC_001", "Incorrect deposit amount", http.StatusBadRequest)
}

func ErrFundsNotDeposited() *AppError {
	return New("ESC_002", "Funds not deposited", http.StatusConflict)
}

func ErrTransferFailed(err error) *AppError {
	return Wrap("ESC_003", "Value transfer to recipient failed", http.StatusBadGateway, err)
}

func ErrFundsAlreadyDeposited() *AppError {
	return New("ESC_004", "Funds already deposited", http.StatusConflict)
}

// ---- Document Attachment (DOC) ----

func ErrNotAuthorized() *AppError {
	return New("DOC_001", "Not authorized for this settlement", http.StatusForbidden)
}

func ErrInvalidArgument(message string) *AppError {
	return New("DOC_002", message, http.StatusBadRequest)
}

// ---- API Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrCredentialExists() *AppError {
	return New("AUTH_003", "Credential already issued for this identity", http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest)
}

// ErrPayloadTooLarge rejects a request body over the configured limit.
func ErrPayloadTooLarge() *AppError {
	return New("SYS_003", "Request body too large", http.StatusRequestEntityTooLarge)
}

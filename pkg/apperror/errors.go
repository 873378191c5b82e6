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

// ---- Gateway preconditions (GTW) ----

// ErrGatewayUnavailable signals that no session/contract is bound yet.
// Recoverable by connecting a wallet session.
func ErrGatewayUnavailable() *AppError {
	return New("GTW_001", "No ledger session established", http.StatusServiceUnavailable)
}

// ErrPermissionDenied signals a failed role precondition check. The remote
// call is never attempted.
func ErrPermissionDenied(action string) *AppError {
	return New("GTW_002", fmt.Sprintf("Caller is not allowed to %s", action), http.StatusForbidden)
}

// ErrWrongNetwork signals the session is connected to a non-target chain.
// Reads still work; writes are gated until the network is corrected.
func ErrWrongNetwork(got, want int64) *AppError {
	return New("GTW_003", fmt.Sprintf("Connected to chain %d, contract lives on chain %d", got, want), http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("GTW_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Remote ledger (CHAIN) ----

// ErrRemoteCallFailed wraps a revert, malformed response or transport failure.
// Surfaced verbatim to the operator; write calls are never retried.
func ErrRemoteCallFailed(op string, err error) *AppError {
	return Wrap("CHAIN_001", fmt.Sprintf("Ledger call %s failed", op), http.StatusBadGateway, err)
}

// ErrContractMissing signals that no bytecode exists at the configured address.
func ErrContractMissing(addr string) *AppError {
	return New("CHAIN_002", fmt.Sprintf("No contract deployed at %s", addr), http.StatusBadGateway)
}

// ---- Interface schema (SCHEMA) ----

// ErrSchemaLoadFailed signals a missing or malformed ABI document. Fatal at
// startup: no gateway operation is possible without the schema.
func ErrSchemaLoadFailed(err error) *AppError {
	return Wrap("SCHEMA_001", "Contract interface schema missing or malformed", http.StatusInternalServerError, err)
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

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

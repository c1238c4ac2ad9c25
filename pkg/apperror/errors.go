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

// ---- Authorization tokens (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidScope(scope string) *AppError {
	return New("AUTH_002", fmt.Sprintf("Unsupported token scope %q", scope), http.StatusBadRequest)
}

func ErrTokenSigning(err error) *AppError {
	return Wrap("AUTH_003", "Failed to sign authorization token", http.StatusInternalServerError, err)
}

func ErrJWKS(err error) *AppError {
	return Wrap("AUTH_004", "Failed to generate JWKS", http.StatusInternalServerError, err)
}

// ---- Credential flows (FLOW) ----

func ErrFlowNotFound() *AppError {
	return New("FLOW_001", "Flow session not found", http.StatusNotFound)
}

func ErrTransitionNotAllowed(action, state string) *AppError {
	return New("FLOW_002", fmt.Sprintf("Action %q is not available in state %q", action, state), http.StatusConflict)
}

func ErrFlowBusy() *AppError {
	return New("FLOW_003", "Another action is already in progress", http.StatusConflict)
}

func ErrIdentityUnavailable(err error) *AppError {
	return Wrap("FLOW_004", "Identity service unavailable", http.StatusServiceUnavailable, err)
}

func ErrNoPendingSignature() *AppError {
	return New("FLOW_005", "No signature request is pending", http.StatusConflict)
}

// ---- Ad submissions (AD) ----

func ErrNotFound(entity string) *AppError {
	return New("AD_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrInvalidDateRange() *AppError {
	return New("AD_002", "End date must be after start date", http.StatusBadRequest)
}

func ErrInvalidStatus(status string) *AppError {
	return New("AD_003", fmt.Sprintf("Invalid status %q", status), http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// PayloadTooLarge returns a VAL_002 error for oversized request bodies.
func PayloadTooLarge(limit int64) *AppError {
	return New("VAL_002", fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes exposed to API clients.
const (
	CodeNotFound           = "REG_001"
	CodeAlreadyRegistered  = "REG_002"
	CodeUnauthorized       = "AUTHZ_001"
	CodeUnknownCategory    = "SVC_001"
	CodeServiceNotFound    = "SVC_002"
	CodeWrongCategory      = "SVC_003"
	CodeServiceInactive    = "SVC_004"
	CodeInvalidArgument    = "VAL_001"
	CodeInvalidCredentials = "AUTH_001"
	CodeInvalidToken       = "AUTH_002"
	CodeRateLimitExceeded  = "RATE_001"
	CodeInternal           = "SYS_001"
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

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return CodeOf(err) == code
}

// ---- Registry (REG) ----

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrAlreadyRegistered(entity string) *AppError {
	return New(CodeAlreadyRegistered, fmt.Sprintf("%s already registered", entity), http.StatusConflict)
}

// ---- Authorization (AUTHZ) ----

func ErrUnauthorized() *AppError {
	return New(CodeUnauthorized, "Caller is not permitted to modify this resource", http.StatusForbidden)
}

// ---- Service catalog (SVC) ----

func ErrUnknownCategory(tag string) *AppError {
	return New(CodeUnknownCategory, fmt.Sprintf("category %q has not been added for this token", tag), http.StatusUnprocessableEntity)
}

func ErrServiceNotFound() *AppError {
	return New(CodeServiceNotFound, "Service not found", http.StatusNotFound)
}

func ErrWrongCategory(want, got string) *AppError {
	return New(CodeWrongCategory, fmt.Sprintf("service category is %q, expected %q", got, want), http.StatusUnprocessableEntity)
}

func ErrServiceInactive() *AppError {
	return New(CodeServiceInactive, "Service is not an active provider", http.StatusUnprocessableEntity)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New(CodeInvalidArgument, message, http.StatusBadRequest)
}

// InvalidArgument wraps a parse or validation failure as VAL_001.
func InvalidArgument(err error) *AppError {
	return Wrap(CodeInvalidArgument, err.Error(), http.StatusBadRequest, err)
}

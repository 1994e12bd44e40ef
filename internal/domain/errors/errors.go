package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"尚未登入，請先登入",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// ErrMissingTarget is returned when an update is attempted without a
	// bound entity (no active edit).
	ErrMissingTarget = NewBaseError(
		http.StatusBadRequest,
		"MISSING_TARGET",
		"沒有選擇要編輯的項目",
		"",
	)

	// ErrInvalidIdentifier is returned when a local identifier is missing
	// or malformed. It is resolved locally and never sent to the backend.
	ErrInvalidIdentifier = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IDENTIFIER",
		"識別碼無效或遺失",
		"",
	)

	// Catalog-related errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"找不到該分類",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"找不到該商品",
		"",
	)

	// Cart-related errors
	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"商品庫存不足",
		"",
	)

	ErrCartItemMissingID = NewBaseError(
		http.StatusBadGateway,
		"CART_ITEM_MISSING_ID",
		"購物車資料不完整，缺少項目識別碼",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// NewValidationError creates a client-detected validation failure carrying
// a field-specific message. Validation errors are resolved locally and
// never reach the network.
func NewValidationError(message string) AppError {
	return NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", message, "")
}

// RemoteError represents a non-success outcome reported by the catalog
// backend, implementing the AppError interface. The backend's own message
// takes precedence over a generic fallback when one is present.
type RemoteError struct {
	statusCode int
	code       string
	message    string
}

// NewRemoteError creates a backend-sourced error. An empty message falls
// back to the standard status text.
func NewRemoteError(statusCode int, code, message string) AppError {
	if code == "" {
		code = "REMOTE_ERROR"
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return &RemoteError{
		statusCode: statusCode,
		code:       code,
		message:    message,
	}
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code reported by the backend
func (e *RemoteError) HTTPCode() int {
	return e.statusCode
}

// ErrorCode returns the business error code
func (e *RemoteError) ErrorCode() string {
	return e.code
}

// Message returns the backend-sourced message verbatim
func (e *RemoteError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *RemoteError) Details() string {
	return ""
}

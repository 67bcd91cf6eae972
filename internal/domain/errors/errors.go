package errors

import (
	"net/http"

	"koostory/internal/errors"
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
	// Credential and registration errors
	ErrCredentialsRequired = NewBaseError(
		http.StatusBadRequest,
		"CREDENTIALS_REQUIRED",
		"Email and password are required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrRegistrationFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"REGISTRATION_FIELDS_REQUIRED",
		"All fields are required",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password must be at least 8 characters",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"Email already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Session errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	ErrSessionCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"SESSION_CREATION_FAILED",
		"Failed to create session",
		"",
	)

	// Blog errors
	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"Post not found",
		"",
	)

	ErrPostSlugTaken = NewBaseError(
		http.StatusConflict,
		"POST_SLUG_TAKEN",
		"A post with this slug already exists",
		"",
	)

	// Translation proxy errors
	ErrTranslationNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"TRANSLATION_NOT_CONFIGURED",
		"Translation service is not configured",
		"",
	)

	ErrInvalidJSON = NewBaseError(
		http.StatusBadRequest,
		"INVALID_JSON",
		"Invalid JSON",
		"",
	)

	ErrTranslationTextRequired = NewBaseError(
		http.StatusBadRequest,
		"TRANSLATION_TEXT_REQUIRED",
		"Text is required",
		"",
	)

	ErrTranslationTargetInvalid = NewBaseError(
		http.StatusBadRequest,
		"TRANSLATION_TARGET_INVALID",
		"Invalid target language. Must be EN, KO, or DE",
		"",
	)

	ErrTranslationEmpty = NewBaseError(
		http.StatusInternalServerError,
		"TRANSLATION_EMPTY",
		"No translation returned",
		"",
	)

	// Email proxy errors
	ErrEmailSendFailed = NewBaseError(
		http.StatusInternalServerError,
		"EMAIL_SEND_FAILED",
		"Failed to send email notification",
		"",
	)

	ErrEmailRecipientMissing = NewBaseError(
		http.StatusServiceUnavailable,
		"EMAIL_RECIPIENT_MISSING",
		"Test recipient is not configured",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found",
		"",
	)
)

// UpstreamError is a failure reported by a third-party API behind one of the proxies.
// Upstream 5xx responses surface as 502, anything else keeps the upstream status.
type UpstreamError struct {
	service    string
	statusCode int
	message    string
}

// NewUpstreamError creates an error for a non-success upstream response
func NewUpstreamError(service string, statusCode int, message string) *UpstreamError {
	return &UpstreamError{service: service, statusCode: statusCode, message: message}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return e.service + " returned " + http.StatusText(e.statusCode) + ": " + e.message
}

// HTTPCode returns the status the proxy answers with
func (e *UpstreamError) HTTPCode() int {
	if e.statusCode >= http.StatusInternalServerError || e.statusCode < http.StatusBadRequest {
		return http.StatusBadGateway
	}

	return e.statusCode
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_ERROR"
}

// Message returns the user-facing message
func (e *UpstreamError) Message() string {
	return e.service + " API error"
}

// Details is always empty. The upstream body stays in Error() for the logs and is
// never sent to the browser.
func (e *UpstreamError) Details() string {
	return ""
}

// StatusCode returns the raw upstream status
func (e *UpstreamError) StatusCode() int {
	return e.statusCode
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

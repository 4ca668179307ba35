// Package errors defines the application error taxonomy. Every failure the
// core surfaces to a caller is one of these typed values, mapped to an HTTP
// status at the delivery boundary.
package errors

import (
	"net/http"

	"shelfswap/internal/errors"
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
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"No account associated with this ID",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	// Book and list errors
	ErrBookNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOK_NOT_FOUND",
		"No book with the given ID",
		"",
	)

	ErrInvalidBookKey = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BOOK_KEY",
		"Book identifier is not a valid Open Library key",
		"",
	)

	ErrEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTRY_NOT_FOUND",
		"Book was not found in the user's list",
		"",
	)

	ErrDuplicateEntry = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ENTRY",
		"Book is already in this list",
		"",
	)

	ErrMutualExclusion = NewBaseError(
		http.StatusConflict,
		"SHELF_WISHLIST_EXCLUSIVE",
		"Book cannot be on the shelf and the wishlist at the same time",
		"",
	)

	// Conversation and messaging errors
	ErrConversationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONVERSATION_NOT_FOUND",
		"Conversation not found",
		"",
	)

	ErrConversationExists = NewBaseError(
		http.StatusConflict,
		"CONVERSATION_EXISTS",
		"A conversation already exists between these users",
		"",
	)

	ErrSelfConversation = NewBaseError(
		http.StatusBadRequest,
		"SELF_CONVERSATION",
		"Cannot start a conversation with yourself",
		"",
	)

	ErrNotParticipant = NewBaseError(
		http.StatusForbidden,
		"NOT_PARTICIPANT",
		"User is not part of this conversation",
		"",
	)

	ErrNotRecipient = NewBaseError(
		http.StatusForbidden,
		"NOT_RECIPIENT",
		"Only the recipient may act on this request",
		"",
	)

	ErrRequestNotPending = NewBaseError(
		http.StatusConflict,
		"REQUEST_NOT_PENDING",
		"Message request is not pending",
		"",
	)

	ErrConversationNotAccepted = NewBaseError(
		http.StatusConflict,
		"CONVERSATION_NOT_ACCEPTED",
		"Cannot send a message to a non-accepted conversation",
		"",
	)

	ErrMessageTooLong = NewBaseError(
		http.StatusBadRequest,
		"MESSAGE_TOO_LONG",
		"Message content exceeds the allowed length",
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

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

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

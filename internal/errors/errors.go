package errors

import (
	"errors"
	"fmt"
)

// NewParseError creates a parse error with one of the parse error codes
func NewParseError(code string, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: message,
		Code:    code,
		Context: make(map[string]interface{}),
	}
}

// NewUnrecognizedCommandError creates a parse error for command text that
// matches no supported grammar
func NewUnrecognizedCommandError(text string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: "could not recognize command",
		Code:    CodeUnrecognizedCommand,
		Context: map[string]interface{}{
			"text": text,
		},
	}
}

// NewInvalidTimeError creates a parse error for an out-of-range clock time
func NewInvalidTimeError(hour, minute int) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("invalid time %dh%02d: hour must be 0-23 and minute 0-59", hour, minute),
		Code:    CodeInvalidTime,
		Context: map[string]interface{}{
			"hour":   hour,
			"minute": minute,
		},
	}
}

// NewInvalidDayError creates a parse error for a day outside the month's range
func NewInvalidDayError(day int, daysInMonth int) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("invalid day %d: this month has %d days", day, daysInMonth),
		Code:    CodeInvalidDay,
		Context: map[string]interface{}{
			"day":           day,
			"days_in_month": daysInMonth,
		},
	}
}

// NewAmbiguousSpecError creates a parse error for a temporal spec that matches
// no supported grammar
func NewAmbiguousSpecError(spec string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("could not interpret %q as a time or day", spec),
		Code:    CodeAmbiguousSpec,
		Context: map[string]interface{}{
			"spec": spec,
		},
	}
}

// NewPendingAlreadyExistsError creates a state error for a second enter
// while one is already open
func NewPendingAlreadyExistsError() *AppError {
	return &AppError{
		Type:    ErrorTypeState,
		Message: "a pending entry already exists; leave first or clear it",
		Code:    CodePendingAlreadyExists,
		Context: make(map[string]interface{}),
	}
}

// NewNoPendingEntryError creates a state error for a leave without a
// matching enter
func NewNoPendingEntryError() *AppError {
	return &AppError{
		Type:    ErrorTypeState,
		Message: "no pending entry; enter first",
		Code:    CodeNoPendingEntry,
		Context: make(map[string]interface{}),
	}
}

// NewLeaveBeforeEnterError creates a state error for a span whose leave
// instant is not after its enter instant
func NewLeaveBeforeEnterError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeState,
		Message: message,
		Code:    CodeLeaveBeforeEnter,
		Context: make(map[string]interface{}),
	}
}

// NewPersistenceError creates a persistence error for a failed durable write
func NewPersistenceError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypePersistence,
		Message: fmt.Sprintf("persistence operation failed: %s", operation),
		Code:    CodeWriteFailed,
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsErrorCode checks if the error carries the specified code
func IsErrorCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsCode(code)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeParse:
			return appErr.Message
		case ErrorTypeState:
			return appErr.Message
		case ErrorTypeValidation:
			return appErr.Message
		case ErrorTypeNotFound:
			return appErr.Message
		case ErrorTypePersistence:
			return "Could not save your entry. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeParse, ErrorTypeState, ErrorTypeValidation, ErrorTypeNotFound:
			return false // These are user errors, not system errors
		case ErrorTypePersistence:
			return true // Operator must see failed durable writes
		default:
			return true
		}
	}
	return true // Unknown errors should be logged
}

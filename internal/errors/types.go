package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeParse ErrorType = iota
	ErrorTypeState
	ErrorTypePersistence
	ErrorTypeValidation
	ErrorTypeNotFound
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeParse:
		return "parse"
	case ErrorTypeState:
		return "state"
	case ErrorTypePersistence:
		return "persistence"
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error codes for parse errors
const (
	CodeUnrecognizedCommand = "UNRECOGNIZED_COMMAND"
	CodeInvalidTime         = "INVALID_TIME"
	CodeInvalidDay          = "INVALID_DAY"
	CodeAmbiguousSpec       = "AMBIGUOUS_SPEC"
)

// Error codes for state errors
const (
	CodePendingAlreadyExists = "PENDING_ALREADY_EXISTS"
	CodeNoPendingEntry       = "NO_PENDING_ENTRY"
	CodeLeaveBeforeEnter     = "LEAVE_BEFORE_ENTER"
)

// Error codes for persistence errors
const (
	CodeWriteFailed = "WRITE_FAILED"
)

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error type and code
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// IsCode checks if this error carries the specified code
func (e *AppError) IsCode(code string) bool {
	return e.Code == code
}

// WithContext adds context information to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// GetContext retrieves context information from the error
func (e *AppError) GetContext(key string) (interface{}, bool) {
	if e.Context == nil {
		return nil, false
	}
	value, exists := e.Context[key]
	return value, exists
}

package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Input errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrParse        ErrorCode = "PARSE_ERROR"
	ErrFormat       ErrorCode = "FORMAT_ERROR"

	// Locator errors
	ErrGroupNotFound  ErrorCode = "GROUP_NOT_FOUND"
	ErrTargetNotFound ErrorCode = "TARGET_NOT_FOUND"

	// Reorder errors
	ErrDuplicateName ErrorCode = "DUPLICATE_NAME"

	// Output errors
	ErrIO ErrorCode = "IO_ERROR"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
)

// ReorderError represents a structured error with code and details
type ReorderError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ReorderError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ReorderError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ReorderError) Is(target error) bool {
	var targetErr *ReorderError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ReorderError with the given code and message
func New(code ErrorCode, message string) *ReorderError {
	return &ReorderError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ReorderError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ReorderError {
	return &ReorderError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ReorderError
func Wrap(err error, code ErrorCode, message string) *ReorderError {
	if err == nil {
		return nil
	}
	return &ReorderError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ReorderError {
	if err == nil {
		return nil
	}
	return &ReorderError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ReorderError) WithDetail(key string, value interface{}) *ReorderError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var reorderErr *ReorderError
	if errors.As(err, &reorderErr) {
		return reorderErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ReorderError
func GetErrorCode(err error) ErrorCode {
	var reorderErr *ReorderError
	if errors.As(err, &reorderErr) {
		return reorderErr.Code
	}
	return ErrUnknown
}

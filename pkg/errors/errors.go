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

	// Registry errors
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrUnknownGroup   ErrorCode = "UNKNOWN_GROUP"

	// Settings errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Environment errors
	ErrEnvRead  ErrorCode = "ENV_READ"
	ErrEnvWrite ErrorCode = "ENV_WRITE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// PathgroupError represents a structured error with code and details
type PathgroupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PathgroupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PathgroupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PathgroupError) Is(target error) bool {
	var targetErr *PathgroupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PathgroupError with the given code and message
func New(code ErrorCode, message string) *PathgroupError {
	return &PathgroupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PathgroupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PathgroupError {
	return &PathgroupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PathgroupError
func Wrap(err error, code ErrorCode, message string) *PathgroupError {
	if err == nil {
		return nil
	}
	return &PathgroupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PathgroupError {
	if err == nil {
		return nil
	}
	return &PathgroupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PathgroupError) WithDetail(key string, value interface{}) *PathgroupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pgErr *PathgroupError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PathgroupError
func GetErrorCode(err error) ErrorCode {
	var pgErr *PathgroupError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PathgroupError
func GetErrorDetails(err error) map[string]interface{} {
	var pgErr *PathgroupError
	if errors.As(err, &pgErr) {
		return pgErr.Details
	}
	return nil
}

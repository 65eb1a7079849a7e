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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Repository and manifest errors
	ErrRepoNotFound         ErrorCode = "REPO_NOT_FOUND"
	ErrDistributionNotFound ErrorCode = "DISTRIBUTION_NOT_FOUND"
	ErrDistributionParse    ErrorCode = "DISTRIBUTION_PARSE"

	// Command errors
	ErrInvalidCommand ErrorCode = "INVALID_COMMAND"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// Ignore file errors
	ErrIgnorePattern ErrorCode = "IGNORE_PATTERN"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// DotsyncError represents a structured error with code and details
type DotsyncError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotsyncError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotsyncError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotsyncError) Is(target error) bool {
	var targetErr *DotsyncError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotsyncError with the given code and message
func New(code ErrorCode, message string) *DotsyncError {
	return &DotsyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotsyncError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotsyncError {
	return &DotsyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotsyncError
func Wrap(err error, code ErrorCode, message string) *DotsyncError {
	if err == nil {
		return nil
	}
	return &DotsyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotsyncError {
	if err == nil {
		return nil
	}
	return &DotsyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotsyncError) WithDetail(key string, value interface{}) *DotsyncError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dsErr *DotsyncError
	if errors.As(err, &dsErr) {
		return dsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotsyncError
func GetErrorCode(err error) ErrorCode {
	var dsErr *DotsyncError
	if errors.As(err, &dsErr) {
		return dsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotsyncError
func GetErrorDetails(err error) map[string]interface{} {
	var dsErr *DotsyncError
	if errors.As(err, &dsErr) {
		return dsErr.Details
	}
	return nil
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

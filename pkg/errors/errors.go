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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigSave     ErrorCode = "CONFIG_SAVE"
	ErrPresetNotFound ErrorCode = "PRESET_NOT_FOUND"

	// Mod errors
	ErrModDirNotFound ErrorCode = "MOD_DIR_NOT_FOUND"
	ErrModNotFound    ErrorCode = "MOD_NOT_FOUND"
	ErrManifestRead   ErrorCode = "MANIFEST_READ"
	ErrConflictRead   ErrorCode = "CONFLICT_READ"

	// Output errors
	ErrMergeWrite ErrorCode = "MERGE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileAccess ErrorCode = "FILE_ACCESS"

	// Game errors
	ErrGameNotFound ErrorCode = "GAME_NOT_FOUND"
	ErrLaunch       ErrorCode = "LAUNCH"
)

// LauncherError represents a structured error with code and details
type LauncherError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LauncherError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LauncherError) Unwrap() error {
	return e.Wrapped
}

// Is matches another LauncherError by code
func (e *LauncherError) Is(target error) bool {
	var targetErr *LauncherError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LauncherError with the given code and message
func New(code ErrorCode, message string) *LauncherError {
	return &LauncherError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LauncherError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LauncherError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *LauncherError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LauncherError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *LauncherError) WithDetail(key string, value interface{}) *LauncherError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var le *LauncherError
	if errors.As(err, &le) {
		return le.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LauncherError
func GetErrorCode(err error) ErrorCode {
	var le *LauncherError
	if errors.As(err, &le) {
		return le.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LauncherError
func GetErrorDetails(err error) map[string]interface{} {
	var le *LauncherError
	if errors.As(err, &le) {
		return le.Details
	}
	return nil
}

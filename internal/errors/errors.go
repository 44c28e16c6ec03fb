package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeParsing    ErrorType = "PARSING"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeStorage    ErrorType = "STORAGE"
	ErrTypeConfig     ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// ErrEmptyWorkbook indicates an uploaded workbook with no sheets at all.
var ErrEmptyWorkbook = NewAppError(ErrTypeParsing, "workbook contains no sheets", nil)

// MissingColumnsError indicates one or more expected header columns are
// absent from the sheet. Columns lists every missing name.
type MissingColumnsError struct {
	Columns []string
}

// Error implements the error interface
func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("[%s] missing expected columns: %s", ErrTypeValidation, strings.Join(e.Columns, ", "))
}

// NewMissingColumnsError creates a missing-columns ingestion error
func NewMissingColumnsError(columns []string) *MissingColumnsError {
	return &MissingColumnsError{Columns: columns}
}

// IsMissingColumns reports whether err wraps a MissingColumnsError and
// returns it when it does.
func IsMissingColumns(err error) (*MissingColumnsError, bool) {
	var mc *MissingColumnsError
	if errors.As(err, &mc) {
		return mc, true
	}
	return nil, false
}

// NewUnreadableFileError creates a byte-level read failure error
func NewUnreadableFileError(cause error) *AppError {
	return NewAppError(ErrTypeStorage, "unable to read uploaded file", cause)
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeMissingField ErrorCode = "MISSING_FIELD"

	// Relay specific errors
	CodeUnknownAction     ErrorCode = "UNKNOWN_ACTION"
	CodeLLMServiceError   ErrorCode = "LLM_SERVICE_ERROR"
	CodeMalformedResponse ErrorCode = "MALFORMED_GENERATION"
)

// DomainError represents a domain-specific error. Message is safe to show to
// the end user; Cause is for logs only.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail that the HTTP layer reports alongside the message.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnknownActionError(action string) *DomainError {
	return NewError(CodeUnknownAction, fmt.Sprintf("Unknown action: %s", action), nil)
}

// NewLLMServiceError carries the generator's own message, e.g. "API Error: ...".
func NewLLMServiceError(err error) *DomainError {
	msg := "Failed to get a response from the model"
	if err != nil {
		msg = err.Error()
	}
	return NewError(CodeLLMServiceError, msg, err)
}

func NewMalformedResponseError(message string, err error) *DomainError {
	return NewError(CodeMalformedResponse, message, err)
}

// ValidationError describes one invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field problem of a request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	if len(v) == 1 {
		return v[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %q", value)}
}

// UserMessage returns the text that may be shown to the caller for err.
func UserMessage(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}

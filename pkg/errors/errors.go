// Package errors defines custom error types and error handling utilities for the
// MFO Shield Risk Service. This package provides structured error types that map
// to application error codes and HTTP status codes.
package errors

import (
	"fmt"
	"net/http"

	"github.com/turtacn/mfo-shield/pkg/constants"
)

// ================================================================================
// Base Error Interface
// ================================================================================

// ShieldError represents a structured error with additional metadata
type ShieldError interface {
	error

	// Code returns the application error code
	Code() constants.ErrorCode

	// HTTPStatus returns the HTTP status code
	HTTPStatus() int

	// Description returns a human-readable description
	Description() string

	// Unwrap returns the underlying error for error chain support
	Unwrap() error

	// WithCause adds a cause error to the error chain
	WithCause(cause error) ShieldError

	// WithMetadata adds additional context metadata
	WithMetadata(key string, value interface{}) ShieldError

	// Metadata returns all metadata
	Metadata() map[string]interface{}
}

// ================================================================================
// Base Error Implementation
// ================================================================================

// baseError is the internal implementation of ShieldError
type baseError struct {
	code        constants.ErrorCode
	httpStatus  int
	description string
	message     string
	cause       error
	metadata    map[string]interface{}
}

// Error implements the error interface
func (e *baseError) Error() string {
	if e.message != "" {
		return e.message
	}
	return e.description
}

// Code returns the application error code
func (e *baseError) Code() constants.ErrorCode {
	return e.code
}

// HTTPStatus returns the HTTP status code
func (e *baseError) HTTPStatus() int {
	return e.httpStatus
}

// Description returns the error description
func (e *baseError) Description() string {
	return e.description
}

// Unwrap returns the underlying cause error
func (e *baseError) Unwrap() error {
	return e.cause
}

// WithCause adds a cause error to the error chain
func (e *baseError) WithCause(cause error) ShieldError {
	e.cause = cause
	return e
}

// WithMetadata adds additional context metadata
func (e *baseError) WithMetadata(key string, value interface{}) ShieldError {
	if e.metadata == nil {
		e.metadata = make(map[string]interface{})
	}
	e.metadata[key] = value
	return e
}

// Metadata returns all metadata
func (e *baseError) Metadata() map[string]interface{} {
	return e.metadata
}

// ================================================================================
// Error Constructor
// ================================================================================

// NewError creates a new ShieldError with the specified parameters
func NewError(code constants.ErrorCode, httpStatus int, description string, message string) ShieldError {
	return &baseError{
		code:        code,
		httpStatus:  httpStatus,
		description: description,
		message:     message,
		metadata:    make(map[string]interface{}),
	}
}

// ================================================================================
// Predefined Error Constructors
// ================================================================================

// ErrInvalidSubjectID creates the error returned when the subject path segment is blank
func ErrInvalidSubjectID() ShieldError {
	return NewError(
		constants.ErrCodeInvalidRequest,
		http.StatusBadRequest,
		"The subject_id path parameter must be a non-empty string.",
		"Invalid subject_id",
	)
}

// ErrInvalidRequestBody creates the error returned when the request body cannot be decoded
func ErrInvalidRequestBody() ShieldError {
	return NewError(
		constants.ErrCodeInvalidRequest,
		http.StatusBadRequest,
		"The request body must be a JSON object mapping factor names to numeric values.",
		"Invalid request body",
	)
}

// ErrEndpointNotFound creates the error returned for unmatched routes
func ErrEndpointNotFound() ShieldError {
	return NewError(
		constants.ErrCodeNotFound,
		http.StatusNotFound,
		"No handler is registered for the requested method and path.",
		"Endpoint not found",
	)
}

// ErrInternalServer creates the generic error returned for unexpected server faults.
// Internal detail is attached as the cause for logging and never surfaced to callers.
func ErrInternalServer(cause error) ShieldError {
	e := NewError(
		constants.ErrCodeServerError,
		http.StatusInternalServerError,
		"The service encountered an unexpected condition that prevented it from fulfilling the request.",
		"Internal server error",
	)
	if cause != nil {
		e.WithCause(cause)
	}
	return e
}

// ErrIdempotencyReplay creates the error returned when an idempotency key is reused
func ErrIdempotencyReplay(key string) ShieldError {
	return NewError(
		constants.ErrCodeConflict,
		http.StatusConflict,
		"A request carrying the same Idempotency-Key was already processed within the replay window.",
		"Duplicate request",
	).WithMetadata("idempotency_key", key)
}

// ErrMissingRequiredParameter creates a missing required parameter error
func ErrMissingRequiredParameter(paramName string) ShieldError {
	return NewError(
		constants.ErrCodeInvalidRequest,
		http.StatusBadRequest,
		"The request is missing a required parameter.",
		fmt.Sprintf("Missing required parameter: %s", paramName),
	).WithMetadata("parameter", paramName)
}

// ErrInvalidParameterFormat creates an invalid parameter format error
func ErrInvalidParameterFormat(paramName string, expectedFormat string) ShieldError {
	return NewError(
		constants.ErrCodeInvalidRequest,
		http.StatusBadRequest,
		"A request parameter does not match its expected format.",
		fmt.Sprintf("Invalid format for parameter '%s': expected %s", paramName, expectedFormat),
	).WithMetadata("parameter", paramName).
		WithMetadata("expected_format", expectedFormat)
}

// ErrAgentExecution creates an agent task failure error for orchestration logs
func ErrAgentExecution(agentID string, cause error) ShieldError {
	return NewError(
		constants.ErrCodeServerError,
		http.StatusInternalServerError,
		"An orchestrated agent task returned an error.",
		fmt.Sprintf("Agent %s execution failed", agentID),
	).WithMetadata("agent_id", agentID).
		WithCause(cause)
}

// ================================================================================
// Error Validation Utilities
// ================================================================================

// IsShieldError checks if an error is a ShieldError
func IsShieldError(err error) bool {
	_, ok := err.(ShieldError)
	return ok
}

// AsShieldError attempts to cast an error to ShieldError
func AsShieldError(err error) (ShieldError, bool) {
	shieldErr, ok := err.(ShieldError)
	return shieldErr, ok
}

// WrapError wraps a generic error into a ShieldError
func WrapError(err error, code constants.ErrorCode, message string) ShieldError {
	var httpStatus int

	switch code {
	case constants.ErrCodeInvalidRequest:
		httpStatus = http.StatusBadRequest
	case constants.ErrCodeNotFound:
		httpStatus = http.StatusNotFound
	case constants.ErrCodeConflict:
		httpStatus = http.StatusConflict
	default:
		httpStatus = http.StatusInternalServerError
	}

	return NewError(code, httpStatus, err.Error(), message).WithCause(err)
}

// HTTPStatusFor resolves the response status for any error, defaulting to 500
func HTTPStatusFor(err error) int {
	if shieldErr, ok := AsShieldError(err); ok {
		return shieldErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// ShouldLogError determines if an error should be logged based on severity
func ShouldLogError(err error) bool {
	if shieldErr, ok := AsShieldError(err); ok {
		return shieldErr.HTTPStatus() >= http.StatusInternalServerError
	}
	return true
}

// ================================================================================
// Error Response Builder
// ================================================================================

// ErrorResponse represents the JSON structure for error responses.
// The wire contract is a single "error" field carrying a fixed message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToErrorResponse converts a ShieldError to an ErrorResponse
func ToErrorResponse(err ShieldError) *ErrorResponse {
	return &ErrorResponse{Error: err.Error()}
}

// ToGenericErrorResponse converts any error to an ErrorResponse.
// Non-ShieldError values collapse to the generic server error body so internal
// detail never reaches the caller.
func ToGenericErrorResponse(err error) *ErrorResponse {
	if shieldErr, ok := AsShieldError(err); ok {
		return ToErrorResponse(shieldErr)
	}
	return &ErrorResponse{Error: "Internal server error"}
}

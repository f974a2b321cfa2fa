package domain

import (
	"errors"
	"fmt"
	"time"
)

// Validation and precondition errors for report composition.
var (
	ErrNotFound = errors.New("not found")

	// RRN parse failures. All of them mean "cannot auto-fill"; callers leave
	// existing demographic fields untouched.
	ErrRRNTooShort     = errors.New("RRN has fewer than 7 digits")
	ErrRRNCenturyDigit = errors.New("invalid RRN century/sex digit")
	ErrRRNDateRange    = errors.New("RRN birth month or day out of range")

	// Missing-precondition errors for filename suggestion and report save.
	ErrMissingPatientName = errors.New("patient name is required")
	ErrMissingExamType    = errors.New("examination type is required")

	// ErrUnknownFinding means a selected abnormal finding is not part of the
	// active template's vocabulary.
	ErrUnknownFinding = errors.New("finding not in template vocabulary")
)

// Error codes for API error responses.
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodePrecondition = "PRECONDITION_FAILED"
	ErrCodeStorage      = "STORAGE_ERROR"
	ErrCodeRateLimit    = "RATE_LIMIT_EXCEEDED"
)

// APIError is the standardized error body returned by the HTTP surface.
type APIError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAPIError creates a new APIError stamped with the current time.
func NewAPIError(code, message, details, requestID string) *APIError {
	return &APIError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		RequestID: requestID,
	}
}

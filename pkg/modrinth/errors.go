package modrinth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a non-success response from the Modrinth API.
type APIError struct {
	// Status is the HTTP status code, preserved even when the error body
	// could not be parsed.
	Status int `json:"status" yaml:"status"`
	// ErrorCode is the machine-readable error name from the response body
	// (e.g. "not_found"), empty when the body was not the structured
	// error payload.
	ErrorCode string `json:"error"       yaml:"error"`
	// Reason is the human-readable description from the response body, or
	// the raw body text when the structured payload could not be parsed.
	Reason string `json:"description" yaml:"description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.ErrorCode, e.Reason, e.Status)
	}

	return fmt.Sprintf("api error: %s (status: %d)", e.Reason, e.Status)
}

// InvalidIdentifierError reports an ID or slug that failed validation
// before any request was sent.
type InvalidIdentifierError struct {
	ID string
}

// Error implements the error interface.
func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid ID or slug %q", e.ID)
}

// TransportError represents a network-level failure (DNS, connection,
// timeout, TLS) before any HTTP status was received.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError represents a success response whose body did not match the
// expected schema. Body carries the raw bytes for diagnosis.
type DecodeError struct {
	Body []byte
	Err  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response body: %v", e.Err)
}

// Unwrap returns the underlying parse failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SerializationError represents a local failure to JSON-encode an
// outgoing filter or body value. It indicates a programmer error and is
// surfaced rather than swallowed.
type SerializationError struct {
	Err error
}

// Error implements the error interface.
func (e *SerializationError) Error() string {
	return fmt.Sprintf("encoding request value: %v", e.Err)
}

// Unwrap returns the underlying encode failure.
func (e *SerializationError) Unwrap() error {
	return e.Err
}

// Error codes returned by the Modrinth API.
const (
	ErrorCodeNotFound     = "not_found"
	ErrorCodeUnauthorized = "unauthorized"
	ErrorCodeInvalidInput = "invalid_input"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrInvalidEndpoint       = errors.New("API endpoint is not a valid URL")
	ErrNilReport             = errors.New("report submission is required")
	ErrReportTypeRequired    = errors.New("report type is required")
	ErrReportBodyRequired    = errors.New("report body is required")
	ErrInvalidReportItemType = errors.New("item type must be one of: project, version, user")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an unauthorized error. Calls
// that require authentication fail this way when no token is configured.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized
	}

	return false
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusForbidden
	}

	return false
}

// IsRateLimited checks if the error is a rate limit error. With retries
// disabled (the default) rate limit responses surface here immediately.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusTooManyRequests
	}

	return false
}

// IsInvalidIdentifier checks if the error is an identifier validation
// error raised before any network call.
func IsInvalidIdentifier(err error) bool {
	invalidErr := &InvalidIdentifierError{}

	return errors.As(err, &invalidErr)
}

// ParseAPIError builds an APIError from a non-success response. The body
// is expected to be Modrinth's structured error payload
// {"error": "...", "description": "..."}; when it is not, the raw body
// text becomes the reason so the status is never lost.
func ParseAPIError(status int, body []byte) *APIError {
	var wire struct {
		Error       string `json:"error"`
		Description string `json:"description"`
	}

	err := json.Unmarshal(body, &wire)
	if err == nil && wire.Description != "" {
		return &APIError{Status: status, ErrorCode: wire.Error, Reason: wire.Description}
	}

	return &APIError{Status: status, Reason: strings.TrimSpace(string(body))}
}

// Test error variables for test files to comply with err113.
var (
	ErrSomeError = errors.New("some error")
)

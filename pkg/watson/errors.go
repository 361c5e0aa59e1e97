package watson

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the watson package.
var (
	// ErrMissingVersion indicates the required version date was not provided.
	ErrMissingVersion = errors.New("watson: version date is required")

	// ErrMissingURL indicates no service endpoint could be resolved.
	ErrMissingURL = errors.New("watson: service URL is required")

	// ErrMissingCredentials indicates no usable credentials were found.
	ErrMissingCredentials = errors.New("watson: no credentials provided")

	// ErrNilOptions indicates a nil options struct was passed to an operation.
	ErrNilOptions = errors.New("watson: options cannot be nil")

	// ErrMissingField indicates a required option field was empty.
	ErrMissingField = errors.New("watson: required field missing")
)

// MissingField wraps ErrMissingField with the field name, mirroring the
// client-side checks the service would otherwise reject with a 400.
func MissingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

// APIError is an error response from a Watson service. The service
// reports errors as a JSON body alongside a non-2xx status; both are
// preserved here.
type APIError struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Code is the error code from the response body, when present.
	Code int

	// Message is the vendor's error message.
	Message string

	// Description is the vendor's code_description, when present.
	Description string

	// TransactionID is the X-Global-Transaction-Id echoed by the
	// service, useful when raising support tickets.
	TransactionID string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("watson: API error (HTTP %d %s): %s", e.StatusCode, e.Description, e.Message)
	}
	return fmt.Sprintf("watson: API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// IsRetryable reports whether the request may be retried as-is.
func (e *APIError) IsRetryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Error classification helpers.

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 or 403 from the service.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// IsRateLimited reports whether err is a 429 from the service.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}

// IsRetryable reports whether err can be retried: rate limits and
// server-side failures qualify, client errors do not.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsRetryable()
	}
	return false
}

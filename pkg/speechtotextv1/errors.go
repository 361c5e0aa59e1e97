package speechtotextv1

import (
	"errors"
	"fmt"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

// Sentinel errors for the speechtotextv1 package.
var (
	// ErrNotConnected indicates the WebSocket session is not open.
	ErrNotConnected = errors.New("speechtotext: not connected")

	// ErrAlreadyConnected indicates the session is already open. A
	// session is single-use; create a new one to recognize again.
	ErrAlreadyConnected = errors.New("speechtotext: already connected")

	// ErrConnectionClosed indicates the connection was closed before
	// the final result arrived.
	ErrConnectionClosed = errors.New("speechtotext: connection closed")

	// ErrNilCallback indicates RecognizeUsingWebSocket was called
	// without a callback.
	ErrNilCallback = errors.New("speechtotext: callback is required")

	// ErrNilAudio indicates a recognize call without an audio source.
	ErrNilAudio = errors.New("speechtotext: audio is required")
)

// ConnectionError represents a WebSocket connection failure.
type ConnectionError struct {
	// Reason describes what failed.
	Reason string

	// Cause is the underlying error.
	Cause error

	// Retryable indicates whether a new session is worth attempting.
	Retryable bool
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("speechtotext: connection error: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("speechtotext: connection error: %s", e.Reason)
}

// Unwrap returns the underlying cause.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// IsRetryable returns true if a new session is worth attempting.
func (e *ConnectionError) IsRetryable() bool {
	return e.Retryable
}

// NewConnectionError creates a ConnectionError.
func NewConnectionError(reason string, cause error, retryable bool) *ConnectionError {
	return &ConnectionError{
		Reason:    reason,
		Cause:     cause,
		Retryable: retryable,
	}
}

// IsRetryable reports whether the error is worth retrying, covering
// both API errors and connection errors.
func IsRetryable(err error) bool {
	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return connErr.IsRetryable()
	}
	return watson.IsRetryable(err)
}

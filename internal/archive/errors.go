package archive

import (
	"errors"
	"fmt"
)

// ErrInvalidAPIKey is returned when the service rejects the bearer
// credential (HTTP 403). Callers should match it with errors.Is.
var ErrInvalidAPIKey = errors.New("invalid API key")

// ValidationError carries the server-supplied reason for rejecting a
// specific upload request (HTTP 400). It is file-specific and not
// retryable.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// TransportError wraps a network, connectivity or response-parsing
// fault. Op names the protocol phase the fault occurred in.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

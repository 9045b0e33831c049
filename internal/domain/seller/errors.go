package seller

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Fetch and write failures surfaced by the store and API client.
var (
	// ErrAuthMissing indicates an authenticated call was attempted with no session token.
	ErrAuthMissing = errors.New("seller: no session token")
	// ErrAuthRejected indicates the backend refused the presented token.
	// The session is NOT cleared on this condition; that decision belongs to the caller.
	ErrAuthRejected = errors.New("seller: authentication rejected")
	// ErrUnavailable indicates a transport-level failure (no response from the backend).
	ErrUnavailable = errors.New("seller: backend unavailable")
	// ErrInvalidResponse indicates the backend returned a body that is not a valid envelope.
	ErrInvalidResponse = errors.New("seller: invalid backend response")
	// ErrRequestFailed indicates an HTTP error status or a success=false envelope.
	ErrRequestFailed = errors.New("seller: backend request failed")
	// ErrValidation indicates a write was rejected before or by the backend.
	ErrValidation = errors.New("seller: validation failed")
)

// ErrorKind classifies a failure for per-slot staleness reporting.
type ErrorKind string

const (
	KindAuthMissing     ErrorKind = "AUTH_MISSING"
	KindAuthRejected    ErrorKind = "AUTH_REJECTED"
	KindUnavailable     ErrorKind = "NETWORK_FAILURE"
	KindInvalidResponse ErrorKind = "INVALID_RESPONSE"
	KindRequestFailed   ErrorKind = "REQUEST_FAILED"
	KindValidation      ErrorKind = "VALIDATION_FAILURE"
	KindUnknown         ErrorKind = "UNKNOWN"
)

// KindOf maps an error to its kind via the sentinel chain.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrAuthMissing):
		return KindAuthMissing
	case errors.Is(err, ErrAuthRejected):
		return KindAuthRejected
	case errors.Is(err, ErrUnavailable):
		return KindUnavailable
	case errors.Is(err, ErrInvalidResponse):
		return KindInvalidResponse
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrRequestFailed):
		return KindRequestFailed
	default:
		return KindUnknown
	}
}

// FetchError records the last failed refresh of a resource slot.
type FetchError struct {
	Kind       ErrorKind
	Message    string
	OccurredAt time.Time
}

// FieldError describes a single rejected field of a write request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level failures for a write request.
// It is raised client-side before any network call, or built from a
// backend rejection envelope.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Unwrap makes errors.Is(err, ErrValidation) hold for field failures.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FieldFor returns the message for a field, or "" if the field passed.
func (e *ValidationError) FieldFor(name string) string {
	for _, f := range e.Fields {
		if f.Field == name {
			return f.Message
		}
	}
	return ""
}

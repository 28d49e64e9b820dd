package verifier

import "fmt"

// Kind classifies a verification round-trip failure. Transport and protocol
// failures render identically to the caller; keeping them distinct preserves
// the taxonomy for logging and tests.
type Kind string

const (
	// KindTransport covers connection, DNS, timeout and body-read failures.
	KindTransport Kind = "transport error"
	// KindProtocol covers non-2xx statuses and malformed JSON bodies.
	KindProtocol Kind = "protocol error"
)

// Error is a classified failure from the verification service round trip.
type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Unwrap exposes the cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func transportError(detail string, cause error) *Error {
	return &Error{Kind: KindTransport, Detail: detail, Cause: cause}
}

func protocolError(detail string, cause error) *Error {
	return &Error{Kind: KindProtocol, Detail: detail, Cause: cause}
}

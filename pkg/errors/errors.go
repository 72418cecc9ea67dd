package errors

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by declared-but-unimplemented surfaces, such
// as the automatic vectorizer factory.
var ErrNotImplemented = errors.New("not implemented")

// ConnectionError indicates a transport-level failure before any response
// was received from the server.
type ConnectionError struct {
	Label string
	Err   error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: connection to Weaviate failed: %v", e.Label, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// UnexpectedStatusError indicates the server responded with an HTTP status
// outside the allow-list of the call that produced it.
type UnexpectedStatusError struct {
	Label      string
	StatusCode int
	Body       []byte
}

func (e *UnexpectedStatusError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200]
	}
	return fmt.Sprintf("%s: unexpected status code %d: %s", e.Label, e.StatusCode, body)
}

// RPCError indicates a gRPC call failed or returned an error status.
type RPCError struct {
	Label string
	Err   error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s: gRPC call failed: %v", e.Label, e.Err)
}

func (e *RPCError) Unwrap() error { return e.Err }

// InvalidInputError indicates caller-side validation failed. It never
// reaches the network.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

// NewInvalidInput builds an InvalidInputError from a format string.
func NewInvalidInput(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// ClosedClientError indicates I/O was attempted after Close.
type ClosedClientError struct{}

func (e *ClosedClientError) Error() string {
	return "client is closed, no further requests are possible"
}

// UnsupportedFeatureError indicates a capability-gate denial: the connected
// server is too old for the requested feature.
type UnsupportedFeatureError struct {
	Feature  string
	Actual   string
	Required string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("%s is not supported by Weaviate %s, requires at least %s",
		e.Feature, e.Actual, e.Required)
}

// AuthenticationError indicates misconfigured credentials or an OIDC setup
// failure.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// QueryError indicates the server returned a 200 response carrying an error
// envelope, e.g. GraphQL errors.
type QueryError struct {
	Messages []string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query returned errors: %v", e.Messages)
}

// BackupFailedError indicates a backup or restore reached the FAILED state.
type BackupFailedError struct {
	ID      string
	Backend string
	Reason  string
}

func (e *BackupFailedError) Error() string {
	return fmt.Sprintf("backup %s on backend %s failed: %s", e.ID, e.Backend, e.Reason)
}

// BackupCanceledError indicates a backup or restore reached the CANCELED
// state.
type BackupCanceledError struct {
	ID      string
	Backend string
}

func (e *BackupCanceledError) Error() string {
	return fmt.Sprintf("backup %s on backend %s was canceled", e.ID, e.Backend)
}

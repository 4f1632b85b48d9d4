package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed remote call so the caller can decide how to
// surface it without inspecting HTTP details.
type Kind int

const (
	// KindTransport covers connectivity failures: server unreachable,
	// timeout, connection reset. No HTTP response was received.
	KindTransport Kind = iota
	// KindServer covers non-2xx responses other than 404.
	KindServer
	// KindNotFound covers 404 responses for an id-addressed resource.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Error is the structured error returned by every failed client call.
type Error struct {
	Op     string // operation that failed: "list", "create", "update", "delete"
	Kind   Kind
	Status int // HTTP status code, 0 when no response was received
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("todos %s: %s error (status %d)", e.Op, e.Kind, e.Status)
	}
	return fmt.Sprintf("todos %s: %s error: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a client error for a missing resource.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

// IsTransport reports whether err is a connectivity failure.
func IsTransport(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindTransport
}

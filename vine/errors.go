package vine

import (
	"errors"
	"fmt"
)

// Common errors returned by the Vine client.
var (
	// ErrInvalidArgument indicates a required argument was missing or empty.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAuthRequired indicates a protected method was called without a session.
	ErrAuthRequired = errors.New("you must authenticate as a valid Vine user (call Connect) before accessing this method")
)

// ConnectionError is returned by Connect when the authentication endpoint
// rejects the supplied credentials. Code and Message carry the API's own
// error code and text.
type ConnectionError struct {
	Code    int
	Message string
}

// Error implements the error interface
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("vine authentication failed: code %d: %s", e.Code, e.Message)
}

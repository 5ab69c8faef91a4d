package sfmgo

import (
	"errors"
	"fmt"
)

var (
	// ErrConnectTimeout is returned when the bounded connect-retry budget
	// is exhausted without reaching the listener.
	ErrConnectTimeout = errors.New("connect retries exhausted")

	// ErrClosed is returned when a command is sent on a closed client.
	ErrClosed = errors.New("client is closed")
)

// ErrSendFailed indicates a command line could not be written to the
// socket.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrSendFailed struct {
	Code  int
	cause error
}

func (e *ErrSendFailed) Error() string {
	return fmt.Sprintf("send command %d: %v", e.Code, e.cause)
}

func (e *ErrSendFailed) Unwrap() error { return e.cause }

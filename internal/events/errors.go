package events

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

var (
	ErrNilClient    = errors.New("event client is nil")
	ErrNotConnected = errors.New("not connected to daemon")
	ErrQueueFull    = errors.New("event queue full")
	ErrClosed       = errors.New("event client is closed")
)

// ErrorCode says why the daemon could not be reached
type ErrorCode int

const (
	ErrDaemonNotRunning ErrorCode = iota
	ErrSocketNotFound
	ErrSocketPermission
	ErrConnectionRefused
)

func (c ErrorCode) String() string {
	switch c {
	case ErrSocketNotFound:
		return "socket not found"
	case ErrSocketPermission:
		return "permission denied"
	case ErrConnectionRefused:
		return "connection refused"
	default:
		return "daemon not running"
	}
}

// DaemonError is a failed dial of the daemon socket
type DaemonError struct {
	Code   ErrorCode
	Socket string
	Err    error
}

func (e *DaemonError) Error() string {
	return fmt.Sprintf("event daemon unreachable at %s: %s", e.Socket, e.Code)
}

func (e *DaemonError) Unwrap() error { return e.Err }

// Hint suggests how to bring live updates back
func (e *DaemonError) Hint() string {
	switch e.Code {
	case ErrSocketPermission:
		return fmt.Sprintf("check the permissions of %s (the daemon creates it 0700)", e.Socket)
	case ErrConnectionRefused:
		return fmt.Sprintf("the daemon may have crashed; remove %s and start hito-daemon again", e.Socket)
	default:
		return "start the daemon with: hito-daemon &"
	}
}

// classifyDialError wraps a dial failure with the reason it happened
func classifyDialError(err error, socket string) *DaemonError {
	de := &DaemonError{Code: ErrDaemonNotRunning, Socket: socket, Err: err}
	var errno syscall.Errno
	switch {
	case errors.Is(err, os.ErrNotExist):
		de.Code = ErrSocketNotFound
	case errors.Is(err, os.ErrPermission):
		de.Code = ErrSocketPermission
	case errors.As(err, &errno) && errno == syscall.ECONNREFUSED:
		de.Code = ErrConnectionRefused
	}
	return de
}

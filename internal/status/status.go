// Package status implements the library's closed error taxonomy: a small
// set of result codes, a message slot callers can retrieve after a non-OK
// return, and an optional log callback for diagnostics.
//
// The original design called for a thread-local message slot. Go has no
// per-goroutine storage, so the slot here is process-global and guarded by
// a mutex; concurrent callers on disjoint grids (see internal/batch) will
// observe whichever message was set most recently, which is acceptable
// because the slot exists purely for diagnostics, never for control flow.
package status

import (
	"errors"
	"fmt"
	"sync"
)

// Status is the closed result-code taxonomy every engine entry point
// returns.
type Status int

const (
	// Ok indicates the call completed normally.
	Ok Status = iota
	// InvalidArgument indicates a precondition violation (e.g. an origin
	// outside the bounds of the output grid).
	InvalidArgument
	// OutOfMemory indicates a scratch allocation failed.
	OutOfMemory
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case InvalidArgument:
		return "InvalidArgument"
	case OutOfMemory:
		return "OutOfMemory"
	default:
		return "Unknown"
	}
}

// Sentinel errors backing each non-Ok status, so callers can use errors.Is
// instead of comparing against the Status value directly.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfMemory     = errors.New("out of memory")
)

// ErrFor returns the sentinel error for a status, or nil for Ok.
func ErrFor(s Status) error {
	switch s {
	case InvalidArgument:
		return ErrInvalidArgument
	case OutOfMemory:
		return ErrOutOfMemory
	default:
		return nil
	}
}

var (
	mu         sync.Mutex
	lastMsg    string
	logCallback func(string)
)

// SetMessage overwrites the process-wide diagnostic message. Overwriting on
// each failure is intentional: only the most recent failure's detail is
// ever retained.
func SetMessage(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	mu.Lock()
	lastMsg = msg
	cb := logCallback
	mu.Unlock()
	if cb != nil {
		cb(msg)
	}
}

// Message returns the most recently set diagnostic message.
func Message() string {
	mu.Lock()
	defer mu.Unlock()
	return lastMsg
}

// SetLogCallback registers a function invoked with every message set via
// SetMessage, in addition to it being retrievable via Message. Passing nil
// disables the callback. Intended to be set up once before any concurrent
// use, per the library's concurrency contract.
func SetLogCallback(cb func(string)) {
	mu.Lock()
	logCallback = cb
	mu.Unlock()
}

// Fail is a convenience that records a formatted message and returns both
// the status and an error wrapping the matching sentinel.
func Fail(s Status, format string, args ...any) (Status, error) {
	msg := fmt.Sprintf(format, args...)
	SetMessage("%s", msg)
	return s, fmt.Errorf("%w: %s", ErrFor(s), msg)
}

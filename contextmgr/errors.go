package contextmgr

import (
	"errors"
	"fmt"
)

// Sentinel errors for context management operations.
var (
	// ErrInvalidConfig indicates invalid context manager configuration.
	ErrInvalidConfig = errors.New("invalid context configuration")

	// ErrUnknownStrategy indicates an unrecognized compaction strategy.
	ErrUnknownStrategy = errors.New("unknown compaction strategy")
)

// Error provides structured error context for context management operations.
type Error struct {
	// Op is the operation that failed (e.g., "Compact", "Stats").
	Op string

	// Err is the underlying error.
	Err error

	// Context holds additional key-value pairs for debugging.
	Context map[string]any
}

// Error returns a formatted error message.
func (e *Error) Error() string {
	msg := fmt.Sprintf("context %s failed", e.Op)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error for the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{Op: op, Err: err, Context: make(map[string]any)}
}

// WithContext adds a key-value pair to the error context and returns the
// error for chaining.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

package hearth

import "errors"

// Common errors
var (
	// ErrInvalidHook is returned when WithHooks receives a value that
	// implements neither hook interface
	ErrInvalidHook = errors.New("hook implements no known hook interface")
)

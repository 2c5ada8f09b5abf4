package parameter

import "errors"

var (
	// ErrParameterNotFound signals a missing required configuration value.
	// Callers must propagate it, never substitute a default.
	ErrParameterNotFound = errors.New("system parameter not found")

	ErrParameterNotNumeric = errors.New("system parameter is not numeric")
)

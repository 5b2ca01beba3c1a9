package plugin

import (
	"errors"
	"fmt"
)

// Plugin errors.
var (
	// ErrStateClosed indicates use of a closed plugin host.
	ErrStateClosed = errors.New("plugin state is closed")

	// ErrLoadFailed indicates the plugin script failed to compile or run.
	ErrLoadFailed = errors.New("plugin load failed")
)

// ScriptError reports a failure inside a plugin's Lua function.
type ScriptError struct {
	Plugin   string // plugin name
	Function string // Lua function that failed
	Err      error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("plugin %s: %s: %v", e.Plugin, e.Function, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}

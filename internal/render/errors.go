package render

import (
	"errors"
	"fmt"

	"github.com/inkstone-editor/inkstone/internal/document"
)

// Render errors.
var (
	// ErrNilDocument indicates a render pass was started without a tree.
	ErrNilDocument = errors.New("nil document")

	// ErrNoRenderer indicates the plugin stack was exhausted without any
	// handler producing output for a node. This is a configuration error
	// of the surrounding system and is fatal to the subtree's render.
	ErrNoRenderer = errors.New("no renderer produced output")

	// ErrMaxDepth indicates the document nesting exceeded the depth
	// limit of the walker.
	ErrMaxDepth = errors.New("document nesting exceeds depth limit")
)

// NodeError reports a render failure at a specific node.
type NodeError struct {
	Key  document.Key // key of the failing node
	Hook Hook         // hook that was being dispatched, if any
	Err  error
}

// Error implements the error interface.
func (e *NodeError) Error() string {
	return fmt.Sprintf("render node %s (%s): %v", e.Key, e.Hook, e.Err)
}

// Unwrap returns the underlying error.
func (e *NodeError) Unwrap() error {
	return e.Err
}

package document

import (
	"errors"
	"fmt"
)

// Document errors.
var (
	// ErrMalformedDocument indicates document JSON that does not describe
	// a valid node tree.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrUnknownKind indicates a node kind outside document/block/inline/text.
	ErrUnknownKind = errors.New("unknown node kind")
)

// DecodeError reports a decoding failure with the JSON path at which it
// occurred.
type DecodeError struct {
	Path string // JSON path of the offending node (e.g. "nodes.1.nodes.0")
	Err  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode document: %v", e.Err)
	}
	return fmt.Sprintf("decode document at %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

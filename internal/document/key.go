package document

import (
	"github.com/google/uuid"
)

// Key is a stable logical identifier for a node. It survives edits and
// tree rebuilds, unlike a structural position, so render output can be
// associated with logical identity across passes.
type Key string

// NewKey generates a fresh unique key.
func NewKey() Key {
	return Key(uuid.NewString())
}

// String returns the key as a plain string.
func (k Key) String() string {
	return string(k)
}

// IsZero returns true if the key is unset.
func (k Key) IsZero() bool {
	return k == ""
}

package overlay

import (
	"reflect"

	"github.com/inkstone-editor/inkstone/internal/document"
)

// Selection is the single, externally owned range denoting the current
// editing focus. The anchor is the endpoint where the selection was
// started; the focus is the moving endpoint.
type Selection struct {
	document.Range

	// Backward is true when the anchor is the end point (the user swept
	// right-to-left or bottom-to-top).
	Backward bool

	// Focused is true when the editor has input focus.
	Focused bool
}

// Anchor returns the anchor endpoint.
func (s Selection) Anchor() document.Point {
	if s.Backward {
		return s.End
	}
	return s.Start
}

// Focus returns the focus endpoint.
func (s Selection) Focus() document.Point {
	if s.Backward {
		return s.Start
	}
	return s.End
}

// withRange returns a copy of the selection carrying the given range and
// the original metadata.
func (s Selection) withRange(r document.Range) Selection {
	s.Range = r
	return s
}

// Mark is the tag a decoration applies to the text it covers.
type Mark struct {
	// Type identifies the mark (e.g. "bold", "search-hit").
	Type string

	// Data holds arbitrary mark data.
	Data map[string]any
}

// Equal returns true if both marks have the same type and data.
func (m Mark) Equal(other Mark) bool {
	return m.Type == other.Type && reflect.DeepEqual(m.Data, other.Data)
}

// Decoration is an ephemeral overlay computed fresh on every render pass
// by per-node hooks (e.g. search highlights, spell-check squiggles). It
// is never persisted.
type Decoration struct {
	document.Range
	Mark Mark
}

// Equal returns true if both decorations cover the same range with the
// same mark.
func (d Decoration) Equal(other Decoration) bool {
	return d.Range.Equal(other.Range) && d.Mark.Equal(other.Mark)
}

// withRange returns a copy of the decoration carrying the given range.
func (d Decoration) withRange(r document.Range) Decoration {
	d.Range = r
	return d
}

// Annotation is a persistent overlay supplied by the caller and keyed by
// a stable identifier (e.g. a comment thread span). Annotations are
// never recomputed by the render pass; they are only projected.
type Annotation struct {
	document.Range

	// Key is the stable identifier of the annotation.
	Key string

	// Type tags the annotation (e.g. "comment", "suggestion").
	Type string

	// Data holds arbitrary annotation data.
	Data map[string]any
}

// Equal returns true if both annotations have the same key, type, range
// and data.
func (a Annotation) Equal(other Annotation) bool {
	return a.Key == other.Key &&
		a.Type == other.Type &&
		a.Range.Equal(other.Range) &&
		reflect.DeepEqual(a.Data, other.Data)
}

// withRange returns a copy of the annotation carrying the given range.
func (a Annotation) withRange(r document.Range) Annotation {
	a.Range = r
	return a
}

// EqualDecorations compares two decoration sets structurally, ignoring
// order. Used by the update gate.
func EqualDecorations(a, b []Decoration) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, da := range a {
		for i, db := range b {
			if !used[i] && da.Equal(db) {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// EqualAnnotations compares two annotation sets as key→range mappings,
// ignoring order. Used by the update gate.
func EqualAnnotations(a, b []Annotation) bool {
	if len(a) != len(b) {
		return false
	}
	byKey := make(map[string]Annotation, len(b))
	for _, ann := range b {
		byKey[ann.Key] = ann
	}
	for _, ann := range a {
		other, ok := byKey[ann.Key]
		if !ok || !ann.Equal(other) {
			return false
		}
	}
	return true
}

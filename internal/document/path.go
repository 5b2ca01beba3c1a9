package document

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of child indices locating a node relative
// to a reference ancestor. The empty path denotes the ancestor itself.
type Path []int

// First returns the leading index of the path. Returns false for the
// empty path.
func (p Path) First() (int, bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[0], true
}

// Rest returns the path with its leading index removed. The rest of an
// empty path is the empty path.
func (p Path) Rest() Path {
	if len(p) == 0 {
		return nil
	}
	return p[1:]
}

// Equal returns true if both paths have the same indices.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Compare orders paths by document order: component-wise, with a prefix
// ordering before any of its descendants. Returns -1, 0, or 1.
func (p Path) Compare(other Path) int {
	for i := 0; i < len(p) && i < len(other); i++ {
		switch {
		case p[i] < other[i]:
			return -1
		case p[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(p) < len(other):
		return -1
	case len(p) > len(other):
		return 1
	default:
		return 0
	}
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// String formats the path as "[0 2 1]".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Point locates a position within a leaf's text: a Path resolving to a
// text node plus an offset counted in grapheme clusters from the start
// of that leaf.
type Point struct {
	Path   Path
	Offset int
}

// Equal returns true if both points have the same path and offset.
func (pt Point) Equal(other Point) bool {
	return pt.Offset == other.Offset && pt.Path.Equal(other.Path)
}

// Compare orders points by path, then by offset.
func (pt Point) Compare(other Point) int {
	if c := pt.Path.Compare(other.Path); c != 0 {
		return c
	}
	switch {
	case pt.Offset < other.Offset:
		return -1
	case pt.Offset > other.Offset:
		return 1
	default:
		return 0
	}
}

// String formats the point as "[0 1]:3".
func (pt Point) String() string {
	return fmt.Sprintf("%s:%d", pt.Path, pt.Offset)
}

// Range is an ordered pair of points in a shared coordinate space.
// A well-formed range has Start <= End in document order.
type Range struct {
	Start Point
	End   Point
}

// NewRange builds a range from two points, swapping them if needed so
// the invariant Start <= End holds.
func NewRange(a, b Point) Range {
	if a.Compare(b) > 0 {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// IsCollapsed returns true if start and end are the same position.
func (r Range) IsCollapsed() bool {
	return r.Start.Equal(r.End)
}

// Equal returns true if both ranges have equal endpoints.
func (r Range) Equal(other Range) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

// IsValid reports whether the range satisfies Start <= End.
func (r Range) IsValid() bool {
	return r.Start.Compare(r.End) <= 0
}

// String formats the range as "[0]:2..[1]:3".
func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.Start, r.End)
}

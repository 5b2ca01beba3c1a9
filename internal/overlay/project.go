package overlay

import (
	"github.com/inkstone-editor/inkstone/internal/document"
)

// Project re-expresses a range from a node's coordinate space into the
// space of the child at the given index. Returns false when the range
// does not intersect that child.
//
// Each endpoint resolves independently:
//
//   - The endpoint's leading path component equals the child index: the
//     endpoint lies inside the child, so it is rebased by stripping the
//     leading component.
//   - The range spans through the child (it starts before and ends at or
//     after it, or the mirror for the end point): the endpoint is clamped
//     to the child subtree's extremity — the first text leaf at offset 0
//     for the start, the last text leaf at its full length for the end.
//   - Otherwise the range does not reach the child and projection fails.
//
// A range is malformed with respect to this child when a leading path
// component does not index an existing child, when an endpoint's path
// terminates on a non-leaf node, or when a clamp target subtree holds no
// text leaf. Malformed ranges are treated as non-intersecting rather
// than raised: overlays from sibling subtrees routinely do not apply to
// a given child.
func Project(node *document.Node, index int, r document.Range) (document.Range, bool) {
	child := node.Child(index)
	if child == nil {
		return document.Range{}, false
	}

	startIdx, ok := r.Start.Path.First()
	if !ok || node.Child(startIdx) == nil {
		return document.Range{}, false
	}
	endIdx, ok := r.End.Path.First()
	if !ok || node.Child(endIdx) == nil {
		return document.Range{}, false
	}

	var start document.Point
	switch {
	case startIdx == index:
		start, ok = rebase(child, r.Start)
	case startIdx < index && index <= endIdx:
		start, ok = clampToFirst(child)
	default:
		return document.Range{}, false
	}
	if !ok {
		return document.Range{}, false
	}

	var end document.Point
	switch {
	case endIdx == index:
		end, ok = rebase(child, r.End)
	case startIdx <= index && index < endIdx:
		end, ok = clampToLast(child)
	default:
		return document.Range{}, false
	}
	if !ok {
		return document.Range{}, false
	}

	return document.Range{Start: start, End: end}, true
}

// rebase strips the leading path component of a point known to fall
// under the child. Fails if the remaining path terminates on a non-leaf,
// since only text leaves support offsets.
func rebase(child *document.Node, pt document.Point) (document.Point, bool) {
	rest := pt.Path.Rest()
	target := child.Descendant(rest)
	if target == nil || !target.IsText() {
		return document.Point{}, false
	}
	return document.Point{Path: rest.Clone(), Offset: pt.Offset}, true
}

// clampToFirst resolves the very beginning of the child's subtree: the
// first text leaf at offset 0.
func clampToFirst(child *document.Node) (document.Point, bool) {
	p, _, ok := child.FirstText()
	if !ok {
		return document.Point{}, false
	}
	return document.Point{Path: p, Offset: 0}, true
}

// clampToLast resolves the very end of the child's subtree: the last
// text leaf at its full length.
func clampToLast(child *document.Node) (document.Point, bool) {
	p, leaf, ok := child.LastText()
	if !ok {
		return document.Point{}, false
	}
	return document.Point{Path: p, Offset: leaf.Length()}, true
}

// ProjectSelection projects a selection onto a child, preserving its
// metadata. Returns nil when the selection does not intersect the child
// or no selection is present.
func ProjectSelection(node *document.Node, index int, sel *Selection) *Selection {
	if sel == nil {
		return nil
	}
	r, ok := Project(node, index, sel.Range)
	if !ok {
		return nil
	}
	out := sel.withRange(r)
	return &out
}

// ProjectDecorations projects each decoration onto a child, dropping the
// ones that do not intersect it. Metadata is preserved.
func ProjectDecorations(node *document.Node, index int, decs []Decoration) []Decoration {
	var out []Decoration
	for _, d := range decs {
		if r, ok := Project(node, index, d.Range); ok {
			out = append(out, d.withRange(r))
		}
	}
	return out
}

// ProjectAnnotations projects each annotation onto a child, dropping the
// ones that do not intersect it. Keys and metadata are preserved.
func ProjectAnnotations(node *document.Node, index int, anns []Annotation) []Annotation {
	var out []Annotation
	for _, a := range anns {
		if r, ok := Project(node, index, a.Range); ok {
			out = append(out, a.withRange(r))
		}
	}
	return out
}

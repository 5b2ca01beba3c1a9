package render

import (
	"strings"
)

// Common attribute names on rendered elements.
const (
	// AttrKey carries the stable node key.
	AttrKey = "data-key"

	// AttrDir marks a right-to-left leaf block.
	AttrDir = "dir"

	// AttrType carries the schema type of a block or inline node.
	AttrType = "data-type"

	// AttrMarks lists the decoration mark types covering a leaf span,
	// comma separated.
	AttrMarks = "data-marks"

	// AttrAnnotations lists the annotation keys covering a leaf span,
	// comma separated.
	AttrAnnotations = "data-annotations"

	// AttrSelected flags a leaf span covered by the selection.
	AttrSelected = "data-selected"
)

// Element is one node of the presentation tree produced by the render
// pipeline. It is a plain value the host maps onto its own display
// primitives (DOM nodes, terminal rows, test fixtures).
type Element struct {
	// Tag is the presentation tag (e.g. "main", "div", "span").
	Tag string

	// Attrs is the attribute bag.
	Attrs map[string]string

	// Children are the nested elements, in document order.
	Children []*Element

	// Text is the literal content of a leaf span. Empty for interior
	// elements.
	Text string
}

// Attr returns the named attribute, or "" if absent.
func (e *Element) Attr(name string) string {
	if e == nil || e.Attrs == nil {
		return ""
	}
	return e.Attrs[name]
}

// Key returns the node key attribute.
func (e *Element) Key() string {
	return e.Attr(AttrKey)
}

// PlainText returns the concatenated text of the element subtree.
func (e *Element) PlainText() string {
	if e == nil {
		return ""
	}
	if len(e.Children) == 0 {
		return e.Text
	}
	var b strings.Builder
	for _, child := range e.Children {
		b.WriteString(child.PlainText())
	}
	return b.String()
}

// Find returns the first element in the subtree (preorder, self
// included) whose key attribute matches, or nil.
func (e *Element) Find(key string) *Element {
	if e == nil {
		return nil
	}
	if e.Key() == key {
		return e
	}
	for _, child := range e.Children {
		if found := child.Find(key); found != nil {
			return found
		}
	}
	return nil
}

package render

import (
	"github.com/inkstone-editor/inkstone/internal/document"
	"github.com/inkstone-editor/inkstone/internal/overlay"
)

// Props carries everything a node needs to render itself: its tree
// context, the overlays already projected into its own coordinate space,
// and the editor capability handle. Props are rebuilt for every node on
// every pass; the update gate compares the previous pass's props against
// the new ones.
type Props struct {
	// Node is the node being rendered.
	Node *document.Node

	// Parent is the enclosing node. Nil at the root.
	Parent *document.Node

	// Block is the nearest enclosing block ancestor, or the node itself
	// when it is a block. Nil above the first block level.
	Block *document.Node

	// Editor is the capability handle reaching the plugin stack and the
	// void predicate.
	Editor *Editor

	// ReadOnly is the editor's read-only flag, passed down unchanged.
	ReadOnly bool

	// Selection is the current selection relative to Node, or nil when
	// the selection does not intersect this subtree.
	Selection *overlay.Selection

	// Decorations are the inherited decorations relative to Node.
	Decorations []overlay.Decoration

	// Annotations are the inherited annotations relative to Node.
	Annotations []overlay.Annotation
}

// IsSelected returns true when the selection intersects this node.
func (p Props) IsSelected() bool {
	return p.Selection != nil
}

// IsFocused returns true when the selection intersects this node and
// the editor has input focus.
func (p Props) IsFocused() bool {
	return p.Selection != nil && p.Selection.Focused
}

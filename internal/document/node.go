package document

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Kind identifies the category of a node.
type Kind uint8

const (
	// KindDocument is the root node. Its children are always blocks.
	KindDocument Kind = iota

	// KindBlock is a structural node (paragraph, heading, list item).
	KindBlock

	// KindInline is an inline wrapper node (link, mention).
	KindInline

	// KindText is a leaf holding literal content. It has no children.
	KindText
)

// String returns the string representation of the node kind.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindBlock:
		return "block"
	case KindInline:
		return "inline"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "document":
		return KindDocument, true
	case "block":
		return KindBlock, true
	case "inline":
		return KindInline, true
	case "text":
		return KindText, true
	default:
		return 0, false
	}
}

// Node is one node of the document tree. Nodes are immutable after
// construction; rendering never modifies one.
type Node struct {
	// Kind is the node category.
	Kind Kind

	// Key is the stable logical identifier.
	Key Key

	// Type is the schema type of a block or inline node
	// (e.g. "paragraph", "link"). Empty for document and text nodes.
	Type string

	// Data holds arbitrary per-node data supplied by the caller.
	Data map[string]any

	// Nodes are the ordered children. Nil for text leaves.
	Nodes []*Node

	// Text is the literal content of a text leaf. Empty otherwise.
	Text string
}

// IsText returns true if the node is a text leaf.
func (n *Node) IsText() bool {
	return n.Kind == KindText
}

// IsBlock returns true if the node is a block.
func (n *Node) IsBlock() bool {
	return n.Kind == KindBlock
}

// Child returns the child at index i, or nil if i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Nodes) {
		return nil
	}
	return n.Nodes[i]
}

// Length returns the length of a text leaf in grapheme clusters.
// For interior nodes it returns the combined length of all text leaves
// in the subtree.
func (n *Node) Length() int {
	if n.IsText() {
		return uniseg.GraphemeClusterCount(n.Text)
	}
	total := 0
	for _, child := range n.Nodes {
		total += child.Length()
	}
	return total
}

// PlainText returns the concatenated text of every leaf in the subtree,
// in document order.
func (n *Node) PlainText() string {
	if n.IsText() {
		return n.Text
	}
	var b strings.Builder
	for _, child := range n.Nodes {
		b.WriteString(child.PlainText())
	}
	return b.String()
}

// FirstText returns the path (relative to n) and node of the first text
// leaf in the subtree by forward depth-first order. Returns false if the
// subtree contains no text leaf.
func (n *Node) FirstText() (Path, *Node, bool) {
	if n.IsText() {
		return Path{}, n, true
	}
	for i, child := range n.Nodes {
		if p, leaf, ok := child.FirstText(); ok {
			return append(Path{i}, p...), leaf, true
		}
	}
	return nil, nil, false
}

// LastText returns the path (relative to n) and node of the last text
// leaf in the subtree by backward depth-first order. Returns false if the
// subtree contains no text leaf.
func (n *Node) LastText() (Path, *Node, bool) {
	if n.IsText() {
		return Path{}, n, true
	}
	for i := len(n.Nodes) - 1; i >= 0; i-- {
		if p, leaf, ok := n.Nodes[i].LastText(); ok {
			return append(Path{i}, p...), leaf, true
		}
	}
	return nil, nil, false
}

// Descendant resolves a path relative to n. Returns nil if any component
// is out of range.
func (n *Node) Descendant(p Path) *Node {
	cur := n
	for _, idx := range p {
		cur = cur.Child(idx)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// IsLeafBlock returns true if the node is a block whose children are all
// inline or text nodes, i.e. it carries no nested block structure.
func (n *Node) IsLeafBlock() bool {
	if !n.IsBlock() {
		return false
	}
	for _, child := range n.Nodes {
		if child.Kind == KindBlock {
			return false
		}
	}
	return true
}

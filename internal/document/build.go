package document

// Builders for constructing node trees in code. Keys are generated
// automatically; pass a prepared Node to keep an existing key.

// NewDocument creates a document root with the given block children.
func NewDocument(children ...*Node) *Node {
	return &Node{
		Kind:  KindDocument,
		Key:   NewKey(),
		Nodes: children,
	}
}

// NewBlock creates a block node of the given schema type.
func NewBlock(typ string, children ...*Node) *Node {
	return &Node{
		Kind:  KindBlock,
		Key:   NewKey(),
		Type:  typ,
		Nodes: children,
	}
}

// NewInline creates an inline node of the given schema type.
func NewInline(typ string, children ...*Node) *Node {
	return &Node{
		Kind:  KindInline,
		Key:   NewKey(),
		Type:  typ,
		Nodes: children,
	}
}

// NewText creates a text leaf with the given content.
func NewText(text string) *Node {
	return &Node{
		Kind: KindText,
		Key:  NewKey(),
		Text: text,
	}
}

// WithData returns a shallow copy of the node carrying the given data.
// The original node is left untouched.
func (n *Node) WithData(data map[string]any) *Node {
	out := *n
	out.Data = data
	return &out
}

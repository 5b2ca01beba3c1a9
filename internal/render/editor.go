package render

import (
	"go.uber.org/zap"

	"github.com/inkstone-editor/inkstone/internal/document"
	"github.com/inkstone-editor/inkstone/internal/overlay"
)

// DefaultMaxDepth bounds tree recursion. Real documents nest a handful
// of levels; the bound exists to fail cleanly on cyclic or degenerate
// input instead of exhausting the call stack.
const DefaultMaxDepth = 256

// Editor is the capability handle threaded through every render pass:
// it reaches the plugin stack, the void predicate, and the read-only
// flag. It holds no document state of its own.
type Editor struct {
	stack    *Stack
	readOnly bool
	maxDepth int
	logger   *zap.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithPlugins prepends plugins to the stack, ahead of the core plugin.
func WithPlugins(plugins ...Plugin) Option {
	return func(e *Editor) {
		e.stack = NewStack(append(plugins, Core())...)
	}
}

// WithStack replaces the whole plugin stack, core plugin included. The
// caller is then responsible for providing a terminal renderer.
func WithStack(s *Stack) Option {
	return func(e *Editor) {
		e.stack = s
	}
}

// WithReadOnly sets the read-only flag carried in props.
func WithReadOnly(readOnly bool) Option {
	return func(e *Editor) {
		e.readOnly = readOnly
	}
}

// WithMaxDepth overrides the recursion depth bound.
func WithMaxDepth(depth int) Option {
	return func(e *Editor) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// WithLogger sets the logger used for developer-facing warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an editor. With no options the stack holds only the core
// plugin, which renders every node kind.
func New(opts ...Option) *Editor {
	e := &Editor{
		stack:    NewStack(Core()),
		maxDepth: DefaultMaxDepth,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ReadOnly returns the editor's read-only flag.
func (e *Editor) ReadOnly() bool {
	return e.readOnly
}

// IsVoid reports whether the plugin stack flags the node as void.
func (e *Editor) IsVoid(n *document.Node) bool {
	return e.stack.IsVoid(n)
}

// Render runs one full pass over the document. The selection and
// annotations are expressed relative to the document root; sel may be
// nil and anns may be empty. The inputs must stay unchanged until the
// pass returns.
func (e *Editor) Render(doc *document.Node, sel *overlay.Selection, anns []overlay.Annotation) (*Element, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	props := Props{
		Node:        doc,
		Editor:      e,
		ReadOnly:    e.readOnly,
		Selection:   sel,
		Annotations: anns,
	}
	if doc.IsBlock() {
		props.Block = doc
	}
	return e.renderNode(props, 0)
}

// renderNode renders one interior node: collects its decorations,
// projects every overlay onto every child, renders the children (leaves
// through the leaf path, interior nodes recursively), then dispatches
// the node's own render hook and applies void wrapping.
func (e *Editor) renderNode(props Props, depth int) (*Element, error) {
	node := props.Node
	if depth > e.maxDepth {
		return nil, &NodeError{Key: node.Key, Err: ErrMaxDepth}
	}

	decorations := overlay.Collect(node, props.Decorations, e.stack.Decorate)

	childBlock := props.Block
	if node.IsBlock() {
		childBlock = node
	}

	children := make([]*Element, 0, len(node.Nodes))
	for i, child := range node.Nodes {
		childProps := Props{
			Node:        child,
			Parent:      node,
			Block:       childBlock,
			Editor:      e,
			ReadOnly:    props.ReadOnly,
			Selection:   overlay.ProjectSelection(node, i, props.Selection),
			Decorations: overlay.ProjectDecorations(node, i, decorations),
			Annotations: overlay.ProjectAnnotations(node, i, props.Annotations),
		}
		if child.IsBlock() {
			childProps.Block = child
		}

		var el *Element
		var err error
		if child.IsText() {
			el, err = e.stack.RenderLeaf(&LeafContext{Leaf: child, Props: childProps})
		} else {
			el, err = e.renderNode(childProps, depth+1)
		}
		if err != nil {
			return nil, err
		}
		children = append(children, el)
	}

	attrs := map[string]string{AttrKey: node.Key.String()}
	if node.IsLeafBlock() && DominantDirection(node.PlainText()) == DirectionRTL {
		attrs[AttrDir] = "rtl"
	}

	hook, ok := hookForKind(node.Kind)
	if !ok {
		return nil, &NodeError{Key: node.Key, Err: ErrNoRenderer}
	}
	el, err := e.stack.Render(hook, &RenderContext{
		Node:     node,
		Props:    props,
		Attrs:    attrs,
		Children: children,
	})
	if err != nil {
		return nil, err
	}

	if e.stack.IsVoid(node) {
		el = e.stack.WrapVoid(props, el)
	}
	return el, nil
}

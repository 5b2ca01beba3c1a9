package render

import (
	"github.com/inkstone-editor/inkstone/internal/document"
	"github.com/inkstone-editor/inkstone/internal/overlay"
)

// Hook identifies a render entry point, selected by node kind.
type Hook uint8

const (
	// HookRenderDocument renders the document root.
	HookRenderDocument Hook = iota

	// HookRenderBlock renders a block node.
	HookRenderBlock

	// HookRenderInline renders an inline node.
	HookRenderInline
)

// String returns the hook name.
func (h Hook) String() string {
	switch h {
	case HookRenderDocument:
		return "renderDocument"
	case HookRenderBlock:
		return "renderBlock"
	case HookRenderInline:
		return "renderInline"
	default:
		return "unknown"
	}
}

// hookForKind maps an interior node kind to its render hook. Text leaves
// are rendered through the leaf path and have no hook.
func hookForKind(k document.Kind) (Hook, bool) {
	switch k {
	case document.KindDocument:
		return HookRenderDocument, true
	case document.KindBlock:
		return HookRenderBlock, true
	case document.KindInline:
		return HookRenderInline, true
	default:
		return 0, false
	}
}

// Verdict is a tri-state answer from an optional plugin hook.
type Verdict uint8

const (
	// VerdictNone means the plugin has no opinion.
	VerdictNone Verdict = iota

	// VerdictYes is a definite positive answer.
	VerdictYes

	// VerdictNo is a definite negative answer.
	VerdictNo
)

// String returns the string representation of the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictYes:
		return "yes"
	case VerdictNo:
		return "no"
	default:
		return "none"
	}
}

// RenderContext is handed to render hooks: the node, its assembled
// props, the prepared attribute bag, and the already rendered children.
type RenderContext struct {
	Node     *document.Node
	Props    Props
	Attrs    map[string]string
	Children []*Element
}

// LeafContext is handed to the leaf renderer: the text leaf plus its
// props, whose overlays are already relative to the leaf. Leaves have no
// children and no further projection happens below them.
type LeafContext struct {
	Leaf  *document.Node
	Props Props
}

// Plugin is one handler in the render pipeline. All fields are optional;
// a nil field means the plugin passes on that concern. Render functions
// return nil to pass the node to the next plugin in the stack.
type Plugin struct {
	// Name identifies the plugin in logs.
	Name string

	// RenderDocument, RenderBlock and RenderInline produce the element
	// for a node of the matching kind, or nil to pass.
	RenderDocument func(*RenderContext) *Element
	RenderBlock    func(*RenderContext) *Element
	RenderInline   func(*RenderContext) *Element

	// RenderLeaf produces the element for a text leaf, or nil to pass.
	RenderLeaf func(*LeafContext) *Element

	// DecorateNode computes the node's own fresh decorations. All
	// plugins contribute; results are concatenated in stack order.
	DecorateNode overlay.DecorateFunc

	// IsVoid flags a node as void content. The first definite verdict in
	// the stack wins.
	IsVoid func(*document.Node) Verdict

	// WrapVoid wraps a void node's rendered output. The first plugin
	// providing a wrapper wins.
	WrapVoid func(Props, *Element) *Element

	// ShouldNodeUpdate lets a plugin force a node to re-render. The
	// update gate honors a yes; a no cannot veto the built-in checks.
	ShouldNodeUpdate func(old, new Props) Verdict
}

// hookFn returns the plugin's render function for the given hook.
func (p *Plugin) hookFn(h Hook) func(*RenderContext) *Element {
	switch h {
	case HookRenderDocument:
		return p.RenderDocument
	case HookRenderBlock:
		return p.RenderBlock
	case HookRenderInline:
		return p.RenderInline
	default:
		return nil
	}
}

// Stack is the ordered render pipeline. Handlers are tried in sequence;
// the first one producing output wins.
type Stack struct {
	plugins []Plugin
}

// NewStack builds a pipeline from the given plugins, in order.
func NewStack(plugins ...Plugin) *Stack {
	return &Stack{plugins: plugins}
}

// Render dispatches a hook through the stack. Returns a NodeError
// wrapping ErrNoRenderer when no plugin produces output.
func (s *Stack) Render(h Hook, ctx *RenderContext) (*Element, error) {
	for i := range s.plugins {
		fn := s.plugins[i].hookFn(h)
		if fn == nil {
			continue
		}
		if el := fn(ctx); el != nil {
			return el, nil
		}
	}
	return nil, &NodeError{Key: ctx.Node.Key, Hook: h, Err: ErrNoRenderer}
}

// RenderLeaf dispatches the leaf renderer through the stack.
func (s *Stack) RenderLeaf(ctx *LeafContext) (*Element, error) {
	for i := range s.plugins {
		fn := s.plugins[i].RenderLeaf
		if fn == nil {
			continue
		}
		if el := fn(ctx); el != nil {
			return el, nil
		}
	}
	return nil, &NodeError{Key: ctx.Leaf.Key, Err: ErrNoRenderer}
}

// Decorate concatenates the fresh decorations contributed by every
// plugin for the node, in stack order.
func (s *Stack) Decorate(n *document.Node) []overlay.Decoration {
	var out []overlay.Decoration
	for i := range s.plugins {
		if fn := s.plugins[i].DecorateNode; fn != nil {
			out = append(out, fn(n)...)
		}
	}
	return out
}

// IsVoid reports whether any plugin flags the node as void. The first
// definite verdict wins; with no opinion anywhere the node is not void.
func (s *Stack) IsVoid(n *document.Node) bool {
	for i := range s.plugins {
		if fn := s.plugins[i].IsVoid; fn != nil {
			switch fn(n) {
			case VerdictYes:
				return true
			case VerdictNo:
				return false
			}
		}
	}
	return false
}

// WrapVoid wraps a void node's output using the first plugin that
// provides a wrapper. With none, the output is returned unwrapped.
func (s *Stack) WrapVoid(props Props, el *Element) *Element {
	for i := range s.plugins {
		if fn := s.plugins[i].WrapVoid; fn != nil {
			return fn(props, el)
		}
	}
	return el
}

// ShouldNodeUpdate queries the update override hooks. The first definite
// verdict wins.
func (s *Stack) ShouldNodeUpdate(old, new Props) Verdict {
	for i := range s.plugins {
		if fn := s.plugins[i].ShouldNodeUpdate; fn != nil {
			if v := fn(old, new); v != VerdictNone {
				return v
			}
		}
	}
	return VerdictNone
}

package render

import (
	"github.com/inkstone-editor/inkstone/internal/document"
)

// Core returns the built-in terminal plugin of the render stack. It
// produces a baseline rendering for every node kind, flags nodes as
// void when their data says so, and provides the default void wrapper.
// Custom plugins sit in front of it and override selectively.
func Core() Plugin {
	return Plugin{
		Name: "core",
		RenderDocument: func(ctx *RenderContext) *Element {
			return &Element{Tag: "main", Attrs: ctx.Attrs, Children: ctx.Children}
		},
		RenderBlock: func(ctx *RenderContext) *Element {
			attrs := ctx.Attrs
			if ctx.Node.Type != "" {
				attrs[AttrType] = ctx.Node.Type
			}
			return &Element{Tag: "div", Attrs: attrs, Children: ctx.Children}
		},
		RenderInline: func(ctx *RenderContext) *Element {
			attrs := ctx.Attrs
			if ctx.Node.Type != "" {
				attrs[AttrType] = ctx.Node.Type
			}
			return &Element{Tag: "span", Attrs: attrs, Children: ctx.Children}
		},
		RenderLeaf: RenderLeafSpans,
		IsVoid: func(n *document.Node) Verdict {
			if v, ok := n.Data["void"].(bool); ok && v {
				return VerdictYes
			}
			return VerdictNone
		},
		WrapVoid: func(props Props, el *Element) *Element {
			return &Element{
				Tag: "void",
				Attrs: map[string]string{
					AttrKey: props.Node.Key.String(),
				},
				Children: []*Element{el},
			}
		},
	}
}

package display

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/inkstone-editor/inkstone/internal/render"
)

// Span is a run of equally styled text on one terminal row.
type Span struct {
	Text  string
	Style tcell.Style
}

// Line is one terminal row of the flattened document.
type Line struct {
	Spans []Span

	// RTL mirrors the dir attribute of the source block.
	RTL bool
}

// Text returns the line's text without styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Flatten maps an element tree to terminal lines: one line per leaf
// block (a block element with no nested block structure), styled by the
// theme. Nested blocks contribute the lines of their inner leaf blocks.
func Flatten(el *render.Element, theme *Theme) []Line {
	var out []Line
	flatten(el, theme, theme.Base, &out)
	return out
}

func flatten(el *render.Element, theme *Theme, base tcell.Style, out *[]Line) {
	if el == nil {
		return
	}
	if el.Tag == "void" {
		// Void content renders dimmed; its block structure is kept.
		for _, child := range el.Children {
			flatten(child, theme, theme.Void, out)
		}
		return
	}
	if hasNestedLine(el) {
		for _, child := range el.Children {
			flatten(child, theme, base, out)
		}
		return
	}
	if hasTextDescendant(el) {
		line := Line{RTL: el.Attr(render.AttrDir) == "rtl"}
		collectSpans(el, theme, base, &line)
		*out = append(*out, line)
	}
}

// collectSpans gathers the styled leaf spans under a leaf block.
func collectSpans(el *render.Element, theme *Theme, base tcell.Style, line *Line) {
	if el.Tag == "span" && len(el.Children) == 0 {
		style := base
		if marks := el.Attr(render.AttrMarks); marks != "" {
			for _, mark := range strings.Split(marks, ",") {
				style = mergeAttrs(style, theme.MarkStyle(mark))
			}
		}
		if el.Attr(render.AttrAnnotations) != "" {
			style = mergeAttrs(style, theme.Annotation)
		}
		if el.Attr(render.AttrSelected) == "true" {
			_, selBg, _ := theme.Selection.Decompose()
			style = style.Background(selBg)
		}
		if el.Text != "" {
			line.Spans = append(line.Spans, Span{Text: el.Text, Style: style})
		}
		return
	}
	for _, child := range el.Children {
		collectSpans(child, theme, base, line)
	}
}

// mergeAttrs layers a themed style on top of a base style, keeping the
// base background unless the overlay sets its own.
func mergeAttrs(base, over tcell.Style) tcell.Style {
	baseFg, baseBg, _ := base.Decompose()
	overFg, overBg, overAttrs := over.Decompose()

	out := base
	if overFg != baseFg {
		out = out.Foreground(overFg)
	}
	if overBg != baseBg {
		out = out.Background(overBg)
	}
	out = out.Attributes(attrsOf(base) | overAttrs)
	return out
}

func attrsOf(s tcell.Style) tcell.AttrMask {
	_, _, attrs := s.Decompose()
	return attrs
}

// hasNestedLine reports whether any non-leaf child of the element is
// itself a line producer, i.e. the element holds nested block structure.
func hasNestedLine(el *render.Element) bool {
	for _, child := range el.Children {
		if child.Tag == "span" || child.Tag == "text" {
			continue
		}
		if hasTextDescendant(child) || hasNestedLine(child) {
			return true
		}
	}
	return false
}

// hasTextDescendant reports whether the subtree holds any leaf element.
func hasTextDescendant(el *render.Element) bool {
	if el.Tag == "text" {
		return true
	}
	for _, child := range el.Children {
		if hasTextDescendant(child) {
			return true
		}
	}
	return false
}

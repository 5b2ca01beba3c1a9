package display

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme maps overlay semantics to terminal styles.
type Theme struct {
	// Base is the style of undecorated text.
	Base tcell.Style

	// Selection is applied to spans covered by the selection.
	Selection tcell.Style

	// Annotation is applied to spans covered by any annotation.
	Annotation tcell.Style

	// Marks maps decoration mark types to styles. Unknown marks fall
	// back to bold.
	Marks map[string]tcell.Style

	// Void is the style of void content.
	Void tcell.Style
}

// DefaultTheme returns a dark theme. Accent colors are blended toward
// the background in Lab space so highlights stay readable on top of
// each other.
func DefaultTheme() *Theme {
	bg := colorful.Color{R: 0.08, G: 0.09, B: 0.11}
	fg := colorful.Color{R: 0.87, G: 0.88, B: 0.90}
	accent, _ := colorful.Hex("#3b82f6")
	comment, _ := colorful.Hex("#eab308")

	base := tcell.StyleDefault.
		Background(toTcell(bg)).
		Foreground(toTcell(fg))

	return &Theme{
		Base:       base,
		Selection:  base.Background(toTcell(accent.BlendLab(bg, 0.55))),
		Annotation: base.Underline(true).Foreground(toTcell(comment.BlendLab(fg, 0.3))),
		Marks: map[string]tcell.Style{
			"bold":      base.Bold(true),
			"italic":    base.Italic(true),
			"highlight": base.Background(toTcell(comment.BlendLab(bg, 0.7))),
			"strike":    base.StrikeThrough(true),
		},
		Void: base.Dim(true),
	}
}

// MarkStyle resolves a decoration mark type to a style.
func (t *Theme) MarkStyle(mark string) tcell.Style {
	if s, ok := t.Marks[mark]; ok {
		return s
	}
	return t.Base.Bold(true)
}

// toTcell converts a colorful color to a tcell RGB color.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

package render

import (
	"sort"
	"strings"

	"github.com/inkstone-editor/inkstone/internal/document"
)

// leafInterval is one overlay's coverage of a leaf, in grapheme offsets.
type leafInterval struct {
	from, to int
}

// leafOffsets extracts a leaf-relative overlay interval from a projected
// range. At leaf level both endpoints carry empty paths; anything else
// was malformed upstream and is skipped.
func leafOffsets(r document.Range, length int) (leafInterval, bool) {
	if len(r.Start.Path) != 0 || len(r.End.Path) != 0 {
		return leafInterval{}, false
	}
	iv := leafInterval{from: r.Start.Offset, to: r.End.Offset}
	if iv.from < 0 {
		iv.from = 0
	}
	if iv.to > length {
		iv.to = length
	}
	if iv.from >= iv.to {
		return leafInterval{}, false
	}
	return iv, true
}

// covers reports whether the interval fully contains [from, to).
func (iv leafInterval) covers(from, to int) bool {
	return iv.from <= from && to <= iv.to
}

// RenderLeafSpans is the built-in leaf renderer: it cuts a text leaf
// into contiguous spans at every overlay boundary and tags each span
// with the decorations, annotations, and selection covering it. The
// result is a "text" element whose children are "span" elements.
func RenderLeafSpans(ctx *LeafContext) *Element {
	leaf := ctx.Leaf
	length := leaf.Length()

	type taggedInterval struct {
		leafInterval
		mark string // decoration mark type, if a decoration
		key  string // annotation key, if an annotation
		sel  bool   // selection coverage
	}

	var overlays []taggedInterval
	for _, d := range ctx.Props.Decorations {
		if iv, ok := leafOffsets(d.Range, length); ok {
			overlays = append(overlays, taggedInterval{leafInterval: iv, mark: d.Mark.Type})
		}
	}
	for _, a := range ctx.Props.Annotations {
		if iv, ok := leafOffsets(a.Range, length); ok {
			overlays = append(overlays, taggedInterval{leafInterval: iv, key: a.Key})
		}
	}
	if sel := ctx.Props.Selection; sel != nil {
		if iv, ok := leafOffsets(sel.Range, length); ok {
			overlays = append(overlays, taggedInterval{leafInterval: iv, sel: true})
		}
	}

	// Cut points: leaf extremities plus every overlay boundary.
	cuts := []int{0, length}
	for _, ov := range overlays {
		cuts = append(cuts, ov.from, ov.to)
	}
	sort.Ints(cuts)

	spans := make([]*Element, 0, len(cuts))
	for i := 0; i+1 < len(cuts); i++ {
		from, to := cuts[i], cuts[i+1]
		if from == to {
			continue
		}

		var marks, keys []string
		selected := false
		for _, ov := range overlays {
			if !ov.covers(from, to) {
				continue
			}
			switch {
			case ov.sel:
				selected = true
			case ov.mark != "":
				marks = append(marks, ov.mark)
			case ov.key != "":
				keys = append(keys, ov.key)
			}
		}

		span := &Element{
			Tag:   "span",
			Attrs: map[string]string{},
			Text:  document.SliceText(leaf.Text, from, to),
		}
		if len(marks) > 0 {
			span.Attrs[AttrMarks] = strings.Join(marks, ",")
		}
		if len(keys) > 0 {
			span.Attrs[AttrAnnotations] = strings.Join(keys, ",")
		}
		if selected {
			span.Attrs[AttrSelected] = "true"
		}
		spans = append(spans, span)
	}

	// An empty leaf still renders one empty span so the element keeps a
	// place in the presentation tree.
	if len(spans) == 0 {
		spans = append(spans, &Element{Tag: "span", Attrs: map[string]string{}})
	}

	return &Element{
		Tag:      "text",
		Attrs:    map[string]string{AttrKey: leaf.Key.String()},
		Children: spans,
	}
}

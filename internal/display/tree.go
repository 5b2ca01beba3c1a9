package display

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/inkstone-editor/inkstone/internal/render"
)

// WriteTree writes an indented textual dump of the element tree. Each
// element prints its tag, sorted attributes and, for leaves, the text
// content quoted.
func WriteTree(w io.Writer, el *render.Element) error {
	return writeTree(w, el, 0)
}

func writeTree(w io.Writer, el *render.Element, depth int) error {
	if el == nil {
		return nil
	}
	indent := strings.Repeat("  ", depth)
	if _, err := fmt.Fprintf(w, "%s%s%s", indent, el.Tag, formatAttrs(el)); err != nil {
		return err
	}
	if len(el.Children) == 0 && el.Text != "" {
		if _, err := fmt.Fprintf(w, " %q", el.Text); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, child := range el.Children {
		if err := writeTree(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func formatAttrs(el *render.Element) string {
	if len(el.Attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(el.Attrs))
	for k := range el.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, el.Attrs[k])
	}
	return b.String()
}

// WriteText writes the document's visible text, one line per leaf
// block, without any styling.
func WriteText(w io.Writer, el *render.Element, theme *Theme) error {
	for _, line := range Flatten(el, theme) {
		if _, err := fmt.Fprintln(w, line.Text()); err != nil {
			return err
		}
	}
	return nil
}

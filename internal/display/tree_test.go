package display

import (
	"strings"
	"testing"

	"github.com/inkstone-editor/inkstone/internal/document"
	"github.com/inkstone-editor/inkstone/internal/render"
)

func TestWriteTree(t *testing.T) {
	doc := document.NewDocument(
		document.NewBlock("paragraph", document.NewText("Hello")),
	)

	editor := render.New()
	el, err := editor.Render(doc, nil, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var b strings.Builder
	if err := WriteTree(&b, el); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	out := b.String()

	for _, want := range []string{"main", "div", `data-type="paragraph"`, `"Hello"`} {
		if !strings.Contains(out, want) {
			t.Errorf("tree output missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.HasPrefix(lines[1], "  ") {
		t.Errorf("child element not indented:\n%s", out)
	}
}

func TestWriteTreeSortsAttrs(t *testing.T) {
	el := &render.Element{
		Tag:   "div",
		Attrs: map[string]string{"zeta": "1", "alpha": "2"},
	}

	var b strings.Builder
	if err := WriteTree(&b, el); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	out := b.String()
	if strings.Index(out, "alpha") > strings.Index(out, "zeta") {
		t.Errorf("attributes not sorted: %s", out)
	}
}

func TestWriteText(t *testing.T) {
	doc := document.NewDocument(
		document.NewBlock("paragraph", document.NewText("one")),
		document.NewBlock("paragraph", document.NewText("two")),
	)

	editor := render.New()
	el, err := editor.Render(doc, nil, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var b strings.Builder
	if err := WriteText(&b, el, DefaultTheme()); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if got := b.String(); got != "one\ntwo\n" {
		t.Errorf("WriteText = %q, want %q", got, "one\ntwo\n")
	}
}

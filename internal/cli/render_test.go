package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDocument = `{
  "kind": "document",
  "nodes": [
    {
      "kind": "block",
      "type": "paragraph",
      "nodes": [{"kind": "text", "text": "Hello world"}]
    }
  ]
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(sampleDocument), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderTree(t *testing.T) {
	formatFlag = "tree"
	out, err := runCommand(t, "render", writeSample(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"main", `data-type="paragraph"`, `"Hello world"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderText(t *testing.T) {
	out, err := runCommand(t, "render", "--format", "text", writeSample(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(out) != "Hello world" {
		t.Errorf("text output = %q, want %q", out, "Hello world\n")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := runCommand(t, "render", "--format", "pdf", writeSample(t))
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}

func TestRenderMissingFile(t *testing.T) {
	_, err := runCommand(t, "render", "--format", "tree", filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestRenderWithLuaPlugin(t *testing.T) {
	script := filepath.Join(t.TempDir(), "shout.lua")
	src := `
function render_block(ctx)
  return { tag = "section", attrs = { role = "note" } }
end
`
	if err := os.WriteFile(script, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	formatFlag = "tree"
	out, err := runCommand(t, "render", "--plugin", script, writeSample(t))
	if err != nil {
		t.Fatalf("render with plugin: %v", err)
	}
	if !strings.Contains(out, "section") || !strings.Contains(out, `role="note"`) {
		t.Errorf("plugin renderer not applied:\n%s", out)
	}
	pluginPaths = nil
}

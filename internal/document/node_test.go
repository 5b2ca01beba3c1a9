package document

import (
	"testing"
)

// para builds a paragraph block with the given text runs.
func para(texts ...string) *Node {
	children := make([]*Node, len(texts))
	for i, s := range texts {
		children[i] = NewText(s)
	}
	return NewBlock("paragraph", children...)
}

func TestNodeLength(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want int
	}{
		{"ascii leaf", NewText("Hello"), 5},
		{"empty leaf", NewText(""), 0},
		{"combining marks count as one", NewText("é"), 1},
		{"emoji with zwj counts as one", NewText("\U0001F469‍\U0001F4BB"), 1},
		{"interior sums leaves", para("Hi", "there"), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Length(); got != tt.want {
				t.Errorf("Length() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNodePlainText(t *testing.T) {
	doc := NewDocument(para("Hello, "), para("world"))
	if got := doc.PlainText(); got != "Hello, world" {
		t.Errorf("PlainText() = %q, want %q", got, "Hello, world")
	}
}

func TestNodeFirstText(t *testing.T) {
	t.Run("nested", func(t *testing.T) {
		doc := NewDocument(
			NewBlock("quote", para("first"), para("second")),
			para("third"),
		)
		p, leaf, ok := doc.FirstText()
		if !ok {
			t.Fatal("FirstText() should find a leaf")
		}
		if !p.Equal(Path{0, 0, 0}) {
			t.Errorf("path = %v, want [0 0 0]", p)
		}
		if leaf.Text != "first" {
			t.Errorf("leaf text = %q, want %q", leaf.Text, "first")
		}
	})

	t.Run("leaf itself", func(t *testing.T) {
		leaf := NewText("x")
		p, got, ok := leaf.FirstText()
		if !ok || got != leaf || len(p) != 0 {
			t.Errorf("FirstText() on a leaf should return the leaf at the empty path")
		}
	})

	t.Run("no leaves", func(t *testing.T) {
		empty := NewBlock("figure")
		if _, _, ok := empty.FirstText(); ok {
			t.Error("FirstText() should fail on a childless block")
		}
	})

	t.Run("skips empty sibling subtree", func(t *testing.T) {
		doc := NewDocument(NewBlock("figure"), para("found"))
		p, leaf, ok := doc.FirstText()
		if !ok || leaf.Text != "found" || !p.Equal(Path{1, 0}) {
			t.Errorf("FirstText() = (%v, %v, %v), want path [1 0] leaf %q", p, leaf, ok, "found")
		}
	})
}

func TestNodeLastText(t *testing.T) {
	doc := NewDocument(
		para("first"),
		NewBlock("quote", para("second"), para("third", "fourth")),
	)
	p, leaf, ok := doc.LastText()
	if !ok {
		t.Fatal("LastText() should find a leaf")
	}
	if !p.Equal(Path{1, 1, 1}) {
		t.Errorf("path = %v, want [1 1 1]", p)
	}
	if leaf.Text != "fourth" {
		t.Errorf("leaf text = %q, want %q", leaf.Text, "fourth")
	}
}

func TestNodeDescendant(t *testing.T) {
	inner := para("deep")
	doc := NewDocument(NewBlock("quote", inner))

	tests := []struct {
		name string
		path Path
		want *Node
	}{
		{"empty path is self", Path{}, doc},
		{"nested", Path{0, 0}, inner},
		{"leaf", Path{0, 0, 0}, inner.Nodes[0]},
		{"out of range", Path{3}, nil},
		{"through a leaf", Path{0, 0, 0, 0}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.Descendant(tt.path); got != tt.want {
				t.Errorf("Descendant(%v) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNodeIsLeafBlock(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"text children only", para("a", "b"), true},
		{"inline child", NewBlock("paragraph", NewInline("link", NewText("a"))), true},
		{"nested block", NewBlock("quote", para("a")), false},
		{"not a block", NewText("a"), false},
		{"document", NewDocument(para("a")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsLeafBlock(); got != tt.want {
				t.Errorf("IsLeafBlock() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewKeyUnique(t *testing.T) {
	seen := make(map[Key]struct{})
	for i := 0; i < 100; i++ {
		k := NewKey()
		if k.IsZero() {
			t.Fatal("NewKey() returned a zero key")
		}
		if _, dup := seen[k]; dup {
			t.Fatalf("NewKey() produced a duplicate: %s", k)
		}
		seen[k] = struct{}{}
	}
}

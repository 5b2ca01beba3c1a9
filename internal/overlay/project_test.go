package overlay

import (
	"testing"

	"github.com/inkstone-editor/inkstone/internal/document"
)

// helloWorld is a node with two text children "Hello" (0) and "World" (1).
func helloWorld() *document.Node {
	return document.NewBlock("paragraph",
		document.NewText("Hello"),
		document.NewText("World"),
	)
}

func rng(startPath document.Path, startOff int, endPath document.Path, endOff int) document.Range {
	return document.Range{
		Start: document.Point{Path: startPath, Offset: startOff},
		End:   document.Point{Path: endPath, Offset: endOff},
	}
}

func TestProjectExactBoundary(t *testing.T) {
	node := helloWorld()
	r := rng(document.Path{0}, 2, document.Path{1}, 3)

	t.Run("child 0 rebases start, clamps end", func(t *testing.T) {
		got, ok := Project(node, 0, r)
		if !ok {
			t.Fatal("projection onto child 0 should succeed")
		}
		want := rng(document.Path{}, 2, document.Path{}, 5)
		if !got.Equal(want) {
			t.Errorf("Project() = %s, want %s", got, want)
		}
	})

	t.Run("child 1 clamps start, rebases end", func(t *testing.T) {
		got, ok := Project(node, 1, r)
		if !ok {
			t.Fatal("projection onto child 1 should succeed")
		}
		want := rng(document.Path{}, 0, document.Path{}, 3)
		if !got.Equal(want) {
			t.Errorf("Project() = %s, want %s", got, want)
		}
	})
}

func TestProjectNoIntersection(t *testing.T) {
	node := document.NewBlock("paragraph",
		document.NewText("one"),
		document.NewText("two"),
		document.NewText("three"),
	)

	t.Run("range before the child", func(t *testing.T) {
		r := rng(document.Path{0}, 0, document.Path{0}, 3)
		if _, ok := Project(node, 2, r); ok {
			t.Error("range inside child 0 should not project onto child 2")
		}
	})

	t.Run("range after the child", func(t *testing.T) {
		r := rng(document.Path{2}, 0, document.Path{2}, 1)
		if _, ok := Project(node, 0, r); ok {
			t.Error("range inside child 2 should not project onto child 0")
		}
	})
}

func TestProjectSpanningRange(t *testing.T) {
	// Interior children force the clamp to descend to subtree extremities.
	node := document.NewBlock("quote",
		document.NewBlock("paragraph", document.NewText("alpha")),
		document.NewBlock("paragraph", document.NewText("beta"), document.NewText("gamma")),
		document.NewBlock("paragraph", document.NewText("delta")),
	)
	r := rng(document.Path{0, 0}, 1, document.Path{2, 0}, 2)

	t.Run("middle child clamps both ends", func(t *testing.T) {
		got, ok := Project(node, 1, r)
		if !ok {
			t.Fatal("spanning range should project onto middle child")
		}
		want := rng(document.Path{0}, 0, document.Path{1}, 5)
		if !got.Equal(want) {
			t.Errorf("Project() = %s, want %s", got, want)
		}
	})

	t.Run("first child keeps rebased start", func(t *testing.T) {
		got, ok := Project(node, 0, r)
		if !ok {
			t.Fatal("projection should succeed")
		}
		want := rng(document.Path{0}, 1, document.Path{0}, 5)
		if !got.Equal(want) {
			t.Errorf("Project() = %s, want %s", got, want)
		}
	})

	t.Run("last child keeps rebased end", func(t *testing.T) {
		got, ok := Project(node, 2, r)
		if !ok {
			t.Fatal("projection should succeed")
		}
		want := rng(document.Path{0}, 0, document.Path{0}, 2)
		if !got.Equal(want) {
			t.Errorf("Project() = %s, want %s", got, want)
		}
	})
}

func TestProjectPartition(t *testing.T) {
	// The set of children a range projects onto must be the contiguous
	// run from its start index to its end index, with no gaps.
	node := document.NewBlock("quote",
		document.NewBlock("paragraph", document.NewText("aa")),
		document.NewBlock("paragraph", document.NewText("bb")),
		document.NewBlock("paragraph", document.NewText("cc")),
		document.NewBlock("paragraph", document.NewText("dd")),
		document.NewBlock("paragraph", document.NewText("ee")),
	)

	tests := []struct {
		name               string
		r                  document.Range
		wantFirst, wantLast int
	}{
		{"single child", rng(document.Path{2, 0}, 0, document.Path{2, 0}, 1), 2, 2},
		{"adjacent pair", rng(document.Path{1, 0}, 1, document.Path{2, 0}, 1), 1, 2},
		{"span across middle", rng(document.Path{0, 0}, 0, document.Path{4, 0}, 2), 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range node.Nodes {
				_, ok := Project(node, i, tt.r)
				want := i >= tt.wantFirst && i <= tt.wantLast
				if ok != want {
					t.Errorf("child %d: projectable = %v, want %v", i, ok, want)
				}
			}
		})
	}
}

func TestProjectEndpointContainment(t *testing.T) {
	node := document.NewBlock("quote",
		document.NewBlock("paragraph", document.NewText("alpha")),
		document.NewBlock("paragraph", document.NewText("beta")),
	)
	r := rng(document.Path{0, 0}, 2, document.Path{1, 0}, 4)

	for i, child := range node.Nodes {
		got, ok := Project(node, i, r)
		if !ok {
			t.Fatalf("projection onto child %d should succeed", i)
		}
		for _, pt := range []document.Point{got.Start, got.End} {
			leaf := child.Descendant(pt.Path)
			if leaf == nil || !leaf.IsText() {
				t.Fatalf("child %d: point %s does not resolve to a text leaf", i, pt)
			}
			if pt.Offset < 0 || pt.Offset > leaf.Length() {
				t.Errorf("child %d: offset %d outside [0, %d]", i, pt.Offset, leaf.Length())
			}
		}
		if !got.IsValid() {
			t.Errorf("child %d: projected range %s is inverted", i, got)
		}
	}
}

func TestProjectMalformedRanges(t *testing.T) {
	node := helloWorld()

	tests := []struct {
		name string
		r    document.Range
	}{
		{"start index out of bounds", rng(document.Path{7}, 0, document.Path{1}, 1)},
		{"end index out of bounds", rng(document.Path{0}, 0, document.Path{9}, 0)},
		{"empty start path", rng(document.Path{}, 0, document.Path{1}, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range node.Nodes {
				if _, ok := Project(node, i, tt.r); ok {
					t.Errorf("malformed range should not project onto child %d", i)
				}
			}
		})
	}

	t.Run("path descending through a leaf", func(t *testing.T) {
		// The bogus deep path only matters for the child it rebases
		// into; the sibling clamps and still projects.
		r := rng(document.Path{0, 0}, 0, document.Path{1}, 1)
		if _, ok := Project(node, 0, r); ok {
			t.Error("rebase through a leaf should fail")
		}
		if _, ok := Project(node, 1, r); !ok {
			t.Error("sibling projection should clamp and succeed")
		}
	})

	t.Run("invalid child index", func(t *testing.T) {
		r := rng(document.Path{0}, 0, document.Path{1}, 1)
		if _, ok := Project(node, 5, r); ok {
			t.Error("projection onto a nonexistent child should fail")
		}
		if _, ok := Project(node, -1, r); ok {
			t.Error("projection onto a negative index should fail")
		}
	})
}

func TestProjectEndpointOnNonLeaf(t *testing.T) {
	// A path terminating on an interior node does not support offsets;
	// the range is malformed and the child is dropped.
	node := document.NewBlock("quote",
		document.NewBlock("paragraph", document.NewText("alpha")),
	)
	r := rng(document.Path{0}, 0, document.Path{0}, 1)
	if _, ok := Project(node, 0, r); ok {
		t.Error("endpoint resolving to a non-leaf should be treated as malformed")
	}
}

func TestProjectClampWithoutTextLeaf(t *testing.T) {
	// A spanning range cannot clamp against a child whose subtree holds
	// no text leaf.
	node := document.NewBlock("quote",
		document.NewBlock("paragraph", document.NewText("alpha")),
		document.NewBlock("figure"),
		document.NewBlock("paragraph", document.NewText("beta")),
	)
	r := rng(document.Path{0, 0}, 0, document.Path{2, 0}, 2)
	if _, ok := Project(node, 1, r); ok {
		t.Error("clamp against a leafless subtree should fail")
	}
	if _, ok := Project(node, 2, r); !ok {
		t.Error("later siblings should still project")
	}
}

func TestProjectSelectionMetadata(t *testing.T) {
	node := helloWorld()
	sel := &Selection{
		Range:    rng(document.Path{0}, 1, document.Path{1}, 2),
		Backward: true,
		Focused:  true,
	}

	got := ProjectSelection(node, 0, sel)
	if got == nil {
		t.Fatal("selection should project onto child 0")
	}
	if !got.Backward || !got.Focused {
		t.Error("projection must preserve selection metadata")
	}
	if !got.Range.Equal(rng(document.Path{}, 1, document.Path{}, 5)) {
		t.Errorf("projected range = %s", got.Range)
	}
	if sel.Range.Start.Offset != 1 {
		t.Error("projection must not mutate the source selection")
	}

	if ProjectSelection(node, 0, nil) != nil {
		t.Error("absent selection should stay absent")
	}
}

func TestProjectDecorationsDropsMisses(t *testing.T) {
	node := helloWorld()
	decs := []Decoration{
		{Range: rng(document.Path{0}, 0, document.Path{0}, 2), Mark: Mark{Type: "bold"}},
		{Range: rng(document.Path{1}, 1, document.Path{1}, 3), Mark: Mark{Type: "italic"}},
	}

	got := ProjectDecorations(node, 0, decs)
	if len(got) != 1 {
		t.Fatalf("child 0 should receive 1 decoration, got %d", len(got))
	}
	if got[0].Mark.Type != "bold" {
		t.Errorf("mark = %q, want %q", got[0].Mark.Type, "bold")
	}
}

func TestProjectAnnotationsPreservesKeys(t *testing.T) {
	node := helloWorld()
	anns := []Annotation{
		{Range: rng(document.Path{0}, 0, document.Path{1}, 5), Key: "comment-1", Type: "comment"},
		{Range: rng(document.Path{0}, 0, document.Path{0}, 1), Key: "comment-2", Type: "comment"},
	}

	got := ProjectAnnotations(node, 1, anns)
	if len(got) != 1 {
		t.Fatalf("child 1 should receive 1 annotation, got %d", len(got))
	}
	if got[0].Key != "comment-1" {
		t.Errorf("key = %q, want %q", got[0].Key, "comment-1")
	}
}

package render

import (
	"errors"
	"testing"

	"github.com/inkstone-editor/inkstone/internal/document"
	"github.com/inkstone-editor/inkstone/internal/overlay"
)

func TestStackRenderFirstMatchWins(t *testing.T) {
	first := Plugin{
		Name:        "first",
		RenderBlock: func(*RenderContext) *Element { return &Element{Tag: "first"} },
	}
	second := Plugin{
		Name:        "second",
		RenderBlock: func(*RenderContext) *Element { return &Element{Tag: "second"} },
	}
	s := NewStack(first, second)

	el, err := s.Render(HookRenderBlock, &RenderContext{Node: document.NewBlock("paragraph")})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if el.Tag != "first" {
		t.Errorf("tag = %q, want first", el.Tag)
	}
}

func TestStackRenderPassThrough(t *testing.T) {
	passer := Plugin{
		Name:        "passer",
		RenderBlock: func(*RenderContext) *Element { return nil },
	}
	catcher := Plugin{
		Name:        "catcher",
		RenderBlock: func(*RenderContext) *Element { return &Element{Tag: "caught"} },
	}
	s := NewStack(passer, catcher)

	el, err := s.Render(HookRenderBlock, &RenderContext{Node: document.NewBlock("paragraph")})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if el.Tag != "caught" {
		t.Errorf("tag = %q, want caught", el.Tag)
	}
}

func TestStackRenderExhaustion(t *testing.T) {
	s := NewStack(Plugin{Name: "empty"})
	node := document.NewBlock("paragraph")

	_, err := s.Render(HookRenderBlock, &RenderContext{Node: node})
	if !errors.Is(err, ErrNoRenderer) {
		t.Fatalf("error = %v, want ErrNoRenderer", err)
	}
	var nerr *NodeError
	if !errors.As(err, &nerr) || nerr.Key != node.Key || nerr.Hook != HookRenderBlock {
		t.Errorf("NodeError = %+v, want key %s and hook renderBlock", nerr, node.Key)
	}
}

func TestStackDecorateConcatenatesInOrder(t *testing.T) {
	mk := func(typ string) Plugin {
		return Plugin{
			Name: typ,
			DecorateNode: func(*document.Node) []overlay.Decoration {
				return []overlay.Decoration{{Mark: overlay.Mark{Type: typ}}}
			},
		}
	}
	s := NewStack(mk("a"), Plugin{Name: "none"}, mk("b"))

	decs := s.Decorate(document.NewBlock("paragraph"))
	if len(decs) != 2 || decs[0].Mark.Type != "a" || decs[1].Mark.Type != "b" {
		t.Errorf("decorations = %+v, want [a b]", decs)
	}
}

func TestStackIsVoidFirstDefiniteWins(t *testing.T) {
	yes := Plugin{Name: "yes", IsVoid: func(*document.Node) Verdict { return VerdictYes }}
	no := Plugin{Name: "no", IsVoid: func(*document.Node) Verdict { return VerdictNo }}
	none := Plugin{Name: "none", IsVoid: func(*document.Node) Verdict { return VerdictNone }}
	node := document.NewBlock("image")

	tests := []struct {
		name string
		s    *Stack
		want bool
	}{
		{"yes first", NewStack(yes, no), true},
		{"no blocks later yes", NewStack(no, yes), false},
		{"none defers", NewStack(none, yes), true},
		{"no opinion anywhere", NewStack(none), false},
		{"empty stack", NewStack(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.IsVoid(node); got != tt.want {
				t.Errorf("IsVoid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStackWrapVoidFallback(t *testing.T) {
	el := &Element{Tag: "div"}

	t.Run("no wrapper returns output unwrapped", func(t *testing.T) {
		if got := NewStack().WrapVoid(Props{}, el); got != el {
			t.Error("output should pass through untouched")
		}
	})

	t.Run("first wrapper wins", func(t *testing.T) {
		wrapper := Plugin{
			Name: "wrapper",
			WrapVoid: func(_ Props, inner *Element) *Element {
				return &Element{Tag: "void", Children: []*Element{inner}}
			},
		}
		got := NewStack(wrapper).WrapVoid(Props{}, el)
		if got.Tag != "void" || got.Children[0] != el {
			t.Errorf("wrapped = %+v", got)
		}
	})
}

func TestStackShouldNodeUpdateFirstDefinite(t *testing.T) {
	verdict := func(v Verdict) Plugin {
		return Plugin{Name: v.String(), ShouldNodeUpdate: func(_, _ Props) Verdict { return v }}
	}

	tests := []struct {
		name string
		s    *Stack
		want Verdict
	}{
		{"yes", NewStack(verdict(VerdictYes)), VerdictYes},
		{"no", NewStack(verdict(VerdictNo)), VerdictNo},
		{"none falls through", NewStack(verdict(VerdictNone), verdict(VerdictYes)), VerdictYes},
		{"no opinion", NewStack(), VerdictNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.ShouldNodeUpdate(Props{}, Props{}); got != tt.want {
				t.Errorf("ShouldNodeUpdate() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHookString(t *testing.T) {
	tests := []struct {
		hook Hook
		want string
	}{
		{HookRenderDocument, "renderDocument"},
		{HookRenderBlock, "renderBlock"},
		{HookRenderInline, "renderInline"},
	}
	for _, tt := range tests {
		if got := tt.hook.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

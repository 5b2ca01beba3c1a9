package plugin

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/inkstone-editor/inkstone/internal/document"
	"github.com/inkstone-editor/inkstone/internal/overlay"
	"github.com/inkstone-editor/inkstone/internal/render"
)

// Lua hook function names.
const (
	fnDecorate     = "decorate"
	fnRenderBlock  = "render_block"
	fnRenderInline = "render_inline"
	fnIsVoid       = "is_void"
)

// Host owns one plugin script's Lua state and exposes it as a render
// pipeline plugin. Hook errors never abort a render pass: a failing Lua
// function is logged and treated as "pass" (or "no opinion"), since a
// broken decoration script should degrade styling, not take down the
// view.
type Host struct {
	name   string
	state  *state
	logger *zap.Logger
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger for script failures.
func WithLogger(logger *zap.Logger) Option {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// Load compiles and runs a plugin script.
func Load(name, src string, opts ...Option) (*Host, error) {
	h := &Host{
		name:   name,
		state:  newState(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if err := h.state.doString(src); err != nil {
		h.state.close()
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, name, err)
	}
	return h, nil
}

// LoadFile loads a plugin script from disk.
func LoadFile(path string, opts ...Option) (*Host, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	return Load(path, string(src), opts...)
}

// Name returns the plugin name.
func (h *Host) Name() string {
	return h.name
}

// Close releases the plugin's Lua state.
func (h *Host) Close() {
	h.state.close()
}

// Plugin adapts the script to the render pipeline. Only the hooks the
// script actually defines are wired, so an absent function keeps its
// pass-through cost at nil.
func (h *Host) Plugin() render.Plugin {
	p := render.Plugin{Name: h.name}
	if h.state.hasFunction(fnDecorate) {
		p.DecorateNode = h.decorate
	}
	if h.state.hasFunction(fnRenderBlock) {
		p.RenderBlock = h.renderHook(fnRenderBlock)
	}
	if h.state.hasFunction(fnRenderInline) {
		p.RenderInline = h.renderHook(fnRenderInline)
	}
	if h.state.hasFunction(fnIsVoid) {
		p.IsVoid = h.isVoid
	}
	return p
}

// decorate calls the script's decorate hook and converts its result.
func (h *Host) decorate(n *document.Node) []overlay.Decoration {
	ret, err := h.state.call(fnDecorate, nodeTable(h.state.L, n))
	if err != nil {
		h.warn(fnDecorate, err)
		return nil
	}
	table, ok := ret.(*lua.LTable)
	if !ok {
		return nil
	}

	var decs []overlay.Decoration
	table.ForEach(func(_, v lua.LValue) {
		dt, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		if d, ok := decorationFromTable(dt); ok {
			decs = append(decs, d)
		}
	})
	return decs
}

// renderHook adapts a Lua render function to a pipeline render hook.
func (h *Host) renderHook(fn string) func(*render.RenderContext) *render.Element {
	return func(ctx *render.RenderContext) *render.Element {
		ret, err := h.state.call(fn, contextTable(h.state.L, ctx))
		if err != nil {
			h.warn(fn, err)
			return nil
		}
		table, ok := ret.(*lua.LTable)
		if !ok {
			return nil
		}
		return elementFromTable(table, ctx)
	}
}

// isVoid adapts the script's void predicate: true/false are definite
// verdicts, nil (or an error) is no opinion.
func (h *Host) isVoid(n *document.Node) render.Verdict {
	ret, err := h.state.call(fnIsVoid, nodeTable(h.state.L, n))
	if err != nil {
		h.warn(fnIsVoid, err)
		return render.VerdictNone
	}
	b, ok := ret.(lua.LBool)
	if !ok {
		return render.VerdictNone
	}
	if bool(b) {
		return render.VerdictYes
	}
	return render.VerdictNo
}

func (h *Host) warn(fn string, err error) {
	h.logger.Warn("plugin hook failed",
		zap.String("plugin", h.name),
		zap.String("function", fn),
		zap.Error(&ScriptError{Plugin: h.name, Function: fn, Err: err}))
}

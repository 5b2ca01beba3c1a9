package plugin

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/inkstone-editor/inkstone/internal/document"
	"github.com/inkstone-editor/inkstone/internal/overlay"
	"github.com/inkstone-editor/inkstone/internal/render"
)

// nodeTable converts a node into the table handed to Lua hooks.
func nodeTable(L *lua.LState, n *document.Node) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("kind", lua.LString(n.Kind.String()))
	t.RawSetString("key", lua.LString(n.Key.String()))
	if n.Type != "" {
		t.RawSetString("type", lua.LString(n.Type))
	}
	t.RawSetString("text", lua.LString(n.PlainText()))
	if len(n.Data) > 0 {
		data := L.NewTable()
		for k, v := range n.Data {
			data.RawSetString(k, goToLua(L, v))
		}
		t.RawSetString("data", data)
	}
	return t
}

// contextTable converts a render context into the table handed to Lua
// render hooks. Children stay on the Go side.
func contextTable(L *lua.LState, ctx *render.RenderContext) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("node", nodeTable(L, ctx.Node))
	attrs := L.NewTable()
	for k, v := range ctx.Attrs {
		attrs.RawSetString(k, lua.LString(v))
	}
	t.RawSetString("attrs", attrs)
	t.RawSetString("selected", lua.LBool(ctx.Props.IsSelected()))
	t.RawSetString("read_only", lua.LBool(ctx.Props.ReadOnly))
	return t
}

// goToLua converts plain Go data (as produced by the document codec)
// to a Lua value.
func goToLua(L *lua.LState, v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case string:
		return lua.LString(val)
	case float64:
		return lua.LNumber(val)
	case int:
		return lua.LNumber(val)
	case []any:
		t := L.NewTable()
		for _, item := range val {
			t.Append(goToLua(L, item))
		}
		return t
	case map[string]any:
		t := L.NewTable()
		for k, item := range val {
			t.RawSetString(k, goToLua(L, item))
		}
		return t
	default:
		return lua.LNil
	}
}

// elementFromTable converts a Lua element description into an Element.
// Children are attached from the render context, not from Lua.
func elementFromTable(t *lua.LTable, ctx *render.RenderContext) *render.Element {
	el := &render.Element{
		Tag:      lua.LVAsString(t.RawGetString("tag")),
		Attrs:    map[string]string{},
		Children: ctx.Children,
	}
	if el.Tag == "" {
		return nil
	}
	for k, v := range ctx.Attrs {
		el.Attrs[k] = v
	}
	if attrs, ok := t.RawGetString("attrs").(*lua.LTable); ok {
		attrs.ForEach(func(k, v lua.LValue) {
			el.Attrs[lua.LVAsString(k)] = lua.LVAsString(v)
		})
	}
	return el
}

// decorationFromTable converts a Lua decoration description into a
// Decoration. Returns false when the table is not well formed.
func decorationFromTable(t *lua.LTable) (overlay.Decoration, bool) {
	start, ok := pointFrom(t, "start_path", "start_offset")
	if !ok {
		return overlay.Decoration{}, false
	}
	end, ok := pointFrom(t, "end_path", "end_offset")
	if !ok {
		return overlay.Decoration{}, false
	}
	mark := lua.LVAsString(t.RawGetString("mark"))
	if mark == "" {
		return overlay.Decoration{}, false
	}
	return overlay.Decoration{
		Range: document.NewRange(start, end),
		Mark:  overlay.Mark{Type: mark},
	}, true
}

// pointFrom reads a path array plus offset from a decoration table.
func pointFrom(t *lua.LTable, pathKey, offsetKey string) (document.Point, bool) {
	pathTable, ok := t.RawGetString(pathKey).(*lua.LTable)
	if !ok {
		return document.Point{}, false
	}
	var path document.Path
	valid := true
	pathTable.ForEach(func(_, v lua.LValue) {
		n, isNum := v.(lua.LNumber)
		if !isNum || int(n) < 0 {
			valid = false
			return
		}
		path = append(path, int(n))
	})
	if !valid {
		return document.Point{}, false
	}
	offset, ok := t.RawGetString(offsetKey).(lua.LNumber)
	if !ok || int(offset) < 0 {
		return document.Point{}, false
	}
	return document.Point{Path: path, Offset: int(offset)}, true
}

// Package plugin loads render plugins written in Lua and adapts them to
// the render pipeline's Plugin shape.
//
// A script defines any subset of the global functions:
//
//	decorate(node)          -> array of decoration tables
//	render_block(ctx)       -> element table or nil to pass
//	render_inline(ctx)      -> element table or nil to pass
//	is_void(node)           -> true, false, or nil for no opinion
//
// Node tables carry kind, key, type, text and data. Element tables carry
// tag and attrs; rendered children are attached by the host, they do not
// round-trip through Lua. Decoration tables carry start_path,
// start_offset, end_path, end_offset and mark.
//
// Scripts run in a sandboxed state with only the base, table, string and
// math libraries opened. A render pass is single-threaded and
// synchronous, so each host owns its state without locking; a Host must
// not be shared across goroutines.
package plugin

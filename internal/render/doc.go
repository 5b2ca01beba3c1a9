// Package render walks an immutable document tree and produces a
// presentation element tree, projecting the positional overlays
// (selection, decorations, annotations) into each child's coordinate
// space as it descends.
//
// Rendering is driven by a plugin stack: an ordered list of handlers
// tried in sequence, first match wins. The built-in core plugin sits at
// the bottom of the stack and guarantees a baseline rendering for every
// node kind, so the stack is only exhausted when a caller removes it.
//
// The package also houses the update gate (Editor.ShouldUpdate), the
// check a host runs before recomputing a node's subtree on a new pass.
// A render pass is single-threaded and synchronous; the document and
// overlay inputs must not change while it runs.
package render

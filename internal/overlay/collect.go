package overlay

import (
	"github.com/inkstone-editor/inkstone/internal/document"
)

// DecorateFunc computes a node's own fresh decorations, scoped to the
// node's coordinate space. Hooks may return nil.
type DecorateFunc func(*document.Node) []Decoration

// Collect merges a node's fresh decorations with the ones it inherited
// from its parent. Both sets are expressed in the node's own coordinate
// space at this point, so both are projected together onto each child at
// render time. Annotations are not collected; the render pass propagates
// the inherited annotation set as-is.
//
// The inherited set comes first so a node's own decorations take
// precedence when leaf styling resolves overlapping marks.
func Collect(node *document.Node, inherited []Decoration, decorate DecorateFunc) []Decoration {
	var fresh []Decoration
	if decorate != nil {
		fresh = decorate(node)
	}
	if len(fresh) == 0 {
		return inherited
	}
	out := make([]Decoration, 0, len(inherited)+len(fresh))
	out = append(out, inherited...)
	out = append(out, fresh...)
	return out
}

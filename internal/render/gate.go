package render

import (
	"go.uber.org/zap"

	"github.com/inkstone-editor/inkstone/internal/overlay"
)

// ShouldUpdate decides whether a node's subtree must be recomputed for
// a new pass, given the props it rendered with last time and the props
// the new pass produced.
//
// The plugin override hook is consulted first: a definite yes forces an
// update. A definite no is only an opinion — it cannot suppress the
// built-in checks, because the checks below are exactly the conditions
// under which stale output would be shown. A plugin that answers no
// while a built-in check fires is misusing the hook; the conflict is
// logged as a warning and the built-in answer stands.
//
// The built-in checks, in order: read-only flag changed, node identity
// changed (pointer comparison — sound because trees are immutable, so a
// changed node is a new value), node selected in either pass (a nested
// descendant's selection state may have shifted even when this node's
// own projected range is unchanged), focus changed, annotation set
// changed, decoration set changed.
func (e *Editor) ShouldUpdate(old, new Props) bool {
	verdict := e.stack.ShouldNodeUpdate(old, new)
	if verdict == VerdictYes {
		return true
	}

	update := old.ReadOnly != new.ReadOnly ||
		old.Node != new.Node ||
		old.IsSelected() || new.IsSelected() ||
		old.IsFocused() != new.IsFocused() ||
		!overlay.EqualAnnotations(old.Annotations, new.Annotations) ||
		!overlay.EqualDecorations(old.Decorations, new.Decorations)

	if verdict == VerdictNo && update {
		key := ""
		if new.Node != nil {
			key = new.Node.Key.String()
		}
		e.logger.Warn("shouldNodeUpdate override cannot veto built-in update checks",
			zap.String("node", key))
	}
	return update
}

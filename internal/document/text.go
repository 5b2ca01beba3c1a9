package document

import (
	"strings"

	"github.com/rivo/uniseg"
)

// SliceText returns the substring of s between two grapheme-cluster
// offsets, half-open. Offsets are clamped to the valid range, so callers
// may pass overlay offsets without pre-validating them.
func SliceText(s string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to <= from {
		return ""
	}

	var b strings.Builder
	idx := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if idx >= to {
			break
		}
		if idx >= from {
			b.WriteString(g.Str())
		}
		idx++
	}
	return b.String()
}

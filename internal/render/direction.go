package render

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction is the dominant text direction of a run of text.
type Direction uint8

const (
	// DirectionLTR is left-to-right (also returned for neutral text).
	DirectionLTR Direction = iota

	// DirectionRTL is right-to-left.
	DirectionRTL
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// DominantDirection classifies text by counting strong directional
// characters: more right-to-left (R or AL class) than left-to-right
// means RTL. Neutral-only text is LTR.
func DominantDirection(s string) Direction {
	ltr, rtl := 0, 0
	for b := []byte(s); len(b) > 0; {
		props, sz := bidi.Lookup(b)
		if sz == 0 {
			break
		}
		switch props.Class() {
		case bidi.L:
			ltr++
		case bidi.R, bidi.AL:
			rtl++
		}
		b = b[sz:]
	}
	if rtl > ltr {
		return DirectionRTL
	}
	return DirectionLTR
}

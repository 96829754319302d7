package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Shaper computes one horizontal advance per rune of a text run. The
// layout pass uses these advances to position glyphs and decide wrap
// points.
//
// Implementations may use either the ready-made face (cheap, per-rune
// metrics) or the underlying source plus size (full shaping).
type Shaper interface {
	Advances(src *FontSource, face font.Face, sizePt float64, runes []rune) []fixed.Int26_6
}

// BuiltinShaper reads per-rune advances straight from the font face.
// No kerning, no ligatures; every rune advances independently. This is
// the default shaper.
type BuiltinShaper struct{}

// Advances implements the Shaper interface.
func (BuiltinShaper) Advances(_ *FontSource, face font.Face, _ float64, runes []rune) []fixed.Int26_6 {
	advances := make([]fixed.Int26_6, len(runes))
	for i, r := range runes {
		if a, ok := face.GlyphAdvance(r); ok {
			advances[i] = a
		}
	}
	return advances
}

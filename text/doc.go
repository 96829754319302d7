// Package text rasterizes strings into RGBA byte buffers.
//
// The Rasterizer implements the g2d.TextRasterizer contract: it always
// returns a buffer of exactly width*height*4 bytes and degrades to an
// all-transparent buffer on any failure (bad font data, unusable
// sizes). Text rasterization must never be the reason a frame is
// dropped; a blank label is the worse of two evils by a wide margin.
//
// Layout is a simple caret walk: '\n' starts a new line, and a
// non-whitespace rune that would cross the right edge of the box wraps
// to the next line. Glyph advances come from a pluggable Shaper; the
// default BuiltinShaper reads per-rune advances from the font, while
// GoTextShaper adds kerning-aware advances via go-text/typesetting's
// HarfBuzz port.
package text

package g2d

// TextParameters describes a piece of text to rasterize.
type TextParameters struct {
	Text  string
	Color Color
	// Scale is the text size in points.
	Scale float64
	// Font holds raw TTF/OTF data. nil selects the rasterizer's
	// default font.
	Font []byte
}

// TextRasterizer turns text into an RGBA byte buffer of a requested
// box size. Implementations must always return exactly
// width*height*4 bytes (row-major, top-left origin, straight alpha)
// and must return an all-zero buffer on failure rather than an error:
// a blank label is preferable to a dropped frame.
//
// The text package provides the default implementation.
type TextRasterizer interface {
	Rasterize(p TextParameters, width, height int) []byte
}

// DrawText rasterizes text into a width x height box and composites
// it onto the surface at pos, pixel by pixel, like DrawSprite.
func (s *Surface) DrawText(r TextRasterizer, p TextParameters, pos Point, width, height int) {
	if r == nil || width <= 0 || height <= 0 {
		return
	}
	data := r.Rasterize(p, width, height)
	s.DrawRGBA(data, width, height, pos)
}

package g2d

import "image"

// DrawSprite composites a bitmap onto the surface with its top-left
// corner at pos. Sprite pixels are treated as straight (non-
// premultiplied) RGBA and go through the same per-pixel draw rule as
// DrawPixel; destination pixels that fall outside the surface are
// skipped individually.
func (s *Surface) DrawSprite(sprite image.Image, pos Point) {
	bounds := sprite.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c := FromColor(sprite.At(bounds.Min.X+x, bounds.Min.Y+y))
			s.DrawPixel(Pt(pos.X+x, pos.Y+y), c)
		}
	}
}

// DrawRGBA composites a raw RGBA byte buffer (straight alpha,
// row-major, 4 bytes per pixel) of the given dimensions onto the
// surface at pos. Buffers shorter than width*height*4 draw only the
// complete pixels they contain.
func (s *Surface) DrawRGBA(data []byte, width, height int, pos Point) {
	if width <= 0 || height <= 0 {
		return
	}
	n := len(data) / 4
	if max := width * height; n > max {
		n = max
	}
	for i := 0; i < n; i++ {
		c := RGBA(data[i*4], data[i*4+1], data[i*4+2], data[i*4+3])
		s.DrawPixel(Pt(pos.X+i%width, pos.Y+i/width), c)
	}
}

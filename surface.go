package g2d

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// DrawMode controls how drawing operations combine incoming pixels with
// the pixels already on the surface.
type DrawMode uint8

const (
	// DrawModeBlend composites incoming pixels over existing ones
	// using premultiplied-alpha "over" blending. This is the default.
	DrawModeBlend DrawMode = iota
	// DrawModeReplace overwrites existing pixels with the
	// premultiplied incoming color.
	DrawModeReplace
)

// String returns the string representation of the draw mode.
func (m DrawMode) String() string {
	switch m {
	case DrawModeBlend:
		return "Blend"
	case DrawModeReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Surface is a mutable width x height pixel buffer with primitive
// drawing operations. Pixels are stored premultiplied, row-major,
// origin at the top-left.
//
// Surface is not safe for concurrent use. It is designed for a
// frame-synchronous loop with a single writer per frame.
type Surface struct {
	width      int
	height     int
	clearColor Color
	pix        []Color
	mode       DrawMode
}

// NewSurface creates a surface with the given dimensions, filled with
// clearColor. Non-positive dimensions are clamped to zero.
func NewSurface(width, height int, clearColor Color) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s := &Surface{
		width:      width,
		height:     height,
		clearColor: clearColor,
		pix:        make([]Color, width*height),
		mode:       DrawModeBlend,
	}
	s.Clear()
	return s
}

// FromImage creates a surface holding a copy of img. The surface's
// clear color is transparent and its draw mode is Blend.
func FromImage(img image.Image) *Surface {
	bounds := img.Bounds()
	s := NewSurface(bounds.Dx(), bounds.Dy(), Transparent)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			s.pix[y*s.width+x] = c.Premultiply()
		}
	}
	return s
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int {
	return s.height
}

// DrawMode returns the current draw mode.
func (s *Surface) DrawMode() DrawMode {
	return s.mode
}

// SetDrawMode sets how subsequent drawing operations combine pixels.
func (s *Surface) SetDrawMode(mode DrawMode) {
	s.mode = mode
}

// ClearColor returns the color used by Clear and Resize.
func (s *Surface) ClearColor() Color {
	return s.clearColor
}

// SetClearColor sets the color used by Clear and Resize.
func (s *Surface) SetClearColor(c Color) {
	s.clearColor = c
}

// GetPixel returns the stored (premultiplied) color at p.
// Out-of-bounds coordinates return Transparent.
func (s *Surface) GetPixel(p Point) Color {
	if !p.In(s.width, s.height) {
		return Transparent
	}
	return s.pix[p.Y*s.width+p.X]
}

// DrawPixel draws a single pixel. The color is premultiplied on the
// way in and either replaces or blends with the existing pixel
// depending on the draw mode. Out-of-bounds coordinates are silently
// ignored.
func (s *Surface) DrawPixel(p Point, c Color) {
	if !p.In(s.width, s.height) {
		return
	}
	i := p.Y*s.width + p.X
	switch s.mode {
	case DrawModeReplace:
		s.pix[i] = c.Premultiply()
	default:
		s.pix[i] = Blend(s.pix[i], c.Premultiply())
	}
}

// Clear overwrites every pixel with the surface's clear color.
func (s *Surface) Clear() {
	c := s.clearColor.Premultiply()
	for i := range s.pix {
		s.pix[i] = c
	}
}

// Resize reallocates the pixel buffer to the new dimensions and fills
// it with the clear color. Existing content is dropped, not rescaled.
func (s *Surface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width = width
	s.height = height
	s.pix = make([]Color, width*height)
	s.Clear()
}

// RawRGBA returns the pixel buffer as RGBA bytes, row-major, 4 bytes
// per pixel. The values are premultiplied.
func (s *Surface) RawRGBA() []byte {
	out := make([]byte, 0, len(s.pix)*4)
	for _, p := range s.pix {
		out = append(out, p.R, p.G, p.B, p.A)
	}
	return out
}

// Image copies the surface into a new image.RGBA. Pixels are stored
// premultiplied, matching image.RGBA's alpha-premultiplied model.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for i, p := range s.pix {
		img.Pix[i*4+0] = p.R
		img.Pix[i*4+1] = p.G
		img.Pix[i*4+2] = p.B
		img.Pix[i*4+3] = p.A
	}
	return img
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.Image())
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	p := s.GetPixel(Pt(x, y))
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

package gui

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogfx/g2d"
)

// SurfaceTarget is a software DrawTarget that composites resolved
// panels onto a g2d.Surface. It stands in for a GPU backend: flat
// colors become filled rectangles, bitmaps are scaled to their node's
// rectangle and blitted pixel by pixel.
type SurfaceTarget struct {
	Surface *g2d.Surface
}

// FillRect implements the DrawTarget interface.
func (t SurfaceTarget) FillRect(r Rect, c g2d.Color) {
	x0, y0, x1, y1 := pixelBounds(r)
	if x1 < x0 || y1 < y0 {
		return
	}
	t.Surface.DrawRect(g2d.Pt(x0, y0), g2d.Pt(x1, y1), c, true)
}

// DrawBitmap implements the DrawTarget interface. Bitmaps whose size
// differs from the rectangle are resampled with nearest-neighbor
// filtering, matching what a GPU quad with point sampling would show.
func (t SurfaceTarget) DrawBitmap(r Rect, bitmap image.Image) {
	x0, y0, x1, y1 := pixelBounds(r)
	w, h := x1-x0+1, y1-y0+1
	if w <= 0 || h <= 0 {
		return
	}

	b := bitmap.Bounds()
	if b.Dx() != w || b.Dy() != h {
		scaled := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), bitmap, b, xdraw.Src, nil)
		bitmap = scaled
	}

	t.Surface.DrawSprite(bitmap, g2d.Pt(x0, y0))
}

// pixelBounds converts a continuous rect to inclusive pixel corners.
// A rect covering [10,90) maps to columns 10..89.
func pixelBounds(r Rect) (x0, y0, x1, y1 int) {
	return int(r.Left), int(r.Top), int(r.Right) - 1, int(r.Bottom) - 1
}

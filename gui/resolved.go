package gui

import (
	"image"

	"github.com/gogfx/g2d"
)

// Rect is an axis-aligned rectangle in pixel coordinates.
// Clamping during resolution can invert a rectangle (Right < Left or
// Bottom < Top) when the unclamped rect falls entirely outside the
// parent on one side; consumers must treat a non-positive extent as
// empty, never as an error.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent. May be non-positive.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent. May be non-positive.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Payload is what a resolved node displays inside its rectangle:
// either a flat color or an RGBA bitmap. This pair is the entire
// contract toward the display backend.
type Payload interface {
	isPayload()
}

// ColorPayload fills the node's rectangle with a flat color.
type ColorPayload struct {
	Color g2d.Color
}

// BitmapPayload stretches a bitmap across the node's rectangle.
// A nil bitmap displays nothing.
type BitmapPayload struct {
	Bitmap image.Image
}

func (ColorPayload) isPayload()  {}
func (BitmapPayload) isPayload() {}

// ResolvedNode is the per-frame output of the Resolver: a concrete
// clamped rectangle, a display payload, and the resolved children in
// source order. Children rectangles are always contained within the
// parent's.
type ResolvedNode struct {
	Rect     Rect
	Payload  Payload
	Children []*ResolvedNode
}

// DrawTarget receives the draw calls of the display pass. A target
// needs to understand exactly two shapes: a flat-colored rectangle
// and a bitmap stretched over a rectangle, both in pixel coordinates
// within the current viewport.
//
// SurfaceTarget implements DrawTarget on top of a g2d.Surface; GPU
// backends implement it against their own quad upload path.
type DrawTarget interface {
	FillRect(r Rect, c g2d.Color)
	DrawBitmap(r Rect, bitmap image.Image)
}

// Display walks the resolved trees in pre-order, drawing each node's
// payload before recursing into its children. Children therefore
// always draw after (on top of) their parent, giving a deterministic
// back-to-front order.
func Display(nodes []*ResolvedNode, target DrawTarget) {
	for _, n := range nodes {
		n.display(target)
	}
}

func (n *ResolvedNode) display(target DrawTarget) {
	if !n.Rect.Empty() {
		switch p := n.Payload.(type) {
		case ColorPayload:
			target.FillRect(n.Rect, p.Color)
		case BitmapPayload:
			if p.Bitmap != nil {
				target.DrawBitmap(n.Rect, p.Bitmap)
			}
		}
	}

	for _, child := range n.Children {
		child.display(target)
	}
}

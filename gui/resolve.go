package gui

import (
	"image"

	"github.com/gogfx/g2d"
)

// Resolver turns a source panel tree into a resolved tree once per
// frame. The text rasterizer is injected explicitly so every consumer
// shares one deliberately-constructed instance instead of a hidden
// global.
type Resolver struct {
	text g2d.TextRasterizer
}

// NewResolver creates a Resolver that rasterizes Text content with tr.
// A nil tr resolves Text panels to empty payloads.
func NewResolver(tr g2d.TextRasterizer) *Resolver {
	return &Resolver{text: tr}
}

// Resolve walks the top-level panels against the screen dimensions
// and returns the resolved nodes of the active panels, in input order.
// Nothing is cached: every call re-resolves the full tree, including
// any text rasterization.
func (r *Resolver) Resolve(panels []Panel, screenW, screenH int) []*ResolvedNode {
	nodes := make([]*ResolvedNode, 0, len(panels))
	for i := range panels {
		if n := r.resolvePanel(&panels[i], 0, 0, float64(screenW), float64(screenH)); n != nil {
			nodes = append(nodes, n)
		}
	}
	g2d.Logger().Debug("panel tree resolved",
		"top_level", len(panels), "present", len(nodes),
		"screen_width", screenW, "screen_height", screenH)
	return nodes
}

// resolvePanel resolves one panel against its parent's anchor and
// dimensions. Inactive panels resolve to nil and stop the recursion.
func (r *Resolver) resolvePanel(p *Panel, anchorX, anchorY, parentW, parentH float64) *ResolvedNode {
	if !p.Active {
		return nil
	}

	dx, dy := p.Position.offset(parentW, parentH)
	left := anchorX + dx
	top := anchorY + dy

	dw, dh := p.Dimensions.offset(parentW, parentH)
	right := left + dw
	bottom := top + dh

	// Clamp each edge independently into the parent's rectangle.
	// This can invert the rect when the panel lies entirely outside
	// the parent on one side; downstream passes treat that as empty.
	left = clamp(left, anchorX, anchorX+parentW)
	top = clamp(top, anchorY, anchorY+parentH)
	right = clamp(right, anchorX, anchorX+parentW)
	bottom = clamp(bottom, anchorY, anchorY+parentH)

	node := &ResolvedNode{
		Rect: Rect{Left: left, Top: top, Right: right, Bottom: bottom},
	}

	switch c := p.Content.(type) {
	case Image:
		node.Payload = BitmapPayload{Bitmap: c.Bitmap}
	case Text:
		node.Payload = BitmapPayload{Bitmap: r.rasterize(c.Params, node.Rect)}
	case Panels:
		node.Payload = ColorPayload{Color: c.Background}
		for i := range c.Children {
			child := r.resolvePanel(&c.Children[i], left, top, right-left, bottom-top)
			if child != nil {
				node.Children = append(node.Children, child)
			}
		}
	case Surface2D:
		if c.Surface != nil {
			node.Payload = BitmapPayload{Bitmap: c.Surface.Image()}
		} else {
			node.Payload = BitmapPayload{}
		}
	default:
		// A panel without content still occupies its rectangle.
		node.Payload = ColorPayload{Color: g2d.Transparent}
	}

	return node
}

// rasterize renders text at the resolved rectangle's size. Degenerate
// rectangles yield a nil bitmap, which displays nothing.
func (r *Resolver) rasterize(params g2d.TextParameters, rect Rect) image.Image {
	w := int(rect.Width())
	h := int(rect.Height())
	if r.text == nil || w <= 0 || h <= 0 {
		return nil
	}

	data := r.text.Rasterize(params, w, h)
	if len(data) < w*h*4 {
		return nil
	}
	return &image.NRGBA{
		Pix:    data,
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

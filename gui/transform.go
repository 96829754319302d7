package gui

// transformKind discriminates the two Transform variants.
type transformKind uint8

const (
	transformAbsolute transformKind = iota
	transformRelative
)

// Transform is a two-variant measure used for both panel position and
// panel size: either absolute pixels or a fraction of the parent's
// resolved dimensions. Fractions outside [0,1] are legal and simply
// produce rectangles extending beyond the parent before clamping.
//
// The zero value is Abs(0, 0).
type Transform struct {
	kind transformKind
	x, y int
	fx, fy float64
}

// Abs creates an absolute Transform measured in pixels.
func Abs(x, y int) Transform {
	return Transform{kind: transformAbsolute, x: x, y: y}
}

// Rel creates a relative Transform measured as a fraction of the
// parent's resolved dimensions.
func Rel(fx, fy float64) Transform {
	return Transform{kind: transformRelative, fx: fx, fy: fy}
}

// offset resolves the transform against the parent's dimensions.
func (t Transform) offset(parentW, parentH float64) (float64, float64) {
	if t.kind == transformRelative {
		return parentW * t.fx, parentH * t.fy
	}
	return float64(t.x), float64(t.y)
}

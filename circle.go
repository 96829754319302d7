package g2d

// DrawCircle draws a circle using the midpoint circle algorithm.
// When fill is true the circle interior is filled with horizontal
// spans; otherwise only the outline is drawn.
func (s *Surface) DrawCircle(center Point, radius int, c Color, fill bool) {
	if radius < 0 {
		return
	}

	x := 0
	y := radius
	d := 5 - 4*radius
	da := 12
	db := 20 - 8*radius

	for x <= y {
		if fill {
			s.circleOctantsFilled(center, x, y, c)
		} else {
			s.circleOctants(center, x, y, c)
		}

		if d < 0 {
			d += da
			db += 8
		} else {
			y--
			d += db
			db += 16
		}
		x++
		da += 8
	}
}

// circleOctants emits the 8 symmetric points of the current arc step.
func (s *Surface) circleOctants(center Point, x, y int, c Color) {
	s.DrawPixel(Pt(center.X+x, center.Y+y), c)
	s.DrawPixel(Pt(center.X-x, center.Y+y), c)
	s.DrawPixel(Pt(center.X+x, center.Y-y), c)
	s.DrawPixel(Pt(center.X-x, center.Y-y), c)
	s.DrawPixel(Pt(center.X+y, center.Y+x), c)
	s.DrawPixel(Pt(center.X-y, center.Y+x), c)
	s.DrawPixel(Pt(center.X+y, center.Y-x), c)
	s.DrawPixel(Pt(center.X-y, center.Y-x), c)
}

// circleOctantsFilled emits 4 horizontal spans connecting the
// symmetric point pairs, covering the same arc as circleOctants.
func (s *Surface) circleOctantsFilled(center Point, x, y int, c Color) {
	s.DrawLine(Pt(center.X-x, center.Y+y), Pt(center.X+x, center.Y+y), c)
	s.DrawLine(Pt(center.X-x, center.Y-y), Pt(center.X+x, center.Y-y), c)
	s.DrawLine(Pt(center.X-y, center.Y+x), Pt(center.X+y, center.Y+x), c)
	s.DrawLine(Pt(center.X-y, center.Y-x), Pt(center.X+y, center.Y-x), c)
}

package g2d

// DrawRect draws an axis-aligned rectangle spanning the two corner
// points inclusively. When fill is true every covered pixel is drawn;
// otherwise only the four edges.
func (s *Surface) DrawRect(start, end Point, c Color, fill bool) {
	if fill {
		x0, x1 := start.X, end.X
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		y0, y1 := start.Y, end.Y
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				s.DrawPixel(Pt(x, y), c)
			}
		}
		return
	}

	s.DrawLine(Pt(start.X, start.Y), Pt(end.X, start.Y), c)
	s.DrawLine(Pt(end.X, start.Y), Pt(end.X, end.Y), c)
	s.DrawLine(Pt(end.X, end.Y), Pt(start.X, end.Y), c)
	s.DrawLine(Pt(start.X, end.Y), Pt(start.X, start.Y), c)
}

package g2d

// DrawLine draws a line from start to end using Bresenham's algorithm.
//
// Straight vertical and horizontal lines take a fast path. Diagonal
// lines are classified by slope and the endpoints are reordered so the
// primary axis always increases, which guarantees the same pixel
// coverage regardless of argument order.
func (s *Surface) DrawLine(start, end Point, c Color) {
	dx := abs(end.X - start.X)
	dy := abs(end.Y - start.Y)

	// Straight vertical line
	if dx == 0 {
		y0, y1 := start.Y, end.Y
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			s.DrawPixel(Pt(start.X, y), c)
		}
		return
	}

	// Straight horizontal line
	if dy == 0 {
		x0, x1 := start.X, end.X
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			s.DrawPixel(Pt(x, start.Y), c)
		}
		return
	}

	if dy < dx {
		if start.X > end.X {
			s.drawLineLow(end, start, c)
		} else {
			s.drawLineLow(start, end, c)
		}
	} else {
		if start.Y > end.Y {
			s.drawLineHigh(end, start, c)
		} else {
			s.drawLineHigh(start, end, c)
		}
	}
}

// drawLineLow walks x for shallow lines (|dy| < |dx|), accumulating y
// through the decision variable. Requires start.X <= end.X.
func (s *Surface) drawLineLow(start, end Point, c Color) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}

	d := 2*dy - dx
	y := start.Y

	for x := start.X; x <= end.X; x++ {
		s.DrawPixel(Pt(x, y), c)
		if d > 0 {
			y += yi
			d += 2 * (dy - dx)
		} else {
			d += 2 * dy
		}
	}
}

// drawLineHigh walks y for steep lines (|dy| >= |dx|), accumulating x
// through the decision variable. Requires start.Y <= end.Y.
func (s *Surface) drawLineHigh(start, end Point, c Color) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}

	d := 2*dx - dy
	x := start.X

	for y := start.Y; y <= end.Y; y++ {
		s.DrawPixel(Pt(x, y), c)
		if d > 0 {
			x += xi
			d += 2 * (dx - dy)
		} else {
			d += 2 * dx
		}
	}
}

package g2d

// DrawTriangle draws the triangle p0 p1 p2. Outline mode draws the
// three edges; fill mode rasterizes the interior with the standard
// flat-top/flat-bottom scanline decomposition.
func (s *Surface) DrawTriangle(p0, p1, p2 Point, c Color, fill bool) {
	if fill {
		s.fillTriangle(p0, p1, p2, c)
	} else {
		s.DrawLine(p0, p1, c)
		s.DrawLine(p1, p2, c)
		s.DrawLine(p2, p0, c)
	}
}

func (s *Surface) fillTriangle(p0, p1, p2 Point, c Color) {
	// Sort vertices by y-coordinate ascending, stable for ties.
	if p0.Y > p1.Y {
		if p1.Y > p2.Y {
			p0, p2 = p2, p0
		} else if p0.Y > p2.Y {
			p0, p1, p2 = p1, p2, p0
		} else {
			p0, p1 = p1, p0
		}
	} else if p0.Y > p2.Y {
		p0, p1, p2 = p2, p0, p1
	} else if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}

	switch {
	case p0.Y == p2.Y:
		// All three vertices on one scanline: a single span.
		lo, hi := p0.X, p0.X
		for _, x := range [...]int{p1.X, p2.X} {
			if x < lo {
				lo = x
			}
			if x > hi {
				hi = x
			}
		}
		s.DrawLine(Pt(lo, p0.Y), Pt(hi, p0.Y), c)
	case p1.Y == p2.Y:
		s.fillBottomFlat(p0, p1, p2, c)
	case p0.Y == p1.Y:
		s.fillTopFlat(p0, p1, p2, c)
	default:
		// General case: split on the long edge at the middle
		// vertex's y. The split point needs floating point; not
		// every configuration splits correctly under integer
		// division. Both halves are then guaranteed non-degenerate
		// (y0 != y1 on their non-horizontal edges).
		p3 := Pt(
			int(float64(p0.X)+
				(float64(p1.Y)-float64(p0.Y))/(float64(p2.Y)-float64(p0.Y))*
					(float64(p2.X)-float64(p0.X))),
			p1.Y,
		)
		s.fillBottomFlat(p0, p1, p3, c)
		s.fillTopFlat(p1, p3, p2, c)
	}
}

// fillBottomFlat fills a triangle whose bottom edge (p1-p2) is
// horizontal, scanning down from the apex p0. The span bounds
// accumulate the inverse slopes of the two non-horizontal edges.
func (s *Surface) fillBottomFlat(p0, p1, p2 Point, c Color) {
	invSlope1 := float64(p1.X-p0.X) / float64(p1.Y-p0.Y)
	invSlope2 := float64(p2.X-p0.X) / float64(p2.Y-p0.Y)

	x1 := float64(p0.X)
	x2 := float64(p0.X)

	for y := p0.Y; y <= p1.Y; y++ {
		s.DrawLine(Pt(int(x1), y), Pt(int(x2), y), c)
		x1 += invSlope1
		x2 += invSlope2
	}
}

// fillTopFlat fills a triangle whose top edge (p0-p1) is horizontal,
// scanning down from that edge toward the apex p2.
func (s *Surface) fillTopFlat(p0, p1, p2 Point, c Color) {
	invSlope1 := float64(p2.X-p0.X) / float64(p2.Y-p0.Y)
	invSlope2 := float64(p2.X-p1.X) / float64(p2.Y-p1.Y)

	x1 := float64(p0.X)
	x2 := float64(p1.X)

	for y := p0.Y; y <= p2.Y; y++ {
		s.DrawLine(Pt(int(x1), y), Pt(int(x2), y), c)
		x1 += invSlope1
		x2 += invSlope2
	}
}

package g2d

import "testing"

// paintedPixels draws on a fresh transparent surface and returns the
// set of coordinates that ended up non-transparent.
func paintedPixels(t *testing.T, w, h int, draw func(*Surface)) map[Point]bool {
	t.Helper()
	s := NewSurface(w, h, Transparent)
	s.SetDrawMode(DrawModeReplace)
	draw(s)

	set := make(map[Point]bool)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if s.GetPixel(Pt(x, y)) != Transparent {
				set[Pt(x, y)] = true
			}
		}
	}
	return set
}

func TestDrawLine_SinglePoint(t *testing.T) {
	set := paintedPixels(t, 10, 10, func(s *Surface) {
		s.DrawLine(Pt(4, 6), Pt(4, 6), White)
	})
	if len(set) != 1 || !set[Pt(4, 6)] {
		t.Errorf("painted set = %v, want exactly {(4,6)}", set)
	}
}

func TestDrawLine_Horizontal(t *testing.T) {
	set := paintedPixels(t, 10, 10, func(s *Surface) {
		s.DrawLine(Pt(7, 3), Pt(2, 3), White)
	})
	if len(set) != 6 {
		t.Fatalf("painted %d pixels, want 6", len(set))
	}
	for x := 2; x <= 7; x++ {
		if !set[Pt(x, 3)] {
			t.Errorf("missing pixel (%d,3)", x)
		}
	}
}

func TestDrawLine_Vertical(t *testing.T) {
	set := paintedPixels(t, 10, 10, func(s *Surface) {
		s.DrawLine(Pt(5, 8), Pt(5, 1), White)
	})
	if len(set) != 8 {
		t.Fatalf("painted %d pixels, want 8", len(set))
	}
	for y := 1; y <= 8; y++ {
		if !set[Pt(5, y)] {
			t.Errorf("missing pixel (5,%d)", y)
		}
	}
}

func TestDrawLine_EndpointOrderIndependent(t *testing.T) {
	segments := []struct{ a, b Point }{
		{Pt(0, 0), Pt(9, 9)},   // diagonal
		{Pt(1, 2), Pt(8, 5)},   // shallow
		{Pt(2, 1), Pt(5, 8)},   // steep
		{Pt(9, 0), Pt(0, 3)},   // shallow, negative slope
		{Pt(0, 9), Pt(3, 0)},   // steep, negative slope
		{Pt(0, 4), Pt(9, 4)},   // horizontal
		{Pt(4, 0), Pt(4, 9)},   // vertical
	}
	for _, seg := range segments {
		forward := paintedPixels(t, 10, 10, func(s *Surface) {
			s.DrawLine(seg.a, seg.b, White)
		})
		backward := paintedPixels(t, 10, 10, func(s *Surface) {
			s.DrawLine(seg.b, seg.a, White)
		})
		if len(forward) != len(backward) {
			t.Errorf("segment %v-%v: %d pixels forward, %d backward",
				seg.a, seg.b, len(forward), len(backward))
			continue
		}
		for p := range forward {
			if !backward[p] {
				t.Errorf("segment %v-%v: pixel %v painted forward only", seg.a, seg.b, p)
			}
		}
	}
}

func TestDrawLine_EndpointsAlwaysPainted(t *testing.T) {
	segments := []struct{ a, b Point }{
		{Pt(1, 1), Pt(8, 4)},
		{Pt(3, 8), Pt(6, 1)},
		{Pt(0, 0), Pt(9, 1)},
	}
	for _, seg := range segments {
		set := paintedPixels(t, 10, 10, func(s *Surface) {
			s.DrawLine(seg.a, seg.b, White)
		})
		if !set[seg.a] || !set[seg.b] {
			t.Errorf("segment %v-%v: endpoints not both painted", seg.a, seg.b)
		}
	}
}

func TestDrawLine_ClippedAgainstBounds(t *testing.T) {
	// A line that leaves the surface drops its out-of-bounds pixels
	// without disturbing anything else.
	set := paintedPixels(t, 5, 5, func(s *Surface) {
		s.DrawLine(Pt(2, 2), Pt(10, 2), White)
	})
	if len(set) != 3 {
		t.Errorf("painted %d pixels, want 3 in-bounds", len(set))
	}
}

package gui

import (
	"image"
	"testing"

	"github.com/gogfx/g2d"
)

func TestResolve_RelativeTransforms(t *testing.T) {
	panels := []Panel{{
		Name:       "centered",
		Active:     true,
		Position:   Rel(0.1, 0.1),
		Dimensions: Rel(0.8, 0.8),
		Content:    Panels{Background: g2d.Black},
	}}

	nodes := NewResolver(nil).Resolve(panels, 100, 100)
	if len(nodes) != 1 {
		t.Fatalf("resolved %d nodes, want 1", len(nodes))
	}
	want := Rect{Left: 10, Top: 10, Right: 90, Bottom: 90}
	if nodes[0].Rect != want {
		t.Errorf("rect = %+v, want %+v", nodes[0].Rect, want)
	}
}

func TestResolve_AbsoluteClampedToZeroWidth(t *testing.T) {
	panels := []Panel{{
		Name:       "offscreen",
		Active:     true,
		Position:   Abs(150, 0),
		Dimensions: Abs(50, 50),
		Content:    Panels{Background: g2d.Black},
	}}

	nodes := NewResolver(nil).Resolve(panels, 100, 100)
	if len(nodes) != 1 {
		t.Fatalf("resolved %d nodes, want 1", len(nodes))
	}
	want := Rect{Left: 100, Top: 0, Right: 100, Bottom: 50}
	if nodes[0].Rect != want {
		t.Errorf("rect = %+v, want %+v", nodes[0].Rect, want)
	}
	if !nodes[0].Rect.Empty() {
		t.Error("zero-width rect should report Empty")
	}
}

func TestResolve_InactivePanelContributesNothing(t *testing.T) {
	panels := []Panel{{
		Name:       "root",
		Active:     true,
		Position:   Abs(0, 0),
		Dimensions: Rel(1, 1),
		Content: Panels{
			Background: g2d.Black,
			Children: []Panel{
				{
					Name:       "hidden",
					Active:     false,
					Position:   Abs(0, 0),
					Dimensions: Rel(0.5, 0.5),
					Content: Panels{
						Background: g2d.Red,
						Children: []Panel{{
							Name:       "grandchild",
							Active:     true,
							Position:   Abs(0, 0),
							Dimensions: Rel(1, 1),
							Content:    Panels{Background: g2d.Blue},
						}},
					},
				},
				{
					Name:       "visible",
					Active:     true,
					Position:   Abs(10, 10),
					Dimensions: Abs(20, 20),
					Content:    Panels{Background: g2d.Green},
				},
			},
		},
	}}

	nodes := NewResolver(nil).Resolve(panels, 100, 100)
	if len(nodes) != 1 {
		t.Fatalf("resolved %d top-level nodes, want 1", len(nodes))
	}
	if len(nodes[0].Children) != 1 {
		t.Fatalf("root has %d children, want 1 (inactive subtree skipped)", len(nodes[0].Children))
	}
	want := Rect{Left: 10, Top: 10, Right: 30, Bottom: 30}
	if nodes[0].Children[0].Rect != want {
		t.Errorf("visible child rect = %+v, want %+v", nodes[0].Children[0].Rect, want)
	}
}

func TestResolve_ChildrenClampedIntoParent(t *testing.T) {
	panels := []Panel{{
		Name:       "parent",
		Active:     true,
		Position:   Abs(10, 10),
		Dimensions: Abs(50, 50),
		Content: Panels{
			Background: g2d.Black,
			Children: []Panel{{
				Name:       "oversized",
				Active:     true,
				Position:   Rel(-0.5, 0.5),
				Dimensions: Rel(3, 3),
				Content:    Panels{Background: g2d.Red},
			}},
		},
	}}

	nodes := NewResolver(nil).Resolve(panels, 100, 100)
	child := nodes[0].Children[0]
	// Requested (-25, +25) offset with 150x150 size inside the
	// (10,10)-(60,60) parent: every edge clamps to the parent.
	want := Rect{Left: 10, Top: 35, Right: 60, Bottom: 60}
	if child.Rect != want {
		t.Errorf("child rect = %+v, want %+v", child.Rect, want)
	}
}

func TestResolve_ChildOrderPreserved(t *testing.T) {
	children := make([]Panel, 4)
	for i := range children {
		children[i] = Panel{
			Name:       string(rune('a' + i)),
			Active:     i != 2, // "c" is inactive
			Position:   Abs(i, 0),
			Dimensions: Abs(1, 1),
			Content:    Panels{Background: g2d.White},
		}
	}
	panels := []Panel{{
		Name:       "root",
		Active:     true,
		Dimensions: Rel(1, 1),
		Content:    Panels{Background: g2d.Black, Children: children},
	}}

	nodes := NewResolver(nil).Resolve(panels, 10, 10)
	got := nodes[0].Children
	if len(got) != 3 {
		t.Fatalf("resolved %d children, want 3", len(got))
	}
	for i, wantLeft := range []float64{0, 1, 3} {
		if got[i].Rect.Left != wantLeft {
			t.Errorf("child %d Left = %v, want %v", i, got[i].Rect.Left, wantLeft)
		}
	}
}

// sizedRasterizer records the box it was asked for and returns a
// solid buffer.
type sizedRasterizer struct {
	gotW, gotH int
}

func (r *sizedRasterizer) Rasterize(p g2d.TextParameters, width, height int) []byte {
	r.gotW, r.gotH = width, height
	data := make([]byte, width*height*4)
	for i := range data {
		data[i] = 255
	}
	return data
}

func TestResolve_TextRasterizedAtResolvedSize(t *testing.T) {
	tr := &sizedRasterizer{}
	panels := []Panel{{
		Name:       "label",
		Active:     true,
		Position:   Abs(5, 5),
		Dimensions: Abs(40, 12),
		Content:    Text{Params: g2d.TextParameters{Text: "hi", Scale: 10}},
	}}

	nodes := NewResolver(tr).Resolve(panels, 100, 100)
	if tr.gotW != 40 || tr.gotH != 12 {
		t.Errorf("rasterizer asked for %dx%d, want 40x12", tr.gotW, tr.gotH)
	}
	bp, ok := nodes[0].Payload.(BitmapPayload)
	if !ok {
		t.Fatalf("payload = %T, want BitmapPayload", nodes[0].Payload)
	}
	if bp.Bitmap == nil {
		t.Fatal("text payload bitmap is nil")
	}
	if b := bp.Bitmap.Bounds(); b.Dx() != 40 || b.Dy() != 12 {
		t.Errorf("bitmap bounds = %v, want 40x12", b)
	}
}

func TestResolve_TextInDegenerateRectYieldsNilBitmap(t *testing.T) {
	tr := &sizedRasterizer{gotW: -1, gotH: -1}
	panels := []Panel{{
		Name:       "squeezed",
		Active:     true,
		Position:   Abs(200, 0), // fully right of the parent
		Dimensions: Abs(40, 12),
		Content:    Text{Params: g2d.TextParameters{Text: "hi", Scale: 10}},
	}}

	nodes := NewResolver(tr).Resolve(panels, 100, 100)
	if tr.gotW != -1 {
		t.Error("rasterizer was invoked for a degenerate rectangle")
	}
	bp := nodes[0].Payload.(BitmapPayload)
	if bp.Bitmap != nil {
		t.Error("degenerate text rect produced a bitmap")
	}
}

func TestResolve_Surface2DSnapshotsPixels(t *testing.T) {
	s := g2d.NewSurface(4, 4, g2d.Blue)
	panels := []Panel{{
		Name:       "embedded",
		Active:     true,
		Dimensions: Abs(4, 4),
		Content:    Surface2D{Surface: s},
	}}

	nodes := NewResolver(nil).Resolve(panels, 10, 10)
	bp, ok := nodes[0].Payload.(BitmapPayload)
	if !ok {
		t.Fatalf("payload = %T, want BitmapPayload", nodes[0].Payload)
	}
	img, ok := bp.Bitmap.(*image.RGBA)
	if !ok {
		t.Fatalf("bitmap = %T, want *image.RGBA", bp.Bitmap)
	}
	if img.Pix[2] != 255 || img.Pix[3] != 255 {
		t.Errorf("snapshot pixel 0 = %v, want opaque blue", img.Pix[:4])
	}
}

func TestResolve_ImagePayloadPassedThrough(t *testing.T) {
	bmp := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	panels := []Panel{{
		Name:       "icon",
		Active:     true,
		Dimensions: Abs(8, 8),
		Content:    Image{Bitmap: bmp},
	}}

	nodes := NewResolver(nil).Resolve(panels, 10, 10)
	bp := nodes[0].Payload.(BitmapPayload)
	if bp.Bitmap != image.Image(bmp) {
		t.Error("image content was not passed through unchanged")
	}
}

package gui

import (
	"image"

	"github.com/gogfx/g2d"
)

// Panel is a node of the source GUI tree. Panels are plain data:
// game logic constructs and mutates them freely between frames, and
// the Resolver reads them once per frame.
//
// An inactive panel and its entire subtree are skipped during
// resolution: no geometry, no recursion.
type Panel struct {
	// Name identifies the panel for FindByName. Names need not be
	// unique; lookups return the first match in breadth-first order.
	Name   string
	Active bool
	// Position locates the panel's top-left corner inside the parent.
	Position   Transform
	Dimensions Transform

	Content Content
}

// Content is the closed set of panel content variants. The variant set
// is known at compile time, so resolution logic lives in one
// exhaustive switch rather than behind virtual dispatch.
type Content interface {
	isContent()
}

// Image displays a bitmap stretched across the panel's rectangle.
type Image struct {
	Bitmap image.Image
}

// Text displays a string rasterized to the panel's resolved size.
type Text struct {
	Params g2d.TextParameters
}

// Panels displays a flat background color and nests child panels,
// each resolved against this panel's clamped rectangle. Children are
// owned by value; the tree is acyclic by construction.
type Panels struct {
	Background g2d.Color
	Children   []Panel
}

// Surface2D displays the current pixel content of an embedded
// drawing surface.
type Surface2D struct {
	Surface *g2d.Surface
}

func (Image) isContent()     {}
func (Text) isContent()      {}
func (Panels) isContent()    {}
func (Surface2D) isContent() {}

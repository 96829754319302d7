package text

import (
	"image"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogfx/g2d"
)

// Rasterizer renders text into RGBA byte buffers. It implements
// g2d.TextRasterizer.
//
// A Rasterizer carries an explicitly-constructed default font rather
// than hidden global state; pass the same instance to every consumer
// (surfaces, the gui resolver) that should share it.
type Rasterizer struct {
	defaultSource *FontSource
	shaper        Shaper
}

// Option configures a Rasterizer.
type Option func(*Rasterizer)

// WithShaper selects the shaper used for glyph advances.
func WithShaper(s Shaper) Option {
	return func(r *Rasterizer) {
		r.shaper = s
	}
}

// WithDefaultFont replaces the built-in default font (Go Regular).
func WithDefaultFont(src *FontSource) Option {
	return func(r *Rasterizer) {
		r.defaultSource = src
	}
}

// NewRasterizer creates a Rasterizer with the Go Regular default font
// and the BuiltinShaper.
func NewRasterizer(opts ...Option) *Rasterizer {
	r := &Rasterizer{shaper: BuiltinShaper{}}
	for _, opt := range opts {
		opt(r)
	}
	if r.defaultSource == nil {
		src, err := NewFontSource(goregular.TTF)
		if err != nil {
			// goregular ships with the module; this cannot happen
			// unless the build is corrupted.
			g2d.Logger().Warn("default font unavailable", "error", err)
		}
		r.defaultSource = src
	}
	return r
}

// placedGlyph is a rune positioned at a baseline dot.
type placedGlyph struct {
	r   rune
	dot fixed.Point26_6
}

// Rasterize renders p.Text into a width x height RGBA buffer,
// row-major, top-left origin, straight alpha. The result always has
// exactly width*height*4 bytes; every failure path yields a fully
// transparent buffer instead of an error. Non-positive boxes yield nil.
func (r *Rasterizer) Rasterize(p g2d.TextParameters, width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	buf := make([]byte, width*height*4)

	src := r.defaultSource
	if p.Font != nil {
		custom, err := NewFontSource(p.Font)
		if err != nil {
			g2d.Logger().Warn("custom font rejected", "error", err)
			return buf
		}
		src = custom
	}
	if src == nil {
		return buf
	}

	face, err := src.Face(p.Scale)
	if err != nil {
		g2d.Logger().Warn("face creation failed", "error", err, "scale", p.Scale)
		return buf
	}
	defer func() {
		_ = face.Close()
	}()

	glyphs := layoutParagraph(src, face, r.shaper, p.Scale, norm.NFC.String(p.Text), width)

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(p.Color.NRGBA()),
		Face: face,
	}
	for _, g := range glyphs {
		d.Dot = g.dot
		d.DrawString(string(g.r))
	}

	copy(buf, img.Pix)
	g2d.Logger().Debug("text rasterized",
		"glyphs", len(glyphs), "box_width", width, "box_height", height)
	return buf
}

// layoutParagraph walks the runes of s, advancing a caret and wrapping
// at the box width. '\n' forces a line break; other control runes are
// dropped. A non-whitespace rune whose advance crosses the right edge
// moves to the start of the next line.
func layoutParagraph(src *FontSource, face font.Face, shaper Shaper, sizePt float64, s string, width int) []placedGlyph {
	metrics := face.Metrics()
	vAdvance := metrics.Height
	maxX := fixed.I(width)

	runes := []rune(s)
	advances := shaper.Advances(src, face, sizePt, runes)

	caret := fixed.Point26_6{X: 0, Y: metrics.Ascent}
	out := make([]placedGlyph, 0, len(runes))

	for i, rn := range runes {
		if unicode.IsControl(rn) {
			if rn == '\n' {
				caret = fixed.Point26_6{X: 0, Y: caret.Y + vAdvance}
			}
			continue
		}

		adv := advances[i]
		dot := caret
		caret.X += adv

		if !unicode.IsSpace(rn) && caret.X > maxX {
			dot = fixed.Point26_6{X: 0, Y: dot.Y + vAdvance}
			caret = dot
			caret.X += adv
		}

		out = append(out, placedGlyph{r: rn, dot: dot})
	}

	return out
}

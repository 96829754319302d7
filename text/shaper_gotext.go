package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// GoTextShaper computes advances with go-text/typesetting's HarfBuzz
// port, picking up kerning pairs and ligature substitutions that the
// BuiltinShaper misses. Ligated runes contribute their combined
// advance on the cluster's first rune and zero on the rest, so wrap
// decisions stay aligned with the rune walk.
//
// GoTextShaper is safe for concurrent use: parsed fonts are cached
// behind a mutex and the non-reentrant HarfbuzzShaper instances are
// pooled.
type GoTextShaper struct {
	// shaperPool pools HarfbuzzShaper instances; they carry internal
	// mutable buffers and are not safe for concurrent use.
	shaperPool sync.Pool

	// mu protects fontCache.
	mu sync.RWMutex

	// fontCache maps FontSource pointers to parsed go-text fonts.
	// gtfont.Font is read-only and safe to share, unlike gtfont.Face.
	fontCache map[*FontSource]*gtfont.Font
}

// NewGoTextShaper creates a GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*gtfont.Font),
	}
}

// Advances implements the Shaper interface. On any shaping failure it
// falls back to the BuiltinShaper's per-rune advances.
func (s *GoTextShaper) Advances(src *FontSource, face xfont.Face, sizePt float64, runes []rune) []fixed.Int26_6 {
	if len(runes) == 0 {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(src)
	if err != nil {
		return BuiltinShaper{}.Advances(src, face, sizePt, runes)
	}

	// gtfont.Face is not safe for concurrent use; make a fresh one per
	// call. It is a lightweight wrapper around the shared *Font.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(runes),
		Face:      gtfont.NewFace(goTextFont),
		Size:      fixed.Int26_6(sizePt * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	// Fold per-glyph advances back onto runes via cluster indices.
	advances := make([]fixed.Int26_6, len(runes))
	for _, g := range output.Glyphs {
		i := g.TextIndex()
		if i >= 0 && i < len(advances) {
			advances[i] += g.Advance
		}
	}
	return advances
}

// getOrCreateFont returns a cached go-text font for the given source,
// or parses the source's data and caches the result.
func (s *GoTextShaper) getOrCreateFont(src *FontSource) (*gtfont.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[src]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[src]; ok {
		return f, nil
	}

	goTextFace, err := gtfont.ParseTTF(bytes.NewReader(src.data))
	if err != nil {
		return nil, err
	}

	s.fontCache[src] = goTextFace.Font
	return goTextFace.Font, nil
}

// baseDirection resolves the paragraph's base direction with the
// Unicode bidi algorithm.
func baseDirection(runes []rune) di.Direction {
	var p bidi.Paragraph
	_, _ = p.SetString(string(runes))
	if !p.IsLeftToRight() {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript picks the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

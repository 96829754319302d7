package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// FontSource represents a loaded font file. One FontSource can create
// faces at multiple sizes. Parsing happens once, at construction;
// sources are meant to be created up front and shared.
type FontSource struct {
	data   []byte
	parsed *opentype.Font
}

// NewFontSource creates a FontSource from raw TTF or OTF data.
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	return &FontSource{data: dataCopy, parsed: parsed}, nil
}

// Face creates a font.Face at the given size in points (72 DPI, so
// points equal pixels). The caller owns the face and should Close it
// when done; faces are not safe for concurrent use.
func (s *FontSource) Face(sizePt float64) (font.Face, error) {
	return opentype.NewFace(s.parsed, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

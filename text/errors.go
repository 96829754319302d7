package text

import "errors"

var (
	// ErrEmptyFontData is returned when creating a FontSource from an empty slice.
	ErrEmptyFontData = errors.New("text: empty font data")
)

// Package config loads TOML theme files for g2d applications: named
// palette colors, the surface clear color, and text defaults. A
// fsnotify-based watcher reloads the file when it changes on disk so
// themes can be tweaked while the application runs.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gogfx/g2d"
)

// ErrInvalidColor is returned when a theme color string is not a
// valid hex color.
var ErrInvalidColor = errors.New("config: invalid color")

// Color is a g2d.Color that decodes from a TOML hex string such as
// "#1e90ff" or "fff".
type Color struct {
	g2d.Color
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (c *Color) UnmarshalText(text []byte) error {
	s := string(text)
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	c.Color = g2d.Hex(hex)
	return nil
}

func isHexDigit(b byte) bool {
	return '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}

// TextConfig holds text rendering defaults.
type TextConfig struct {
	// Scale is the default text scale in points.
	Scale float64 `toml:"scale"`
	// Font is an optional path to a TTF file. Empty means the
	// built-in font.
	Font string `toml:"font"`
}

// Config is a decoded theme file.
type Config struct {
	// Clear is the surface clear color.
	Clear Color `toml:"clear"`
	// Text holds text rendering defaults.
	Text TextConfig `toml:"text"`
	// Colors is the named palette, keyed by theme color name.
	Colors map[string]Color `toml:"colors"`
}

// Default returns the configuration used when no theme file exists.
func Default() *Config {
	return &Config{
		Clear:  Color{g2d.Black},
		Text:   TextConfig{Scale: 16},
		Colors: map[string]Color{},
	}
}

// Load decodes a theme from TOML text. Fields absent from the text
// keep their defaults.
func Load(data string) (*Config, error) {
	c := Default()
	if _, err := toml.Decode(data, c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return c, nil
}

// LoadFile decodes a theme from a TOML file on disk.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Load(string(data))
}

// PaletteColor looks up a named theme color. The second return is
// false when the palette has no such name.
func (c *Config) PaletteColor(name string) (g2d.Color, bool) {
	col, ok := c.Colors[name]
	return col.Color, ok
}

// FontData reads the configured font file. It returns nil with no
// error when no font path is set.
func (c *Config) FontData() ([]byte, error) {
	if c.Text.Font == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.Text.Font)
	if err != nil {
		return nil, fmt.Errorf("config: read font %s: %w", c.Text.Font, err)
	}
	return data, nil
}

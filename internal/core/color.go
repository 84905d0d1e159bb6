package core

import "fmt"

// Color represents a foreground color for a screen cell.
// Values map to the 8 basic ANSI colors so they render on any color terminal.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor looks up a color by its lowercase name.
func ParseColor(name string) (Color, error) {
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}

// MarshalYAML encodes the color as its name.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes a color name. The signature matches yaml.v3's
// obsolete Unmarshaler so core stays free of external imports.
func (c *Color) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseColor(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Palette is an ordered list of colors that elements cycle through.
type Palette []Color

// DefaultPalette is the 7-color cycle used for snake segments and the cookie.
var DefaultPalette = Palette{
	ColorRed,
	ColorYellow,
	ColorGreen,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorWhite,
}

// At returns the color at index i modulo the palette length.
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		return ColorDefault
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

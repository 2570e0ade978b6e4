package units

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorToHex renders an 8-bit RGB triple as a lowercase "#rrggbb" string.
func ColorToHex(r, g, b uint8) string {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}

	return c.Hex()
}

// HexToColor parses a "#rrggbb" (or short "#rgb") string into an 8-bit RGB
// triple.
func HexToColor(s string) (r, g, b uint8, err error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to decode hex color: %w", err)
	}

	r, g, b = c.RGB255()
	return r, g, b, nil
}

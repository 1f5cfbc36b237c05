package skin

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor parses an SVG color name ("steelblue"), "transparent", or a
// hex color in one of the forms #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}
	if s[0] != '#' {
		low := strings.ToLower(s)
		if low == "transparent" {
			return color.NRGBA{}, nil
		}
		c, ok := colornames.Map[low]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color name %q", s)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	alpha := uint8(0xff)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q", s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// formatColor returns the SVG name of c when it has one, or its hex form.
func formatColor(c color.NRGBA) string {
	if c == (color.NRGBA{}) {
		return "transparent"
	}
	if c.A == 0xff {
		if name, ok := colorName(c); ok {
			return name
		}
		return colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}.Hex()
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// colorName finds the first SVG name, in alphabetical order, for c.
func colorName(c color.NRGBA) (string, bool) {
	for _, name := range colornames.Names {
		n := colornames.Map[name]
		if n.R == c.R && n.G == c.G && n.B == c.B && n.A == c.A {
			return name, true
		}
	}
	return "", false
}

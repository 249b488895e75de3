package graphics

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/go-playground/colors"
	"golang.org/x/image/colornames"
)

// ParseColor accepts a CSS/SVG color name ("green", "purple"), a hex string
// ("#0a0", "#00aa00") or an rgb()/rgba() expression.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return nil, fmt.Errorf("empty color")
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}

	parsed, err := colors.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("unknown color %q: %w", s, err)
	}
	rgba := parsed.ToRGBA()
	return color.NRGBA{
		R: rgba.R,
		G: rgba.G,
		B: rgba.B,
		A: uint8(math.Round(rgba.A * 0xff)),
	}, nil
}

package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrNotFound reports a color spec that names no known color.
var ErrNotFound = errors.New("color not found")

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// RGBA implements color.Color (alpha-premultiplied, 16 bits per channel).
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// FromStd converts any color.Color to a Color.
func FromStd(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// Parse resolves a color spec: either a "#"-prefixed hex value
// (#RGB, #RGBA, #RRGGBB, #RRGGBBAA) or a named color looked up
// case-insensitively against the static colornames table.
func Parse(spec string) (Color, error) {
	if strings.HasPrefix(spec, "#") {
		return parseHex(spec)
	}
	if c, ok := colornames.Map[strings.ToLower(spec)]; ok {
		return Color{c.R, c.G, c.B, c.A}, nil
	}
	return Color{}, fmt.Errorf("%q: %w", spec, ErrNotFound)
}

func parseHex(spec string) (Color, error) {
	hex := spec[1:]
	c := Color{A: 255}

	switch len(hex) {
	case 3, 4: // RGB / RGBA, one nibble per channel
		v, err := nibbles(hex)
		if err != nil {
			return Color{}, fmt.Errorf("%q: %w", spec, ErrNotFound)
		}
		c.R, c.G, c.B = v[0]*17, v[1]*17, v[2]*17
		if len(hex) == 4 {
			c.A = v[3] * 17
		}
	case 6, 8: // RRGGBB / RRGGBBAA
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("%q: %w", spec, ErrNotFound)
		}
		if len(hex) == 8 {
			c.A = uint8(v)
			v >>= 8
		}
		c.R, c.G, c.B = uint8(v>>16), uint8(v>>8), uint8(v)
	default:
		return Color{}, fmt.Errorf("%q: %w", spec, ErrNotFound)
	}
	return c, nil
}

func nibbles(hex string) ([]uint8, error) {
	out := make([]uint8, len(hex))
	for i := 0; i < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
		if err != nil {
			return nil, err
		}
		out[i] = uint8(v)
	}
	return out, nil
}

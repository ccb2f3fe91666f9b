// Package color provides the RGBA color value used by every palette token.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGB color with float components (0.0 to 1.0) and an
// opacity multiplier A.
type Color struct {
	R, G, B, A float64
}

// Basic colors.
var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
)

// RGB creates an opaque color from unit-interval components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGB8 creates an opaque color from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: 1,
	}
}

// Hex parses a "#rrggbb" or "#rgb" literal into an opaque color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// WithOpacity returns a copy of the color with a different opacity.
func (c Color) WithOpacity(a float64) Color {
	return Color{c.R, c.G, c.B, a}
}

// Hex formats the RGB part as "#rrggbb". Opacity is not encoded.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// String implements fmt.Stringer. Translucent colors carry their exact
// opacity after an "@", e.g. "#ffffff@0.085".
func (c Color) String() string {
	if c.A == 1 {
		return c.Hex()
	}
	return c.Hex() + "@" + strconv.FormatFloat(c.A, 'g', -1, 64)
}

// MarshalText implements encoding.TextMarshaler using the String form. RGB
// is quantized to 8 bits per channel; opacity is kept exactly.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses the String form: "#rrggbb" or "#rrggbb@opacity".
func (c *Color) UnmarshalText(text []byte) error {
	hex, alpha, found := strings.Cut(string(text), "@")
	parsed, err := Hex(hex)
	if err != nil {
		return err
	}
	if found {
		a, err := strconv.ParseFloat(alpha, 64)
		if err != nil || a < 0 || a > 1 {
			return fmt.Errorf("parse color %q: bad opacity", string(text))
		}
		parsed.A = a
	}
	*c = parsed
	return nil
}

// Valid reports whether every component lies in [0, 1].
func (c Color) Valid() bool {
	return c.colorful().IsValid() && c.A >= 0 && c.A <= 1
}

// Premultiplied returns the RGB components scaled by opacity.
func (c Color) Premultiplied() (r, g, b float64) {
	return c.R * c.A, c.G * c.A, c.B * c.A
}

// Lerp linearly interpolates each component between a and b. t is clamped to
// [0, 1]; t == 0 returns a and t == 1 returns b unchanged.
func Lerp(a, b Color, t float64) Color {
	t = Clamp01(t)
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	rgb := a.colorful().BlendRgb(b.colorful(), t)
	return Color{
		R: rgb.R,
		G: rgb.G,
		B: rgb.B,
		A: a.A + (b.A-a.A)*t,
	}
}

// Clamp01 limits v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

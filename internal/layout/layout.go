// Package layout holds spacing, corner radius and component size tokens, in
// points.
package layout

import "math"

// Spacing scale.
const (
	SpaceXXS = 4.0
	SpaceXS  = 6.0
	SpaceSM  = 8.0
	SpaceMD  = 12.0
	SpaceLG  = 20.0
	SpaceXL  = 24.0
	Space2XL = 28.0
	Space3XL = 32.0
	Space4XL = 36.0
	Space5XL = 48.0
	Space6XL = 60.0
	Space7XL = 72.0
	Space8XL = 80.0
)

// Corner radii. Circles are clipped by the renderer rather than given a radius.
const (
	RadiusSM = 8.0
	RadiusMD = 16.0
	RadiusLG = 24.0
)

// RadiusPill rounds the short side fully, whatever the element's size.
var RadiusPill = math.Inf(1)

// Component sizes.
const (
	SailButton     = 120.0
	ProgressRing   = 200.0
	ProgressStroke = 2.5
	CelestialSun   = 44.0
	CelestialMoon  = 28.0
	BoatWidth      = 64.0
	BoatHeight     = 80.0
)

// Token is a named dimension.
type Token struct {
	Name  string
	Value float64
}

// Spacing returns the spacing scale from smallest to largest.
func Spacing() []Token {
	return []Token{
		{"xxs", SpaceXXS},
		{"xs", SpaceXS},
		{"sm", SpaceSM},
		{"md", SpaceMD},
		{"lg", SpaceLG},
		{"xl", SpaceXL},
		{"2xl", Space2XL},
		{"3xl", Space3XL},
		{"4xl", Space4XL},
		{"5xl", Space5XL},
		{"6xl", Space6XL},
		{"7xl", Space7XL},
		{"8xl", Space8XL},
	}
}

// Radii returns the corner radii, pill last.
func Radii() []Token {
	return []Token{
		{"sm", RadiusSM},
		{"md", RadiusMD},
		{"lg", RadiusLG},
		{"pill", RadiusPill},
	}
}

// Sizes returns the component sizes.
func Sizes() []Token {
	return []Token{
		{"sail_button", SailButton},
		{"progress_ring", ProgressRing},
		{"progress_stroke", ProgressStroke},
		{"celestial_sun", CelestialSun},
		{"celestial_moon", CelestialMoon},
		{"boat_width", BoatWidth},
		{"boat_height", BoatHeight},
	}
}

// Radius resolves a corner radius for an element of the given size. The pill
// radius becomes half the shorter side; finite radii are capped the same way.
func Radius(r, width, height float64) float64 {
	half := math.Min(width, height) / 2
	if half < 0 {
		return 0
	}
	return math.Min(r, half)
}

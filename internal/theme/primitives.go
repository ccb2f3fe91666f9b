package theme

import "github.com/Faultbox/sail/pkg/color"

// Scale is a ten-step color ramp, lightest (50) to darkest (900).
type Scale struct {
	S50, S100, S200, S300, S400, S500, S600, S700, S800, S900 color.Color
}

// Color primitives. The scene palettes draw most of their slots from these
// ramps.
var (
	Ocean = Scale{
		S50:  color.RGB(0.922, 0.961, 0.984),
		S100: color.RGB(0.682, 0.839, 0.945),
		S200: color.RGB(0.537, 0.812, 0.941),
		S300: color.RGB(0.365, 0.678, 0.886),
		S400: color.RGB(0.180, 0.525, 0.757),
		S500: color.RGB(0.106, 0.310, 0.447),
		S600: color.RGB(0.082, 0.263, 0.376),
		S700: color.RGB(0.055, 0.184, 0.267),
		S800: color.RGB(0.039, 0.122, 0.180),
		S900: color.RGB(0.020, 0.059, 0.090),
	}

	Sunset = Scale{
		S50:  color.RGB(1.000, 0.961, 0.902),
		S100: color.RGB(1.000, 0.918, 0.655),
		S200: color.RGB(1.000, 0.745, 0.463),
		S300: color.RGB(1.000, 0.624, 0.263),
		S400: color.RGB(1.000, 0.420, 0.420),
		S500: color.RGB(0.933, 0.353, 0.141),
		S600: color.RGB(0.882, 0.439, 0.333),
		S700: color.RGB(0.753, 0.224, 0.169),
		S800: color.RGB(0.545, 0.102, 0.102),
		S900: color.RGB(0.361, 0.063, 0.063),
	}

	Twilight = Scale{
		S50:  color.RGB(0.941, 0.902, 1.000),
		S100: color.RGB(0.800, 0.839, 0.965),
		S200: color.RGB(0.788, 0.839, 1.000),
		S300: color.RGB(0.651, 0.757, 0.933),
		S400: color.RGB(0.533, 0.573, 0.690),
		S500: color.RGB(0.400, 0.494, 0.918),
		S600: color.RGB(0.424, 0.361, 0.906),
		S700: color.RGB(0.290, 0.247, 0.420),
		S800: color.RGB(0.204, 0.122, 0.592),
		S900: color.RGB(0.102, 0.102, 0.306),
	}

	DawnScale = Scale{
		S50:  color.RGB(1.000, 0.961, 0.976),
		S100: color.RGB(0.984, 0.761, 0.922),
		S200: color.RGB(0.973, 0.647, 0.824),
		S300: color.RGB(0.910, 0.627, 0.749),
		S400: color.RGB(0.765, 0.812, 0.886),
		S500: color.RGB(0.651, 0.757, 0.933),
		S600: color.RGB(0.482, 0.557, 0.784),
		S700: color.RGB(0.361, 0.290, 0.447),
		S800: color.RGB(0.227, 0.110, 0.443),
		S900: color.RGB(0.118, 0.039, 0.235),
	}

	NightScale = Scale{
		S50:  color.RGB(0.910, 0.925, 0.957),
		S100: color.RGB(0.788, 0.839, 1.000),
		S200: color.RGB(0.533, 0.573, 0.690),
		S300: color.RGB(0.290, 0.322, 0.502),
		S400: color.RGB(0.176, 0.208, 0.380),
		S500: color.RGB(0.078, 0.118, 0.380),
		S600: color.RGB(0.047, 0.078, 0.271),
		S700: color.RGB(0.039, 0.039, 0.180),
		S800: color.RGB(0.020, 0.020, 0.082),
		S900: color.RGB(0.008, 0.008, 0.031),
	}

	White = color.White
	Black = color.Black
)

// Shades returns the scale as an ordered slice, lightest first.
func (s Scale) Shades() []color.Color {
	return []color.Color{s.S50, s.S100, s.S200, s.S300, s.S400, s.S500, s.S600, s.S700, s.S800, s.S900}
}

// ShadeNames are the token names of Scale.Shades, in the same order.
var ShadeNames = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// Primitives returns every color scale keyed by its token group name.
func Primitives() map[string]Scale {
	return map[string]Scale{
		"ocean":    Ocean,
		"sunset":   Sunset,
		"twilight": Twilight,
		"dawn":     DawnScale,
		"night":    NightScale,
	}
}

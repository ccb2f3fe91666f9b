package theme

import "github.com/Faultbox/sail/pkg/color"

// palettes is indexed by Scene.idx. Slots that sit on a primitive ramp
// reference it; the rest are one-off accents.
var palettes = [sceneCount]Palette{
	{ // dawn
		SkyTop:             DawnScale.S100,
		SkyMid:             DawnScale.S500,
		SkyBottom:          DawnScale.S400,
		WaterSurface:       Twilight.S500,
		WaterMid:           DawnScale.S700,
		WaterDeep:          DawnScale.S800,
		CelestialBody:      Sunset.S100,
		CelestialGlow:      color.RGB(1.000, 0.878, 0.400).WithOpacity(0.25),
		Celestial:          Sun,
		TextPrimary:        Twilight.S700,
		TextSecondary:      Twilight.S700.WithOpacity(0.5),
		UIRing:             color.RGB(1.000, 0.878, 0.400).WithOpacity(0.8),
		UIRingBackground:   White.WithOpacity(0.15),
		UIButtonBackground: White.WithOpacity(0.2),
		UIButtonActive:     color.RGB(1.000, 0.878, 0.400).WithOpacity(0.4),
		BoatHull:           DawnScale.S700,
		BoatSail:           Sunset.S50,
	},
	{ // day
		SkyTop:             Ocean.S200,
		SkyMid:             Ocean.S300,
		SkyBottom:          Ocean.S100,
		WaterSurface:       Ocean.S400,
		WaterMid:           Ocean.S500,
		WaterDeep:          Ocean.S600,
		CelestialBody:      Sunset.S100,
		CelestialGlow:      color.RGB(1.000, 0.945, 0.463).WithOpacity(0.2),
		Celestial:          Sun,
		TextPrimary:        Ocean.S700,
		TextSecondary:      color.RGB(0.102, 0.227, 0.290).WithOpacity(0.45),
		UIRing:             White.WithOpacity(0.9),
		UIRingBackground:   White.WithOpacity(0.15),
		UIButtonBackground: White.WithOpacity(0.2),
		UIButtonActive:     White.WithOpacity(0.4),
		BoatHull:           color.RGB(0.173, 0.243, 0.314),
		BoatSail:           White,
	},
	{ // dusk
		SkyTop:             Sunset.S400,
		SkyMid:             Sunset.S500,
		SkyBottom:          Sunset.S600,
		WaterSurface:       Twilight.S600,
		WaterMid:           Twilight.S800,
		WaterDeep:          DawnScale.S900,
		CelestialBody:      Sunset.S200,
		CelestialGlow:      Sunset.S200.WithOpacity(0.3),
		Celestial:          Sun,
		TextPrimary:        color.RGB(0.973, 0.910, 0.816),
		TextSecondary:      color.RGB(0.973, 0.910, 0.816).WithOpacity(0.5),
		UIRing:             Sunset.S200.WithOpacity(0.85),
		UIRingBackground:   White.WithOpacity(0.1),
		UIButtonBackground: White.WithOpacity(0.12),
		UIButtonActive:     Sunset.S200.WithOpacity(0.35),
		BoatHull:           color.RGB(0.176, 0.106, 0.306),
		BoatSail:           Sunset.S100,
	},
	{ // night
		SkyTop:             NightScale.S600,
		SkyMid:             NightScale.S500,
		SkyBottom:          NightScale.S900,
		WaterSurface:       NightScale.S900,
		WaterMid:           NightScale.S700,
		WaterDeep:          NightScale.S800,
		CelestialBody:      NightScale.S100,
		CelestialGlow:      NightScale.S100.WithOpacity(0.08),
		Celestial:          Moon,
		TextPrimary:        NightScale.S100,
		TextSecondary:      NightScale.S100.WithOpacity(0.35),
		UIRing:             NightScale.S100.WithOpacity(0.7),
		UIRingBackground:   White.WithOpacity(0.06),
		UIButtonBackground: White.WithOpacity(0.06),
		UIButtonActive:     NightScale.S100.WithOpacity(0.25),
		BoatHull:           NightScale.S200,
		BoatSail:           NightScale.S100,
	},
}

// PaletteFor returns the stored palette for a scene.
func PaletteFor(s Scene) Palette {
	return palettes[s.idx]
}

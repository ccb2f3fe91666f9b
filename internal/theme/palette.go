package theme

import (
	"fmt"

	"github.com/Faultbox/sail/pkg/color"
)

// Palette is the complete set of semantic colors for one scene.
type Palette struct {
	SkyTop    color.Color
	SkyMid    color.Color
	SkyBottom color.Color

	WaterSurface color.Color
	WaterMid     color.Color
	WaterDeep    color.Color

	CelestialBody color.Color
	CelestialGlow color.Color
	Celestial     Celestial

	TextPrimary   color.Color
	TextSecondary color.Color

	UIRing             color.Color
	UIRingBackground   color.Color
	UIButtonBackground color.Color
	UIButtonActive     color.Color

	BoatHull color.Color
	BoatSail color.Color
}

// Slot names one color field of a Palette.
type Slot int

// Palette slots in declaration order.
const (
	SlotSkyTop Slot = iota
	SlotSkyMid
	SlotSkyBottom
	SlotWaterSurface
	SlotWaterMid
	SlotWaterDeep
	SlotCelestialBody
	SlotCelestialGlow
	SlotTextPrimary
	SlotTextSecondary
	SlotUIRing
	SlotUIRingBackground
	SlotUIButtonBackground
	SlotUIButtonActive
	SlotBoatHull
	SlotBoatSail

	slotCount
)

var slotNames = [slotCount]string{
	"sky_top", "sky_mid", "sky_bottom",
	"water_surface", "water_mid", "water_deep",
	"celestial_body", "celestial_glow",
	"text_primary", "text_secondary",
	"ui_ring", "ui_ring_background", "ui_button_background", "ui_button_active",
	"boat_hull", "boat_sail",
}

// Slots returns every color slot in declaration order.
func Slots() []Slot {
	out := make([]Slot, slotCount)
	for i := range out {
		out[i] = Slot(i)
	}
	return out
}

// String returns the token name of the slot.
func (s Slot) String() string {
	if s < 0 || s >= slotCount {
		return fmt.Sprintf("slot(%d)", int(s))
	}
	return slotNames[s]
}

// Color returns the color stored in the given slot. Unknown slots return
// the zero (transparent) color.
func (p Palette) Color(s Slot) color.Color {
	if s < 0 || s >= slotCount {
		return color.Transparent
	}
	return *p.slots()[s]
}

// Validate reports the first slot whose color lies outside the unit interval.
func (p Palette) Validate() error {
	for i, c := range p.slots() {
		if !c.Valid() {
			return fmt.Errorf("slot %s: color %v out of range", Slot(i), *c)
		}
	}
	return nil
}

// slots returns pointers to every color field, indexed by Slot.
func (p *Palette) slots() [slotCount]*color.Color {
	return [slotCount]*color.Color{
		&p.SkyTop, &p.SkyMid, &p.SkyBottom,
		&p.WaterSurface, &p.WaterMid, &p.WaterDeep,
		&p.CelestialBody, &p.CelestialGlow,
		&p.TextPrimary, &p.TextSecondary,
		&p.UIRing, &p.UIRingBackground, &p.UIButtonBackground, &p.UIButtonActive,
		&p.BoatHull, &p.BoatSail,
	}
}

// Interpolate blends every slot of from toward to by factor t. Blend
// factors outside [0, 1] are clamped. t == 0 yields from and t == 1 yields to
// exactly. The celestial body does not blend: it switches to to's body once
// t reaches 0.5.
func Interpolate(from, to Palette, t float64) Palette {
	t = color.Clamp01(t)
	switch t {
	case 0:
		return from
	case 1:
		return to
	}

	out := from
	dst := out.slots()
	src := to.slots()
	for i := range dst {
		*dst[i] = color.Lerp(*dst[i], *src[i], t)
	}
	if t >= 0.5 {
		out.Celestial = to.Celestial
	}
	return out
}

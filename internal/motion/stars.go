package motion

import (
	"math"
	"time"

	"github.com/Faultbox/sail/pkg/color"
	smath "github.com/Faultbox/sail/pkg/math"
)

// StarTwinkle bounds the per-star twinkle animation. The renderer picks each
// star's period and phase; both must fall inside these bounds.
type StarTwinkle struct {
	MinDuration time.Duration `yaml:"min_duration"`
	MaxDuration time.Duration `yaml:"max_duration"`
	MinOpacity  float64       `yaml:"min_opacity"`
	MaxOpacity  float64       `yaml:"max_opacity"`
}

// Stars is the generated twinkle bounds.
var Stars = StarTwinkle{
	MinDuration: 2 * time.Second,
	MaxDuration: 4 * time.Second,
	MinOpacity:  0.3,
	MaxOpacity:  1.0,
}

// Duration maps u in [0, 1] onto the duration bounds. u is clamped, so any
// uniform random source yields a valid duration.
func (s StarTwinkle) Duration(u float64) time.Duration {
	u = color.Clamp01(u)
	span := float64(s.MaxDuration - s.MinDuration)
	return s.MinDuration + time.Duration(span*u)
}

// OpacityAt returns a star's opacity after t seconds for a twinkle period
// and a phase offset in cycles. The result stays within the opacity bounds.
func (s StarTwinkle) OpacityAt(t float64, period time.Duration, phase float64) float64 {
	if period <= 0 {
		return s.MaxOpacity
	}
	cycle := math.Mod(t/period.Seconds()+phase, 1)
	k := (1 + math.Cos(2*math.Pi*cycle)) / 2
	v := s.MinOpacity + (s.MaxOpacity-s.MinOpacity)*k
	return math.Max(s.MinOpacity, math.Min(s.MaxOpacity, v))
}

// CelestialPosition returns where a sun or moon sits on its arc when it is
// progress of the way through its visible span. X runs 0 (rising edge) to 1
// (setting edge); Y is the height above the horizon, peaking at 1 midway.
func CelestialPosition(progress float64) smath.Vec2 {
	angle := math.Pi * color.Clamp01(progress)
	return smath.Vec2{
		X: float32((1 - math.Cos(angle)) / 2),
		Y: float32(math.Sin(angle)),
	}
}

package motion

import (
	"math"
	"time"
)

// BoatMotion describes the boat's bobbing and rocking.
type BoatMotion struct {
	BobDuration      time.Duration `yaml:"bob_duration"`      // time to travel from rest to full bob
	BobDistance      float64       `yaml:"bob_distance"`      // points; negative moves the boat up
	RotationDegree   float64       `yaml:"rotation_degree"`   // peak tilt either side of level
	RotationDuration time.Duration `yaml:"rotation_duration"` // time to swing from level to peak and back
}

// Boat is the generated boat motion.
var Boat = BoatMotion{
	BobDuration:      3500 * time.Millisecond,
	BobDistance:      -8,
	RotationDegree:   2.5,
	RotationDuration: 4 * time.Second,
}

// BobPeriod is the time for one full bob cycle (out and back).
func (b BoatMotion) BobPeriod() time.Duration {
	return 2 * b.BobDuration
}

// RotationPeriod is the time for one full rocking cycle.
func (b BoatMotion) RotationPeriod() time.Duration {
	return 2 * b.RotationDuration
}

// BobAt returns the vertical displacement after t seconds. The boat starts
// at rest, eases out to BobDistance at BobDuration and eases back, so the
// value always lies between 0 and BobDistance.
func (b BoatMotion) BobAt(t float64) float64 {
	d := b.BobDuration.Seconds()
	if d <= 0 {
		return 0
	}
	phase := math.Mod(t/(2*d), 1)
	return b.BobDistance * (1 - math.Cos(2*math.Pi*phase)) / 2
}

// RotationAt returns the tilt in degrees after t seconds, within
// ±RotationDegree.
func (b BoatMotion) RotationAt(t float64) float64 {
	d := b.RotationDuration.Seconds()
	if d <= 0 {
		return 0
	}
	phase := math.Mod(t/(2*d), 1)
	return b.RotationDegree * math.Sin(2*math.Pi*phase)
}

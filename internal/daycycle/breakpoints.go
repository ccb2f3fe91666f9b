// Package daycycle maps a continuous time of day onto the scene cycle.
package daycycle

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Faultbox/sail/internal/theme"
)

var (
	// ErrOutOfRangeTime is returned when a day fraction lies outside [0, 1).
	ErrOutOfRangeTime = errors.New("time of day out of range")

	// ErrInvalidBreakpoints is returned when breakpoints do not partition the day.
	ErrInvalidBreakpoints = errors.New("invalid scene breakpoints")
)

// cycleEpsilon absorbs rounding when summing the four window lengths.
const cycleEpsilon = 1e-9

// Breakpoints are the day fractions at which each scene window starts.
// 0 is local midnight. Read cyclically, the starts must run
// dawn → day → dusk → night and wrap around exactly once.
type Breakpoints struct {
	DawnStart  float64 `yaml:"dawn_start" toml:"dawn_start"`
	DayStart   float64 `yaml:"day_start" toml:"day_start"`
	DuskStart  float64 `yaml:"dusk_start" toml:"dusk_start"`
	NightStart float64 `yaml:"night_start" toml:"night_start"`
}

// ExampleBreakpoints is an illustrative partition of the day. The token data
// does not define one; integrators are expected to supply their own.
var ExampleBreakpoints = Breakpoints{
	DawnStart:  0.20,
	DayStart:   0.35,
	DuskStart:  0.75,
	NightStart: 0.90,
}

// Start returns the start fraction of the given scene's window.
func (b Breakpoints) Start(s theme.Scene) float64 {
	return b.starts()[s.Index()]
}

func (b Breakpoints) starts() [4]float64 {
	return [4]float64{b.DawnStart, b.DayStart, b.DuskStart, b.NightStart}
}

// Validate checks that every start lies in [0, 1) and that the windows
// cover the day exactly once in cycle order.
func (b Breakpoints) Validate() error {
	starts := b.starts()
	scenes := theme.Scenes()

	for i, s := range starts {
		if math.IsNaN(s) || s < 0 || s >= 1 {
			return fmt.Errorf("%w: %s start %v not in [0, 1)", ErrInvalidBreakpoints, scenes[i], s)
		}
	}

	total := 0.0
	for i := range starts {
		gap := cyclicGap(starts[i], starts[(i+1)%len(starts)])
		if gap <= 0 {
			return fmt.Errorf("%w: %s window is empty", ErrInvalidBreakpoints, scenes[i])
		}
		total += gap
	}
	if math.Abs(total-1) > cycleEpsilon {
		return fmt.Errorf("%w: scenes out of order (windows span %.3g days)", ErrInvalidBreakpoints, total)
	}
	return nil
}

// cyclicGap returns the forward distance from a to b on the unit circle.
func cyclicGap(a, b float64) float64 {
	d := b - a
	if d < 0 {
		d++
	}
	return d
}

// FractionOf returns the fraction of the local day elapsed at t, in [0, 1).
func FractionOf(t time.Time) float64 {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	f := float64(t.Sub(midnight)) / float64(24*time.Hour)
	// DST days are not 24h long.
	if f >= 1 {
		f = math.Nextafter(1, 0)
	}
	if f < 0 {
		f = 0
	}
	return f
}

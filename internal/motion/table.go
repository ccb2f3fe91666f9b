package motion

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidOverride is returned when an override would produce an unusable
// parameter table.
var ErrInvalidOverride = errors.New("invalid animation override")

// Table is the complete set of animation parameters handed to the renderer.
type Table struct {
	Waves [LayerCount]WaveLayer `yaml:"waves"`
	Boat  BoatMotion            `yaml:"boat"`
	Stars StarTwinkle           `yaml:"stars"`
}

// Default returns the generated animation table.
func Default() Table {
	return Table{
		Waves: Waves(),
		Boat:  Boat,
		Stars: Stars,
	}
}

// WaveOverride replaces individual fields of one wave layer. Nil fields keep
// the generated value.
type WaveOverride struct {
	Amplitude *float64 `yaml:"amplitude,omitempty" toml:"amplitude"`
	Frequency *float64 `yaml:"frequency,omitempty" toml:"frequency"`
	Speed     *float64 `yaml:"speed,omitempty" toml:"speed"`
}

// Overrides adjusts the generated table. Waves are matched by index, back
// to front.
type Overrides struct {
	Waves          []WaveOverride `yaml:"waves,omitempty" toml:"waves"`
	BobDistance    *float64       `yaml:"bob_distance,omitempty" toml:"bob_distance"`
	RotationDegree *float64       `yaml:"rotation_degree,omitempty" toml:"rotation_degree"`
}

// IsZero reports whether the overrides change nothing.
func (o Overrides) IsZero() bool {
	if o.BobDistance != nil || o.RotationDegree != nil {
		return false
	}
	for _, w := range o.Waves {
		if w.Amplitude != nil || w.Frequency != nil || w.Speed != nil {
			return false
		}
	}
	return true
}

// Validate checks the overrides without applying them.
func (o Overrides) Validate() error {
	_, err := Default().With(o)
	return err
}

// With returns a copy of the table with the overrides applied.
func (t Table) With(o Overrides) (Table, error) {
	if len(o.Waves) > LayerCount {
		return Table{}, fmt.Errorf("%w: %d wave layers, want at most %d", ErrInvalidOverride, len(o.Waves), LayerCount)
	}

	out := t
	for i, w := range o.Waves {
		layer := &out.Waves[i]
		if w.Amplitude != nil {
			if !finite(*w.Amplitude) {
				return Table{}, fmt.Errorf("%w: wave %d amplitude %v", ErrInvalidOverride, i, *w.Amplitude)
			}
			layer.Amplitude = *w.Amplitude
		}
		if w.Frequency != nil {
			if !finite(*w.Frequency) {
				return Table{}, fmt.Errorf("%w: wave %d frequency %v", ErrInvalidOverride, i, *w.Frequency)
			}
			layer.Frequency = *w.Frequency
		}
		if w.Speed != nil {
			if !finite(*w.Speed) || *w.Speed <= 0 {
				return Table{}, fmt.Errorf("%w: wave %d speed %v must be positive", ErrInvalidOverride, i, *w.Speed)
			}
			layer.Speed = *w.Speed
		}
	}

	if o.BobDistance != nil {
		if !finite(*o.BobDistance) {
			return Table{}, fmt.Errorf("%w: bob distance %v", ErrInvalidOverride, *o.BobDistance)
		}
		out.Boat.BobDistance = *o.BobDistance
	}
	if o.RotationDegree != nil {
		if !finite(*o.RotationDegree) {
			return Table{}, fmt.Errorf("%w: rotation degree %v", ErrInvalidOverride, *o.RotationDegree)
		}
		out.Boat.RotationDegree = *o.RotationDegree
	}
	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Package theme holds the time-of-day palettes and the color primitives they
// are built from.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScene is returned when a scene name does not match any scene.
var ErrUnknownScene = errors.New("unknown scene")

// sceneCount is the number of scenes in the day cycle.
const sceneCount = 4

// Scene identifies one of the four time-of-day scenes. The set is closed:
// values can only be obtained from the exported variables or ParseScene, and
// the zero value is Dawn.
type Scene struct {
	idx uint8
}

// Scenes in cycle order.
var (
	Dawn  = Scene{0}
	Day   = Scene{1}
	Dusk  = Scene{2}
	Night = Scene{3}
)

var sceneNames = [sceneCount]string{"dawn", "day", "dusk", "night"}

// Scenes returns all scenes in cycle order, starting at dawn.
func Scenes() []Scene {
	return []Scene{Dawn, Day, Dusk, Night}
}

// ParseScene returns the scene with the given name (case-insensitive).
func ParseScene(name string) (Scene, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range sceneNames {
		if s == n {
			return Scene{uint8(i)}, nil
		}
	}
	return Scene{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// Index returns the position of the scene in the cycle (dawn = 0).
func (s Scene) Index() int {
	return int(s.idx)
}

// Next returns the scene that follows s (night wraps to dawn).
func (s Scene) Next() Scene {
	return Scene{(s.idx + 1) % sceneCount}
}

// Prev returns the scene that precedes s (dawn wraps to night).
func (s Scene) Prev() Scene {
	return Scene{(s.idx + sceneCount - 1) % sceneCount}
}

// String implements fmt.Stringer.
func (s Scene) String() string {
	return sceneNames[s.idx]
}

// MarshalText implements encoding.TextMarshaler.
func (s Scene) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scene) UnmarshalText(text []byte) error {
	parsed, err := ParseScene(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Celestial is the body drawn in the sky for a palette.
type Celestial uint8

// Celestial bodies.
const (
	Sun Celestial = iota
	Moon
)

// String implements fmt.Stringer.
func (c Celestial) String() string {
	if c == Moon {
		return "moon"
	}
	return "sun"
}

// MarshalText implements encoding.TextMarshaler.
func (c Celestial) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

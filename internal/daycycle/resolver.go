package daycycle

import (
	"fmt"
	"math"

	"github.com/Faultbox/sail/internal/theme"
)

// Resolution is the palette state for one instant of the day.
type Resolution struct {
	From theme.Scene // scene whose window contains the instant
	To   theme.Scene // next scene in the cycle
	T    float64     // position within the window, in [0, 1)

	Palette   theme.Palette
	Celestial CelestialPhase
}

// CelestialPhase tracks the body in the sky and how far it has travelled
// across its visible span.
type CelestialPhase struct {
	Body     theme.Celestial
	Progress float64 // 0 at rise, approaching 1 at set
}

// Resolver resolves day fractions to palettes. It is immutable and safe for
// concurrent use.
type Resolver struct {
	bp     Breakpoints
	starts [4]float64
	spans  [4]float64

	sunrise, sunset float64
}

// New creates a resolver for the given breakpoints.
func New(bp Breakpoints) (*Resolver, error) {
	if err := bp.Validate(); err != nil {
		return nil, err
	}

	r := &Resolver{bp: bp, starts: bp.starts()}
	for i := range r.starts {
		r.spans[i] = cyclicGap(r.starts[i], r.starts[(i+1)%4])
	}

	// The celestial body switches halfway through the windows that end at
	// a body change: night→dawn brings the sun, dusk→night brings the moon.
	r.sunrise = wrap(r.starts[theme.Night.Index()] + r.spans[theme.Night.Index()]/2)
	r.sunset = wrap(r.starts[theme.Dusk.Index()] + r.spans[theme.Dusk.Index()]/2)
	return r, nil
}

// Breakpoints returns the breakpoints the resolver was built with.
func (r *Resolver) Breakpoints() Breakpoints {
	return r.bp
}

// Window returns the start fraction and length of a scene's window.
func (r *Resolver) Window(s theme.Scene) (start, length float64) {
	return r.starts[s.Index()], r.spans[s.Index()]
}

// Resolve returns the blended palette for day fraction f. Windows are
// half-open, so a fraction equal to a breakpoint resolves to the start of
// the new window.
func (r *Resolver) Resolve(f float64) (Resolution, error) {
	if math.IsNaN(f) || f < 0 || f >= 1 {
		return Resolution{}, fmt.Errorf("%w: %v", ErrOutOfRangeTime, f)
	}

	from := r.sceneAt(f)
	start, length := r.Window(from)
	t := cyclicGap(start, f) / length
	if t >= 1 {
		t = math.Nextafter(1, 0)
	}

	to := from.Next()
	p := theme.Interpolate(theme.PaletteFor(from), theme.PaletteFor(to), t)
	return Resolution{
		From:      from,
		To:        to,
		T:         t,
		Palette:   p,
		Celestial: r.celestial(p.Celestial, f),
	}, nil
}

// sceneAt finds the window containing f using comparisons only, so every
// fraction lands in exactly one window.
func (r *Resolver) sceneAt(f float64) theme.Scene {
	for _, s := range theme.Scenes() {
		start := r.starts[s.Index()]
		next := r.starts[s.Next().Index()]
		if start < next {
			if f >= start && f < next {
				return s
			}
		} else if f >= start || f < next {
			return s
		}
	}
	// Unreachable for validated breakpoints.
	return theme.Night
}

// celestial places the palette's body on its arc. The body itself comes from
// the palette so the two never disagree at the switch point.
func (r *Resolver) celestial(body theme.Celestial, f float64) CelestialPhase {
	anchor, span := r.sunrise, cyclicGap(r.sunrise, r.sunset)
	if body == theme.Moon {
		anchor, span = r.sunset, 1-span
	}

	pos := cyclicGap(anchor, f)
	if pos >= span {
		// Rounding put f just outside the span: either just before rise
		// or just after set.
		if pos-span < 1-pos {
			return CelestialPhase{Body: body, Progress: math.Nextafter(1, 0)}
		}
		return CelestialPhase{Body: body}
	}
	return CelestialPhase{Body: body, Progress: pos / span}
}

func wrap(f float64) float64 {
	f = math.Mod(f, 1)
	if f < 0 {
		f++
	}
	return f
}

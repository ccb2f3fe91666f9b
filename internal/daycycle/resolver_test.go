package daycycle

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sail/internal/theme"
)

func newExampleResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := New(ExampleBreakpoints)
	require.NoError(t, err)
	return r
}

func TestBreakpointsValidate(t *testing.T) {
	tests := []struct {
		name    string
		bp      Breakpoints
		wantErr bool
	}{
		{"example", ExampleBreakpoints, false},
		{"night after midnight", Breakpoints{0.25, 0.4, 0.7, 0.02}, false},
		{"dawn at midnight", Breakpoints{0, 0.25, 0.5, 0.75}, false},
		{"out of order", Breakpoints{0.2, 0.75, 0.35, 0.9}, true},
		{"duplicate start", Breakpoints{0.2, 0.2, 0.75, 0.9}, true},
		{"negative", Breakpoints{-0.1, 0.35, 0.75, 0.9}, true},
		{"one", Breakpoints{0.2, 0.35, 0.75, 1}, true},
		{"nan", Breakpoints{0.2, math.NaN(), 0.75, 0.9}, true},
		{"reversed", Breakpoints{0.9, 0.75, 0.35, 0.2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bp.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidBreakpoints))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewRejectsInvalidBreakpoints(t *testing.T) {
	_, err := New(Breakpoints{0.5, 0.5, 0.5, 0.5})
	assert.ErrorIs(t, err, ErrInvalidBreakpoints)
}

func TestResolveDuskScenario(t *testing.T) {
	r := newExampleResolver(t)

	res, err := r.Resolve(0.775)
	require.NoError(t, err)
	assert.Equal(t, theme.Dusk, res.From)
	assert.Equal(t, theme.Night, res.To)
	assert.InDelta(t, 1.0/6.0, res.T, 1e-9)

	want := theme.Interpolate(theme.PaletteFor(theme.Dusk), theme.PaletteFor(theme.Night), res.T)
	assert.Equal(t, want, res.Palette)
}

func TestResolveMidnightWrapsIntoNightWindow(t *testing.T) {
	r := newExampleResolver(t)

	res, err := r.Resolve(0)
	require.NoError(t, err)
	assert.Equal(t, theme.Night, res.From)
	assert.Equal(t, theme.Dawn, res.To)
	// Night runs 0.90 → 0.20 (0.3 of a day); midnight is 0.1 into it.
	assert.InDelta(t, 1.0/3.0, res.T, 1e-9)
}

func TestResolveBoundaryStartsNewWindow(t *testing.T) {
	r := newExampleResolver(t)
	bp := ExampleBreakpoints

	for _, s := range theme.Scenes() {
		res, err := r.Resolve(bp.Start(s))
		require.NoError(t, err)
		assert.Equal(t, s, res.From, "boundary of %s", s)
		assert.Equal(t, 0.0, res.T, "boundary of %s", s)
		assert.Equal(t, theme.PaletteFor(s), res.Palette, "boundary of %s", s)
	}
}

func TestResolveOutOfRange(t *testing.T) {
	r := newExampleResolver(t)

	for _, f := range []float64{-0.001, 1, 1.5, math.NaN(), math.Inf(1)} {
		_, err := r.Resolve(f)
		require.Error(t, err, "f=%v", f)
		assert.True(t, errors.Is(err, ErrOutOfRangeTime), "f=%v", f)
	}
}

func TestResolveContinuityAtBoundary(t *testing.T) {
	r := newExampleResolver(t)
	const eps = 1e-7

	for _, s := range theme.Scenes() {
		start := ExampleBreakpoints.Start(s)
		before := start - eps
		if before < 0 {
			before++
		}

		a, err := r.Resolve(before)
		require.NoError(t, err)
		b, err := r.Resolve(start)
		require.NoError(t, err)

		assert.Equal(t, s.Prev(), a.From)
		assert.Equal(t, s, b.From)
		for _, slot := range theme.Slots() {
			ca, cb := a.Palette.Color(slot), b.Palette.Color(slot)
			assert.InDelta(t, ca.R, cb.R, 1e-5, "%s %s", s, slot)
			assert.InDelta(t, ca.G, cb.G, 1e-5, "%s %s", s, slot)
			assert.InDelta(t, ca.B, cb.B, 1e-5, "%s %s", s, slot)
			assert.InDelta(t, ca.A, cb.A, 1e-5, "%s %s", s, slot)
		}
	}
}

func TestResolveSweepVisitsScenesInOrder(t *testing.T) {
	for _, bp := range []Breakpoints{ExampleBreakpoints, {0.25, 0.4, 0.7, 0.02}} {
		r, err := New(bp)
		require.NoError(t, err)

		const steps = 10000
		var visited []theme.Scene
		for i := 0; i < steps; i++ {
			f := float64(i) / steps
			res, err := r.Resolve(f)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, res.T, 0.0)
			assert.Less(t, res.T, 1.0)
			assert.Equal(t, res.From.Next(), res.To)

			if len(visited) == 0 || visited[len(visited)-1] != res.From {
				visited = append(visited, res.From)
			}
		}

		// The sweep starts inside the window that spans midnight, which may
		// be re-entered at the end of the day.
		if len(visited) == 5 {
			require.Equal(t, visited[0], visited[4])
			visited = visited[:4]
		}
		require.Len(t, visited, 4)
		for i := range visited {
			assert.Equal(t, visited[i].Next(), visited[(i+1)%4])
		}
	}
}

func TestWindowLengthsCoverDay(t *testing.T) {
	r := newExampleResolver(t)
	total := 0.0
	for _, s := range theme.Scenes() {
		start, length := r.Window(s)
		assert.Equal(t, ExampleBreakpoints.Start(s), start)
		total += length
	}
	assert.InDelta(t, 1.0, total, 1e-12)
	assert.Equal(t, ExampleBreakpoints, r.Breakpoints())
}

func TestCelestialFollowsPaletteSnap(t *testing.T) {
	r := newExampleResolver(t)

	for i := 0; i < 1000; i++ {
		f := float64(i) / 1000
		res, err := r.Resolve(f)
		require.NoError(t, err)
		assert.Equal(t, res.Palette.Celestial, res.Celestial.Body, "f=%v", f)
		assert.GreaterOrEqual(t, res.Celestial.Progress, 0.0)
		assert.Less(t, res.Celestial.Progress, 1.0)
	}
}

func TestCelestialProgress(t *testing.T) {
	r := newExampleResolver(t)

	// Sunrise is halfway through the night window (0.05), sunset halfway
	// through the dusk window (0.825).
	tests := []struct {
		f        float64
		body     theme.Celestial
		progress float64
	}{
		{0.06, theme.Sun, 0.01 / 0.775},
		{0.4375, theme.Sun, 0.5},
		{0.82, theme.Sun, 0.77 / 0.775},
		{0.83, theme.Moon, 0.005 / 0.225},
		{0.0, theme.Moon, 0.175 / 0.225},
	}
	for _, tt := range tests {
		res, err := r.Resolve(tt.f)
		require.NoError(t, err)
		assert.Equal(t, tt.body, res.Celestial.Body, "f=%v", tt.f)
		assert.InDelta(t, tt.progress, res.Celestial.Progress, 1e-9, "f=%v", tt.f)
	}
}

func TestResolveConcurrent(t *testing.T) {
	r := newExampleResolver(t)
	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func(g int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 500; i++ {
				if _, err := r.Resolve(float64((i*7+g)%1000) / 1000); err != nil {
					t.Errorf("Resolve: %v", err)
					return
				}
			}
		}(g)
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}

func TestFractionOf(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		t    time.Time
		want float64
	}{
		{time.Date(2026, 3, 1, 0, 0, 0, 0, loc), 0},
		{time.Date(2026, 3, 1, 12, 0, 0, 0, loc), 0.5},
		{time.Date(2026, 3, 1, 18, 36, 0, 0, loc), 0.775},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, FractionOf(tt.t), 1e-12, tt.t.String())
	}

	f := FractionOf(time.Date(2026, 3, 1, 23, 59, 59, 999999999, loc))
	assert.Less(t, f, 1.0)
}

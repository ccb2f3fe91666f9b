// Package motion provides the animation parameter tables and the pure time
// functions derived from them.
package motion

import "time"

// Durations for generic UI animations.
const (
	DurationInstant  = 100 * time.Millisecond
	DurationFast     = 250 * time.Millisecond
	DurationNormal   = 500 * time.Millisecond
	DurationSlow     = 600 * time.Millisecond
	DurationSlower   = 800 * time.Millisecond
	DurationEntrance = 1200 * time.Millisecond
)

// Durations for screen-level transitions.
const (
	TransitionScreenFade     = 500 * time.Millisecond
	TransitionRingAppear     = 1000 * time.Millisecond
	TransitionPhraseEntrance = 1200 * time.Millisecond
)

// NamedDuration pairs a token name with its duration.
type NamedDuration struct {
	Name     string
	Duration time.Duration
}

// Durations lists the generic durations, shortest first.
func Durations() []NamedDuration {
	return []NamedDuration{
		{"instant", DurationInstant},
		{"fast", DurationFast},
		{"normal", DurationNormal},
		{"slow", DurationSlow},
		{"slower", DurationSlower},
		{"entrance", DurationEntrance},
	}
}

// Transitions lists the screen transition durations.
func Transitions() []NamedDuration {
	return []NamedDuration{
		{"screen_fade", TransitionScreenFade},
		{"ring_appear", TransitionRingAppear},
		{"phrase_entrance", TransitionPhraseEntrance},
	}
}

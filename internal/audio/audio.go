// Package audio applies a sound asset's presentation hints (fades, volume,
// looping) to a decoded beep stream. Decoding and speaker output belong to
// the host app.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"

	"github.com/Faultbox/sail/internal/assets"
)

// Envelope returns the fade gain (0.0 to 1.0) at elapsed into a stream of the
// given length. Looping sounds, and streams with unknown length (0), only
// fade in.
func Envelope(a assets.SoundAsset, elapsed, length time.Duration) float64 {
	if elapsed < 0 {
		return 0
	}
	g := 1.0
	if a.FadeIn > 0 && elapsed < a.FadeIn {
		g = float64(elapsed) / float64(a.FadeIn)
	}
	if !a.Loop && length > 0 && a.FadeOut > 0 {
		remaining := length - elapsed
		if remaining <= 0 {
			return 0
		}
		if remaining < a.FadeOut {
			g = math.Min(g, float64(remaining)/float64(a.FadeOut))
		}
	}
	return g
}

// Gain returns the overall gain at elapsed: the fade envelope scaled by the
// asset's default volume.
func Gain(a assets.SoundAsset, elapsed, length time.Duration) float64 {
	return Envelope(a, elapsed, length) * clamp(a.DefaultVolume, 0, 1)
}

// gainToVolume converts a linear gain to the exponent used by effects.Volume
// with Base 2.
func gainToVolume(g float64) float64 {
	if g <= 0 {
		return math.Inf(-1)
	}
	return math.Log2(g)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Apply wraps a decoded stream with the asset's looping, fade envelope and
// default volume.
func Apply(s beep.StreamSeeker, format beep.Format, a assets.SoundAsset) *Fader {
	var (
		src    beep.Streamer = s
		length time.Duration
	)
	if a.Loop {
		src = &loopStreamer{streamer: s}
	} else {
		length = format.SampleRate.D(s.Len())
	}

	f := &Fader{
		asset:      a,
		sampleRate: format.SampleRate,
		length:     length,
		stopAt:     -1,
	}
	vol := clamp(a.DefaultVolume, 0, 1)
	f.out = &effects.Volume{
		Streamer: beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
			return f.fade(src, samples)
		}),
		Base:   2,
		Volume: gainToVolume(vol),
		Silent: vol <= 0,
	}
	f.src = src
	return f
}

// Fader is a beep.Streamer that applies a sound asset's fade envelope. It is
// safe to call Stop while the speaker goroutine is streaming.
type Fader struct {
	mu sync.Mutex

	asset      assets.SoundAsset
	sampleRate beep.SampleRate
	length     time.Duration

	src beep.Streamer
	out beep.Streamer

	pos    int // samples streamed so far
	stopAt int // sample index where Stop was requested, -1 if running
}

// Stream implements beep.Streamer.
func (f *Fader) Stream(samples [][2]float64) (n int, ok bool) {
	return f.out.Stream(samples)
}

// Err implements beep.Streamer.
func (f *Fader) Err() error {
	return f.src.Err()
}

// Stop begins the asset's fade-out from the current position. The stream
// ends once the fade completes, or immediately if the asset has no fade-out.
func (f *Fader) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopAt < 0 {
		f.stopAt = f.pos
	}
}

// Position returns how much of the stream has been played.
func (f *Fader) Position() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sampleRate.D(f.pos)
}

func (f *Fader) fade(src beep.Streamer, samples [][2]float64) (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	limit := len(samples)
	fadeOut := f.sampleRate.N(f.asset.FadeOut)
	if f.stopAt >= 0 {
		left := f.stopAt + fadeOut - f.pos
		if left <= 0 {
			return 0, false
		}
		if left < limit {
			limit = left
		}
	}

	n, ok := src.Stream(samples[:limit])
	for i := 0; i < n; i++ {
		p := f.pos + i
		g := Envelope(f.asset, f.sampleRate.D(p), f.length)
		if f.stopAt >= 0 && fadeOut > 0 {
			g *= clamp(float64(f.stopAt+fadeOut-p)/float64(fadeOut), 0, 1)
		}
		samples[i][0] *= g
		samples[i][1] *= g
	}
	f.pos += n
	return n, ok
}

// loopStreamer replays a seekable stream from the start whenever it drains.
// It stops on a source error, or when a pass from the start yields nothing.
type loopStreamer struct {
	streamer beep.StreamSeeker
}

func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	rewound := false
	for filled < len(samples) {
		n, ok := l.streamer.Stream(samples[filled:])
		filled += n
		if n > 0 {
			rewound = false
		}
		if ok && n > 0 {
			continue
		}
		if l.streamer.Err() != nil || rewound || l.streamer.Len() == 0 {
			return filled, filled > 0
		}
		if err := l.streamer.Seek(0); err != nil {
			return filled, filled > 0
		}
		rewound = true
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.streamer.Err()
}

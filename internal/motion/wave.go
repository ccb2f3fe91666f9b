package motion

import (
	"errors"
	"fmt"
	"math"
	"time"

	smath "github.com/Faultbox/sail/pkg/math"
)

// ErrUnknownLayer is returned for a wave layer index outside the table.
var ErrUnknownLayer = errors.New("unknown wave layer")

// WaveLayer describes one layer of the animated sea.
type WaveLayer struct {
	Amplitude float64 `yaml:"amplitude"` // points
	Frequency float64 `yaml:"frequency"` // crests across the view width
	Speed     float64 `yaml:"speed"`     // seconds per cycle
	Opacity   float64 `yaml:"opacity"`   // 0..1
	YOffset   float64 `yaml:"y_offset"`  // baseline as a fraction of view height
}

// LayerCount is the number of wave layers.
const LayerCount = 3

// Wave layers, back to front.
var waveLayers = [LayerCount]WaveLayer{
	{Amplitude: 8, Frequency: 1.5, Speed: 8.0, Opacity: 0.35, YOffset: 0.2},
	{Amplitude: 6, Frequency: 2.0, Speed: 6.0, Opacity: 0.55, YOffset: 0.35},
	{Amplitude: 5, Frequency: 2.5, Speed: 5.0, Opacity: 0.85, YOffset: 0.45},
}

// Waves returns the wave layers, back to front.
func Waves() [LayerCount]WaveLayer {
	return waveLayers
}

// Wave returns layer i (0 is the back layer).
func Wave(i int) (WaveLayer, error) {
	if i < 0 || i >= LayerCount {
		return WaveLayer{}, fmt.Errorf("%w: %d", ErrUnknownLayer, i)
	}
	return waveLayers[i], nil
}

// Period returns the time for the layer to complete one cycle.
func (w WaveLayer) Period() time.Duration {
	return time.Duration(w.Speed * float64(time.Second))
}

// HeightAt returns the vertical displacement of the surface at horizontal
// position x (0 = left edge, 1 = right edge) after t seconds. It depends only
// on x and t, so an animation can be paused and resumed anywhere.
func (w WaveLayer) HeightAt(x, t float64) float64 {
	if w.Speed == 0 {
		return w.Amplitude * math.Sin(2*math.Pi*w.Frequency*x)
	}
	// Reduce the time term first to keep precision for large t.
	phase := math.Mod(t/w.Speed, 1)
	return w.Amplitude * math.Sin(2*math.Pi*(w.Frequency*x+phase))
}

// OffsetAt returns the displacement at the left edge after t seconds.
func (w WaveLayer) OffsetAt(t float64) float64 {
	return w.HeightAt(0, t)
}

// Path samples the surface across a view of the given size. The returned
// points run left to right, with y measured downward from the top edge.
func (w WaveLayer) Path(t, width, height float64, samples int) []smath.Vec2 {
	if samples < 2 {
		samples = 2
	}
	base := float32(w.YOffset * height)
	left, right := smath.Vec2{X: 0, Y: base}, smath.Vec2{X: float32(width), Y: base}
	pts := make([]smath.Vec2, samples)
	for i := range pts {
		x := float64(i) / float64(samples-1)
		crest := smath.Vec2{Y: float32(w.HeightAt(x, t))}
		pts[i] = left.Lerp(right, float32(x)).Add(crest)
	}
	return pts
}

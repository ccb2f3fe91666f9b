package assets

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sail/internal/theme"
)

func TestIconsRegistered(t *testing.T) {
	all := Icons()
	require.Len(t, all, 6)
	for _, i := range all {
		a, err := i.Asset()
		require.NoError(t, err, string(i))
		assert.Equal(t, "icon."+string(i), a.Resource)
		assert.NotEmpty(t, a.Sizes())
	}
}

func TestIconSizesAreCopies(t *testing.T) {
	a, err := IconSailboat.Asset()
	require.NoError(t, err)

	sizes := a.Sizes()
	assert.Equal(t, []int{24, 32, 64}, sizes)
	sizes[0] = 999

	again, _ := IconSailboat.Asset()
	assert.Equal(t, 24, again.Sizes()[0])

	// Mutating the returned list must not reorder the registry either.
	list := Icons()
	list[0] = IconPlay
	assert.Equal(t, IconSailboat, Icons()[0])
}

func TestLookupIcon(t *testing.T) {
	tests := []struct {
		name string
		want Icon
	}{
		{"moon", IconMoon},
		{"icon.moon", IconMoon},
		{"play", IconPlay},
	}
	for _, tt := range tests {
		got, a, err := LookupIcon(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, "icon."+string(tt.want), a.Resource)
	}

	_, _, err := LookupIcon("anchor")
	assert.True(t, errors.Is(err, ErrUnknownAsset))

	_, err = Icon("anchor").Asset()
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func TestCelestialIcon(t *testing.T) {
	assert.Equal(t, IconSun, CelestialIcon(theme.PaletteFor(theme.Day).Celestial))
	assert.Equal(t, IconMoon, CelestialIcon(theme.PaletteFor(theme.Night).Celestial))

	moon, _ := IconMoon.Asset()
	assert.Equal(t, []int{24, 28}, moon.Sizes())
}

func TestIllustrations(t *testing.T) {
	all := Illustrations()
	require.Len(t, all, 3)
	for _, i := range all {
		a, err := i.Asset()
		require.NoError(t, err)
		assert.Equal(t, "illust."+string(i), a.Resource)
	}

	_, err := Illustration("poster").Asset()
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func TestSounds(t *testing.T) {
	wave, err := SoundWaveLoop.Asset()
	require.NoError(t, err)
	assert.Equal(t, "wave_loop.mp3", wave.Filename())
	assert.True(t, wave.Loop)
	assert.Equal(t, 1500*time.Millisecond, wave.FadeIn)
	assert.Equal(t, time.Second, wave.FadeOut)
	assert.Equal(t, 0.4, wave.DefaultVolume)

	chime, err := SoundEndChime.Asset()
	require.NoError(t, err)
	assert.False(t, chime.Loop)
	assert.Zero(t, chime.FadeIn)
	assert.Equal(t, 0.5, chime.DefaultVolume)

	assert.Equal(t, []Sound{SoundWaveLoop, SoundEndChime}, Sounds())
}

func TestLookupSound(t *testing.T) {
	s, a, err := LookupSound("end_chime")
	require.NoError(t, err)
	assert.Equal(t, SoundEndChime, s)
	assert.Equal(t, "mp3", a.Extension)

	s, _, err = LookupSound("waveLoop")
	require.NoError(t, err)
	assert.Equal(t, SoundWaveLoop, s)

	_, _, err = LookupSound("foghorn")
	assert.ErrorIs(t, err, ErrUnknownAsset)

	_, err = Sound("foghorn").Asset()
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

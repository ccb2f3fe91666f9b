// Package assets maps logical icon, illustration and sound names to the
// resource identifiers used by the asset catalog.
package assets

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Faultbox/sail/internal/theme"
)

// ErrUnknownAsset is returned when a lookup matches no registry entry.
var ErrUnknownAsset = errors.New("unknown asset")

// Icon is a logical icon name. The set is closed; see Icons.
type Icon string

// Icons.
const (
	IconSailboat Icon = "sailboat"
	IconWave     Icon = "wave"
	IconSun      Icon = "sun"
	IconMoon     Icon = "moon"
	IconStop     Icon = "stop"
	IconPlay     Icon = "play"
)

// IconAsset is the registry entry for an icon.
type IconAsset struct {
	Resource    string
	Description string
	sizes       []int
}

// Sizes returns the point sizes the icon is exported at.
func (a IconAsset) Sizes() []int {
	return slices.Clone(a.sizes)
}

var iconOrder = []Icon{IconSailboat, IconWave, IconSun, IconMoon, IconStop, IconPlay}

var icons = map[Icon]IconAsset{
	IconSailboat: {Resource: "icon.sailboat", Description: "Main boat illustration in ocean scene", sizes: []int{24, 32, 64}},
	IconWave:     {Resource: "icon.wave", Description: "Decorative wave icon", sizes: []int{24}},
	IconSun:      {Resource: "icon.sun", Description: "Celestial body for dawn/day/dusk", sizes: []int{24, 44}},
	IconMoon:     {Resource: "icon.moon", Description: "Celestial body for night", sizes: []int{24, 28}},
	IconStop:     {Resource: "icon.stop", Description: "Session stop action", sizes: []int{16, 24}},
	IconPlay:     {Resource: "icon.play", Description: "Alternative sail/start icon", sizes: []int{16, 24}},
}

// Icons returns every icon in registry order.
func Icons() []Icon {
	return slices.Clone(iconOrder)
}

// Asset returns the registry entry for the icon.
func (i Icon) Asset() (IconAsset, error) {
	a, ok := icons[i]
	if !ok {
		return IconAsset{}, fmt.Errorf("%w: icon %q", ErrUnknownAsset, string(i))
	}
	return a, nil
}

// LookupIcon finds an icon by logical name ("sun") or resource id ("icon.sun").
func LookupIcon(name string) (Icon, IconAsset, error) {
	for _, i := range iconOrder {
		a := icons[i]
		if string(i) == name || a.Resource == name {
			return i, a, nil
		}
	}
	return "", IconAsset{}, fmt.Errorf("%w: icon %q", ErrUnknownAsset, name)
}

// CelestialIcon returns the icon drawn for a celestial body.
func CelestialIcon(c theme.Celestial) Icon {
	if c == theme.Moon {
		return IconMoon
	}
	return IconSun
}

// Illustration is a logical illustration name.
type Illustration string

// Illustrations.
const (
	IllustrationBoatScene   Illustration = "boatScene"
	IllustrationAppIcon     Illustration = "appIcon"
	IllustrationLaunchImage Illustration = "launchImage"
)

// IllustrationAsset is the registry entry for an illustration.
type IllustrationAsset struct {
	Resource    string
	Description string
}

var illustrationOrder = []Illustration{IllustrationBoatScene, IllustrationAppIcon, IllustrationLaunchImage}

var illustrations = map[Illustration]IllustrationAsset{
	IllustrationBoatScene:   {Resource: "illust.boatScene", Description: "Full ocean scene with boat"},
	IllustrationAppIcon:     {Resource: "illust.appIcon", Description: "App icon"},
	IllustrationLaunchImage: {Resource: "illust.launchImage", Description: "Launch screen background"},
}

// Illustrations returns every illustration in registry order.
func Illustrations() []Illustration {
	return slices.Clone(illustrationOrder)
}

// Asset returns the registry entry for the illustration.
func (i Illustration) Asset() (IllustrationAsset, error) {
	a, ok := illustrations[i]
	if !ok {
		return IllustrationAsset{}, fmt.Errorf("%w: illustration %q", ErrUnknownAsset, string(i))
	}
	return a, nil
}

// Sound is a logical sound name.
type Sound string

// Sounds.
const (
	SoundWaveLoop Sound = "waveLoop"
	SoundEndChime Sound = "endChime"
)

// SoundAsset describes a bundled audio file and how it should be played.
type SoundAsset struct {
	Resource      string        `yaml:"resource"`
	Extension     string        `yaml:"extension"`
	Loop          bool          `yaml:"loop"`
	FadeIn        time.Duration `yaml:"fade_in"`
	FadeOut       time.Duration `yaml:"fade_out"`
	DefaultVolume float64       `yaml:"default_volume"`
}

// Filename returns the bundled file name, e.g. "wave_loop.mp3".
func (a SoundAsset) Filename() string {
	return a.Resource + "." + a.Extension
}

var soundOrder = []Sound{SoundWaveLoop, SoundEndChime}

var sounds = map[Sound]SoundAsset{
	SoundWaveLoop: {
		Resource:      "wave_loop",
		Extension:     "mp3",
		Loop:          true,
		FadeIn:        1500 * time.Millisecond,
		FadeOut:       time.Second,
		DefaultVolume: 0.4,
	},
	SoundEndChime: {
		Resource:      "end_chime",
		Extension:     "mp3",
		DefaultVolume: 0.5,
	},
}

// Sounds returns every sound in registry order.
func Sounds() []Sound {
	return slices.Clone(soundOrder)
}

// Asset returns the registry entry for the sound.
func (s Sound) Asset() (SoundAsset, error) {
	a, ok := sounds[s]
	if !ok {
		return SoundAsset{}, fmt.Errorf("%w: sound %q", ErrUnknownAsset, string(s))
	}
	return a, nil
}

// LookupSound finds a sound by logical name ("waveLoop") or resource name
// ("wave_loop").
func LookupSound(name string) (Sound, SoundAsset, error) {
	for _, s := range soundOrder {
		a := sounds[s]
		if string(s) == name || a.Resource == name {
			return s, a, nil
		}
	}
	return "", SoundAsset{}, fmt.Errorf("%w: sound %q", ErrUnknownAsset, name)
}

// Package typography holds the font tokens: families, weights, the size
// scale, letter spacing and the named text styles built from them.
package typography

// Font families.
const (
	FamilyDisplay = "Cormorant Garamond"
	FamilyBody    = "DM Sans"
	FamilyMono    = "SF Mono"
)

// Weight is a font weight on the CSS 100–900 scale.
type Weight int

// Weights used by the text styles.
const (
	WeightLight   Weight = 300
	WeightRegular Weight = 400
	WeightMedium  Weight = 500
)

// String implements fmt.Stringer.
func (w Weight) String() string {
	switch w {
	case WeightLight:
		return "light"
	case WeightRegular:
		return "regular"
	case WeightMedium:
		return "medium"
	}
	return "custom"
}

// MarshalText implements encoding.TextMarshaler.
func (w Weight) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// Font sizes in points.
const (
	SizeXXS = 11.0
	SizeXS  = 12.0
	SizeSM  = 13.0
	SizeMD  = 16.0
	SizeLG  = 22.0
	SizeXL  = 36.0
	SizeXXL = 42.0
)

// Letter spacing in points.
const (
	TrackingTight  = 0.5
	TrackingNormal = 1.0
	TrackingWide   = 2.0
	TrackingWider  = 3.0
	TrackingWidest = 6.0
)

// Style is a complete text style.
type Style struct {
	Family        string  `yaml:"family"`
	Weight        Weight  `yaml:"weight"`
	Size          float64 `yaml:"size"`
	LetterSpacing float64 `yaml:"letter_spacing"`
	LineHeight    float64 `yaml:"line_height"` // multiple of Size
}

// LineSpacing returns the line height in points.
func (s Style) LineSpacing() float64 {
	return s.Size * s.LineHeight
}

// Text styles.
var (
	AppTitle = Style{Family: FamilyDisplay, Weight: WeightLight, Size: SizeXXL, LetterSpacing: TrackingWidest, LineHeight: 1.5}
	Timer    = Style{Family: FamilyDisplay, Weight: WeightLight, Size: SizeXL, LetterSpacing: TrackingWide, LineHeight: 1.5}
	Phrase   = Style{Family: FamilyDisplay, Weight: WeightLight, Size: SizeLG, LetterSpacing: TrackingTight, LineHeight: 1.6}
	Button   = Style{Family: FamilyDisplay, Weight: WeightRegular, Size: SizeLG, LetterSpacing: TrackingWider, LineHeight: 1.5}
	Pill     = Style{Family: FamilyBody, Weight: WeightRegular, Size: SizeSM, LetterSpacing: TrackingNormal, LineHeight: 1.5}
	Label    = Style{Family: FamilyBody, Weight: WeightLight, Size: SizeXXS, LetterSpacing: TrackingWide, LineHeight: 1.5}
	Subtitle = Style{Family: FamilyBody, Weight: WeightLight, Size: SizeXS, LetterSpacing: TrackingWider, LineHeight: 1.5}
)

// NamedStyle pairs a token name with its style.
type NamedStyle struct {
	Name  string
	Style Style
}

// Styles lists every text style in token order.
func Styles() []NamedStyle {
	return []NamedStyle{
		{"app_title", AppTitle},
		{"timer", Timer},
		{"phrase", Phrase},
		{"button", Button},
		{"pill", Pill},
		{"label", Label},
		{"subtitle", Subtitle},
	}
}

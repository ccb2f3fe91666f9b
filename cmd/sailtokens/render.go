package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Faultbox/sail/internal/theme"
	"github.com/Faultbox/sail/pkg/color"
)

var (
	heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89cff0"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// titled turns a token name such as "dawn" or "app_title" into a heading.
func titled(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// swatch renders a block filled with c. Opacity is previewed by blending
// toward black, the way the sky sits behind every translucent slot.
func swatch(c color.Color) string {
	shown := color.Lerp(color.Black, c.WithOpacity(1), c.A)
	return lipgloss.NewStyle().Background(lipgloss.Color(shown.Hex())).Render("    ")
}

func printPalette(p theme.Palette) {
	for _, slot := range theme.Slots() {
		c := p.Color(slot)
		fmt.Printf("  %s %-22s %s\n", swatch(c), slot, dim.Render(c.String()))
	}
	fmt.Printf("  %s %-22s %s\n", "    ", "celestial", p.Celestial)
}

// bar draws v in [0, 1] as a horizontal bar of the given width.
func bar(v float64, width int) string {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	n := int(math.Round(math.Min(v, 1) * float64(width)))
	return strings.Repeat("█", n) + dim.Render(strings.Repeat("·", width-n))
}

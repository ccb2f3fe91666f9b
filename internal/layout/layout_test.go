package layout

import (
	"math"
	"testing"
)

func TestSpacingAscending(t *testing.T) {
	s := Spacing()
	if len(s) != 13 {
		t.Fatalf("len(Spacing()) = %d, want 13", len(s))
	}
	if s[0].Value != 4 || s[12].Value != 80 {
		t.Errorf("Spacing() bounds = %v..%v, want 4..80", s[0].Value, s[12].Value)
	}
	for i := 1; i < len(s); i++ {
		if s[i].Value <= s[i-1].Value {
			t.Errorf("%s (%v) not above %s (%v)", s[i].Name, s[i].Value, s[i-1].Name, s[i-1].Value)
		}
	}
}

func TestRadii(t *testing.T) {
	r := Radii()
	if len(r) != 4 {
		t.Fatalf("len(Radii()) = %d, want 4", len(r))
	}
	if !math.IsInf(r[3].Value, 1) {
		t.Errorf("pill radius = %v, want +Inf", r[3].Value)
	}
}

func TestRadius(t *testing.T) {
	tests := []struct {
		name          string
		r, w, h, want float64
	}{
		{"pill", RadiusPill, 200, 44, 22},
		{"fits", RadiusMD, 200, 100, 16},
		{"capped", RadiusLG, 30, 30, 15},
		{"negative size", RadiusSM, -4, 10, 0},
	}
	for _, tt := range tests {
		if got := Radius(tt.r, tt.w, tt.h); got != tt.want {
			t.Errorf("Radius(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSizes(t *testing.T) {
	want := map[string]float64{
		"sail_button":     120,
		"progress_ring":   200,
		"progress_stroke": 2.5,
		"celestial_sun":   44,
		"celestial_moon":  28,
		"boat_width":      64,
		"boat_height":     80,
	}
	got := Sizes()
	if len(got) != len(want) {
		t.Fatalf("len(Sizes()) = %d, want %d", len(got), len(want))
	}
	for _, tok := range got {
		if want[tok.Name] != tok.Value {
			t.Errorf("%s = %v, want %v", tok.Name, tok.Value, want[tok.Name])
		}
	}
}

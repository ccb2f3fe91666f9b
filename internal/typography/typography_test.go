package typography

import (
	"testing"
)

func TestStyles(t *testing.T) {
	styles := Styles()
	if len(styles) != 7 {
		t.Fatalf("len(Styles()) = %d, want 7", len(styles))
	}

	seen := make(map[string]bool)
	for _, s := range styles {
		if seen[s.Name] {
			t.Errorf("duplicate style %s", s.Name)
		}
		seen[s.Name] = true

		if s.Style.Family != FamilyDisplay && s.Style.Family != FamilyBody {
			t.Errorf("%s: unexpected family %q", s.Name, s.Style.Family)
		}
		if s.Style.Size <= 0 || s.Style.LineHeight < 1 {
			t.Errorf("%s: size %v line height %v", s.Name, s.Style.Size, s.Style.LineHeight)
		}
	}
}

func TestKnownStyles(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  Style
	}{
		{"app title", AppTitle, Style{"Cormorant Garamond", WeightLight, 42, 6, 1.5}},
		{"phrase", Phrase, Style{"Cormorant Garamond", WeightLight, 22, 0.5, 1.6}},
		{"pill", Pill, Style{"DM Sans", WeightRegular, 13, 1, 1.5}},
		{"label", Label, Style{"DM Sans", WeightLight, 11, 2, 1.5}},
	}
	for _, tt := range tests {
		if tt.style != tt.want {
			t.Errorf("%s = %+v, want %+v", tt.name, tt.style, tt.want)
		}
	}
}

func TestLineSpacing(t *testing.T) {
	if got := Timer.LineSpacing(); got != 54 {
		t.Errorf("Timer.LineSpacing() = %v, want 54", got)
	}
}

func TestWeightString(t *testing.T) {
	tests := []struct {
		w    Weight
		want string
	}{
		{WeightLight, "light"},
		{WeightRegular, "regular"},
		{WeightMedium, "medium"},
		{Weight(800), "custom"},
	}
	for _, tt := range tests {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("Weight(%d).String() = %s, want %s", int(tt.w), got, tt.want)
		}
	}
}

package types

import (
	"reflect"
	"testing"
)

func TestColorCodes(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		fg    []int
		bg    []int
	}{
		{"Red", Red, []int{31}, []int{41}},
		{"BrightCyan", BrightCyan, []int{96}, []int{106}},
		{"Indexed", Indexed(123), []int{38, 5, 123}, []int{48, 5, 123}},
		{"RGB", RGB(255, 100, 50), []int{38, 2, 255, 100, 50}, []int{48, 2, 255, 100, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.fgCodes(nil); !reflect.DeepEqual(got, tt.fg) {
				t.Errorf("Expected fg codes %v, got %v", tt.fg, got)
			}
			if got := tt.color.bgCodes(nil); !reflect.DeepEqual(got, tt.bg) {
				t.Errorf("Expected bg codes %v, got %v", tt.bg, got)
			}
		})
	}
}

func TestColorStyles(t *testing.T) {
	s := Blue.Style()
	if c, state := s.Foreground(); state != StateSet || c != Blue {
		t.Errorf("Expected foreground blue, got %v %v", c, state)
	}
	if _, state := s.Background(); state != StateUnset {
		t.Errorf("Expected background unspecified, got %v", state)
	}
	if got := s.Attrs(); got != AttrForeground {
		t.Errorf("Expected only foreground specified, got %v", got)
	}

	b := Blue.Bg()
	if c, state := b.Background(); state != StateSet || c != Blue {
		t.Errorf("Expected background blue, got %v %v", c, state)
	}

	r := ColorReset{}.Style()
	if _, state := r.Foreground(); state != StateReset {
		t.Errorf("Expected foreground reset, got %v", state)
	}
	if got := r.ANSI(); got != "\x1b[39m" {
		t.Errorf("Expected ESC[39m, got %q", got)
	}
}

func TestColorTransition(t *testing.T) {
	tests := []struct {
		name string
		from Style
		to   Style
		want []int
	}{
		{"NothingToRed", Empty(), Red.Style(), []int{31}},
		{"RedToBlue", Red.Style(), Blue.Style(), []int{34}},
		{"RedToSame", Red.Style(), Red.Style(), nil},
		{"RedToUnspecified", Red.Style(), Empty(), []int{39}},
		{"BgSwap", Red.Bg(), Blue.Bg(), []int{44}},
		{"IndexedToRGB", Indexed(99).Style(), RGB(1, 2, 3).Style(), []int{38, 2, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.Transition(tt.to).Codes()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected codes %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStandardColor(t *testing.T) {
	if StandardColor(1) != Red {
		t.Errorf("Expected StandardColor(1) == Red")
	}
	if StandardColor(9) != BrightRed {
		t.Errorf("Expected StandardColor(9) == BrightRed")
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		color    Color
		expected string
	}{
		{Red, "std:1"},
		{BrightBlue, "std:12"},
		{Indexed(200), "idx:200"},
		{RGB(1, 2, 3), "rgb(1,2,3)"},
	}

	for _, tt := range tests {
		if got := tt.color.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

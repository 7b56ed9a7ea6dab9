package types

import (
	"reflect"
	"testing"
)

func TestEffectCodes(t *testing.T) {
	tests := []struct {
		effect    Effect
		setCode   int
		resetCode int
	}{
		{Bold, 1, 22},
		{Faint, 2, 22},
		{Italic, 3, 23},
		{Underline, 4, 24},
		{Blink, 5, 25},
		{Reverse, 7, 27},
		{Hidden, 8, 28},
		{Strike, 9, 29},
	}

	for _, tt := range tests {
		t.Run(tt.effect.String(), func(t *testing.T) {
			if got := tt.effect.SetCode(); got != tt.setCode {
				t.Errorf("Expected set code %d, got %d", tt.setCode, got)
			}
			if got := tt.effect.ResetCode(); got != tt.resetCode {
				t.Errorf("Expected reset code %d, got %d", tt.resetCode, got)
			}
		})
	}
}

func TestEffectAttrs(t *testing.T) {
	var seen Attrs
	for _, e := range AllEffects {
		a := e.attr()
		if !AttrsEffects.Contains(a) {
			t.Errorf("Effect %s maps outside the effect selector", e)
		}
		if seen.Intersects(a) {
			t.Errorf("Effect %s shares a bit with an earlier effect", e)
		}
		seen |= a
	}
	if seen != AttrsEffects {
		t.Errorf("Expected effects to cover AttrsEffects exactly, got %v", seen)
	}
}

func TestEffectConstructors(t *testing.T) {
	s := Bold.Style()
	if got := s.EffectState(Bold); got != StateSet {
		t.Errorf("Expected Bold set, got %v", got)
	}
	if got := s.Attrs(); got != AttrBold {
		t.Errorf("Expected only the bold slot specified, got %v", got)
	}

	n := Bold.Not()
	if got := n.EffectState(Bold); got != StateReset {
		t.Errorf("Expected Bold reset, got %v", got)
	}

	o := Bold.Only()
	if !o.IsOnly() {
		t.Errorf("Expected Only to specify every slot")
	}
	if got := o.EffectState(Bold); got != StateSet {
		t.Errorf("Expected Bold still set after Only, got %v", got)
	}
	if got := o.EffectState(Italic); got != StateReset {
		t.Errorf("Expected Italic reset after Only, got %v", got)
	}

	p := Bold.Protected()
	if got := p.Protected(); got != AttrBold {
		t.Errorf("Expected bold protected, got %v", got)
	}
}

func TestEffectsTransition(t *testing.T) {
	tests := []struct {
		name string
		from Style
		to   Style
		want []int
	}{
		{"NothingToBold", Empty(), Bold.Style(), []int{1}},
		{"BoldToItalic", Bold.Only(), Italic.Only(), []int{22, 3}},
		{"BoldToBold", Bold.Only(), Bold.Only(), nil},
		{"BoldToFaint", Bold.Only(), Faint.Only(), []int{22, 2}},
		{"FaintToBold", Faint.Only(), Bold.Only(), []int{22, 1}},
		{"BoldFaintToBold", Of(Bold, Faint).Only(), Bold.Only(), []int{22, 1}},
		{"BoldToBoldFaint", Bold.Only(), Of(Bold, Faint).Only(), []int{2}},
		{"ItalicSwap", Italic.Only(), Underline.Only(), []int{23, 4}},
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

// A transition never claims a slot both set and reset.
func TestTransitionInvariant(t *testing.T) {
	samples := []Style{
		Empty(), Reset(), Bold.Style(), Bold.Only(), Faint.Only(),
		Of(Bold, Faint), Of(Bold, Italic).Only(), Underline.Not(),
	}

	for _, from := range samples {
		for _, to := range samples {
			tr := from.Transition(to)
			for _, e := range AllEffects {
				_ = tr.EffectState(e)
			}
			// newEffects panics on violation; reaching here is the pass.
		}
	}
}

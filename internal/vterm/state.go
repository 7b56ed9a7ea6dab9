package vterm

import (
	"ansistyle/internal/types"
)

// State is the graphic rendition a terminal holds after interpreting a
// stream of SGR parameters. The zero value is the default rendition.
type State struct {
	effects [8]bool // indexed by types.Effect
	fg      *types.Color
	bg      *types.Color
}

// Effect reports whether the effect is active.
func (s *State) Effect(e types.Effect) bool { return s.effects[e] }

// Foreground returns the foreground color, or ok=false for the default.
func (s *State) Foreground() (types.Color, bool) {
	if s.fg == nil {
		return types.Color{}, false
	}
	return *s.fg, true
}

// Background returns the background color, or ok=false for the default.
func (s *State) Background() (types.Color, bool) {
	if s.bg == nil {
		return types.Color{}, false
	}
	return *s.bg, true
}

// Reset restores the default rendition.
func (s *State) Reset() {
	*s = State{}
}

// Apply interprets one SGR parameter list. Code 22 clears bold and faint
// together; they share the normal-intensity reset.
func (s *State) Apply(params []int) {
	for i := 0; i < len(params); i++ {
		code := params[i]

		switch code {
		case 0:
			s.Reset()

		case 1:
			s.effects[types.Bold] = true
		case 2:
			s.effects[types.Faint] = true
		case 3:
			s.effects[types.Italic] = true
		case 4:
			s.effects[types.Underline] = true
		case 5:
			s.effects[types.Blink] = true
		case 7:
			s.effects[types.Reverse] = true
		case 8:
			s.effects[types.Hidden] = true
		case 9:
			s.effects[types.Strike] = true

		case 22:
			s.effects[types.Bold] = false
			s.effects[types.Faint] = false
		case 23:
			s.effects[types.Italic] = false
		case 24:
			s.effects[types.Underline] = false
		case 25:
			s.effects[types.Blink] = false
		case 27:
			s.effects[types.Reverse] = false
		case 28:
			s.effects[types.Hidden] = false
		case 29:
			s.effects[types.Strike] = false

		case 30, 31, 32, 33, 34, 35, 36, 37:
			c := types.StandardColor(uint8(code - 30))
			s.fg = &c
		case 38:
			i += applyExtendedColor(&s.fg, params, i+1)
		case 39:
			s.fg = nil

		case 40, 41, 42, 43, 44, 45, 46, 47:
			c := types.StandardColor(uint8(code - 40))
			s.bg = &c
		case 48:
			i += applyExtendedColor(&s.bg, params, i+1)
		case 49:
			s.bg = nil

		case 90, 91, 92, 93, 94, 95, 96, 97:
			c := types.StandardColor(uint8(code - 90 + 8))
			s.fg = &c
		case 100, 101, 102, 103, 104, 105, 106, 107:
			c := types.StandardColor(uint8(code - 100 + 8))
			s.bg = &c
		}
	}
}

// applyExtendedColor handles the 38/48 sub-parameter forms and returns how
// many extra parameters were consumed.
func applyExtendedColor(dst **types.Color, params []int, start int) int {
	if start >= len(params) {
		return 0
	}

	switch params[start] {
	case 5: // ESC[38;5;n
		if start+1 < len(params) {
			c := types.Indexed(uint8(params[start+1]))
			*dst = &c
			return 2
		}
	case 2: // ESC[38;2;r;g;b
		if start+3 < len(params) {
			c := types.RGB(uint8(params[start+1]), uint8(params[start+2]), uint8(params[start+3]))
			*dst = &c
			return 4
		}
	}
	return 1
}

// Style converts the rendition into the fully specified style that
// produces it from the default rendition: active slots set, inactive
// slots reset.
func (s *State) Style() types.Style {
	res := types.Reset()
	for _, e := range types.AllEffects {
		if s.effects[e] {
			res = res.Add(e.Style())
		}
	}
	if s.fg != nil {
		res = res.Add(s.fg.Style())
	}
	if s.bg != nil {
		res = res.Add(s.bg.Style())
	}
	return res
}

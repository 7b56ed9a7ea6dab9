package types

import (
	"io"
	"strconv"
	"strings"
)

/////////////////////////////////////////////////////////////////////////////
// STYLE (the Ansi aggregate)
/////////////////////////////////////////////////////////////////////////////

// State is the tri-state of one attribute slot.
type State uint8

const (
	StateUnset State = iota
	StateSet
	StateReset
)

func (s State) String() string {
	switch s {
	case StateSet:
		return "set"
	case StateReset:
		return "reset"
	}
	return "unset"
}

// Style is an immutable combination of text effects, colors and a
// protection mask. Every operation returns a new value; values compare
// structurally with ==.
//
// The protection mask marks slots that a combined style must not override,
// including slots the style deliberately leaves unspecified.
type Style struct {
	effects effects
	colors  colors
	noAnsi  bool
	protect Attrs
}

// Styler is anything that can be coerced to a Style. Effect, Color and
// Style itself implement it.
type Styler interface {
	Style() Style
}

// Style returns the value itself, satisfying Styler.
func (s Style) Style() Style { return s }

// Empty is the style that specifies nothing and renders nothing.
func Empty() Style { return Style{} }

// Reset is the style with every slot explicitly reset. It renders the
// universal reset code.
func Reset() Style {
	return Style{effects: resetEffects(), colors: resetColors()}
}

// NoAnsi is the style that disables rendering entirely and absorbs any
// style combined with it.
func NoAnsi() Style { return Style{noAnsi: true} }

// Of combines any number of Stylers with Add, left to right.
func Of(parts ...Styler) Style {
	res := Empty()
	for _, p := range parts {
		res = res.Add(p.Style())
	}
	return res
}

func styleFromEffects(ef effects) Style { return Style{effects: ef} }
func styleFromColors(cs colors) Style   { return Style{colors: cs} }

func (s Style) IsNoAnsi() bool { return s.noAnsi }

func (s Style) IsEmpty() bool {
	return !s.noAnsi && s.effects.isEmpty() && s.colors.isEmpty() && s.protect.IsNone()
}

func (s Style) IsReset() bool {
	return !s.noAnsi && s.effects.isReset() && s.colors.isReset()
}

// IsOnly reports whether every slot is explicitly specified, which is what
// Only produces.
func (s Style) IsOnly() bool {
	return s.effects.attrs() == AttrsEffects && s.colors.attrs() == AttrsColors
}

// Attrs returns the selector of every specified slot.
func (s Style) Attrs() Attrs {
	return s.effects.attrs() | s.colors.attrs()
}

// Protected returns the protection mask.
func (s Style) Protected() Attrs { return s.protect }

// EffectState reports the tri-state of one effect slot.
func (s Style) EffectState(e Effect) State { return s.effects.state(e) }

// Foreground reports the foreground slot.
func (s Style) Foreground() (Color, State) {
	return s.colors.fg.color, State(s.colors.fg.state)
}

// Background reports the background slot.
func (s Style) Background() (Color, State) {
	return s.colors.bg.color, State(s.colors.bg.state)
}

// Add combines two styles: other's specified slots override self's except
// where self protects them. Slots protected in both keep self's state. The
// result carries the union of both protection masks. NoAnsi absorbs.
func (s Style) Add(other Style) Style {
	if s.noAnsi {
		return s
	}
	if other.noAnsi {
		return other
	}

	overlay := other.removeAttrs(s.protect)
	return Style{
		effects: s.effects.add(overlay.effects),
		colors:  s.colors.add(overlay.colors),
		protect: s.protect | other.protect,
	}
}

// Then layers other on top of self for display-time nesting. It behaves
// like Add, and additionally enforces other's protection of unspecified
// slots: a slot other protects but leaves unspecified is cleared from the
// result, so a nested style can refuse to inherit an ambient attribute.
// NoAnsi absorbs.
func (s Style) Then(other Style) Style {
	if s.noAnsi {
		return s
	}
	if other.noAnsi {
		return other
	}

	enforced := other.protect.Diff(s.protect).Diff(other.Attrs())
	return s.removeAttrs(enforced).Add(other)
}

// Remove clears from self every slot that other specifies, except slots
// self protects.
func (s Style) Remove(other Style) Style {
	if s.noAnsi {
		return s
	}
	return s.removeAttrs(other.Attrs().Diff(s.protect))
}

// removeAttrs clears the named slots back to unspecified, dropping their
// protection.
func (s Style) removeAttrs(attrs Attrs) Style {
	if s.noAnsi {
		return s
	}
	return Style{
		effects: s.effects.remove(attrs),
		colors:  s.colors.remove(attrs),
		protect: s.protect.Diff(attrs),
	}
}

// Filter keeps only the slots named by attrs.
func (s Style) Filter(attrs Attrs) Style {
	if s.noAnsi {
		return s
	}
	return Style{
		effects: s.effects.filter(attrs),
		colors:  s.colors.filter(attrs),
		protect: s.protect.Intersect(attrs),
	}
}

// Transition computes the minimal style whose rendering turns self's
// rendered state into other's. The result is unprotected.
//
// Transitioning out of NoAnsi renders nothing: prior output was suppressed
// and cannot be retroactively styled. Transitioning into NoAnsi undoes
// self. Transitioning to Reset from anything else short-circuits to the
// universal reset, which is cheaper than enumerating every slot.
func (s Style) Transition(to Style) Style {
	if s.noAnsi {
		return Empty()
	}
	if to.noAnsi {
		return s.Not().UnprotectAll()
	}
	if to.IsReset() && !s.IsReset() {
		return Reset()
	}
	return Style{
		effects: s.effects.transition(to.effects),
		colors:  s.colors.transition(to.colors),
	}
}

// Not yields the style that undoes self's set slots: set becomes reset,
// reset and unspecified become unspecified. Protection is kept for the
// slots that remain.
func (s Style) Not() Style {
	if s.noAnsi {
		return s
	}
	res := Style{
		effects: s.effects.not(),
		colors:  s.colors.not(),
	}
	res.protect = s.protect.Intersect(res.Attrs())
	return res
}

// Only makes every unspecified slot an explicit reset, so combining the
// result cannot silently inherit ambient attributes. The protection mask
// is unchanged.
func (s Style) Only() Style {
	if s.noAnsi {
		return s
	}
	return Style{
		effects: s.effects.only(),
		colors:  s.colors.only(),
		protect: s.protect,
	}
}

// Protect marks the named slots as protected.
func (s Style) Protect(attrs Attrs) Style {
	if s.noAnsi {
		return s
	}
	s.protect |= attrs
	return s
}

// Unprotect clears protection from the named slots.
func (s Style) Unprotect(attrs Attrs) Style {
	if s.noAnsi {
		return s
	}
	s.protect = s.protect.Diff(attrs)
	return s
}

// ProtectAll protects every slot, specified or not.
func (s Style) ProtectAll() Style { return s.Protect(AttrsAll) }

// UnprotectAll clears the whole protection mask.
func (s Style) UnprotectAll() Style { return s.Unprotect(AttrsAll) }

/////////////////////////////////////////////////////////////////////////////
// RENDERING
/////////////////////////////////////////////////////////////////////////////

// Codes returns the SGR parameters the style renders, in canonical order:
// resets before sets, effects before colors within each group. A
// fully-specified style collapses its resets into the universal 0.
func (s Style) Codes() []int {
	if s.noAnsi || (s.effects.isEmpty() && s.colors.isEmpty()) {
		return nil
	}
	if s.IsReset() {
		return []int{0}
	}

	var codes []int
	if s.IsOnly() {
		codes = append(codes, 0)
	} else {
		codes = s.effects.codes(codes, toggleReset)
		codes = s.colors.codes(codes, toggleReset)
	}
	codes = s.effects.codes(codes, toggleSet)
	codes = s.colors.codes(codes, toggleSet)
	return codes
}

// ANSI returns the escape sequence the style renders, or "" when the style
// addresses nothing.
func (s Style) ANSI() string {
	codes := s.Codes()
	if len(codes) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\x1b[")
	for i, code := range codes {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(code))
	}
	b.WriteByte('m')
	return b.String()
}

// WriteTo writes the escape sequence to w, propagating the sink's error.
func (s Style) WriteTo(w io.Writer) (int64, error) {
	seq := s.ANSI()
	if seq == "" {
		return 0, nil
	}
	n, err := io.WriteString(w, seq)
	return int64(n), err
}

func (s Style) String() string {
	if s.noAnsi {
		return "no-ansi"
	}

	var parts []string
	for _, e := range AllEffects {
		switch s.effects.state(e) {
		case StateSet:
			parts = append(parts, e.String())
		case StateReset:
			parts = append(parts, "!"+e.String())
		}
	}
	if d := s.colors.fg.describe("fg"); d != "" {
		parts = append(parts, d)
	}
	if d := s.colors.bg.describe("bg"); d != "" {
		parts = append(parts, d)
	}
	if !s.protect.IsNone() {
		parts = append(parts, "protect("+s.protect.String()+")")
	}
	if len(parts) == 0 {
		return "empty"
	}
	return "[" + strings.Join(parts, " ") + "]"
}

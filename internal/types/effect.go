package types

import "fmt"

/////////////////////////////////////////////////////////////////////////////
// EFFECT
/////////////////////////////////////////////////////////////////////////////

// Effect identifies one of the eight boolean text effects.
type Effect uint8

const (
	Bold Effect = iota
	Faint
	Italic
	Underline
	Blink
	Reverse
	Hidden
	Strike

	effectCount
)

// AllEffects lists every effect in canonical rendering order.
var AllEffects = []Effect{Bold, Faint, Italic, Underline, Blink, Reverse, Hidden, Strike}

func (e Effect) attr() Attrs {
	return AttrBold << e
}

// SetCode returns the SGR parameter that enables the effect.
func (e Effect) SetCode() int {
	switch e {
	case Bold:
		return 1
	case Faint:
		return 2
	case Italic:
		return 3
	case Underline:
		return 4
	case Blink:
		return 5
	case Reverse:
		return 7
	case Hidden:
		return 8
	case Strike:
		return 9
	}
	return 0
}

// ResetCode returns the SGR parameter that disables the effect.
// Bold and faint share code 22.
func (e Effect) ResetCode() int {
	switch e {
	case Bold, Faint:
		return 22
	default:
		return e.SetCode() + 20
	}
}

func (e Effect) String() string {
	switch e {
	case Bold:
		return "bold"
	case Faint:
		return "faint"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Blink:
		return "blink"
	case Reverse:
		return "reverse"
	case Hidden:
		return "hidden"
	case Strike:
		return "strike"
	}
	return fmt.Sprintf("Effect(%d)", uint8(e))
}

// Style creates a Style that enables this effect.
func (e Effect) Style() Style { return styleFromEffects(effectsFrom(e.attr(), toggleSet)) }

// Not creates a Style that explicitly resets this effect.
func (e Effect) Not() Style { return styleFromEffects(effectsFrom(e.attr(), toggleReset)) }

// Only creates a Style with this effect set and every other slot reset.
func (e Effect) Only() Style { return e.Style().Only() }

// Protected creates a Style with this effect set and protected.
func (e Effect) Protected() Style { return e.Style().Protect(e.attr()) }

/////////////////////////////////////////////////////////////////////////////
// EFFECTS (tri-state per slot)
/////////////////////////////////////////////////////////////////////////////

type toggle uint8

const (
	toggleSet toggle = iota
	toggleReset
)

// effects holds the tri-state of the eight effect slots as two disjoint
// selectors: slots in neither are unspecified.
type effects struct {
	set   Attrs
	reset Attrs
}

func effectsFrom(attrs Attrs, t toggle) effects {
	if t == toggleReset {
		return effects{reset: attrs}
	}
	return effects{set: attrs}
}

func resetEffects() effects { return effects{reset: AttrsEffects} }

func (ef effects) isEmpty() bool { return ef.set.IsNone() && ef.reset.IsNone() }
func (ef effects) isReset() bool { return ef.set.IsNone() && ef.reset == AttrsEffects }

// attrs returns the selector of every specified slot.
func (ef effects) attrs() Attrs { return ef.set | ef.reset }

// state reports the tri-state of one effect slot.
func (ef effects) state(e Effect) State {
	switch {
	case ef.set.Intersects(e.attr()):
		return StateSet
	case ef.reset.Intersects(e.attr()):
		return StateReset
	default:
		return StateUnset
	}
}

// add overrides self's slots with other's specified slots.
func (ef effects) add(other effects) effects {
	specified := other.attrs()
	return effects{
		set:   ef.set.Diff(specified) | other.set,
		reset: ef.reset.Diff(specified) | other.reset,
	}
}

// transition computes the minimal effects whose rendering turns ef's
// rendered state into to's. The bold/faint shared reset code means a reset
// emitted for one slot may satisfy, or clobber, the other; the four steps
// below account for that.
func (ef effects) transition(to effects) effects {
	// 1. The target's explicit resets not already covered by self's own
	// resets (including their overlap).
	newResets := to.reset.Diff(ef.reset.withOverlaps())
	// 2. Resets for self's set slots that the target does not re-set and
	// that step 1's overlap does not already cover.
	killSets := ef.set.Diff(to.set).Diff(newResets.withOverlaps())
	// 3. Re-emit target set slots knocked out as a side effect of 1 and 2.
	restore := to.set.Intersect(killSets.withOverlaps() | newResets.withOverlaps())
	set := to.set.Diff(ef.set) | restore
	reset := (newResets | killSets).noOverlaps()
	return newEffects(set, reset)
}

// newEffects enforces the mutual exclusion invariant between set and reset.
func newEffects(set, reset Attrs) effects {
	if set.Intersects(reset) {
		panic(fmt.Sprintf("effects: slots both set and reset: %s", set.Intersect(reset)))
	}
	return effects{set: set, reset: reset}
}

// not yields the effects that undo ef's set slots. Reset and unspecified
// slots become unspecified.
func (ef effects) not() effects {
	return effects{reset: ef.set}
}

// only makes every unspecified slot an explicit reset.
func (ef effects) only() effects {
	return effects{
		set:   ef.set,
		reset: ef.reset | (AttrsEffects &^ ef.attrs()),
	}
}

// remove clears the slots named by attrs back to unspecified.
func (ef effects) remove(attrs Attrs) effects {
	return effects{
		set:   ef.set.Diff(attrs),
		reset: ef.reset.Diff(attrs),
	}
}

// filter keeps only the slots named by attrs.
func (ef effects) filter(attrs Attrs) effects {
	return effects{
		set:   ef.set.Intersect(attrs),
		reset: ef.reset.Intersect(attrs),
	}
}

// codes appends the SGR parameters for one toggle in canonical slot order.
func (ef effects) codes(dst []int, t toggle) []int {
	attrs := ef.set
	if t == toggleReset {
		attrs = ef.reset.noOverlaps()
	}
	for _, e := range AllEffects {
		if !attrs.Intersects(e.attr()) {
			continue
		}
		if t == toggleReset {
			dst = append(dst, e.ResetCode())
		} else {
			dst = append(dst, e.SetCode())
		}
	}
	return dst
}

package types

import (
	"strings"
)

/////////////////////////////////////////////////////////////////////////////
// ATTRIBUTE SELECTOR
/////////////////////////////////////////////////////////////////////////////

// Attrs is a bitmask selecting an arbitrary combination of style attributes.
// It identifies which slots an operation addresses; it carries no values.
type Attrs uint16

const (
	AttrBold Attrs = 1 << iota
	AttrFaint
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrike
	AttrForeground
	AttrBackground

	attrEnd
)

const (
	AttrsNone    Attrs = 0
	AttrsEffects       = AttrBold | AttrFaint | AttrItalic | AttrUnderline |
		AttrBlink | AttrReverse | AttrHidden | AttrStrike
	AttrsColors = AttrForeground | AttrBackground
	AttrsAll    = AttrsEffects | AttrsColors
)

// The named attributes must fit the selector width; overflow here is a
// compile error. AttrsAll == attrEnd-1 is verified by tests.
const _ uint16 = uint16(attrEnd - 1)

func (a Attrs) Union(b Attrs) Attrs     { return a | b }
func (a Attrs) Intersect(b Attrs) Attrs { return a & b }
func (a Attrs) Diff(b Attrs) Attrs      { return a &^ b }
func (a Attrs) Complement() Attrs       { return AttrsAll &^ a }

// Contains reports whether every bit of b is present in a.
func (a Attrs) Contains(b Attrs) bool { return a&b == b }

// Intersects reports whether a and b share at least one bit.
func (a Attrs) Intersects(b Attrs) bool { return a&b != 0 }

func (a Attrs) IsNone() bool { return a == AttrsNone }
func (a Attrs) IsAll() bool  { return a == AttrsAll }

// withOverlaps widens the selector with attributes that share a reset code
// with a selected attribute. Bold and faint both reset via SGR 22.
func (a Attrs) withOverlaps() Attrs {
	if a.Intersects(AttrBold | AttrFaint) {
		return a | AttrBold | AttrFaint
	}
	return a
}

// noOverlaps drops attributes whose reset code is already emitted for
// another selected attribute, so 22 is never written twice.
func (a Attrs) noOverlaps() Attrs {
	if a.Contains(AttrBold | AttrFaint) {
		return a &^ AttrFaint
	}
	return a
}

var attrNames = []struct {
	attr Attrs
	name string
}{
	{AttrBold, "bold"},
	{AttrFaint, "faint"},
	{AttrItalic, "italic"},
	{AttrUnderline, "underline"},
	{AttrBlink, "blink"},
	{AttrReverse, "reverse"},
	{AttrHidden, "hidden"},
	{AttrStrike, "strike"},
	{AttrForeground, "fg"},
	{AttrBackground, "bg"},
}

func (a Attrs) String() string {
	if a.IsNone() {
		return "none"
	}

	var parts []string
	for _, n := range attrNames {
		if a.Intersects(n.attr) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

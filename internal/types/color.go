package types

import (
	"fmt"
)

/////////////////////////////////////////////////////////////////////////////
// COLOR
/////////////////////////////////////////////////////////////////////////////

type ColorType int

const (
	ColorStandard ColorType = iota // 0-15 (codes 30-37, 90-97, etc.)
	ColorIndexed                   // 0-255 (ESC[38;5;n)
	ColorRGB                       // RGB (ESC[38;2;r;g;b)
)

// Color is one concrete terminal color. The zero value is standard black.
type Color struct {
	Type    ColorType
	Index   uint8
	R, G, B uint8
}

// The 16 standard colors.
var (
	Black        = Color{Type: ColorStandard, Index: 0}
	Red          = Color{Type: ColorStandard, Index: 1}
	Green        = Color{Type: ColorStandard, Index: 2}
	Yellow       = Color{Type: ColorStandard, Index: 3}
	Blue         = Color{Type: ColorStandard, Index: 4}
	Purple       = Color{Type: ColorStandard, Index: 5}
	Cyan         = Color{Type: ColorStandard, Index: 6}
	White        = Color{Type: ColorStandard, Index: 7}
	BrightBlack  = Color{Type: ColorStandard, Index: 8}
	BrightRed    = Color{Type: ColorStandard, Index: 9}
	BrightGreen  = Color{Type: ColorStandard, Index: 10}
	BrightYellow = Color{Type: ColorStandard, Index: 11}
	BrightBlue   = Color{Type: ColorStandard, Index: 12}
	BrightPurple = Color{Type: ColorStandard, Index: 13}
	BrightCyan   = Color{Type: ColorStandard, Index: 14}
	BrightWhite  = Color{Type: ColorStandard, Index: 15}
)

// StandardColor returns the 4-bit color with the given index, 0 through
// 15, where 8 and up are the bright variants.
func StandardColor(n uint8) Color { return Color{Type: ColorStandard, Index: n & 0x0F} }

// Indexed creates an 8-bit palette color for 256-color terminals.
func Indexed(n uint8) Color { return Color{Type: ColorIndexed, Index: n} }

// RGB creates a 24-bit color as specified by ISO 8613-6.
func RGB(r, g, b uint8) Color { return Color{Type: ColorRGB, R: r, G: g, B: b} }

func (c Color) String() string {
	switch c.Type {
	case ColorStandard:
		return fmt.Sprintf("std:%d", c.Index)
	case ColorIndexed:
		return fmt.Sprintf("idx:%d", c.Index)
	case ColorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return "unknown"
}

// Style creates a Style with c as the foreground color.
func (c Color) Style() Style {
	return styleFromColors(colorsFromFg(colorSlot{state: slotSet, color: c}))
}

// Bg creates a Style with c as the background color.
func (c Color) Bg() Style {
	return styleFromColors(colorsFromBg(colorSlot{state: slotSet, color: c}))
}

// Only creates a Style with c as the foreground and every other slot reset.
func (c Color) Only() Style { return c.Style().Only() }

// Protected creates a Style with c as the foreground, protected.
func (c Color) Protected() Style { return c.Style().Protect(AttrForeground) }

// ColorReset represents the default-color code (SGR 39 foreground,
// 49 background).
type ColorReset struct{}

func (ColorReset) Style() Style {
	return styleFromColors(colorsFromFg(colorSlot{state: slotReset}))
}

func (ColorReset) Bg() Style {
	return styleFromColors(colorsFromBg(colorSlot{state: slotReset}))
}

// fgCodes appends the SGR parameters selecting c as foreground.
func (c Color) fgCodes(dst []int) []int {
	switch c.Type {
	case ColorIndexed:
		return append(dst, 38, 5, int(c.Index))
	case ColorRGB:
		return append(dst, 38, 2, int(c.R), int(c.G), int(c.B))
	default:
		if c.Index < 8 {
			return append(dst, 30+int(c.Index))
		}
		return append(dst, 90+int(c.Index)-8)
	}
}

// bgCodes appends the SGR parameters selecting c as background.
func (c Color) bgCodes(dst []int) []int {
	switch c.Type {
	case ColorIndexed:
		return append(dst, 48, 5, int(c.Index))
	case ColorRGB:
		return append(dst, 48, 2, int(c.R), int(c.G), int(c.B))
	default:
		if c.Index < 8 {
			return append(dst, 40+int(c.Index))
		}
		return append(dst, 100+int(c.Index)-8)
	}
}

/////////////////////////////////////////////////////////////////////////////
// COLOR SLOTS (tri-state fg/bg)
/////////////////////////////////////////////////////////////////////////////

type slotState uint8

const (
	slotUnset slotState = iota
	slotSet
	slotReset
)

type colorSlot struct {
	state slotState
	color Color
}

func (s colorSlot) not() colorSlot {
	if s.state == slotSet {
		return colorSlot{state: slotReset}
	}
	return colorSlot{}
}

// colors holds the foreground and background slots.
type colors struct {
	fg colorSlot
	bg colorSlot
}

func colorsFromFg(s colorSlot) colors { return colors{fg: s} }
func colorsFromBg(s colorSlot) colors { return colors{bg: s} }

func resetColors() colors {
	return colors{fg: colorSlot{state: slotReset}, bg: colorSlot{state: slotReset}}
}

func (cs colors) isEmpty() bool {
	return cs.fg.state == slotUnset && cs.bg.state == slotUnset
}

func (cs colors) isReset() bool {
	return cs.fg.state == slotReset && cs.bg.state == slotReset
}

func (cs colors) attrs() Attrs {
	var a Attrs
	if cs.fg.state != slotUnset {
		a |= AttrForeground
	}
	if cs.bg.state != slotUnset {
		a |= AttrBackground
	}
	return a
}

func (cs colors) add(other colors) colors {
	res := cs
	if other.fg.state != slotUnset {
		res.fg = other.fg
	}
	if other.bg.state != slotUnset {
		res.bg = other.bg
	}
	return res
}

// transition computes the minimal color change per slot: leaving a set slot
// behind emits its reset, a differing target emits the target, an equal
// target emits nothing.
func (cs colors) transition(to colors) colors {
	slot := func(from, target colorSlot) colorSlot {
		switch {
		case target.state == slotUnset:
			return from.not()
		case from == target:
			return colorSlot{}
		default:
			return target
		}
	}
	return colors{
		fg: slot(cs.fg, to.fg),
		bg: slot(cs.bg, to.bg),
	}
}

func (cs colors) not() colors {
	return colors{fg: cs.fg.not(), bg: cs.bg.not()}
}

func (cs colors) only() colors {
	res := cs
	if res.fg.state == slotUnset {
		res.fg = colorSlot{state: slotReset}
	}
	if res.bg.state == slotUnset {
		res.bg = colorSlot{state: slotReset}
	}
	return res
}

func (cs colors) remove(attrs Attrs) colors {
	res := cs
	if attrs.Intersects(AttrForeground) {
		res.fg = colorSlot{}
	}
	if attrs.Intersects(AttrBackground) {
		res.bg = colorSlot{}
	}
	return res
}

func (cs colors) filter(attrs Attrs) colors {
	res := colors{}
	if attrs.Intersects(AttrForeground) {
		res.fg = cs.fg
	}
	if attrs.Intersects(AttrBackground) {
		res.bg = cs.bg
	}
	return res
}

// codes appends the SGR parameters for one toggle, foreground before
// background.
func (cs colors) codes(dst []int, t toggle) []int {
	if t == toggleReset {
		if cs.fg.state == slotReset {
			dst = append(dst, 39)
		}
		if cs.bg.state == slotReset {
			dst = append(dst, 49)
		}
		return dst
	}
	if cs.fg.state == slotSet {
		dst = cs.fg.color.fgCodes(dst)
	}
	if cs.bg.state == slotSet {
		dst = cs.bg.color.bgCodes(dst)
	}
	return dst
}

func (s colorSlot) describe(which string) string {
	switch s.state {
	case slotSet:
		return which + ":" + s.color.String()
	case slotReset:
		return which + ":default"
	}
	return ""
}

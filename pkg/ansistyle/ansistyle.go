// Package ansistyle styles terminal text with ANSI escape codes through
// immutable, combinable style values.
//
// This package provides:
//   - Style values covering the eight common effects plus foreground and
//     background color in 4-bit, 8-bit and 24-bit forms
//   - A combination algebra with per-attribute protection
//   - Minimal transitions between styles, so nested regions emit only
//     the codes that actually change
//   - Writers that respect NO_COLOR, FORCE_COLOR and terminal detection
//
// Example usage:
//
//	import "ansistyle/pkg/ansistyle"
//
//	warn := ansistyle.Of(ansistyle.Bold.Style(), ansistyle.Yellow.Style())
//	fmt.Println(ansistyle.New(warn, "careful now"))
package ansistyle

import (
	"io"

	"ansistyle/internal/ansiio"
	"ansistyle/internal/styled"
	"ansistyle/internal/types"
)

// Type aliases for the public API
type (
	// Style is an immutable set of terminal attributes.
	Style = types.Style

	// Styler is anything coercible to a Style.
	Styler = types.Styler

	// Attrs selects attribute slots for filtering and protection.
	Attrs = types.Attrs

	// Effect is one of the eight text effects.
	Effect = types.Effect

	// Color is a foreground or background color value.
	Color = types.Color

	// ColorType distinguishes 4-bit, 8-bit and 24-bit colors.
	ColorType = types.ColorType

	// State is the tri-state of one attribute slot.
	State = types.State

	// Context tracks nested styles on one output stream.
	Context = styled.Context

	// Text is a string paired with its style.
	Text = styled.Text

	// Writer is a styled output sink with a switchable base style.
	Writer = ansiio.Writer
)

// Effects
const (
	Bold      = types.Bold
	Faint     = types.Faint
	Italic    = types.Italic
	Underline = types.Underline
	Blink     = types.Blink
	Reverse   = types.Reverse
	Hidden    = types.Hidden
	Strike    = types.Strike
)

// Attribute selectors
const (
	AttrBold       = types.AttrBold
	AttrFaint      = types.AttrFaint
	AttrItalic     = types.AttrItalic
	AttrUnderline  = types.AttrUnderline
	AttrBlink      = types.AttrBlink
	AttrReverse    = types.AttrReverse
	AttrHidden     = types.AttrHidden
	AttrStrike     = types.AttrStrike
	AttrForeground = types.AttrForeground
	AttrBackground = types.AttrBackground

	AttrsNone    = types.AttrsNone
	AttrsEffects = types.AttrsEffects
	AttrsColors  = types.AttrsColors
	AttrsAll     = types.AttrsAll
)

// Slot states
const (
	StateUnset = types.StateUnset
	StateSet   = types.StateSet
	StateReset = types.StateReset
)

// Standard colors
var (
	Black        = types.Black
	Red          = types.Red
	Green        = types.Green
	Yellow       = types.Yellow
	Blue         = types.Blue
	Purple       = types.Purple
	Cyan         = types.Cyan
	White        = types.White
	BrightBlack  = types.BrightBlack
	BrightRed    = types.BrightRed
	BrightGreen  = types.BrightGreen
	BrightYellow = types.BrightYellow
	BrightBlue   = types.BrightBlue
	BrightPurple = types.BrightPurple
	BrightCyan   = types.BrightCyan
	BrightWhite  = types.BrightWhite
)

// Empty returns the style that specifies nothing.
func Empty() Style { return types.Empty() }

// Reset returns the style that resets every attribute.
func Reset() Style { return types.Reset() }

// NoAnsi returns the style that suppresses escape output entirely.
func NoAnsi() Style { return types.NoAnsi() }

// Of combines any number of styles left to right.
func Of(parts ...Styler) Style { return types.Of(parts...) }

// Indexed returns an 8-bit palette color.
func Indexed(n uint8) Color { return types.Indexed(n) }

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color { return types.RGB(r, g, b) }

// New pairs a style with text for rendering.
func New(style Styler, body string) Text { return styled.New(style, body) }

// Newf pairs a style with formatted text.
func Newf(style Styler, format string, args ...any) Text {
	return styled.Newf(style, format, args...)
}

// NewWriter wraps w with automatic style detection.
func NewWriter(w io.Writer) *Writer { return ansiio.NewWriter(w) }

// Stdout returns the shared styled writer for standard output.
func Stdout() *Writer { return ansiio.Stdout() }

// Stderr returns the shared styled writer for standard error.
func Stderr() *Writer { return ansiio.Stderr() }

// Preferred reports whether styled output is wanted on w.
func Preferred(w io.Writer) bool { return ansiio.Preferred(w) }

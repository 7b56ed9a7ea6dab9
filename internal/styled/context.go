// Package styled renders text through a stack of nested styles, emitting
// only the escape codes needed to move between adjacent styles.
package styled

import (
	"io"

	"ansistyle/internal/types"
)

// Context tracks the style currently in effect on an output stream. The
// zero value starts from the terminal's default rendition.
//
// A Context is not safe for concurrent use; give each stream its own.
type Context struct {
	current types.Style
}

// Current returns the style in effect. Inside Styled this is the merged,
// fully specified style of the whole enclosing stack.
func (c *Context) Current() types.Style { return c.current }

// Styled runs fn with style layered over the enclosing styles. It writes
// the transition into the merged style before fn and the transition back
// after, so sibling and nested regions never repeat codes they inherit.
//
// The context is restored even when fn fails, but the closing codes are
// not written in that case: the stream is already suspect and another
// write could mask the original error.
func (c *Context) Styled(w io.Writer, style types.Styler, fn func(io.Writer) error) error {
	prev := c.current
	next := prev.Then(style.Style())

	if _, err := prev.Transition(next).WriteTo(w); err != nil {
		return err
	}

	// Storing the fully specified form makes later transitions
	// independent of slots the stack never mentioned.
	c.current = next.Only()
	defer func() { c.current = prev }()

	if err := fn(w); err != nil {
		return err
	}

	_, err := c.current.Transition(prev).WriteTo(w)
	return err
}

// Print writes s styled, a convenience over Styled for plain strings.
func (c *Context) Print(w io.Writer, style types.Styler, s string) error {
	return c.Styled(w, style, func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

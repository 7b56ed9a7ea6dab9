package styled

import (
	"fmt"
	"strings"

	"ansistyle/internal/types"
)

// Text pairs a string with the style it should be rendered in. It is a
// value type; compose nested fragments with Join or render inside a
// Context for minimal transitions.
type Text struct {
	Style types.Style
	Body  string
}

// New builds a styled text fragment.
func New(style types.Styler, body string) Text {
	return Text{Style: style.Style(), Body: body}
}

// Newf builds a styled fragment from a format string.
func Newf(style types.Styler, format string, args ...any) Text {
	return Text{Style: style.Style(), Body: fmt.Sprintf(format, args...)}
}

// Render writes the fragment against the terminal's default rendition:
// style codes, body, then the codes undoing the style.
func (t Text) Render() string {
	var b strings.Builder
	ctx := &Context{}
	// strings.Builder never fails.
	_ = ctx.Print(&b, t.Style, t.Body)
	return b.String()
}

// RenderContext writes the fragment relative to the styles already in
// effect in ctx.
func (t Text) RenderContext(ctx *Context) string {
	var b strings.Builder
	_ = ctx.Print(&b, t.Style, t.Body)
	return b.String()
}

// String renders against the default rendition, so fragments drop
// straight into fmt verbs.
func (t Text) String() string { return t.Render() }

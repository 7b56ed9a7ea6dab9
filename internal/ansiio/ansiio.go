// Package ansiio decides whether a stream should carry escape codes and
// wraps sinks so styled output can be switched off in one place.
package ansiio

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"ansistyle/internal/styled"
	"ansistyle/internal/types"
)

// fdWriter is what os.File and most tty wrappers expose.
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// Preferred reports whether styled output is wanted on w, honoring the
// conventional environment switches before falling back to a terminal
// check. FORCE_COLOR and CLICOLOR_FORCE turn styling on, NO_COLOR turns
// it off, and otherwise styling is on exactly when w is a terminal.
func Preferred(w io.Writer) bool {
	if os.Getenv("FORCE_COLOR") != "" || os.Getenv("CLICOLOR_FORCE") != "" {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f, ok := w.(fdWriter); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// BaseStyle returns the style every styled write should be layered onto
// for w: NoAnsi when styling is unwanted, Empty otherwise.
func BaseStyle(w io.Writer) types.Style {
	if Preferred(w) {
		return types.Empty()
	}
	return types.NoAnsi()
}

// Writer is an output sink with a switchable base style. Styled writes
// are layered onto the base, so flipping it to NoAnsi silences styling
// for every caller sharing the writer.
//
// Writer is safe for concurrent use; each styled write is atomic with
// respect to the base style.
type Writer struct {
	mu   sync.Mutex
	w    io.Writer
	base types.Style
	ctx  styled.Context
}

// NewWriter wraps w, choosing the base style with BaseStyle.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, base: BaseStyle(w)}
}

// Style returns the current base style.
func (w *Writer) Style() types.Style {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.base
}

// SetStyle replaces the base style.
func (w *Writer) SetStyle(s types.Styler) {
	w.mu.Lock()
	w.base = s.Style()
	w.mu.Unlock()
}

// NoAnsi disables styling on the writer.
func (w *Writer) NoAnsi() { w.SetStyle(types.NoAnsi()) }

// AllAnsi enables styling regardless of the sink.
func (w *Writer) AllAnsi() { w.SetStyle(types.Empty()) }

// AutoStyle re-derives the base style from the sink and environment.
func (w *Writer) AutoStyle() {
	w.mu.Lock()
	w.base = BaseStyle(w.w)
	w.mu.Unlock()
}

// Write passes unstyled bytes straight through.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}

// Printed writes body under style, layered onto the base style. When the
// base is NoAnsi the body comes out bare.
func (w *Writer) Printed(style types.Styler, body string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ctx.Print(w.w, w.base.Then(style.Style()), body)
}

// Styled runs fn with style in effect on the writer. fn receives the
// nesting context and the raw sink; nested regions go through ctx, not
// back through the Writer, which stays locked for the whole call.
func (w *Writer) Styled(style types.Styler, fn func(ctx *styled.Context, w io.Writer) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ctx.Styled(w.w, w.base.Then(style.Style()), func(sink io.Writer) error {
		return fn(&w.ctx, sink)
	})
}

var (
	stdoutOnce sync.Once
	stdout     *Writer
	stderrOnce sync.Once
	stderr     *Writer
)

// Stdout returns the process-wide styled writer for standard output.
func Stdout() *Writer {
	stdoutOnce.Do(func() { stdout = NewWriter(os.Stdout) })
	return stdout
}

// Stderr returns the process-wide styled writer for standard error.
func Stderr() *Writer {
	stderrOnce.Do(func() { stderr = NewWriter(os.Stderr) })
	return stderr
}

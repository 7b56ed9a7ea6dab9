package styled

import (
	"errors"
	"io"
	"strings"
	"testing"

	"ansistyle/internal/types"
)

func TestStyledNesting(t *testing.T) {
	var b strings.Builder
	ctx := &Context{}

	err := ctx.Styled(&b, types.Bold.Style(), func(w io.Writer) error {
		if _, err := io.WriteString(w, "bold "); err != nil {
			return err
		}
		if err := ctx.Print(w, types.Underline.Style(), "both"); err != nil {
			return err
		}
		_, err := io.WriteString(w, " bold")
		return err
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The inner region only touches underline; leaving it only undoes
	// underline, and leaving the outer region only undoes bold.
	expected := "\x1b[1mbold \x1b[4mboth\x1b[24m bold\x1b[22m"
	if got := b.String(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestStyledIsolatedInner(t *testing.T) {
	var b strings.Builder
	ctx := &Context{}

	// The inner style specifies every slot, so entering it drops the
	// ambient blue and leaving it restores the color.
	err := ctx.Styled(&b, types.Blue.Style(), func(w io.Writer) error {
		if _, err := io.WriteString(w, "blue "); err != nil {
			return err
		}
		if err := ctx.Print(w, types.Italic.Only(), "italic"); err != nil {
			return err
		}
		_, err := io.WriteString(w, " blue")
		return err
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "\x1b[34mblue \x1b[39;3mitalic\x1b[23;34m blue\x1b[39m"
	if got := b.String(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestStyledSameStyleNested(t *testing.T) {
	var b strings.Builder
	ctx := &Context{}

	// Entering a region with an attribute already in effect emits nothing.
	err := ctx.Styled(&b, types.Bold.Style(), func(w io.Writer) error {
		return ctx.Print(w, types.Bold.Style(), "still bold")
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := b.String(); got != "\x1b[1mstill bold\x1b[22m" {
		t.Errorf("Expected no repeated codes, got %q", got)
	}
}

func TestStyledNoAnsi(t *testing.T) {
	var b strings.Builder
	ctx := &Context{}

	err := ctx.Styled(&b, types.NoAnsi(), func(w io.Writer) error {
		return ctx.Print(w, types.Bold.Style(), "plain")
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := b.String(); got != "plain" {
		t.Errorf("Expected bare text, got %q", got)
	}
}

func TestStyledProtectedOuterSuppressesInner(t *testing.T) {
	var b strings.Builder
	ctx := &Context{}

	err := ctx.Styled(&b, types.Blue.Style().ProtectAll(), func(w io.Writer) error {
		if _, err := io.WriteString(w, "blue "); err != nil {
			return err
		}
		if err := ctx.Print(w, types.Red.Style(), "still blue"); err != nil {
			return err
		}
		_, err := io.WriteString(w, " blue")
		return err
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := b.String()
	if strings.Contains(got, "31") {
		t.Errorf("Expected red codes suppressed by protection, got %q", got)
	}
	expected := "\x1b[34mblue still blue blue\x1b[39m"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestStyledErrorSkipsClosing(t *testing.T) {
	var b strings.Builder
	ctx := &Context{}
	boom := errors.New("boom")

	err := ctx.Styled(&b, types.Bold.Style(), func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected the callback error, got %v", err)
	}

	if got := b.String(); got != "\x1b[1mpartial" {
		t.Errorf("Expected no closing codes after error, got %q", got)
	}
	if !ctx.Current().IsEmpty() {
		t.Errorf("Expected context restored after error, got %v", ctx.Current())
	}
}

type failWriter struct{ err error }

func (f *failWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestStyledWriterError(t *testing.T) {
	ctx := &Context{}
	sink := &failWriter{err: errors.New("sink closed")}

	err := ctx.Styled(sink, types.Bold.Style(), func(w io.Writer) error {
		t.Fatalf("Callback must not run when the opening write fails")
		return nil
	})
	if err == nil || !strings.Contains(err.Error(), "sink closed") {
		t.Errorf("Expected the sink error, got %v", err)
	}
}

func TestTextRender(t *testing.T) {
	tests := []struct {
		name     string
		text     Text
		expected string
	}{
		{"Bold", New(types.Bold, "hi"), "\x1b[1mhi\x1b[22m"},
		{"BoldRed", New(types.Of(types.Bold, types.Red), "hi"), "\x1b[1;31mhi\x1b[22;39m"},
		{"Empty", New(types.Empty(), "hi"), "hi"},
		{"NoAnsi", New(types.NoAnsi(), "hi"), "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.Render(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
			if got := tt.text.String(); got != tt.expected {
				t.Errorf("Expected String to match Render, got %q", got)
			}
		})
	}
}

func TestTextRenderContext(t *testing.T) {
	var b strings.Builder
	ctx := &Context{}

	err := ctx.Styled(&b, types.Bold.Style(), func(w io.Writer) error {
		_, err := io.WriteString(w, New(types.Red, "warm").RenderContext(ctx))
		return err
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := b.String(); got != "\x1b[1m\x1b[31mwarm\x1b[39m\x1b[22m" {
		t.Errorf("Unexpected rendering: %q", got)
	}
}

package ansiio

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// WithEncoding returns a writer that transcodes UTF-8 into enc before the
// bytes reach w. Escape sequences are plain ASCII and survive any of the
// single-byte charmaps unchanged.
//
// Close flushes the transcoder; it does not close w.
func WithEncoding(w io.Writer, enc encoding.Encoding) io.WriteCloser {
	return transform.NewWriter(w, enc.NewEncoder())
}

// WithCP437 transcodes for DOS-era terminals and ANSI art viewers, which
// expect code page 437.
func WithCP437(w io.Writer) io.WriteCloser {
	return WithEncoding(w, charmap.CodePage437)
}

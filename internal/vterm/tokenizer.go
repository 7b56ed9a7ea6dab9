package vterm

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// Tokenizer splits a byte stream into text runs, SGR sequences and the
// control characters in between. Sequences other than CSI are kept as
// opaque escape tokens so the caller can skip them.
type Tokenizer struct {
	input []byte
	pos   int
}

func NewTokenizer(input []byte) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokenize consumes the whole input.
func (t *Tokenizer) Tokenize() []Token {
	var tokens []Token
	for t.pos < len(t.input) {
		tokens = append(tokens, t.nextToken())
	}
	return tokens
}

func (t *Tokenizer) nextToken() Token {
	c := t.input[t.pos]

	// C0 (0x00-0x1F)
	if c < 0x20 {
		if c == 0x1B {
			return t.parseEscape(t.pos)
		}
		t.pos++
		return Token{Type: TokenC0, Pos: t.pos - 1, Raw: string(c), C0: c}
	}

	return t.parseText(t.pos)
}

func (t *Tokenizer) parseEscape(start int) Token {
	t.pos++

	if t.pos < len(t.input) && t.input[t.pos] == '[' {
		t.pos++
		return t.parseCSI(start)
	}

	// ESC c, ESC 7, charset selectors and the rest: opaque
	if t.pos < len(t.input) {
		next := t.input[t.pos]
		t.pos++
		if (next == '(' || next == ')' || next == '#') && t.pos < len(t.input) {
			t.pos++
		}
	}
	return Token{Type: TokenEscape, Pos: start, Raw: string(t.input[start:t.pos])}
}

func (t *Tokenizer) parseCSI(start int) Token {
	params := t.collectParams()

	if t.pos >= len(t.input) {
		return Token{Type: TokenCSI, Pos: start, Raw: string(t.input[start:t.pos]), Params: params}
	}

	final := t.input[t.pos]
	t.pos++

	token := Token{
		Type:   TokenCSI,
		Pos:    start,
		Raw:    string(t.input[start:t.pos]),
		Params: params,
		Final:  final,
	}
	if final == 'm' {
		token.Type = TokenSGR
		if len(token.Params) == 0 {
			// CSI m is CSI 0 m
			token.Params = []int{0}
		}
	}
	return token
}

// collectParams reads the numeric parameters up to the final byte. Empty
// positions default to 0, matching how terminals treat CSI ;m.
func (t *Tokenizer) collectParams() []int {
	var params []int
	var current bytes.Buffer
	seen := false

	for t.pos < len(t.input) {
		b := t.input[t.pos]

		switch {
		case b >= '0' && b <= '9':
			current.WriteByte(b)
			seen = true
			t.pos++
		case b == ';' || b == ':':
			params = append(params, atoiDefault(current.String(), 0))
			current.Reset()
			seen = true
			t.pos++
		case b == '?' || b == '>' || b == '!' || b == '$' || b == '\'' || b == '"' || b == ' ':
			// intermediate bytes, ignored
			t.pos++
		default:
			if seen {
				params = append(params, atoiDefault(current.String(), 0))
			}
			return params
		}
	}

	if seen {
		params = append(params, atoiDefault(current.String(), 0))
	}
	return params
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func (t *Tokenizer) parseText(start int) Token {
	for t.pos < len(t.input) {
		if t.input[t.pos] < 0x20 {
			break
		}
		_, size := utf8.DecodeRune(t.input[t.pos:])
		t.pos += size
	}

	text := string(t.input[start:t.pos])
	return Token{Type: TokenText, Pos: start, Raw: text, Value: text}
}

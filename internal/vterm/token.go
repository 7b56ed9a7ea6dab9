// Package vterm parses escape-coded output back into attributes and
// replays it onto a simulated screen, for verifying rendered sequences.
package vterm

type TokenType int

const (
	TokenText TokenType = iota
	TokenSGR
	TokenCSI
	TokenC0
	TokenEscape
)

func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "text"
	case TokenSGR:
		return "sgr"
	case TokenCSI:
		return "csi"
	case TokenC0:
		return "c0"
	case TokenEscape:
		return "escape"
	}
	return "unknown"
}

type Token struct {
	Type   TokenType
	Pos    int
	Raw    string
	Value  string
	Params []int
	Final  byte
	C0     byte
}

package vterm

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"ansistyle/internal/types"
)

// Terminal replays escape-coded output onto a tcell simulation screen,
// interpreting SGR sequences with State and a small cursor model. It
// exists to check what a real terminal would show for a rendered stream.
type Terminal struct {
	screen  tcell.SimulationScreen
	state   State
	cursorX int
	cursorY int
	width   int
	height  int
}

func NewTerminal(width, height int) (*Terminal, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init simulation screen: %w", err)
	}
	screen.SetSize(width, height)

	return &Terminal{
		screen: screen,
		width:  width,
		height: height,
	}, nil
}

// Close releases the simulation screen.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// State returns the rendition currently in effect.
func (t *Terminal) State() *State { return &t.state }

// Feed tokenizes data and applies it to the screen.
func (t *Terminal) Feed(data []byte) {
	for _, token := range NewTokenizer(data).Tokenize() {
		t.applyToken(token)
	}
	t.screen.Show()
}

func (t *Terminal) applyToken(token Token) {
	switch token.Type {
	case TokenText:
		t.writeText(token.Value)
	case TokenSGR:
		t.state.Apply(token.Params)
	case TokenC0:
		t.handleC0(token.C0)
	}
	// Non-SGR CSI and bare escapes are display commands this model
	// does not need; skip them.
}

func (t *Terminal) writeText(text string) {
	style := t.tcellStyle()
	for _, r := range text {
		if t.cursorX >= t.width {
			t.cursorX = 0
			t.cursorY++
			if t.cursorY >= t.height {
				t.cursorY = t.height - 1
			}
		}
		t.screen.SetContent(t.cursorX, t.cursorY, r, nil, style)
		t.cursorX++
	}
}

func (t *Terminal) handleC0(code byte) {
	switch code {
	case 0x08: // BS
		if t.cursorX > 0 {
			t.cursorX--
		}
	case 0x09: // TAB
		t.cursorX = ((t.cursorX / 8) + 1) * 8
		if t.cursorX >= t.width {
			t.cursorX = 0
			t.cursorY++
		}
	case 0x0A: // LF
		t.cursorY++
		if t.cursorY >= t.height {
			t.cursorY = t.height - 1
		}
	case 0x0D: // CR
		t.cursorX = 0
	}
}

// CellAt returns the rune and style at a screen position.
func (t *Terminal) CellAt(x, y int) (rune, tcell.Style) {
	mainc, _, style, _ := t.screen.GetContent(x, y)
	return mainc, style
}

// Line returns the text of one row, trailing blanks trimmed.
func (t *Terminal) Line(y int) string {
	var runes []rune
	for x := 0; x < t.width; x++ {
		mainc, _, _, _ := t.screen.GetContent(x, y)
		runes = append(runes, mainc)
	}
	end := len(runes)
	for end > 0 && (runes[end-1] == ' ' || runes[end-1] == 0) {
		end--
	}
	return string(runes[:end])
}

func (t *Terminal) tcellStyle() tcell.Style {
	style := tcell.StyleDefault.
		Bold(t.state.Effect(types.Bold)).
		Dim(t.state.Effect(types.Faint)).
		Italic(t.state.Effect(types.Italic)).
		Underline(t.state.Effect(types.Underline)).
		Blink(t.state.Effect(types.Blink)).
		Reverse(t.state.Effect(types.Reverse)).
		StrikeThrough(t.state.Effect(types.Strike))

	if c, ok := t.state.Foreground(); ok {
		style = style.Foreground(tcellColor(c))
	}
	if c, ok := t.state.Background(); ok {
		style = style.Background(tcellColor(c))
	}
	return style
}

func tcellColor(c types.Color) tcell.Color {
	switch c.Type {
	case types.ColorStandard, types.ColorIndexed:
		return tcell.PaletteColor(int(c.Index))
	case types.ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorDefault
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"ansistyle/internal/ansiio"
	"ansistyle/internal/styled"
	"ansistyle/internal/types"
	"ansistyle/internal/vterm"
)

type cli struct {
	NoColor    bool `help:"Disable styled output." short:"n"`
	ForceColor bool `help:"Style output even when stdout is not a terminal." short:"f"`

	Demo    demoCmd    `cmd:"" default:"1" help:"Show the available effects and colors."`
	Inspect inspectCmd `cmd:"" help:"Tokenize an escape-coded file and describe its sequences."`
}

type demoCmd struct{}

func (d *demoCmd) Run(out *ansiio.Writer) error {
	effects := []struct {
		name  string
		style types.Styler
	}{
		{"bold", types.Bold},
		{"faint", types.Faint},
		{"italic", types.Italic},
		{"underline", types.Underline},
		{"blink", types.Blink},
		{"reverse", types.Reverse},
		{"hidden", types.Hidden},
		{"strike", types.Strike},
	}

	for _, e := range effects {
		if err := out.Printed(e.style, e.name); err != nil {
			return err
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}

	colors := []types.Color{
		types.Black, types.Red, types.Green, types.Yellow,
		types.Blue, types.Purple, types.Cyan, types.White,
		types.BrightBlack, types.BrightRed, types.BrightGreen, types.BrightYellow,
		types.BrightBlue, types.BrightPurple, types.BrightCyan, types.BrightWhite,
	}

	for _, c := range colors {
		if err := out.Printed(c, c.String()); err != nil {
			return err
		}
		if _, err := io.WriteString(out, "  "); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return err
	}

	// Nesting sample: the inner region changes only its own slots.
	return out.Styled(types.Bold, func(ctx *styled.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "bold "); err != nil {
			return err
		}
		if err := ctx.Print(w, types.Red, "bold and red"); err != nil {
			return err
		}
		_, err := io.WriteString(w, " bold again\n")
		return err
	})
}

type inspectCmd struct {
	File string `arg:"" optional:"" help:"Input file, stdin when omitted." type:"existingfile"`
}

func (c *inspectCmd) Run() error {
	data, err := c.readInput()
	if err != nil {
		return err
	}

	var state vterm.State
	for _, token := range vterm.NewTokenizer(data).Tokenize() {
		switch token.Type {
		case vterm.TokenSGR:
			state.Apply(token.Params)
			fmt.Printf("%6d  sgr    %v -> %s\n", token.Pos, token.Params, state.Style())
		case vterm.TokenText:
			fmt.Printf("%6d  text   %q\n", token.Pos, token.Value)
		case vterm.TokenCSI:
			fmt.Printf("%6d  csi    %q\n", token.Pos, token.Raw)
		case vterm.TokenC0:
			fmt.Printf("%6d  c0     0x%02X\n", token.Pos, token.C0)
		case vterm.TokenEscape:
			fmt.Printf("%6d  escape %q\n", token.Pos, token.Raw)
		}
	}
	return nil
}

func (c *inspectCmd) readInput() ([]byte, error) {
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return data, nil
	}

	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat stdin: %w", err)
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("no input file and stdin is a terminal")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("ansistyle"),
		kong.Description("Terminal text styling with minimal escape sequences."),
	)

	out := ansiio.Stdout()
	switch {
	case args.NoColor:
		out.NoAnsi()
	case args.ForceColor:
		out.AllAnsi()
	}

	ctx.FatalIfErrorf(ctx.Run(out))
}

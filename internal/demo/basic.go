package demo

import (
	"context"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"

	"pkt.systems/efitui/internal/tui"
	"pkt.systems/pslog"
)

// Basic greets in a bordered status box and cycles the greeting color each
// time Down is pressed. q quits.
type Basic struct {
	term   *tui.Terminal
	input  EventReader
	logger pslog.Logger
	style  uv.Style
}

// NewBasic returns the demo with a white on black greeting.
func NewBasic(opts Options) *Basic {
	return &Basic{
		term:   opts.Terminal,
		input:  opts.Input,
		logger: opts.logger("basic"),
		style:  uv.Style{Fg: ansi.BrightWhite, Bg: ansi.Black},
	}
}

// Style returns the current greeting style.
func (b *Basic) Style() uv.Style {
	return b.style
}

// RotateStyle advances the greeting color White, Red, Blue, Green, Yellow
// and back to White.
func (b *Basic) RotateStyle() {
	switch b.style.Fg {
	case ansi.BrightWhite:
		b.style.Fg = ansi.Red
	case ansi.Red:
		b.style.Fg = ansi.Blue
	case ansi.Blue:
		b.style.Fg = ansi.Green
	case ansi.Green:
		b.style.Fg = ansi.Yellow
	default:
		b.style.Fg = ansi.BrightWhite
	}
}

// Render draws the status box over the whole frame.
func (b *Basic) Render(f *tui.Frame) {
	status := &tui.Paragraph{
		Lines: []tui.Line{
			tui.Styled("Hello, UEFI!", b.style),
			tui.Raw("Press 'q' to exit."),
			tui.Raw("Press DOWN to do something interesting!"),
		},
		Align: tui.AlignCenter,
		Block: &tui.Block{Title: "Status"},
	}
	f.Render(status, f.Area)
}

// Run clears the console once, then draws and waits for a key until q.
func (b *Basic) Run(ctx context.Context) error {
	if err := b.term.Clear(); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.term.Draw(b.Render); err != nil {
			return err
		}
		key, ok, err := readKey(b.input)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		switch {
		case key.MatchString("q"):
			b.logger.Debug("quit")
			return nil
		case key.MatchString("down"):
			b.RotateStyle()
			b.logger.Debug("style rotated", "fg", b.style.Fg)
		}
	}
}

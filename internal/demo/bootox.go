package demo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"

	"pkt.systems/efitui/internal/tui"
	"pkt.systems/pslog"
)

// ErrNoOptions is returned by ShowMenu when there is nothing to choose.
var ErrNoOptions = errors.New("menu has no options")

// StatusRows is the height of the bootox status bar.
const StatusRows = 3

// BootoxMenu lists the entries RunBootox offers.
var BootoxMenu = []string{"Boot default entry", "Show console size", "Exit"}

// Bootox is a boot-menu style UI: a status bar at the bottom, an output pane
// on the right and a menu on the left while one is shown.
type Bootox struct {
	term   *tui.Terminal
	input  EventReader
	logger pslog.Logger

	status string
	output strings.Builder
	menu   *tui.List
}

// NewBootox returns the UI with its welcome status.
func NewBootox(opts Options) *Bootox {
	return &Bootox{
		term:   opts.Terminal,
		input:  opts.Input,
		logger: opts.logger("bootox"),
		status: "Welcome to bootox!",
	}
}

// Status returns the status bar text.
func (b *Bootox) Status() string {
	return b.status
}

// Output returns everything written with OutputLine.
func (b *Bootox) Output() string {
	return b.output.String()
}

// Clear clears the console.
func (b *Bootox) Clear() error {
	return b.term.Clear()
}

// Greet clears the console and waits for Enter.
func (b *Bootox) Greet(ctx context.Context) error {
	if err := b.Clear(); err != nil {
		return err
	}
	if err := b.UpdateStatus("Welcome! Press ENTER to start."); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		key, ok, err := readKey(b.input)
		if err != nil {
			return err
		}
		if ok && key.MatchString("enter") {
			return nil
		}
	}
}

// UpdateStatus replaces the status text and redraws.
func (b *Bootox) UpdateStatus(status string) error {
	b.status = status
	return b.flush()
}

// ShowMenu shows options with the first one selected and returns the index
// chosen with Enter. Up and Down move the selection.
func (b *Bootox) ShowMenu(ctx context.Context, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}
	b.menu = tui.NewList(options...)
	b.menu.Style = uv.Style{Fg: ansi.White, Bg: ansi.Black}
	b.menu.HighlightStyle = uv.Style{Attrs: uv.AttrReverse}
	b.menu.HighlightSymbol = "> "
	b.menu.Block = &tui.Block{Title: "Menu"}
	b.menu.SelectFirst()
	defer func() { b.menu = nil }()

	if err := b.flush(); err != nil {
		return 0, err
	}
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		key, ok, err := readKey(b.input)
		if err != nil {
			return 0, err
		}
		if ok {
			switch {
			case key.MatchString("up"):
				b.menu.SelectPrevious()
			case key.MatchString("down"):
				b.menu.SelectNext()
			case key.MatchString("enter"):
				choice := max(b.menu.Selected, 0)
				b.menu = nil
				b.logger.Debug("menu choice", "index", choice, "entry", options[choice])
				return choice, b.flush()
			}
		}
		if err := b.flush(); err != nil {
			return 0, err
		}
	}
}

// OutputLine appends a line to the output pane and redraws.
func (b *Bootox) OutputLine(line string) error {
	b.output.WriteString(line)
	b.output.WriteString("\r\n")
	return b.flush()
}

// WaitForKeypress blocks until a key is read.
func (b *Bootox) WaitForKeypress() error {
	_, _, err := readKey(b.input)
	return err
}

// Render lays out the status bar, output pane and menu.
func (b *Bootox) Render(f *tui.Frame) {
	upper, statusArea := uv.SplitVertical(f.Area, uv.Fixed(max(f.Area.Dy()-StatusRows, 0)))
	menuArea, outputArea := uv.SplitHorizontal(upper, uv.Percent(50))

	if b.menu != nil {
		f.Render(b.menu, menuArea)
	}
	f.Render(&tui.Paragraph{
		Lines: tui.Text(b.output.String()),
		Block: &tui.Block{Title: "bootox"},
	}, outputArea)
	f.Render(&tui.Paragraph{
		Lines: []tui.Line{{Spans: []tui.Span{{
			Content: b.status,
			Style:   uv.Style{Fg: ansi.Cyan, Attrs: uv.AttrItalic},
		}}}},
		Block: &tui.Block{Title: "Status"},
	}, statusArea)
}

func (b *Bootox) flush() error {
	return b.term.Draw(b.Render)
}

// RunBootox greets, then offers BootoxMenu until Exit is chosen.
func RunBootox(ctx context.Context, opts Options) error {
	b := NewBootox(opts)
	if err := b.Greet(ctx); err != nil {
		return err
	}
	for {
		if err := b.UpdateStatus("Choose an entry with UP/DOWN and ENTER."); err != nil {
			return err
		}
		choice, err := b.ShowMenu(ctx, BootoxMenu)
		if err != nil {
			return err
		}
		switch choice {
		case 0:
			if err := b.OutputLine("Booting default entry..."); err != nil {
				return err
			}
			if err := b.OutputLine("No boot entries found."); err != nil {
				return err
			}
			if err := b.UpdateStatus("Press any key to return to the menu."); err != nil {
				return err
			}
			if err := b.WaitForKeypress(); err != nil {
				return err
			}
		case 1:
			size := b.term.Size()
			if err := b.OutputLine(fmt.Sprintf("Console: %dx%d", size.Width, size.Height)); err != nil {
				return err
			}
		default:
			return b.UpdateStatus("Goodbye.")
		}
	}
}

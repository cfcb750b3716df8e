package demo

import (
	"context"
	"errors"
	"image/color"
	"strings"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"

	"pkt.systems/efitui/internal/backend"
	"pkt.systems/efitui/internal/firmware"
	"pkt.systems/efitui/internal/firmware/memfw"
	"pkt.systems/efitui/internal/input"
	"pkt.systems/efitui/internal/tui"
)

// newDemo wires a 60x20 memory console with a closed key script.
func newDemo(t *testing.T, keys ...string) (*memfw.Console, Options) {
	t.Helper()
	console := memfw.New(memfw.Options{Columns: 60, Rows: 20})
	if err := console.Script(keys...); err != nil {
		t.Fatalf("Script: %v", err)
	}
	console.CloseInput()

	out, err := firmware.OpenTextOutput(console)
	if err != nil {
		t.Fatalf("OpenTextOutput: %v", err)
	}
	in, err := firmware.OpenTextInput(console)
	if err != nil {
		t.Fatalf("OpenTextInput: %v", err)
	}
	b := backend.New(out, nil)
	r := input.New(in, nil)
	t.Cleanup(func() {
		_ = b.Close()
		_ = r.Close()
	})
	term, err := tui.New(b)
	if err != nil {
		t.Fatalf("tui.New: %v", err)
	}
	return console, Options{Terminal: term, Input: r}
}

func cell(t *testing.T, console *memfw.Console, x, y int) (string, firmware.Color, firmware.Color) {
	t.Helper()
	c, err := console.CellAt(x, y)
	if err != nil {
		t.Fatalf("CellAt(%d,%d): %v", x, y, err)
	}
	return c.Content, c.FG, c.BG
}

func countOps(console *memfw.Console, op memfw.Op) int {
	n := 0
	for _, c := range console.Calls() {
		if c.Op == op {
			n++
		}
	}
	return n
}

func TestBasicRotatesAndQuits(t *testing.T) {
	console, opts := newDemo(t, "down", "down", "q")
	app := NewBasic(opts)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if app.Style().Fg != ansi.Blue {
		t.Fatalf("Fg = %v, want blue after two rotations", app.Style().Fg)
	}
	if n := countOps(console, memfw.OpClearScreen); n != 1 {
		t.Fatalf("ClearScreen calls = %d, want 1", n)
	}

	// 58 inner columns, 12 wide greeting: centered at 1 + 23.
	content, fg, bg := cell(t, console, 24, 1)
	if content != "H" || fg != firmware.Blue || bg != firmware.Black {
		t.Fatalf("greeting cell = %q %v/%v, want H blue on black", content, fg, bg)
	}
	screen := console.String()
	for _, want := range []string{"Status", "Hello, UEFI!", "Press 'q' to exit.", "Press DOWN to do something interesting!"} {
		if !strings.Contains(screen, want) {
			t.Fatalf("screen missing %q:\n%s", want, screen)
		}
	}
}

func TestBasicRotationCycle(t *testing.T) {
	app := NewBasic(Options{})
	want := []color.Color{ansi.Red, ansi.Blue, ansi.Green, ansi.Yellow, ansi.BrightWhite}
	for i, w := range want {
		app.RotateStyle()
		if app.Style().Fg != w {
			t.Fatalf("rotation %d = %v, want %v", i, app.Style().Fg, w)
		}
	}
}

func TestBasicEndsWithScript(t *testing.T) {
	_, opts := newDemo(t, "down")
	err := NewBasic(opts).Run(context.Background())
	if !errors.Is(err, firmware.StatusAborted) {
		t.Fatalf("err = %v, want %v", err, firmware.StatusAborted)
	}
}

func TestBasicHonoursCancelledContext(t *testing.T) {
	console, opts := newDemo(t, "q")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewBasic(opts).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want %v", err, context.Canceled)
	}
	if console.PendingKeys() != 1 {
		t.Fatalf("pending keys = %d, want the script untouched", console.PendingKeys())
	}
}

func TestBootoxGreetShowsStatus(t *testing.T) {
	console, opts := newDemo(t, "x", "enter")
	b := NewBootox(opts)
	if b.Status() != "Welcome to bootox!" {
		t.Fatalf("initial status = %q", b.Status())
	}
	if err := b.Greet(context.Background()); err != nil {
		t.Fatalf("Greet: %v", err)
	}
	if console.PendingKeys() != 0 {
		t.Fatalf("Greet left %d keys", console.PendingKeys())
	}
	// Status bar occupies rows 15-17; its text starts inside the border.
	content, fg, _ := cell(t, console, 1, 16)
	if content != "W" || fg != firmware.Cyan {
		t.Fatalf("status cell = %q %v, want W cyan", content, fg)
	}
	if !strings.Contains(console.String(), "Welcome! Press ENTER to start.") {
		t.Fatalf("screen:\n%s", console.String())
	}
}

func TestBootoxShowMenuReturnsSelection(t *testing.T) {
	console, opts := newDemo(t, "down", "down", "up", "enter")
	b := NewBootox(opts)
	choice, err := b.ShowMenu(context.Background(), BootoxMenu)
	if err != nil {
		t.Fatalf("ShowMenu: %v", err)
	}
	if choice != 1 {
		t.Fatalf("choice = %d, want 1", choice)
	}
	if strings.Contains(console.String(), "Menu") {
		t.Fatalf("menu still shown after choice:\n%s", console.String())
	}
}

func TestBootoxMenuRendering(t *testing.T) {
	console, opts := newDemo(t)
	b := NewBootox(opts)
	b.menu = tui.NewList("A", "B")
	b.menu.Style.Fg = ansi.White
	b.menu.Style.Bg = ansi.Black
	b.menu.HighlightStyle.Attrs = uv.AttrReverse
	b.menu.HighlightSymbol = "> "
	b.menu.Block = &tui.Block{Title: "Menu"}
	b.menu.SelectFirst()
	if err := b.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	lines := console.Lines()
	if !strings.HasPrefix(lines[1], "│> A") || !strings.HasPrefix(lines[2], "│  B") {
		t.Fatalf("menu rows = %q, %q", lines[1], lines[2])
	}
	if _, fg, bg := cell(t, console, 3, 1); fg != firmware.Black || bg != firmware.LightGray {
		t.Fatalf("selected = %v/%v, want black on light gray", fg, bg)
	}
	if _, fg, bg := cell(t, console, 3, 2); fg != firmware.LightGray || bg != firmware.Black {
		t.Fatalf("unselected = %v/%v, want light gray on black", fg, bg)
	}
}

func TestBootoxShowMenuNoOptions(t *testing.T) {
	_, opts := newDemo(t)
	if _, err := NewBootox(opts).ShowMenu(context.Background(), nil); !errors.Is(err, ErrNoOptions) {
		t.Fatalf("err = %v, want %v", err, ErrNoOptions)
	}
}

func TestBootoxOutputLine(t *testing.T) {
	console, opts := newDemo(t)
	b := NewBootox(opts)
	if err := b.OutputLine("hello"); err != nil {
		t.Fatalf("OutputLine: %v", err)
	}
	if err := b.OutputLine("world"); err != nil {
		t.Fatalf("OutputLine: %v", err)
	}
	if b.Output() != "hello\r\nworld\r\n" {
		t.Fatalf("Output = %q", b.Output())
	}
	if content, _, _ := cell(t, console, 31, 2); content != "w" {
		t.Fatalf("output pane cell = %q, want w", content)
	}
}

func TestRunBootoxSession(t *testing.T) {
	console, opts := newDemo(t, "enter", "down", "enter", "down", "down", "enter")
	if err := RunBootox(context.Background(), opts); err != nil {
		t.Fatalf("RunBootox: %v", err)
	}
	screen := console.String()
	for _, want := range []string{"Console: 60x18", "Goodbye."} {
		if !strings.Contains(screen, want) {
			t.Fatalf("screen missing %q:\n%s", want, screen)
		}
	}
}

func TestKeyLogRecordsUntilEsc(t *testing.T) {
	console, opts := newDemo(t, "a", "f5", "esc", "b")
	k := NewKeyLog(opts)
	if err := k.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	events := k.Events()
	if len(events) != 3 {
		t.Fatalf("events = %v, want 3", events)
	}
	if events[0].Key != "a" || events[0].Text != "a" {
		t.Fatalf("event 0 = %+v", events[0])
	}
	if events[1].Key != "f5" || events[2].Key != "esc" {
		t.Fatalf("events = %+v", events)
	}
	if console.PendingKeys() != 1 {
		t.Fatalf("pending = %d, want b left unread", console.PendingKeys())
	}
	if !strings.Contains(console.String(), "f5") {
		t.Fatalf("screen:\n%s", console.String())
	}
}

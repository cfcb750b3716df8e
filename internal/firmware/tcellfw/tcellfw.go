// Package tcellfw implements the firmware console protocols on a host
// terminal through tcell, so firmware UIs can run outside a firmware.
package tcellfw

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"pkt.systems/efitui/internal/firmware"
	"pkt.systems/efitui/internal/logging"
	"pkt.systems/efitui/internal/render"
	"pkt.systems/pslog"
)

// Options configures a Console.
type Options struct {
	// Screen is the tcell screen to drive. A nil Screen opens the
	// controlling terminal.
	Screen        tcell.Screen
	KeyBufferSize int
	Logger        pslog.Logger
}

// Console is a firmware text console on a tcell screen. The current mode is
// always the screen size; a zero-sized screen has no mode.
type Console struct {
	firmware.HandleTable

	mu            sync.Mutex
	screen        tcell.Screen
	logger        pslog.Logger
	col, row      int
	fg, bg        firmware.Color
	cursorVisible bool

	keys      *firmware.KeyBuffer
	pumpDone  chan struct{}
	closeOnce sync.Once
}

// New initializes the screen, installs both console protocols and starts
// reading terminal events.
func New(opts Options) (*Console, error) {
	screen := opts.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}

	c := &Console{
		screen:        screen,
		logger:        logging.Or(opts.Logger).With("component", "tcellfw"),
		fg:            firmware.LightGray,
		bg:            firmware.Black,
		cursorVisible: true,
		keys:          firmware.NewKeyBuffer(opts.KeyBufferSize),
		pumpDone:      make(chan struct{}),
	}
	screen.SetStyle(c.style())
	screen.Clear()
	screen.ShowCursor(0, 0)
	screen.Show()

	c.Install(firmware.TextOutputProtocolGUID, c)
	c.Install(firmware.TextInputProtocolGUID, c)

	go c.pump()
	return c, nil
}

// Close finalizes the screen and ends input. Blocked waits return
// StatusAborted.
func (c *Console) Close() error {
	c.closeOnce.Do(func() {
		c.screen.Fini()
		<-c.pumpDone
	})
	return nil
}

// Screen returns the underlying tcell screen.
func (c *Console) Screen() tcell.Screen {
	return c.screen
}

func (c *Console) style() tcell.Style {
	return tcell.StyleDefault.Foreground(Color(c.fg)).Background(Color(c.bg))
}

// Color maps an EFI color onto the tcell 16-color palette.
func Color(c firmware.Color) tcell.Color {
	return tcell.PaletteColor(int(render.ANSIColor(c)))
}

func (c *Console) size() (int, int, bool) {
	w, h := c.screen.Size()
	return w, h, w > 0 && h > 0
}

// OutputString writes s at the cursor, wrapping at the right edge. Carriage
// return and line feed move the cursor. Runes outside the BMP are rejected.
func (c *Console) OutputString(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, h, ok := c.size()
	if !ok {
		return firmware.StatusUnsupported
	}
	for _, r := range s {
		if r > 0xffff {
			return firmware.StatusUnsupported
		}
	}

	style := c.style()
	state := -1
	var gr string
	for len(s) > 0 {
		gr, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		switch gr {
		case "\r":
			c.col = 0
			continue
		case "\n":
			c.row = min(c.row+1, h-1)
			continue
		case "\r\n":
			c.col = 0
			c.row = min(c.row+1, h-1)
			continue
		}
		cw := runewidth.StringWidth(gr)
		if cw == 0 {
			continue
		}
		if c.col+cw > w {
			c.col = 0
			c.row = min(c.row+1, h-1)
		}
		runes := []rune(gr)
		c.screen.SetContent(c.col, c.row, runes[0], runes[1:], style)
		c.col += cw
		if c.col >= w {
			c.col = 0
			c.row = min(c.row+1, h-1)
		}
	}
	c.showCursor()
	c.screen.Show()
	return nil
}

// SetCursorPosition moves the cursor. Positions outside the screen are
// rejected.
func (c *Console) SetCursorPosition(col, row int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, h, ok := c.size()
	if !ok || col < 0 || row < 0 || col >= w || row >= h {
		return firmware.StatusUnsupported
	}
	c.col, c.row = col, row
	c.showCursor()
	return nil
}

// CursorPosition returns the cursor.
func (c *Console) CursorPosition() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.col, c.row
}

// SetAttribute selects the colors for later output.
func (c *Console) SetAttribute(fg, bg firmware.Color) error {
	if !fg.Valid() || !bg.Valid() {
		return firmware.StatusUnsupported
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fg, c.bg = firmware.SplitAttr(firmware.TextAttr(fg, bg))
	return nil
}

// EnableCursor shows or hides the terminal cursor.
func (c *Console) EnableCursor(visible bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursorVisible = visible
	c.showCursor()
	c.screen.Show()
	return nil
}

func (c *Console) showCursor() {
	if c.cursorVisible {
		c.screen.ShowCursor(c.col, c.row)
	} else {
		c.screen.HideCursor()
	}
}

// ClearScreen fills the screen with the current background and homes the
// cursor.
func (c *Console) ClearScreen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, _, ok := c.size(); !ok {
		return firmware.StatusUnsupported
	}
	c.screen.Fill(' ', c.style())
	c.col, c.row = 0, 0
	c.showCursor()
	c.screen.Show()
	return nil
}

// CurrentMode reports the screen size as mode 0.
func (c *Console) CurrentMode() (firmware.Mode, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	w, h, ok := c.size()
	if !ok {
		return firmware.Mode{}, false, nil
	}
	return firmware.Mode{Number: 0, Columns: w, Rows: h}, true, nil
}

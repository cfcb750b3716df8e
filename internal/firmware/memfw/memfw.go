// Package memfw implements an in-memory firmware console. Output calls are
// replayed as ANSI sequences into a VT emulator so the resulting screen can
// be inspected; input comes from a scripted key buffer.
package memfw

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/vt"
	"github.com/mattn/go-runewidth"

	"pkt.systems/efitui/internal/config"
	"pkt.systems/efitui/internal/firmware"
	"pkt.systems/efitui/internal/logging"
	"pkt.systems/efitui/internal/render"
	"pkt.systems/pslog"
)

// Op names a firmware call.
type Op string

// Recorded firmware calls.
const (
	OpOutputString      Op = "OutputString"
	OpSetCursorPosition Op = "SetCursorPosition"
	OpSetAttribute      Op = "SetAttribute"
	OpEnableCursor      Op = "EnableCursor"
	OpClearScreen       Op = "ClearScreen"
	OpQueryMode         Op = "QueryMode"
	OpWaitForKey        Op = "WaitForKey"
	OpReadKeyStroke     Op = "ReadKeyStroke"
)

// Call is one recorded firmware call. Only the fields relevant to Op are set.
type Call struct {
	Op      Op
	Col     int
	Row     int
	FG      firmware.Color
	BG      firmware.Color
	Text    string
	Visible bool
	Key     firmware.Key
	Status  firmware.Status
}

func (c Call) String() string {
	var s string
	switch c.Op {
	case OpOutputString:
		s = fmt.Sprintf("%s(%q)", c.Op, c.Text)
	case OpSetCursorPosition:
		s = fmt.Sprintf("%s(%d,%d)", c.Op, c.Col, c.Row)
	case OpSetAttribute:
		s = fmt.Sprintf("%s(%s,%s)", c.Op, c.FG, c.BG)
	case OpEnableCursor:
		s = fmt.Sprintf("%s(%t)", c.Op, c.Visible)
	case OpReadKeyStroke:
		s = fmt.Sprintf("%s() %s", c.Op, c.Key)
	default:
		s = string(c.Op) + "()"
	}
	if c.Status != firmware.StatusSuccess {
		s += " = " + c.Status.Error()
	}
	return s
}

// Options configures a Console.
type Options struct {
	// Modes lists the supported text modes. Defaults to a single mode of
	// Columns x Rows.
	Modes   []firmware.Mode
	Columns int
	Rows    int
	// NoMode starts the console without a current mode.
	NoMode bool
	// NoCursorToggle makes EnableCursor return StatusUnsupported.
	NoCursorToggle bool
	// Keys are queued for input before the console is returned.
	Keys          []firmware.Key
	KeyBufferSize int
	Logger        pslog.Logger
}

type fault struct {
	after  int
	seen   int
	status firmware.Status
}

// Console is an in-memory firmware console implementing TextOutput,
// TextInput and BootServices.
type Console struct {
	firmware.HandleTable

	mu            sync.Mutex
	logger        pslog.Logger
	modes         []firmware.Mode
	mode          int
	screen        *vt.Emulator
	col, row      int
	fg, bg        firmware.Color
	cursorVisible bool
	noCursor      bool
	calls         []Call
	faults        map[Op]*fault

	keys *firmware.KeyBuffer
}

var (
	_ firmware.TextOutput   = (*Console)(nil)
	_ firmware.TextInput    = (*Console)(nil)
	_ firmware.BootServices = (*Console)(nil)
)

// New constructs a Console and installs its protocols.
func New(opts Options) *Console {
	if opts.Columns <= 0 {
		opts.Columns = config.DefaultColumns
	}
	if opts.Rows <= 0 {
		opts.Rows = config.DefaultRows
	}
	modes := opts.Modes
	if len(modes) == 0 {
		modes = []firmware.Mode{{Number: 0, Columns: opts.Columns, Rows: opts.Rows}}
	}
	size := opts.KeyBufferSize
	if size <= 0 {
		size = max(firmware.DefaultKeyBufferSize, len(opts.Keys))
	}
	c := &Console{
		logger:        logging.Or(opts.Logger).With("component", "memfw"),
		modes:         append([]firmware.Mode(nil), modes...),
		mode:          -1,
		fg:            firmware.LightGray,
		bg:            firmware.Black,
		cursorVisible: true,
		noCursor:      opts.NoCursorToggle,
		faults:        make(map[Op]*fault),
		keys:          firmware.NewKeyBuffer(size),
	}
	if !opts.NoMode {
		c.setMode(0)
	}
	for _, k := range opts.Keys {
		c.keys.Push(k)
	}
	c.Install(firmware.TextOutputProtocolGUID, c)
	c.Install(firmware.TextInputProtocolGUID, c)
	return c
}

// Modes returns the supported text modes.
func (c *Console) Modes() []firmware.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]firmware.Mode(nil), c.modes...)
}

// SetMode switches to mode n, clearing the screen.
func (c *Console) SetMode(n int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 0 || n >= len(c.modes) {
		return firmware.StatusUnsupported
	}
	c.setMode(n)
	return nil
}

func (c *Console) setMode(n int) {
	m := c.modes[n]
	c.mode = n
	c.screen = vt.NewEmulator(m.Columns, m.Rows)
	c.col, c.row = 0, 0
	c.logger.Debug("mode set", "mode", m.Number, "cols", m.Columns, "rows", m.Rows)
}

// FailAfter makes op fail with status once it has succeeded n times.
func (c *Console) FailAfter(op Op, n int, status firmware.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.faults[op] = &fault{after: n, status: status}
}

// ClearFaults removes all injected failures.
func (c *Console) ClearFaults() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.faults)
}

// Calls returns the recorded firmware calls.
func (c *Console) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.calls...)
}

// ResetCalls drops the recorded calls.
func (c *Console) ResetCalls() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = nil
}

// injected returns the failure status for op, if one is due. Callers hold mu.
func (c *Console) injected(op Op) firmware.Status {
	f, ok := c.faults[op]
	if !ok {
		return firmware.StatusSuccess
	}
	if f.seen < f.after {
		f.seen++
		return firmware.StatusSuccess
	}
	return f.status
}

func (c *Console) record(call Call, status firmware.Status) error {
	call.Status = status
	c.calls = append(c.calls, call)
	if status != firmware.StatusSuccess {
		c.logger.Debug("firmware call failed", "call", call.String())
	}
	return status.Err()
}

// OutputString writes s at the cursor.
func (c *Console) OutputString(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	call := Call{Op: OpOutputString, Text: s}
	if st := c.injected(OpOutputString); st != firmware.StatusSuccess {
		return c.record(call, st)
	}
	if c.screen == nil {
		return c.record(call, firmware.StatusUnsupported)
	}
	for _, r := range s {
		if r > 0xffff {
			return c.record(call, firmware.StatusUnsupported)
		}
	}
	m := c.modes[c.mode]
	var b strings.Builder
	b.WriteString(ansi.CursorPosition(c.col+1, c.row+1))
	b.WriteString(render.SGR(c.fg, c.bg))
	b.WriteString(s)
	_, _ = c.screen.Write([]byte(b.String()))

	c.col += runewidth.StringWidth(s)
	for c.col >= m.Columns {
		c.col -= m.Columns
		if c.row < m.Rows-1 {
			c.row++
		}
	}
	return c.record(call, firmware.StatusSuccess)
}

// SetCursorPosition moves the cursor register.
func (c *Console) SetCursorPosition(col, row int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	call := Call{Op: OpSetCursorPosition, Col: col, Row: row}
	if st := c.injected(OpSetCursorPosition); st != firmware.StatusSuccess {
		return c.record(call, st)
	}
	if c.screen == nil {
		return c.record(call, firmware.StatusUnsupported)
	}
	m := c.modes[c.mode]
	if col < 0 || row < 0 || col >= m.Columns || row >= m.Rows {
		return c.record(call, firmware.StatusUnsupported)
	}
	c.col, c.row = col, row
	return c.record(call, firmware.StatusSuccess)
}

// CursorPosition reports the cursor register.
func (c *Console) CursorPosition() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.col, c.row
}

// SetAttribute sets the color pair for subsequent output.
func (c *Console) SetAttribute(fg, bg firmware.Color) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	call := Call{Op: OpSetAttribute, FG: fg, BG: bg}
	if st := c.injected(OpSetAttribute); st != firmware.StatusSuccess {
		return c.record(call, st)
	}
	if !fg.Valid() || !bg.Valid() {
		return c.record(call, firmware.StatusUnsupported)
	}
	c.fg, c.bg = firmware.SplitAttr(firmware.TextAttr(fg, bg))
	return c.record(call, firmware.StatusSuccess)
}

// EnableCursor toggles cursor visibility.
func (c *Console) EnableCursor(visible bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	call := Call{Op: OpEnableCursor, Visible: visible}
	if st := c.injected(OpEnableCursor); st != firmware.StatusSuccess {
		return c.record(call, st)
	}
	if c.noCursor {
		return c.record(call, firmware.StatusUnsupported)
	}
	c.cursorVisible = visible
	if c.screen != nil {
		seq := ansi.HideCursor
		if visible {
			seq = ansi.ShowCursor
		}
		_, _ = c.screen.Write([]byte(seq))
	}
	return c.record(call, firmware.StatusSuccess)
}

// ClearScreen clears the display with the current background and homes the
// cursor.
func (c *Console) ClearScreen() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	call := Call{Op: OpClearScreen}
	if st := c.injected(OpClearScreen); st != firmware.StatusSuccess {
		return c.record(call, st)
	}
	if c.screen == nil {
		return c.record(call, firmware.StatusUnsupported)
	}
	_, _ = c.screen.Write([]byte(render.SGR(c.fg, c.bg) + ansi.EraseEntireScreen + ansi.CursorHomePosition))
	c.col, c.row = 0, 0
	return c.record(call, firmware.StatusSuccess)
}

// CurrentMode returns the active mode.
func (c *Console) CurrentMode() (firmware.Mode, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	call := Call{Op: OpQueryMode}
	if st := c.injected(OpQueryMode); st != firmware.StatusSuccess {
		return firmware.Mode{}, false, c.record(call, st)
	}
	if c.mode < 0 {
		return firmware.Mode{}, false, c.record(call, firmware.StatusSuccess)
	}
	return c.modes[c.mode], true, c.record(call, firmware.StatusSuccess)
}

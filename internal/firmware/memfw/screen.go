package memfw

import (
	"pkt.systems/efitui/internal/firmware"
	"pkt.systems/efitui/internal/render"
	"pkt.systems/efitui/internal/terminal"
)

// Snapshot captures the emulated screen. Without a current mode the
// snapshot is empty.
func (c *Console) Snapshot() terminal.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := terminal.Snapshot{
		Mode:          -1,
		Cursor:        terminal.Cursor{X: c.col, Y: c.row},
		CursorVisible: c.cursorVisible,
	}
	if c.screen == nil {
		return snap
	}
	m := c.modes[c.mode]
	snap.Mode = m.Number
	snap.Cols = m.Columns
	snap.Rows = m.Rows
	snap.Cells = make([]terminal.Cell, 0, m.Columns*m.Rows)
	for y := 0; y < m.Rows; y++ {
		covered := 0
		for x := 0; x < m.Columns; x++ {
			snap.Cells = append(snap.Cells, c.cellAt(x, y, &covered))
		}
	}
	return snap
}

func (c *Console) cellAt(x, y int, covered *int) terminal.Cell {
	cell := c.screen.CellAt(x, y)
	if *covered > 0 {
		*covered--
		if cell == nil || cell.Content == "" {
			return terminal.Cell{}
		}
	}
	if cell == nil {
		return terminal.Cell{Content: " ", Width: 1, FG: firmware.LightGray, BG: firmware.Black}
	}
	fg := render.FirmwareColor(cell.Style.Fg, firmware.LightGray)
	bg := render.FirmwareColor(cell.Style.Bg, firmware.Black)
	content := cell.Content
	width := cell.Width
	if content == "" {
		content = " "
	}
	if width <= 0 {
		width = 1
	}
	if width > 1 {
		*covered = width - 1
	}
	return terminal.Cell{Content: content, Width: width, FG: fg, BG: bg}
}

// CellAt returns the emulated cell at (x, y).
func (c *Console) CellAt(x, y int) (terminal.Cell, error) {
	return c.Snapshot().CellAt(x, y)
}

// Lines returns the emulated screen text per row.
func (c *Console) Lines() []string {
	return c.Snapshot().Lines()
}

// String returns the emulated screen text.
func (c *Console) String() string {
	return c.Snapshot().String()
}

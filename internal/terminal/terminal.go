package terminal

import (
	"fmt"
	"strings"

	"pkt.systems/efitui/internal/firmware"
)

// Cursor represents a cursor position.
type Cursor struct {
	X int
	Y int
}

// Cell represents a console cell's content and attributes. Content is empty
// for the trailing half of a wide character.
type Cell struct {
	Content string
	Width   int
	FG      firmware.Color
	BG      firmware.Color
}

// Snapshot captures the state of an emulated firmware console.
type Snapshot struct {
	Cols          int
	Rows          int
	Mode          int
	Cursor        Cursor
	CursorVisible bool
	Cells         []Cell
}

// CellAt returns the cell at (x, y).
func (s Snapshot) CellAt(x, y int) (Cell, error) {
	if x < 0 || y < 0 || x >= s.Cols || y >= s.Rows {
		return Cell{}, fmt.Errorf("cell out of range")
	}
	idx := y*s.Cols + x
	return s.Cells[idx], nil
}

// Lines returns the text of every row with trailing blanks removed.
func (s Snapshot) Lines() []string {
	lines := make([]string, 0, s.Rows)
	for y := 0; y < s.Rows; y++ {
		var b strings.Builder
		for x := 0; x < s.Cols; x++ {
			c := s.Cells[y*s.Cols+x]
			switch {
			case c.Content != "":
				b.WriteString(c.Content)
			case c.Width == 0:
				// covered by the wide cell to the left
			default:
				b.WriteByte(' ')
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}

// String returns Lines joined by newlines, without trailing empty rows.
func (s Snapshot) String() string {
	lines := s.Lines()
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

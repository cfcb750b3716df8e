// Package backend draws cell grids on a firmware text console.
package backend

import (
	"fmt"
	"iter"

	uv "github.com/charmbracelet/ultraviolet"

	"pkt.systems/efitui/internal/firmware"
	"pkt.systems/efitui/internal/logging"
	"pkt.systems/pslog"
)

// ReservedRows is the number of console rows Size keeps out of the
// reported height.
const ReservedRows = 2

// Cell is a styled cell at a grid position.
type Cell struct {
	X uint16
	Y uint16
	uv.Cell
}

// Size is a geometry in character cells or pixels.
type Size struct {
	Width  int
	Height int
}

// WindowSize reports the console geometry in cells and pixels.
type WindowSize struct {
	ColumnsRows Size
	Pixels      Size
}

// OutputBackend translates cells into firmware console calls. It owns the
// text output protocol handle it was constructed with.
type OutputBackend struct {
	scoped *firmware.Scoped[firmware.TextOutput]
	out    firmware.TextOutput
	logger pslog.Logger
}

// New constructs an OutputBackend over an exclusively opened text output
// protocol.
func New(output *firmware.Scoped[firmware.TextOutput], logger pslog.Logger) *OutputBackend {
	return &OutputBackend{
		scoped: output,
		out:    output.Protocol(),
		logger: logging.Or(logger).With("component", "backend"),
	}
}

// Close releases the protocol handle.
func (b *OutputBackend) Close() error {
	return b.scoped.Close()
}

// Draw paints cells in the order they are yielded. Each cell costs a cursor
// move, a color change and a write. The first failure stops the draw; cells
// already written stay on screen.
func (b *OutputBackend) Draw(cells iter.Seq[Cell]) error {
	for cell := range cells {
		fg := foreground(cell.Style.Fg)
		bg := background(cell.Style.Bg)
		if cell.Style.Attrs&uv.AttrReverse != 0 {
			fg, bg = bg, fg
		}

		if err := b.out.SetCursorPosition(int(cell.X), int(cell.Y)); err != nil {
			return fmt.Errorf("draw cell (%d,%d): %w: %w", cell.X, cell.Y, ErrSetCursorPosition, err)
		}
		if err := b.out.SetAttribute(fg, bg); err != nil {
			return fmt.Errorf("draw cell (%d,%d): %w: %w", cell.X, cell.Y, ErrSetColor, err)
		}
		if err := b.out.OutputString(cell.Content); err != nil {
			return fmt.Errorf("draw cell (%d,%d): %w: %w", cell.X, cell.Y, ErrWriteCharacter, err)
		}
	}
	return nil
}

// HideCursor hides the cursor where the firmware supports it.
func (b *OutputBackend) HideCursor() error {
	if err := b.out.EnableCursor(false); err != nil {
		b.logger.Debug("hide cursor ignored", "err", err)
	}
	return nil
}

// ShowCursor shows the cursor where the firmware supports it.
func (b *OutputBackend) ShowCursor() error {
	if err := b.out.EnableCursor(true); err != nil {
		b.logger.Debug("show cursor ignored", "err", err)
	}
	return nil
}

// CursorPosition returns the firmware cursor position.
func (b *OutputBackend) CursorPosition() (uv.Position, error) {
	col, row := b.out.CursorPosition()
	return uv.Pos(col, row), nil
}

// SetCursorPosition moves the firmware cursor. Positions are not clamped.
func (b *OutputBackend) SetCursorPosition(pos uv.Position) error {
	if err := b.out.SetCursorPosition(pos.X, pos.Y); err != nil {
		return fmt.Errorf("%w: %w", ErrSetCursorPosition, err)
	}
	return nil
}

// Clear clears the whole console.
func (b *OutputBackend) Clear() error {
	if err := b.out.ClearScreen(); err != nil {
		return fmt.Errorf("%w: %w", ErrClear, err)
	}
	return nil
}

// ClearRegion clears the given region. Only ClearAll is supported.
func (b *OutputBackend) ClearRegion(kind ClearType) error {
	if kind == ClearAll {
		return b.Clear()
	}
	return &UnsupportedClearError{ClearType: kind}
}

// Size returns the current mode's columns and its rows minus ReservedRows.
func (b *OutputBackend) Size() (Size, error) {
	mode, ok, err := b.out.CurrentMode()
	if err != nil {
		return Size{}, fmt.Errorf("%w: %w", ErrGetCurrentMode, err)
	}
	if !ok {
		return Size{}, ErrNoCurrentMode
	}
	return Size{Width: mode.Columns, Height: max(mode.Rows-ReservedRows, 0)}, nil
}

// WindowSize returns Size. Pixel dimensions are unknown and reported as zero.
func (b *OutputBackend) WindowSize() (WindowSize, error) {
	size, err := b.Size()
	if err != nil {
		return WindowSize{}, err
	}
	return WindowSize{ColumnsRows: size}, nil
}

// Flush does nothing; every call already reached the firmware.
func (b *OutputBackend) Flush() error {
	return nil
}

// Cells yields the cells of a row-major grid, skipping the placeholders
// that follow wide characters.
func Cells(lines []uv.Line) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for y, line := range lines {
			for x, c := range line {
				if c.Width == 0 && c.Content == "" {
					continue
				}
				if !yield(Cell{X: uint16(x), Y: uint16(y), Cell: c}) {
					return
				}
			}
		}
	}
}

// Package tui is a small immediate-mode render loop over a cell backend.
// Every frame is painted in full; the backend is never asked to diff.
package tui

import (
	"fmt"
	"iter"

	uv "github.com/charmbracelet/ultraviolet"

	"pkt.systems/efitui/internal/backend"
)

// Backend is the drawing surface a Terminal paints on.
type Backend interface {
	Draw(cells iter.Seq[backend.Cell]) error
	HideCursor() error
	ShowCursor() error
	SetCursorPosition(pos uv.Position) error
	Clear() error
	Size() (backend.Size, error)
	Flush() error
}

// Terminal owns the frame buffer and drives a Backend.
type Terminal struct {
	backend Backend
	screen  uv.ScreenBuffer
	size    backend.Size
	frames  int
}

// New queries the backend geometry and allocates a matching buffer.
func New(b Backend) (*Terminal, error) {
	size, err := b.Size()
	if err != nil {
		return nil, fmt.Errorf("terminal size: %w", err)
	}
	return &Terminal{
		backend: b,
		screen:  uv.NewScreenBuffer(size.Width, size.Height),
		size:    size,
	}, nil
}

// Size returns the geometry of the last frame.
func (t *Terminal) Size() backend.Size {
	return t.size
}

// Frames returns the number of frames drawn so far.
func (t *Terminal) Frames() int {
	return t.frames
}

// Buffer returns the frame buffer as of the last draw.
func (t *Terminal) Buffer() *uv.Buffer {
	return t.screen.Buffer
}

// Clear clears the backend.
func (t *Terminal) Clear() error {
	return t.backend.Clear()
}

// Draw renders one frame. The geometry is queried first and the buffer is
// resized when it changed, then render fills the cleared buffer and every
// cell is handed to the backend.
func (t *Terminal) Draw(render func(*Frame)) error {
	size, err := t.backend.Size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if size != t.size {
		t.screen.Resize(size.Width, size.Height)
		t.size = size
	}
	t.screen.Clear()

	frame := &Frame{
		Area:   uv.Rect(0, 0, size.Width, size.Height),
		screen: t.screen,
	}
	render(frame)

	if err := t.backend.Draw(backend.Cells(t.screen.Lines)); err != nil {
		return err
	}
	if frame.cursor == nil {
		if err := t.backend.HideCursor(); err != nil {
			return err
		}
	} else {
		if err := t.backend.SetCursorPosition(*frame.cursor); err != nil {
			return err
		}
		if err := t.backend.ShowCursor(); err != nil {
			return err
		}
	}
	if err := t.backend.Flush(); err != nil {
		return err
	}
	t.frames++
	return nil
}

// Frame is the drawing surface handed to a render callback.
type Frame struct {
	Area   uv.Rectangle
	screen uv.Screen
	cursor *uv.Position
}

// Render draws a widget into area, clipped to the frame.
func (f *Frame) Render(w uv.Drawable, area uv.Rectangle) {
	area = area.Intersect(f.Area)
	if area.Empty() {
		return
	}
	w.Draw(f.screen, area)
}

// SetCursor shows the cursor at (x, y) once the frame is drawn. Frames that
// never call it hide the cursor.
func (f *Frame) SetCursor(x, y int) {
	pos := uv.Pos(x, y)
	f.cursor = &pos
}

// Screen exposes the frame buffer for widgets that draw cell by cell.
func (f *Frame) Screen() uv.Screen {
	return f.screen
}

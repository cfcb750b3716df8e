// Package input reads key events from a firmware text input protocol.
package input

import (
	"errors"
	"fmt"
	"unicode"

	uv "github.com/charmbracelet/ultraviolet"

	"pkt.systems/efitui/internal/firmware"
	"pkt.systems/efitui/internal/logging"
	"pkt.systems/pslog"
)

// Errors returned by Reader.ReadEvent. Both match ErrInput.
var (
	ErrInput = errors.New("input error")
	ErrWait  = fmt.Errorf("%w: wait for key failed", ErrInput)
	ErrRead  = fmt.Errorf("%w: read key failed", ErrInput)
)

var scanKeys = map[firmware.ScanCode]rune{
	firmware.ScanEsc:        uv.KeyEscape,
	firmware.ScanUp:         uv.KeyUp,
	firmware.ScanDown:       uv.KeyDown,
	firmware.ScanLeft:       uv.KeyLeft,
	firmware.ScanRight:      uv.KeyRight,
	firmware.ScanPageUp:     uv.KeyPgUp,
	firmware.ScanPageDown:   uv.KeyPgDown,
	firmware.ScanHome:       uv.KeyHome,
	firmware.ScanEnd:        uv.KeyEnd,
	firmware.ScanInsert:     uv.KeyInsert,
	firmware.ScanDelete:     uv.KeyDelete,
	firmware.ScanF1:         uv.KeyF1,
	firmware.ScanF2:         uv.KeyF2,
	firmware.ScanF3:         uv.KeyF3,
	firmware.ScanF4:         uv.KeyF4,
	firmware.ScanF5:         uv.KeyF5,
	firmware.ScanF6:         uv.KeyF6,
	firmware.ScanF7:         uv.KeyF7,
	firmware.ScanF8:         uv.KeyF8,
	firmware.ScanF9:         uv.KeyF9,
	firmware.ScanF10:        uv.KeyF10,
	firmware.ScanF11:        uv.KeyF11,
	firmware.ScanF12:        uv.KeyF12,
	firmware.ScanMute:       uv.KeyMute,
	firmware.ScanVolumeUp:   uv.KeyRaiseVol,
	firmware.ScanVolumeDown: uv.KeyLowerVol,
}

// Translate maps a firmware key onto a key press. Special keys outside the
// supported set are not translated. The firmware reports no modifier,
// release or repeat state, so Mod is always empty and IsRepeat false.
func Translate(k firmware.Key) (uv.KeyPressEvent, bool) {
	if r, ok := k.Printable(); ok {
		if r == '\r' {
			return uv.KeyPressEvent{Code: uv.KeyEnter}, true
		}
		ev := uv.KeyPressEvent{Code: r}
		if unicode.IsPrint(r) {
			ev.Text = string(r)
		}
		return ev, true
	}
	code, ok := scanKeys[k.ScanCode]
	if !ok {
		return uv.KeyPressEvent{}, false
	}
	return uv.KeyPressEvent{Code: code}, true
}

// Reader turns firmware keystrokes into key events. It owns the text input
// protocol handle it was constructed with.
type Reader struct {
	scoped *firmware.Scoped[firmware.TextInput]
	in     firmware.TextInput
	logger pslog.Logger
}

// New constructs a Reader over an exclusively opened text input protocol.
func New(input *firmware.Scoped[firmware.TextInput], logger pslog.Logger) *Reader {
	return &Reader{
		scoped: input,
		in:     input.Protocol(),
		logger: logging.Or(logger).With("component", "input"),
	}
}

// Close releases the protocol handle.
func (r *Reader) Close() error {
	return r.scoped.Close()
}

// ReadEvent blocks until the firmware signals a keystroke, reads exactly one
// key and translates it. A nil event with a nil error means the key had no
// translation or no key was available. The wait has no timeout and cannot
// be cancelled.
func (r *Reader) ReadEvent() (uv.Event, error) {
	if err := r.in.WaitForKey(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWait, err)
	}
	key, ok, err := r.in.ReadKeyStroke()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if !ok {
		return nil, nil
	}
	ev, ok := Translate(key)
	if !ok {
		r.logger.Debug("key not translated", "key", key.String())
		return nil, nil
	}
	return ev, nil
}

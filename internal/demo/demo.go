// Package demo contains small applications built on the firmware console
// adapters. They double as smoke tests for a firmware's output and key
// handling.
package demo

import (
	"fmt"

	uv "github.com/charmbracelet/ultraviolet"

	"pkt.systems/efitui/internal/logging"
	"pkt.systems/efitui/internal/tui"
	"pkt.systems/pslog"
)

// EventReader yields input events. A nil event with a nil error means the
// read produced nothing usable.
type EventReader interface {
	ReadEvent() (uv.Event, error)
}

// Options wires a demo to its terminal and input.
type Options struct {
	Terminal *tui.Terminal
	Input    EventReader
	Logger   pslog.Logger
}

func (o Options) logger(name string) pslog.Logger {
	return logging.Or(o.Logger).With("component", "demo", "demo", name)
}

func readKey(in EventReader) (uv.KeyPressEvent, bool, error) {
	ev, err := in.ReadEvent()
	if err != nil {
		return uv.KeyPressEvent{}, false, fmt.Errorf("read key: %w", err)
	}
	key, ok := ev.(uv.KeyPressEvent)
	return key, ok, nil
}

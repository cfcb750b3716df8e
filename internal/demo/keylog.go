package demo

import (
	"context"
	"fmt"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"

	"pkt.systems/efitui/internal/tui"
	"pkt.systems/pslog"
)

// KeyRecord is one key event seen by KeyLog.
type KeyRecord struct {
	Key  string `json:"key"`
	Code rune   `json:"code"`
	Text string `json:"text,omitempty"`
}

func (r KeyRecord) String() string {
	return fmt.Sprintf("%-12s code=%#06x text=%q", r.Key, r.Code, r.Text)
}

// KeyLog shows the most recent key events and records all of them. Esc
// quits.
type KeyLog struct {
	term   *tui.Terminal
	input  EventReader
	logger pslog.Logger
	events []KeyRecord
}

// NewKeyLog returns an empty key log.
func NewKeyLog(opts Options) *KeyLog {
	return &KeyLog{
		term:   opts.Terminal,
		input:  opts.Input,
		logger: opts.logger("keylog"),
	}
}

// Events returns the recorded key events in arrival order.
func (k *KeyLog) Events() []KeyRecord {
	return append([]KeyRecord(nil), k.events...)
}

// Render draws the newest events that fit, oldest first.
func (k *KeyLog) Render(f *tui.Frame) {
	block := &tui.Block{Title: "Keys"}
	inner := block.Inner(f.Area)
	rows := max(inner.Dy()-1, 0)
	start := max(len(k.events)-rows, 0)

	lines := []tui.Line{tui.Styled("Press keys to see them. Esc quits.", uv.Style{Fg: ansi.Yellow})}
	for _, ev := range k.events[start:] {
		lines = append(lines, tui.Raw(ev.String()))
	}
	f.Render(&tui.Paragraph{Lines: lines, Block: block}, f.Area)
}

// Run records keys until Esc. The Esc press is recorded too.
func (k *KeyLog) Run(ctx context.Context) error {
	if err := k.term.Clear(); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := k.term.Draw(k.Render); err != nil {
			return err
		}
		key, ok, err := readKey(k.input)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		rec := KeyRecord{Key: key.String(), Code: key.Code, Text: key.Text}
		k.events = append(k.events, rec)
		k.logger.Debug("key", "key", rec.Key, "code", rec.Code)
		if key.MatchString("esc") {
			return nil
		}
	}
}

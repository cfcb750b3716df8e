package efitui

import (
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"pkt.systems/efitui/internal/backend"
	"pkt.systems/efitui/internal/config"
	"pkt.systems/efitui/internal/firmware"
	"pkt.systems/efitui/internal/firmware/memfw"
	"pkt.systems/efitui/internal/firmware/tcellfw"
	"pkt.systems/efitui/internal/input"
	"pkt.systems/efitui/internal/logging"
	"pkt.systems/efitui/internal/render"
	"pkt.systems/efitui/internal/tui"
	"pkt.systems/pslog"
)

// Firmware offers the console protocols through boot services.
type Firmware interface {
	firmware.BootServices
	Close() error
}

// FirmwareOptions selects and configures a firmware implementation.
type FirmwareOptions struct {
	Console ConsoleConfig
	// Screen overrides the terminal used by host firmware.
	Screen tcell.Screen
	Logger pslog.Logger
}

// ErrNotMemoryFirmware is returned by DumpScreen for firmware it cannot read
// back.
var ErrNotMemoryFirmware = errors.New("screen dump needs memory firmware")

// OpenFirmware starts the configured firmware. Memory firmware scripted with
// keys ends its input once they are consumed.
func OpenFirmware(opts FirmwareOptions) (Firmware, error) {
	cfg := opts.Console
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := logging.Or(opts.Logger)

	switch cfg.Firmware {
	case config.FirmwareMemory:
		keys, err := firmware.ParseKeys(cfg.Keys)
		if err != nil {
			return nil, fmt.Errorf("console keys: %w", err)
		}
		c := memfw.New(memfw.Options{
			Columns:        cfg.Columns,
			Rows:           cfg.Rows,
			NoMode:         cfg.NoMode,
			NoCursorToggle: !cfg.CursorToggle,
			Keys:           keys,
			Logger:         logger,
		})
		if len(keys) > 0 {
			c.CloseInput()
		}
		return c, nil
	default:
		return tcellfw.New(tcellfw.Options{Screen: opts.Screen, Logger: logger})
	}
}

// Console is an opened firmware console: the output backend, the input
// reader and a render loop over the backend.
type Console struct {
	Terminal *tui.Terminal
	Output   *backend.OutputBackend
	Input    *input.Reader
}

// OpenConsole opens both console protocols exclusively.
func OpenConsole(fw firmware.BootServices, logger pslog.Logger) (*Console, error) {
	out, err := firmware.OpenTextOutput(fw)
	if err != nil {
		return nil, fmt.Errorf("open text output: %w", err)
	}
	in, err := firmware.OpenTextInput(fw)
	if err != nil {
		_ = out.Close()
		return nil, fmt.Errorf("open text input: %w", err)
	}
	c := &Console{
		Output: backend.New(out, logger),
		Input:  input.New(in, logger),
	}
	term, err := tui.New(c.Output)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Terminal = term
	return c, nil
}

// Close releases both protocols.
func (c *Console) Close() error {
	return errors.Join(c.Output.Close(), c.Input.Close())
}

// ConsoleInfo describes the console geometry.
type ConsoleInfo struct {
	Firmware     string `json:"firmware"`
	HasMode      bool   `json:"has_mode"`
	Mode         int    `json:"mode"`
	Columns      int    `json:"columns"`
	Rows         int    `json:"rows"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	ReservedRows int    `json:"reserved_rows"`
}

// Inspect reports the current mode and the drawable geometry.
func Inspect(fw firmware.BootServices, logger pslog.Logger) (ConsoleInfo, error) {
	out, err := firmware.OpenTextOutput(fw)
	if err != nil {
		return ConsoleInfo{}, fmt.Errorf("open text output: %w", err)
	}
	b := backend.New(out, logger)
	defer b.Close()

	info := ConsoleInfo{Firmware: firmwareName(fw), ReservedRows: backend.ReservedRows}
	mode, ok, err := out.Protocol().CurrentMode()
	if err != nil {
		return info, fmt.Errorf("%w: %w", backend.ErrGetCurrentMode, err)
	}
	if !ok {
		return info, nil
	}
	info.HasMode = true
	info.Mode, info.Columns, info.Rows = mode.Number, mode.Columns, mode.Rows

	size, err := b.Size()
	if err != nil {
		return info, err
	}
	info.Width, info.Height = size.Width, size.Height
	return info, nil
}

// DumpScreen writes the memory firmware screen as ANSI text.
func DumpScreen(w io.Writer, fw Firmware) error {
	c, ok := fw.(*memfw.Console)
	if !ok {
		return ErrNotMemoryFirmware
	}
	return render.Snapshot(w, c.Snapshot())
}

func firmwareName(fw firmware.BootServices) string {
	switch fw.(type) {
	case *memfw.Console:
		return config.FirmwareMemory
	case *tcellfw.Console:
		return config.FirmwareHost
	default:
		return fmt.Sprintf("%T", fw)
	}
}

package efitui

import (
	"context"
	"errors"

	"pkt.systems/efitui/internal/demo"
	"pkt.systems/efitui/internal/firmware"
	"pkt.systems/efitui/internal/logging"
	"pkt.systems/pslog"
)

// KeyRecord is a key event recorded by the key log demo.
type KeyRecord = demo.KeyRecord

// DemoOptions configures a demo session on a firmware.
type DemoOptions struct {
	Firmware firmware.BootServices
	Logger   pslog.Logger
}

// RunBasic runs the greeting demo until q. Input that ends before then
// (a finished key script) ends the session without error.
func RunBasic(ctx context.Context, opts DemoOptions) error {
	return runDemo(ctx, opts, func(o demo.Options) error {
		return demo.NewBasic(o).Run(ctx)
	})
}

// RunBootox runs the boot-menu demo until Exit is chosen.
func RunBootox(ctx context.Context, opts DemoOptions) error {
	return runDemo(ctx, opts, func(o demo.Options) error {
		return demo.RunBootox(ctx, o)
	})
}

// RunKeyLog records key events until Esc and returns them.
func RunKeyLog(ctx context.Context, opts DemoOptions) ([]KeyRecord, error) {
	var k *demo.KeyLog
	err := runDemo(ctx, opts, func(o demo.Options) error {
		k = demo.NewKeyLog(o)
		return k.Run(ctx)
	})
	if k == nil {
		return nil, err
	}
	return k.Events(), err
}

func runDemo(ctx context.Context, opts DemoOptions, run func(demo.Options) error) error {
	logger := logging.Or(opts.Logger)
	console, err := OpenConsole(opts.Firmware, logger)
	if err != nil {
		return err
	}
	defer console.Close()

	err = run(demo.Options{Terminal: console.Terminal, Input: console.Input, Logger: logger})
	if errors.Is(err, firmware.StatusAborted) {
		logger.Info("input ended", "frames", console.Terminal.Frames())
		return nil
	}
	return err
}

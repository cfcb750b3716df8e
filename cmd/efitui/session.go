package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pkt.systems/efitui"
	"pkt.systems/pslog"
)

// bindConsoleFlags adds the firmware selection flags shared by every
// subcommand and binds them to the console config keys.
func bindConsoleFlags(cmd *cobra.Command, loader *efitui.Loader) error {
	v := loader.Viper()
	flags := cmd.PersistentFlags()
	flags.String("firmware", efitui.DefaultFirmware, "firmware: host or memory")
	flags.Int("cols", efitui.DefaultColumns, "memory firmware columns")
	flags.Int("rows", efitui.DefaultRows, "memory firmware rows")
	flags.StringSlice("keys", nil, "memory firmware key script, e.g. down,down,q")
	flags.Bool("no-mode", false, "start memory firmware without a current mode")

	var bindErr error
	bind := func(key, name string) {
		if bindErr != nil {
			return
		}
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			bindErr = err
		}
	}

	bind("console.firmware", "firmware")
	bind("console.columns", "cols")
	bind("console.rows", "rows")
	bind("console.keys", "keys")
	bind("console.no_mode", "no-mode")
	return bindErr
}

type sessionOptions struct {
	Name string
	Dump bool
}

type session struct {
	ctx  context.Context
	demo efitui.DemoOptions
}

// runSession opens the configured firmware, runs one demo on it and
// optionally dumps the emulated screen afterwards.
func runSession(cmd *cobra.Command, loader *efitui.Loader, opts sessionOptions, run func(*session) error) error {
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	if err := requireTerminal(cfg.Console); err != nil {
		return err
	}
	if opts.Dump && cfg.Console.Firmware != efitui.FirmwareMemory {
		return fmt.Errorf("--dump needs --firmware %s", efitui.FirmwareMemory)
	}
	// Without a script the memory keyboard never produces a key.
	if cfg.Console.Firmware == efitui.FirmwareMemory && len(cfg.Console.Keys) == 0 {
		return fmt.Errorf("memory firmware needs a key script (--keys)")
	}

	logger, closer, err := openSessionLogger(cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()
	logger = logger.With("component", opts.Name)
	ctx := pslog.ContextWithLogger(cmd.Context(), logger)

	fw, err := efitui.OpenFirmware(efitui.FirmwareOptions{Console: cfg.Console, Logger: logger})
	if err != nil {
		return err
	}
	logger.Info("session start", "firmware", cfg.Console.Firmware)

	s := &session{
		ctx:  ctx,
		demo: efitui.DemoOptions{Firmware: fw, Logger: logger},
	}
	runErr := run(s)
	if runErr == nil && opts.Dump {
		runErr = efitui.DumpScreen(cmd.OutOrStdout(), fw)
	}
	if runErr != nil {
		logger.Error("session failed", "error", runErr)
	}
	return errors.Join(runErr, fw.Close())
}

func requireTerminal(cfg efitui.ConsoleConfig) error {
	if cfg.Firmware != efitui.FirmwareHost {
		return nil
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("host firmware requires a terminal on stdout; use --firmware %s", efitui.FirmwareMemory)
	}
	return nil
}

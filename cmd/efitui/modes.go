package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"pkt.systems/efitui"
	"pkt.systems/prettyx"
	"pkt.systems/pslog"
)

// NewModesCommand builds the console geometry command.
func NewModesCommand(loader *efitui.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "Print the console mode and drawable geometry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			if err := requireTerminal(cfg.Console); err != nil {
				return err
			}
			logger := pslog.Ctx(cmd.Context()).With("component", "modes")
			fw, err := efitui.OpenFirmware(efitui.FirmwareOptions{Console: cfg.Console})
			if err != nil {
				return err
			}
			info, err := efitui.Inspect(fw, nil)
			// The host screen must be released before printing.
			if err := errors.Join(err, fw.Close()); err != nil {
				return err
			}
			logger.Debug("inspected console", "firmware", info.Firmware, "has_mode", info.HasMode)
			data, err := json.Marshal(info)
			if err != nil {
				return err
			}
			return prettyx.PrettyTo(cmd.OutOrStdout(), data, prettyx.DefaultOptions)
		},
	}
}

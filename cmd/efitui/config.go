package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/efitui"
	"pkt.systems/pslog"
)

// NewConfigCommand builds the config management command.
func NewConfigCommand(loader *efitui.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage efitui configuration",
	}

	var path string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := pslog.Ctx(cmd.Context()).With("component", "bootstrap")
			written, err := efitui.BootstrapTo(cmd.Context(), path, efitui.DefaultConfig(), logger)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), written)
			return err
		},
	}
	initCmd.Flags().StringVar(&path, "path", efitui.DefaultConfigPath(), "config file to create")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			data, err := efitui.MarshalConfig(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

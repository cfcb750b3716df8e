package main

import (
	"github.com/spf13/cobra"

	"pkt.systems/efitui"
)

// NewRootCommand builds the root CLI command.
func NewRootCommand(loader *efitui.Loader) *cobra.Command {
	var configFile string
	var dump bool
	var bindErr error

	cmd := &cobra.Command{
		Use:           "efitui",
		Short:         "Terminal UI demos on a UEFI-style text console",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if bindErr != nil {
				return bindErr
			}
			if configFile != "" {
				loader.SetConfigFile(configFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, loader, sessionOptions{Name: "basic", Dump: dump}, func(s *session) error {
				return efitui.RunBasic(s.ctx, s.demo)
			})
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	bindErr = bindConsoleFlags(cmd, loader)
	cmd.Flags().BoolVar(&dump, "dump", false, "print the memory firmware screen when the session ends")

	cmd.AddCommand(NewBootoxCommand(loader))
	cmd.AddCommand(NewKeysCommand(loader))
	cmd.AddCommand(NewModesCommand(loader))
	cmd.AddCommand(NewConfigCommand(loader))

	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"pkt.systems/efitui"
)

// NewBootoxCommand builds the boot-menu demo command.
func NewBootoxCommand(loader *efitui.Loader) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "bootox",
		Short: "Run the boot menu demo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, loader, sessionOptions{Name: "bootox", Dump: dump}, func(s *session) error {
				return efitui.RunBootox(s.ctx, s.demo)
			})
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print the memory firmware screen when the session ends")
	return cmd
}

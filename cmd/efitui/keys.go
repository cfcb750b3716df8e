package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/efitui"
	"pkt.systems/prettyx"
)

// NewKeysCommand builds the key log command.
func NewKeysCommand(loader *efitui.Loader) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Log key events until Esc",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var records []efitui.KeyRecord
			err := runSession(cmd, loader, sessionOptions{Name: "keys"}, func(s *session) error {
				var err error
				records, err = efitui.RunKeyLog(s.ctx, s.demo)
				return err
			})
			if err != nil {
				return err
			}
			if asJSON {
				if records == nil {
					records = []efitui.KeyRecord{}
				}
				data, err := json.Marshal(records)
				if err != nil {
					return err
				}
				return prettyx.PrettyTo(cmd.OutOrStdout(), data, prettyx.DefaultOptions)
			}
			for _, r := range records {
				fmt.Fprintln(cmd.OutOrStdout(), r.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print recorded events as JSON")
	return cmd
}

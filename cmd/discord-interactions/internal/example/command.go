package example

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func NewExampleCommand() *cobra.Command {
	var modal bool

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print an example component payload",
		Args:  cobra.NoArgs,
		Example: `  discord-interactions example
  discord-interactions example --modal > modal.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			build := messageComponents
			if modal {
				build = modalComponents
			}
			list, err := build()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(list, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&modal, "modal", false, "Print modal text inputs instead of message components")

	return cmd
}

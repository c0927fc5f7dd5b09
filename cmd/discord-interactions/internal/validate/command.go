package validate

import (
	"github.com/spf13/cobra"
)

func NewValidateCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a component payload against Discord's limits",
		Long: "Decode a component payload (a single component or a JSON array) and report\n" +
			"every constraint it breaks. Reads stdin when no file is given or file is \"-\".",
		Args: cobra.MaximumNArgs(1),
		Example: `  discord-interactions validate payload.json
  discord-interactions validate --message payload.json
  cat payload.json | discord-interactions validate --config ./limits.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.path = args[0]
			}
			return validateCmd(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "",
		"Config file path (default: ~/.discord-interactions/config.json)")
	cmd.Flags().BoolVarP(&opts.message, "message", "m", false,
		"Treat the payload as a message's top-level components")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging")

	return cmd
}

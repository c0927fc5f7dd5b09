// discord-interactions - typed Discord message components
// License: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dqrshan/discord-interactions/cmd/discord-interactions/internal"
	"github.com/Dqrshan/discord-interactions/cmd/discord-interactions/internal/example"
	"github.com/Dqrshan/discord-interactions/cmd/discord-interactions/internal/validate"
	"github.com/Dqrshan/discord-interactions/cmd/discord-interactions/internal/version"
)

func NewRootCommand() *cobra.Command {
	short := fmt.Sprintf("%s discord-interactions - Discord message components v%s\n\n", internal.Logo, internal.GetVersion())

	cmd := &cobra.Command{
		Use:           "discord-interactions",
		Short:         short,
		Example:       "discord-interactions validate payload.json",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		validate.NewValidateCommand(),
		example.NewExampleCommand(),
		version.NewVersionCommand(),
	)

	return cmd
}

func main() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

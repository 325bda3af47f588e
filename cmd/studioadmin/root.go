package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the studioadmin command tree.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "studioadmin",
		Short:         "Piano studio admin backend",
		Long:          "studioadmin serves the studio admin API and runs its maintenance jobs.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(
		newServeCmd(),
		newSeedTemplatesCmd(),
		newAutomationCmd(),
		newWindowCmd(),
	)
	return cmd
}

package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "vow",
		Short:         "Vow evaluates composable runtime contracts against YAML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newReplCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

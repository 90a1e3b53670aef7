package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vow/internal/registry"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule types available to suites",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ruleType := range registry.Default().Types() {
				fmt.Fprintln(cmd.OutOrStdout(), ruleType)
			}
			return nil
		},
	}

	return cmd
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vow/internal/registry"
	"github.com/alexisbeaulieu97/vow/internal/suite"
	"github.com/alexisbeaulieu97/vow/internal/tui"
)

type replOptions struct {
	SuitePath  string
	ContractID string
}

func newReplCmd() *cobra.Command {
	opts := replOptions{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively evaluate values against one contract of a suite",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.SuitePath, "suite", "s", "", "Path to the contract suite file (required)")
	cmd.Flags().StringVarP(&opts.ContractID, "contract", "c", "", "ID of the contract to check against (required)")
	_ = cmd.MarkFlagRequired("suite")
	_ = cmd.MarkFlagRequired("contract")

	return cmd
}

func runRepl(opts replOptions) error {
	s, err := suite.Parse(opts.SuitePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing suite: %v\n", err)
		os.Exit(2)
	}

	spec, err := findContract(s, opts.ContractID)
	if err != nil {
		return err
	}

	compiled, err := registry.Default().Compile(spec)
	if err != nil {
		return err
	}

	model := tui.NewModel(s.Name, spec.ID, spec.Field, compiled)
	_, err = tea.NewProgram(model).Run()
	return err
}

func findContract(s *suite.Suite, id string) (suite.ContractSpec, error) {
	for _, spec := range s.Contracts {
		if spec.ID == id {
			return spec, nil
		}
	}
	return suite.ContractSpec{}, fmt.Errorf("suite %q has no contract %q", s.Name, id)
}

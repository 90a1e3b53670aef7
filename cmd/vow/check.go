package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vow/internal/logger"
	"github.com/alexisbeaulieu97/vow/internal/registry"
	"github.com/alexisbeaulieu97/vow/internal/render"
	"github.com/alexisbeaulieu97/vow/internal/runner"
	"github.com/alexisbeaulieu97/vow/internal/suite"
	"github.com/alexisbeaulieu97/vow/pkg/contracts"
)

type checkOptions struct {
	SuitePath string
	JSON      bool
	Verbose   bool
}

func newCheckCmd(root *rootFlags) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <document-file>...",
		Short: "Evaluate documents against a contract suite",
		Long: `Check evaluates one or more YAML documents against a contract suite and
reports every violated contract, including every leaf check that failed.
Returns exit code 0 when all contracts are satisfied, exit code 1 when any
contract is violated.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			return runCheck(opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.SuitePath, "suite", "s", "", "Path to the contract suite file (required)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results in JSON format")
	_ = cmd.MarkFlagRequired("suite")

	return cmd
}

func runCheck(opts checkOptions, documents []string) error {
	s, err := suite.Parse(opts.SuitePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing suite: %v\n", err)
		os.Exit(2)
	}

	level := "warn"
	if opts.Verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: !opts.JSON})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(3)
	}

	reports, err := checkDocuments(context.Background(), s, registry.Default(), log, documents)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	failed := false
	for _, rep := range reports {
		if rep.Failed() {
			failed = true
		}
		if opts.JSON {
			printJSONReport(rep)
		} else {
			fmt.Print(render.Report(rep))
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}

// checkDocuments evaluates the suite against every document, in order.
// Violations live in the reports; the error covers parse and
// compilation problems only.
func checkDocuments(ctx context.Context, s *suite.Suite, reg *registry.Registry, log *logger.Logger, paths []string) ([]*runner.Report, error) {
	run := runner.New(reg, log)

	reports := make([]*runner.Report, 0, len(paths))
	for _, path := range paths {
		doc, err := suite.ParseDocument(path)
		if err != nil {
			return nil, err
		}

		rep, err := run.Run(ctx, s, doc)
		if err != nil {
			return nil, err
		}
		rep.Document = path
		reports = append(reports, rep)
	}

	return reports, nil
}

type jsonFailure struct {
	Name    string        `json:"name"`
	Message string        `json:"message"`
	Nested  []jsonFailure `json:"nested,omitempty"`
}

type jsonResult struct {
	ID        string       `json:"id"`
	Field     string       `json:"field"`
	Satisfied bool         `json:"satisfied"`
	Value     any          `json:"value,omitempty"`
	Failure   *jsonFailure `json:"failure,omitempty"`
}

type jsonReport struct {
	Suite    string       `json:"suite"`
	Document string       `json:"document"`
	Checked  int          `json:"checked"`
	Violated int          `json:"violated"`
	Duration float64      `json:"duration_seconds"`
	Results  []jsonResult `json:"results"`
}

func printJSONReport(rep *runner.Report) {
	out := jsonReport{
		Suite:    rep.Suite,
		Document: rep.Document,
		Checked:  len(rep.Results),
		Violated: rep.Violated,
		Duration: rep.Duration.Seconds(),
		Results:  make([]jsonResult, len(rep.Results)),
	}

	for i, result := range rep.Results {
		jr := jsonResult{ID: result.ID, Field: result.Field, Satisfied: result.Satisfied()}
		if result.Satisfied() {
			jr.Value = result.Verdict.Value()
		} else {
			jr.Failure = toJSONFailure(result.Verdict.Failure())
		}
		out.Results[i] = jr
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(out)
}

func toJSONFailure(f *contracts.Failure) *jsonFailure {
	if f == nil {
		return nil
	}
	out := &jsonFailure{Name: f.Name, Message: f.Message}
	for _, nested := range f.Nested {
		out.Nested = append(out.Nested, *toJSONFailure(nested))
	}
	return out
}

// Package runner evaluates compiled contract suites against candidate
// documents and aggregates the verdicts into a report.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/vow/internal/logger"
	"github.com/alexisbeaulieu97/vow/internal/registry"
	"github.com/alexisbeaulieu97/vow/internal/suite"
	"github.com/alexisbeaulieu97/vow/pkg/contracts"
)

// Result captures the verdict for a single contract of the suite.
type Result struct {
	ID      string
	Field   string
	Verdict contracts.Verdict[any]
}

// Satisfied reports whether the contract accepted the value.
func (r Result) Satisfied() bool {
	return r.Verdict.Satisfied()
}

// Report aggregates the results of one suite evaluation. Results keep
// the order contracts were declared in.
type Report struct {
	Suite     string
	Document  string
	Results   []Result
	Satisfied int
	Violated  int
	Duration  time.Duration
}

// Failed reports whether any contract was violated.
func (r *Report) Failed() bool {
	return r.Violated > 0
}

// Runner evaluates suites. Evaluation itself is pure; the runner owns
// the impure edges: compilation, logging, and cancellation.
type Runner struct {
	registry *registry.Registry
	log      *logger.Logger
}

// New constructs a Runner using the given rule registry.
func New(reg *registry.Registry, log *logger.Logger) *Runner {
	return &Runner{registry: reg, log: log}
}

// Run compiles every contract of the suite and evaluates each against
// the document. Violations are recorded in the report, never returned as
// errors; the error return covers compilation problems and context
// cancellation only. Contracts are checked in declaration order and the
// context is consulted between contracts, not during an evaluation,
// since a single evaluation is synchronous and CPU-bound.
func (r *Runner) Run(ctx context.Context, s *suite.Suite, doc suite.Document) (*Report, error) {
	started := time.Now()

	compiled := make([]contracts.Contract[any], len(s.Contracts))
	for i, spec := range s.Contracts {
		c, err := r.registry.Compile(spec)
		if err != nil {
			return nil, err
		}
		compiled[i] = c
	}

	log := r.log.WithSuite(s.Name)
	report := &Report{Suite: s.Name, Results: make([]Result, 0, len(s.Contracts))}

	for i, spec := range s.Contracts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		verdict := evaluateField(compiled[i], spec, doc)
		if verdict.Satisfied() {
			report.Satisfied++
			log.WithFields(map[string]any{"contract": spec.ID, "field": spec.Field}).Debug("contract satisfied")
		} else {
			report.Violated++
			log.Violation(spec.ID, verdict.Failure().LeafNames())
		}

		report.Results = append(report.Results, Result{ID: spec.ID, Field: spec.Field, Verdict: verdict})
	}

	report.Duration = time.Since(started)
	return report, nil
}

// evaluateField resolves the spec's field in the document and applies
// the compiled contract. A missing field is a violation of the contract,
// not an error: absence is just another way a document can break its
// contract.
func evaluateField(c contracts.Contract[any], spec suite.ContractSpec, doc suite.Document) contracts.Verdict[any] {
	value, ok := doc.Lookup(spec.Field)
	if !ok {
		failure := contracts.NewFailure(spec.ID, fmt.Sprintf("field %q is not present in the document", spec.Field))
		return contracts.Violate[any](failure)
	}
	return c.Evaluate(value)
}

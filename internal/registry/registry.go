// Package registry maps rule types to factories that build runnable
// contracts from suite rule specs, and compiles contract specs into
// composed contracts.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/vow/internal/suite"
	"github.com/alexisbeaulieu97/vow/pkg/contracts"
	vowerrors "github.com/alexisbeaulieu97/vow/pkg/errors"
)

// Factory builds a contract from a rule spec, validating the spec's
// parameters in the process.
type Factory func(spec suite.RuleSpec) (contracts.Contract[any], error)

// Registry holds the known rule factories. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New returns an empty registry. Most callers want Default instead.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the provided rule type.
func (r *Registry) Register(ruleType string, f Factory) error {
	if f == nil {
		return vowerrors.NewSuiteError("", fmt.Sprintf("factory for rule type %q is nil", ruleType), nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[ruleType]; exists {
		return vowerrors.NewSuiteError("", fmt.Sprintf("rule type %q already registered", ruleType), nil)
	}

	r.factories[ruleType] = f
	return nil
}

// Build constructs the contract for a single rule spec.
func (r *Registry) Build(spec suite.RuleSpec) (contracts.Contract[any], error) {
	r.mu.RLock()
	factory, ok := r.factories[spec.Type]
	r.mu.RUnlock()

	if !ok {
		return contracts.Contract[any]{}, fmt.Errorf("unknown rule type %q", spec.Type)
	}

	c, err := factory(spec)
	if err != nil {
		return contracts.Contract[any]{}, err
	}

	if spec.Message != "" {
		c = withMessage(c, spec.Message)
	}
	return c, nil
}

// Types returns the registered rule types in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Compile builds every rule of a contract spec and composes them
// according to the spec's mode: "all" folds with And, "any" with Or.
// Failures are reported under the spec's ID with the violated rules
// nested beneath it, so leaf rule names survive even when only one rule
// rejected the value.
func (r *Registry) Compile(spec suite.ContractSpec) (contracts.Contract[any], error) {
	rules := make([]contracts.Contract[any], 0, len(spec.Rules))
	for _, rule := range spec.Rules {
		c, err := r.Build(rule)
		if err != nil {
			return contracts.Contract[any]{}, vowerrors.NewSuiteError(spec.ID, err.Error(), err)
		}
		rules = append(rules, c)
	}

	var composed contracts.Contract[any]
	switch spec.CompositionMode() {
	case suite.ModeAny:
		composed = contracts.Any(rules...)
	default:
		composed = contracts.All(rules...)
	}

	return contracts.Named(spec.ID, func(v any) contracts.Verdict[any] {
		verdict := composed.Evaluate(v)
		if verdict.Satisfied() {
			return verdict
		}

		failure := verdict.Failure()
		nested := []*contracts.Failure{failure}
		if !failure.IsLeaf() {
			nested = failure.Nested
		}
		return contracts.Violate[any](&contracts.Failure{
			Name:    spec.ID,
			Message: fmt.Sprintf("%d rule(s) violated", len(failure.Leaves())),
			Nested:  nested,
		})
	}), nil
}

// withMessage replaces the top-level failure message while keeping the
// failure's name and nested diagnostics.
func withMessage(c contracts.Contract[any], message string) contracts.Contract[any] {
	return contracts.Named(c.Name(), func(v any) contracts.Verdict[any] {
		verdict := c.Evaluate(v)
		if verdict.Satisfied() {
			return verdict
		}
		failure := verdict.Failure()
		return contracts.Violate[any](&contracts.Failure{
			Name:    failure.Name,
			Message: message,
			Nested:  failure.Nested,
		})
	})
}

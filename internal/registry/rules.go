package registry

import (
	"fmt"
	"regexp"

	"github.com/alexisbeaulieu97/vow/internal/suite"
	"github.com/alexisbeaulieu97/vow/pkg/contracts"
	"github.com/alexisbeaulieu97/vow/pkg/contracts/check"
)

// Default returns a registry with every built-in rule type registered.
func Default() *Registry {
	r := New()
	for ruleType, factory := range builtins() {
		// Registration over a fresh registry cannot collide.
		_ = r.Register(ruleType, factory)
	}
	return r
}

func builtins() map[string]Factory {
	return map[string]Factory{
		"non_empty": func(suite.RuleSpec) (contracts.Contract[any], error) {
			return liftString(check.NonEmpty()), nil
		},
		"min_len": func(spec suite.RuleSpec) (contracts.Contract[any], error) {
			if spec.Length == nil {
				return contracts.Contract[any]{}, fmt.Errorf("rule min_len requires length")
			}
			return liftString(check.MinLen(*spec.Length)), nil
		},
		"max_len": func(spec suite.RuleSpec) (contracts.Contract[any], error) {
			if spec.Length == nil {
				return contracts.Contract[any]{}, fmt.Errorf("rule max_len requires length")
			}
			return liftString(check.MaxLen(*spec.Length)), nil
		},
		"matches": func(spec suite.RuleSpec) (contracts.Contract[any], error) {
			if spec.Pattern == "" {
				return contracts.Contract[any]{}, fmt.Errorf("rule matches requires pattern")
			}
			re, err := regexp.Compile(spec.Pattern)
			if err != nil {
				return contracts.Contract[any]{}, fmt.Errorf("rule matches: invalid pattern: %w", err)
			}
			return liftString(check.Matches(re)), nil
		},
		"one_of": func(spec suite.RuleSpec) (contracts.Contract[any], error) {
			if len(spec.Values) == 0 {
				return contracts.Contract[any]{}, fmt.Errorf("rule one_of requires values")
			}
			return liftString(check.OneOf(spec.Values...)), nil
		},
		"trimmed": func(suite.RuleSpec) (contracts.Contract[any], error) {
			return liftString(check.Trimmed()), nil
		},
		"lower_cased": func(suite.RuleSpec) (contracts.Contract[any], error) {
			return liftString(check.LowerCased()), nil
		},
		"positive": func(suite.RuleSpec) (contracts.Contract[any], error) {
			return liftNumber(check.Positive[float64]()), nil
		},
		"non_negative": func(suite.RuleSpec) (contracts.Contract[any], error) {
			return liftNumber(check.NonNegative[float64]()), nil
		},
		"range": func(spec suite.RuleSpec) (contracts.Contract[any], error) {
			if spec.Min == nil || spec.Max == nil {
				return contracts.Contract[any]{}, fmt.Errorf("rule range requires min and max")
			}
			return liftNumber(check.Range(*spec.Min, *spec.Max)), nil
		},
		"finite": func(suite.RuleSpec) (contracts.Contract[any], error) {
			return liftNumber(check.Finite()), nil
		},
	}
}

// liftString adapts a string contract to document values, violating with
// a type diagnostic when the value is not a string.
func liftString(c contracts.Contract[string]) contracts.Contract[any] {
	name := c.Name()
	return contracts.Named(name, func(v any) contracts.Verdict[any] {
		s, ok := v.(string)
		if !ok {
			return contracts.Violate[any](contracts.NewFailure(name, fmt.Sprintf("expected a string, got %T", v)))
		}

		verdict := c.Evaluate(s)
		if !verdict.Satisfied() {
			return contracts.Violate[any](verdict.Failure())
		}
		return contracts.Satisfy[any](verdict.Value())
	})
}

// liftNumber adapts a float64 contract to document values. YAML decodes
// numeric scalars as int or float64 depending on shape, so both are
// accepted.
func liftNumber(c contracts.Contract[float64]) contracts.Contract[any] {
	name := c.Name()
	return contracts.Named(name, func(v any) contracts.Verdict[any] {
		f, ok := asFloat(v)
		if !ok {
			return contracts.Violate[any](contracts.NewFailure(name, fmt.Sprintf("expected a number, got %T", v)))
		}

		verdict := c.Evaluate(f)
		if !verdict.Satisfied() {
			return contracts.Violate[any](verdict.Failure())
		}
		return contracts.Satisfy[any](verdict.Value())
	})
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

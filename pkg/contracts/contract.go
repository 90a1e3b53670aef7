// Package contracts provides composable runtime contracts: named, pure
// predicates over a value that yield either the accepted (possibly
// normalized) value or a structured failure describing every check that
// was violated.
//
// Contracts are immutable once constructed and their rules must be pure,
// so a single contract instance is safe for concurrent use without
// locking. Violations are ordinary return values, never panics; callers
// decide whether a violated verdict is fatal in their context.
package contracts

// Rule evaluates a candidate value and produces a verdict. Rules must be
// pure: deterministic and free of observable side effects.
type Rule[T any] func(T) Verdict[T]

// Contract is a named, reusable check over a value of type T. The zero
// value is not usable; construct contracts with Named, Identity, or the
// combinator methods.
type Contract[T any] struct {
	name string
	rule Rule[T]
}

// Named builds a primitive contract from a diagnostic name and an
// evaluation rule. The name is used only in failure diagnostics and is
// not required to be unique.
func Named[T any](name string, rule Rule[T]) Contract[T] {
	return Contract[T]{name: name, rule: rule}
}

// NamedPredicate builds a contract from a plain boolean predicate and a
// message used when the predicate rejects the value. The accepted value
// passes through unchanged.
func NamedPredicate[T any](name string, pred func(T) bool, message string) Contract[T] {
	return Contract[T]{name: name, rule: func(v T) Verdict[T] {
		if pred(v) {
			return Satisfy(v)
		}
		return Violate[T](NewFailure(name, message))
	}}
}

// Name returns the diagnostic name the contract was constructed with.
func (c Contract[T]) Name() string {
	return c.name
}

// Evaluate applies the contract's rule to value. Evaluation is
// deterministic and side-effect free; an unmet contract is reported
// through the returned verdict, never through a panic.
func (c Contract[T]) Evaluate(value T) Verdict[T] {
	return c.rule(value)
}

package contracts

// Verdict is the outcome of evaluating a contract against a value.
// Exactly one of the two variants holds: Satisfied carries the accepted
// (possibly transformed) value, Violated carries a structured failure.
type Verdict[T any] struct {
	value   T
	failure *Failure
}

// Satisfy builds a satisfied verdict carrying the accepted value.
func Satisfy[T any](value T) Verdict[T] {
	return Verdict[T]{value: value}
}

// Violate builds a violated verdict carrying the failure diagnostics.
func Violate[T any](failure *Failure) Verdict[T] {
	return Verdict[T]{failure: failure}
}

// Satisfied reports whether the verdict is the satisfied variant.
func (v Verdict[T]) Satisfied() bool {
	return v.failure == nil
}

// Value returns the accepted value. For a violated verdict it returns
// the zero value of T; check Satisfied first.
func (v Verdict[T]) Value() T {
	return v.value
}

// Failure returns the failure diagnostics, or nil when satisfied.
func (v Verdict[T]) Failure() *Failure {
	return v.failure
}

package contracts

// Requires checks an arbitrary condition, typically an argument guard at
// the start of a function. It returns nil when the predicate holds and a
// *Failure otherwise. Calling Requires once per argument keeps the
// returned message specific to the offending argument.
func Requires(pred func() bool, message string) error {
	if pred() {
		return nil
	}
	return NewFailure("requires", message)
}

// Ensures checks a condition against a computed value, typically a
// result guard at the end of a function, and yields the value when the
// predicate holds. On failure the value is still returned alongside a
// *Failure so callers can inspect what was rejected.
func Ensures[T any](value T, pred func(T) bool, message string) (T, error) {
	if pred(value) {
		return value, nil
	}
	return value, NewFailure("ensures", message)
}

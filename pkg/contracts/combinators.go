package contracts

// And combines two contracts into sequential refinement: the result is
// satisfied only when both constituents are, and the accepted value is
// the right side's accepted value computed from the left side's accepted
// value. Both sides are evaluated eagerly so a single pass reports every
// violation; when the left side is violated the right side still
// evaluates the original input. Nested failures preserve left-to-right
// declaration order.
//
// Identity is the identity element for And, and And is associative up to
// failure grouping: regrouped compositions report the same leaf names.
func (c Contract[T]) And(other Contract[T]) Contract[T] {
	name := c.name + " and " + other.name
	return Contract[T]{name: name, rule: func(v T) Verdict[T] {
		left := c.Evaluate(v)

		input := v
		if left.Satisfied() {
			input = left.Value()
		}
		right := other.Evaluate(input)

		if left.Satisfied() && right.Satisfied() {
			return Satisfy(right.Value())
		}

		var violated []*Failure
		if !left.Satisfied() {
			violated = append(violated, left.Failure())
		}
		if !right.Satisfied() {
			violated = append(violated, right.Failure())
		}
		// A single violated constituent keeps its own failure shape so
		// composing with Identity changes nothing observable.
		if len(violated) == 1 {
			return Violate[T](violated[0])
		}
		return Violate[T](newCompositeFailure(name, "all constituent contracts must hold", violated))
	}}
}

// Or combines two contracts into alternatives: satisfied when at least
// one constituent is, with the left side taking priority when both
// accept. Violated only when both constituents are, with nested failures
// in left-to-right order.
func (c Contract[T]) Or(other Contract[T]) Contract[T] {
	name := c.name + " or " + other.name
	return Contract[T]{name: name, rule: func(v T) Verdict[T] {
		left := c.Evaluate(v)
		if left.Satisfied() {
			return left
		}

		right := other.Evaluate(v)
		if right.Satisfied() {
			return right
		}

		nested := []*Failure{left.Failure(), right.Failure()}
		return Violate[T](newCompositeFailure(name, "no alternative contract holds", nested))
	}}
}

// Identity returns the contract that accepts every value unchanged. It
// is the identity element for And: c.And(Identity()) evaluates exactly
// like c, including the shape of any failure.
func Identity[T any]() Contract[T] {
	return Contract[T]{name: "identity", rule: func(v T) Verdict[T] {
		return Satisfy(v)
	}}
}

// All folds the given contracts with And, left to right. All of no
// contracts is Identity.
func All[T any](cs ...Contract[T]) Contract[T] {
	if len(cs) == 0 {
		return Identity[T]()
	}
	combined := cs[0]
	for _, c := range cs[1:] {
		combined = combined.And(c)
	}
	return combined
}

// Any folds the given contracts with Or, left to right. Any of no
// contracts is Identity: with no alternatives to violate, every value is
// vacuously accepted.
func Any[T any](cs ...Contract[T]) Contract[T] {
	if len(cs) == 0 {
		return Identity[T]()
	}
	combined := cs[0]
	for _, c := range cs[1:] {
		combined = combined.Or(c)
	}
	return combined
}

// Map applies transform to the accepted value after the contract is
// satisfied, letting a pipeline normalize values (trim, clamp) as it
// checks them. On violation the failure passes through unchanged and
// transform is never invoked.
func (c Contract[T]) Map(transform func(T) T) Contract[T] {
	return Contract[T]{name: c.name, rule: func(v T) Verdict[T] {
		verdict := c.Evaluate(v)
		if !verdict.Satisfied() {
			return verdict
		}
		return Satisfy(transform(verdict.Value()))
	}}
}

// NamedAs wraps the contract under a new diagnostic name. Evaluation
// behavior is unchanged; only the top-level name reported in failures is
// replaced, nested failures keep their own names.
func (c Contract[T]) NamedAs(name string) Contract[T] {
	return Contract[T]{name: name, rule: func(v T) Verdict[T] {
		verdict := c.Evaluate(v)
		if verdict.Satisfied() {
			return verdict
		}
		return Violate[T](verdict.Failure().renamed(name))
	}}
}

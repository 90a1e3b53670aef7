package check

import (
	"fmt"
	"math"

	"github.com/alexisbeaulieu97/vow/pkg/contracts"
)

// Number is a type constraint covering the built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Positive accepts values strictly greater than zero.
func Positive[T Number]() contracts.Contract[T] {
	return contracts.NamedPredicate("positive", func(n T) bool {
		return n > 0
	}, "must be positive")
}

// NonNegative accepts values greater than or equal to zero.
func NonNegative[T Number]() contracts.Contract[T] {
	return contracts.NamedPredicate("non_negative", func(n T) bool {
		return n >= 0
	}, "must not be negative")
}

// Range accepts values between min and max inclusive.
func Range[T Number](min, max T) contracts.Contract[T] {
	return contracts.NamedPredicate("range", func(n T) bool {
		return n >= min && n <= max
	}, fmt.Sprintf("must be between %v and %v", min, max))
}

// Finite rejects NaN and infinities.
func Finite() contracts.Contract[float64] {
	return contracts.NamedPredicate("finite", func(f float64) bool {
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}, "must be a finite number")
}

// Clamped accepts every value and clamps the accepted value into the
// [min, max] range.
func Clamped[T Number](min, max T) contracts.Contract[T] {
	return contracts.Identity[T]().Map(func(n T) T {
		if n < min {
			return min
		}
		if n > max {
			return max
		}
		return n
	}).NamedAs("clamped")
}

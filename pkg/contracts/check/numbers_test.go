package check_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vow/pkg/contracts/check"
)

func TestPositive(t *testing.T) {
	t.Parallel()

	require.True(t, check.Positive[int]().Evaluate(1).Satisfied())
	require.False(t, check.Positive[int]().Evaluate(0).Satisfied())
	require.False(t, check.Positive[float64]().Evaluate(-0.5).Satisfied())
}

func TestNonNegative(t *testing.T) {
	t.Parallel()

	require.True(t, check.NonNegative[int]().Evaluate(0).Satisfied())
	require.False(t, check.NonNegative[int]().Evaluate(-1).Satisfied())
}

func TestRange(t *testing.T) {
	t.Parallel()

	age := check.Range(0, 150)
	require.True(t, age.Evaluate(0).Satisfied())
	require.True(t, age.Evaluate(150).Satisfied())

	verdict := age.Evaluate(151)
	require.False(t, verdict.Satisfied())
	require.Equal(t, "range", verdict.Failure().Name)
	require.Contains(t, verdict.Failure().Message, "between 0 and 150")
}

func TestFinite(t *testing.T) {
	t.Parallel()

	require.True(t, check.Finite().Evaluate(3.14).Satisfied())
	require.False(t, check.Finite().Evaluate(math.NaN()).Satisfied())
	require.False(t, check.Finite().Evaluate(math.Inf(1)).Satisfied())
	require.False(t, check.Finite().Evaluate(math.Inf(-1)).Satisfied())
}

func TestClamped(t *testing.T) {
	t.Parallel()

	c := check.Clamped(0, 100)
	require.Equal(t, 100, c.Evaluate(250).Value())
	require.Equal(t, 0, c.Evaluate(-5).Value())
	require.Equal(t, 42, c.Evaluate(42).Value())
}

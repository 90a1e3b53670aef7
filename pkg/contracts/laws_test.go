package contracts_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vow/pkg/contracts"
)

var lawInputs = []int{-4, -3, -1, 0, 1, 2, 3, 4, 100}

func multipleOfThree() contracts.Contract[int] {
	return contracts.NamedPredicate("multiple_of_three", func(n int) bool { return n%3 == 0 }, "must be a multiple of three")
}

func sortedLeafNames(f *contracts.Failure) []string {
	names := append([]string(nil), f.LeafNames()...)
	sort.Strings(names)
	return names
}

func TestIdentityLaw(t *testing.T) {
	t.Parallel()

	for _, c := range []contracts.Contract[int]{positive(), even(), positive().And(even())} {
		for _, value := range lawInputs {
			bare := c.Evaluate(value)
			left := c.And(contracts.Identity[int]()).Evaluate(value)
			right := contracts.Identity[int]().And(c).Evaluate(value)

			for _, composed := range []contracts.Verdict[int]{left, right} {
				require.Equal(t, bare.Satisfied(), composed.Satisfied(), "value %d", value)
				if bare.Satisfied() {
					require.Equal(t, bare.Value(), composed.Value(), "value %d", value)
				} else {
					// Exact failure-shape equivalence, not just the
					// same leaf set.
					require.Equal(t, bare.Failure(), composed.Failure(), "value %d", value)
				}
			}
		}
	}
}

func TestAndAssociativity(t *testing.T) {
	t.Parallel()

	a, b, c := positive(), even(), multipleOfThree()
	grouped := a.And(b).And(c)
	regrouped := a.And(b.And(c))

	for _, value := range lawInputs {
		left := grouped.Evaluate(value)
		right := regrouped.Evaluate(value)

		require.Equal(t, left.Satisfied(), right.Satisfied(), "value %d", value)
		if left.Satisfied() {
			require.Equal(t, left.Value(), right.Value(), "value %d", value)
			continue
		}
		// Grouping may differ; the set of violated leaf contracts must
		// not.
		require.Equal(t, sortedLeafNames(left.Failure()), sortedLeafNames(right.Failure()), "value %d", value)
	}
}

func TestOrAssociativity(t *testing.T) {
	t.Parallel()

	a, b, c := positive(), even(), multipleOfThree()
	grouped := a.Or(b).Or(c)
	regrouped := a.Or(b.Or(c))

	for _, value := range lawInputs {
		left := grouped.Evaluate(value)
		right := regrouped.Evaluate(value)

		require.Equal(t, left.Satisfied(), right.Satisfied(), "value %d", value)
		if left.Satisfied() {
			require.Equal(t, left.Value(), right.Value(), "value %d", value)
			continue
		}
		require.Equal(t, sortedLeafNames(left.Failure()), sortedLeafNames(right.Failure()), "value %d", value)
	}
}

func TestPositiveAndEvenComposite(t *testing.T) {
	t.Parallel()

	c := positive().And(even())

	verdict := c.Evaluate(4)
	require.True(t, verdict.Satisfied())
	require.Equal(t, 4, verdict.Value())

	verdict = c.Evaluate(-3)
	require.False(t, verdict.Satisfied())
	require.Equal(t, []string{"positive", "even"}, verdict.Failure().LeafNames())

	verdict = c.Evaluate(3)
	require.False(t, verdict.Satisfied())
	require.Equal(t, []string{"even"}, verdict.Failure().LeafNames())
}

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vow/internal/registry"
	"github.com/alexisbeaulieu97/vow/internal/suite"
)

func TestStringRules(t *testing.T) {
	t.Parallel()

	r := registry.Default()

	t.Run("matches", func(t *testing.T) {
		t.Parallel()
		c, err := r.Build(suite.RuleSpec{Type: "matches", Pattern: `^[a-z]+$`})
		require.NoError(t, err)

		require.True(t, c.Evaluate("hello").Satisfied())
		require.False(t, c.Evaluate("Hello").Satisfied())
	})

	t.Run("matches rejects invalid pattern", func(t *testing.T) {
		t.Parallel()
		_, err := r.Build(suite.RuleSpec{Type: "matches", Pattern: `([`})
		require.ErrorContains(t, err, "invalid pattern")
	})

	t.Run("one_of", func(t *testing.T) {
		t.Parallel()
		c, err := r.Build(suite.RuleSpec{Type: "one_of", Values: []string{"red", "green"}})
		require.NoError(t, err)

		require.True(t, c.Evaluate("green").Satisfied())
		require.False(t, c.Evaluate("blue").Satisfied())
	})

	t.Run("min_len requires length", func(t *testing.T) {
		t.Parallel()
		_, err := r.Build(suite.RuleSpec{Type: "min_len"})
		require.ErrorContains(t, err, "requires length")
	})

	t.Run("trimmed normalizes the accepted value", func(t *testing.T) {
		t.Parallel()
		c, err := r.Build(suite.RuleSpec{Type: "trimmed"})
		require.NoError(t, err)

		verdict := c.Evaluate("  spaced  ")
		require.True(t, verdict.Satisfied())
		require.Equal(t, "spaced", verdict.Value())
	})

	t.Run("type mismatch is a violation, not an error", func(t *testing.T) {
		t.Parallel()
		c, err := r.Build(suite.RuleSpec{Type: "non_empty"})
		require.NoError(t, err)

		verdict := c.Evaluate(42)
		require.False(t, verdict.Satisfied())
		require.Contains(t, verdict.Failure().Message, "expected a string")
	})
}

func TestNumberRules(t *testing.T) {
	t.Parallel()

	r := registry.Default()

	t.Run("range accepts ints and floats", func(t *testing.T) {
		t.Parallel()
		min, max := 0.0, 150.0
		c, err := r.Build(suite.RuleSpec{Type: "range", Min: &min, Max: &max})
		require.NoError(t, err)

		// YAML decodes whole numbers as int.
		require.True(t, c.Evaluate(30).Satisfied())
		require.True(t, c.Evaluate(29.5).Satisfied())
		require.False(t, c.Evaluate(-1).Satisfied())
	})

	t.Run("range requires bounds", func(t *testing.T) {
		t.Parallel()
		min := 0.0
		_, err := r.Build(suite.RuleSpec{Type: "range", Min: &min})
		require.ErrorContains(t, err, "requires min and max")
	})

	t.Run("positive", func(t *testing.T) {
		t.Parallel()
		c, err := r.Build(suite.RuleSpec{Type: "positive"})
		require.NoError(t, err)

		require.True(t, c.Evaluate(3).Satisfied())
		require.False(t, c.Evaluate(0).Satisfied())
	})

	t.Run("type mismatch is a violation", func(t *testing.T) {
		t.Parallel()
		c, err := r.Build(suite.RuleSpec{Type: "positive"})
		require.NoError(t, err)

		verdict := c.Evaluate("three")
		require.False(t, verdict.Satisfied())
		require.Contains(t, verdict.Failure().Message, "expected a number")
	})
}

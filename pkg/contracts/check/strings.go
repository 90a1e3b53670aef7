// Package check provides ready-made primitive contracts for common
// string and numeric conditions, so suites and host applications share
// one vocabulary of checks.
package check

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/vow/pkg/contracts"
)

// NonEmpty accepts strings with at least one character.
func NonEmpty() contracts.Contract[string] {
	return contracts.NamedPredicate("non_empty", func(s string) bool {
		return s != ""
	}, "must not be empty")
}

// MinLen accepts strings with at least n characters (runes, not bytes).
func MinLen(n int) contracts.Contract[string] {
	return contracts.NamedPredicate("min_len", func(s string) bool {
		return utf8.RuneCountInString(s) >= n
	}, fmt.Sprintf("must be at least %d characters", n))
}

// MaxLen accepts strings with at most n characters (runes, not bytes).
func MaxLen(n int) contracts.Contract[string] {
	return contracts.NamedPredicate("max_len", func(s string) bool {
		return utf8.RuneCountInString(s) <= n
	}, fmt.Sprintf("must be at most %d characters", n))
}

// Matches accepts strings matched by the given pattern.
func Matches(re *regexp.Regexp) contracts.Contract[string] {
	return contracts.NamedPredicate("matches", func(s string) bool {
		return re.MatchString(s)
	}, fmt.Sprintf("must match %s", re.String()))
}

// OneOf accepts strings equal to one of the given values.
func OneOf(values ...string) contracts.Contract[string] {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	return contracts.NamedPredicate("one_of", func(s string) bool {
		_, ok := allowed[s]
		return ok
	}, fmt.Sprintf("must be one of [%s]", strings.Join(values, ", ")))
}

// Trimmed accepts every string and strips leading and trailing
// whitespace from the accepted value. Compose it to the left of other
// string contracts so they see the trimmed value.
func Trimmed() contracts.Contract[string] {
	return contracts.Identity[string]().Map(strings.TrimSpace).NamedAs("trimmed")
}

// LowerCased accepts every string and lowercases the accepted value.
func LowerCased() contracts.Contract[string] {
	return contracts.Identity[string]().Map(strings.ToLower).NamedAs("lower_cased")
}

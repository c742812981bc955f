package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Tags of the pattern validators. Detail 0 is the pattern source.
const (
	TagMatches      Tag = "pattern:matches"
	TagNoWhitespace Tag = "pattern:no_whitespace"
	TagPrintable    Tag = "pattern:printable"
)

// MatchesRegex validates that target matches re.
func MatchesRegex[D any](re *regexp.Regexp) Validator[string, D] {
	return Check[string, D](TagMatches, "does not match "+re.String(), re.MatchString, re.String())
}

// MatchesPattern compiles pattern on each run. A pattern that does not compile
// yields an errored report instead of an invalid one, so a bad pattern coming
// from configuration never reads as bad input.
func MatchesPattern[D any](pattern string) Validator[string, D] {
	return CheckErr[string, D](TagMatches, "does not match "+pattern, func(s string, _ D) (bool, error) {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false, fmt.Errorf("compile pattern %q: %w", pattern, err)
		}
		return re.MatchString(s), nil
	}, pattern)
}

// NoWhitespace rejects strings holding any whitespace character.
func NoWhitespace[D any]() Validator[string, D] {
	return Check[string, D](TagNoWhitespace, "contains whitespace", func(s string) bool {
		return strings.IndexFunc(s, unicode.IsSpace) < 0
	})
}

// Printable rejects control and other non-printable characters.
func Printable[D any]() Validator[string, D] {
	return Check[string, D](TagPrintable, "contains non-printable characters", func(s string) bool {
		return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsPrint(r) }) < 0
	})
}

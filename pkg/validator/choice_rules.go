package validator

import (
	"fmt"
	"slices"
	"strings"
)

// Tags of the choice validators. Detail 0 is the list of options.
const (
	TagOneOf  Tag = "choice:one_of"
	TagNoneOf Tag = "choice:none_of"
)

// OneOf validates that target is one of options.
func OneOf[D any, T comparable](options ...T) Validator[T, D] {
	return Check[T, D](TagOneOf, fmt.Sprintf("must be one of: %v", options), func(v T) bool {
		return slices.Contains(options, v)
	}, options)
}

// NoneOf validates that target is none of options.
func NoneOf[D any, T comparable](options ...T) Validator[T, D] {
	return Check[T, D](TagNoneOf, fmt.Sprintf("must not be one of: %v", options), func(v T) bool {
		return !slices.Contains(options, v)
	}, options)
}

// OneOfFold is OneOf for strings, ignoring case.
func OneOfFold[D any](options ...string) Validator[string, D] {
	return Check[string, D](TagOneOf, fmt.Sprintf("must be one of: %v", options), func(v string) bool {
		return slices.ContainsFunc(options, func(o string) bool { return strings.EqualFold(o, v) })
	}, options)
}

package validator

import (
	"cmp"
	"fmt"
)

// Tags of the comparison validators. Detail 0 is the compared-against value;
// TagWithin carries the lower bound at 0 and the upper bound at 1.
const (
	TagLT     Tag = "compare:lt"
	TagLE     Tag = "compare:le"
	TagGT     Tag = "compare:gt"
	TagGE     Tag = "compare:ge"
	TagEQ     Tag = "compare:eq"
	TagNE     Tag = "compare:ne"
	TagWithin Tag = "compare:within"
)

// LT validates target < other.
func LT[D any, T cmp.Ordered](other T) Validator[T, D] {
	return Check[T, D](TagLT, fmt.Sprintf("must be less than %v", other), func(v T) bool {
		return cmp.Less(v, other)
	}, other)
}

// LE validates target <= other.
func LE[D any, T cmp.Ordered](other T) Validator[T, D] {
	return Check[T, D](TagLE, fmt.Sprintf("must be less than or equal to %v", other), func(v T) bool {
		return cmp.Compare(v, other) <= 0
	}, other)
}

// GT validates target > other.
func GT[D any, T cmp.Ordered](other T) Validator[T, D] {
	return Check[T, D](TagGT, fmt.Sprintf("must be greater than %v", other), func(v T) bool {
		return cmp.Compare(v, other) > 0
	}, other)
}

// GE validates target >= other.
func GE[D any, T cmp.Ordered](other T) Validator[T, D] {
	return Check[T, D](TagGE, fmt.Sprintf("must be greater than or equal to %v", other), func(v T) bool {
		return cmp.Compare(v, other) >= 0
	}, other)
}

// EQ validates target == other. other is often a sibling field, e.g. a password
// confirmation compared against the password.
func EQ[D any, T comparable](other T) Validator[T, D] {
	return Check[T, D](TagEQ, fmt.Sprintf("must be equal to %v", other), func(v T) bool {
		return v == other
	}, other)
}

// NE validates target != other.
func NE[D any, T comparable](other T) Validator[T, D] {
	return Check[T, D](TagNE, fmt.Sprintf("must not be equal to %v", other), func(v T) bool {
		return v != other
	}, other)
}

// Within validates min <= target <= max.
func Within[D any, T cmp.Ordered](min, max T) Validator[T, D] {
	return Check[T, D](TagWithin, fmt.Sprintf("must be between %v and %v", min, max), func(v T) bool {
		return cmp.Compare(v, min) >= 0 && cmp.Compare(v, max) <= 0
	}, min, max)
}

// Required validates that target is not the zero value of its type.
func Required[D any, T comparable]() Validator[T, D] {
	var zero T
	return Check[T, D](TagRequired, "is required", func(v T) bool {
		return v != zero
	})
}

// TagRequired is the tag of Required.
const TagRequired Tag = "compare:required"

// TagEqualsField is the tag of EqualsField. Detail 0 is the sibling field name.
const TagEqualsField Tag = "compare:eq_field"

// EqualsField validates target == other, where other is the value of the
// sibling field name. The message names the field instead of echoing its value.
func EqualsField[D any, T comparable](name string, other T) Validator[T, D] {
	return Check[T, D](TagEqualsField, "must match "+name, func(v T) bool {
		return v == other
	}, name)
}

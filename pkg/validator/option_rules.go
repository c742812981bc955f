package validator

// Tags of the option validators.
const (
	TagOptionSome Tag = "option:some"
	TagOptionNone Tag = "option:none"
)

// OptionSomeThen forwards the pointed-to value to inner under the same
// accessor. A nil target is not validated and produces no report.
func OptionSomeThen[T, D any](inner Validator[T, D]) Validator[*T, D] {
	return ValidatorFunc[*T, D](func(c Collector, acc Accessor, target *T, data D, parent *Report) error {
		if target == nil {
			return nil
		}
		return inner.Run(c, acc, *target, data, parent)
	})
}

// OptionSome validates that the target is set.
func OptionSome[D, T any]() Validator[*T, D] {
	return Check[*T, D](TagOptionSome, "is none", func(v *T) bool { return v != nil })
}

// OptionNone validates that the target is not set.
func OptionNone[D, T any]() Validator[*T, D] {
	return Check[*T, D](TagOptionNone, "is some", func(v *T) bool { return v == nil })
}

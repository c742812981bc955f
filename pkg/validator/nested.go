package validator

// Nested validates a target that implements Validatable. The target's own
// fields are reported under acc, so paths read parent.child.leaf.
func Nested[D any, T Validatable[D]]() Validator[T, D] {
	return ValidatorFunc[T, D](func(c Collector, acc Accessor, target T, data D, parent *Report) error {
		child := NewReport(acc)
		err := target.Validate(c, data, child)
		applyErr := c.Apply(parent, child)
		if err != nil {
			return err
		}
		return applyErr
	})
}

// NestedFunc is Nested for values that are validated by a plain function
// instead of a Validate method.
func NestedFunc[T, D any](validate func(c Collector, target T, data D, report *Report) error) Validator[T, D] {
	return ValidatorFunc[T, D](func(c Collector, acc Accessor, target T, data D, parent *Report) error {
		child := NewReport(acc)
		err := validate(c, target, data, child)
		applyErr := c.Apply(parent, child)
		if err != nil {
			return err
		}
		return applyErr
	})
}

package validator

// Validator is a unit of validation logic for targets of type T with ambient
// data of type D. Run creates one child report for acc, fills it in and merges
// it into parent through c. A non-nil error is either ErrExitGracefully or an
// ExitError; both must be returned to the caller unchanged.
type Validator[T, D any] interface {
	Run(c Collector, acc Accessor, target T, data D, parent *Report) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc[T, D any] func(c Collector, acc Accessor, target T, data D, parent *Report) error

func (f ValidatorFunc[T, D]) Run(c Collector, acc Accessor, target T, data D, parent *Report) error {
	return f(c, acc, target, data, parent)
}

// Validatable is implemented by structured values that validate their own fields.
// Implementations usually delegate to Fields.
type Validatable[D any] interface {
	Validate(c Collector, data D, report *Report) error
}

// Run validates v under a fresh root report named root. The graceful exit
// signal is swallowed; only fatal exits are returned, together with the
// partially built report.
func Run[D any](c Collector, root string, v Validatable[D], data D) (*Report, error) {
	report := NewReport(Root(root))
	if err := v.Validate(c, data, report); err != nil && !IsGraceful(err) {
		return report, err
	}
	return report, nil
}

// Check builds a leaf validator from a predicate. The leaf is tagged with tag
// and details when tag is not empty, and carries message when invalid.
func Check[T, D any](tag Tag, message string, pred func(T) bool, details ...any) Validator[T, D] {
	return ValidatorFunc[T, D](func(c Collector, acc Accessor, target T, _ D, parent *Report) error {
		child := NewReport(acc)
		if !pred(target) {
			child.SetInvalid()
			child.SetMessage(message)
		}
		if tag != "" {
			child.Tag(tag, details...)
		}
		return c.Apply(parent, child)
	})
}

// CheckWithData is like Check but the predicate also sees the ambient data.
func CheckWithData[T, D any](tag Tag, message string, pred func(T, D) bool, details ...any) Validator[T, D] {
	return ValidatorFunc[T, D](func(c Collector, acc Accessor, target T, data D, parent *Report) error {
		child := NewReport(acc)
		if !pred(target, data) {
			child.SetInvalid()
			child.SetMessage(message)
		}
		if tag != "" {
			child.Tag(tag, details...)
		}
		return c.Apply(parent, child)
	})
}

// CheckErr builds a leaf validator whose check may fail on its own. A non-nil
// error marks the leaf errored instead of invalid; traversal continues.
func CheckErr[T, D any](tag Tag, message string, check func(T, D) (bool, error), details ...any) Validator[T, D] {
	return ValidatorFunc[T, D](func(c Collector, acc Accessor, target T, data D, parent *Report) error {
		child := NewReport(acc)
		ok, err := check(target, data)
		switch {
		case err != nil:
			child.SetError(err)
			child.SetMessage(err.Error())
		case !ok:
			child.SetInvalid()
			child.SetMessage(message)
		}
		if tag != "" {
			child.Tag(tag, details...)
		}
		return c.Apply(parent, child)
	})
}

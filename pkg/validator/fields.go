package validator

// Step validates one part of a structured value against report.
type Step[D any] func(c Collector, data D, report *Report) error

// Fields runs steps in declaration order and stops at the first exit signal,
// skipping the remaining fields.
//
//	func (s Signup) Validate(c validator.Collector, data Env, r *validator.Report) error {
//	    return validator.Fields(c, data, r,
//	        validator.FieldOf("username", s.Username, validator.Alphanumeric[Env]()),
//	        validator.FieldOf("password", s.Password, validator.LengthChars(validator.GE[Env](8))),
//	    )
//	}
func Fields[D any](c Collector, data D, report *Report, steps ...Step[D]) error {
	for _, step := range steps {
		if err := step(c, data, report); err != nil {
			return err
		}
	}
	return nil
}

// Typed records t on the report before running steps.
func Typed[D any](t TypeIdent, steps ...Step[D]) Step[D] {
	return func(c Collector, data D, report *Report) error {
		report.SetType(t)
		return Fields(c, data, report, steps...)
	}
}

// FieldOf validates a named field with the given validators in order.
func FieldOf[T, D any](name string, target T, validators ...Validator[T, D]) Step[D] {
	return At(Field(name), target, validators...)
}

// ElementOf validates a positional field.
func ElementOf[T, D any](index int, target T, validators ...Validator[T, D]) Step[D] {
	return At(TupleIndex(index), target, validators...)
}

// At validates target under an arbitrary accessor.
func At[T, D any](acc Accessor, target T, validators ...Validator[T, D]) Step[D] {
	v := Bundle(validators...)
	return func(c Collector, data D, report *Report) error {
		return v.Run(c, acc, target, data, report)
	}
}

// VariantOf validates the fields of an enum variant into a scoped report
// labelled Variant(name). The scoped report is merged into the parent once,
// after its fields ran, including when a field signalled an exit.
func VariantOf[D any](name string, steps ...Step[D]) Step[D] {
	return func(c Collector, data D, report *Report) error {
		scoped := NewReport(Variant(name))
		if t, ok := report.Type(); ok {
			scoped.SetType(EnumType(t.Name, name))
		}

		err := Fields(c, data, scoped, steps...)
		applyErr := c.Apply(report, scoped)
		if err != nil {
			return err
		}
		return applyErr
	}
}

package validator

// Bundle runs validators in order against the same accessor and target. Each
// one contributes its own child report. The first exit signal stops the bundle.
func Bundle[T, D any](validators ...Validator[T, D]) Validator[T, D] {
	if len(validators) == 1 {
		return validators[0]
	}
	return bundle[T, D](validators)
}

type bundle[T, D any] []Validator[T, D]

func (b bundle[T, D]) Run(c Collector, acc Accessor, target T, data D, parent *Report) error {
	for _, v := range b {
		if err := v.Run(c, acc, target, data, parent); err != nil {
			return err
		}
	}
	return nil
}

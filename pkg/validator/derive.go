package validator

// Derive forwards a value computed from the target to inner, under the same
// accessor. Reports produced by inner for this accessor get tag and the derived
// value prepended to their tags, so layered checks read as one tag sequence
// (for example "length:bytes > compare:ge").
func Derive[T, U, D any](tag Tag, derive func(T) U, inner Validator[U, D]) Validator[T, D] {
	return ValidatorFunc[T, D](func(c Collector, acc Accessor, target T, data D, parent *Report) error {
		value := derive(target)
		return inner.Run(derivedCollector{Collector: c, parent: parent, tag: tag, detail: value}, acc, value, data, parent)
	})
}

// derivedCollector tags the children merged directly into parent and
// delegates the merge itself to the active policy.
type derivedCollector struct {
	Collector
	parent *Report
	tag    Tag
	detail any
}

func (d derivedCollector) Name() string { return CollectorName(d.Collector) }

func (d derivedCollector) Apply(parent, child *Report) error {
	if parent == d.parent {
		child.prependTag(d.tag, d.detail)
	}
	return d.Collector.Apply(parent, child)
}

// Fatal turns an errored report produced by inner into an ExitWithError after
// it has been merged, aborting the rest of the traversal.
func Fatal[T, D any](inner Validator[T, D]) Validator[T, D] {
	return ValidatorFunc[T, D](func(c Collector, acc Accessor, target T, data D, parent *Report) error {
		fc := &fatalCollector{Collector: c, parent: parent}
		if err := inner.Run(fc, acc, target, data, parent); err != nil {
			return err
		}
		if fc.err != nil {
			return ExitWithError(fc.err)
		}
		return nil
	})
}

type fatalCollector struct {
	Collector
	parent *Report
	err    error
}

func (f *fatalCollector) Name() string { return CollectorName(f.Collector) }

func (f *fatalCollector) Apply(parent, child *Report) error {
	if parent == f.parent && f.err == nil && child.IsError() {
		f.err = child.Validity().Err
	}
	return f.Collector.Apply(parent, child)
}

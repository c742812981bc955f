package validator

import (
	"fmt"
)

// Collector decides how a finished child report is merged into its parent and
// whether the traversal continues. It is a policy, not state: the same value is
// passed down through every call of a single validation pass.
type Collector interface {
	Apply(parent, child *Report) error
}

// CollectorFunc adapts a function to the Collector interface.
type CollectorFunc func(parent, child *Report) error

func (f CollectorFunc) Apply(parent, child *Report) error {
	return f(parent, child)
}

// Collector names accepted by CollectorByName and reported by CollectorName.
const (
	CollectorInvalidsAndErrors = "invalids_and_errors"
	CollectorFirstInvalid      = "first_invalid"
	CollectorEverything        = "everything"
)

// InvalidsAndErrors keeps invalid and errored children and drops valid ones.
// An invalid child marks a valid parent invalid. Errors are attached without
// touching the parent's validity and an errored parent is never downgraded.
// A valid scope is still attached when it holds errored descendants.
type InvalidsAndErrors struct{}

func (InvalidsAndErrors) Name() string { return CollectorInvalidsAndErrors }

func (InvalidsAndErrors) Apply(parent, child *Report) error {
	switch {
	case child.IsInvalid():
		markInvalid(parent)
		parent.PushChild(child)
	case child.IsError(), len(child.children) > 0:
		parent.PushChild(child)
	}
	return nil
}

// FirstInvalidAndPrecedingErrors merges like InvalidsAndErrors but stops the
// traversal with ErrExitGracefully as soon as an invalid child is attached.
type FirstInvalidAndPrecedingErrors struct{}

func (FirstInvalidAndPrecedingErrors) Name() string { return CollectorFirstInvalid }

func (FirstInvalidAndPrecedingErrors) Apply(parent, child *Report) error {
	switch {
	case child.IsInvalid():
		markInvalid(parent)
		parent.PushChild(child)
		return ErrExitGracefully
	case child.IsError(), len(child.children) > 0:
		parent.PushChild(child)
	}
	return nil
}

// Everything attaches every child, valid ones included, and never stops early.
type Everything struct{}

func (Everything) Name() string { return CollectorEverything }

func (Everything) Apply(parent, child *Report) error {
	if child.IsInvalid() {
		markInvalid(parent)
	}
	parent.PushChild(child)
	return nil
}

// markInvalid downgrades a valid parent. An errored parent keeps its error.
func markInvalid(parent *Report) {
	if parent.IsValid() {
		parent.SetInvalid()
	}
}

// CollectorByName returns the policy registered under name.
func CollectorByName(name string) (Collector, error) {
	switch name {
	case CollectorInvalidsAndErrors:
		return InvalidsAndErrors{}, nil
	case CollectorFirstInvalid:
		return FirstInvalidAndPrecedingErrors{}, nil
	case CollectorEverything:
		return Everything{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollector, name)
	}
}

// CollectorName returns the policy name of c, looking through decorators.
func CollectorName(c Collector) string {
	if named, ok := c.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "custom"
}

package validator_test

import (
	"github.com/dmitrymomot/vate/pkg/validator"
)

type env struct{}

type validateFunc func(c validator.Collector, data env, r *validator.Report) error

func (f validateFunc) Validate(c validator.Collector, data env, r *validator.Report) error {
	return f(c, data, r)
}

// run validates steps under a root named "root".
func run(c validator.Collector, steps ...validator.Step[env]) (*validator.Report, error) {
	return validator.Run[env](c, "root", validateFunc(func(c validator.Collector, data env, r *validator.Report) error {
		return validator.Fields(c, data, r, steps...)
	}), env{})
}

// counting is a leaf validator that records how often it ran.
func counting[T any](calls *int, pass bool) validator.Validator[T, env] {
	return validator.Check[T, env]("test:counting", "failed", func(T) bool {
		*calls++
		return pass
	})
}

func path(expr string) validator.Path {
	return validator.MustParsePath(expr)
}

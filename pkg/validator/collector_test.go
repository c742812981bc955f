package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vate/pkg/validator"
)

func leaf(state string) *validator.Report {
	r := validator.NewReport(validator.Field(state))
	switch state {
	case "invalid":
		r.SetInvalid()
	case "error":
		r.SetError(errors.New("failed"))
	}
	return r
}

func TestInvalidsAndErrors(t *testing.T) {
	t.Parallel()
	c := validator.InvalidsAndErrors{}

	t.Run("drops valid children", func(t *testing.T) {
		parent := validator.NewReport(validator.Root("p"))
		require.NoError(t, c.Apply(parent, leaf("valid")))
		assert.Empty(t, parent.Children())
		assert.True(t, parent.IsValid())
	})

	t.Run("invalid child marks parent", func(t *testing.T) {
		parent := validator.NewReport(validator.Root("p"))
		require.NoError(t, c.Apply(parent, leaf("invalid")))
		require.NoError(t, c.Apply(parent, leaf("invalid")))
		assert.Len(t, parent.Children(), 2)
		assert.True(t, parent.IsInvalid())
	})

	t.Run("errored child leaves parent validity alone", func(t *testing.T) {
		parent := validator.NewReport(validator.Root("p"))
		require.NoError(t, c.Apply(parent, leaf("error")))
		assert.Len(t, parent.Children(), 1)
		assert.True(t, parent.IsValid())
	})

	t.Run("keeps a valid scope holding errors", func(t *testing.T) {
		parent := validator.NewReport(validator.Root("p"))
		scope := leaf("valid")
		scope.PushChild(leaf("error"))
		require.NoError(t, c.Apply(parent, scope))
		require.Len(t, parent.Children(), 1)
		assert.Same(t, scope, parent.Children()[0])
		assert.True(t, parent.IsValid())
	})

	t.Run("errored parent is never downgraded", func(t *testing.T) {
		parent := validator.NewReport(validator.Root("p"))
		parent.SetError(errors.New("sticky"))
		require.NoError(t, c.Apply(parent, leaf("invalid")))
		assert.True(t, parent.IsError())
	})
}

func TestFirstInvalidAndPrecedingErrors(t *testing.T) {
	t.Parallel()
	c := validator.FirstInvalidAndPrecedingErrors{}

	parent := validator.NewReport(validator.Root("p"))
	require.NoError(t, c.Apply(parent, leaf("valid")))
	require.NoError(t, c.Apply(parent, leaf("error")))
	err := c.Apply(parent, leaf("invalid"))
	assert.ErrorIs(t, err, validator.ErrExitGracefully)
	assert.True(t, validator.IsGraceful(err))
	assert.False(t, validator.IsFatal(err))

	assert.Len(t, parent.Children(), 2)
	assert.True(t, parent.IsInvalid())

	t.Run("keeps a valid scope holding errors", func(t *testing.T) {
		parent := validator.NewReport(validator.Root("p"))
		scope := leaf("valid")
		scope.PushChild(leaf("error"))
		require.NoError(t, c.Apply(parent, scope))
		assert.Len(t, parent.Children(), 1)
		assert.True(t, parent.IsValid())
	})
}

func TestEverything(t *testing.T) {
	t.Parallel()
	c := validator.Everything{}

	parent := validator.NewReport(validator.Root("p"))
	require.NoError(t, c.Apply(parent, leaf("valid")))
	assert.True(t, parent.IsValid())
	require.NoError(t, c.Apply(parent, leaf("error")))
	assert.True(t, parent.IsValid())
	require.NoError(t, c.Apply(parent, leaf("invalid")))
	assert.True(t, parent.IsInvalid())
	assert.Len(t, parent.Children(), 3)
}

func TestCollectorByName(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]validator.Collector{
		validator.CollectorInvalidsAndErrors: validator.InvalidsAndErrors{},
		validator.CollectorFirstInvalid:      validator.FirstInvalidAndPrecedingErrors{},
		validator.CollectorEverything:        validator.Everything{},
	} {
		c, err := validator.CollectorByName(name)
		require.NoError(t, err)
		assert.Equal(t, want, c)
		assert.Equal(t, name, validator.CollectorName(c))
	}

	_, err := validator.CollectorByName("all_of_them")
	assert.ErrorIs(t, err, validator.ErrUnknownCollector)

	custom := validator.CollectorFunc(func(parent, child *validator.Report) error { return nil })
	assert.Equal(t, "custom", validator.CollectorName(custom))
}

func TestExitError(t *testing.T) {
	t.Parallel()

	cause := errors.New("lookup failed")
	err := validator.ExitWithError(cause)
	assert.True(t, validator.IsFatal(err))
	assert.False(t, validator.IsGraceful(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "validation aborted: lookup failed", err.Error())

	assert.ErrorIs(t, validator.ExitWithError(nil), validator.ErrValidatorFailed)
}

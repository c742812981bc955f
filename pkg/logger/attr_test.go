package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vate/pkg/logger"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestGroup(t *testing.T) {
	attr := logger.Group("report", slog.String("path", "signup.email"), slog.Int("leaves", 2))
	require.Equal(t, "report", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "path", g[0].Key)
	assert.Equal(t, "leaves", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestValidationAttrs(t *testing.T) {
	t.Parallel()

	t.Run("path", func(t *testing.T) {
		attr := logger.Path(stringer("signup.password"))
		assert.Equal(t, "path", attr.Key)
		assert.Equal(t, "signup.password", attr.Value.String())
		assert.True(t, logger.Path(nil).Equal(slog.Attr{}))
	})

	t.Run("validity", func(t *testing.T) {
		attr := logger.Validity(stringer("invalid"))
		assert.Equal(t, "validity", attr.Key)
		assert.Equal(t, "invalid", attr.Value.String())
	})

	t.Run("tags", func(t *testing.T) {
		attr := logger.Tags([]string{"length:chars", "compare:ge"}, " > ")
		assert.Equal(t, "tags", attr.Key)
		assert.Equal(t, "length:chars > compare:ge", attr.Value.String())
		assert.True(t, logger.Tags(nil, " > ").Equal(slog.Attr{}))
	})

	t.Run("collector and component", func(t *testing.T) {
		assert.Equal(t, "everything", logger.Collector("everything").Value.String())
		assert.Equal(t, "validator", logger.Component("validator").Value.String())
		assert.Equal(t, int64(3), logger.Count("leaves", 3).Value.Int64())
	})
}

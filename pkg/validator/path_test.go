package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vate/pkg/validator"
)

func TestAccessorString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		acc  validator.Accessor
		kind validator.AccessorKind
		want string
	}{
		{validator.Root("create_user"), validator.KindRoot, "create_user"},
		{validator.Field("profile"), validator.KindField, ".profile"},
		{validator.TupleIndex(0), validator.KindTupleIndex, ".0"},
		{validator.Index(3), validator.KindIndex, "[3]"},
		{validator.Key("English"), validator.KindKey, `["English"]`},
		{validator.Key(`say "hi"`), validator.KindKey, `["say \"hi\""]`},
		{validator.Variant("Circle"), validator.KindVariant, "[Circle]"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.acc.String())
			assert.Equal(t, tt.kind, tt.acc.Kind())
		})
	}

	assert.True(t, validator.Accessor{}.IsZero())
	assert.NotEqual(t, validator.Index(1), validator.TupleIndex(1))
	assert.NotEqual(t, validator.Field("x"), validator.Key("x"))
	assert.Equal(t, validator.Field("x"), validator.Field("x"))
}

func TestPath(t *testing.T) {
	t.Parallel()

	t.Run("string concatenates accessors", func(t *testing.T) {
		p := validator.NewPath("create_user",
			validator.Field("profile"),
			validator.Field("languages"),
			validator.Key("English"),
		)
		assert.Equal(t, `create_user.profile.languages["English"]`, p.String())
	})

	t.Run("equal compares lengths first", func(t *testing.T) {
		a := validator.NewPath("a", validator.Field("b"))
		assert.True(t, a.Equal(validator.NewPath("a", validator.Field("b"))))
		assert.False(t, a.Equal(validator.NewPath("a")))
		assert.False(t, a.Equal(validator.NewPath("a", validator.Field("b"), validator.Field("c"))))
		assert.False(t, a.Equal(validator.NewPath("a", validator.Key("b"))))
	})

	t.Run("append does not alias", func(t *testing.T) {
		base := make(validator.Path, 1, 4)
		base[0] = validator.Root("r")
		x := base.Append(validator.Field("x"))
		y := base.Append(validator.Field("y"))
		assert.Equal(t, "r.x", x.String())
		assert.Equal(t, "r.y", y.String())
		assert.Len(t, base, 1)
	})
}

func TestParsePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want validator.Path
	}{
		{"root", validator.NewPath("root")},
		{"create_user.profile.name.middle", validator.NewPath("create_user",
			validator.Field("profile"), validator.Field("name"), validator.Field("middle"))},
		{"create_user.profile.hobbies[1]", validator.NewPath("create_user",
			validator.Field("profile"), validator.Field("hobbies"), validator.Index(1))},
		{`example.languages["English"]`, validator.NewPath("example",
			validator.Field("languages"), validator.Key("English"))},
		{`m["a.b[0]"]`, validator.NewPath("m", validator.Key("a.b[0]"))},
		{`m["q\"uote"]`, validator.NewPath("m", validator.Key(`q"uote`))},
		{"pair.0.1", validator.NewPath("pair", validator.TupleIndex(0), validator.TupleIndex(1))},
		{"shape[Circle].radius", validator.NewPath("shape", validator.Variant("Circle"), validator.Field("radius"))},
		{"grid[10][2]", validator.NewPath("grid", validator.Index(10), validator.Index(2))},
		{"_x.field_2", validator.NewPath("_x", validator.Field("field_2"))},
		{`"create-user".name`, validator.NewPath("create-user", validator.Field("name"))},
		{`"".items[0]`, validator.NewPath("", validator.Field("items"), validator.Index(0))},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := validator.ParsePath(tt.expr)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, tt.expr, got.String())
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{
		"",
		"1abc",
		"a.",
		"a..b",
		"a[",
		"a[1",
		`a["open]`,
		"a[-1]",
		"a b",
		"a[]",
		`"open.name`,
		`"a"b`,
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := validator.ParsePath(expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, validator.ErrInvalidPath)
		})
	}

	assert.Panics(t, func() { validator.MustParsePath("a.") })
}

func TestReportPathsParseBack(t *testing.T) {
	t.Parallel()

	report, err := validator.Run[env](validator.InvalidsAndErrors{}, "create-user",
		validateFunc(func(c validator.Collector, data env, r *validator.Report) error {
			return validator.Fields(c, data, r, validator.FieldOf("name", "", validator.NotBlank[env]()))
		}), env{})
	require.NoError(t, err)
	assert.Equal(t, "\"create-user\".name: is required\n", report.String())

	var leaf validator.Path
	report.Walk(func(p validator.Path, rep *validator.Report) bool {
		if len(rep.Children()) == 0 {
			leaf = p
		}
		return true
	})
	parsed, err := validator.ParsePath(leaf.String())
	require.NoError(t, err)
	assert.True(t, leaf.Equal(parsed))
	invalid, ok := report.IsAnyInvalidAtPath(parsed)
	require.True(t, ok)
	assert.True(t, invalid)
}

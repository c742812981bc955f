package catalog_test

import (
	"context"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vate/pkg/catalog"
	"github.com/dmitrymomot/vate/pkg/validator"
)

type env struct{}

type signup struct {
	Username string
	Password string
}

func (s signup) Validate(c validator.Collector, data env, r *validator.Report) error {
	return validator.Fields(c, data, r,
		validator.Typed[env](validator.StructType("Signup"),
			validator.FieldOf("username", s.Username, validator.ASCII[env]()),
			validator.FieldOf("password", s.Password, validator.LengthChars(validator.GE[env](8))),
		),
	)
}

type profile struct {
	Nickname string
}

func (p profile) Validate(c validator.Collector, data env, r *validator.Report) error {
	return validator.Fields(c, data, r,
		validator.Typed[env](validator.StructType("Profile"),
			validator.FieldOf("nickname", p.Nickname, validator.LengthChars(validator.GE[env](3))),
		),
	)
}

func messageAt(t *testing.T, r *validator.Report, path string) string {
	t.Helper()
	reports := r.ReportsAtPath(validator.MustParsePath(path))
	require.NotEmpty(t, reports, path)
	return reports[0].Message()
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("merges directory files in order", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.New(context.Background(), catalog.FSSource{FS: os.DirFS("testdata"), Dir: "messages"})
		require.NoError(t, err)

		tmpl, ok := cat.Message("string:ascii")
		require.True(t, ok)
		assert.Equal(t, "%{field} may only use plain letters", tmpl)

		tmpl, ok = cat.Message("length:chars", "compare:ge")
		require.True(t, ok)
		assert.Equal(t, "%{field} must be at least %{1.0} characters long", tmpl)
		assert.Equal(t, 4, cat.Len())
	})

	t.Run("later sources win", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.New(context.Background(),
			catalog.FileSource{Path: "testdata/messages.yml"},
			catalog.MapSource{Messages: map[string]string{"boolean:true": "tick %{field}"}},
		)
		require.NoError(t, err)
		tmpl, _ := cat.Message("boolean:true")
		assert.Equal(t, "tick %{field}", tmpl)
	})

	t.Run("empty catalog", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(context.Background(), catalog.MapSource{})
		assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
	})

	t.Run("broken file", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(context.Background(), catalog.FileSource{Path: "testdata/broken.yaml"})
		assert.ErrorIs(t, err, catalog.ErrFailedToParseFile)
		assert.ErrorIs(t, err, catalog.ErrFailedToParseYAML)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(context.Background(), catalog.FileSource{Path: "testdata/nope.yaml"})
		assert.ErrorIs(t, err, catalog.ErrFailedToReadFile)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(context.Background(), catalog.FileSource{Path: "testdata/messages/README.txt"})
		assert.ErrorIs(t, err, catalog.ErrUnsupportedFile)
	})

	t.Run("invalid type key", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(context.Background(), catalog.MapSource{
			Overrides: map[string]map[string]map[string]string{
				"Shape::": {"*": {"*": "bad"}},
			},
		})
		assert.ErrorIs(t, err, catalog.ErrInvalidTypeKey)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := catalog.New(ctx, catalog.FileSource{Path: "testdata/messages.yml"})
		assert.ErrorIs(t, err, catalog.ErrLoadingCancelled)
	})
}

func TestFSSourceEmbedded(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"msgs/a.json": {Data: []byte(`{"messages": {"string:uppercase": "shout %{field}"}}`)},
		"msgs/b.yaml": {Data: []byte("messages:\n  \"string:uppercase\": \"SHOUT %{field}\"\n")},
		"msgs/nested": {Mode: os.ModeDir},
	}
	cat, err := catalog.New(context.Background(), catalog.FSSource{FS: fsys, Dir: "msgs"})
	require.NoError(t, err)

	tmpl, ok := cat.Message("string:uppercase")
	require.True(t, ok)
	assert.Equal(t, "SHOUT %{field}", tmpl)
}

func TestRender(t *testing.T) {
	t.Parallel()

	inv := validator.Invalid{
		Type:    validator.StructType("Signup"),
		Field:   validator.NamedField("password"),
		Path:    validator.MustParsePath("signup.password"),
		Tags:    []validator.Tag{"length:chars", "compare:within"},
		Details: []validator.Detailer{{5}, {8, 64}},
		Message: "must be between 8 and 64",
	}

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"field", "%{field} is bad", "password is bad"},
		{"type and path", "%{type} at %{path}", "Signup at signup.password"},
		{"message", "(%{message})", "(must be between 8 and 64)"},
		{"qualified detail", "got %{0.0}, want %{1.0}..%{1.1}", "got 5, want 8..64"},
		{"last tag shorthand", "max %{1}", "max 64"},
		{"unknown placeholder kept", "%{nope} %{7.0} %{1.9}", "%{nope} %{7.0} %{1.9}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Render(tt.tmpl, inv))
		})
	}
}

func TestInstall(t *testing.T) {
	t.Parallel()

	t.Run("normal messages and type overrides", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.New(context.Background(), catalog.FSSource{FS: os.DirFS("testdata"), Dir: "messages"})
		require.NoError(t, err)

		in := validator.NewInterpreter[env]()
		catalog.Install(cat, in)

		report, err := validator.Run(validator.Everything{}, "signup", signup{Username: "ünï", Password: "short"}, env{})
		require.NoError(t, err)
		in.Apply(report, env{})

		assert.Equal(t, "username may only use plain letters", messageAt(t, report, "signup.username"))
		assert.Equal(t, "choose a password of 8 characters or more", messageAt(t, report, "signup.password"))

		report, err = validator.Run(validator.Everything{}, "profile", profile{Nickname: "x"}, env{})
		require.NoError(t, err)
		in.Apply(report, env{})
		assert.Equal(t, "nickname must be at least 3 characters long", messageAt(t, report, "profile.nickname"))
	})

	t.Run("wildcard override", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.New(context.Background(), catalog.MapSource{
			Overrides: map[string]map[string]map[string]string{
				"*": {"*": {"*": "%{path} is not acceptable"}},
			},
		})
		require.NoError(t, err)

		in := validator.NewInterpreter[env]()
		catalog.Install(cat, in)

		report, err := validator.Run(validator.InvalidsAndErrors{}, "signup", signup{Username: "ok", Password: "short"}, env{})
		require.NoError(t, err)
		in.Apply(report, env{})
		assert.Equal(t, "signup.password is not acceptable", messageAt(t, report, "signup.password"))
	})
}

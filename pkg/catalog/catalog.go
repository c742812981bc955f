package catalog

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/vate/pkg/validator"
)

// Wildcard marks a catch-all type, field or tag sequence in overrides.
const Wildcard = "*"

// Catalog holds message templates keyed by tag sequence, with optional
// overrides per type and field.
type Catalog struct {
	doc Document
}

// New loads and merges sources in order; later sources win.
func New(ctx context.Context, sources ...Source) (*Catalog, error) {
	c := &Catalog{}
	for _, src := range sources {
		doc, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		c.doc.merge(doc)
	}
	if c.doc.empty() {
		return nil, ErrEmptyCatalog
	}
	for typ := range c.doc.Overrides {
		if _, err := parseType(typ); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Message returns the template registered for a tag sequence.
func (c *Catalog) Message(tags ...validator.Tag) (string, bool) {
	tmpl, ok := c.doc.Messages[validator.TagKey(tags...)]
	return tmpl, ok
}

// Len returns the number of templates, overrides included.
func (c *Catalog) Len() int {
	n := len(c.doc.Messages)
	for _, fields := range c.doc.Overrides {
		for _, byTags := range fields {
			n += len(byTags)
		}
	}
	return n
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// Render substitutes placeholders in tmpl from inv:
//
//	%{field}    field name or position
//	%{type}     owning type, "Name" or "Name::Variant"
//	%{path}     full report path
//	%{message}  message set by the validator
//	%{i.j}      detail j of tag i; %{j} is shorthand for the last tag
//
// Unknown placeholders are left in place.
func Render(tmpl string, inv validator.Invalid) string {
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		switch name {
		case "field":
			return inv.Field.String()
		case "type":
			return inv.Type.String()
		case "path":
			return inv.Path.String()
		case "message":
			return inv.Message
		}

		tag, index := len(inv.Details)-1, name
		if t, d, ok := strings.Cut(name, "."); ok {
			n, err := strconv.Atoi(t)
			if err != nil {
				return match
			}
			tag, index = n, d
		}
		i, err := strconv.Atoi(index)
		if err != nil || i < 0 || tag < 0 || tag >= len(inv.Details) || i >= len(inv.Details[tag]) {
			return match
		}
		return inv.Detail(tag, i)
	})
}

func renderer[D any](tmpl string) validator.InterpretFunc[D] {
	return func(inv validator.Invalid, _ D) (string, bool) {
		return Render(tmpl, inv), true
	}
}

// Install registers every template of c with in. Messages become normal
// functions; overrides are registered per type and field.
func Install[D any](c *Catalog, in *validator.Interpreter[D]) {
	for key, tmpl := range c.doc.Messages {
		in.SetNormal(splitTags(key), renderer[D](tmpl))
	}

	for typKey, fields := range c.doc.Overrides {
		var typ *validator.TypeIdent
		if typKey != Wildcard {
			t, _ := parseType(typKey)
			typ = &t
		}
		for fieldKey, byTags := range fields {
			var field *validator.FieldIdent
			if fieldKey != Wildcard {
				f := parseField(fieldKey)
				field = &f
			}
			for tagsKey, tmpl := range byTags {
				var tags []validator.Tag
				if tagsKey != Wildcard {
					tags = splitTags(tagsKey)
				}
				in.SetOverride(typ, field, tags, renderer[D](tmpl))
			}
		}
	}
}

func splitTags(key string) []validator.Tag {
	parts := strings.Split(key, strings.TrimSpace(validator.TagSeparator))
	tags := make([]validator.Tag, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

func parseType(key string) (validator.TypeIdent, error) {
	if key == Wildcard {
		return validator.TypeIdent{}, nil
	}
	name, variant, found := strings.Cut(key, "::")
	if name == "" || (found && variant == "") {
		return validator.TypeIdent{}, fmt.Errorf("%w: %q", ErrInvalidTypeKey, key)
	}
	return validator.TypeIdent{Name: name, Variant: variant}, nil
}

func parseField(key string) validator.FieldIdent {
	if n, err := strconv.Atoi(key); err == nil {
		return validator.UnnamedField(n)
	}
	return validator.NamedField(key)
}

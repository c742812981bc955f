package validator

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag identifies which check produced a report, e.g. "string:ascii" or "compare:ge".
type Tag = string

// TagSeparator joins layered tags into a single lookup key.
const TagSeparator = " > "

// TagKey joins tags into the key used by Interpreter and message catalogs.
func TagKey(tags ...Tag) string {
	return strings.Join(tags, TagSeparator)
}

// TypeIdent names the type that owns a field: a struct, or an enum and one of its variants.
type TypeIdent struct {
	Name    string
	Variant string
}

// StructType identifies a struct.
func StructType(name string) TypeIdent { return TypeIdent{Name: name} }

// EnumType identifies a variant of an enum.
func EnumType(name, variant string) TypeIdent { return TypeIdent{Name: name, Variant: variant} }

func (t TypeIdent) String() string {
	if t.Variant == "" {
		return t.Name
	}
	return t.Name + "::" + t.Variant
}

// FieldIdent names a field, either by name or by position.
type FieldIdent struct {
	Name       string
	Position   int
	Positional bool
}

func NamedField(name string) FieldIdent { return FieldIdent{Name: name} }

func UnnamedField(position int) FieldIdent { return FieldIdent{Position: position, Positional: true} }

func (f FieldIdent) String() string {
	if f.Positional {
		return strconv.Itoa(f.Position)
	}
	return f.Name
}

// Detailer holds the detail values of one tag, addressed by index.
type Detailer []any

// Get renders the detail at index, or returns "" when it is absent.
func (d Detailer) Get(index int) string {
	if index < 0 || index >= len(d) {
		return ""
	}
	return fmt.Sprint(d[index])
}

// Invalid describes a failed check in terms an Interpreter can turn into a message.
type Invalid struct {
	Type    TypeIdent
	Field   FieldIdent
	Path    Path
	Tags    []Tag
	Details []Detailer
	Message string
}

// Detail renders detail index of the tag at position tag.
func (inv Invalid) Detail(tag, index int) string {
	if tag < 0 || tag >= len(inv.Details) {
		return ""
	}
	return inv.Details[tag].Get(index)
}

// InterpretFunc formats a message for inv. Returning false leaves the report
// message untouched.
type InterpretFunc[D any] func(inv Invalid, data D) (string, bool)

// Interpreter maps failed checks to messages. Lookup order is: an override
// matching (type, field, tags) where each level may fall back to a catch-all
// entry, then a normal function registered for the tag sequence, then the
// fallback function.
type Interpreter[D any] struct {
	overrides *catchMap[TypeIdent, *catchMap[FieldIdent, *catchMap[string, InterpretFunc[D]]]]
	normal    map[string]InterpretFunc[D]
	fallback  InterpretFunc[D]
}

// NewInterpreter returns an interpreter whose fallback renders "invalid".
func NewInterpreter[D any]() *Interpreter[D] {
	return &Interpreter[D]{
		overrides: newCatchMap[TypeIdent, *catchMap[FieldIdent, *catchMap[string, InterpretFunc[D]]]](),
		normal:    make(map[string]InterpretFunc[D]),
		fallback: func(Invalid, D) (string, bool) {
			return "invalid", true
		},
	}
}

// SetOverride registers fn for a type, field and tag sequence. A nil argument
// registers fn as the catch-all at that level.
func (in *Interpreter[D]) SetOverride(typ *TypeIdent, field *FieldIdent, tags []Tag, fn InterpretFunc[D]) {
	newFields := newCatchMap[FieldIdent, *catchMap[string, InterpretFunc[D]]]
	newTags := newCatchMap[string, InterpretFunc[D]]

	var fields *catchMap[FieldIdent, *catchMap[string, InterpretFunc[D]]]
	if typ != nil {
		fields = in.overrides.getOrInsert(*typ, newFields)
	} else {
		fields = in.overrides.catchOrInsert(newFields)
	}

	var byTags *catchMap[string, InterpretFunc[D]]
	if field != nil {
		byTags = fields.getOrInsert(*field, newTags)
	} else {
		byTags = fields.catchOrInsert(newTags)
	}

	if tags != nil {
		byTags.insert(TagKey(tags...), fn)
	} else {
		byTags.setCatch(fn)
	}
}

// SetNormal registers fn for a tag sequence, replacing any previous function.
func (in *Interpreter[D]) SetNormal(tags []Tag, fn InterpretFunc[D]) {
	in.normal[TagKey(tags...)] = fn
}

// SetNormalOnce registers fn unless a function already exists for tags.
func (in *Interpreter[D]) SetNormalOnce(tags []Tag, fn InterpretFunc[D]) {
	key := TagKey(tags...)
	if _, ok := in.normal[key]; !ok {
		in.normal[key] = fn
	}
}

func (in *Interpreter[D]) SetFallback(fn InterpretFunc[D]) {
	if fn != nil {
		in.fallback = fn
	}
}

func (in *Interpreter[D]) override(typ TypeIdent, field FieldIdent, tags []Tag) (InterpretFunc[D], bool) {
	fields, ok := in.overrides.get(typ)
	if !ok {
		return nil, false
	}
	byTags, ok := fields.get(field)
	if !ok {
		return nil, false
	}
	return byTags.get(TagKey(tags...))
}

func (in *Interpreter[D]) specific(typ TypeIdent, field FieldIdent, tags []Tag) (InterpretFunc[D], bool) {
	if fn, ok := in.override(typ, field, tags); ok {
		return fn, true
	}
	fn, ok := in.normal[TagKey(tags...)]
	return fn, ok
}

// Lookup returns the function used for (typ, field, tags).
func (in *Interpreter[D]) Lookup(typ TypeIdent, field FieldIdent, tags []Tag) InterpretFunc[D] {
	if fn, ok := in.specific(typ, field, tags); ok {
		return fn
	}
	return in.fallback
}

// Interpret formats a message for inv.
func (in *Interpreter[D]) Interpret(inv Invalid, data D) (string, bool) {
	return in.Lookup(inv.Type, inv.Field, inv.Tags)(inv, data)
}

// Apply rewrites the messages of invalid tagged reports in the tree. Overrides
// and normal functions always apply; the fallback only fills empty messages.
// Messages are rendered from the one set by the validator, so applying again
// yields the same tree.
func (in *Interpreter[D]) Apply(report *Report, data D) {
	in.apply(report, nil, TypeIdent{}, FieldIdent{}, data)
}

func (in *Interpreter[D]) apply(r *Report, prefix Path, typ TypeIdent, field FieldIdent, data D) {
	p := prefix.Append(r.accessor)

	switch r.accessor.kind {
	case KindRoot, KindField:
		field = NamedField(r.accessor.name)
	case KindTupleIndex:
		field = UnnamedField(r.accessor.index)
	}

	if r.IsInvalid() && len(r.tags) > 0 {
		inv := Invalid{
			Type:    typ,
			Field:   field,
			Path:    p,
			Tags:    r.tags,
			Details: r.details,
			Message: r.source,
		}
		fn, ok := in.specific(typ, field, r.tags)
		if !ok && r.source == "" {
			fn, ok = in.fallback, true
		}
		if ok {
			if msg, set := fn(inv, data); set {
				r.message = msg
			}
		}
	}

	if t, ok := r.Type(); ok {
		typ = t
	}
	for _, child := range r.children {
		in.apply(child, p, typ, field, data)
	}
}

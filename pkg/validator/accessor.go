package validator

import (
	"strconv"
	"unicode"
)

// AccessorKind identifies the structural step an Accessor describes.
type AccessorKind uint8

const (
	KindRoot AccessorKind = iota + 1
	KindField
	KindTupleIndex
	KindIndex
	KindKey
	KindVariant
)

func (k AccessorKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindField:
		return "field"
	case KindTupleIndex:
		return "tuple_index"
	case KindIndex:
		return "index"
	case KindKey:
		return "key"
	case KindVariant:
		return "variant"
	default:
		return "unknown"
	}
}

// Accessor is a single step into a validated value. Accessors are comparable
// with ==, which is how report nodes are matched against paths.
type Accessor struct {
	kind  AccessorKind
	name  string
	index int
}

// Root names the top-level value. It is only meaningful as the first path element.
func Root(name string) Accessor { return Accessor{kind: KindRoot, name: name} }

// Field addresses a named struct field.
func Field(name string) Accessor { return Accessor{kind: KindField, name: name} }

// TupleIndex addresses a positional field.
func TupleIndex(index int) Accessor { return Accessor{kind: KindTupleIndex, index: index} }

// Index addresses an element of an indexed collection.
func Index(index int) Accessor { return Accessor{kind: KindIndex, index: index} }

// Key addresses an entry of a keyed collection.
func Key(key string) Accessor { return Accessor{kind: KindKey, name: key} }

// Variant addresses an enum variant.
func Variant(name string) Accessor { return Accessor{kind: KindVariant, name: name} }

func (a Accessor) Kind() AccessorKind { return a.kind }

// Name returns the root, field, key or variant name. It is empty for indices.
func (a Accessor) Name() string { return a.name }

// Index returns the tuple or collection index. It is zero for named accessors.
func (a Accessor) Index() int { return a.index }

func (a Accessor) IsZero() bool { return a.kind == 0 }

// String renders the accessor with its path glyph: bare root name, .field, .0,
// [0], ["key"] and [Variant]. A root name that is not an identifier is quoted
// so the rendered path parses back with ParsePath.
func (a Accessor) String() string {
	switch a.kind {
	case KindRoot:
		if isIdent(a.name) {
			return a.name
		}
		return strconv.Quote(a.name)
	case KindField:
		return "." + a.name
	case KindTupleIndex:
		return "." + strconv.Itoa(a.index)
	case KindIndex:
		return "[" + strconv.Itoa(a.index) + "]"
	case KindKey:
		return "[" + strconv.Quote(a.name) + "]"
	case KindVariant:
		return "[" + a.name + "]"
	default:
		return ""
	}
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r != '_' && !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

package validator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Path is an ordered sequence of accessors from a root to a target location.
// By convention the first element is a Root accessor.
type Path []Accessor

// NewPath builds a path that starts at the named root.
func NewPath(root string, steps ...Accessor) Path {
	p := make(Path, 0, len(steps)+1)
	p = append(p, Root(root))
	return append(p, steps...)
}

// Equal compares two paths element by element. Paths of different length are never equal.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Append returns a new path extended with steps. The receiver is not modified.
func (p Path) Append(steps ...Accessor) Path {
	out := make(Path, 0, len(p)+len(steps))
	out = append(out, p...)
	return append(out, steps...)
}

func (p Path) String() string {
	var b strings.Builder
	for _, a := range p {
		b.WriteString(a.String())
	}
	return b.String()
}

// MustParsePath is like ParsePath but panics on malformed input.
func MustParsePath(expr string) Path {
	p, err := ParsePath(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePath parses a path expression such as
//
//	create_user.profile.hobbies[1]
//	example.languages["English"]
//	shape[Circle].radius
//	pair.0
//
// An identifier after a dot is a field, digits after a dot are a tuple index,
// digits in brackets are an index, a quoted string in brackets is a key and an
// identifier in brackets is a variant. A root that is not an identifier is
// written as a quoted string, e.g. "create-user".name.
func ParsePath(expr string) (Path, error) {
	s := &pathScanner{src: expr}

	var root string
	if !s.done() && s.src[s.pos] == '"' {
		name, err := s.quoted()
		if err != nil {
			return nil, err
		}
		root = name
	} else {
		name, ok := s.ident()
		if !ok {
			return nil, s.fail("expected root identifier or quoted root name")
		}
		root = name
	}
	path := Path{Root(root)}

	for !s.done() {
		switch s.peek() {
		case '.':
			s.pos++
			if n, ok := s.number(); ok {
				path = append(path, TupleIndex(n))
				continue
			}
			name, ok := s.ident()
			if !ok {
				return nil, s.fail("expected field name or tuple index after '.'")
			}
			path = append(path, Field(name))
		case '[':
			s.pos++
			acc, err := s.bracket()
			if err != nil {
				return nil, err
			}
			if s.done() || s.peek() != ']' {
				return nil, s.fail("expected ']'")
			}
			s.pos++
			path = append(path, acc)
		default:
			return nil, s.fail(fmt.Sprintf("unexpected character %q", s.peek()))
		}
	}

	return path, nil
}

type pathScanner struct {
	src string
	pos int
}

func (s *pathScanner) done() bool { return s.pos >= len(s.src) }

func (s *pathScanner) peek() rune {
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r
}

func (s *pathScanner) fail(msg string) error {
	return fmt.Errorf("%w: %s at offset %d in %q", ErrInvalidPath, msg, s.pos, s.src)
}

func (s *pathScanner) ident() (string, bool) {
	start := s.pos
	for !s.done() {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if r == '_' || unicode.IsLetter(r) || (s.pos > start && unicode.IsDigit(r)) {
			s.pos += size
			continue
		}
		break
	}
	return s.src[start:s.pos], s.pos > start
}

func (s *pathScanner) number() (int, bool) {
	start := s.pos
	for !s.done() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == start {
		return 0, false
	}
	n, err := strconv.Atoi(s.src[start:s.pos])
	if err != nil {
		s.pos = start
		return 0, false
	}
	return n, true
}

func (s *pathScanner) bracket() (Accessor, error) {
	if s.done() {
		return Accessor{}, s.fail("unterminated '['")
	}

	if s.src[s.pos] == '"' {
		key, err := s.quoted()
		if err != nil {
			return Accessor{}, err
		}
		return Key(key), nil
	}

	if n, ok := s.number(); ok {
		return Index(n), nil
	}

	if name, ok := s.ident(); ok {
		return Variant(name), nil
	}

	return Accessor{}, s.fail("expected index, quoted key or variant name")
}

// quoted scans a Go-quoted string starting at the current position.
func (s *pathScanner) quoted() (string, error) {
	end := s.pos + 1
	for end < len(s.src) {
		if s.src[end] == '\\' {
			end += 2
			continue
		}
		if s.src[end] == '"' {
			break
		}
		end++
	}
	if end >= len(s.src) {
		return "", s.fail("unterminated string")
	}
	str, err := strconv.Unquote(s.src[s.pos : end+1])
	if err != nil {
		return "", s.fail("malformed string")
	}
	s.pos = end + 1
	return str, nil
}

package validator

import (
	"strings"
)

// ChildrenAt returns every direct child labelled acc.
func (r *Report) ChildrenAt(acc Accessor) []*Report {
	var out []*Report
	for _, child := range r.children {
		if child.accessor == acc {
			out = append(out, child)
		}
	}
	return out
}

// ReportsAtPath resolves p against the tree rooted at r. The first element of
// p must match r itself. Every node matching the full path is returned, so a
// field validated by several validators yields several reports. An empty
// result means the location is absent from the report, which says nothing
// about whether it is valid.
func (r *Report) ReportsAtPath(p Path) []*Report {
	if len(p) == 0 || r.accessor != p[0] {
		return nil
	}
	if len(p) == 1 {
		return []*Report{r}
	}

	var out []*Report
	rest := p[1:]
	for _, child := range r.children {
		if child.accessor == rest[0] {
			out = append(out, child.ReportsAtPath(rest)...)
		}
	}
	return out
}

// ValiditiesAtPath returns the validity of every report resolved by p.
func (r *Report) ValiditiesAtPath(p Path) []Validity {
	reports := r.ReportsAtPath(p)
	if len(reports) == 0 {
		return nil
	}
	out := make([]Validity, 0, len(reports))
	for _, rep := range reports {
		out = append(out, rep.validity)
	}
	return out
}

// IsAllValidAtPath reports whether every report at p is valid.
// ok is false when p resolved nothing.
func (r *Report) IsAllValidAtPath(p Path) (valid bool, ok bool) {
	vs := r.ValiditiesAtPath(p)
	if len(vs) == 0 {
		return false, false
	}
	for _, v := range vs {
		if !v.IsValid() {
			return false, true
		}
	}
	return true, true
}

// IsAnyInvalidAtPath reports whether some report at p is invalid.
// ok is false when p resolved nothing.
func (r *Report) IsAnyInvalidAtPath(p Path) (invalid bool, ok bool) {
	return r.anyAtPath(p, Validity.IsInvalid)
}

// IsAnyErrorAtPath reports whether some report at p is errored.
// ok is false when p resolved nothing.
func (r *Report) IsAnyErrorAtPath(p Path) (errored bool, ok bool) {
	return r.anyAtPath(p, Validity.IsError)
}

func (r *Report) anyAtPath(p Path, pred func(Validity) bool) (bool, bool) {
	vs := r.ValiditiesAtPath(p)
	if len(vs) == 0 {
		return false, false
	}
	for _, v := range vs {
		if pred(v) {
			return true, true
		}
	}
	return false, true
}

// IsEmptyAtPath reports whether p resolved no report at all.
func (r *Report) IsEmptyAtPath(p Path) bool {
	return len(r.ReportsAtPath(p)) == 0
}

// CountReports returns the number of nodes in the tree, r included.
func (r *Report) CountReports() int {
	n := 1
	for _, child := range r.children {
		n += child.CountReports()
	}
	return n
}

// CountLeaves returns the number of childless nodes in the tree.
func (r *Report) CountLeaves() int {
	if len(r.children) == 0 {
		return 1
	}
	n := 0
	for _, child := range r.children {
		n += child.CountLeaves()
	}
	return n
}

// CountLeavesAtPath sums the leaves of every report resolved by p.
func (r *Report) CountLeavesAtPath(p Path) int {
	n := 0
	for _, rep := range r.ReportsAtPath(p) {
		n += rep.CountLeaves()
	}
	return n
}

// Walk visits every node depth-first with its full path. Returning false from
// fn skips the node's children.
func (r *Report) Walk(fn func(p Path, rep *Report) bool) {
	r.walk(nil, fn)
}

func (r *Report) walk(prefix Path, fn func(Path, *Report) bool) {
	p := prefix.Append(r.accessor)
	if !fn(p, r) {
		return
	}
	for _, child := range r.children {
		child.walk(p, fn)
	}
}

// Err returns a ReportError listing every invalid or errored leaf, or nil when
// the tree holds none.
func (r *Report) Err() error {
	var issues ReportError
	r.Walk(func(p Path, rep *Report) bool {
		if len(rep.children) == 0 && !rep.IsValid() {
			issues = append(issues, Issue{Path: p, Message: rep.message, Err: rep.validity.Err})
		}
		return true
	})
	if len(issues) == 0 {
		return nil
	}
	return issues
}

// String renders one line per node that carries a message, depth-first, each
// prefixed with the node's path.
func (r *Report) String() string {
	var b strings.Builder
	r.Walk(func(p Path, rep *Report) bool {
		if rep.message != "" {
			b.WriteString(p.String())
			b.WriteString(": ")
			b.WriteString(rep.message)
			b.WriteByte('\n')
		}
		return true
	})
	return b.String()
}

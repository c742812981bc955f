package validator

// Validity is the tri-state outcome of a report node.
type Validity struct {
	Valid bool
	Err   error
}

func (v Validity) IsValid() bool   { return v.Valid && v.Err == nil }
func (v Validity) IsInvalid() bool { return !v.Valid && v.Err == nil }
func (v Validity) IsError() bool   { return v.Err != nil }

func (v Validity) String() string {
	switch {
	case v.IsError():
		return "error"
	case v.IsInvalid():
		return "invalid"
	default:
		return "valid"
	}
}

// Report is one node of the validation result tree. A node is created for an
// accessor, filled in while that location is validated, and handed to its
// parent through a Collector. Children are kept in insertion order and several
// children may share an accessor (one per validator run against a field).
type Report struct {
	accessor Accessor
	validity Validity
	message  string
	// source is the message set by the validator; Interpreter renders from it.
	source string

	typ     TypeIdent
	typed   bool
	tags    []Tag
	details []Detailer

	children []*Report
}

// NewReport creates a valid node for acc.
func NewReport(acc Accessor) *Report {
	return &Report{accessor: acc, validity: Validity{Valid: true}}
}

func (r *Report) Accessor() Accessor { return r.accessor }
func (r *Report) Validity() Validity { return r.validity }
func (r *Report) Message() string    { return r.message }

// Children returns the direct children. The slice must not be modified.
func (r *Report) Children() []*Report { return r.children }

func (r *Report) IsValid() bool   { return r.validity.IsValid() }
func (r *Report) IsInvalid() bool { return r.validity.IsInvalid() }
func (r *Report) IsError() bool   { return r.validity.IsError() }

func (r *Report) SetValid() {
	r.validity = Validity{Valid: true}
}

func (r *Report) SetInvalid() {
	r.validity = Validity{}
}

// SetError marks the node as errored. A nil err is recorded as ErrValidatorFailed.
func (r *Report) SetError(err error) {
	if err == nil {
		err = ErrValidatorFailed
	}
	r.validity = Validity{Err: err}
}

// SetMessage sets the message of the node. It is also the message Interpreter
// passes on as Invalid.Message.
func (r *Report) SetMessage(msg string) {
	r.message = msg
	r.source = msg
}

// PushChild appends child. The parent takes ownership of it.
func (r *Report) PushChild(child *Report) {
	r.children = append(r.children, child)
}

// SetType records the type that owns the fields validated under this node.
// Interpreter uses it to resolve per-type message overrides.
func (r *Report) SetType(t TypeIdent) {
	r.typ = t
	r.typed = true
}

// Type returns the type recorded with SetType.
func (r *Report) Type() (TypeIdent, bool) {
	return r.typ, r.typed
}

// Tag appends a validation tag and its details, in the order the checks were layered.
func (r *Report) Tag(tag Tag, details ...any) {
	r.tags = append(r.tags, tag)
	r.details = append(r.details, Detailer(details))
}

func (r *Report) prependTag(tag Tag, details ...any) {
	r.tags = append([]Tag{tag}, r.tags...)
	r.details = append([]Detailer{Detailer(details)}, r.details...)
}

// Tags returns the validation tags of the node.
func (r *Report) Tags() []Tag { return r.tags }

// Details returns one detailer per tag.
func (r *Report) Details() []Detailer { return r.details }

package validator

const (
	TagTrue  Tag = "boolean:true"
	TagFalse Tag = "boolean:false"
)

// True validates that the target is true.
func True[D any]() Validator[bool, D] {
	return Check[bool, D](TagTrue, "is false", func(v bool) bool { return v })
}

// False validates that the target is false.
func False[D any]() Validator[bool, D] {
	return Check[bool, D](TagFalse, "is true", func(v bool) bool { return !v })
}

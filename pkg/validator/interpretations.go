package validator

import "fmt"

// message returns an InterpretFunc that ignores data and formats inv with render.
func message[D any](render func(inv Invalid) string) InterpretFunc[D] {
	return func(inv Invalid, _ D) (string, bool) {
		return render(inv), true
	}
}

func constant[D any](msg string) InterpretFunc[D] {
	return message[D](func(Invalid) string { return msg })
}

// AddBuiltinInterpretations registers messages for the tags of the built-in
// validators. Functions already registered for a tag sequence are kept.
func AddBuiltinInterpretations[D any](in *Interpreter[D]) {
	compare := map[Tag]string{
		TagLT: "less than %s",
		TagLE: "at most %s",
		TagGT: "greater than %s",
		TagGE: "at least %s",
		TagEQ: "exactly %s",
		TagNE: "anything but %s",
	}

	for tag, phrase := range compare {
		in.SetNormalOnce([]Tag{tag}, message[D](func(inv Invalid) string {
			return "must be " + fmt.Sprintf(phrase, inv.Detail(0, 0))
		}))
	}
	in.SetNormalOnce([]Tag{TagWithin}, message[D](func(inv Invalid) string {
		return fmt.Sprintf("must be between %s and %s", inv.Detail(0, 0), inv.Detail(0, 1))
	}))

	lengths := map[Tag]string{
		TagLengthBytes: "bytes",
		TagLengthChars: "characters",
		TagSliceLength: "items",
		TagMapLength:   "entries",
	}
	for lengthTag, unit := range lengths {
		for tag, phrase := range compare {
			in.SetNormalOnce([]Tag{lengthTag, tag}, message[D](func(inv Invalid) string {
				return "must be " + fmt.Sprintf(phrase, inv.Detail(1, 0)) + " " + unit + " long"
			}))
		}
		in.SetNormalOnce([]Tag{lengthTag, TagWithin}, message[D](func(inv Invalid) string {
			return fmt.Sprintf("must be between %s and %s %s long", inv.Detail(1, 0), inv.Detail(1, 1), unit)
		}))
	}

	for tag, msg := range map[Tag]string{
		TagAlphabetic:       "must contain only letters",
		TagAlphanumeric:     "must contain only letters and digits",
		TagASCII:            "must contain only ASCII characters",
		TagLowercase:        "must be lowercase",
		TagUppercase:        "must be uppercase",
		TagNotBlank:         "is required",
		TagRequired:         "is required",
		TagTrue:             "must be accepted",
		TagFalse:            "must not be set",
		TagOptionSome:       "is required",
		TagOptionNone:       "must be empty",
		TagEmail:            "must be a valid email address",
		TagIP:               "must be a valid IP address",
		TagIPv4:             "must be a valid IPv4 address",
		TagIPv6:             "must be a valid IPv6 address",
		TagUUID:             "must be a valid UUID",
		TagUUIDNotNil:       "must not be empty",
		TagPasswordStrength: "is too weak",
		TagPasswordCommon:   "is too common",
		TagNoWhitespace:     "must not contain spaces",
		TagPrintable:        "must contain only printable characters",
	} {
		in.SetNormalOnce([]Tag{tag}, constant[D](msg))
	}

	in.SetNormalOnce([]Tag{TagEqualsField}, message[D](func(inv Invalid) string {
		return "must match " + inv.Detail(0, 0)
	}))
	in.SetNormalOnce([]Tag{TagOneOf}, message[D](func(inv Invalid) string {
		return "must be one of " + inv.Detail(0, 0)
	}))
	in.SetNormalOnce([]Tag{TagNoneOf}, message[D](func(inv Invalid) string {
		return "must not be one of " + inv.Detail(0, 0)
	}))
	in.SetNormalOnce([]Tag{TagIteratorLength}, message[D](func(inv Invalid) string {
		return "must have exactly " + inv.Detail(0, 0) + " items"
	}))
	in.SetNormalOnce([]Tag{TagMatches}, message[D](func(inv Invalid) string {
		return "must match " + inv.Detail(0, 0)
	}))
	in.SetNormalOnce([]Tag{TagUUIDVersion}, message[D](func(inv Invalid) string {
		return "must be a version " + inv.Detail(0, 0) + " UUID"
	}))
	in.SetNormalOnce([]Tag{TagPasswordRepeats}, message[D](func(inv Invalid) string {
		return "must not repeat a character more than " + inv.Detail(0, 0) + " times"
	}))
}

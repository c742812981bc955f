package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Tags of the string validators.
const (
	TagAlphabetic   Tag = "string:alphabetic"
	TagAlphanumeric Tag = "string:alphanumeric"
	TagASCII        Tag = "string:ascii"
	TagLowercase    Tag = "string:lowercase"
	TagUppercase    Tag = "string:uppercase"
	TagNotBlank     Tag = "string:not_blank"
	TagLengthBytes  Tag = "length:bytes"
	TagLengthChars  Tag = "length:chars"
)

// Alphabetic validates that every character is a letter.
func Alphabetic[D any]() Validator[string, D] {
	return Check[string, D](TagAlphabetic, "contains non-alphabetic characters", func(s string) bool {
		return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) }) < 0
	})
}

// Alphanumeric validates that every character is a letter or a number.
func Alphanumeric[D any]() Validator[string, D] {
	return Check[string, D](TagAlphanumeric, "contains non-alphanumeric characters", func(s string) bool {
		return strings.IndexFunc(s, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		}) < 0
	})
}

// ASCII validates that the string holds only ASCII characters.
func ASCII[D any]() Validator[string, D] {
	return Check[string, D](TagASCII, "contains non-ASCII characters", func(s string) bool {
		for i := 0; i < len(s); i++ {
			if s[i] >= utf8.RuneSelf {
				return false
			}
		}
		return true
	})
}

// Lowercase validates that the string holds no uppercase letters.
func Lowercase[D any]() Validator[string, D] {
	return Check[string, D](TagLowercase, "contains uppercase characters", func(s string) bool {
		return strings.IndexFunc(s, unicode.IsUpper) < 0
	})
}

// Uppercase validates that the string holds no lowercase letters.
func Uppercase[D any]() Validator[string, D] {
	return Check[string, D](TagUppercase, "contains lowercase characters", func(s string) bool {
		return strings.IndexFunc(s, unicode.IsLower) < 0
	})
}

// NotBlank validates that the string is not empty after trimming whitespace.
func NotBlank[D any]() Validator[string, D] {
	return Check[string, D](TagNotBlank, "is required", func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
}

// LengthBytes forwards the byte length of the string to inner.
func LengthBytes[D any](inner Validator[int, D]) Validator[string, D] {
	return Derive(TagLengthBytes, func(s string) int { return len(s) }, inner)
}

// LengthChars forwards the number of characters of the string to inner. The
// string is NFC-normalized first so composed and decomposed forms count alike.
func LengthChars[D any](inner Validator[int, D]) Validator[string, D] {
	return Derive(TagLengthChars, func(s string) int {
		return utf8.RuneCountInString(norm.NFC.String(s))
	}, inner)
}

package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tags of the password validators. TagPasswordStrength carries the
// PasswordConfig at detail 0.
const (
	TagPasswordStrength Tag = "password:strength"
	TagPasswordCommon   Tag = "password:common"
	TagPasswordRepeats  Tag = "password:repeats"
)

// PasswordConfig describes the character classes a password must contain.
type PasswordConfig struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	// MinCharClasses is the minimum number of distinct classes (upper, lower,
	// digit, special) present, regardless of the Require flags.
	MinCharClasses int
}

// DefaultPasswordConfig requires 8 to 128 characters and three of the four classes.
func DefaultPasswordConfig() PasswordConfig {
	return PasswordConfig{
		MinLength:        8,
		MaxLength:        128,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
		MinCharClasses:   3,
	}
}

func (cfg PasswordConfig) String() string {
	return fmt.Sprintf("%d-%d chars, %d classes", cfg.MinLength, cfg.MaxLength, cfg.MinCharClasses)
}

type charClasses struct {
	upper, lower, digit, special bool
}

func classify(s string) charClasses {
	var cc charClasses
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			cc.upper = true
		case unicode.IsLower(r):
			cc.lower = true
		case unicode.IsDigit(r):
			cc.digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			cc.special = true
		}
	}
	return cc
}

func (cc charClasses) count() int {
	n := 0
	for _, ok := range []bool{cc.upper, cc.lower, cc.digit, cc.special} {
		if ok {
			n++
		}
	}
	return n
}

// Satisfied reports whether password meets every requirement of cfg.
func (cfg PasswordConfig) Satisfied(password string) bool {
	n := utf8.RuneCountInString(password)
	if n < cfg.MinLength || (cfg.MaxLength > 0 && n > cfg.MaxLength) {
		return false
	}
	cc := classify(password)
	switch {
	case cfg.RequireUppercase && !cc.upper,
		cfg.RequireLowercase && !cc.lower,
		cfg.RequireDigits && !cc.digit,
		cfg.RequireSpecial && !cc.special:
		return false
	}
	return cc.count() >= cfg.MinCharClasses
}

// PasswordStrength validates the password against cfg.
func PasswordStrength[D any](cfg PasswordConfig) Validator[string, D] {
	return Check[string, D](TagPasswordStrength, "is too weak", cfg.Satisfied, cfg)
}

// commonPasswords holds frequently breached passwords, lowercased.
var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "passw0rd": {},
	"123456": {}, "1234567": {}, "12345678": {}, "123456789": {}, "1234567890": {},
	"qwerty": {}, "qwerty123": {}, "qwertyuiop": {}, "asdfghjkl": {}, "zxcvbnm": {},
	"111111": {}, "000000": {}, "123123": {}, "abc123": {}, "aa123456": {},
	"admin": {}, "admin123": {}, "administrator": {}, "root": {}, "toor": {},
	"letmein": {}, "welcome": {}, "iloveyou": {}, "trustno1": {}, "monkey": {},
	"dragon": {}, "sunshine": {}, "princess": {}, "football": {}, "baseball": {},
	"master": {}, "secret": {}, "shadow": {}, "superman": {}, "starwars": {},
}

// NotCommonPassword rejects passwords found in a list of frequently breached ones.
func NotCommonPassword[D any]() Validator[string, D] {
	return Check[string, D](TagPasswordCommon, "is too common", func(s string) bool {
		_, found := commonPasswords[strings.ToLower(s)]
		return !found
	})
}

// NoRepeatingChars rejects runs of the same character longer than max.
func NoRepeatingChars[D any](max int) Validator[string, D] {
	return Check[string, D](TagPasswordRepeats, fmt.Sprintf("repeats a character more than %d times", max), func(s string) bool {
		var prev rune
		run := 0
		for i, r := range []rune(s) {
			if i > 0 && r == prev {
				run++
			} else {
				run = 1
			}
			if run > max {
				return false
			}
			prev = r
		}
		return true
	}, max)
}

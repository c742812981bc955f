package validator

import (
	"net/mail"
	"net/netip"
	"strings"
)

// Tags of the format validators.
const (
	TagEmail Tag = "format:email"
	TagIP    Tag = "format:ip"
	TagIPv4  Tag = "format:ipv4"
	TagIPv6  Tag = "format:ipv6"
)

// Email validates a bare address such as "user@example.com". Display names are rejected.
func Email[D any]() Validator[string, D] {
	return Check[string, D](TagEmail, "must be a valid email address", func(s string) bool {
		if strings.TrimSpace(s) == "" {
			return false
		}
		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s {
			return false
		}
		local, domain, ok := strings.Cut(addr.Address, "@")
		if !ok || local == "" {
			return false
		}
		return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
	})
}

// IP validates an IPv4 or IPv6 address.
func IP[D any]() Validator[string, D] {
	return Check[string, D](TagIP, "must be a valid IP address", func(s string) bool {
		_, err := netip.ParseAddr(s)
		return err == nil
	})
}

// IPv4 validates an IPv4 address in dotted decimal form.
func IPv4[D any]() Validator[string, D] {
	return Check[string, D](TagIPv4, "must be a valid IPv4 address", func(s string) bool {
		addr, err := netip.ParseAddr(s)
		return err == nil && addr.Is4()
	})
}

// IPv6 validates an IPv6 address, including IPv4-mapped forms.
func IPv6[D any]() Validator[string, D] {
	return Check[string, D](TagIPv6, "must be a valid IPv6 address", func(s string) bool {
		addr, err := netip.ParseAddr(s)
		return err == nil && (addr.Is6() || addr.Is4In6())
	})
}

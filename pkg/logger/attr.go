package logger

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Collector records the merge policy name under the key "collector".
func Collector(name string) slog.Attr {
	return slog.String("collector", name)
}

// Path records a report location under the key "path". Nil renders nothing.
func Path(p fmt.Stringer) slog.Attr {
	if p == nil {
		return slog.Attr{}
	}
	return slog.String("path", p.String())
}

// Validity records a report outcome ("valid", "invalid" or "error").
func Validity(v fmt.Stringer) slog.Attr {
	return slog.String("validity", v.String())
}

// Tags joins validation tags with sep under the key "tags".
// An empty list returns an empty Attr.
func Tags(tags []string, sep string) slog.Attr {
	if len(tags) == 0 {
		return slog.Attr{}
	}
	return slog.String("tags", strings.Join(tags, sep))
}

// Count records a number of items under key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

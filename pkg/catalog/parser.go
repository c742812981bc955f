package catalog

import (
	"context"
	"path/filepath"
	"strings"
)

// Document is the decoded form of one catalog file.
//
//	messages:
//	  "string:ascii": "%{field} must contain only ASCII characters"
//	  "length:chars > compare:ge": "%{field} must be at least %{1.0} characters long"
//	overrides:
//	  Signup:
//	    password:
//	      "length:chars > compare:ge": "choose a password of %{1.0} characters or more"
//
// Override levels accept "*" as a catch-all type, field or tag sequence.
type Document struct {
	Messages  map[string]string                       `yaml:"messages" json:"messages"`
	Overrides map[string]map[string]map[string]string `yaml:"overrides" json:"overrides"`
}

func (d *Document) empty() bool {
	return len(d.Messages) == 0 && len(d.Overrides) == 0
}

// merge copies the entries of other into d, replacing existing ones.
func (d *Document) merge(other *Document) {
	if d.Messages == nil {
		d.Messages = make(map[string]string)
	}
	for k, v := range other.Messages {
		d.Messages[k] = v
	}

	if d.Overrides == nil {
		d.Overrides = make(map[string]map[string]map[string]string)
	}
	for typ, fields := range other.Overrides {
		if d.Overrides[typ] == nil {
			d.Overrides[typ] = make(map[string]map[string]string)
		}
		for field, byTags := range fields {
			if d.Overrides[typ][field] == nil {
				d.Overrides[typ][field] = make(map[string]string)
			}
			for tags, tmpl := range byTags {
				d.Overrides[typ][field][tags] = tmpl
			}
		}
	}
}

// Parser decodes catalog content of one file format.
type Parser interface {
	Parse(ctx context.Context, content []byte) (*Document, error)

	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns the parser matching the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

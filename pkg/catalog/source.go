package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// Source loads catalog documents.
type Source interface {
	Load(ctx context.Context) (*Document, error)
}

// MapSource serves an in-memory document.
type MapSource struct {
	Messages  map[string]string
	Overrides map[string]map[string]map[string]string
}

func (s MapSource) Load(_ context.Context) (*Document, error) {
	return &Document{Messages: s.Messages, Overrides: s.Overrides}, nil
}

// FileSource reads one catalog file. The parser is chosen by extension when nil.
type FileSource struct {
	Parser Parser
	Path   string
}

func (s FileSource) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	parser := s.Parser
	if parser == nil {
		if parser = NewParserForFile(s.Path); parser == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, s.Path)
		}
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	doc, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", s.Path, err))
	}
	return doc, nil
}

// FSSource reads every supported file in Dir of FS, typically an embed.FS.
// Files are merged in lexical order, so later files override earlier ones.
type FSSource struct {
	FS  fs.FS
	Dir string
}

func (s FSSource) Load(ctx context.Context) (*Document, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	entries, err := fs.ReadDir(s.FS, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	merged := &Document{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		name := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(s.FS, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		doc, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
		}
		merged.merge(doc)
	}
	return merged, nil
}

package catalog

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse YAML catalog")
	ErrFailedToParseJSON = errors.New("failed to parse JSON catalog")
	ErrParsingCancelled  = errors.New("catalog parsing cancelled")

	ErrFailedToReadFile  = errors.New("failed to read catalog file")
	ErrFailedToParseFile = errors.New("failed to parse catalog file")
	ErrUnsupportedFile   = errors.New("unsupported catalog file extension")
	ErrFailedToReadDir   = errors.New("failed to read catalog directory")
	ErrLoadingCancelled  = errors.New("loading catalog cancelled")
	ErrEmptyCatalog      = errors.New("catalog has no messages")
	ErrInvalidTypeKey    = errors.New("invalid type key")
)

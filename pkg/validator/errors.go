package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by the validation engine.
var (
	// ErrExitGracefully stops the traversal on purpose. It is not a failure and
	// Run never returns it to callers.
	ErrExitGracefully = errors.New("validation stopped early")

	// ErrValidatorFailed is recorded when a validator reports an error without a cause.
	ErrValidatorFailed = errors.New("validator failed")

	// ErrInvalidPath is returned when a path expression cannot be parsed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrUnknownCollector is returned when a collector name is not registered.
	ErrUnknownCollector = errors.New("unknown collector")

	// ErrLoadingConfig is returned when the environment cannot be parsed into Config.
	ErrLoadingConfig = errors.New("failed to load validator config")

	// ErrInvalidLogFormat is returned when the configured log format is unsupported.
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// ExitError aborts the whole traversal. It passes through every collector and
// combinator untouched and reaches the caller of Run.
type ExitError struct {
	Err error
}

// ExitWithError wraps err into a fatal exit signal.
func ExitWithError(err error) error {
	if err == nil {
		err = ErrValidatorFailed
	}
	return &ExitError{Err: err}
}

func (e *ExitError) Error() string {
	return "validation aborted: " + e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// IsGraceful reports whether err is the intentional early-stop signal.
func IsGraceful(err error) bool {
	return errors.Is(err, ErrExitGracefully)
}

// IsFatal reports whether err carries an ExitError.
func IsFatal(err error) bool {
	var exit *ExitError
	return errors.As(err, &exit)
}

// Issue describes a single invalid or errored leaf of a report.
type Issue struct {
	Path    Path
	Message string
	Err     error
}

func (i Issue) String() string {
	msg := i.Message
	if msg == "" && i.Err != nil {
		msg = i.Err.Error()
	}
	if msg == "" {
		msg = "invalid"
	}
	return fmt.Sprintf("%s: %s", i.Path, msg)
}

// ReportError is the error form of a report that holds invalid or errored leaves.
type ReportError []Issue

func (re ReportError) Error() string {
	if len(re) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(re))
	for _, issue := range re {
		parts = append(parts, issue.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any issue is located exactly at p.
func (re ReportError) Has(p Path) bool {
	for _, issue := range re {
		if issue.Path.Equal(p) {
			return true
		}
	}
	return false
}

// Get returns the messages of all issues located exactly at p.
func (re ReportError) Get(p Path) []string {
	var messages []string
	for _, issue := range re {
		if issue.Path.Equal(p) {
			messages = append(messages, issue.Message)
		}
	}
	return messages
}

// Paths returns the distinct issue paths in report order.
func (re ReportError) Paths() []Path {
	var paths []Path
	seen := make(map[string]bool)
	for _, issue := range re {
		key := issue.Path.String()
		if !seen[key] {
			paths = append(paths, issue.Path)
			seen[key] = true
		}
	}
	return paths
}

// ExtractReportError extracts a ReportError from err.
func ExtractReportError(err error) ReportError {
	if err == nil {
		return nil
	}

	var reportErr ReportError
	if errors.As(err, &reportErr) {
		return reportErr
	}

	return nil
}

func IsReportError(err error) bool {
	if err == nil {
		return false
	}

	var reportErr ReportError
	return errors.As(err, &reportErr)
}

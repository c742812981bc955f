package validator

import (
	"log/slog"

	"github.com/dmitrymomot/vate/pkg/logger"
)

// Traced wraps c so every merge is logged at debug level and every early exit
// at info level. Merge semantics are those of c.
func Traced(c Collector, log *slog.Logger) Collector {
	if log == nil {
		return c
	}
	name := CollectorName(c)
	return &tracedCollector{
		next: c,
		name: name,
		log:  log.With(logger.Component("validator"), logger.Collector(name)),
	}
}

type tracedCollector struct {
	next Collector
	name string
	log  *slog.Logger
}

func (t *tracedCollector) Name() string { return t.name }

func (t *tracedCollector) Apply(parent, child *Report) error {
	err := t.next.Apply(parent, child)

	t.log.Debug("report merged",
		slog.String("parent", parent.Accessor().String()),
		slog.String("child", child.Accessor().String()),
		logger.Validity(child.Validity()),
		logger.Tags(child.Tags(), TagSeparator),
		logger.Error(child.Validity().Err),
		logger.Group("scope",
			logger.Count("children", len(child.Children())),
			logger.Errors(childErrors(child)...),
		),
	)

	switch {
	case err == nil:
	case IsGraceful(err):
		t.log.Info("validation stopped early",
			slog.String("at", child.Accessor().String()),
			logger.Validity(child.Validity()),
		)
	default:
		t.log.Warn("validation aborted",
			slog.String("at", child.Accessor().String()),
			logger.Error(err),
		)
	}
	return err
}

// childErrors returns the errors of the errored direct children of r.
func childErrors(r *Report) []error {
	var errs []error
	for _, c := range r.Children() {
		if c.IsError() {
			errs = append(errs, c.Validity().Err)
		}
	}
	return errs
}

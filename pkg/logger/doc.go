// Package logger builds slog loggers from functional options and provides
// attribute constructors shared by the validation packages.
//
// New picks a text or JSON handler based on the configured Format and applies
// static attributes to every record:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithComponent("validator"),
//	)
//	log.Debug("merged report", logger.Path(path), logger.Validity(v))
//
// ParseFormat and ParseLevel turn configuration strings into options, returning
// ErrInvalidFormat or ErrInvalidLevel for unsupported values.
//
// Attribute helpers such as Error and Tags return an empty slog.Attr for nil or
// empty input, so they can be passed unconditionally.
package logger

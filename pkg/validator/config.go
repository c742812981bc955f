package validator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/vate/pkg/logger"
)

// Config selects the collector policy and its tracing from the environment.
//
//	VATE_COLLECTOR=first_invalid
//	VATE_TRACE=true
//	VATE_LOG_FORMAT=text
//	VATE_LOG_LEVEL=debug
type Config struct {
	Policy    string `env:"COLLECTOR" envDefault:"invalids_and_errors"`
	Trace     bool   `env:"TRACE" envDefault:"false"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"debug"`
}

// EnvPrefix is prepended to every Config variable name.
const EnvPrefix = "VATE_"

// LoadConfig loads the given .env files, then parses Config from the
// environment. Variables already set in the environment win over the files.
// Without files, a .env in the working directory is loaded when present.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrLoadingConfig, err)
		}
	} else {
		// A missing default .env is fine.
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Join(ErrLoadingConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, errors.Join(ErrLoadingConfig, err)
	}
	return cfg, nil
}

// MustLoadConfig is like LoadConfig but panics on error.
func MustLoadConfig(files ...string) Config {
	cfg, err := LoadConfig(files...)
	if err != nil {
		panic(fmt.Sprintf("failed to load validator config: %v", err))
	}
	return cfg
}

func (c Config) validate() error {
	if _, err := CollectorByName(c.Policy); err != nil {
		return err
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return errors.Join(ErrInvalidLogFormat, err)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Collector builds the configured policy. When tracing is enabled the policy
// is wrapped with Traced, logging to w in the configured format.
func (c Config) Collector(w io.Writer) (Collector, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	policy, _ := CollectorByName(c.Policy)
	if !c.Trace {
		return policy, nil
	}
	return Traced(policy, c.logger(w)), nil
}

func (c Config) logger(w io.Writer) *slog.Logger {
	format, _ := logger.ParseFormat(c.LogFormat)
	level, _ := logger.ParseLevel(c.LogLevel)
	return logger.New(
		logger.WithOutput(w),
		logger.WithFormat(format),
		logger.WithLevel(level),
	)
}

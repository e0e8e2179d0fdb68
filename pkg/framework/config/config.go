// Package config loads module configuration from the environment.
//
// A plugin module has no command line and no say over its working
// directory, so the host's environment is the only channel a user has to
// adjust it. Configuration is read once, when the host loads the module.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/justyntemme/vst3shim/pkg/framework/debug"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds module-wide settings.
type Config struct {
	// LogEnabled turns module logging on or off entirely.
	LogEnabled bool `env:"VST3SHIM_LOG_ENABLED" envDefault:"true"`
	// LogLevel is one of debug, info, warn, error, off.
	LogLevel string `env:"VST3SHIM_LOG_LEVEL" envDefault:"warn"`
	// LogFile redirects logging from stderr to a file.
	LogFile string `env:"VST3SHIM_LOG_FILE"`
	// LogFormat is console or json.
	LogFormat string `env:"VST3SHIM_LOG_FORMAT" envDefault:"console"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadFrom reads the configuration from the given variables instead of the
// process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks field values that env parsing cannot.
func (c Config) Validate() error {
	if _, err := debug.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("VST3SHIM_LOG_LEVEL: %w", err)
	}
	switch strings.ToLower(c.LogFormat) {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("VST3SHIM_LOG_FORMAT: unknown format %q", c.LogFormat)
	}
	return nil
}

// Logger builds the logger the configuration describes. The returned closer
// releases the log file, if any; it is never nil.
func (c Config) Logger() (*debug.Logger, io.Closer, error) {
	if !c.LogEnabled {
		return debug.Nop(), nopCloser{}, nil
	}
	level, err := debug.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nopCloser{}, err
	}
	console := strings.ToLower(c.LogFormat) != FormatJSON

	if c.LogFile == "" {
		if console {
			return debug.New(nil, level), nopCloser{}, nil
		}
		return debug.New(os.Stderr, level), nopCloser{}, nil
	}

	logger, file, err := debug.NewFileLogger(c.LogFile, level, console)
	if err != nil {
		return nil, nopCloser{}, err
	}
	return logger, file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

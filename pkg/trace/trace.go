// Package trace provides opt-in diagnostics for dispatch and property
// notification flow.
//
// Tracing is off by default and costs a single flag check per call site.
// Enable it programmatically:
//
//	trace.Apply(trace.Config{Enabled: true})
//
// or from the environment:
//
//	OBSERVE_TRACE=1 ./myapp
package trace

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/go-drift/observe/pkg/errors"
)

// Config holds trace settings, loadable from environment variables.
type Config struct {
	// Enabled turns trace output on.
	Enabled bool `env:"OBSERVE_TRACE"`
	// Prefix is prepended to every trace line.
	Prefix string `env:"OBSERVE_TRACE_PREFIX" envDefault:"observe"`
}

var (
	// Enabled controls whether trace lines are emitted. Read by the event
	// and property packages on their hot paths.
	Enabled bool

	prefix           = "observe"
	writer io.Writer = os.Stderr
)

// FromEnv loads trace configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Apply installs the given configuration.
func Apply(cfg Config) {
	Enabled = cfg.Enabled
	if cfg.Prefix != "" {
		prefix = cfg.Prefix
	}
}

// InitFromEnv loads configuration from the environment and applies it.
// Call once at startup; a missing environment leaves tracing disabled.
// Tracing is diagnostics, not behavior, so a malformed environment is
// reported through the errors package rather than propagated: the caller
// keeps running with tracing off.
func InitFromEnv() {
	cfg, err := FromEnv()
	if err != nil {
		errors.Report(errors.Wrap("trace.InitFromEnv", errors.KindConfig, "", err))
		return
	}
	Apply(cfg)
}

// SetWriter redirects trace output. Pass nil to restore stderr.
func SetWriter(w io.Writer) {
	if w == nil {
		writer = os.Stderr
		return
	}
	writer = w
}

// Logf writes one trace line. No-op unless Enabled.
func Logf(format string, args ...any) {
	if !Enabled {
		return
	}
	fmt.Fprintf(writer, "[%s] %s\n", prefix, fmt.Sprintf(format, args...))
}

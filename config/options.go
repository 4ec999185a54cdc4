package config

import (
	"log/slog"

	"github.com/randalmurphal/sfdxkit/envvars"
	"github.com/randalmurphal/sfdxkit/schema"
)

// Option customizes aggregator construction.
type Option func(*options)

type options struct {
	registry   *schema.Registry
	projectDir string
	globalDir  string
	lookupEnv  func(name string) (string, bool)
	logger     *slog.Logger
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) schemaRegistry() *schema.Registry {
	if o.registry != nil {
		return o.registry
	}
	return schema.Default()
}

func (o options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.Default()
}

func (o options) envReader() *envvars.Reader {
	return &envvars.Reader{Lookup: o.lookupEnv}
}

// WithRegistry replaces the default property registry. Use this to
// recognize additional keys beyond the standard set.
func WithRegistry(r *schema.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithProjectDir sets the directory where workspace discovery starts.
// Defaults to the working directory.
func WithProjectDir(dir string) Option {
	return func(o *options) {
		o.projectDir = dir
	}
}

// WithGlobalDir overrides the global config directory (default
// ~/.sfdx). Intended for tests and sandboxed tooling.
func WithGlobalDir(dir string) Option {
	return func(o *options) {
		o.globalDir = dir
	}
}

// WithLookupEnv replaces the process-environment lookup used for the
// Environment layer. Defaults to os.LookupEnv.
func WithLookupEnv(lookup func(name string) (string, bool)) Option {
	return func(o *options) {
		o.lookupEnv = lookup
	}
}

// WithLogger sets the logger for debug output during load and reload.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

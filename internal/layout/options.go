package layout

import (
	"go.uber.org/zap"

	"kijilayout/internal/cellschema"
	"kijilayout/internal/core"
)

// config carries the injectable collaborators: the two name predicates,
// the class-resolution environment, and an optional debug logger. All are
// optional; Build supplies sensible defaults.
type config struct {
	names   core.NamePredicates
	classes cellschema.ClassResolver
	logger  *zap.SugaredLogger
}

// Option configures a Build call.
type Option func(*config)

// WithNamePredicates overrides the default restricted-identifier name
// validator.
func WithNamePredicates(n core.NamePredicates) Option {
	return func(c *config) { c.names = n }
}

// WithClassResolver supplies the ambient type-loading environment CLASS
// cell schemas are resolved against. When omitted, Build falls back to
// cellschema.CurrentClassResolver(), the process-wide registry.
func WithClassResolver(r cellschema.ClassResolver) Option {
	return func(c *config) { c.classes = r }
}

// WithLogger attaches a structured logger for build-time diagnostics. The
// only line the builder emits is a Debug entry for a CLASS schema whose
// class is tolerated as not-found. None of this logging is required for
// correctness.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{
		names:  core.DefaultNamePredicates,
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.classes == nil {
		c.classes = cellschema.CurrentClassResolver()
	}
	return c
}

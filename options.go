package xmlbind

import (
	"fmt"
	"log/slog"
)

const defaultMaxDepth = 256

// Option configures a bind.
type Option interface{ apply(*bindOptions) }

type bindOptions struct {
	logger   *slog.Logger
	stats    *Stats
	maxDepth int
}

type optionFunc func(*bindOptions)

func (f optionFunc) apply(cfg *bindOptions) {
	if cfg == nil {
		return
	}
	f(cfg)
}

// WithLogger sets a logger for unmapped nodes (debug level) and conversion
// failures (warn level). Binding does not log by default.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(cfg *bindOptions) {
		cfg.logger = l
	})
}

// WithMaxDepth limits how deep composites and groups may nest.
// Zero selects the default of 256.
func WithMaxDepth(n int) Option {
	return optionFunc(func(cfg *bindOptions) {
		cfg.maxDepth = n
	})
}

// WithStats accumulates counters for the bind into s.
func WithStats(s *Stats) Option {
	return optionFunc(func(cfg *bindOptions) {
		cfg.stats = s
	})
}

// Stats counts what a bind visited.
type Stats struct {
	// Elements is the number of element and attribute nodes offered to a field.
	Elements int
	// Bound is the number of leaves that converted successfully.
	Bound int
	// Failed is the number of leaves whose text was rejected by their converter.
	Failed int
	// Unmapped is the number of element and attribute nodes with no registered field.
	Unmapped int
}

func resolveOptions(opts []Option) (bindOptions, error) {
	var cfg bindOptions
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&cfg)
	}
	if cfg.maxDepth < 0 {
		return bindOptions{}, fmt.Errorf("bind max depth must be >= 0")
	}
	return cfg, nil
}

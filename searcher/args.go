package searcher

import (
	"othello/game"
	"othello/meta"
	"time"
)

type Option func(cfg *config)

type config struct {
	depth      int
	goroutines int
	seed       uint64
	evaluate   game.Evaluate
	metrics    MetricsCollector
}

func newConfig(options []Option) config {
	cfg := config{ // Default values
		depth:      meta.SearchDepth,
		goroutines: 1,
		seed:       uint64(time.Now().UnixNano()),
		evaluate:   game.EvaluatePosition,
		metrics:    NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(&cfg)
	}
	return cfg
}

// WithDepth overrides the minimax search depth.
func WithDepth(depth int) Option {
	return func(cfg *config) {
		if depth > 0 {
			cfg.depth = depth
		}
	}
}

// WithGoroutines spreads the minimax root branches over n goroutines.
func WithGoroutines(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.goroutines = n
		}
	}
}

// WithSeed makes the random strategy reproducible.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.seed = seed
	}
}

// WithEvaluationFn replaces the static evaluation used at minimax leaves.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(cfg *config) {
		if evaluate != nil {
			cfg.evaluate = evaluate
		}
	}
}

// WithMetrics collects search metrics, read back through Searcher.Metrics.
func WithMetrics() Option {
	return func(cfg *config) {
		cfg.metrics = NewMetricsCollector()
	}
}

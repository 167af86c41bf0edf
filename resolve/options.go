package resolve

import (
	"log/slog"
	"runtime"
)

// config holds the resolved settings for a single Resolve call, built from
// the supplied Options: a private struct defaulted, then folded over by
// functional options.
type config struct {
	workerCount int
	logger      *slog.Logger
}

func defaultConfig() config {
	return config{
		workerCount: runtime.GOMAXPROCS(0),
		logger:      slog.Default(),
	}
}

// Option configures a Resolve call.
type Option func(*config)

// WithWorkerCount bounds the Member Resolver's parallel worker pool. Values
// less than 1 are treated as 1 (no parallelism). The default is
// runtime.GOMAXPROCS(0).
func WithWorkerCount(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.workerCount = n
	}
}

// WithLogger supplies a logger for phase-boundary progress messages. The
// default is slog.Default(). No log line is emitted from inside a single
// per-type worker; only phase-level summaries are logged, so logging never
// becomes a point of write contention during the parallel fan-out.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

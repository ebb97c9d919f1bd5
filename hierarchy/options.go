// SPDX-License-Identifier: MIT

package hierarchy

import "log/slog"

// DefaultWorkers evaluates the value matrix serially.
const DefaultWorkers = 1

const panicWorkersInvalid = "hierarchy: WithWorkers: n must be ≥ 1"

// Option configures a Builder.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers sets how many goroutines evaluate numeric cells. With n > 1
// the registry is still filled in one serial pass so variable numbering
// never depends on scheduling. The oracle must then be safe for concurrent
// use. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes build and evaluation diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers, logger: slog.Default()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

package algo

import (
	"github.com/rs/zerolog"

	"github.com/codegraph/csrengine/internal/obs"
)

// options holds the optional logging hook BFS and FindCallers accept.
// It exists only for those two functions: PageRank and Louvain already
// carry an Options struct and add a Logger field to it directly.
type options struct {
	logger zerolog.Logger
}

// Option configures BFS/FindCallers. The zero value of options (an
// uninitialized zerolog.Logger) is never used directly; defaultOptions
// always seeds a Nop logger first.
type Option func(*options)

// WithLogger attaches a logger BFS/FindCallers use to report frontier
// size per level at Debug, tagged with component "algo" via
// obs.Component. The default is
// zerolog.Nop() — CPU-only callers pay nothing for this unless they
// opt in.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = obs.Component(logger, "algo") }
}

func defaultOptions() options {
	return options{logger: obs.Default()}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

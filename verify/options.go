package verify

import (
	"log/slog"
	"runtime"
)

const panicConcurrencyInvalid = "verify: WithConcurrency: n must be ≥ 1"

// DefaultConcurrency selects runtime.GOMAXPROCS(0) workers for VerifyBatch.
const DefaultConcurrency = 0

// Option configures a Checker.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	concurrency int
}

// WithLogger sets the logger for schema rejections and record failures.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConcurrency bounds the number of records VerifyBatch checks at once.
// Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *options) { o.concurrency = n }
}

func gatherOptions(opts []Option) options {
	o := options{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.concurrency == DefaultConcurrency {
		o.concurrency = runtime.GOMAXPROCS(0)
	}

	return o
}

package cache

import (
	"time"

	"github.com/mikekulinski/zkclient/pkg/log"
)

type options struct {
	maxDepth       int
	initialBuild   bool
	refreshRetries int
	retryInitial   time.Duration
	retryMax       time.Duration
	logger         log.Logger
}

func defaultOptions() *options {
	return &options{
		refreshRetries: 3,
		retryInitial:   100 * time.Millisecond,
		retryMax:       2 * time.Second,
		logger:         log.DefaultLogger,
	}
}

type Option func(*options)

// WithMaxDepth limits the mirror to depth levels below the root. Zero mirrors
// the root only.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithInitialBuild makes Start block until the initial state is loaded.
func WithInitialBuild() Option {
	return func(o *options) {
		o.initialBuild = true
	}
}

// WithRefreshRetries sets how many times a failed refetch is tried before the
// cache breaks.
func WithRefreshRetries(n int) Option {
	return func(o *options) {
		o.refreshRetries = n
	}
}

func WithRetry(initial, maxDelay time.Duration) Option {
	return func(o *options) {
		o.retryInitial = initial
		o.retryMax = maxDelay
	}
}

func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

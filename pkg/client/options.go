package client

import (
	"time"

	"github.com/mikekulinski/zkclient/pkg/config"
	"github.com/mikekulinski/zkclient/pkg/log"
	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type options struct {
	sessionTimeout  time.Duration
	connectTimeout  time.Duration
	retryInitial    time.Duration
	retryMax        time.Duration
	recursiveDelete bool
	refreshRetries  int
	logger          log.Logger
	meterProvider   metric.MeterProvider
	// watcher receives every session state change.
	watcher zookeeper.Watcher
}

func defaultOptions() *options {
	cfg := config.DefaultClient()
	return &options{
		sessionTimeout: cfg.SessionTimeout,
		connectTimeout: cfg.ConnectTimeout,
		retryInitial:   cfg.RetryInitial,
		retryMax:       cfg.RetryMax,
		refreshRetries: cfg.RefreshRetries,
		logger:         log.DefaultLogger,
		meterProvider:  otel.GetMeterProvider(),
	}
}

// Option configures a Client.
type Option func(*options)

// WithSessionTimeout sets the session timeout requested from the server. The
// server may clamp it; Client.SessionTimeout reports the negotiated value.
func WithSessionTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.sessionTimeout = timeout
	}
}

// WithConnectTimeout bounds Connect, on top of any deadline of its context.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.connectTimeout = timeout
	}
}

// WithRetry sets the backoff used while reconnecting a lost session.
func WithRetry(initial, maxDelay time.Duration) Option {
	return func(o *options) {
		o.retryInitial = initial
		o.retryMax = maxDelay
	}
}

// WithRecursiveDelete makes Delete remove a node together with its
// descendants instead of failing with ErrHasChildren.
func WithRecursiveDelete(enabled bool) Option {
	return func(o *options) {
		o.recursiveDelete = enabled
	}
}

// WithRefreshRetries sets how many times a persistent watch retries a failed
// refetch before it breaks.
func WithRefreshRetries(n int) Option {
	return func(o *options) {
		o.refreshRetries = n
	}
}

func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

// WithWatcher sets the default watcher. It receives an EventSession for
// every session state change.
func WithWatcher(watcher zookeeper.Watcher) Option {
	return func(o *options) {
		o.watcher = watcher
	}
}

// FromConfig applies a client configuration section.
func FromConfig(cfg config.Client) Option {
	return func(o *options) {
		o.sessionTimeout = cfg.SessionTimeout
		o.connectTimeout = cfg.ConnectTimeout
		o.retryInitial = cfg.RetryInitial
		o.retryMax = cfg.RetryMax
		o.recursiveDelete = cfg.RecursiveDelete
		o.refreshRetries = cfg.RefreshRetries
	}
}

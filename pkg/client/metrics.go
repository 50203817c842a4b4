package client

import (
	"context"
	"errors"
	"time"

	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/mikekulinski/zkclient/pkg/client"

// metrics groups the client instruments:
//   - zk.client.requests           (Int64Counter)
//   - zk.client.request.failures   (Int64Counter)
//   - zk.client.request.duration   (Float64Histogram, unit "ms")
//   - zk.client.reconnects         (Int64Counter)
//   - zk.client.watch.events       (Int64Counter)
type metrics struct {
	requests   metric.Int64Counter
	failures   metric.Int64Counter
	duration   metric.Float64Histogram
	reconnects metric.Int64Counter
	events     metric.Int64Counter
}

func newMetrics(mp metric.MeterProvider) (*metrics, error) {
	meter := mp.Meter(instrumentationName)
	var m metrics
	var err error

	if m.requests, err = meter.Int64Counter(
		"zk.client.requests",
		metric.WithDescription("Total number of requests sent to the server"),
	); err != nil {
		return nil, err
	}

	if m.failures, err = meter.Int64Counter(
		"zk.client.request.failures",
		metric.WithDescription("Total number of requests that failed"),
	); err != nil {
		return nil, err
	}

	if m.duration, err = meter.Float64Histogram(
		"zk.client.request.duration",
		metric.WithDescription("Time from sending a request to receiving its response"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}

	if m.reconnects, err = meter.Int64Counter(
		"zk.client.reconnects",
		metric.WithDescription("Total number of reconnection attempts"),
	); err != nil {
		return nil, err
	}

	if m.events, err = meter.Int64Counter(
		"zk.client.watch.events",
		metric.WithDescription("Total number of events delivered to watchers"),
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *metrics) recordRequest(ctx context.Context, op string, start time.Time, err error) {
	attrs := metric.WithAttributes(attribute.String("op", op))
	m.requests.Add(ctx, 1, attrs)
	m.duration.Record(ctx, float64(time.Since(start))/float64(time.Millisecond), attrs)
	// A missing node is an answer, not a failure.
	if err != nil && !errors.Is(err, zookeeper.ErrNodeNotFound) {
		m.failures.Add(ctx, 1, attrs)
	}
}

func (m *metrics) recordReconnect(ctx context.Context) {
	m.reconnects.Add(ctx, 1)
}

func (m *metrics) recordEvent(ctx context.Context, typ zookeeper.EventType) {
	m.events.Add(ctx, 1, metric.WithAttributes(attribute.String("type", typ.String())))
}

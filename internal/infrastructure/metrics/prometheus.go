package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"mediabridge/internal/domain/repository/metrics"
)

const namespace = "mediabridge"

// Prometheus records usecase outcomes as prometheus metrics.
type Prometheus struct {
	duration       *prometheus.HistogramVec
	operations     *prometheus.CounterVec
	droppedEntries prometheus.Counter
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// New registers the bridge metrics on reg; nil means the default registerer.
func New(reg prometheus.Registerer) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	p := &Prometheus{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of bridge operations including external API calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Bridge operations by outcome.",
		}, []string{"operation", "outcome"}),
		droppedEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_dropped_total",
			Help:      "Entries left out of a listing because their content could not be read.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served by the bridge.",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	var err error
	if p.duration, err = register(reg, p.duration); err != nil {
		return nil, err
	}
	if p.operations, err = register(reg, p.operations); err != nil {
		return nil, err
	}
	if p.droppedEntries, err = register(reg, p.droppedEntries); err != nil {
		return nil, err
	}
	if p.requests, err = register(reg, p.requests); err != nil {
		return nil, err
	}
	if p.requestLatency, err = register(reg, p.requestLatency); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Prometheus) RecordOperation(operation string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	p.duration.WithLabelValues(operation).Observe(duration.Seconds())
	p.operations.WithLabelValues(operation, outcome).Inc()
}

func (p *Prometheus) RecordDroppedEntry(string) {
	p.droppedEntries.Inc()
}

func (p *Prometheus) RecordRequest(method, route string, status int, duration time.Duration) {
	p.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.requestLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// register returns the collector already registered under the same
// descriptor, so several bridges can share one registry.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}

		return c, fmt.Errorf("register metrics: %w", err)
	}

	return c, nil
}

var _ metrics.Recorder = (*Prometheus)(nil)

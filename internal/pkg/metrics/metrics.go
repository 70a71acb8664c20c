// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shop"

// Channel labels used by the notification counters.
const (
	ChannelInApp  = "in_app"
	ChannelPush   = "push"
	ChannelEmail  = "email"
	ChannelStream = "stream"
)

// Record kinds used by the retention counters.
const (
	KindOrders        = "orders"
	KindNotifications = "notifications"
)

type Metrics struct {
	NotificationsDelivered *prometheus.CounterVec
	ChannelFailures        *prometheus.CounterVec
	EventsDropped          prometheus.Counter
	RetentionDeleted       *prometheus.CounterVec
	RetentionFailures      *prometheus.CounterVec
	Requests               *prometheus.CounterVec
	LatencyMS              *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them on a private registry, so several
// instances can coexist in one process.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		NotificationsDelivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "delivered_total",
			Help:      "Notification deliveries that succeeded, by channel.",
		}, []string{"channel"}),
		ChannelFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "channel_failures_total",
			Help:      "Notification channel failures, by channel.",
		}, []string{"channel"}),
		EventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "events_dropped_total",
			Help:      "Events rejected because the dispatch queue was full or closed.",
		}),
		RetentionDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "retention",
			Name:      "deleted_total",
			Help:      "Records removed by the retention sweep, by kind.",
		}, []string{"kind"}),
		RetentionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "retention",
			Name:      "sweep_failures_total",
			Help:      "Failed retention sweeps, by kind.",
		}, []string{"kind"}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"handler"}),
		gatherer: registry,
	}

	registry.MustRegister(
		m.NotificationsDelivered,
		m.ChannelFailures,
		m.EventsDropped,
		m.RetentionDeleted,
		m.RetentionFailures,
		m.Requests,
		m.LatencyMS,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "menowell"

// Invite outcomes recorded by ObserveInvite.
const (
	InviteIssued       = "issued"
	InviteReused       = "reused"
	InviteRedeemed     = "redeemed"
	InviteInvalid      = "invalid_code"
	InviteSelfRedeemed = "self_redemption"
	InviteFailed       = "failed"
)

// Metrics owns a private registry so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	invites         *prometheus.CounterVec
	droppedEvents   prometheus.Counter
	liveViews       prometheus.Gauge
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		invites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "invite",
			Name:      "outcomes_total",
			Help:      "Invite issuance and redemption outcomes.",
		}, []string{"outcome"}),
		droppedEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "changefeed",
			Name:      "dropped_events_total",
			Help:      "Change events not delivered to a slow subscriber.",
		}),
		liveViews: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sharing",
			Name:      "live_views",
			Help:      "Shared views currently open.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.invites,
		m.droppedEvents,
		m.liveViews,
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveInvite records an invite outcome.
func (m *Metrics) ObserveInvite(outcome string) {
	m.invites.WithLabelValues(outcome).Inc()
}

// DroppedEvent counts one undelivered change event.
func (m *Metrics) DroppedEvent() {
	m.droppedEvents.Inc()
}

// ViewOpened and ViewClosed track open shared views.
func (m *Metrics) ViewOpened() { m.liveViews.Inc() }

func (m *Metrics) ViewClosed() { m.liveViews.Dec() }

// Package metrics holds the Prometheus collectors of the voucher service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "voucher"

// Party fetch outcomes.
const (
	FetchApplied = "applied"
	FetchStale   = "stale"
	FetchFailed  = "failed"
)

// Metrics groups the collectors and the registry they are registered with.
//
// Thread Safety: Safe for concurrent use by multiple goroutines.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	partyFetches       *prometheus.CounterVec
	partyFetchDuration prometheus.Histogram
	sessionsCreated    prometheus.Counter
	paymentsSubmitted  *prometheus.CounterVec
	submittedAmount    prometheus.Counter
}

// New creates the collectors on a dedicated registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		partyFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "party_fetches_total",
			Help:      "Outstanding bill fetches by outcome.",
		}, []string{"outcome"}),
		partyFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "party_fetch_duration_seconds",
			Help:      "Time spent fetching a party's bills and balance.",
			Buckets:   prometheus.DefBuckets,
		}),
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_sessions_created_total",
			Help:      "Settlement sessions opened.",
		}),
		paymentsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_submitted_total",
			Help:      "Payment vouchers persisted by payment type.",
		}, []string{"payment_type"}),
		submittedAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_net_amount_total",
			Help:      "Sum of net amounts of persisted payment vouchers.",
		}),
	}
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.partyFetches,
		m.partyFetchDuration,
		m.sessionsCreated,
		m.paymentsSubmitted,
		m.submittedAmount,
	)
	return m
}

// Registry returns the registry the collectors are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObservePartyFetch records the outcome of one bills-and-balance fetch.
func (m *Metrics) ObservePartyFetch(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.partyFetches.WithLabelValues(outcome).Inc()
	m.partyFetchDuration.Observe(elapsed.Seconds())
}

// SessionCreated counts a new settlement session.
func (m *Metrics) SessionCreated() {
	if m == nil {
		return
	}
	m.sessionsCreated.Inc()
}

// PaymentSubmitted counts a persisted voucher and adds its net amount.
func (m *Metrics) PaymentSubmitted(paymentType string, netAmount float64) {
	if m == nil {
		return
	}
	m.paymentsSubmitted.WithLabelValues(paymentType).Inc()
	if netAmount > 0 {
		m.submittedAmount.Add(netAmount)
	}
}

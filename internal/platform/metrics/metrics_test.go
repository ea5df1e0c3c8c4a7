package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.SessionCreated()
	m.ObservePartyFetch(FetchApplied, 20*time.Millisecond)
	m.ObservePartyFetch(FetchStale, 5*time.Millisecond)
	m.ObservePartyFetch(FetchStale, 5*time.Millisecond)
	m.PaymentSubmitted("OUTBOUND", 950)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.partyFetches.WithLabelValues(FetchStale)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.paymentsSubmitted.WithLabelValues("OUTBOUND")))
	assert.Equal(t, 950.0, testutil.ToFloat64(m.submittedAmount))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.SessionCreated()
		m.ObserveHTTP("/x", http.MethodGet, 200, time.Millisecond)
		m.ObservePartyFetch(FetchFailed, time.Millisecond)
		m.PaymentSubmitted("INBOUND", 1)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveHTTP("/api/v1/settlements", http.MethodPost, 201, 3*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `voucher_http_requests_total{method="POST",route="/api/v1/settlements",status="201"} 1`)
}

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"keycard/config"
	"keycard/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsImplementation(t *testing.T) {
	assert.IsType(t, Noop{}, New(&config.Config{}))
	assert.IsType(t, Noop{}, New(&config.Config{Metrics: &config.MetricsConfig{Enabled: false}}))
	assert.IsType(t, &Prometheus{}, New(&config.Config{Metrics: &config.MetricsConfig{Enabled: true}}))
}

func TestPrometheus_CountsOutcomes(t *testing.T) {
	m := NewPrometheus()

	m.RecordSignup(service.OutcomeSuccess)
	m.RecordSignup(service.OutcomeSuccess)
	m.RecordSignup(service.OutcomeDuplicateEmail)
	m.RecordSignin(service.OutcomeInvalidCredentials)

	assert.InDelta(t, 2, testutil.ToFloat64(m.signups.WithLabelValues(service.OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.signups.WithLabelValues(service.OutcomeDuplicateEmail)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.signins.WithLabelValues(service.OutcomeInvalidCredentials)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.signins.WithLabelValues(service.OutcomeSuccess)), 0)
}

func TestPrometheus_ObserveKDF(t *testing.T) {
	m := NewPrometheus()

	m.ObserveKDF(service.KDFOpHash, 40*time.Millisecond)
	m.ObserveKDF(service.KDFOpVerify, 30*time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(m.kdfDuration))
}

func TestPrometheus_Handler(t *testing.T) {
	m := NewPrometheus()
	m.RecordSignin(service.OutcomeSuccess)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `keycard_signin_total{outcome="success"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNoop_DoesNothing(t *testing.T) {
	m := NewNoop()

	assert.NotPanics(t, func() {
		m.RecordSignup(service.OutcomeSuccess)
		m.RecordSignin(service.OutcomeError)
		m.ObserveKDF(service.KDFOpHash, time.Second)
	})
}

// Package metrics records credential flow outcomes for Prometheus.
package metrics

import (
	"net/http"
	"time"

	"keycard/config"
	"keycard/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "keycard"

var _ service.AuthMetrics = (*Prometheus)(nil)

// Prometheus implements service.AuthMetrics on its own registry, leaving the global one untouched.
type Prometheus struct {
	registry    *prometheus.Registry
	signups     *prometheus.CounterVec
	signins     *prometheus.CounterVec
	kdfDuration *prometheus.HistogramVec
}

// New returns the Prometheus recorder when metrics.enabled is set and a no-op otherwise.
func New(cfg *config.Config) service.AuthMetrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return NewNoop()
	}

	return NewPrometheus()
}

func NewPrometheus() *Prometheus {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Prometheus{
		registry: registry,
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signup_total",
			Help:      "Signup attempts by outcome.",
		}, []string{"outcome"}),
		signins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signin_total",
			Help:      "Signin attempts by outcome.",
		}, []string{"outcome"}),
		kdfDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kdf_duration_seconds",
			Help:      "Time spent in the password KDF.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"op"}),
	}
	registry.MustRegister(m.signups, m.signins, m.kdfDuration)

	return m
}

func (m *Prometheus) RecordSignup(outcome string) {
	m.signups.WithLabelValues(outcome).Inc()
}

func (m *Prometheus) RecordSignin(outcome string) {
	m.signins.WithLabelValues(outcome).Inc()
}

func (m *Prometheus) ObserveKDF(op string, d time.Duration) {
	m.kdfDuration.WithLabelValues(op).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the private registry.
func (m *Prometheus) Registry() *prometheus.Registry {
	return m.registry
}

// Package metrics provides Prometheus metrics for epoch conversions.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"epochs/internal/epoch"
)

// Conversion outcomes. Labels stay low-cardinality: never the raw value.
const (
	OutcomeOK         = "ok"
	OutcomeOverflow   = "overflow"
	OutcomeOutOfRange = "out_of_range"
	OutcomeInvalid    = "invalid"
)

// Metrics owns a registry so tests and multiple servers do not collide on
// the global one.
type Metrics struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	batchLines  *prometheus.CounterVec
}

// New registers the conversion collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		conversions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "epochs_conversions_total",
			Help: "Total number of timestamp conversions, by scheme and outcome.",
		}, []string{"scheme", "outcome"}),
		batchLines: f.NewCounterVec(prometheus.CounterOpts{
			Name: "epochs_batch_lines_total",
			Help: "Total number of batch input lines, by result (decoded/failed).",
		}, []string{"result"}),
	}
}

// ObserveConversion counts one conversion attempt.
func (m *Metrics) ObserveConversion(scheme epoch.Scheme, err error) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(scheme.Name(), Outcome(err)).Inc()
}

// ObserveBatch counts the lines of a finished batch.
func (m *Metrics) ObserveBatch(decoded, failed int) {
	if m == nil {
		return
	}
	m.batchLines.WithLabelValues("decoded").Add(float64(decoded))
	m.batchLines.WithLabelValues("failed").Add(float64(failed))
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Outcome classifies a conversion error for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, epoch.ErrOverflow):
		return OutcomeOverflow
	case errors.Is(err, epoch.ErrOutOfRange):
		return OutcomeOutOfRange
	default:
		return OutcomeInvalid
	}
}

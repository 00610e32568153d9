// Package telemetry exports exercise run events as Prometheus metrics.
package telemetry

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/leengari/relq/internal/engine"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// MetricsObserver records run counts, durations and result sizes
type MetricsObserver struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	rows     *prometheus.GaugeVec
}

// NewMetricsObserver registers the relq collectors on reg (a fresh registry
// when nil)
func NewMetricsObserver(reg *prometheus.Registry) *MetricsObserver {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &MetricsObserver{
		registry: reg,
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relq_exercise_runs_total",
				Help: "Total number of exercise runs by outcome",
			},
			[]string{"exercise", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "relq_exercise_duration_seconds",
				Help:    "Exercise run duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"exercise"},
		),
		rows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "relq_exercise_result_rows",
				Help: "Cardinality of the last successful result",
			},
			[]string{"exercise"},
		),
	}
}

// Registry returns the registry the collectors live on
func (m *MetricsObserver) Registry() *prometheus.Registry {
	return m.registry
}

// OnEvent implements engine.Observer
func (m *MetricsObserver) OnEvent(event engine.Event) {
	switch event.Type {
	case engine.EventRunEnd:
		m.runs.WithLabelValues(event.Exercise, statusOK).Inc()
		m.duration.WithLabelValues(event.Exercise).Observe(event.Duration.Seconds())
		m.rows.WithLabelValues(event.Exercise).Set(float64(event.Rows))
	case engine.EventRunError:
		m.runs.WithLabelValues(event.Exercise, statusError).Inc()
		m.duration.WithLabelValues(event.Exercise).Observe(event.Duration.Seconds())
	}
}

// WriteText dumps every gathered metric family in the Prometheus text format
func (m *MetricsObserver) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

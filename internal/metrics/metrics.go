// Package metrics records what a flatmates run did in a Prometheus registry.
//
// The CLI is short-lived, so nothing is scraped: the registry is dumped with
// WriteTextfile for the node exporter textfile collector.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/flatmates/internal/models"
	"github.com/mmynk/flatmates/internal/report"
)

const namespace = "flatmates"

// Error kinds used as the "kind" label of SplitErrors.
const (
	KindInvalidInput = "invalid_input"
	KindInvalidState = "invalid_state"
	KindReport       = "report"
	KindOther        = "other"
)

// Metrics groups the collectors of one run.
type Metrics struct {
	registry *prometheus.Registry

	ReportsGenerated prometheus.Counter
	SplitErrors      *prometheus.CounterVec
	BillAmount       prometheus.Histogram
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ReportsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "Number of bill reports written.",
		}),
		SplitErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "split_errors_total",
			Help:      "Number of failed bill splits by error kind.",
		}, []string{"kind"}),
		BillAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bill_amount",
			Help:      "Amounts of the bills that were split.",
			Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500},
		}),
	}
	m.registry.MustRegister(m.ReportsGenerated, m.SplitErrors, m.BillAmount)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveError counts err under its kind.
func (m *Metrics) ObserveError(err error) {
	m.SplitErrors.WithLabelValues(ErrorKind(err)).Inc()
}

// WriteTextfile writes the registry to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}

// ErrorKind classifies err for the "kind" label.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, models.ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, report.ErrReport):
		return KindReport
	default:
		return KindOther
	}
}

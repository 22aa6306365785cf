package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the collectors recorded by the application.
type Metrics struct {
	registry        *prometheus.Registry
	multiplications *prometheus.CounterVec
	operandDigits   prometheus.Histogram
	duration        *prometheus.HistogramVec
	mismatches      prometheus.Counter
}

// NewMetrics creates the collectors and registers them, together with the Go
// runtime collector, on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		multiplications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bigmul_multiplications_total",
			Help: "Number of multiplications performed, by kind (value or scalar).",
		}, []string{"kind"}),
		operandDigits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bigmul_operand_digits",
			Help:    "Length in digits of multiplication operands.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bigmul_multiply_duration_seconds",
			Help:    "Time spent in a multiplier, by multiplier name.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 10, 9),
		}, []string{"multiplier"}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bigmul_verify_mismatches_total",
			Help: "Number of verification rounds where multipliers disagreed.",
		}),
	}
	m.registry.MustRegister(
		m.multiplications,
		m.operandDigits,
		m.duration,
		m.mismatches,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveMultiplication records one multiplication of the given kind and the
// lengths of its operands.
func (m *Metrics) ObserveMultiplication(kind string, lhsDigits, rhsDigits int) {
	m.multiplications.WithLabelValues(kind).Inc()
	m.operandDigits.Observe(float64(lhsDigits))
	m.operandDigits.Observe(float64(rhsDigits))
}

// ObserveDuration records the time a multiplier spent on one product.
func (m *Metrics) ObserveDuration(multiplier string, d time.Duration) {
	m.duration.WithLabelValues(multiplier).Observe(d.Seconds())
}

// IncMismatch records a verification round whose results disagreed.
func (m *Metrics) IncMismatch() {
	m.mismatches.Inc()
}

// WriteText writes the current metrics in the text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

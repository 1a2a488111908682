package runner

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects the outcome of every completed run.
type Metrics struct {
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
}

func NewMetrics() *Metrics {
	return &Metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightscript_runs_total",
				Help: "Total number of script runs by exit code",
			},
			[]string{"exit_code"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "flightscript_run_duration_seconds",
				Help:    "Duration of script runs",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
}

func (m *Metrics) observe(result *Result) {
	if m == nil {
		return
	}

	m.runs.WithLabelValues(strconv.Itoa(result.ExitCode)).Inc()
	m.duration.Observe(result.Duration.Seconds())
}

func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.runs.Describe(ch)
	m.duration.Describe(ch)
}

func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.runs.Collect(ch)
	m.duration.Collect(ch)
}

package logic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Command outcomes recorded in metrics and logs.
const (
	OutcomeSuccess        = "success"
	OutcomeParseError     = "parse_error"
	OutcomeExecutionError = "execution_error"
	OutcomeSaveError      = "save_error"
)

// Metrics counts executed commands on a private registry. Nothing listens
// on the network; WriteToTextfile hands the numbers to a node exporter
// textfile collector.
type Metrics struct {
	registry     *prometheus.Registry
	commands     *prometheus.CounterVec
	duration     prometheus.Histogram
	reservations prometheus.Gauge
}

// NewMetrics creates and registers the ReserveMate collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reservemate",
			Name:      "commands_total",
			Help:      "Commands executed, by command word and outcome.",
		}, []string{"command", "outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "reservemate",
			Name:      "command_duration_seconds",
			Help:      "Time from input to result, including the save.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		reservations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "reservemate",
			Name:      "reservations",
			Help:      "Reservations currently held.",
		}),
	}
	m.registry.MustRegister(m.commands, m.duration, m.reservations)
	return m
}

func (m *Metrics) observe(command, outcome string, elapsed time.Duration) {
	m.commands.WithLabelValues(command, outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) setReservations(n int) {
	m.reservations.Set(float64(n))
}

// Gatherer exposes the registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteToTextfile writes all metrics in the Prometheus text format.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

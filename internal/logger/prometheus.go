package logger

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

var (
	statementsOnce sync.Once               //nolint:gochecknoglobals
	statements     *prometheus.CounterVec //nolint:gochecknoglobals
)

// PrometheusHook counts log statements per level.
type PrometheusHook struct {
	counter *prometheus.CounterVec
}

// Run implements zerolog.Hook run method.
func (h PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level == zerolog.NoLevel || h.counter == nil {
		return
	}

	h.counter.WithLabelValues(level.String()).Inc()
}

func newStatementsCounter(service string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "log_statements_total",
			Help:        "Number of log statements, differentiated by log level.",
			ConstLabels: prometheus.Labels{"service": service},
		},
		[]string{"level"},
	)
}

// NewPrometheusHook returns a hook counting log statements per level on the
// default registry. The counter is registered once per process; later calls
// share it.
func NewPrometheusHook(service string) PrometheusHook {
	statementsOnce.Do(func() {
		statements = newStatementsCounter(service)
		prometheus.MustRegister(statements)
	})

	return PrometheusHook{counter: statements}
}

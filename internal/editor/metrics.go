package editor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultError    = "error"
)

var (
	savesTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "record_settings_saves_total",
			Help: "Number of record settings saves, differentiated by record type and result.",
		},
		[]string{"record_type", "result"},
	)

	defaultChangesTotal = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "record_settings_default_changes_total",
			Help: "Number of default overrides set or cleared, differentiated by record type and action.",
		},
		[]string{"record_type", "action"},
	)
)

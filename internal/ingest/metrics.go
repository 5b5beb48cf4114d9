package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric label values.
const (
	statusOK     = "ok"
	statusFailed = "failed"
)

var (
	// parsesTotal counts parse attempts by detected format and outcome.
	parsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatlens_ingest_parses_total",
		Help: "Total number of export parse attempts",
	}, []string{"format", "status"})

	// messagesTotal counts canonical messages produced per format.
	messagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatlens_ingest_messages_total",
		Help: "Total number of canonical messages decoded",
	}, []string{"format"})
)

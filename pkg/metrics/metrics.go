package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OutcomeCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quickmeet",
		Subsystem: "pipeline",
		Name:      "outcome_count",
	}, []string{"kind"})
	StageErrCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quickmeet",
		Subsystem: "pipeline",
		Name:      "stage_err_count",
	}, []string{"stage"})
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "quickmeet",
		Subsystem: "pipeline",
		Name:      "stage_duration",
	}, []string{"stage"})
)

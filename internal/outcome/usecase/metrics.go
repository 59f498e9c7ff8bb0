package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stageResultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "indexing",
		Name:      "stage_results_total",
		Help:      "Total number of stage results by route, branch and status",
	}, []string{"route", "branch", "status"})
	failuresPersistedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "indexing",
		Name:      "failures_persisted_total",
		Help:      "Total number of failed branches written to the dead-letter table",
	})
)

package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	branchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "indexing",
		Name:      "propagation_branch_duration_seconds",
		Help:      "Duration of a propagation branch",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "branch"})
	skippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "indexing",
		Name:      "propagation_skipped_total",
		Help:      "Total number of updates dropped because the resource is not indexable",
	})
)

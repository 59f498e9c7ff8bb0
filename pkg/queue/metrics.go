package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "indexing",
		Name:      "queue_depth",
		Help:      "Current number of entries waiting in a stage queue",
	}, []string{"queue"})
	queueProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "indexing",
		Name:      "queue_processed_total",
		Help:      "Total number of entries handled by a stage queue",
	}, []string{"queue"})
	queueRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "indexing",
		Name:      "queue_rejected_total",
		Help:      "Total number of non-blocking pushes rejected because the queue was full",
	}, []string{"queue"})
)

package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	walksTriggeredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "indexing",
		Name:      "walks_triggered_total",
		Help:      "Total number of reindex walks triggered",
	})
	visitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "indexing",
		Name:      "walker_visits_total",
		Help:      "Total number of walker visits, by result",
	}, []string{"result"})
	inlineChildrenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "indexing",
		Name:      "walker_inline_children_total",
		Help:      "Total number of children visited by the parent worker because the reindex queue was full",
	})
)

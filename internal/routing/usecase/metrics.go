package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var routedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "indexing",
	Name:      "events_routed_total",
	Help:      "Total number of change events routed, by destination",
}, []string{"destination"})

// Package metrics exposes the Prometheus collectors shared across the
// application. All collectors are registered with the default registry
// via promauto and served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shoplist_mutations_total",
			Help: "The total number of store mutations dispatched, by operation",
		},
		[]string{"op"},
	)
	SavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shoplist_saves_total",
			Help: "The total number of debounced persistence writes, by result",
		},
		[]string{"result"},
	)
	HydrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shoplist_hydrations_total",
			Help: "The total number of startup hydrations, by result",
		},
		[]string{"result"},
	)
)

package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits counts documents served without a network request.
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pokedex_cache_hits_total",
			Help: "Total number of request cache hits",
		},
	)

	// CacheMisses counts lookups that went to the network.
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pokedex_cache_misses_total",
			Help: "Total number of request cache misses",
		},
	)

	// FetchFailures counts failed document fetches by reason.
	FetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokedex_fetch_failures_total",
			Help: "Total number of failed document fetches",
		},
		[]string{"reason"}, // "status", "transport"
	)

	// CacheEntries tracks the number of cached documents.
	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pokedex_cache_entries",
			Help: "Current number of cached documents",
		},
	)
)

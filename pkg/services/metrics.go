package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoadBatches counts completed load batches.
	LoadBatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pokedex_load_batches_total",
			Help: "Total number of completed load batches",
		},
	)

	// DroppedRecords counts handles whose document could not be fetched.
	DroppedRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pokedex_dropped_records_total",
			Help: "Total number of records dropped because their fetch failed",
		},
	)

	// BatchDuration observes how long each batch took to settle.
	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pokedex_batch_duration_seconds",
			Help:    "Time for one load batch to settle",
			Buckets: prometheus.DefBuckets,
		},
	)

	// RecordsLoaded tracks the size of the loaded record set.
	RecordsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pokedex_records_loaded",
			Help: "Current number of loaded records",
		},
	)
)

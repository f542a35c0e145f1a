// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ItinerariesBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itineraries_built_total",
			Help: "Total number of itinerary builds by result",
		},
		[]string{"result"},
	)

	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "itinerary_build_duration_seconds",
			Help:    "Duration of itinerary builds in seconds, including geocoding",
			Buckets: prometheus.DefBuckets,
		},
	)

	GeocodeLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_lookups_total",
			Help: "Location lookups by outcome (resolved, not_found, cache_hit)",
		},
		[]string{"outcome"},
	)

	ExportsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinerary_exports_total",
			Help: "Rendered itinerary exports by format",
		},
		[]string{"format"},
	)
)

// Build results.
const (
	ResultSuccess          = "success"
	ResultLocationNotFound = "location_not_found"
)

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixture_compare_provider_requests_total",
			Help: "Total number of football-data requests by endpoint and result",
		},
		[]string{"endpoint", "result"},
	)

	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fixture_compare_provider_request_duration_seconds",
			Help:    "Duration of football-data requests in seconds, retries included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	ProviderRequestsAvailable = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fixture_compare_provider_requests_available",
			Help: "Requests left in the current provider rate-limit window",
		},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixture_compare_cache_lookups_total",
			Help: "Total number of cache lookups by resource and outcome",
		},
		[]string{"resource", "outcome"},
	)

	CacheEntriesSwept = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixture_compare_cache_entries_swept_total",
			Help: "Total number of expired cache entries removed by the sweeper",
		},
		[]string{"resource"},
	)

	PointsResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fixture_compare_points_resolutions_total",
			Help: "Total number of points resolutions by source and degradation",
		},
		[]string{"source", "degraded"},
	)
)

func RecordProviderRequest(endpoint, result string, duration time.Duration) {
	ProviderRequestsTotal.WithLabelValues(endpoint, result).Inc()
	ProviderRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func RecordRequestsAvailable(remaining int) {
	ProviderRequestsAvailable.Set(float64(remaining))
}

func RecordCacheLookup(resource, outcome string) {
	CacheLookupsTotal.WithLabelValues(resource, outcome).Inc()
}

func RecordCacheSweep(resource string, removed int) {
	if removed <= 0 {
		return
	}
	CacheEntriesSwept.WithLabelValues(resource).Add(float64(removed))
}

func RecordPointsResolution(source string, degraded bool) {
	label := "false"
	if degraded {
		label = "true"
	}
	PointsResolutionsTotal.WithLabelValues(source, label).Inc()
}

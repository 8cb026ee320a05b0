package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "edir",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Record store operations broken down by driver, collection, operation and result.",
	}, []string{"driver", "collection", "operation", "result"})

	storeLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "edir",
		Subsystem: "store",
		Name:      "latency_seconds",
		Help:      "Latency distribution for record store operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"driver", "collection", "operation"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "edir",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests broken down by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "edir",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency distribution for HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	snapshotSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "edir",
		Subsystem: "view",
		Name:      "snapshot_employees",
		Help:      "Number of employees held by the collection view after the last successful refresh.",
	})

	openDrafts = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "edir",
		Subsystem: "drafts",
		Name:      "open",
		Help:      "Number of draft sessions currently held by the registry.",
	})
)

// ObserveStore records the outcome and latency of one store call.
func ObserveStore(driver, collection, operation string, err error, started time.Time) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	storeOperations.With(prometheus.Labels{
		"driver":     driver,
		"collection": collection,
		"operation":  operation,
		"result":     result,
	}).Inc()
	storeLatency.WithLabelValues(driver, collection, operation).Observe(time.Since(started).Seconds())
}

// ObserveHTTP records one served request.
func ObserveHTTP(method, route, status string, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// SetSnapshotSize publishes the size of the current employee snapshot.
func SetSnapshotSize(n int) {
	snapshotSize.Set(float64(n))
}

// SetOpenDrafts publishes the number of open draft sessions.
func SetOpenDrafts(n int) {
	openDrafts.Set(float64(n))
}

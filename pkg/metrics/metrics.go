package metrics

import (
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registry is exposed on /api/metrics. A dedicated registry keeps test
	// binaries from colliding with the global default one.
	Registry = prometheus.NewRegistry()

	factory = promauto.With(Registry)

	initOnce sync.Once

	// Custom histogram buckets for request latencies, from milliseconds up to
	// the slow tail of presigning calls against object storage
	CustomAPIBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	RateLimitedRequests = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_rate_limited_total",
			Help: "Requests rejected by the per-IP rate limiter",
		},
		[]string{"limiter"},
	)

	// Cache Metrics
	CacheHits = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_name"},
	)

	CacheMisses = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_name"},
	)

	// Storage Client Metrics (S3-compatible download bucket)
	StorageRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_client_operation_duration_seconds",
			Help:    "Storage client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	StorageRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_client_operation_total",
			Help: "Total number of storage client operations",
		},
		[]string{"operation", "status"},
	)

	// Business Metrics
	ReviewsRequests = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engel_reviews_requests_total",
			Help: "Total number of review sample requests",
		},
		[]string{"status"},
	)

	ReviewsServed = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "engel_reviews_served_total",
			Help: "Total number of reviews returned across all samples",
		},
	)

	ReviewsSampleSize = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "engel_reviews_sample_size",
			Help:    "Number of reviews returned per request",
			Buckets: []float64{1, 4, 8, 9, 10, 11, 12, 16, 20, 30},
		},
	)

	DownloadRequests = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engel_download_requests_total",
			Help: "Total number of download initiations",
		},
		[]string{"mode", "status"}, // mode: placeholder|presigned
	)

	LandingPageViews = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "engel_landing_page_views_total",
			Help: "Total number of landing page renders",
		},
	)

	// Infrastructure Metrics
	GoRoutines = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)

	serviceInfo = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "engel_service_info",
			Help: "Static service information",
		},
		[]string{"service_name"},
	)
)

// Init registers runtime collectors and publishes the service name
func Init(serviceName string) {
	initOnce.Do(func() {
		Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		serviceInfo.WithLabelValues(serviceName).Set(1)
	})
}

// RecordInfrastructureMetrics collects infrastructure metrics periodically
// until stop is closed
func RecordInfrastructureMetrics(stop <-chan struct{}) {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				var m runtime.MemStats
				runtime.ReadMemStats(&m)

				GoRoutines.Set(float64(runtime.NumGoroutine()))
				HeapAlloc.Set(float64(m.HeapAlloc))
			}
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 스토어 변경 횟수
	StoreMutationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_mutation_count",
			Help: "Total number of store mutations",
		},
		[]string{"collection", "action"}, // action: created, updated, deleted
	)

	// 컬렉션 저장 소요 시간(초)
	PersistDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_persist_duration_seconds",
			Help:    "Collection persistence duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"collection"},
	)

	// 마일스톤 파생 패스 소요 시간(초)
	DeriveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "milestone_derive_duration_seconds",
			Help:    "Full milestone status derivation pass duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 12),
		},
	)

	// HTTP 요청 지연(초)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)
)

// IncrementStoreMutation 스토어 변경 카운트 증가
func IncrementStoreMutation(collection, action string) {
	StoreMutationCount.WithLabelValues(collection, action).Inc()
}

// RecordPersistDuration 컬렉션 저장 시간 기록
func RecordPersistDuration(collection string, duration time.Duration) {
	PersistDuration.WithLabelValues(collection).Observe(duration.Seconds())
}

// RecordDeriveDuration 파생 패스 시간 기록
func RecordDeriveDuration(duration time.Duration) {
	DeriveDuration.Observe(duration.Seconds())
}

// RecordHTTPRequestDuration HTTP 요청 시간 기록
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

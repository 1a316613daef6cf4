package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	OpportunitiesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "opportunities_created_total",
			Help: "Number of opportunities persisted",
		},
		[]string{"type"},
	)
	OpportunitiesRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "opportunities_rejected_total",
			Help: "Number of opportunities rejected before persisting",
		},
		[]string{"type", "reason"}, // reason: invalid_source|unknown_type|invalid
	)
	ApplicationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "applications_created_total",
			Help: "Number of applications recorded",
		},
	)
)

var (
	IngestMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	IngestMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	IngestMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре; повторный вызов — no-op.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			OpportunitiesCreated, OpportunitiesRejected, ApplicationsCreated,
			IngestMessagesConsumed, IngestMessagesProcessed, IngestMessagesFailed,
		)
	})
}

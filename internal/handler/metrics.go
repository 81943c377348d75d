package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "checkout",
			Name:      "checkouts_total",
			Help:      "Total number of checkout attempts by result",
		},
		[]string{"result"},
	)

	reconcileRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "checkout",
			Name:      "reconcile_rejected_total",
			Help:      "Total number of checkouts rejected because the declared amount diverged from the computed amount",
		},
	)

	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "lifecycle",
			Name:      "transitions_total",
			Help:      "Total number of committed order status transitions by target status",
		},
		[]string{"status"},
	)
)

var (
	paymentEventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_processed_total",
			Help:      "Total number of successfully processed payment events",
		},
	)

	paymentEventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_failed_total",
			Help:      "Total number of failed payment event processing attempts",
		},
	)

	paymentEventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_dlq_total",
			Help:      "Total number of payment events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	paymentEventDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "payment_event_duration_seconds",
			Help:      "Histogram of payment event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsTotal,
		reconcileRejected,
		transitionsTotal,

		paymentEventsProcessed,
		paymentEventsFailed,
		paymentEventsDLQ,
		commitErrors,
		paymentEventDuration,
	)
}

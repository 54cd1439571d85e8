package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PredictionsTotal counts churn predictions served.
	PredictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "churn_predictions_total",
		Help: "Total number of churn predictions",
	})

	// PredictionLatency tracks end-to-end scoring latency.
	PredictionLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "churn_prediction_latency_seconds",
		Help: "Churn prediction latency",
	})

	// EventsIngested counts persisted events per source channel.
	EventsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingested_events_total",
		Help: "Total number of events persisted by the ingestion pipeline",
	}, []string{"source"})

	// EventsRejected counts events that failed validation.
	EventsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rejected_events_total",
		Help: "Total number of events rejected by validation",
	}, []string{"source"})

	// EventsDeduplicated counts redeliveries skipped by the idempotency check.
	EventsDeduplicated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deduplicated_events_total",
		Help: "Total number of duplicate event deliveries skipped",
	})
)

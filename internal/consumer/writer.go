package consumer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/cache"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/metrics"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/repository"
)

// StoreWriterConfig configures the store writer
type StoreWriterConfig struct {
	IdempotencyEnabled  bool
	IdempotencyFailOpen bool
	IdempotencyTTL      time.Duration
}

// StoreWriter persists routed events to the event store, skipping duplicate
// deliveries via the idempotency store and invalidating stale feature caches.
type StoreWriter struct {
	store       repository.EventStore
	idempotency cache.IdempotencyStore
	invalidator CacheInvalidator
	config      StoreWriterConfig
	log         *zap.Logger
}

// NewStoreWriter creates a new store writer
func NewStoreWriter(store repository.EventStore, idempotency cache.IdempotencyStore, invalidator CacheInvalidator, config StoreWriterConfig, log *zap.Logger) *StoreWriter {
	return &StoreWriter{
		store:       store,
		idempotency: idempotency,
		invalidator: invalidator,
		config:      config,
		log:         log,
	}
}

// Start begins processing envelopes and writing them to the event store
func (w *StoreWriter) Start(ctx context.Context, in <-chan *Envelope) {
	for {
		select {
		case <-ctx.Done():
			w.log.Info("Store writer shutting down")
			return
		case envelope, ok := <-in:
			if !ok {
				w.log.Info("Store writer input channel closed")
				return
			}
			w.processEnvelope(ctx, envelope)
		}
	}
}

// processEnvelope writes one event: dedup check, insert, mark seen, cache
// invalidation, then ack. Insert failures leave the message on the bus for
// redelivery. The id is marked seen only after the insert succeeds, so a
// redelivered message retries the insert instead of being mistaken for a
// duplicate; the window where a concurrent redelivery inserts twice is
// absorbed by the store's replacing merge.
func (w *StoreWriter) processEnvelope(ctx context.Context, envelope *Envelope) {
	record := envelope.Record

	duplicate, retry := w.checkDuplicate(ctx, record.ID())
	if retry {
		if err := envelope.Nack(ctx); err != nil {
			w.log.Error("Failed to nack envelope", zap.Error(err))
		}
		return
	}
	if duplicate {
		metrics.EventsDeduplicated.Inc()
		w.log.Debug("Skipping duplicate event delivery",
			zap.String("event_id", record.ID()),
			zap.String("customer_id", record.Customer()))
		if err := envelope.Ack(ctx); err != nil {
			w.log.Error("Failed to ack duplicate event", zap.Error(err))
		}
		return
	}

	if err := w.store.InsertEvent(ctx, record); err != nil {
		w.log.Error("Failed to insert event",
			zap.String("event_id", record.ID()),
			zap.String("source", string(record.Kind())),
			zap.Error(err))
		if err := envelope.Nack(ctx); err != nil {
			w.log.Error("Failed to nack envelope", zap.Error(err))
		}
		return
	}

	w.markSeen(ctx, record.ID())
	metrics.EventsIngested.WithLabelValues(string(record.Kind())).Inc()

	// A new event makes the customer's cached feature vector stale.
	if err := w.invalidator.Invalidate(ctx, record.Customer()); err != nil {
		w.log.Warn("Failed to invalidate feature cache",
			zap.String("customer_id", record.Customer()),
			zap.Error(err))
	}

	if err := envelope.Ack(ctx); err != nil {
		w.log.Error("Failed to ack envelope",
			zap.String("event_id", record.ID()),
			zap.Error(err))
	}
}

// checkDuplicate reports whether the event id has been seen before. When the
// idempotency store is unreachable the configured fail mode decides: fail-open
// treats the event as new, fail-closed leaves the message for redelivery.
func (w *StoreWriter) checkDuplicate(ctx context.Context, eventID string) (duplicate, retry bool) {
	if !w.config.IdempotencyEnabled {
		return false, false
	}

	seen, err := w.idempotency.Seen(ctx, eventID)
	if err != nil {
		w.log.Warn("Idempotency check failed",
			zap.String("event_id", eventID),
			zap.Bool("fail_open", w.config.IdempotencyFailOpen),
			zap.Error(err))
		return false, !w.config.IdempotencyFailOpen
	}

	return seen, false
}

// markSeen records the event id after a durable insert. A failure here is
// logged only: the worst case is one extra insert on redelivery, which the
// replacing merge collapses.
func (w *StoreWriter) markSeen(ctx context.Context, eventID string) {
	if !w.config.IdempotencyEnabled {
		return
	}

	if _, err := w.idempotency.MarkSeen(ctx, eventID, w.config.IdempotencyTTL); err != nil {
		w.log.Warn("Failed to record event id",
			zap.String("event_id", eventID),
			zap.Error(err))
	}
}

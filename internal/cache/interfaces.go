package cache

import (
	"context"
	"time"
)

// FeatureCache is the online feature cache: read-through with TTL and
// explicit invalidation.
type FeatureCache interface {
	// Get returns the cached value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// SetWithTTL stores value under key for at most ttl.
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes the entry for key immediately.
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore records event ids seen by the ingestion pipeline so that
// bus redeliveries are not applied twice. An id must only be marked seen once
// its event is durably stored; marking earlier would make a failed insert
// look like a processed event on redelivery.
type IdempotencyStore interface {
	// Seen reports whether eventID has already been recorded.
	Seen(ctx context.Context, eventID string) (bool, error)

	// MarkSeen records eventID and reports whether this is the first sighting.
	MarkSeen(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
}

package consumer

import (
	"context"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

// EventRouter classifies a raw message body by source kind and turns it into
// a validated typed record.
type EventRouter interface {
	Route(source domain.SourceKind, body []byte) (domain.EventRecord, error)
}

// CacheInvalidator removes a customer's cached feature vector.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, customerID string) error
}

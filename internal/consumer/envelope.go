package consumer

import (
	"context"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

// Envelope wraps a typed event record with acknowledgment callbacks. Ack
// removes the message from the bus; Nack leaves it for redelivery.
type Envelope struct {
	Record domain.EventRecord
	ack    func(context.Context) error
	nack   func(context.Context) error
}

// NewEnvelope creates a new message envelope.
func NewEnvelope(record domain.EventRecord, ack, nack func(context.Context) error) *Envelope {
	return &Envelope{
		Record: record,
		ack:    ack,
		nack:   nack,
	}
}

// Ack acknowledges successful processing.
func (e *Envelope) Ack(ctx context.Context) error {
	if e.ack != nil {
		return e.ack(ctx)
	}
	return nil
}

// Nack negatively acknowledges processing.
func (e *Envelope) Nack(ctx context.Context) error {
	if e.nack != nil {
		return e.nack(ctx)
	}
	return nil
}

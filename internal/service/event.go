package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/dto"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/queue"
)

// EventService validates raw business events and publishes them onto the
// ingestion bus.
type EventService struct {
	publisher queue.QueuePublisher
	log       *zap.Logger
}

// NewEventService creates a new event service.
func NewEventService(publisher queue.QueuePublisher, log *zap.Logger) *EventService {
	return &EventService{
		publisher: publisher,
		log:       log,
	}
}

// computeEventID derives a deterministic id from the event content so that
// republishing the same event yields the same idempotency key downstream.
func computeEventID(source string, payload map[string]interface{}) (string, error) {
	// json.Marshal sorts map keys, so the encoding is canonical.
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}
	hash := sha256.Sum256(append([]byte(source+"|"), body...))
	return hex.EncodeToString(hash[:]), nil
}

// PublishEvent validates and publishes a single event.
func (s *EventService) PublishEvent(ctx context.Context, event *dto.PublishEventRequest) (string, error) {
	if _, ok := event.Payload["customer_id"].(string); !ok {
		return "", &domain.ValidationError{
			Source: domain.SourceKind(event.Source),
			Field:  "customer_id",
			Reason: "is required",
		}
	}

	ts, ok := event.Payload["timestamp"].(string)
	if !ok {
		return "", &domain.ValidationError{
			Source: domain.SourceKind(event.Source),
			Field:  "timestamp",
			Reason: "is required",
		}
	}
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return "", &domain.ValidationError{
			Source: domain.SourceKind(event.Source),
			Field:  "timestamp",
			Reason: "is not RFC3339",
		}
	}
	if parsed.After(time.Now().Add(time.Minute)) {
		return "", &domain.ValidationError{
			Source: domain.SourceKind(event.Source),
			Field:  "timestamp",
			Reason: "is in the future",
		}
	}

	eventID, err := computeEventID(event.Source, event.Payload)
	if err != nil {
		return "", err
	}

	if err := s.publisher.PublishEvent(ctx, domain.SourceKind(event.Source), eventID, event.Payload); err != nil {
		return "", fmt.Errorf("failed to publish event to queue: %w", err)
	}

	return eventID, nil
}

// PublishBulkEvents validates and publishes multiple events. Invalid events
// are reported individually without failing the rest.
func (s *EventService) PublishBulkEvents(ctx context.Context, events []dto.PublishEventRequest) ([]string, []string, error) {
	var eventIDs []string
	var errs []string

	for i, event := range events {
		eventID, err := s.PublishEvent(ctx, &event)
		if err != nil {
			errs = append(errs, err.Error())
			s.log.Warn("Failed to publish event in bulk",
				zap.Int("index", i),
				zap.String("source", event.Source),
				zap.Error(err))
			continue
		}
		eventIDs = append(eventIDs, eventID)
	}

	return eventIDs, errs, nil
}

package repository

import (
	"context"
	"time"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

// EventStore persists typed event records and serves windowed queries for the
// feature computation engine.
type EventStore interface {
	// InsertEvent persists exactly one typed record. No partial writes.
	InsertEvent(ctx context.Context, rec domain.EventRecord) error

	// ServiceInteractionsSince returns interactions for the customer with
	// timestamp >= since.
	ServiceInteractionsSince(ctx context.Context, customerID string, since time.Time) ([]domain.ServiceInteraction, error)

	// DeviceTelemetrySince returns telemetry events for the customer with
	// timestamp >= since.
	DeviceTelemetrySince(ctx context.Context, customerID string, since time.Time) ([]domain.DeviceTelemetry, error)

	// WebEngagementSince returns web events for the customer with
	// timestamp >= since.
	WebEngagementSince(ctx context.Context, customerID string, since time.Time) ([]domain.WebEngagement, error)

	// BillingEventsSince returns billing events for the customer with
	// timestamp >= since, most recent first.
	BillingEventsSince(ctx context.Context, customerID string, since time.Time) ([]domain.BillingEvent, error)

	// InitSchema creates the event tables if they don't exist.
	InitSchema(ctx context.Context) error

	// Ping checks if the store connection is alive.
	Ping(ctx context.Context) error

	// Close closes the store and releases resources.
	Close() error
}

// CustomerRepository reads customer master data.
type CustomerRepository interface {
	// GetProfile returns the profile for customerID, or domain.ErrNotFound.
	GetProfile(ctx context.Context, customerID string) (*domain.CustomerProfile, error)
}

// ActionRepository persists retention actions and owns the
// pending -> executed transition.
type ActionRepository interface {
	// CreateActions persists recommendations in pending status.
	CreateActions(ctx context.Context, actions []*domain.RetentionAction) error

	// MarkExecuted atomically transitions the action to executed. It returns
	// (true, nil) when this call performed the transition, (false, nil) when
	// the action exists but is no longer pending, and domain.ErrNotFound when
	// the action/customer pair does not exist.
	MarkExecuted(ctx context.Context, actionID, customerID string, at time.Time) (bool, error)
}

// PredictionRepository is the append-only audit log of scoring decisions.
type PredictionRepository interface {
	SavePrediction(ctx context.Context, assessment *domain.RiskAssessment) error

	// History returns recent assessments, most recent first. Empty customerID
	// returns history across all customers.
	History(ctx context.Context, customerID string, limit int) ([]domain.RiskAssessment, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

// ActionRepository persists retention actions in postgres.
type ActionRepository struct {
	client *Client
	log    *zap.Logger
}

// NewActionRepository creates a new action repository.
func NewActionRepository(client *Client, log *zap.Logger) *ActionRepository {
	return &ActionRepository{client: client, log: log}
}

// CreateActions persists recommendations in pending status.
func (r *ActionRepository) CreateActions(ctx context.Context, actions []*domain.RetentionAction) error {
	if len(actions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, a := range actions {
		batch.Queue(`
			INSERT INTO retention_actions
				(action_id, customer_id, action_type, priority, description, predicted_impact, estimated_cost, offer_details, status, recommended_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			a.ActionID, a.CustomerID, a.ActionType, a.Priority, a.Description,
			a.PredictedImpact, a.EstimatedCost, a.OfferDetails, a.Status, a.RecommendedAt)
	}

	results := r.client.Pool().SendBatch(ctx, batch)
	defer func() {
		if err := results.Close(); err != nil {
			r.log.Error("Failed to close action insert batch", zap.Error(err))
		}
	}()

	for range actions {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert retention action: %w", err)
		}
	}
	return nil
}

// MarkExecuted atomically transitions pending -> executed. The status check
// and update are a single conditional write so concurrent callers on the same
// action id yield exactly one success.
func (r *ActionRepository) MarkExecuted(ctx context.Context, actionID, customerID string, at time.Time) (bool, error) {
	tag, err := r.client.Pool().Exec(ctx, `
		UPDATE retention_actions
		SET status = 'executed', executed_at = $3
		WHERE action_id = $1 AND customer_id = $2 AND status = 'pending'`,
		actionID, customerID, at)
	if err != nil {
		return false, fmt.Errorf("failed to execute action %s: %w", actionID, err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	// Distinguish "already executed" from "does not exist".
	var status string
	err = r.client.Pool().QueryRow(ctx, `
		SELECT status FROM retention_actions
		WHERE action_id = $1 AND customer_id = $2`, actionID, customerID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("action %s for customer %s: %w", actionID, customerID, domain.ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("failed to query action %s: %w", actionID, err)
	}

	r.log.Warn("Action is no longer pending",
		zap.String("action_id", actionID),
		zap.String("status", status))
	return false, nil
}

package postgres

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id VARCHAR(50) PRIMARY KEY,
		account_created_date DATE NOT NULL,
		customer_segment VARCHAR(20) NOT NULL,
		age_range VARCHAR(20),
		household_size INTEGER,
		plan_id VARCHAR(50),
		monthly_recurring_revenue DOUBLE PRECISION,
		contract_end_date DATE,
		auto_renew BOOLEAN DEFAULT TRUE,
		lifetime_value DOUBLE PRECISION,
		created_at TIMESTAMPTZ DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS retention_actions (
		action_id UUID PRIMARY KEY,
		customer_id VARCHAR(50) NOT NULL,
		action_type VARCHAR(50) NOT NULL,
		priority VARCHAR(20),
		description TEXT,
		predicted_impact DOUBLE PRECISION,
		estimated_cost DOUBLE PRECISION,
		offer_details JSONB,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		recommended_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		executed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_retention_actions_customer ON retention_actions (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_retention_actions_status ON retention_actions (status)`,

	`CREATE TABLE IF NOT EXISTS churn_predictions (
		prediction_id UUID PRIMARY KEY,
		customer_id VARCHAR(50) NOT NULL,
		prediction_timestamp TIMESTAMPTZ NOT NULL DEFAULT now(),
		churn_probability DOUBLE PRECISION NOT NULL,
		risk_level VARCHAR(20) NOT NULL,
		prediction_horizon_days INTEGER NOT NULL DEFAULT 30,
		model_version VARCHAR(50) NOT NULL,
		top_risk_factors JSONB,
		created_at TIMESTAMPTZ DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_churn_predictions_customer ON churn_predictions (customer_id, prediction_timestamp DESC)`,
}

// InitSchema creates the relational tables if they don't exist.
func (c *Client) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := c.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	c.log.Info("Postgres schema initialized")
	return nil
}

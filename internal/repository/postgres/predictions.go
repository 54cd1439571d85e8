package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

// PredictionRepository is the append-only audit log of scoring decisions.
type PredictionRepository struct {
	client *Client
	log    *zap.Logger
}

// NewPredictionRepository creates a new prediction repository.
func NewPredictionRepository(client *Client, log *zap.Logger) *PredictionRepository {
	return &PredictionRepository{client: client, log: log}
}

// SavePrediction appends one assessment to the audit log.
func (r *PredictionRepository) SavePrediction(ctx context.Context, assessment *domain.RiskAssessment) error {
	factors, err := json.Marshal(assessment.TopRiskFactors)
	if err != nil {
		return fmt.Errorf("failed to marshal risk factors: %w", err)
	}

	_, err = r.client.Pool().Exec(ctx, `
		INSERT INTO churn_predictions
			(prediction_id, customer_id, prediction_timestamp, churn_probability, risk_level, prediction_horizon_days, model_version, top_risk_factors)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		assessment.PredictionID, assessment.CustomerID, assessment.Timestamp,
		assessment.ChurnProbability, assessment.RiskLevel, assessment.HorizonDays,
		assessment.ModelVersion, factors)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}
	return nil
}

// History returns recent assessments, most recent first.
func (r *PredictionRepository) History(ctx context.Context, customerID string, limit int) ([]domain.RiskAssessment, error) {
	rows, err := r.client.Pool().Query(ctx, `
		SELECT prediction_id, customer_id, prediction_timestamp, churn_probability, risk_level, prediction_horizon_days, model_version, top_risk_factors
		FROM churn_predictions
		WHERE ($1 = '' OR customer_id = $1)
		ORDER BY prediction_timestamp DESC
		LIMIT $2`, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query prediction history: %w", err)
	}
	defer rows.Close()

	var out []domain.RiskAssessment
	for rows.Next() {
		var a domain.RiskAssessment
		var factors []byte
		if err := rows.Scan(&a.PredictionID, &a.CustomerID, &a.Timestamp, &a.ChurnProbability,
			&a.RiskLevel, &a.HorizonDays, &a.ModelVersion, &factors); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		if len(factors) > 0 {
			if err := json.Unmarshal(factors, &a.TopRiskFactors); err != nil {
				r.log.Warn("Failed to unmarshal risk factors",
					zap.String("prediction_id", a.PredictionID),
					zap.Error(err))
			}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

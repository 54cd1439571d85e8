package service

import (
	"context"
	"time"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/dto"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/scoring"
)

// PredictionServicer defines the scoring and action operations exposed to the
// transport layer.
type PredictionServicer interface {
	PredictChurn(ctx context.Context, req *dto.ChurnPredictionRequest) (*dto.ChurnPredictionResponse, error)
	PredictBatch(ctx context.Context, req *dto.BatchPredictionRequest) (*dto.BatchPredictionResponse, error)
	History(ctx context.Context, req *dto.PredictionHistoryRequest) (*dto.PredictionHistoryResponse, error)
	ExecuteAction(ctx context.Context, req *dto.ExecuteActionRequest) (*dto.ExecuteActionResponse, error)
}

// EventServicer defines the event publishing operations.
type EventServicer interface {
	PublishEvent(ctx context.Context, event *dto.PublishEventRequest) (string, error)
	PublishBulkEvents(ctx context.Context, events []dto.PublishEventRequest) ([]string, []string, error)
}

// FeatureSource serves feature vectors with bounded staleness.
type FeatureSource interface {
	Features(ctx context.Context, customerID string, asOf time.Time) (domain.FeatureVector, error)
}

// ScorerSource yields the currently active scorer, failing fast when no model
// is loaded.
type ScorerSource interface {
	Active() (scoring.Scorer, error)
}

// ActionRecommender derives and executes retention actions.
type ActionRecommender interface {
	Recommend(ctx context.Context, customerID string, probability float64, level domain.RiskLevel) ([]*domain.RetentionAction, error)
	Execute(ctx context.Context, actionID, customerID string) (bool, error)
}

// AssessmentRecorder accepts scoring decisions for asynchronous, best-effort
// audit persistence. Record never blocks the serving path.
type AssessmentRecorder interface {
	Record(assessment *domain.RiskAssessment)
}

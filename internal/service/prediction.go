package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/dto"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/repository"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/scoring"
)

const (
	defaultHorizonDays  = 30
	defaultHistoryLimit = 100
)

// PredictionService orchestrates the scoring path: features -> scorer ->
// classification -> recommendations, with the audit log updated off the
// serving path.
type PredictionService struct {
	features    FeatureSource
	models      ScorerSource
	classifier  scoring.Thresholds
	recommender ActionRecommender
	audit       AssessmentRecorder
	history     repository.PredictionRepository
	log         *zap.Logger
}

// NewPredictionService creates a new prediction service.
func NewPredictionService(
	features FeatureSource,
	models ScorerSource,
	classifier scoring.Thresholds,
	recommender ActionRecommender,
	audit AssessmentRecorder,
	history repository.PredictionRepository,
	log *zap.Logger,
) *PredictionService {
	return &PredictionService{
		features:    features,
		models:      models,
		classifier:  classifier,
		recommender: recommender,
		audit:       audit,
		history:     history,
		log:         log,
	}
}

// PredictChurn scores one customer and returns ranked retention actions.
// Fails fast with domain.ErrModelUnavailable when no scorer is active and
// domain.ErrNotFound when the customer is unknown.
func (s *PredictionService) PredictChurn(ctx context.Context, req *dto.ChurnPredictionRequest) (*dto.ChurnPredictionResponse, error) {
	scorer, err := s.models.Active()
	if err != nil {
		return nil, err
	}

	horizon := req.PredictionHorizonDays
	if horizon == 0 {
		horizon = defaultHorizonDays
	}

	now := time.Now().UTC()

	fv, err := s.features.Features(ctx, req.CustomerID, now)
	if err != nil {
		return nil, err
	}

	probability, err := scorer.Score(fv)
	if err != nil {
		return nil, fmt.Errorf("scoring failed for customer %s: %w", req.CustomerID, err)
	}

	level := s.classifier.Classify(probability)
	factors := scoring.TopRiskFactors(fv)

	recommended, err := s.recommender.Recommend(ctx, req.CustomerID, probability, level)
	if err != nil {
		return nil, err
	}

	s.audit.Record(&domain.RiskAssessment{
		PredictionID:     uuid.NewString(),
		CustomerID:       req.CustomerID,
		ChurnProbability: probability,
		RiskLevel:        level,
		HorizonDays:      horizon,
		ModelVersion:     scorer.Version(),
		TopRiskFactors:   factors,
		Timestamp:        now,
	})

	return &dto.ChurnPredictionResponse{
		CustomerID:          req.CustomerID,
		ChurnProbability:    probability,
		RiskLevel:           string(level),
		PredictionTimestamp: now,
		ModelVersion:        scorer.Version(),
		TopRiskFactors:      toRiskFactorDTOs(factors),
		RecommendedActions:  toActionDTOs(recommended),
	}, nil
}

// PredictBatch scores up to 1000 customers. Customers without resolvable
// features are skipped, not errored.
func (s *PredictionService) PredictBatch(ctx context.Context, req *dto.BatchPredictionRequest) (*dto.BatchPredictionResponse, error) {
	if _, err := s.models.Active(); err != nil {
		return nil, err
	}

	start := time.Now()
	predictions := make([]dto.ChurnPredictionResponse, 0, len(req.CustomerIDs))

	for _, customerID := range req.CustomerIDs {
		resp, err := s.PredictChurn(ctx, &dto.ChurnPredictionRequest{
			CustomerID:            customerID,
			PredictionHorizonDays: req.PredictionHorizonDays,
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			s.log.Warn("Skipping customer in batch prediction",
				zap.String("customer_id", customerID),
				zap.Error(err))
			continue
		}
		predictions = append(predictions, *resp)
	}

	return &dto.BatchPredictionResponse{
		Predictions:           predictions,
		TotalProcessed:        len(predictions),
		ProcessingTimeSeconds: time.Since(start).Seconds(),
	}, nil
}

// History returns recent scoring decisions from the audit log.
func (s *PredictionService) History(ctx context.Context, req *dto.PredictionHistoryRequest) (*dto.PredictionHistoryResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	assessments, err := s.history.History(ctx, req.CustomerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load prediction history: %w", err)
	}

	entries := make([]dto.PredictionHistoryEntry, 0, len(assessments))
	for _, a := range assessments {
		entries = append(entries, dto.PredictionHistoryEntry{
			PredictionID:        a.PredictionID,
			CustomerID:          a.CustomerID,
			ChurnProbability:    a.ChurnProbability,
			RiskLevel:           string(a.RiskLevel),
			PredictionTimestamp: a.Timestamp,
			ModelVersion:        a.ModelVersion,
		})
	}

	return &dto.PredictionHistoryResponse{Predictions: entries}, nil
}

// ExecuteAction transitions a pending action to executed at most once.
func (s *PredictionService) ExecuteAction(ctx context.Context, req *dto.ExecuteActionRequest) (*dto.ExecuteActionResponse, error) {
	executed, err := s.recommender.Execute(ctx, req.ActionID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	status := string(domain.ActionExecuted)
	if !executed {
		status = "not_pending"
	}

	return &dto.ExecuteActionResponse{
		ActionID: req.ActionID,
		Executed: executed,
		Status:   status,
	}, nil
}

func toRiskFactorDTOs(factors []domain.RiskFactor) []dto.RiskFactor {
	out := make([]dto.RiskFactor, 0, len(factors))
	for _, f := range factors {
		out = append(out, dto.RiskFactor{
			Factor: f.Factor,
			Value:  f.Value,
			Impact: f.Impact,
		})
	}
	return out
}

func toActionDTOs(actions []*domain.RetentionAction) []dto.RecommendedAction {
	out := make([]dto.RecommendedAction, 0, len(actions))
	for _, a := range actions {
		out = append(out, dto.RecommendedAction{
			ActionID:        a.ActionID,
			ActionType:      string(a.ActionType),
			Priority:        a.Priority,
			Description:     a.Description,
			PredictedImpact: a.PredictedImpact,
			EstimatedCost:   a.EstimatedCost,
			OfferDetails:    a.OfferDetails,
			Status:          string(a.Status),
		})
	}
	return out
}

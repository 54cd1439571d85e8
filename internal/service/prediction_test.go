package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/dto"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/scoring"
)

// MockFeatureSource is a mock implementation of FeatureSource
type MockFeatureSource struct {
	mock.Mock
}

func (m *MockFeatureSource) Features(ctx context.Context, customerID string, asOf time.Time) (domain.FeatureVector, error) {
	args := m.Called(ctx, customerID, asOf)
	return args.Get(0).(domain.FeatureVector), args.Error(1)
}

// MockScorerSource is a mock implementation of ScorerSource
type MockScorerSource struct {
	mock.Mock
}

func (m *MockScorerSource) Active() (scoring.Scorer, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(scoring.Scorer), args.Error(1)
}

// MockActionRecommender is a mock implementation of ActionRecommender
type MockActionRecommender struct {
	mock.Mock
}

func (m *MockActionRecommender) Recommend(ctx context.Context, customerID string, probability float64, level domain.RiskLevel) ([]*domain.RetentionAction, error) {
	args := m.Called(ctx, customerID, probability, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RetentionAction), args.Error(1)
}

func (m *MockActionRecommender) Execute(ctx context.Context, actionID, customerID string) (bool, error) {
	args := m.Called(ctx, actionID, customerID)
	return args.Bool(0), args.Error(1)
}

// MockAssessmentRecorder is a mock implementation of AssessmentRecorder
type MockAssessmentRecorder struct {
	mock.Mock
}

func (m *MockAssessmentRecorder) Record(assessment *domain.RiskAssessment) {
	m.Called(assessment)
}

// MockPredictionRepository is a mock implementation of repository.PredictionRepository
type MockPredictionRepository struct {
	mock.Mock
}

func (m *MockPredictionRepository) SavePrediction(ctx context.Context, assessment *domain.RiskAssessment) error {
	args := m.Called(ctx, assessment)
	return args.Error(0)
}

func (m *MockPredictionRepository) History(ctx context.Context, customerID string, limit int) ([]domain.RiskAssessment, error) {
	args := m.Called(ctx, customerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RiskAssessment), args.Error(1)
}

func testThresholds() scoring.Thresholds {
	return scoring.Thresholds{Critical: 0.8, High: 0.6, Medium: 0.3}
}

type predictionMocks struct {
	features    *MockFeatureSource
	models      *MockScorerSource
	recommender *MockActionRecommender
	audit       *MockAssessmentRecorder
	history     *MockPredictionRepository
}

func newTestPredictionService() (*PredictionService, *predictionMocks) {
	m := &predictionMocks{
		features:    new(MockFeatureSource),
		models:      new(MockScorerSource),
		recommender: new(MockActionRecommender),
		audit:       new(MockAssessmentRecorder),
		history:     new(MockPredictionRepository),
	}
	svc := NewPredictionService(m.features, m.models, testThresholds(), m.recommender, m.audit, m.history, zap.NewNop())
	return svc, m
}

func TestPredictionService_PredictChurn_Success(t *testing.T) {
	svc, m := newTestPredictionService()

	// A high bias pushes the probability into critical territory.
	m.models.On("Active").Return(scoring.NewLogisticScorer("1.0.0", 3.0, nil), nil)
	m.features.On("Features", mock.Anything, "CUST-000123", mock.Anything).
		Return(domain.FeatureVector{PaymentFailures90d: 2}, nil)
	m.recommender.On("Recommend", mock.Anything, "CUST-000123", mock.Anything, domain.RiskCritical).
		Return([]*domain.RetentionAction{
			{ActionID: "a1", ActionType: domain.ActionDiscount, PredictedImpact: 0.3, Status: domain.ActionPending},
		}, nil)
	m.audit.On("Record", mock.MatchedBy(func(a *domain.RiskAssessment) bool {
		return a.CustomerID == "CUST-000123" && a.RiskLevel == domain.RiskCritical && a.PredictionID != ""
	})).Return()

	resp, err := svc.PredictChurn(context.Background(), &dto.ChurnPredictionRequest{CustomerID: "CUST-000123"})

	assert.NoError(t, err)
	assert.Equal(t, "CUST-000123", resp.CustomerID)
	assert.Equal(t, "critical", resp.RiskLevel)
	assert.Equal(t, "1.0.0", resp.ModelVersion)
	assert.Greater(t, resp.ChurnProbability, 0.8)
	assert.Len(t, resp.TopRiskFactors, 1)
	assert.Len(t, resp.RecommendedActions, 1)
	assert.Equal(t, "a1", resp.RecommendedActions[0].ActionID)
	m.audit.AssertExpectations(t)
}

func TestPredictionService_PredictChurn_NoActiveModelFailsFast(t *testing.T) {
	svc, m := newTestPredictionService()

	m.models.On("Active").Return(nil, domain.ErrModelUnavailable)

	_, err := svc.PredictChurn(context.Background(), &dto.ChurnPredictionRequest{CustomerID: "CUST-000123"})

	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
	m.features.AssertNotCalled(t, "Features", mock.Anything, mock.Anything, mock.Anything)
}

func TestPredictionService_PredictChurn_UnknownCustomer(t *testing.T) {
	svc, m := newTestPredictionService()

	m.models.On("Active").Return(scoring.NewLogisticScorer("1.0.0", 0, nil), nil)
	m.features.On("Features", mock.Anything, "CUST-MISSING", mock.Anything).
		Return(domain.FeatureVector{}, domain.ErrNotFound)

	_, err := svc.PredictChurn(context.Background(), &dto.ChurnPredictionRequest{CustomerID: "CUST-MISSING"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	m.recommender.AssertNotCalled(t, "Recommend", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPredictionService_PredictChurn_RecommendFailurePropagates(t *testing.T) {
	svc, m := newTestPredictionService()

	m.models.On("Active").Return(scoring.NewLogisticScorer("1.0.0", 0, nil), nil)
	m.features.On("Features", mock.Anything, "CUST-000123", mock.Anything).
		Return(domain.FeatureVector{}, nil)
	m.recommender.On("Recommend", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("postgres unavailable"))

	_, err := svc.PredictChurn(context.Background(), &dto.ChurnPredictionRequest{CustomerID: "CUST-000123"})

	assert.Error(t, err)
	m.audit.AssertNotCalled(t, "Record", mock.Anything)
}

func TestPredictionService_PredictBatch_SkipsUnknownCustomers(t *testing.T) {
	svc, m := newTestPredictionService()

	m.models.On("Active").Return(scoring.NewLogisticScorer("1.0.0", -3.0, nil), nil)
	m.features.On("Features", mock.Anything, "CUST-000123", mock.Anything).
		Return(domain.FeatureVector{}, nil)
	m.features.On("Features", mock.Anything, "CUST-MISSING", mock.Anything).
		Return(domain.FeatureVector{}, domain.ErrNotFound)
	m.features.On("Features", mock.Anything, "CUST-000456", mock.Anything).
		Return(domain.FeatureVector{}, nil)
	m.recommender.On("Recommend", mock.Anything, mock.Anything, mock.Anything, domain.RiskLow).
		Return([]*domain.RetentionAction{}, nil)
	m.audit.On("Record", mock.Anything).Return()

	resp, err := svc.PredictBatch(context.Background(), &dto.BatchPredictionRequest{
		CustomerIDs: []string{"CUST-000123", "CUST-MISSING", "CUST-000456"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.TotalProcessed)
	assert.Len(t, resp.Predictions, 2)
	assert.Equal(t, "CUST-000123", resp.Predictions[0].CustomerID)
	assert.Equal(t, "CUST-000456", resp.Predictions[1].CustomerID)
}

func TestPredictionService_PredictBatch_NoActiveModelFailsFast(t *testing.T) {
	svc, m := newTestPredictionService()

	m.models.On("Active").Return(nil, domain.ErrModelUnavailable)

	_, err := svc.PredictBatch(context.Background(), &dto.BatchPredictionRequest{
		CustomerIDs: []string{"CUST-000123"},
	})

	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
	m.features.AssertNotCalled(t, "Features", mock.Anything, mock.Anything, mock.Anything)
}

func TestPredictionService_History(t *testing.T) {
	svc, m := newTestPredictionService()

	saved := []domain.RiskAssessment{
		{PredictionID: "p2", CustomerID: "CUST-000123", ChurnProbability: 0.7, RiskLevel: domain.RiskHigh, ModelVersion: "1.0.0"},
		{PredictionID: "p1", CustomerID: "CUST-000123", ChurnProbability: 0.4, RiskLevel: domain.RiskMedium, ModelVersion: "1.0.0"},
	}
	m.history.On("History", mock.Anything, "CUST-000123", 100).Return(saved, nil)

	resp, err := svc.History(context.Background(), &dto.PredictionHistoryRequest{CustomerID: "CUST-000123"})

	assert.NoError(t, err)
	assert.Len(t, resp.Predictions, 2)
	assert.Equal(t, "p2", resp.Predictions[0].PredictionID)
	assert.Equal(t, "high", resp.Predictions[0].RiskLevel)
}

func TestPredictionService_ExecuteAction(t *testing.T) {
	svc, m := newTestPredictionService()

	m.recommender.On("Execute", mock.Anything, "action-1", "CUST-000123").Return(true, nil).Once()
	m.recommender.On("Execute", mock.Anything, "action-1", "CUST-000123").Return(false, nil).Once()

	resp, err := svc.ExecuteAction(context.Background(), &dto.ExecuteActionRequest{
		ActionID: "action-1", CustomerID: "CUST-000123",
	})
	assert.NoError(t, err)
	assert.True(t, resp.Executed)
	assert.Equal(t, "executed", resp.Status)

	resp, err = svc.ExecuteAction(context.Background(), &dto.ExecuteActionRequest{
		ActionID: "action-1", CustomerID: "CUST-000123",
	})
	assert.NoError(t, err)
	assert.False(t, resp.Executed)
	assert.Equal(t, "not_pending", resp.Status)
}

func TestPredictionService_ExecuteAction_UnknownAction(t *testing.T) {
	svc, m := newTestPredictionService()

	m.recommender.On("Execute", mock.Anything, "action-unknown", "CUST-000123").
		Return(false, domain.ErrNotFound)

	_, err := svc.ExecuteAction(context.Background(), &dto.ExecuteActionRequest{
		ActionID: "action-unknown", CustomerID: "CUST-000123",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

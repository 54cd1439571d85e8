package features

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/config"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

// MockEventStore is a mock implementation of repository.EventStore
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) InsertEvent(ctx context.Context, rec domain.EventRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockEventStore) ServiceInteractionsSince(ctx context.Context, customerID string, since time.Time) ([]domain.ServiceInteraction, error) {
	args := m.Called(ctx, customerID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceInteraction), args.Error(1)
}

func (m *MockEventStore) DeviceTelemetrySince(ctx context.Context, customerID string, since time.Time) ([]domain.DeviceTelemetry, error) {
	args := m.Called(ctx, customerID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeviceTelemetry), args.Error(1)
}

func (m *MockEventStore) WebEngagementSince(ctx context.Context, customerID string, since time.Time) ([]domain.WebEngagement, error) {
	args := m.Called(ctx, customerID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WebEngagement), args.Error(1)
}

func (m *MockEventStore) BillingEventsSince(ctx context.Context, customerID string, since time.Time) ([]domain.BillingEvent, error) {
	args := m.Called(ctx, customerID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillingEvent), args.Error(1)
}

func (m *MockEventStore) InitSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of repository.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetProfile(ctx context.Context, customerID string) (*domain.CustomerProfile, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerProfile), args.Error(1)
}

var testAsOf = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testFeaturesConfig() config.Features {
	return config.Features{
		ServiceWindowDays:   30,
		TelemetryWindowDays: 30,
		WebWindowDays:       30,
		BillingWindowDays:   90,
		CacheTTLSec:         300,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func newEngineWithEvents(
	t *testing.T,
	profile *domain.CustomerProfile,
	interactions []domain.ServiceInteraction,
	telemetry []domain.DeviceTelemetry,
	web []domain.WebEngagement,
	billing []domain.BillingEvent,
) *Engine {
	t.Helper()

	mockStore := new(MockEventStore)
	mockCustomers := new(MockCustomerRepository)

	mockCustomers.On("GetProfile", mock.Anything, profile.CustomerID).Return(profile, nil)
	mockStore.On("ServiceInteractionsSince", mock.Anything, profile.CustomerID, mock.Anything).Return(interactions, nil)
	mockStore.On("DeviceTelemetrySince", mock.Anything, profile.CustomerID, mock.Anything).Return(telemetry, nil)
	mockStore.On("WebEngagementSince", mock.Anything, profile.CustomerID, mock.Anything).Return(web, nil)
	mockStore.On("BillingEventsSince", mock.Anything, profile.CustomerID, mock.Anything).Return(billing, nil)

	return NewEngine(mockStore, mockCustomers, testFeaturesConfig(), zap.NewNop())
}

func TestEngine_Compute_EmptyWindowsUseNeutralDefaults(t *testing.T) {
	profile := &domain.CustomerProfile{
		CustomerID:         "CUST-000123",
		Segment:            "residential",
		AccountCreatedDate: testAsOf.AddDate(0, 0, -365),
	}
	engine := newEngineWithEvents(t, profile,
		[]domain.ServiceInteraction{}, []domain.DeviceTelemetry{},
		[]domain.WebEngagement{}, []domain.BillingEvent{})

	fv, err := engine.Compute(context.Background(), "CUST-000123", testAsOf)

	assert.NoError(t, err)
	assert.Equal(t, "residential", fv.CustomerSegment)
	assert.Equal(t, 365, fv.TenureDays)
	assert.Equal(t, 0, fv.ServiceCalls30d)
	assert.Equal(t, 0.0, fv.AvgSentiment30d)
	assert.Equal(t, 999, fv.DaysSinceLastCall)
	assert.Equal(t, 999, fv.DaysSinceLastWebActivity)
	assert.Equal(t, 999, fv.DaysUntilContractEnd)
	assert.Equal(t, 100.0, fv.AvgNetworkQuality30d)
	assert.Equal(t, 0, fv.STBErrors30d)
	assert.Equal(t, 0, fv.DaysOverdue)
	assert.Equal(t, 0.0, fv.AccountBalance)
	assert.Equal(t, 0.0, fv.EngagementScore)
	assert.Equal(t, 0.0, fv.RiskScore)
}

func TestEngine_Compute_ServiceInteractionAggregates(t *testing.T) {
	profile := &domain.CustomerProfile{
		CustomerID:         "CUST-000123",
		Segment:            "residential",
		AccountCreatedDate: testAsOf.AddDate(-1, 0, 0),
	}
	interactions := []domain.ServiceInteraction{
		{
			Timestamp:        testAsOf.AddDate(0, 0, -2),
			DurationSeconds:  300,
			ResolutionStatus: "unresolved",
			SentimentScore:   floatPtr(-0.8),
		},
		{
			Timestamp:        testAsOf.AddDate(0, 0, -10),
			DurationSeconds:  100,
			ResolutionStatus: "resolved",
			SentimentScore:   floatPtr(0.2),
		},
		{
			Timestamp:        testAsOf.AddDate(0, 0, -20),
			DurationSeconds:  200,
			ResolutionStatus: "unresolved",
			// no sentiment recorded
		},
	}
	engine := newEngineWithEvents(t, profile, interactions,
		[]domain.DeviceTelemetry{}, []domain.WebEngagement{}, []domain.BillingEvent{})

	fv, err := engine.Compute(context.Background(), "CUST-000123", testAsOf)

	assert.NoError(t, err)
	assert.Equal(t, 3, fv.ServiceCalls30d)
	assert.Equal(t, 2, fv.UnresolvedCalls30d)
	assert.InDelta(t, -0.3, fv.AvgSentiment30d, 1e-9)
	assert.InDelta(t, 200.0, fv.AvgCallDuration30d, 1e-9)
	assert.Equal(t, 2, fv.DaysSinceLastCall)
}

func TestEngine_Compute_TelemetryAndWebAggregates(t *testing.T) {
	profile := &domain.CustomerProfile{
		CustomerID:         "CUST-000123",
		Segment:            "residential",
		AccountCreatedDate: testAsOf.AddDate(-1, 0, 0),
	}
	telemetry := []domain.DeviceTelemetry{
		{EventType: "error", NetworkQuality: floatPtr(60), BufferEvents: 4, ViewingDurationSeconds: 3600},
		{EventType: "playback", NetworkQuality: floatPtr(80), BufferEvents: 1, ViewingDurationSeconds: 7200},
	}
	web := []domain.WebEngagement{
		{SessionID: "s1", EngagementTimeMsec: 120000, Timestamp: testAsOf.AddDate(0, 0, -1)},
		{SessionID: "s1", EngagementTimeMsec: 60000, Timestamp: testAsOf.AddDate(0, 0, -1)},
		{SessionID: "s2", EngagementTimeMsec: 60000, Timestamp: testAsOf.AddDate(0, 0, -5)},
	}
	engine := newEngineWithEvents(t, profile,
		[]domain.ServiceInteraction{}, telemetry, web, []domain.BillingEvent{})

	fv, err := engine.Compute(context.Background(), "CUST-000123", testAsOf)

	assert.NoError(t, err)
	assert.Equal(t, 1, fv.STBErrors30d)
	assert.InDelta(t, 70.0, fv.AvgNetworkQuality30d, 1e-9)
	assert.Equal(t, 5, fv.TotalBufferEvents30d)
	assert.InDelta(t, 3.0, fv.TotalViewingHours30d, 1e-9)
	assert.Equal(t, 2, fv.WebSessions30d)
	assert.InDelta(t, 4.0, fv.TotalEngagementMinutes30d, 1e-9)
	assert.Equal(t, 1, fv.DaysSinceLastWebActivity)
}

func TestEngine_Compute_BillingUsesLatestEventForBalance(t *testing.T) {
	profile := &domain.CustomerProfile{
		CustomerID:         "CUST-000123",
		Segment:            "residential",
		AccountCreatedDate: testAsOf.AddDate(-1, 0, 0),
	}
	// Most recent first, as the store returns them.
	billing := []domain.BillingEvent{
		{EventType: "payment_failed", DaysOverdue: 15, AccountBalance: 120.50, Timestamp: testAsOf.AddDate(0, 0, -1)},
		{EventType: "dispute_opened", DaysOverdue: 5, AccountBalance: 80.00, Timestamp: testAsOf.AddDate(0, 0, -30)},
		{EventType: "payment_failed", DaysOverdue: 0, AccountBalance: 0.00, Timestamp: testAsOf.AddDate(0, 0, -60)},
	}
	engine := newEngineWithEvents(t, profile,
		[]domain.ServiceInteraction{}, []domain.DeviceTelemetry{}, []domain.WebEngagement{}, billing)

	fv, err := engine.Compute(context.Background(), "CUST-000123", testAsOf)

	assert.NoError(t, err)
	assert.Equal(t, 2, fv.PaymentFailures90d)
	assert.Equal(t, 1, fv.Disputes90d)
	assert.Equal(t, 15, fv.DaysOverdue)
	assert.InDelta(t, 120.50, fv.AccountBalance, 1e-9)
}

func TestEngine_Compute_CompositeScores(t *testing.T) {
	profile := &domain.CustomerProfile{
		CustomerID:         "CUST-000123",
		Segment:            "residential",
		AccountCreatedDate: testAsOf.AddDate(-1, 0, 0),
	}
	interactions := []domain.ServiceInteraction{
		{Timestamp: testAsOf.AddDate(0, 0, -1), ResolutionStatus: "unresolved"},
	}
	telemetry := []domain.DeviceTelemetry{
		{EventType: "playback", ViewingDurationSeconds: 50 * 3600},
	}
	web := []domain.WebEngagement{
		{SessionID: "s1", Timestamp: testAsOf.AddDate(0, 0, -1)},
		{SessionID: "s2", Timestamp: testAsOf.AddDate(0, 0, -2)},
		{SessionID: "s3", Timestamp: testAsOf.AddDate(0, 0, -3)},
	}
	billing := []domain.BillingEvent{
		{EventType: "payment_failed", DaysOverdue: 15, Timestamp: testAsOf.AddDate(0, 0, -1)},
	}
	engine := newEngineWithEvents(t, profile, interactions, telemetry, web, billing)

	fv, err := engine.Compute(context.Background(), "CUST-000123", testAsOf)

	assert.NoError(t, err)
	// engagement = 0.5*(50/100) + 0.5*(3/30)
	assert.InDelta(t, 0.30, fv.EngagementScore, 1e-9)
	// risk = 0.3*(1/5) + 0.4*(1/3) + 0.3*(15/30)
	assert.InDelta(t, 0.3433333333, fv.RiskScore, 1e-6)
}

func TestEngine_Compute_CompositeScoresAreCapped(t *testing.T) {
	profile := &domain.CustomerProfile{
		CustomerID:         "CUST-000123",
		Segment:            "residential",
		AccountCreatedDate: testAsOf.AddDate(-1, 0, 0),
	}
	interactions := make([]domain.ServiceInteraction, 20)
	for i := range interactions {
		interactions[i] = domain.ServiceInteraction{
			Timestamp:        testAsOf.AddDate(0, 0, -1),
			ResolutionStatus: "unresolved",
		}
	}
	billing := []domain.BillingEvent{
		{EventType: "payment_failed", DaysOverdue: 300, Timestamp: testAsOf.AddDate(0, 0, -1)},
		{EventType: "payment_failed", Timestamp: testAsOf.AddDate(0, 0, -2)},
		{EventType: "payment_failed", Timestamp: testAsOf.AddDate(0, 0, -3)},
		{EventType: "payment_failed", Timestamp: testAsOf.AddDate(0, 0, -4)},
	}
	engine := newEngineWithEvents(t, profile, interactions,
		[]domain.DeviceTelemetry{}, []domain.WebEngagement{}, billing)

	fv, err := engine.Compute(context.Background(), "CUST-000123", testAsOf)

	assert.NoError(t, err)
	assert.InDelta(t, 1.0, fv.RiskScore, 1e-9)
}

func TestEngine_Compute_IsDeterministic(t *testing.T) {
	profile := &domain.CustomerProfile{
		CustomerID:              "CUST-000123",
		Segment:                 "residential",
		AccountCreatedDate:      testAsOf.AddDate(-2, 0, 0),
		MonthlyRecurringRevenue: floatPtr(100),
		LifetimeValue:           floatPtr(1500),
		AutoRenew:               true,
	}
	interactions := []domain.ServiceInteraction{
		{Timestamp: testAsOf.AddDate(0, 0, -3), ResolutionStatus: "unresolved", SentimentScore: floatPtr(-0.5), DurationSeconds: 240},
	}
	engine := newEngineWithEvents(t, profile, interactions,
		[]domain.DeviceTelemetry{}, []domain.WebEngagement{}, []domain.BillingEvent{})

	first, err := engine.Compute(context.Background(), "CUST-000123", testAsOf)
	assert.NoError(t, err)
	second, err := engine.Compute(context.Background(), "CUST-000123", testAsOf)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_Compute_UnknownCustomer(t *testing.T) {
	mockStore := new(MockEventStore)
	mockCustomers := new(MockCustomerRepository)
	mockCustomers.On("GetProfile", mock.Anything, "CUST-MISSING").Return(nil, domain.ErrNotFound)

	engine := NewEngine(mockStore, mockCustomers, testFeaturesConfig(), zap.NewNop())

	_, err := engine.Compute(context.Background(), "CUST-MISSING", testAsOf)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockStore.AssertNotCalled(t, "ServiceInteractionsSince", mock.Anything, mock.Anything, mock.Anything)
}

func TestEngine_Compute_StoreFailure(t *testing.T) {
	profile := &domain.CustomerProfile{
		CustomerID:         "CUST-000123",
		Segment:            "residential",
		AccountCreatedDate: testAsOf.AddDate(-1, 0, 0),
	}
	mockStore := new(MockEventStore)
	mockCustomers := new(MockCustomerRepository)
	mockCustomers.On("GetProfile", mock.Anything, "CUST-000123").Return(profile, nil)
	mockStore.On("ServiceInteractionsSince", mock.Anything, "CUST-000123", mock.Anything).
		Return(nil, errors.New("clickhouse unavailable"))

	engine := NewEngine(mockStore, mockCustomers, testFeaturesConfig(), zap.NewNop())

	_, err := engine.Compute(context.Background(), "CUST-000123", testAsOf)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "service interactions")
}

package features

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/config"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/repository"
)

// Neutral defaults for empty windows. Absence of telemetry is treated as no
// observed degradation, hence the 100.0 network quality.
const (
	defaultDaysSince         = 999
	defaultDaysUntilContract = 999
	defaultNetworkQuality    = 100.0
)

// Engine computes the dense feature vector for a customer at a point in time.
// Computation is a deterministic function of the event/profile snapshot
// visible at asOf; the engine itself holds no mutable state.
type Engine struct {
	store     repository.EventStore
	customers repository.CustomerRepository
	cfg       config.Features
	log       *zap.Logger
}

// NewEngine creates a new feature computation engine.
func NewEngine(store repository.EventStore, customers repository.CustomerRepository, cfg config.Features, log *zap.Logger) *Engine {
	return &Engine{
		store:     store,
		customers: customers,
		cfg:       cfg,
		log:       log,
	}
}

// Compute builds the feature vector for customerID as of asOf. Returns
// domain.ErrNotFound when the customer is unknown.
func (e *Engine) Compute(ctx context.Context, customerID string, asOf time.Time) (domain.FeatureVector, error) {
	var fv domain.FeatureVector

	profile, err := e.customers.GetProfile(ctx, customerID)
	if err != nil {
		return fv, err
	}

	window := func(days int) time.Time {
		return asOf.AddDate(0, 0, -days)
	}

	interactions, err := e.store.ServiceInteractionsSince(ctx, customerID, window(e.cfg.ServiceWindowDays))
	if err != nil {
		return fv, fmt.Errorf("failed to load service interactions: %w", err)
	}
	telemetry, err := e.store.DeviceTelemetrySince(ctx, customerID, window(e.cfg.TelemetryWindowDays))
	if err != nil {
		return fv, fmt.Errorf("failed to load device telemetry: %w", err)
	}
	web, err := e.store.WebEngagementSince(ctx, customerID, window(e.cfg.WebWindowDays))
	if err != nil {
		return fv, fmt.Errorf("failed to load web engagement: %w", err)
	}
	billing, err := e.store.BillingEventsSince(ctx, customerID, window(e.cfg.BillingWindowDays))
	if err != nil {
		return fv, fmt.Errorf("failed to load billing events: %w", err)
	}

	demographicFeatures(&fv, profile, asOf)
	serviceFeatures(&fv, interactions, asOf)
	telemetryFeatures(&fv, telemetry)
	webFeatures(&fv, web, asOf)
	billingFeatures(&fv, billing)
	compositeFeatures(&fv)

	return fv, nil
}

func demographicFeatures(fv *domain.FeatureVector, p *domain.CustomerProfile, asOf time.Time) {
	fv.CustomerSegment = p.Segment
	fv.TenureDays = daysBetween(p.AccountCreatedDate, asOf)
	if p.MonthlyRecurringRevenue != nil {
		fv.MonthlyRecurringRevenue = *p.MonthlyRecurringRevenue
	}
	if p.LifetimeValue != nil {
		fv.LifetimeValue = *p.LifetimeValue
	}
	if p.AutoRenew {
		fv.AutoRenew = 1
	}
	fv.DaysUntilContractEnd = defaultDaysUntilContract
	if p.ContractEndDate != nil {
		fv.DaysUntilContractEnd = daysBetween(asOf, *p.ContractEndDate)
	}
}

func serviceFeatures(fv *domain.FeatureVector, interactions []domain.ServiceInteraction, asOf time.Time) {
	fv.DaysSinceLastCall = defaultDaysSince
	if len(interactions) == 0 {
		return
	}

	fv.ServiceCalls30d = len(interactions)

	var sentimentSum float64
	var sentimentCount int
	var durationSum float64
	var lastCall time.Time
	for _, i := range interactions {
		if i.SentimentScore != nil {
			sentimentSum += *i.SentimentScore
			sentimentCount++
		}
		durationSum += float64(i.DurationSeconds)
		if i.ResolutionStatus == "unresolved" {
			fv.UnresolvedCalls30d++
		}
		if i.Timestamp.After(lastCall) {
			lastCall = i.Timestamp
		}
	}

	if sentimentCount > 0 {
		fv.AvgSentiment30d = sentimentSum / float64(sentimentCount)
	}
	fv.AvgCallDuration30d = durationSum / float64(len(interactions))
	fv.DaysSinceLastCall = daysBetween(lastCall, asOf)
}

func telemetryFeatures(fv *domain.FeatureVector, events []domain.DeviceTelemetry) {
	fv.AvgNetworkQuality30d = defaultNetworkQuality
	if len(events) == 0 {
		return
	}

	var qualitySum float64
	var qualityCount int
	var viewingSeconds float64
	for _, e := range events {
		if e.EventType == "error" {
			fv.STBErrors30d++
		}
		if e.NetworkQuality != nil {
			qualitySum += *e.NetworkQuality
			qualityCount++
		}
		fv.TotalBufferEvents30d += int(e.BufferEvents)
		viewingSeconds += float64(e.ViewingDurationSeconds)
	}

	if qualityCount > 0 {
		fv.AvgNetworkQuality30d = qualitySum / float64(qualityCount)
	}
	fv.TotalViewingHours30d = viewingSeconds / 3600.0
}

func webFeatures(fv *domain.FeatureVector, events []domain.WebEngagement, asOf time.Time) {
	fv.DaysSinceLastWebActivity = defaultDaysSince
	if len(events) == 0 {
		return
	}

	sessions := make(map[string]struct{})
	var engagementMsec int64
	var lastActivity time.Time
	for _, e := range events {
		sessions[e.SessionID] = struct{}{}
		engagementMsec += e.EngagementTimeMsec
		if e.Timestamp.After(lastActivity) {
			lastActivity = e.Timestamp
		}
	}

	fv.WebSessions30d = len(sessions)
	fv.TotalEngagementMinutes30d = float64(engagementMsec) / 60000.0
	fv.DaysSinceLastWebActivity = daysBetween(lastActivity, asOf)
}

// billingFeatures expects events most recent first; days_overdue and
// account_balance are taken from the latest event.
func billingFeatures(fv *domain.FeatureVector, events []domain.BillingEvent) {
	if len(events) == 0 {
		return
	}

	for _, e := range events {
		switch e.EventType {
		case "payment_failed":
			fv.PaymentFailures90d++
		case "dispute_opened":
			fv.Disputes90d++
		}
	}

	latest := events[0]
	fv.DaysOverdue = int(latest.DaysOverdue)
	fv.AccountBalance = latest.AccountBalance
}

// compositeFeatures derives the bounded engagement and risk scores. The
// weights and caps are a contract with the scorer, not tuning knobs.
func compositeFeatures(fv *domain.FeatureVector) {
	fv.EngagementScore = clip01(
		0.5*capAt(fv.TotalViewingHours30d/100.0, 1.0) +
			0.5*capAt(float64(fv.WebSessions30d)/30.0, 1.0))

	fv.RiskScore = clip01(
		0.3*capAt(float64(fv.UnresolvedCalls30d)/5.0, 1.0) +
			0.4*capAt(float64(fv.PaymentFailures90d)/3.0, 1.0) +
			0.3*capAt(float64(fv.DaysOverdue)/30.0, 1.0))
}

func capAt(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

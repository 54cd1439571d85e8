package actions

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/config"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/repository"
)

const maxRecommendations = 3

// Recommender derives ranked retention actions from a risk level and customer
// attributes, and owns the pending -> executed transition. Each scoring call
// independently re-derives the candidate set; there is no state carried
// between risk levels.
type Recommender struct {
	customers repository.CustomerRepository
	actions   repository.ActionRepository
	cfg       config.Actions
	log       *zap.Logger
}

// NewRecommender creates a new action recommender.
func NewRecommender(customers repository.CustomerRepository, actionRepo repository.ActionRepository, cfg config.Actions, log *zap.Logger) *Recommender {
	return &Recommender{
		customers: customers,
		actions:   actionRepo,
		cfg:       cfg,
		log:       log,
	}
}

// Recommend builds the candidate set for the risk level, ranks it by
// predicted impact, caps it at three, and persists the result as pending.
func (r *Recommender) Recommend(ctx context.Context, customerID string, probability float64, level domain.RiskLevel) ([]*domain.RetentionAction, error) {
	customer, err := r.customers.GetProfile(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var candidates []*domain.RetentionAction
	switch level {
	case domain.RiskCritical:
		candidates = r.criticalActions(customer, probability)
	case domain.RiskHigh:
		candidates = r.highRiskActions(customer, probability)
	case domain.RiskMedium:
		candidates = r.mediumRiskActions(customer, probability)
	default:
		candidates = r.lowRiskActions()
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PredictedImpact > candidates[j].PredictedImpact
	})
	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}

	now := time.Now().UTC()
	for _, a := range candidates {
		a.ActionID = uuid.NewString()
		a.CustomerID = customerID
		a.Status = domain.ActionPending
		a.RecommendedAt = now
	}

	if err := r.actions.CreateActions(ctx, candidates); err != nil {
		return nil, fmt.Errorf("failed to persist recommendations: %w", err)
	}

	return candidates, nil
}

func (r *Recommender) criticalActions(customer *domain.CustomerProfile, churnProb float64) []*domain.RetentionAction {
	actions := []*domain.RetentionAction{
		{
			ActionType:      domain.ActionServiceCall,
			Priority:        "high",
			Description:     "Immediate proactive service call to address concerns",
			PredictedImpact: 0.25,
			EstimatedCost:   50,
			OfferDetails: map[string]interface{}{
				"reason":     "Critical churn risk detected",
				"escalation": true,
			},
		},
	}

	if customer.MonthlyRecurringRevenue != nil {
		pct := math.Min(r.cfg.CriticalDiscountCapPct, churnProb*30)
		actions = append(actions, &domain.RetentionAction{
			ActionType:      domain.ActionDiscount,
			Priority:        "high",
			Description:     fmt.Sprintf("%.0f%% discount for 6 months", pct),
			PredictedImpact: 0.30,
			EstimatedCost:   *customer.MonthlyRecurringRevenue * pct / 100 * 6,
			OfferDetails: map[string]interface{}{
				"discount_percent": pct,
				"duration_months":  6,
				"auto_apply":       true,
			},
		})
	}

	if customer.LifetimeValue != nil && *customer.LifetimeValue > r.cfg.LoyaltyLTVThreshold {
		actions = append(actions, &domain.RetentionAction{
			ActionType:      domain.ActionLoyaltyReward,
			Priority:        "medium",
			Description:     "Exclusive loyalty reward for long-term customers",
			PredictedImpact: 0.15,
			EstimatedCost:   r.cfg.LoyaltyRewardAmount,
			OfferDetails: map[string]interface{}{
				"reward_type": "gift_card",
				"amount":      r.cfg.LoyaltyRewardAmount,
			},
		})
	}

	return actions
}

func (r *Recommender) highRiskActions(customer *domain.CustomerProfile, churnProb float64) []*domain.RetentionAction {
	actions := []*domain.RetentionAction{
		{
			ActionType:      domain.ActionServiceCall,
			Priority:        "medium",
			Description:     "Proactive service check-in",
			PredictedImpact: 0.20,
			EstimatedCost:   30,
			OfferDetails: map[string]interface{}{
				"reason":     "High churn risk",
				"escalation": false,
			},
		},
	}

	if customer.MonthlyRecurringRevenue != nil {
		pct := math.Min(r.cfg.HighDiscountCapPct, churnProb*20)
		actions = append(actions, &domain.RetentionAction{
			ActionType:      domain.ActionDiscount,
			Priority:        "high",
			Description:     fmt.Sprintf("%.0f%% discount for 3 months", pct),
			PredictedImpact: 0.25,
			EstimatedCost:   *customer.MonthlyRecurringRevenue * pct / 100 * 3,
			OfferDetails: map[string]interface{}{
				"discount_percent": pct,
				"duration_months":  3,
			},
		})
	}

	if customer.Segment == "residential" || customer.Segment == "small_business" {
		actions = append(actions, &domain.RetentionAction{
			ActionType:      domain.ActionUpgrade,
			Priority:        "medium",
			Description:     "Upgrade to premium plan with special pricing",
			PredictedImpact: 0.18,
			EstimatedCost:   0, // revenue positive
			OfferDetails: map[string]interface{}{
				"upgrade_type":    "premium",
				"special_pricing": true,
			},
		})
	}

	return actions
}

func (r *Recommender) mediumRiskActions(customer *domain.CustomerProfile, churnProb float64) []*domain.RetentionAction {
	var actions []*domain.RetentionAction

	if customer.MonthlyRecurringRevenue != nil {
		pct := math.Min(r.cfg.MediumDiscountCapPct, churnProb*15)
		actions = append(actions, &domain.RetentionAction{
			ActionType:      domain.ActionDiscount,
			Priority:        "medium",
			Description:     fmt.Sprintf("%.0f%% discount for 2 months", pct),
			PredictedImpact: 0.15,
			EstimatedCost:   *customer.MonthlyRecurringRevenue * pct / 100 * 2,
			OfferDetails: map[string]interface{}{
				"discount_percent": pct,
				"duration_months":  2,
			},
		})
	}

	actions = append(actions, &domain.RetentionAction{
		ActionType:      domain.ActionCustomOffer,
		Priority:        "low",
		Description:     "Personalized retention email with special offer",
		PredictedImpact: 0.10,
		EstimatedCost:   5,
		OfferDetails: map[string]interface{}{
			"channel":      "email",
			"personalized": true,
		},
	})

	return actions
}

func (r *Recommender) lowRiskActions() []*domain.RetentionAction {
	return []*domain.RetentionAction{
		{
			ActionType:      domain.ActionCustomOffer,
			Priority:        "low",
			Description:     "Engagement email with tips and benefits",
			PredictedImpact: 0.05,
			EstimatedCost:   2,
			OfferDetails: map[string]interface{}{
				"channel": "email",
				"type":    "engagement",
			},
		},
	}
}

// Execute transitions the action to executed at most once. Returns (false,
// nil) when the action exists but was already executed or rejected, and
// domain.ErrNotFound when the pair is unknown.
func (r *Recommender) Execute(ctx context.Context, actionID, customerID string) (bool, error) {
	executed, err := r.actions.MarkExecuted(ctx, actionID, customerID, time.Now().UTC())
	if err != nil {
		return false, err
	}
	if executed {
		r.log.Info("Executed retention action",
			zap.String("action_id", actionID),
			zap.String("customer_id", customerID))
	}
	return executed, nil
}

package domain

import "time"

// ActionType is the kind of retention intervention.
type ActionType string

const (
	ActionServiceCall   ActionType = "service_call"
	ActionDiscount      ActionType = "discount"
	ActionLoyaltyReward ActionType = "loyalty_reward"
	ActionUpgrade       ActionType = "upgrade"
	ActionCustomOffer   ActionType = "custom_offer"
)

// ActionStatus is the lifecycle state of a retention action.
// pending transitions to executed exactly once and never reverts.
type ActionStatus string

const (
	ActionPending  ActionStatus = "pending"
	ActionExecuted ActionStatus = "executed"
	ActionRejected ActionStatus = "rejected"
)

// RetentionAction is a recommended retention intervention for a customer.
type RetentionAction struct {
	ActionID        string
	CustomerID      string
	ActionType      ActionType
	Priority        string
	Description     string
	PredictedImpact float64
	EstimatedCost   float64
	OfferDetails    map[string]interface{}
	Status          ActionStatus
	RecommendedAt   time.Time
	ExecutedAt      *time.Time
}

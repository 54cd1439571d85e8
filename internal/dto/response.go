package dto

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"not_found"`
	Message string `json:"message,omitempty" example:"customer CUST-000123 not found"`
}

// RiskFactor is a signal contributing to the churn probability.
type RiskFactor struct {
	Factor string  `json:"factor" example:"payment_failures"`
	Value  float64 `json:"value" example:"2"`
	Impact string  `json:"impact" example:"high"`
}

// RecommendedAction is a ranked retention action returned to the caller.
type RecommendedAction struct {
	ActionID        string                 `json:"action_id" example:"7b26115c-30c7-4fb9-9c42-a0a0c8e0f001"`
	ActionType      string                 `json:"action_type" example:"discount"`
	Priority        string                 `json:"priority" example:"high"`
	Description     string                 `json:"description" example:"25% discount for 6 months"`
	PredictedImpact float64                `json:"predicted_impact" example:"0.3"`
	EstimatedCost   float64                `json:"estimated_cost" example:"150"`
	OfferDetails    map[string]interface{} `json:"offer_details,omitempty" swaggertype:"object,string"`
	Status          string                 `json:"status" example:"pending"`
}

// ChurnPredictionResponse is the scoring result for one customer.
type ChurnPredictionResponse struct {
	CustomerID          string              `json:"customer_id" example:"CUST-000123"`
	ChurnProbability    float64             `json:"churn_probability" example:"0.92"`
	RiskLevel           string              `json:"risk_level" example:"critical"`
	PredictionTimestamp time.Time           `json:"prediction_timestamp"`
	ModelVersion        string              `json:"model_version" example:"1.0.0"`
	TopRiskFactors      []RiskFactor        `json:"top_risk_factors"`
	RecommendedActions  []RecommendedAction `json:"recommended_actions"`
}

// BatchPredictionResponse is the result of a batch scoring request.
// Customers without resolvable features are skipped, not errored.
type BatchPredictionResponse struct {
	Predictions           []ChurnPredictionResponse `json:"predictions"`
	TotalProcessed        int                       `json:"total_processed" example:"42"`
	ProcessingTimeSeconds float64                   `json:"processing_time_seconds" example:"0.31"`
}

// PredictionHistoryEntry is one past scoring decision.
type PredictionHistoryEntry struct {
	PredictionID        string    `json:"prediction_id"`
	CustomerID          string    `json:"customer_id" example:"CUST-000123"`
	ChurnProbability    float64   `json:"churn_probability" example:"0.42"`
	RiskLevel           string    `json:"risk_level" example:"medium"`
	PredictionTimestamp time.Time `json:"prediction_timestamp"`
	ModelVersion        string    `json:"model_version" example:"1.0.0"`
}

// PredictionHistoryResponse lists past scoring decisions, most recent first.
type PredictionHistoryResponse struct {
	Predictions []PredictionHistoryEntry `json:"predictions"`
}

// ExecuteActionResponse reports whether this call performed the transition.
type ExecuteActionResponse struct {
	ActionID string `json:"action_id"`
	Executed bool   `json:"executed" example:"true"`
	Status   string `json:"status" example:"executed"`
}

// PublishEventResponse acknowledges an accepted event.
type PublishEventResponse struct {
	EventID string `json:"event_id" example:"9f86d081884c7d65"`
	Status  string `json:"status" example:"accepted"`
}

// PublishBulkEventsResponse acknowledges a bulk publish.
type PublishBulkEventsResponse struct {
	Accepted int      `json:"accepted" example:"5"`
	Rejected int      `json:"rejected" example:"0"`
	EventIDs []string `json:"event_ids,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

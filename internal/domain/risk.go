package domain

import "time"

// RiskLevel is the discretized churn probability. Levels are ordered:
// low < medium < high < critical.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Rank returns the ordinal position of the level, for ordering comparisons.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	}
	return -1
}

// RiskFactor is a single signal contributing to a customer's churn risk.
type RiskFactor struct {
	Factor string  `json:"factor"`
	Value  float64 `json:"value"`
	Impact string  `json:"impact"`
}

// RiskAssessment is the append-only audit record of a scoring decision.
type RiskAssessment struct {
	PredictionID     string
	CustomerID       string
	ChurnProbability float64
	RiskLevel        RiskLevel
	HorizonDays      int
	ModelVersion     string
	TopRiskFactors   []RiskFactor
	Timestamp        time.Time
}

package scoring

import (
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/config"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

// Thresholds classifies a churn probability into an ordered risk level.
// Boundaries are inclusive on the upper side: probability >= critical maps to
// critical, and so on down.
type Thresholds struct {
	Critical float64
	High     float64
	Medium   float64
}

// ThresholdsFromConfig builds the classifier from configuration.
func ThresholdsFromConfig(cfg config.Risk) Thresholds {
	return Thresholds{
		Critical: cfg.CriticalThreshold,
		High:     cfg.HighThreshold,
		Medium:   cfg.MediumThreshold,
	}
}

// Classify maps probability to a risk level. Monotonically non-decreasing in
// probability for fixed thresholds.
func (t Thresholds) Classify(probability float64) domain.RiskLevel {
	switch {
	case probability >= t.Critical:
		return domain.RiskCritical
	case probability >= t.High:
		return domain.RiskHigh
	case probability >= t.Medium:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

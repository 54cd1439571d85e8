package scoring

import "github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"

const maxRiskFactors = 5

// TopRiskFactors extracts the leading risk signals from a feature vector for
// the prediction response and audit record.
func TopRiskFactors(fv domain.FeatureVector) []domain.RiskFactor {
	var factors []domain.RiskFactor

	if fv.PaymentFailures90d > 0 {
		factors = append(factors, domain.RiskFactor{
			Factor: "payment_failures",
			Value:  float64(fv.PaymentFailures90d),
			Impact: "high",
		})
	}
	if fv.DaysOverdue > 0 {
		factors = append(factors, domain.RiskFactor{
			Factor: "days_overdue",
			Value:  float64(fv.DaysOverdue),
			Impact: "high",
		})
	}
	if fv.UnresolvedCalls30d > 2 {
		factors = append(factors, domain.RiskFactor{
			Factor: "unresolved_service_calls",
			Value:  float64(fv.UnresolvedCalls30d),
			Impact: "medium",
		})
	}
	if fv.AvgSentiment30d < -0.3 {
		factors = append(factors, domain.RiskFactor{
			Factor: "negative_sentiment",
			Value:  fv.AvgSentiment30d,
			Impact: "medium",
		})
	}

	if len(factors) > maxRiskFactors {
		factors = factors[:maxRiskFactors]
	}
	return factors
}

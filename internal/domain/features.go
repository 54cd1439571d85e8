package domain

import "time"

// FeatureVector is the fully dense set of per-customer signals fed to the
// scorer. Absent signal maps to the neutral default of each field, never to a
// missing entry.
type FeatureVector struct {
	CustomerSegment         string  `json:"customer_segment"`
	TenureDays              int     `json:"tenure_days"`
	MonthlyRecurringRevenue float64 `json:"monthly_recurring_revenue"`
	LifetimeValue           float64 `json:"lifetime_value"`
	AutoRenew               int     `json:"auto_renew"`
	DaysUntilContractEnd    int     `json:"days_until_contract_end"`

	ServiceCalls30d    int     `json:"service_calls_30d"`
	AvgSentiment30d    float64 `json:"avg_sentiment_30d"`
	UnresolvedCalls30d int     `json:"unresolved_calls_30d"`
	AvgCallDuration30d float64 `json:"avg_call_duration_30d"`
	DaysSinceLastCall  int     `json:"days_since_last_call"`

	STBErrors30d         int     `json:"stb_errors_30d"`
	AvgNetworkQuality30d float64 `json:"avg_network_quality_30d"`
	TotalBufferEvents30d int     `json:"total_buffer_events_30d"`
	TotalViewingHours30d float64 `json:"total_viewing_hours_30d"`

	WebSessions30d            int     `json:"web_sessions_30d"`
	TotalEngagementMinutes30d float64 `json:"total_engagement_minutes_30d"`
	DaysSinceLastWebActivity  int     `json:"days_since_last_web_activity"`

	PaymentFailures90d int     `json:"payment_failures_90d"`
	Disputes90d        int     `json:"disputes_90d"`
	DaysOverdue        int     `json:"days_overdue"`
	AccountBalance     float64 `json:"account_balance"`

	EngagementScore float64 `json:"engagement_score"`
	RiskScore       float64 `json:"risk_score"`
}

// Numeric returns the numeric feature values keyed by feature name, the form
// scorers consume.
func (fv FeatureVector) Numeric() map[string]float64 {
	return map[string]float64{
		"tenure_days":                  float64(fv.TenureDays),
		"monthly_recurring_revenue":    fv.MonthlyRecurringRevenue,
		"lifetime_value":               fv.LifetimeValue,
		"auto_renew":                   float64(fv.AutoRenew),
		"days_until_contract_end":      float64(fv.DaysUntilContractEnd),
		"service_calls_30d":            float64(fv.ServiceCalls30d),
		"avg_sentiment_30d":            fv.AvgSentiment30d,
		"unresolved_calls_30d":         float64(fv.UnresolvedCalls30d),
		"avg_call_duration_30d":        fv.AvgCallDuration30d,
		"days_since_last_call":         float64(fv.DaysSinceLastCall),
		"stb_errors_30d":               float64(fv.STBErrors30d),
		"avg_network_quality_30d":      fv.AvgNetworkQuality30d,
		"total_buffer_events_30d":      float64(fv.TotalBufferEvents30d),
		"total_viewing_hours_30d":      fv.TotalViewingHours30d,
		"web_sessions_30d":             float64(fv.WebSessions30d),
		"total_engagement_minutes_30d": fv.TotalEngagementMinutes30d,
		"days_since_last_web_activity": float64(fv.DaysSinceLastWebActivity),
		"payment_failures_90d":         float64(fv.PaymentFailures90d),
		"disputes_90d":                 float64(fv.Disputes90d),
		"days_overdue":                 float64(fv.DaysOverdue),
		"account_balance":              fv.AccountBalance,
		"engagement_score":             fv.EngagementScore,
		"risk_score":                   fv.RiskScore,
	}
}

// CachedFeatures is the cache entry for a computed feature vector.
type CachedFeatures struct {
	Features   FeatureVector `json:"features"`
	ComputedAt time.Time     `json:"computed_at"`
}

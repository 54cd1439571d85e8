package domain

import "time"

// CustomerProfile holds the demographic and contract attributes of a customer.
// Owned by the CRM; read-only here.
type CustomerProfile struct {
	CustomerID              string
	Segment                 string
	AgeRange                string
	HouseholdSize           int32
	PlanID                  string
	MonthlyRecurringRevenue *float64
	LifetimeValue           *float64
	AccountCreatedDate      time.Time
	ContractEndDate         *time.Time
	AutoRenew               bool
}

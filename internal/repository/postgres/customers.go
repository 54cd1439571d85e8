package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

// CustomerRepository reads customer master data from postgres.
type CustomerRepository struct {
	client *Client
	log    *zap.Logger
}

// NewCustomerRepository creates a new customer repository.
func NewCustomerRepository(client *Client, log *zap.Logger) *CustomerRepository {
	return &CustomerRepository{client: client, log: log}
}

// GetProfile returns the profile for customerID, or domain.ErrNotFound.
func (r *CustomerRepository) GetProfile(ctx context.Context, customerID string) (*domain.CustomerProfile, error) {
	var p domain.CustomerProfile
	err := r.client.Pool().QueryRow(ctx, `
		SELECT customer_id, customer_segment, COALESCE(age_range, ''), COALESCE(household_size, 0),
		       COALESCE(plan_id, ''), monthly_recurring_revenue, lifetime_value,
		       account_created_date, contract_end_date, COALESCE(auto_renew, TRUE)
		FROM customers
		WHERE customer_id = $1`, customerID).
		Scan(&p.CustomerID, &p.Segment, &p.AgeRange, &p.HouseholdSize,
			&p.PlanID, &p.MonthlyRecurringRevenue, &p.LifetimeValue,
			&p.AccountCreatedDate, &p.ContractEndDate, &p.AutoRenew)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("customer %s: %w", customerID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query customer %s: %w", customerID, err)
	}
	return &p, nil
}

package clickhouse

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

// Repository implements repository.EventStore for ClickHouse. Each event kind
// gets its own table; windowed aggregate reads filter on (customer_id,
// timestamp) which matches the sort key.
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse event store.
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS service_interactions (
		event_id String,
		customer_id String,
		timestamp DateTime64(3),
		channel LowCardinality(String),
		duration_seconds Int32,
		reason_category LowCardinality(String),
		resolution_status LowCardinality(String),
		agent_id String,
		sentiment_score Nullable(Float64),
		transfer_count Int32
	) ENGINE = ReplacingMergeTree
	ORDER BY (customer_id, timestamp, event_id)
	PARTITION BY toYYYYMM(timestamp)`,

	`CREATE TABLE IF NOT EXISTS device_telemetry (
		event_id String,
		device_id String,
		customer_id String,
		timestamp DateTime64(3),
		event_type LowCardinality(String),
		channel_id String,
		content_id String,
		viewing_duration_seconds Int32,
		error_code String,
		buffer_events Int32,
		network_quality Nullable(Float64)
	) ENGINE = ReplacingMergeTree
	ORDER BY (customer_id, timestamp, event_id)
	PARTITION BY toYYYYMM(timestamp)`,

	`CREATE TABLE IF NOT EXISTS web_engagement (
		event_id String,
		customer_id String,
		session_id String,
		timestamp DateTime64(3),
		event_name LowCardinality(String),
		page_url String,
		device_category LowCardinality(String),
		app_version String,
		engagement_time_msec Int64
	) ENGINE = ReplacingMergeTree
	ORDER BY (customer_id, timestamp, event_id)
	PARTITION BY toYYYYMM(timestamp)`,

	`CREATE TABLE IF NOT EXISTS billing_events (
		event_id String,
		event_type LowCardinality(String),
		customer_id String,
		timestamp DateTime64(3),
		transaction_id String,
		amount Float64,
		payment_method LowCardinality(String),
		billing_cycle_day Int32,
		account_balance Float64,
		days_overdue Int32
	) ENGINE = ReplacingMergeTree
	ORDER BY (customer_id, timestamp, event_id)
	PARTITION BY toYYYYMM(timestamp)`,
}

// InitSchema creates the four event tables.
func (r *Repository) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if err := r.client.Conn().Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create event table: %w", err)
		}
	}
	r.log.Info("ClickHouse schema initialized")
	return nil
}

// InsertEvent persists exactly one typed record.
func (r *Repository) InsertEvent(ctx context.Context, rec domain.EventRecord) error {
	switch e := rec.(type) {
	case *domain.ServiceInteraction:
		return r.exec(ctx, `INSERT INTO service_interactions
			(event_id, customer_id, timestamp, channel, duration_seconds, reason_category, resolution_status, agent_id, sentiment_score, transfer_count)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.EventID, e.CustomerID, e.Timestamp, e.Channel, e.DurationSeconds,
			e.ReasonCategory, e.ResolutionStatus, e.AgentID, e.SentimentScore, e.TransferCount)
	case *domain.DeviceTelemetry:
		return r.exec(ctx, `INSERT INTO device_telemetry
			(event_id, device_id, customer_id, timestamp, event_type, channel_id, content_id, viewing_duration_seconds, error_code, buffer_events, network_quality)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.EventID, e.DeviceID, e.CustomerID, e.Timestamp, e.EventType, e.ChannelID,
			e.ContentID, e.ViewingDurationSeconds, e.ErrorCode, e.BufferEvents, e.NetworkQuality)
	case *domain.WebEngagement:
		return r.exec(ctx, `INSERT INTO web_engagement
			(event_id, customer_id, session_id, timestamp, event_name, page_url, device_category, app_version, engagement_time_msec)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.EventID, e.CustomerID, e.SessionID, e.Timestamp, e.EventName,
			e.PageURL, e.DeviceCategory, e.AppVersion, e.EngagementTimeMsec)
	case *domain.BillingEvent:
		return r.exec(ctx, `INSERT INTO billing_events
			(event_id, event_type, customer_id, timestamp, transaction_id, amount, payment_method, billing_cycle_day, account_balance, days_overdue)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.EventID, e.EventType, e.CustomerID, e.Timestamp, e.TransactionID,
			e.Amount, e.PaymentMethod, e.BillingCycleDay, e.AccountBalance, e.DaysOverdue)
	default:
		return fmt.Errorf("unknown event record kind: %s", rec.Kind())
	}
}

func (r *Repository) exec(ctx context.Context, query string, args ...interface{}) error {
	if err := r.client.Conn().Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// ServiceInteractionsSince returns interactions in the trailing window.
func (r *Repository) ServiceInteractionsSince(ctx context.Context, customerID string, since time.Time) ([]domain.ServiceInteraction, error) {
	rows, err := r.client.Conn().Query(ctx, `
		SELECT event_id, customer_id, timestamp, channel, duration_seconds, reason_category, resolution_status, agent_id, sentiment_score, transfer_count
		FROM service_interactions FINAL
		WHERE customer_id = ? AND timestamp >= ?
		ORDER BY timestamp`, customerID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query service interactions: %w", err)
	}
	defer rows.Close()

	var out []domain.ServiceInteraction
	for rows.Next() {
		var e domain.ServiceInteraction
		if err := rows.Scan(&e.EventID, &e.CustomerID, &e.Timestamp, &e.Channel, &e.DurationSeconds,
			&e.ReasonCategory, &e.ResolutionStatus, &e.AgentID, &e.SentimentScore, &e.TransferCount); err != nil {
			return nil, fmt.Errorf("failed to scan service interaction: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// DeviceTelemetrySince returns telemetry events in the trailing window.
func (r *Repository) DeviceTelemetrySince(ctx context.Context, customerID string, since time.Time) ([]domain.DeviceTelemetry, error) {
	rows, err := r.client.Conn().Query(ctx, `
		SELECT event_id, device_id, customer_id, timestamp, event_type, channel_id, content_id, viewing_duration_seconds, error_code, buffer_events, network_quality
		FROM device_telemetry FINAL
		WHERE customer_id = ? AND timestamp >= ?
		ORDER BY timestamp`, customerID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query device telemetry: %w", err)
	}
	defer rows.Close()

	var out []domain.DeviceTelemetry
	for rows.Next() {
		var e domain.DeviceTelemetry
		if err := rows.Scan(&e.EventID, &e.DeviceID, &e.CustomerID, &e.Timestamp, &e.EventType, &e.ChannelID,
			&e.ContentID, &e.ViewingDurationSeconds, &e.ErrorCode, &e.BufferEvents, &e.NetworkQuality); err != nil {
			return nil, fmt.Errorf("failed to scan device telemetry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// WebEngagementSince returns web events in the trailing window.
func (r *Repository) WebEngagementSince(ctx context.Context, customerID string, since time.Time) ([]domain.WebEngagement, error) {
	rows, err := r.client.Conn().Query(ctx, `
		SELECT event_id, customer_id, session_id, timestamp, event_name, page_url, device_category, app_version, engagement_time_msec
		FROM web_engagement FINAL
		WHERE customer_id = ? AND timestamp >= ?
		ORDER BY timestamp`, customerID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query web engagement: %w", err)
	}
	defer rows.Close()

	var out []domain.WebEngagement
	for rows.Next() {
		var e domain.WebEngagement
		if err := rows.Scan(&e.EventID, &e.CustomerID, &e.SessionID, &e.Timestamp, &e.EventName,
			&e.PageURL, &e.DeviceCategory, &e.AppVersion, &e.EngagementTimeMsec); err != nil {
			return nil, fmt.Errorf("failed to scan web engagement: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// BillingEventsSince returns billing events in the trailing window, most
// recent first.
func (r *Repository) BillingEventsSince(ctx context.Context, customerID string, since time.Time) ([]domain.BillingEvent, error) {
	rows, err := r.client.Conn().Query(ctx, `
		SELECT event_id, event_type, customer_id, timestamp, transaction_id, amount, payment_method, billing_cycle_day, account_balance, days_overdue
		FROM billing_events FINAL
		WHERE customer_id = ? AND timestamp >= ?
		ORDER BY timestamp DESC`, customerID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query billing events: %w", err)
	}
	defer rows.Close()

	var out []domain.BillingEvent
	for rows.Next() {
		var e domain.BillingEvent
		if err := rows.Scan(&e.EventID, &e.EventType, &e.CustomerID, &e.Timestamp, &e.TransactionID,
			&e.Amount, &e.PaymentMethod, &e.BillingCycleDay, &e.AccountBalance, &e.DaysOverdue); err != nil {
			return nil, fmt.Errorf("failed to scan billing event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Ping checks if the ClickHouse connection is alive.
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection.
func (r *Repository) Close() error {
	return r.client.Close()
}

package consumer

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

// JSONEventRouter parses JSON event payloads into typed records, validating
// the mandatory fields of each source kind. Invalid events are rejected with
// a domain.ValidationError and never persisted.
type JSONEventRouter struct{}

// NewJSONEventRouter creates a new JSON event router.
func NewJSONEventRouter() *JSONEventRouter {
	return &JSONEventRouter{}
}

type commonPayload struct {
	EventID    string `json:"event_id"`
	Source     string `json:"source"`
	CustomerID string `json:"customer_id"`
	Timestamp  string `json:"timestamp"`
}

// Route classifies and validates one message body. An empty source falls back
// to the payload's source field.
func (r *JSONEventRouter) Route(source domain.SourceKind, body []byte) (domain.EventRecord, error) {
	var common commonPayload
	if err := json.Unmarshal(body, &common); err != nil {
		return nil, &domain.ValidationError{Source: source, Field: "payload", Reason: "is not valid JSON"}
	}

	if source == "" {
		source = domain.SourceKind(common.Source)
	}

	if common.CustomerID == "" {
		return nil, &domain.ValidationError{Source: source, Field: "customer_id", Reason: "is required"}
	}
	ts, err := parseTimestamp(common.Timestamp)
	if err != nil {
		return nil, &domain.ValidationError{Source: source, Field: "timestamp", Reason: "is missing or unparsable"}
	}

	eventID := common.EventID
	if eventID == "" {
		hash := sha256.Sum256(body)
		eventID = hex.EncodeToString(hash[:])
	}

	switch source {
	case domain.SourceCustomerService:
		return r.routeServiceInteraction(body, eventID, common.CustomerID, ts)
	case domain.SourceSTBTelemetry:
		return r.routeDeviceTelemetry(body, eventID, common.CustomerID, ts)
	case domain.SourceWebAnalytics:
		return r.routeWebEngagement(body, eventID, common.CustomerID, ts)
	case domain.SourceBilling:
		return r.routeBillingEvent(body, eventID, common.CustomerID, ts)
	default:
		return nil, &domain.ValidationError{Source: source, Field: "source", Reason: fmt.Sprintf("is unknown: %q", source)}
	}
}

func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("timestamp is empty")
	}
	return time.Parse(time.RFC3339, raw)
}

func (r *JSONEventRouter) routeServiceInteraction(body []byte, eventID, customerID string, ts time.Time) (domain.EventRecord, error) {
	var p struct {
		Channel          string   `json:"channel"`
		DurationSeconds  int32    `json:"duration_seconds"`
		ReasonCategory   string   `json:"reason_category"`
		ResolutionStatus string   `json:"resolution_status"`
		AgentID          string   `json:"agent_id"`
		SentimentScore   *float64 `json:"sentiment_score"`
		TransferCount    int32    `json:"transfer_count"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &domain.ValidationError{Source: domain.SourceCustomerService, Field: "payload", Reason: "has malformed fields"}
	}
	if p.Channel == "" {
		return nil, &domain.ValidationError{Source: domain.SourceCustomerService, Field: "channel", Reason: "is required"}
	}
	if p.ResolutionStatus == "" {
		return nil, &domain.ValidationError{Source: domain.SourceCustomerService, Field: "resolution_status", Reason: "is required"}
	}

	return &domain.ServiceInteraction{
		EventID:          eventID,
		CustomerID:       customerID,
		Timestamp:        ts,
		Channel:          p.Channel,
		DurationSeconds:  p.DurationSeconds,
		ReasonCategory:   p.ReasonCategory,
		ResolutionStatus: p.ResolutionStatus,
		AgentID:          p.AgentID,
		SentimentScore:   p.SentimentScore,
		TransferCount:    p.TransferCount,
	}, nil
}

func (r *JSONEventRouter) routeDeviceTelemetry(body []byte, eventID, customerID string, ts time.Time) (domain.EventRecord, error) {
	var p struct {
		DeviceID               string   `json:"device_id"`
		EventType              string   `json:"event_type"`
		ChannelID              string   `json:"channel_id"`
		ContentID              string   `json:"content_id"`
		ViewingDurationSeconds int32    `json:"viewing_duration_seconds"`
		ErrorCode              string   `json:"error_code"`
		BufferEvents           int32    `json:"buffer_events"`
		NetworkQuality         *float64 `json:"network_quality"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &domain.ValidationError{Source: domain.SourceSTBTelemetry, Field: "payload", Reason: "has malformed fields"}
	}
	if p.DeviceID == "" {
		return nil, &domain.ValidationError{Source: domain.SourceSTBTelemetry, Field: "device_id", Reason: "is required"}
	}
	if p.EventType == "" {
		return nil, &domain.ValidationError{Source: domain.SourceSTBTelemetry, Field: "event_type", Reason: "is required"}
	}

	return &domain.DeviceTelemetry{
		EventID:                eventID,
		DeviceID:               p.DeviceID,
		CustomerID:             customerID,
		Timestamp:              ts,
		EventType:              p.EventType,
		ChannelID:              p.ChannelID,
		ContentID:              p.ContentID,
		ViewingDurationSeconds: p.ViewingDurationSeconds,
		ErrorCode:              p.ErrorCode,
		BufferEvents:           p.BufferEvents,
		NetworkQuality:         p.NetworkQuality,
	}, nil
}

func (r *JSONEventRouter) routeWebEngagement(body []byte, eventID, customerID string, ts time.Time) (domain.EventRecord, error) {
	var p struct {
		SessionID          string `json:"session_id"`
		EventName          string `json:"event_name"`
		PageURL            string `json:"page_url"`
		DeviceCategory     string `json:"device_category"`
		AppVersion         string `json:"app_version"`
		EngagementTimeMsec int64  `json:"engagement_time_msec"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &domain.ValidationError{Source: domain.SourceWebAnalytics, Field: "payload", Reason: "has malformed fields"}
	}
	if p.SessionID == "" {
		return nil, &domain.ValidationError{Source: domain.SourceWebAnalytics, Field: "session_id", Reason: "is required"}
	}
	if p.EventName == "" {
		return nil, &domain.ValidationError{Source: domain.SourceWebAnalytics, Field: "event_name", Reason: "is required"}
	}

	return &domain.WebEngagement{
		EventID:            eventID,
		CustomerID:         customerID,
		SessionID:          p.SessionID,
		Timestamp:          ts,
		EventName:          p.EventName,
		PageURL:            p.PageURL,
		DeviceCategory:     p.DeviceCategory,
		AppVersion:         p.AppVersion,
		EngagementTimeMsec: p.EngagementTimeMsec,
	}, nil
}

func (r *JSONEventRouter) routeBillingEvent(body []byte, eventID, customerID string, ts time.Time) (domain.EventRecord, error) {
	var p struct {
		EventType       string  `json:"event_type"`
		TransactionID   string  `json:"transaction_id"`
		Amount          float64 `json:"amount"`
		PaymentMethod   string  `json:"payment_method"`
		BillingCycleDay int32   `json:"billing_cycle_day"`
		AccountBalance  float64 `json:"account_balance"`
		DaysOverdue     int32   `json:"days_overdue"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, &domain.ValidationError{Source: domain.SourceBilling, Field: "payload", Reason: "has malformed fields"}
	}
	if p.TransactionID == "" {
		return nil, &domain.ValidationError{Source: domain.SourceBilling, Field: "transaction_id", Reason: "is required"}
	}
	if p.EventType == "" {
		return nil, &domain.ValidationError{Source: domain.SourceBilling, Field: "event_type", Reason: "is required"}
	}

	return &domain.BillingEvent{
		EventID:         eventID,
		EventType:       p.EventType,
		CustomerID:      customerID,
		Timestamp:       ts,
		TransactionID:   p.TransactionID,
		Amount:          p.Amount,
		PaymentMethod:   p.PaymentMethod,
		BillingCycleDay: p.BillingCycleDay,
		AccountBalance:  p.AccountBalance,
		DaysOverdue:     p.DaysOverdue,
	}, nil
}

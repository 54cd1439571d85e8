package domain

import "time"

// SourceKind identifies the event channel an ingested record came from.
type SourceKind string

const (
	SourceCustomerService SourceKind = "customer-service"
	SourceSTBTelemetry    SourceKind = "stb-telemetry"
	SourceWebAnalytics    SourceKind = "web-analytics"
	SourceBilling         SourceKind = "billing"
)

// EventRecord is the common shape of the four typed event records.
// Records are immutable once persisted.
type EventRecord interface {
	Kind() SourceKind
	Customer() string
	EventTime() time.Time
	ID() string
}

// ServiceInteraction is a call-center or chat interaction.
type ServiceInteraction struct {
	EventID          string    `ch:"event_id"`
	CustomerID       string    `ch:"customer_id"`
	Timestamp        time.Time `ch:"timestamp"`
	Channel          string    `ch:"channel"`
	DurationSeconds  int32     `ch:"duration_seconds"`
	ReasonCategory   string    `ch:"reason_category"`
	ResolutionStatus string    `ch:"resolution_status"`
	AgentID          string    `ch:"agent_id"`
	SentimentScore   *float64  `ch:"sentiment_score"`
	TransferCount    int32     `ch:"transfer_count"`
}

func (e *ServiceInteraction) Kind() SourceKind     { return SourceCustomerService }
func (e *ServiceInteraction) Customer() string     { return e.CustomerID }
func (e *ServiceInteraction) EventTime() time.Time { return e.Timestamp }
func (e *ServiceInteraction) ID() string           { return e.EventID }

// DeviceTelemetry is a set-top box telemetry event.
type DeviceTelemetry struct {
	EventID                string    `ch:"event_id"`
	DeviceID               string    `ch:"device_id"`
	CustomerID             string    `ch:"customer_id"`
	Timestamp              time.Time `ch:"timestamp"`
	EventType              string    `ch:"event_type"`
	ChannelID              string    `ch:"channel_id"`
	ContentID              string    `ch:"content_id"`
	ViewingDurationSeconds int32     `ch:"viewing_duration_seconds"`
	ErrorCode              string    `ch:"error_code"`
	BufferEvents           int32     `ch:"buffer_events"`
	NetworkQuality         *float64  `ch:"network_quality"`
}

func (e *DeviceTelemetry) Kind() SourceKind     { return SourceSTBTelemetry }
func (e *DeviceTelemetry) Customer() string     { return e.CustomerID }
func (e *DeviceTelemetry) EventTime() time.Time { return e.Timestamp }
func (e *DeviceTelemetry) ID() string           { return e.EventID }

// WebEngagement is a web or mobile app analytics event.
type WebEngagement struct {
	EventID            string    `ch:"event_id"`
	CustomerID         string    `ch:"customer_id"`
	SessionID          string    `ch:"session_id"`
	Timestamp          time.Time `ch:"timestamp"`
	EventName          string    `ch:"event_name"`
	PageURL            string    `ch:"page_url"`
	DeviceCategory     string    `ch:"device_category"`
	AppVersion         string    `ch:"app_version"`
	EngagementTimeMsec int64     `ch:"engagement_time_msec"`
}

func (e *WebEngagement) Kind() SourceKind     { return SourceWebAnalytics }
func (e *WebEngagement) Customer() string     { return e.CustomerID }
func (e *WebEngagement) EventTime() time.Time { return e.Timestamp }
func (e *WebEngagement) ID() string           { return e.EventID }

// BillingEvent is a billing or payment event.
type BillingEvent struct {
	EventID         string    `ch:"event_id"`
	EventType       string    `ch:"event_type"`
	CustomerID      string    `ch:"customer_id"`
	Timestamp       time.Time `ch:"timestamp"`
	TransactionID   string    `ch:"transaction_id"`
	Amount          float64   `ch:"amount"`
	PaymentMethod   string    `ch:"payment_method"`
	BillingCycleDay int32     `ch:"billing_cycle_day"`
	AccountBalance  float64   `ch:"account_balance"`
	DaysOverdue     int32     `ch:"days_overdue"`
}

func (e *BillingEvent) Kind() SourceKind     { return SourceBilling }
func (e *BillingEvent) Customer() string     { return e.CustomerID }
func (e *BillingEvent) EventTime() time.Time { return e.Timestamp }
func (e *BillingEvent) ID() string           { return e.EventID }

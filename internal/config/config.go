package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Service struct {
	Environment     string `envconfig:"SERVICE_ENVIRONMENT" required:"true"`
	APIPort         string `envconfig:"SERVICE_API_PORT" default:"8080"`
	Host            string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
	HealthCheckPort string `envconfig:"SERVICE_HEALTH_CHECK_PORT" default:"8081"`
}

type SQS struct {
	Endpoint string `envconfig:"SQS_ENDPOINT"`
	QueueURL string `envconfig:"SQS_QUEUE_URL" required:"true"`
	Region   string `envconfig:"SQS_REGION" required:"true"`
}

type ClickHouse struct {
	Host            string `envconfig:"CLICKHOUSE_HOST" required:"true"`
	Port            string `envconfig:"CLICKHOUSE_PORT" required:"true"`
	Database        string `envconfig:"CLICKHOUSE_DB" required:"true"`
	User            string `envconfig:"CLICKHOUSE_USER" default:""`
	Password        string `envconfig:"CLICKHOUSE_PASSWORD" default:""`
	UseTLS          bool   `envconfig:"CLICKHOUSE_USE_TLS" default:"false"`
	MaxOpenConns    int    `envconfig:"CLICKHOUSE_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int    `envconfig:"CLICKHOUSE_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime int    `envconfig:"CLICKHOUSE_CONN_MAX_LIFETIME_SEC" default:"3600"`
}

type Postgres struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     string `envconfig:"POSTGRES_PORT" default:"5432"`
	Database string `envconfig:"POSTGRES_DB" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	MaxConns int    `envconfig:"POSTGRES_MAX_CONNS" default:"10"`
}

type Redis struct {
	Host                string `envconfig:"REDIS_HOST" required:"true"`
	Port                string `envconfig:"REDIS_PORT" default:"6379"`
	Password            string `envconfig:"REDIS_PASSWORD" default:""`
	IdempotencyEnabled  bool   `envconfig:"REDIS_IDEMPOTENCY_ENABLED" default:"true"`
	IdempotencyFailOpen bool   `envconfig:"REDIS_IDEMPOTENCY_FAIL_OPEN" default:"true"`
	IdempotencyTTLSec   int    `envconfig:"REDIS_IDEMPOTENCY_TTL_SEC" default:"86400"`
}

type Consumer struct {
	MaxMessages     int32 `envconfig:"CONSUMER_MAX_MESSAGES" default:"10"`
	WaitTimeSeconds int32 `envconfig:"CONSUMER_WAIT_TIME_SEC" default:"20"`
	BufferSize      int   `envconfig:"CONSUMER_BUFFER_SIZE" default:"100"`
}

// Features holds the windowed-aggregation and cache parameters of the
// feature computation engine.
type Features struct {
	ServiceWindowDays   int `envconfig:"FEATURES_SERVICE_WINDOW_DAYS" default:"30"`
	TelemetryWindowDays int `envconfig:"FEATURES_TELEMETRY_WINDOW_DAYS" default:"30"`
	WebWindowDays       int `envconfig:"FEATURES_WEB_WINDOW_DAYS" default:"30"`
	BillingWindowDays   int `envconfig:"FEATURES_BILLING_WINDOW_DAYS" default:"90"`
	CacheTTLSec         int `envconfig:"FEATURES_CACHE_TTL_SEC" default:"300"`
}

// CacheTTL returns the online feature cache TTL as a duration.
func (f Features) CacheTTL() time.Duration {
	return time.Duration(f.CacheTTLSec) * time.Second
}

// Risk holds the ordered classification thresholds. Critical > High > Medium.
type Risk struct {
	CriticalThreshold float64 `envconfig:"RISK_THRESHOLD_CRITICAL" default:"0.8"`
	HighThreshold     float64 `envconfig:"RISK_THRESHOLD_HIGH" default:"0.6"`
	MediumThreshold   float64 `envconfig:"RISK_THRESHOLD_MEDIUM" default:"0.3"`
}

// Actions holds the retention-offer business parameters.
type Actions struct {
	CriticalDiscountCapPct float64 `envconfig:"ACTIONS_CRITICAL_DISCOUNT_CAP_PCT" default:"25"`
	HighDiscountCapPct     float64 `envconfig:"ACTIONS_HIGH_DISCOUNT_CAP_PCT" default:"15"`
	MediumDiscountCapPct   float64 `envconfig:"ACTIONS_MEDIUM_DISCOUNT_CAP_PCT" default:"10"`
	LoyaltyLTVThreshold    float64 `envconfig:"ACTIONS_LOYALTY_LTV_THRESHOLD" default:"1000"`
	LoyaltyRewardAmount    float64 `envconfig:"ACTIONS_LOYALTY_REWARD_AMOUNT" default:"100"`
}

type Model struct {
	WeightsPath string `envconfig:"MODEL_WEIGHTS_PATH" default:""`
}

type Config struct {
	Service    Service
	SQS        SQS
	ClickHouse ClickHouse
	Postgres   Postgres
	Redis      Redis
	Consumer   Consumer
	Features   Features
	Risk       Risk
	Actions    Actions
	Model      Model
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if !(cfg.Risk.CriticalThreshold > cfg.Risk.HighThreshold && cfg.Risk.HighThreshold > cfg.Risk.MediumThreshold) {
		return nil, fmt.Errorf("risk thresholds must be ordered critical > high > medium, got %v > %v > %v",
			cfg.Risk.CriticalThreshold, cfg.Risk.HighThreshold, cfg.Risk.MediumThreshold)
	}

	return &cfg, nil
}

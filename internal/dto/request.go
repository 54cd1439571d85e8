package dto

// ChurnPredictionRequest asks for a churn score for one customer.
type ChurnPredictionRequest struct {
	CustomerID            string `json:"customer_id" binding:"required" example:"CUST-000123"`
	PredictionHorizonDays int    `json:"prediction_horizon_days" binding:"omitempty,min=1,max=90" example:"30"`
}

// BatchPredictionRequest asks for churn scores for up to 1000 customers.
type BatchPredictionRequest struct {
	CustomerIDs           []string `json:"customer_ids" binding:"required,min=1,max=1000" example:"CUST-000123,CUST-000456"`
	PredictionHorizonDays int      `json:"prediction_horizon_days" binding:"omitempty,min=1,max=90" example:"30"`
}

// PredictionHistoryRequest filters the prediction audit log.
type PredictionHistoryRequest struct {
	CustomerID string `form:"customer_id" example:"CUST-000123"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=1000" example:"100"`
}

// ExecuteActionRequest triggers a pending retention action.
type ExecuteActionRequest struct {
	ActionID   string `json:"action_id" binding:"required,uuid" example:"7b26115c-30c7-4fb9-9c42-a0a0c8e0f001"`
	CustomerID string `json:"customer_id" binding:"required" example:"CUST-000123"`
}

// PublishEventRequest publishes one raw business event to the ingestion bus.
type PublishEventRequest struct {
	Source  string                 `json:"source" binding:"required,oneof=customer-service stb-telemetry web-analytics billing" example:"billing"`
	Payload map[string]interface{} `json:"payload" binding:"required" swaggertype:"object,string" example:"customer_id:CUST-000123,event_type:payment_failed"`
}

// PublishEventsBulkRequest publishes multiple raw events.
type PublishEventsBulkRequest struct {
	Events []PublishEventRequest `json:"events" binding:"required,min=1,max=1000,dive"`
}

package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/MohithS04/Customer-Churn-Prediction-System/docs"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/dto"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/metrics"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/service"
)

type Handler struct {
	predictionService service.PredictionServicer
	eventService      service.EventServicer
	router            *gin.Engine
	log               *zap.Logger
}

func NewHandler(predictionService service.PredictionServicer, eventService service.EventServicer, log *zap.Logger) *Handler {
	h := &Handler{
		predictionService: predictionService,
		eventService:      eventService,
		router:            gin.Default(),
		log:               log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/predict/churn", h.predictChurn)
	h.router.POST("/predict/batch", h.predictBatch)
	h.router.GET("/predictions/history", h.predictionHistory)
	h.router.POST("/actions/execute", h.executeAction)
	h.router.POST("/events", h.publishEvent)
	h.router.POST("/events/bulk", h.publishEventsBulk)
	h.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// predictChurn handles POST /predict/churn
// @Summary Predict churn for a customer
// @Description Compute the churn probability, risk level, risk factors and recommended retention actions for one customer
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body dto.ChurnPredictionRequest true "Prediction request"
// @Success 200 {object} dto.ChurnPredictionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /predict/churn [post]
func (h *Handler) predictChurn(c *gin.Context) {
	var req dto.ChurnPredictionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid prediction request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	start := time.Now()
	resp, err := h.predictionService.PredictChurn(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, zap.String("customer_id", req.CustomerID))
		return
	}
	metrics.PredictionsTotal.Inc()
	metrics.PredictionLatency.Observe(time.Since(start).Seconds())

	c.JSON(http.StatusOK, resp)
}

// predictBatch handles POST /predict/batch
// @Summary Predict churn for multiple customers
// @Description Compute churn predictions for up to 1000 customers; unknown customers are skipped
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body dto.BatchPredictionRequest true "Batch prediction request"
// @Success 200 {object} dto.BatchPredictionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /predict/batch [post]
func (h *Handler) predictBatch(c *gin.Context) {
	var req dto.BatchPredictionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid batch prediction request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.predictionService.PredictBatch(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, zap.Int("customer_count", len(req.CustomerIDs)))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// predictionHistory handles GET /predictions/history
// @Summary List past predictions
// @Description List past scoring decisions, most recent first, optionally filtered by customer
// @Tags predictions
// @Produce json
// @Param customer_id query string false "Customer filter"
// @Param limit query int false "Maximum entries" default(100)
// @Success 200 {object} dto.PredictionHistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /predictions/history [get]
func (h *Handler) predictionHistory(c *gin.Context) {
	var req dto.PredictionHistoryRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid history request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.predictionService.History(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, zap.String("customer_id", req.CustomerID))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// executeAction handles POST /actions/execute
// @Summary Execute a retention action
// @Description Execute a pending retention action at most once; repeated calls report the action as already handled
// @Tags actions
// @Accept json
// @Produce json
// @Param request body dto.ExecuteActionRequest true "Action execution request"
// @Success 200 {object} dto.ExecuteActionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /actions/execute [post]
func (h *Handler) executeAction(c *gin.Context) {
	var req dto.ExecuteActionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid action execution request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.predictionService.ExecuteAction(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, zap.String("action_id", req.ActionID))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// publishEvent handles POST /events
// @Summary Publish a single event
// @Description Publish a single business event to the ingestion queue
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.PublishEventRequest true "Event data"
// @Success 202 {object} dto.PublishEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events [post]
func (h *Handler) publishEvent(c *gin.Context) {
	var req dto.PublishEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid event request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	eventID, err := h.eventService.PublishEvent(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err, zap.String("source", req.Source))
		return
	}

	h.log.Info("Event accepted",
		zap.String("event_id", eventID),
		zap.String("source", req.Source))

	c.JSON(http.StatusAccepted, dto.PublishEventResponse{
		EventID: eventID,
		Status:  "accepted",
	})
}

// publishEventsBulk handles POST /events/bulk
// @Summary Publish multiple events
// @Description Publish multiple business events in bulk to the ingestion queue
// @Tags events
// @Accept json
// @Produce json
// @Param events body dto.PublishEventsBulkRequest true "Bulk events data"
// @Success 202 {object} dto.PublishBulkEventsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/bulk [post]
func (h *Handler) publishEventsBulk(c *gin.Context) {
	var bulkRequest dto.PublishEventsBulkRequest

	if err := c.ShouldBindJSON(&bulkRequest); err != nil {
		h.log.Warn("Invalid bulk event request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	eventIDs, publishErrors, err := h.eventService.PublishBulkEvents(c.Request.Context(), bulkRequest.Events)
	if err != nil {
		h.respondError(c, err, zap.Int("event_count", len(bulkRequest.Events)))
		return
	}

	h.log.Info("Bulk events processed",
		zap.Int("accepted", len(eventIDs)),
		zap.Int("rejected", len(publishErrors)),
		zap.Int("total", len(bulkRequest.Events)))

	c.JSON(http.StatusAccepted, dto.PublishBulkEventsResponse{
		Accepted: len(eventIDs),
		Rejected: len(publishErrors),
		EventIDs: eventIDs,
		Errors:   publishErrors,
	})
}

// respondError maps domain errors to HTTP statuses.
func (h *Handler) respondError(c *gin.Context, err error, fields ...zap.Field) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrModelUnavailable):
		h.log.Error("No active model available", fields...)
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:   "model_unavailable",
			Message: err.Error(),
		})
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	default:
		h.log.Error("Request failed", append(fields, zap.Error(err))...)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}

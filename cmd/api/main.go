package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/docs"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/actions"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/cache/redis"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/config"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/features"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/handler"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/logger"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/queue/sqs"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/repository/clickhouse"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/repository/postgres"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/scoring"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/service"
)

const auditBufferSize = 1000

// @title Customer Churn Prediction API
// @version 1.0
// @description Streaming churn prediction and retention action service
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize SQS client
	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	// Initialize ClickHouse client
	clickhouseClient, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
	if err != nil {
		log.Fatal("Failed to create ClickHouse client", zap.Error(err))
	}
	defer func(clickhouseClient *clickhouse.Client) {
		if err := clickhouseClient.Close(); err != nil {
			log.Error("Failed to close ClickHouse client", zap.Error(err))
		}
	}(clickhouseClient)

	// Initialize Postgres client
	pgClient, err := postgres.NewClient(ctx, cfg.Postgres, log)
	if err != nil {
		log.Fatal("Failed to create Postgres client", zap.Error(err))
	}
	defer pgClient.Close()

	if err := pgClient.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize Postgres schema", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := redis.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to create Redis client", zap.Error(err))
	}
	defer func(redisClient *redis.Client) {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis client", zap.Error(err))
		}
	}(redisClient)

	// Initialize repositories
	eventStore := clickhouse.NewRepository(clickhouseClient, log)
	customerRepo := postgres.NewCustomerRepository(pgClient, log)
	actionRepo := postgres.NewActionRepository(pgClient, log)
	predictionRepo := postgres.NewPredictionRepository(pgClient, log)

	// Initialize feature pipeline: durable store behind a read-through cache
	engine := features.NewEngine(eventStore, customerRepo, cfg.Features, log)
	featureProvider := features.NewProvider(redisClient, engine, cfg.Features.CacheTTL(), log)

	// Initialize model registry and load the active scorer
	registry := scoring.NewRegistry()
	if cfg.Model.WeightsPath != "" {
		scorer, err := scoring.LoadLogisticScorer(cfg.Model.WeightsPath)
		if err != nil {
			log.Fatal("Failed to load model weights",
				zap.String("path", cfg.Model.WeightsPath),
				zap.Error(err))
		}
		registry.Swap(scorer)
		log.Info("Model loaded", zap.String("version", scorer.Version()))
	} else {
		log.Warn("No model weights configured, predictions will be unavailable until a model is loaded")
	}

	// Initialize recommender and audit writer
	recommender := actions.NewRecommender(customerRepo, actionRepo, cfg.Actions, log)

	auditWriter := service.NewAuditWriter(predictionRepo, auditBufferSize, log)
	go auditWriter.Start(ctx)

	// Initialize services
	predictionService := service.NewPredictionService(
		featureProvider,
		registry,
		scoring.ThresholdsFromConfig(cfg.Risk),
		recommender,
		auditWriter,
		predictionRepo,
		log,
	)
	eventService := service.NewEventService(sqsClient, log)

	// Initialize handler
	h := handler.NewHandler(predictionService, eventService, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	server := &http.Server{Addr: addr, Handler: h}

	go func() {
		log.Info("API server starting", zap.String("address", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start API server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down API server gracefully")
	if err := server.Shutdown(context.Background()); err != nil {
		log.Error("Failed to shut down API server", zap.Error(err))
	}
	cancel()
}

package consumer

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/cache"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/config"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/queue"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/repository"
)

// Consumer orchestrates a pipeline of stages to process SQS messages
type Consumer struct {
	receiver    *Receiver
	router      *RouterStage
	storeWriter *StoreWriter
	bufferSize  int
}

// NewConsumer creates a new consumer with a pipeline architecture
func NewConsumer(cfg *config.Config, queueConsumer queue.QueueConsumer, store repository.EventStore, idempotency cache.IdempotencyStore, invalidator CacheInvalidator, log *zap.Logger) *Consumer {
	receiver := NewReceiver(queueConsumer, ReceiverConfig{
		MaxMessages:     cfg.Consumer.MaxMessages,
		WaitTimeSeconds: cfg.Consumer.WaitTimeSeconds,
		BufferSize:      cfg.Consumer.BufferSize,
	}, log)

	router := NewRouterStage(queueConsumer, NewJSONEventRouter(), log)

	storeWriter := NewStoreWriter(store, idempotency, invalidator, StoreWriterConfig{
		IdempotencyEnabled:  cfg.Redis.IdempotencyEnabled,
		IdempotencyFailOpen: cfg.Redis.IdempotencyFailOpen,
		IdempotencyTTL:      time.Duration(cfg.Redis.IdempotencyTTLSec) * time.Second,
	}, log)

	return &Consumer{
		receiver:    receiver,
		router:      router,
		storeWriter: storeWriter,
		bufferSize:  cfg.Consumer.BufferSize,
	}
}

// Start begins the consumer pipeline
func (c *Consumer) Start(ctx context.Context) error {
	messageChan := make(chan types.Message, c.bufferSize)
	envelopeChan := make(chan *Envelope, c.bufferSize)

	var wg sync.WaitGroup

	// Start all pipeline stages
	wg.Add(3)

	// Stage 1: Receive messages from SQS
	go func() {
		defer wg.Done()
		c.receiver.Start(ctx, messageChan)
	}()

	// Stage 2: Route messages into typed event envelopes
	go func() {
		defer wg.Done()
		c.router.Start(ctx, messageChan, envelopeChan)
	}()

	// Stage 3: Write events to the event store
	go func() {
		defer wg.Done()
		c.storeWriter.Start(ctx, envelopeChan)
	}()

	wg.Wait()
	return nil
}

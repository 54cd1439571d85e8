package consumer

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/queue"
)

// ReceiverConfig configures the SQS receiver.
type ReceiverConfig struct {
	MaxMessages     int32
	WaitTimeSeconds int32
	BufferSize      int
}

// pollRetryDelay spaces out retries when the bus is unreachable so a broken
// connection does not spin the poll loop.
const pollRetryDelay = time.Second

// Receiver long-polls the event bus and feeds raw customer-event messages
// into the ingestion pipeline.
type Receiver struct {
	consumer queue.QueueConsumer
	config   ReceiverConfig
	log      *zap.Logger
}

// NewReceiver creates a new event bus receiver.
func NewReceiver(consumer queue.QueueConsumer, config ReceiverConfig, log *zap.Logger) *Receiver {
	return &Receiver{
		consumer: consumer,
		config:   config,
		log:      log,
	}
}

// Start polls until ctx is cancelled, closing out on exit.
func (r *Receiver) Start(ctx context.Context, out chan<- types.Message) {
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			r.log.Info("Event receiver shutting down")
			return
		default:
			if !r.poll(ctx, out) {
				return
			}
		}
	}
}

// poll runs one long-poll round and forwards every received message. It
// returns false when the pipeline is shutting down mid-batch.
func (r *Receiver) poll(ctx context.Context, out chan<- types.Message) bool {
	result, err := r.consumer.ReceiveMessages(ctx, &awssqs.ReceiveMessageInput{
		QueueUrl:              aws.String(r.consumer.QueueURL()),
		MaxNumberOfMessages:   r.config.MaxMessages,
		WaitTimeSeconds:       r.config.WaitTimeSeconds,
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		r.log.Error("Failed to poll event bus", zap.Error(err))
		time.Sleep(pollRetryDelay)
		return true
	}

	if len(result.Messages) == 0 {
		return true
	}

	r.log.Debug("Pulled customer events from the bus",
		zap.Int("event_count", len(result.Messages)))

	for _, msg := range result.Messages {
		select {
		case <-ctx.Done():
			r.log.Info("Event receiver shutting down mid-batch")
			return false
		case out <- msg:
		}
	}
	return true
}

package queue

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
)

// QueuePublisher publishes raw business events onto the ingestion bus.
type QueuePublisher interface {
	PublishEvent(ctx context.Context, source domain.SourceKind, eventID string, payload map[string]interface{}) error
}

// QueueConsumer receives and acknowledges messages from the ingestion bus.
// The bus delivers at-least-once; unacknowledged messages are redelivered.
type QueueConsumer interface {
	ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error)
	QueueURL() string
}

package consumer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/domain"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/metrics"
	"github.com/MohithS04/Customer-Churn-Prediction-System/internal/queue"
)

// RouterStage handles routing SQS messages into typed event envelopes
type RouterStage struct {
	consumer queue.QueueConsumer
	router   EventRouter
	log      *zap.Logger
}

// NewRouterStage creates a new router stage
func NewRouterStage(consumer queue.QueueConsumer, router EventRouter, log *zap.Logger) *RouterStage {
	return &RouterStage{
		consumer: consumer,
		router:   router,
		log:      log,
	}
}

// Start begins routing messages and outputs envelopes
func (p *RouterStage) Start(ctx context.Context, in <-chan types.Message, out chan<- *Envelope) {
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			p.log.Info("Router stage shutting down")
			return
		case msg, ok := <-in:
			if !ok {
				p.log.Info("Router stage input channel closed")
				return
			}

			envelope := p.routeMessage(msg)
			if envelope == nil {
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- envelope:
				// Envelope sent to next stage
			}
		}
	}
}

// routeMessage routes a single SQS message into an envelope. Events that fail
// validation are never persisted; the message stays on the bus until its
// redrive policy moves it to the dead-letter queue.
func (p *RouterStage) routeMessage(msg types.Message) *Envelope {
	body := aws.ToString(msg.Body)
	source := sourceAttribute(msg)

	record, err := p.router.Route(source, []byte(body))
	if err != nil {
		metrics.EventsRejected.WithLabelValues(string(source)).Inc()
		p.log.Warn("Rejected invalid event",
			zap.String("message_id", aws.ToString(msg.MessageId)),
			zap.String("source", string(source)),
			zap.Error(err))
		return nil
	}

	ack := func(ctx context.Context) error {
		return p.deleteMessage(ctx, msg)
	}

	nack := func(ctx context.Context) error {
		// Visibility timeout expiry handles redelivery.
		return nil
	}

	return NewEnvelope(record, ack, nack)
}

// sourceAttribute reads the message's Source attribute if the publisher set it.
func sourceAttribute(msg types.Message) domain.SourceKind {
	if attr, ok := msg.MessageAttributes["Source"]; ok && attr.StringValue != nil {
		return domain.SourceKind(*attr.StringValue)
	}
	return ""
}

// deleteMessage deletes a message from SQS
func (p *RouterStage) deleteMessage(ctx context.Context, msg types.Message) error {
	_, err := p.consumer.DeleteMessage(ctx, &awssqs.DeleteMessageInput{
		QueueUrl:      aws.String(p.consumer.QueueURL()),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		p.log.Error("Failed to delete message",
			zap.String("message_id", aws.ToString(msg.MessageId)),
			zap.Error(err))
		return err
	}
	return nil
}

// Package consumer feeds the dispatch service from an SQS queue, unwrapping
// the SNS → SQS envelope used by upstream publishers.
package consumer

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Genocadio/nitifier/models"
	"github.com/Genocadio/nitifier/services"
)

type SQSConsumer struct {
	client   *sqs.Client
	queueURL string
	service  services.DispatchService
	logger   *zap.Logger
}

func NewSQSConsumer(cfg aws.Config, queueURL string, svc services.DispatchService, logger *zap.Logger) *SQSConsumer {
	return &SQSConsumer{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
		service:  svc,
		logger:   logger,
	}
}

func (c *SQSConsumer) Start(ctx context.Context) {
	c.logger.Info("SQS consumer started", zap.String("queue", c.queueURL))
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("SQS consumer shutting down")
			return
		default:
			c.poll(ctx)
		}
	}
}

func (c *SQSConsumer) poll(ctx context.Context) {
	output, err := c.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(c.queueURL),
		MaxNumberOfMessages: 10,
		WaitTimeSeconds:     5, // long polling
	})
	if err != nil {
		c.logger.Error("SQS receive error", zap.Error(err))
		time.Sleep(5 * time.Second)
		return
	}

	for _, msg := range output.Messages {
		c.processMessage(ctx, msg.Body, msg.ReceiptHandle)
	}
}

// snsEnvelope unwraps the SNS → SQS message wrapper.
type snsEnvelope struct {
	Message string `json:"Message"`
}

// dispatchEnvelope is the queue payload: the target channel plus the raw
// request for that channel.
type dispatchEnvelope struct {
	Channel string          `json:"channel"`
	Request json.RawMessage `json:"request"`
}

func (c *SQSConsumer) processMessage(ctx context.Context, body *string, receiptHandle *string) {
	if body == nil || *body == "" {
		c.logger.Error("received empty SQS message body")
		return
	}
	if receiptHandle == nil || *receiptHandle == "" {
		c.logger.Error("received empty SQS receipt handle")
		return
	}

	correlationID := uuid.NewString()
	log := c.logger.With(zap.String("consumer_correlation_id", correlationID))

	var outer snsEnvelope
	if err := json.Unmarshal([]byte(*body), &outer); err != nil {
		log.Error("failed to unmarshal SNS envelope", zap.Error(err))
		c.deleteMessage(ctx, receiptHandle) // unparseable, do not loop forever
		return
	}

	var envelope dispatchEnvelope
	if err := json.Unmarshal([]byte(outer.Message), &envelope); err != nil {
		log.Error("failed to unmarshal dispatch envelope", zap.Error(err))
		c.deleteMessage(ctx, receiptHandle)
		return
	}

	if c.dispatch(ctx, log, envelope) {
		c.deleteMessage(ctx, receiptHandle)
	}
}

// dispatch routes the envelope to its channel path. Returns true when the
// message should be deleted: success, or a non-retryable request fault.
func (c *SQSConsumer) dispatch(ctx context.Context, log *zap.Logger, envelope dispatchEnvelope) bool {
	switch envelope.Channel {
	case models.ChannelEmail, models.ChannelSMS:
		var req models.DispatchRequest
		if err := json.Unmarshal(envelope.Request, &req); err != nil {
			log.Error("malformed dispatch request", zap.Error(err))
			return true
		}
		var result models.DispatchResult
		if envelope.Channel == models.ChannelEmail {
			result = c.service.DispatchEmail(ctx, &req)
		} else {
			result = c.service.DispatchSMS(ctx, &req)
		}
		return c.logResult(log, envelope.Channel, result)

	case "trip":
		var req models.TripDispatchRequest
		if err := json.Unmarshal(envelope.Request, &req); err != nil {
			log.Error("malformed trip request", zap.Error(err))
			return true
		}
		result := c.service.DispatchTrip(ctx, &req)
		ok := true
		if result.Email != nil {
			ok = c.logResult(log, models.ChannelEmail, *result.Email) && ok
		}
		if result.SMS != nil {
			ok = c.logResult(log, models.ChannelSMS, *result.SMS) && ok
		}
		return ok

	default:
		log.Error("unknown dispatch channel", zap.String("channel", envelope.Channel))
		return true
	}
}

// logResult reports one outcome and decides deletability: validation and
// resolution faults will not heal on redelivery, transport faults might.
func (c *SQSConsumer) logResult(log *zap.Logger, channel string, result models.DispatchResult) bool {
	if result.Success {
		log.Info("queued notification sent",
			zap.String("channel", channel),
			zap.String("recipient", result.Recipient),
			zap.String("message_id", result.MessageID),
		)
		return true
	}
	log.Warn("queued notification failed",
		zap.String("channel", channel),
		zap.String("recipient", result.Recipient),
		zap.String("detail", result.Error),
	)
	retryable := !strings.Contains(result.Message, "validation failed") &&
		!strings.Contains(result.Error, "template not found")
	return !retryable
}

func (c *SQSConsumer) deleteMessage(ctx context.Context, receiptHandle *string) {
	_, err := c.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: receiptHandle,
	})
	if err != nil {
		c.logger.Error("failed to delete SQS message", zap.Error(err))
	}
}

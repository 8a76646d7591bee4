package sender

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/aws/smithy-go"
)

// SNSSender delivers SMS through Amazon SNS, publishing directly to phone
// numbers. Alternative to Twilio, selected by configuration.
type SNSSender struct {
	client *sns.Client
}

func NewSNSSender(cfg sdkaws.Config) *SNSSender {
	return &SNSSender{client: sns.NewFromConfig(cfg)}
}

func (s *SNSSender) SendSMS(ctx context.Context, to, senderID, segmentKind, message string) (SendResult, error) {
	recipients := splitRecipients(to)
	if len(recipients) == 0 {
		return SendResult{}, fmt.Errorf("empty recipient list")
	}

	attrs := map[string]types.MessageAttributeValue{}
	if senderID != "" {
		attrs["AWS.SNS.SMS.SenderID"] = types.MessageAttributeValue{
			DataType:    sdkaws.String("String"),
			StringValue: sdkaws.String(senderID),
		}
	}

	var messageID string
	for _, recipient := range recipients {
		out, err := s.client.Publish(ctx, &sns.PublishInput{
			PhoneNumber:       sdkaws.String(recipient),
			Message:           sdkaws.String(message),
			MessageAttributes: attrs,
		})
		if err != nil {
			var apiErr smithy.APIError
			if errors.As(err, &apiErr) {
				return SendResult{}, &ProviderError{Provider: "sns", Detail: apiErr.ErrorCode() + ": " + apiErr.ErrorMessage()}
			}
			return SendResult{}, fmt.Errorf("%w: %v", ErrNoResponse, err)
		}
		if out.MessageId != nil {
			messageID = *out.MessageId
		}
	}

	return SendResult{MessageID: messageID, SentAt: time.Now()}, nil
}

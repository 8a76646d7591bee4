package sender

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// EmailSender delivers one rendered email. Both bodies are always supplied;
// implementations decide how to pack them on the wire.
type EmailSender interface {
	SendEmail(ctx context.Context, to, from, subject, textBody, htmlBody string) (SendResult, error)
}

// SMSSender delivers one rendered message to one or more recipients given
// as a comma-separated E.164 list. segmentKind is "plain" or "unicode".
type SMSSender interface {
	SendSMS(ctx context.Context, to, senderID, segmentKind, message string) (SendResult, error)
}

// ErrNoResponse marks transport failures where the provider never answered
// (connection refused, timeout). Distinguishable from a provider rejection.
var ErrNoResponse = errors.New("no response from provider")

// ProviderError is returned when the provider answered and rejected the
// message.
type ProviderError struct {
	Provider   string
	StatusCode int
	Detail     string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s rejected the message (status %d): %s", e.Provider, e.StatusCode, e.Detail)
}

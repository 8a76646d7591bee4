package sender

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

type TwilioSender struct {
	cfg        TwilioConfig
	baseURL    string
	httpClient *http.Client
}

func NewTwilioSender(cfg TwilioConfig) (*TwilioSender, error) {
	if cfg.AccountSID == "" {
		return nil, fmt.Errorf("twilio account SID not set")
	}
	if cfg.AuthToken == "" {
		return nil, fmt.Errorf("twilio auth token not set")
	}
	if cfg.FromNumber == "" {
		return nil, fmt.Errorf("twilio from number not set")
	}
	return &TwilioSender{
		cfg:        cfg,
		baseURL:    "https://api.twilio.com",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// SendSMS posts one message per recipient in the comma-separated list. The
// whole call fails on the first recipient that fails; the coordinator treats
// a grouped call as a single outcome either way. senderID and segmentKind
// are accepted for interface parity; Twilio derives the encoding itself.
func (t *TwilioSender) SendSMS(ctx context.Context, to, senderID, segmentKind, message string) (SendResult, error) {
	recipients := splitRecipients(to)
	if len(recipients) == 0 {
		return SendResult{}, fmt.Errorf("empty recipient list")
	}

	for _, recipient := range recipients {
		if err := t.sendOne(ctx, recipient, message); err != nil {
			return SendResult{}, err
		}
	}

	return SendResult{
		MessageID: fmt.Sprintf("twilio-%d", time.Now().UnixNano()),
		SentAt:    time.Now(),
	}, nil
}

func (t *TwilioSender) sendOne(ctx context.Context, to, message string) error {
	apiURL := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.baseURL, t.cfg.AccountSID)

	formData := url.Values{}
	formData.Set("To", to)
	formData.Set("From", t.cfg.FromNumber)
	formData.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL,
		strings.NewReader(formData.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(t.cfg.AccountSID, t.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return &ProviderError{Provider: "twilio", StatusCode: resp.StatusCode, Detail: string(respBody)}
	}
	return nil
}

func splitRecipients(to string) []string {
	var out []string
	for _, part := range strings.Split(to, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

package sender

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"net/textproto"
	"time"

	"github.com/google/uuid"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

type SMTPSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host not set")
	}
	if cfg.Port == "" {
		return nil, fmt.Errorf("smtp port not set")
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("smtp username not set")
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("smtp password not set")
	}
	return &SMTPSender{cfg: cfg}, nil
}

func (s *SMTPSender) SendEmail(ctx context.Context, to, from, subject, textBody, htmlBody string) (SendResult, error) {
	if to == "" {
		return SendResult{}, fmt.Errorf("empty recipient address")
	}
	if from == "" {
		from = s.cfg.Username
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	boundary := "alt-" + uuid.NewString()
	msg := []byte(
		"From: " + from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: multipart/alternative; boundary=" + boundary + "\r\n" +
			"\r\n" +
			"--" + boundary + "\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n" +
			"\r\n" +
			textBody + "\r\n" +
			"--" + boundary + "\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			htmlBody + "\r\n" +
			"--" + boundary + "--\r\n",
	)

	if err := smtp.SendMail(addr, auth, from, []string{to}, msg); err != nil {
		var tpErr *textproto.Error
		if errors.As(err, &tpErr) {
			return SendResult{}, &ProviderError{Provider: "smtp", StatusCode: tpErr.Code, Detail: tpErr.Msg}
		}
		return SendResult{}, fmt.Errorf("%w: %v", ErrNoResponse, err)
	}

	return SendResult{
		MessageID: fmt.Sprintf("smtp-%d", time.Now().UnixNano()),
		SentAt:    time.Now(),
	}, nil
}

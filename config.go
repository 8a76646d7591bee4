package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Genocadio/nitifier/sender"
	"github.com/Genocadio/nitifier/services"
)

// Config is the full process configuration, read once at startup. Everything
// downstream receives explicit structs; no package reads the environment at
// request time.
type Config struct {
	Port   string
	APIKey string

	Dispatch services.Config

	SMTP sender.SMTPConfig

	// SMSProvider selects "twilio" or "sns".
	SMSProvider string
	Twilio      sender.TwilioConfig

	// QueueURL enables the SQS consumer when non-empty.
	QueueURL string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Not an error: production supplies real environment variables.
		fmt.Fprintln(os.Stderr, "no .env file found, using system environment")
	}

	cfg := &Config{
		Port:   getEnv("PORT", "8080"),
		APIKey: os.Getenv("API_KEY"),
		Dispatch: services.Config{
			FromEmail:   os.Getenv("FROM_EMAIL"),
			SMSSenderID: getEnv("SMS_SENDER_ID", "NITIFIER"),
		},
		SMTP: sender.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
		},
		SMSProvider: getEnv("SMS_PROVIDER", "twilio"),
		Twilio: sender.TwilioConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			FromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		},
		QueueURL: getEnv("SQS_QUEUE_URL", os.Getenv("NOTIFICATION_SQS_QUEUE_URL")),
	}

	if cfg.Dispatch.FromEmail == "" {
		cfg.Dispatch.FromEmail = cfg.SMTP.Username
	}
	if cfg.SMSProvider != "twilio" && cfg.SMSProvider != "sns" {
		return nil, fmt.Errorf("unsupported SMS_PROVIDER %q", cfg.SMSProvider)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

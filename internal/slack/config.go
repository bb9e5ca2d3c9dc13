package slack

import (
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds a webhook POST end to end.
const DefaultTimeout = 10 * time.Second

// Config holds the process-wide webhook settings.
type Config struct {
	WebhookURL string
	Timeout    time.Duration
}

// DefaultConfig returns a Config with no webhook and the fixed timeout.
func DefaultConfig() Config {
	return Config{Timeout: DefaultTimeout}
}

// LoadConfig reads the webhook URL from ANNOTATIONHQ_SLACK_WEBHOOK_URL,
// falling back to SLACK_WEBHOOK_URL.
func LoadConfig() Config {
	cfg := DefaultConfig()
	for _, name := range []string{"ANNOTATIONHQ_SLACK_WEBHOOK_URL", "SLACK_WEBHOOK_URL"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			cfg.WebhookURL = v
			break
		}
	}
	return cfg
}

// Configured reports whether a default webhook is set.
func (c Config) Configured() bool {
	return c.WebhookURL != ""
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	msgSent          = "Report sent to Slack successfully!"
	msgNotConfigured = "Slack webhook URL not configured. Set SLACK_WEBHOOK_URL or slack.webhook_url in the config file."
	msgTimedOut      = "Request to Slack timed out"
)

// Result is the outcome of a delivery. Send never returns an error; every
// failure is described here.
type Result struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
	Reason     string `json:"reason,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	DeliveryID string `json:"delivery_id,omitempty"`

	err error
}

// Err returns nil on success, otherwise an error wrapping one of the
// package sentinels.
func (r Result) Err() error {
	return r.err
}

// Notifier posts rendered messages to a chat webhook.
type Notifier interface {
	// Send posts message to override when non-empty, else to the configured
	// webhook.
	Send(ctx context.Context, message, override string) Result
	Configured() bool
}

type webhookNotifier struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewWebhookNotifier creates a Notifier for incoming-webhook endpoints.
func NewWebhookNotifier(cfg Config, observer Observer) Notifier {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &webhookNotifier{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

type webhookPayload struct {
	Text   string `json:"text"`
	Mrkdwn bool   `json:"mrkdwn"`
}

func (n *webhookNotifier) Configured() bool {
	return n.cfg.Configured()
}

func (n *webhookNotifier) Send(ctx context.Context, message, override string) Result {
	start := time.Now()
	url := strings.TrimSpace(override)
	if url == "" {
		url = n.cfg.WebhookURL
	}

	res := n.deliver(ctx, url, message)
	res.DeliveryID = uuid.New().String()
	n.observer.OnDelivery(ctx, DeliveryEvent{
		DeliveryID: res.DeliveryID,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    res.Success,
		Reason:     res.Reason,
		StatusCode: res.StatusCode,
		Override:   strings.TrimSpace(override) != "",
	})
	return res
}

func (n *webhookNotifier) deliver(ctx context.Context, url, message string) Result {
	if url == "" {
		return failure(ReasonNotConfigured, msgNotConfigured, 0, ErrNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, n.cfg.timeout())
	defer cancel()

	data, err := json.Marshal(webhookPayload{Text: message, Mrkdwn: true})
	if err != nil {
		return failure(ReasonTransport, "Failed to send to Slack: "+err.Error(), 0, fmt.Errorf("%w: %v", ErrTransport, err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return failure(ReasonTransport, "Failed to send to Slack: "+err.Error(), 0, fmt.Errorf("%w: %v", ErrTransport, err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return failure(ReasonTimeout, msgTimedOut, 0, ErrTimeout)
		}
		return failure(ReasonTransport, "Failed to send to Slack: "+err.Error(), 0, fmt.Errorf("%w: %v", ErrTransport, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(ctx, err) {
			return failure(ReasonTimeout, msgTimedOut, 0, ErrTimeout)
		}
		return failure(ReasonTransport, "Failed to send to Slack: "+err.Error(), 0, fmt.Errorf("%w: %v", ErrTransport, err))
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("Slack API error: %d - %s", resp.StatusCode, string(body))
		return failure(ReasonBadStatus, msg, resp.StatusCode, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode))
	}
	return Result{Success: true, Message: msgSent, StatusCode: resp.StatusCode}
}

func failure(reason, msg string, status int, err error) Result {
	return Result{Reason: reason, Error: msg, StatusCode: status, err: err}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

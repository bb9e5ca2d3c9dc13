package slack

import "errors"

var (
	// ErrNotConfigured indicates neither an override nor a default webhook was set.
	ErrNotConfigured = errors.New("slack webhook not configured")

	// ErrBadStatus indicates the webhook answered with a non-200 status.
	ErrBadStatus = errors.New("slack webhook returned an error status")

	// ErrTimeout indicates the POST exceeded its time budget.
	ErrTimeout = errors.New("slack request timed out")

	// ErrTransport covers every other failure to reach the webhook.
	ErrTransport = errors.New("slack transport failure")
)

// Failure reasons reported in Result.Reason.
const (
	ReasonNotConfigured = "not_configured"
	ReasonBadStatus     = "bad_status"
	ReasonTimeout       = "timeout"
	ReasonTransport     = "transport"
)

package slack

import (
	"context"
	"io"
	"log/slog"
)

// DeliveryEvent records metadata about a single webhook delivery.
type DeliveryEvent struct {
	DeliveryID string
	LatencyMs  int64
	Success    bool
	Reason     string
	StatusCode int
	Override   bool
}

// Observer receives an event for every Send.
type Observer interface {
	OnDelivery(ctx context.Context, event DeliveryEvent)
}

// LogObserver writes delivery events through slog.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs text records to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: slog.New(slog.NewTextHandler(w, nil))}
}

// NewSlogObserver creates an Observer on an existing logger.
func NewSlogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnDelivery(ctx context.Context, event DeliveryEvent) {
	attrs := []any{
		"delivery_id", event.DeliveryID,
		"latency_ms", event.LatencyMs,
		"success", event.Success,
		"override", event.Override,
	}
	if event.StatusCode != 0 {
		attrs = append(attrs, "status_code", event.StatusCode)
	}
	if !event.Success {
		attrs = append(attrs, "reason", event.Reason)
		o.logger.WarnContext(ctx, "slack_delivery", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "slack_delivery", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnDelivery(context.Context, DeliveryEvent) {}

// MultiObserver forwards each event to every observer in order.
type MultiObserver []Observer

func (m MultiObserver) OnDelivery(ctx context.Context, event DeliveryEvent) {
	for _, o := range m {
		if o != nil {
			o.OnDelivery(ctx, event)
		}
	}
}

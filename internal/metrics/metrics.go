// Package metrics exposes Prometheus counters for submissions, report reads
// and webhook deliveries. A Metrics value is both a service.UseCaseObserver
// and a slack.Observer.
package metrics

import (
	"context"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexanderramin/annotationhq/internal/service"
	"github.com/alexanderramin/annotationhq/internal/slack"
)

const namespace = "annotationhq"

// Metrics owns a private registry so tests and multiple instances never
// collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	useCases        *prometheus.CounterVec
	useCaseDuration *prometheus.HistogramVec
	deliveries      *prometheus.CounterVec
	deliveryLatency prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		useCases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "use_cases_total",
			Help:      "Service use cases by name and outcome.",
		}, []string{"use_case", "success"}),
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "use_case_duration_seconds",
			Help:      "Service use case latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"use_case"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slack_deliveries_total",
			Help:      "Webhook deliveries by outcome reason.",
		}, []string{"reason"}),
		deliveryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "slack_delivery_duration_seconds",
			Help:      "Webhook delivery latency.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
	m.registry.MustRegister(m.useCases, m.useCaseDuration, m.deliveries, m.deliveryLatency)
	return m
}

// Registry returns the registry backing Handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveUseCase(_ context.Context, event service.UseCaseEvent) {
	m.useCases.WithLabelValues(event.Name, strconv.FormatBool(event.Success)).Inc()
	m.useCaseDuration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}

func (m *Metrics) OnDelivery(_ context.Context, event slack.DeliveryEvent) {
	reason := event.Reason
	if event.Success {
		reason = "ok"
	}
	m.deliveries.WithLabelValues(reason).Inc()
	m.deliveryLatency.Observe(float64(event.LatencyMs) / 1000)
}

var (
	_ service.UseCaseObserver = (*Metrics)(nil)
	_ slack.Observer          = (*Metrics)(nil)
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leet_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leet_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leet_payments_total",
			Help: "Total number of payment attempts",
		},
		[]string{"method", "status"},
	)

	GatewayCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leet_gateway_calls_total",
			Help: "Total number of outbound gateway calls",
		},
		[]string{"resource", "outcome"},
	)

	WebhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leet_webhook_events_total",
			Help: "Total number of inbound webhook events",
		},
		[]string{"outcome"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leet_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "leet_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordPayment(method, status string) {
	PaymentsTotal.WithLabelValues(method, status).Inc()
}

func RecordGatewayCall(resource, outcome string) {
	GatewayCallsTotal.WithLabelValues(resource, outcome).Inc()
}

func RecordWebhookEvent(outcome string) {
	WebhookEventsTotal.WithLabelValues(outcome).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func SetEmailQueueLength(length float64) {
	EmailQueueLength.Set(length)
}

package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/trtech123/tos/internal/domain"
)

const (
	GatewayChat       = "chat"
	GatewayTranscribe = "transcribe"
)

var (
	gatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tos",
		Name:      "gateway_requests_total",
		Help:      "Requests handled by the model gateways, by outcome.",
	}, []string{"gateway", "outcome"})

	gatewayDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tos",
		Name:      "gateway_request_duration_seconds",
		Help:      "Time spent waiting on the upstream provider.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
	}, []string{"gateway"})

	notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tos",
		Name:      "notifications_total",
		Help:      "Booking notifications handled by the worker.",
	}, []string{"event", "outcome"})
)

// ObserveGateway records one gateway call that started at start and ended with err.
func ObserveGateway(gateway string, start time.Time, err error) {
	gatewayRequests.WithLabelValues(gateway, Outcome(err)).Inc()
	gatewayDuration.WithLabelValues(gateway).Observe(time.Since(start).Seconds())
}

func ObserveNotification(eventType string, err error) {
	notifications.WithLabelValues(eventType, Outcome(err)).Inc()
}

func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrEmptyReply):
		return "empty"
	default:
		return "error"
	}
}

// Package metrics exposes Prometheus collectors for the broker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "counter"

// Metrics holds the broker's Prometheus collectors.
type Metrics struct {
	ConnectedClients     prometheus.Gauge
	AuthenticatedClients prometheus.Gauge
	CommandsTotal        *prometheus.CounterVec
	BroadcastsTotal      prometheus.Counter
	DroppedFramesTotal   prometheus.Counter
	DecodeErrorsTotal    prometheus.Counter
}

// New registers the broker collectors with the given registry.
// Pass prometheus.DefaultRegisterer in production; tests use a fresh
// prometheus.NewRegistry so parallel hubs don't collide.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ConnectedClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connected_clients",
			Help:      "Number of currently connected clients.",
		}),
		AuthenticatedClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "authenticated_clients",
			Help:      "Number of currently authenticated clients.",
		}),
		CommandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Inbound commands processed, by message type.",
		}, []string{"type"}),
		BroadcastsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broadcasts_total",
			Help:      "Messages fanned out to all connected clients.",
		}),
		DroppedFramesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_frames_total",
			Help:      "Outbound frames dropped because a client's send queue was full.",
		}),
		DecodeErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_errors_total",
			Help:      "Inbound frames dropped because they were not valid protocol envelopes.",
		}),
	}
}

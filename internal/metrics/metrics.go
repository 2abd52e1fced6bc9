// Package metrics exposes Prometheus collectors for the counter client.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	gatewayCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nearcounter",
			Subsystem: "gateway",
			Name:      "calls_total",
			Help:      "Total number of contract gateway calls.",
		},
		[]string{"command", "outcome"},
	)

	gatewayDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nearcounter",
			Subsystem: "gateway",
			Name:      "call_duration_seconds",
			Help:      "Duration of contract gateway calls.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
		},
		[]string{"command"},
	)

	commandsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "nearcounter",
			Subsystem: "executor",
			Name:      "inflight_commands",
			Help:      "Current number of commands awaiting the gateway.",
		},
	)

	messagesDispatched = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nearcounter",
			Subsystem: "update",
			Name:      "messages_total",
			Help:      "Total number of messages processed by the update loop.",
		},
		[]string{"msg"},
	)
)

func init() {
	Registry.MustRegister(
		gatewayCalls,
		gatewayDuration,
		commandsInFlight,
		messagesDispatched,
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// CommandStarted marks a command as in flight and returns a function that
// records its outcome.
func CommandStarted(command string) func(err error) {
	start := time.Now()
	commandsInFlight.Inc()
	return func(err error) {
		commandsInFlight.Dec()
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		gatewayCalls.WithLabelValues(command, outcome).Inc()
		gatewayDuration.WithLabelValues(command).Observe(time.Since(start).Seconds())
	}
}

// RecordMessage counts a processed message.
func RecordMessage(name string) {
	messagesDispatched.WithLabelValues(name).Inc()
}

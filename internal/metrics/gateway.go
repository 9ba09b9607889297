// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "explorer_gateway",
		Name:      "requests_total",
		Help:      "Count of explorer API requests.",
	}, []string{"operation", "network", "status"})
	gatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "explorer_gateway",
		Name:      "request_duration_seconds",
		Help:      "Duration of explorer API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// Gateway tracks outbound explorer API calls.
type Gateway struct {
	network model.Network
}

// NewGateway constructs a Gateway collector for the network.
func NewGateway(network model.Network) *Gateway {
	if network == "" {
		network = "unknown"
	}
	return &Gateway{network: network}
}

// Observe records duration and status of one explorer request.
func (m Gateway) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	gatewayRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	gatewayRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain_store",
		Name:      "refresh_total",
		Help:      "Count of chain snapshot refreshes by kind.",
	}, []string{"kind", "network", "status"})
	chainRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain_store",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of chain snapshot refreshes by kind.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "network", "status"})
	chainTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain_store",
		Name:      "tip_height",
		Help:      "Height of the latest block held by the snapshot store.",
	}, []string{"network"})
)

// ChainStore tracks the chain snapshot store.
type ChainStore struct {
	network model.Network
}

// NewChainStore constructs a ChainStore collector.
func NewChainStore(network model.Network) *ChainStore {
	if network == "" {
		network = "unknown"
	}
	return &ChainStore{network: network}
}

// ObserveRefresh records one refresh of the given kind (latest_block, recent_blocks, search).
func (m ChainStore) ObserveRefresh(kind string, err error, started time.Time) {
	status := statusLabel(err)
	chainRefreshTotal.WithLabelValues(kind, string(m.network), status).Inc()
	chainRefreshDuration.WithLabelValues(kind, string(m.network), status).Observe(time.Since(started).Seconds())
}

// SetTipHeight publishes the height of the held latest block.
func (m ChainStore) SetTipHeight(height uint64) {
	chainTipHeight.WithLabelValues(string(m.network)).Set(float64(height))
}

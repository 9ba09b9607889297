package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mempoolRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "mempool",
		Name:      "identifier_refresh_total",
		Help:      "Count of pending identifier list refreshes.",
	}, []string{"network", "status"})
	mempoolIdentifiers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "mempool",
		Name:      "identifiers",
		Help:      "Number of pending transaction identifiers in the last snapshot.",
	}, []string{"network"})
	mempoolPageLoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "mempool",
		Name:      "page_load_duration_seconds",
		Help:      "Duration of materializing one page of pending transactions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network"})
	mempoolDetailFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "mempool",
		Name:      "detail_fetch_total",
		Help:      "Count of per-transaction detail fetches during page loads.",
	}, []string{"network", "status"})
)

// Mempool tracks the pending-pool pagination controller.
type Mempool struct {
	network model.Network
}

// NewMempool constructs a Mempool collector.
func NewMempool(network model.Network) *Mempool {
	if network == "" {
		network = "unknown"
	}
	return &Mempool{network: network}
}

// ObserveRefresh records an identifier refresh and the resulting snapshot size.
func (m Mempool) ObserveRefresh(err error, identifiers int) {
	mempoolRefreshTotal.WithLabelValues(string(m.network), statusLabel(err)).Inc()
	if err == nil {
		mempoolIdentifiers.WithLabelValues(string(m.network)).Set(float64(identifiers))
	}
}

// ObservePageLoad records a page load with its successful and failed detail fetches.
func (m Mempool) ObservePageLoad(fetched, failed int, started time.Time) {
	mempoolPageLoadDuration.WithLabelValues(string(m.network)).Observe(time.Since(started).Seconds())
	mempoolDetailFetchTotal.WithLabelValues(string(m.network), "success").Add(float64(fetched))
	mempoolDetailFetchTotal.WithLabelValues(string(m.network), "error").Add(float64(failed))
}

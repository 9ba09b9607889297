package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	miningSessionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "mining_simulation",
		Name:      "sessions_total",
		Help:      "Count of finished mining sessions by result.",
	}, []string{"result"})
	miningIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "mining_simulation",
		Name:      "iterations",
		Help:      "Iteration count reached by terminal mining sessions.",
		Buckets:   prometheus.ExponentialBuckets(10000, 4, 12),
	})
	miningElapsed = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "mining_simulation",
		Name:      "elapsed_seconds",
		Help:      "Elapsed time of terminal mining sessions.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	})
)

// Mining tracks the mining simulation engine.
type Mining struct{}

// NewMining creates a Mining collector.
func NewMining() *Mining {
	return &Mining{}
}

// ObserveOutcome records a session that reached a terminal outcome.
func (m Mining) ObserveOutcome(succeeded bool, iterations uint64, elapsed time.Duration) {
	result := "failed"
	if succeeded {
		result = "succeeded"
	}
	miningSessionsTotal.WithLabelValues(result).Inc()
	miningIterations.Observe(float64(iterations))
	miningElapsed.Observe(elapsed.Seconds())
}

// ObserveStopped records a session halted by the user.
func (m Mining) ObserveStopped() {
	miningSessionsTotal.WithLabelValues("stopped").Inc()
}

package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncerIterationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "iteration_total",
		Help:      "Count of sync iterations.",
	}, []string{"coin", "network", "status"})

	syncerIterationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "iteration_duration_seconds",
		Help:      "Duration of sync iterations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	syncerIterationBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "iteration_blocks",
		Help:      "Number of blocks enqueued per sync iteration.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"coin", "network"})

	syncerReorgDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "reorg_depth",
		Help:      "Number of blocks removed per detected reorg.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	}, []string{"coin", "network"})

	syncerNodeHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "node_height",
		Help:      "Latest block height reported by the node.",
	}, []string{"coin", "network"})
)

// Syncer tracks metrics for the chain follower.
type Syncer struct {
	labels
}

// NewSyncer constructs a Syncer with defaults.
func NewSyncer(coin model.Coin, network model.Network) *Syncer {
	return &Syncer{labels: newLabels(coin, network)}
}

// ObserveIteration records one sync iteration.
func (m Syncer) ObserveIteration(err error, blocks int, started time.Time) {
	s := status(err)
	syncerIterationTotal.WithLabelValues(m.coin, m.network, s).Inc()
	syncerIterationDuration.WithLabelValues(m.coin, m.network, s).Observe(time.Since(started).Seconds())
	if err == nil {
		syncerIterationBlocks.WithLabelValues(m.coin, m.network).Observe(float64(blocks))
	}
}

// ObserveReorg records the depth of a detected reorg.
func (m Syncer) ObserveReorg(depth int) {
	syncerReorgDepth.WithLabelValues(m.coin, m.network).Observe(float64(depth))
}

// SetNodeHeight publishes the node tip height.
func (m Syncer) SetNodeHeight(height uint64) {
	syncerNodeHeight.WithLabelValues(m.coin, m.network).Set(float64(height))
}

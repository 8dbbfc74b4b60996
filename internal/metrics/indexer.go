package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "blocks_total",
		Help:      "Count of blocks applied or removed by the engine.",
	}, []string{"operation", "coin", "network", "status"})

	indexerBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "block_duration_seconds",
		Help:      "Duration of applying or removing a block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})

	indexerBlockTxs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "block_transactions",
		Help:      "Number of transactions per processed block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"operation", "coin", "network"})

	indexerFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "flush_total",
		Help:      "Count of write buffer flushes.",
	}, []string{"coin", "network", "status"})

	indexerFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "flush_duration_seconds",
		Help:      "Duration of write buffer flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	indexerFlushOps = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "flush_ops",
		Help:      "Number of store operations per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
	}, []string{"coin", "network"})

	indexerWatermark = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "safe_block_symbol",
		Help:      "Highest block symbol whose effects are durable.",
	}, []string{"coin", "network"})

	indexerQueueLength = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "indexer",
		Name:      "queue_length",
		Help:      "Number of block events waiting for the worker.",
	}, []string{"coin", "network"})
)

// Indexer tracks metrics for the UTXO engine.
type Indexer struct {
	labels
}

// NewIndexer constructs an Indexer with defaults.
func NewIndexer(coin model.Coin, network model.Network) *Indexer {
	return &Indexer{labels: newLabels(coin, network)}
}

// ObserveBlock records the outcome of applying or removing one block.
func (m Indexer) ObserveBlock(operation string, err error, txs int, started time.Time) {
	s := status(err)
	indexerBlocksTotal.WithLabelValues(operation, m.coin, m.network, s).Inc()
	indexerBlockDuration.WithLabelValues(operation, m.coin, m.network, s).Observe(time.Since(started).Seconds())
	indexerBlockTxs.WithLabelValues(operation, m.coin, m.network).Observe(float64(txs))
}

// ObserveFlush records a write buffer flush.
func (m Indexer) ObserveFlush(err error, ops int, started time.Time) {
	s := status(err)
	indexerFlushTotal.WithLabelValues(m.coin, m.network, s).Inc()
	indexerFlushDuration.WithLabelValues(m.coin, m.network, s).Observe(time.Since(started).Seconds())
	indexerFlushOps.WithLabelValues(m.coin, m.network).Observe(float64(ops))
}

// SetWatermark publishes the durable block symbol.
func (m Indexer) SetWatermark(symbol int64) {
	indexerWatermark.WithLabelValues(m.coin, m.network).Set(float64(symbol))
}

// SetQueueLength publishes the pending event count.
func (m Indexer) SetQueueLength(n int) {
	indexerQueueLength.WithLabelValues(m.coin, m.network).Set(float64(n))
}

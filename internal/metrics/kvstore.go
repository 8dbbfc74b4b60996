package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	kvstoreWriteTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "kvstore",
		Name:      "write_total",
		Help:      "Count of atomic batch writes.",
	}, []string{"coin", "network", "status"})

	kvstoreWriteDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "kvstore",
		Name:      "write_duration_seconds",
		Help:      "Duration of atomic batch writes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	kvstoreWriteOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "kvstore",
		Name:      "write_ops_total",
		Help:      "Count of key operations committed to the store.",
	}, []string{"coin", "network"})
)

// KVStore tracks metrics for the leveldb store.
type KVStore struct {
	labels
}

// NewKVStore constructs a KVStore with defaults.
func NewKVStore(coin model.Coin, network model.Network) *KVStore {
	return &KVStore{labels: newLabels(coin, network)}
}

// ObserveWrite records one batch write. Ops count only on success.
func (m KVStore) ObserveWrite(err error, ops int, started time.Time) {
	s := status(err)
	kvstoreWriteTotal.WithLabelValues(m.coin, m.network, s).Inc()
	kvstoreWriteDuration.WithLabelValues(m.coin, m.network, s).Observe(time.Since(started).Seconds())
	if err == nil {
		kvstoreWriteOps.WithLabelValues(m.coin, m.network).Add(float64(ops))
	}
}

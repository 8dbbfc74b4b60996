package indexer

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/kvstore"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		Get(t kvstore.Table, key []byte) ([]byte, bool, error)
		GetMeta(key kvstore.MetaKey) ([]byte, bool, error)
		Write(ops []kvstore.Op, meta []kvstore.MetaOp) error
	}
	Metrics interface {
		ObserveBlock(operation string, err error, txs int, started time.Time)
		ObserveFlush(err error, ops int, started time.Time)
		SetWatermark(symbol int64)
		SetQueueLength(n int)
	}
)

// Block operations reported to Metrics.ObserveBlock.
const (
	OperationApply  = "apply"
	OperationRemove = "remove"
)

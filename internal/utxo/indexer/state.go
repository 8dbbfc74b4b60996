package indexer

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/codec"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/kvstore"
	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/safe"
	"go.uber.org/zap"
)

type persistedState struct {
	lastBlockSymbol   int64
	lastTxSymbol      int64
	lastAddressSymbol int64
	bestBlockHash     string
	genesisBlockHash  string
}

func (e *Engine) loadState() (persistedState, error) {
	var (
		st  persistedState
		err error
	)
	if st.lastBlockSymbol, err = e.loadSymbol(kvstore.MetaLatestBlockSymbol); err != nil {
		return st, err
	}
	if st.lastTxSymbol, err = e.loadSymbol(kvstore.MetaLatestTxSymbol); err != nil {
		return st, err
	}
	if st.lastAddressSymbol, err = e.loadSymbol(kvstore.MetaLatestAddressSymbol); err != nil {
		return st, err
	}
	if st.bestBlockHash, err = e.loadString(kvstore.MetaBestBlockHash); err != nil {
		return st, err
	}
	if st.genesisBlockHash, err = e.loadString(kvstore.MetaGenesisBlockHash); err != nil {
		return st, err
	}
	return st, nil
}

// loadSymbol returns -1 for a missing key.
func (e *Engine) loadSymbol(key kvstore.MetaKey) (int64, error) {
	raw, ok, err := e.store.GetMeta(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return -1, nil
	}
	symbol, err := codec.DecodeSymbol(raw)
	if err != nil {
		return 0, fmt.Errorf("metadata %s: %w", key, err)
	}
	v, err := safe.Int64(symbol)
	if err != nil {
		return 0, fmt.Errorf("metadata %s: %w", key, err)
	}
	return v, nil
}

func (e *Engine) loadString(key kvstore.MetaKey) (string, error) {
	raw, _, err := e.store.GetMeta(key)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// processBatches flushes the write buffer and the metadata in one atomic
// write, then advances the durable watermark. It runs with an empty buffer
// too, in which case only the metadata is rewritten.
func (e *Engine) processBatches() (err error) {
	started := time.Now()
	count := 0
	defer func() {
		e.metrics.ObserveFlush(err, count, started)
	}()

	if err = e.materializeAppends(); err != nil {
		return fmt.Errorf("materialize address lists: %w", err)
	}
	ops := e.buffer.ops()
	best := e.bestBlockHash.Load()
	meta := e.metaOps(best)
	count = len(ops) + len(meta)

	if err = e.store.Write(ops, meta); err != nil {
		return fmt.Errorf("flush %d ops: %w", count, err)
	}

	e.buffer.reset()
	e.genesisUpdated = false
	last := e.lastBlockSymbol.Load()
	e.safeLastBlockSymbol.Store(last)
	e.safeBestBlockHash.Store(best)
	e.metrics.SetWatermark(last)

	e.logger.Debug("batch flushed",
		zap.Int("ops", count),
		zap.Int64("safeLastBlockSymbol", last),
		zap.Duration("took", time.Since(started)))
	return nil
}

func (e *Engine) metaOps(bestBlockHash string) []kvstore.MetaOp {
	ops := []kvstore.MetaOp{
		stringMeta(kvstore.MetaBestBlockHash, bestBlockHash),
		symbolMeta(kvstore.MetaLatestBlockSymbol, e.lastBlockSymbol.Load()),
		symbolMeta(kvstore.MetaLatestTxSymbol, e.lastTxSymbol),
		symbolMeta(kvstore.MetaLatestAddressSymbol, e.lastAddressSymbol),
	}
	if e.genesisUpdated {
		ops = append(ops, stringMeta(kvstore.MetaGenesisBlockHash, e.genesisBlockHash.Load()))
	}
	return ops
}

// symbolMeta writes an uninitialized (negative) counter as a deletion.
func symbolMeta(key kvstore.MetaKey, symbol int64) kvstore.MetaOp {
	if symbol < 0 {
		return kvstore.MetaOp{Key: key, Delete: true}
	}
	return kvstore.MetaOp{Key: key, Value: codec.EncodeSymbol(uint64(symbol))}
}

func stringMeta(key kvstore.MetaKey, value string) kvstore.MetaOp {
	if value == "" {
		return kvstore.MetaOp{Key: key, Delete: true}
	}
	return kvstore.MetaOp{Key: key, Value: []byte(value)}
}

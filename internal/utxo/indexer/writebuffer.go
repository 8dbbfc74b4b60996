package indexer

import (
	"bytes"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/codec"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/kvstore"
)

type bufferKey struct {
	table kvstore.Table
	key   string
}

type addressAppend struct {
	address string
	entries codec.AddressList
}

// writeBuffer collects the ops of unflushed blocks. Every op is visible to
// reads through get until the buffer is reset, so lookups during a batch
// observe the batch's own writes and tombstones.
type writeBuffer struct {
	pending map[kvstore.Table][]kvstore.Op
	latest  map[bufferKey]int

	appends     map[uint64]*addressAppend
	appendOrder []uint64
}

func newWriteBuffer() *writeBuffer {
	b := &writeBuffer{}
	b.reset()
	return b
}

func (b *writeBuffer) put(t kvstore.Table, key, value []byte) {
	b.record(kvstore.Op{Table: t, Key: bytes.Clone(key), Value: value})
}

func (b *writeBuffer) delete(t kvstore.Table, key []byte) {
	b.record(kvstore.Op{Table: t, Key: bytes.Clone(key), Delete: true})
}

func (b *writeBuffer) record(op kvstore.Op) {
	b.pending[op.Table] = append(b.pending[op.Table], op)
	b.latest[bufferKey{table: op.Table, key: string(op.Key)}] = len(b.pending[op.Table]) - 1
}

// get returns the latest buffered op for key. ok is false when the buffer
// holds nothing for the key and the store must be consulted.
func (b *writeBuffer) get(t kvstore.Table, key []byte) (value []byte, deleted, ok bool) {
	idx, ok := b.latest[bufferKey{table: t, key: string(key)}]
	if !ok {
		return nil, false, false
	}
	op := b.pending[t][idx]
	return op.Value, op.Delete, true
}

// appendAddressUtxo queues an address list entry. Entries are merged onto
// the stored list only at flush time.
func (b *writeBuffer) appendAddressUtxo(addressSymbol uint64, address string, txSymbol, vout uint64) {
	a, ok := b.appends[addressSymbol]
	if !ok {
		a = &addressAppend{address: address}
		b.appends[addressSymbol] = a
		b.appendOrder = append(b.appendOrder, addressSymbol)
	}
	a.entries.Append(txSymbol, vout)
}

func (b *writeBuffer) count(t kvstore.Table) int {
	return len(b.pending[t])
}

func (b *writeBuffer) thresholdReached(cfg Config) bool {
	return b.count(kvstore.BlockSym) >= cfg.BlockBatchSize ||
		b.count(kvstore.TxSym) >= cfg.TxBatchSize ||
		b.count(kvstore.AddressSym) >= cfg.AddressBatchSize
}

// ops returns every pending op grouped by table in flush order.
func (b *writeBuffer) ops() []kvstore.Op {
	n := 0
	for _, ops := range b.pending {
		n += len(ops)
	}
	out := make([]kvstore.Op, 0, n)
	for _, t := range kvstore.Tables() {
		out = append(out, b.pending[t]...)
	}
	return out
}

func (b *writeBuffer) clearAppends() {
	b.appends = make(map[uint64]*addressAppend)
	b.appendOrder = nil
}

func (b *writeBuffer) reset() {
	b.pending = make(map[kvstore.Table][]kvstore.Op)
	b.latest = make(map[bufferKey]int)
	b.clearAppends()
}

package indexer

import (
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/codec"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/kvstore"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"go.uber.org/zap"
)

// removeBlock rolls the tip block back. Pending work is flushed first so
// the rollback reads durable state, and the result is flushed right after.
func (e *Engine) removeBlock(block *model.RawBlock) error {
	symbol, ok, err := e.blockSymbol(block.Hash)
	if err != nil {
		return err
	}
	if !ok {
		return inconsistent("cannot remove block %s: not indexed", block.Hash)
	}
	if last := e.lastBlockSymbol.Load(); int64(symbol) != last {
		return inconsistent("cannot remove block %s with symbol %d: tip is %d", block.Hash, symbol, last)
	}

	parentSymbol := int64(-1)
	parentHash := ""
	if !block.IsGenesis() {
		parent, ok, err := e.blockSymbol(block.PreviousBlockHash)
		if err != nil {
			return err
		}
		if !ok {
			return inconsistent("cannot remove block %s: parent %s is not indexed", block.Hash, block.PreviousBlockHash)
		}
		parentSymbol, parentHash = int64(parent), block.PreviousBlockHash
	}

	if err := e.processBatches(); err != nil {
		return err
	}
	if err := e.rollback(block, symbol); err != nil {
		return err
	}

	e.lastBlockSymbol.Store(parentSymbol)
	e.bestBlockHash.Store(parentHash)
	e.logger.Info("block removed",
		zap.String("hash", block.Hash),
		zap.Int64("height", block.Height),
		zap.Int64("tip", parentSymbol))

	return e.processBatches()
}

func (e *Engine) rollback(block *model.RawBlock, blockSymbol uint64) error {
	minTxSymbol := int64(-1)
	removed := make(map[string]struct{}, len(block.Txs))

	for i := range block.Txs {
		tx := &block.Txs[i]
		key, err := hashKey(tx.TxID)
		if err != nil {
			return err
		}
		txSymbol, ok, err := lookupSymbol(e.read, kvstore.TxSym, key)
		if err != nil {
			return err
		}
		if !ok {
			e.logger.Warn("transaction symbol already absent, skipping",
				zap.String("txid", tx.TxID), zap.String("block", block.Hash))
			continue
		}
		if minTxSymbol < 0 || int64(txSymbol) < minTxSymbol {
			minTxSymbol = int64(txSymbol)
		}
		removed[tx.TxID] = struct{}{}

		if err := e.unspendInputs(tx, removed); err != nil {
			return err
		}
		if err := e.deleteOutputs(tx, txSymbol); err != nil {
			return err
		}
		e.buffer.delete(kvstore.TxSym, key)
	}

	hash, err := hashKey(block.Hash)
	if err != nil {
		return err
	}
	e.buffer.delete(kvstore.BlockSym, hash)
	e.buffer.delete(kvstore.SymBlock, codec.EncodeSymbol(blockSymbol))

	if minTxSymbol >= 0 {
		e.lastTxSymbol = minTxSymbol - 1
	}
	return nil
}

// unspendInputs clears the spent markers set by tx. Outputs created by a
// transaction of the same block are already gone and are skipped.
func (e *Engine) unspendInputs(tx *model.RawTransaction, removed map[string]struct{}) error {
	for _, in := range tx.Inputs {
		if in.IsCoinbase() {
			continue
		}
		if !in.HasPrevOut() {
			return inconsistent("transaction %s has an input without previous output or coinbase", tx.TxID)
		}
		if _, ok := removed[in.TxID]; ok {
			continue
		}
		key, value, ok, err := lookupUtxo(e.read, in.TxID, in.Vout)
		if err != nil {
			return err
		}
		if !ok {
			return inconsistent("cannot restore output %s:%d spent by %s: not indexed", in.TxID, in.Vout, tx.TxID)
		}
		e.buffer.put(kvstore.Utxo, key.Encode(), value.ClearSpent().Encode())
	}
	return nil
}

// deleteOutputs drops the outputs of tx and their address list entries.
// Address symbols are kept.
func (e *Engine) deleteOutputs(tx *model.RawTransaction, txSymbol uint64) error {
	for _, out := range tx.Outputs {
		e.buffer.delete(kvstore.Utxo, codec.UtxoKey{TxSymbol: txSymbol, N: uint64(out.N)}.Encode())

		address, ok := out.Address()
		if !ok {
			continue
		}
		addressSymbol, ok, err := e.addressSymbol(address, false)
		if err != nil {
			return err
		}
		if !ok {
			e.logger.Warn("address symbol missing during removal", zap.String("address", address))
			continue
		}
		list, ok, err := lookupAddressList(e.read, addressSymbol)
		if err != nil {
			return err
		}
		if !ok || !list.Remove(txSymbol, uint64(out.N)) {
			e.logger.Warn("address list entry missing during removal",
				zap.String("address", address), zap.String("txid", tx.TxID), zap.Uint32("vout", out.N))
			continue
		}
		encoded, err := list.Encode()
		if err != nil {
			return err
		}
		e.buffer.put(kvstore.AddressUtxos, codec.EncodeSymbol(addressSymbol), encoded)
	}
	return nil
}

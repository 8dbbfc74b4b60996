package indexer

import (
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/codec"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/kvstore"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"go.uber.org/zap"
)

// addBlock indexes block on top of the current tip.
func (e *Engine) addBlock(block *model.RawBlock) error {
	if _, ok, err := e.blockSymbol(block.Hash); err != nil {
		return err
	} else if ok {
		e.logger.Debug("block already indexed, skipping",
			zap.String("hash", block.Hash), zap.Int64("height", block.Height))
		return nil
	}

	last := e.lastBlockSymbol.Load()
	if block.IsGenesis() {
		if last != -1 {
			return inconsistent("genesis block %s applied on top of block symbol %d", block.Hash, last)
		}
		if genesis := e.genesisBlockHash.Load(); genesis != block.Hash {
			return inconsistent("genesis block %s does not match indexed genesis %s", block.Hash, genesis)
		}
	} else {
		parent, ok, err := e.blockSymbol(block.PreviousBlockHash)
		if err != nil {
			return err
		}
		if !ok {
			return inconsistent("parent %s of block %s at height %d is not indexed",
				block.PreviousBlockHash, block.Hash, block.Height)
		}
		if int64(parent) != last {
			return inconsistent("block %s extends block symbol %d but the tip is %d", block.Hash, parent, last)
		}
		if block.Height != int64(parent)+1 {
			return inconsistent("block %s has height %d, parent symbol is %d", block.Hash, block.Height, parent)
		}
	}

	symbol := uint64(last + 1)
	if err := e.applyTransactions(block, symbol); err != nil {
		return err
	}

	hash, err := hashKey(block.Hash)
	if err != nil {
		return err
	}
	encoded := codec.EncodeSymbol(symbol)
	e.buffer.put(kvstore.BlockSym, hash, encoded)
	e.buffer.put(kvstore.SymBlock, encoded, hash)

	e.lastBlockSymbol.Store(int64(symbol))
	e.bestBlockHash.Store(block.Hash)

	if e.buffer.thresholdReached(e.cfg) {
		return e.processBatches()
	}
	return nil
}

func (e *Engine) applyTransactions(block *model.RawBlock, blockSymbol uint64) error {
	for i := range block.Txs {
		tx := &block.Txs[i]
		key, err := hashKey(tx.TxID)
		if err != nil {
			return err
		}
		if _, ok, err := lookupSymbol(e.read, kvstore.TxSym, key); err != nil {
			return err
		} else if ok {
			e.logger.Warn("transaction already indexed, skipping",
				zap.String("txid", tx.TxID), zap.String("block", block.Hash))
			continue
		}

		e.lastTxSymbol++
		txSymbol := uint64(e.lastTxSymbol)
		e.buffer.put(kvstore.TxSym, key, codec.EncodeSymbol(txSymbol))

		if err := e.spendInputs(tx, blockSymbol, txSymbol); err != nil {
			return err
		}
		if err := e.createOutputs(tx, blockSymbol, txSymbol); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) spendInputs(tx *model.RawTransaction, blockSymbol, txSymbol uint64) error {
	for _, in := range tx.Inputs {
		if in.IsCoinbase() {
			continue
		}
		if !in.HasPrevOut() {
			return inconsistent("transaction %s has an input without previous output or coinbase", tx.TxID)
		}
		key, value, ok, err := lookupUtxo(e.read, in.TxID, in.Vout)
		if err != nil {
			return err
		}
		if !ok {
			return inconsistent("transaction %s spends unknown output %s:%d", tx.TxID, in.TxID, in.Vout)
		}
		e.buffer.put(kvstore.Utxo, key.Encode(), value.MarkSpent(blockSymbol, txSymbol).Encode())
	}
	return nil
}

// createOutputs records every output paying exactly one address. Outputs
// with no or several destinations are not indexed.
func (e *Engine) createOutputs(tx *model.RawTransaction, blockSymbol, txSymbol uint64) error {
	for _, out := range tx.Outputs {
		address, ok := out.Address()
		if !ok {
			continue
		}
		addressSymbol, _, err := e.addressSymbol(address, true)
		if err != nil {
			return err
		}

		key := codec.UtxoKey{TxSymbol: txSymbol, N: uint64(out.N)}.Encode()
		if _, exists, err := e.read(kvstore.Utxo, key); err != nil {
			return err
		} else if exists {
			return inconsistent("output %s:%d created twice", tx.TxID, out.N)
		}

		value := codec.UtxoValue{
			Sats:           float64(out.Value),
			Address:        &addressSymbol,
			CreatedOnBlock: blockSymbol,
		}
		e.buffer.put(kvstore.Utxo, key, value.Encode())
		e.buffer.appendAddressUtxo(addressSymbol, address, txSymbol, uint64(out.N))
	}
	return nil
}

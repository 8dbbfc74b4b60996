// Package bitcoin adapts Bitcoin Core style RPC results to the indexer model.
package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/safe"
)

// BtcToSatoshis converts BTC amount to satoshis with overflow checks.
func BtcToSatoshis(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return safe.Uint64(int64(amt))
}

// BuildRawBlock maps a verbose block into a model.RawBlock.
func BuildRawBlock(src btcjson.GetBlockVerboseTxResult, decoder ScriptDecoder) (*model.RawBlock, error) {
	if src.Hash == "" {
		return nil, fmt.Errorf("block at height %d has no hash", src.Height)
	}
	if src.Height < 0 {
		return nil, fmt.Errorf("block %s has negative height %d", src.Hash, src.Height)
	}
	if src.Height > 0 && src.PreviousHash == "" {
		return nil, fmt.Errorf("block %s at height %d has no previous block hash", src.Hash, src.Height)
	}

	block := &model.RawBlock{
		Hash:              src.Hash,
		Height:            src.Height,
		PreviousBlockHash: src.PreviousHash,
		Txs:               make([]model.RawTransaction, 0, len(src.Tx)),
	}
	for _, tx := range src.Tx {
		raw, err := buildRawTransaction(tx, decoder)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", src.Hash, err)
		}
		block.Txs = append(block.Txs, raw)
	}
	return block, nil
}

func buildRawTransaction(tx btcjson.TxRawResult, decoder ScriptDecoder) (model.RawTransaction, error) {
	raw := model.RawTransaction{
		TxID:    tx.Txid,
		Inputs:  make([]model.RawInput, 0, len(tx.Vin)),
		Outputs: make([]model.RawOutput, 0, len(tx.Vout)),
	}
	for _, vin := range tx.Vin {
		raw.Inputs = append(raw.Inputs, model.RawInput{
			TxID:     vin.Txid,
			Vout:     vin.Vout,
			Coinbase: vin.Coinbase,
		})
	}
	for idx, vout := range tx.Vout {
		if vout.Value < 0 {
			return model.RawTransaction{}, fmt.Errorf("tx %s output %d negative value: %f", tx.Txid, idx, vout.Value)
		}
		value, err := BtcToSatoshis(vout.Value)
		if err != nil {
			return model.RawTransaction{}, fmt.Errorf("tx %s output %d safe value: %w", tx.Txid, idx, err)
		}
		addresses, err := decoder.decodeAddresses(vout)
		if err != nil {
			return model.RawTransaction{}, fmt.Errorf("decode addresses for tx %s output %d: %w", tx.Txid, idx, err)
		}
		raw.Outputs = append(raw.Outputs, model.RawOutput{
			N:         vout.N,
			Value:     value,
			Addresses: addresses,
		})
	}
	return raw, nil
}

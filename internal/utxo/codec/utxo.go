package codec

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

const (
	utxoHasAddress byte = 1 << iota
	utxoHasSpentOnBlock
	utxoHasSpentInTx
)

// UtxoKey identifies an output by the symbol of its creating transaction.
type UtxoKey struct {
	TxSymbol uint64
	N        uint64
}

// Encode returns the binary form of the key.
func (k UtxoKey) Encode() []byte {
	var buf bytes.Buffer
	_ = writeUints(&buf, k.TxSymbol, k.N)
	return buf.Bytes()
}

// DecodeUtxoKey parses a key produced by UtxoKey.Encode.
func DecodeUtxoKey(b []byte) (UtxoKey, error) {
	r := bytes.NewReader(b)
	tx, err := wire.ReadVarInt(r, pver)
	if err != nil {
		return UtxoKey{}, fmt.Errorf("decode utxo key tx symbol: %w", err)
	}
	n, err := wire.ReadVarInt(r, pver)
	if err != nil {
		return UtxoKey{}, fmt.Errorf("decode utxo key output index: %w", err)
	}
	if err := finish(r, "utxo key"); err != nil {
		return UtxoKey{}, err
	}
	return UtxoKey{TxSymbol: tx, N: n}, nil
}

// UtxoValue is the stored state of an output. A nil SpentOnBlock means unspent.
type UtxoValue struct {
	Sats           float64
	Address        *uint64
	CreatedOnBlock uint64
	SpentOnBlock   *uint64
	SpentInTx      *uint64
}

// Unspent reports whether the output has not been consumed.
func (v UtxoValue) Unspent() bool {
	return v.SpentOnBlock == nil
}

// UnspentAt reports whether the output existed and was unspent at block.
func (v UtxoValue) UnspentAt(block uint64) bool {
	if v.CreatedOnBlock > block {
		return false
	}
	return v.SpentOnBlock == nil || block < *v.SpentOnBlock
}

// MarkSpent returns a copy spent by tx in block.
func (v UtxoValue) MarkSpent(block, tx uint64) UtxoValue {
	v.SpentOnBlock = &block
	v.SpentInTx = &tx
	return v
}

// ClearSpent returns a copy with the spend fields removed.
func (v UtxoValue) ClearSpent() UtxoValue {
	v.SpentOnBlock = nil
	v.SpentInTx = nil
	return v
}

// Encode returns the binary form of the value.
func (v UtxoValue) Encode() []byte {
	var flags byte
	if v.Address != nil {
		flags |= utxoHasAddress
	}
	if v.SpentOnBlock != nil {
		flags |= utxoHasSpentOnBlock
	}
	if v.SpentInTx != nil {
		flags |= utxoHasSpentInTx
	}

	var buf bytes.Buffer
	buf.WriteByte(flags)
	_ = writeFloat(&buf, v.Sats)
	if v.Address != nil {
		_ = writeUints(&buf, *v.Address)
	}
	_ = writeUints(&buf, v.CreatedOnBlock)
	if v.SpentOnBlock != nil {
		_ = writeUints(&buf, *v.SpentOnBlock)
	}
	if v.SpentInTx != nil {
		_ = writeUints(&buf, *v.SpentInTx)
	}
	return buf.Bytes()
}

// DecodeUtxoValue parses a value produced by UtxoValue.Encode.
func DecodeUtxoValue(b []byte) (UtxoValue, error) {
	r := bytes.NewReader(b)
	flags, err := r.ReadByte()
	if err != nil {
		return UtxoValue{}, fmt.Errorf("decode utxo value flags: %w", err)
	}
	if flags&^(utxoHasAddress|utxoHasSpentOnBlock|utxoHasSpentInTx) != 0 {
		return UtxoValue{}, fmt.Errorf("decode utxo value: unknown flags %08b", flags)
	}

	var v UtxoValue
	if v.Sats, err = readFloat(r); err != nil {
		return UtxoValue{}, fmt.Errorf("decode utxo value sats: %w", err)
	}
	if flags&utxoHasAddress != 0 {
		addr, err := wire.ReadVarInt(r, pver)
		if err != nil {
			return UtxoValue{}, fmt.Errorf("decode utxo value address: %w", err)
		}
		v.Address = &addr
	}
	if v.CreatedOnBlock, err = wire.ReadVarInt(r, pver); err != nil {
		return UtxoValue{}, fmt.Errorf("decode utxo value created on block: %w", err)
	}
	if flags&utxoHasSpentOnBlock != 0 {
		block, err := wire.ReadVarInt(r, pver)
		if err != nil {
			return UtxoValue{}, fmt.Errorf("decode utxo value spent on block: %w", err)
		}
		v.SpentOnBlock = &block
	}
	if flags&utxoHasSpentInTx != 0 {
		tx, err := wire.ReadVarInt(r, pver)
		if err != nil {
			return UtxoValue{}, fmt.Errorf("decode utxo value spent in tx: %w", err)
		}
		v.SpentInTx = &tx
	}
	if err := finish(r, "utxo value"); err != nil {
		return UtxoValue{}, err
	}
	return v, nil
}

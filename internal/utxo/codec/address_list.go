package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

const addressListHasAddress byte = 1

// AddressList is the reverse index of every output ever created for an
// address, stored as two parallel sequences.
type AddressList struct {
	TxSymbols []uint64
	Vouts     []uint64
	Address   *string
}

// Len returns the number of entries.
func (l AddressList) Len() int {
	return len(l.TxSymbols)
}

// Append adds an entry to the end of the list.
func (l *AddressList) Append(txSymbol, vout uint64) {
	l.TxSymbols = append(l.TxSymbols, txSymbol)
	l.Vouts = append(l.Vouts, vout)
}

// Remove deletes the last entry matching (txSymbol, vout) and reports
// whether one was found.
func (l *AddressList) Remove(txSymbol, vout uint64) bool {
	for i := len(l.TxSymbols) - 1; i >= 0; i-- {
		if l.TxSymbols[i] == txSymbol && l.Vouts[i] == vout {
			l.TxSymbols = append(l.TxSymbols[:i], l.TxSymbols[i+1:]...)
			l.Vouts = append(l.Vouts[:i], l.Vouts[i+1:]...)
			return true
		}
	}
	return false
}

// Encode returns the binary form of the list.
func (l AddressList) Encode() ([]byte, error) {
	if len(l.TxSymbols) != len(l.Vouts) {
		return nil, fmt.Errorf("encode address list: %d tx symbols but %d vouts", len(l.TxSymbols), len(l.Vouts))
	}

	var flags byte
	if l.Address != nil {
		flags |= addressListHasAddress
	}

	var buf bytes.Buffer
	buf.WriteByte(flags)
	if err := writeUintList(&buf, l.TxSymbols); err != nil {
		return nil, err
	}
	if err := writeUintList(&buf, l.Vouts); err != nil {
		return nil, err
	}
	if l.Address != nil {
		if err := wire.WriteVarString(&buf, pver, *l.Address); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// DecodeAddressList parses a list produced by AddressList.Encode.
func DecodeAddressList(b []byte) (AddressList, error) {
	r := bytes.NewReader(b)
	flags, err := r.ReadByte()
	if err != nil {
		return AddressList{}, fmt.Errorf("decode address list flags: %w", err)
	}
	if flags&^addressListHasAddress != 0 {
		return AddressList{}, fmt.Errorf("decode address list: unknown flags %08b", flags)
	}

	var l AddressList
	if l.TxSymbols, err = readUintList(r); err != nil {
		return AddressList{}, fmt.Errorf("decode address list tx symbols: %w", err)
	}
	if l.Vouts, err = readUintList(r); err != nil {
		return AddressList{}, fmt.Errorf("decode address list vouts: %w", err)
	}
	if len(l.TxSymbols) != len(l.Vouts) {
		return AddressList{}, errors.New("decode address list: sequence length mismatch")
	}
	if flags&addressListHasAddress != 0 {
		addr, err := wire.ReadVarString(r, pver)
		if err != nil {
			return AddressList{}, fmt.Errorf("decode address list address: %w", err)
		}
		l.Address = &addr
	}
	if err := finish(r, "address list"); err != nil {
		return AddressList{}, err
	}
	return l, nil
}

// Package kvstore partitions one LevelDB instance into the index tables.
package kvstore

import (
	"errors"
	"fmt"
)

// Table identifies one logical table. The value is the key prefix the
// table occupies in the physical store, so the layout is fixed.
type Table byte

const (
	// BlockSym maps block hash -> block symbol.
	BlockSym Table = 'B'
	// SymBlock maps block symbol -> block hash.
	SymBlock Table = 'b'
	// TxSym maps txid -> tx symbol.
	TxSym Table = 'T'
	// Utxo maps (tx symbol, vout) -> utxo value.
	Utxo Table = 'U'
	// AddressUtxos maps address symbol -> address utxo list.
	AddressUtxos Table = 'X'
	// AddressSym maps address -> address symbol.
	AddressSym Table = 'A'
)

// ErrUnknownTable is returned when a key is built for a table outside the enumeration.
var ErrUnknownTable = errors.New("kvstore: unknown table")

var tables = []Table{AddressSym, AddressUtxos, BlockSym, SymBlock, TxSym, Utxo}

// Tables returns every table in flush order.
func Tables() []Table {
	return append([]Table(nil), tables...)
}

// Valid reports whether t belongs to the enumeration.
func (t Table) Valid() bool {
	switch t {
	case BlockSym, SymBlock, TxSym, Utxo, AddressUtxos, AddressSym:
		return true
	default:
		return false
	}
}

// Prefix returns the namespace byte of the table.
func (t Table) Prefix() byte {
	return byte(t)
}

func (t Table) String() string {
	switch t {
	case BlockSym:
		return "block-sym"
	case SymBlock:
		return "sym-block"
	case TxSym:
		return "tx-sym"
	case Utxo:
		return "utxo"
	case AddressUtxos:
		return "address-utxos"
	case AddressSym:
		return "address-sym"
	default:
		return fmt.Sprintf("table(%#x)", byte(t))
	}
}

// Key returns key prefixed with the table namespace. The input is not modified.
func (t Table) Key(key []byte) ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, t)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("kvstore: empty key for table %s", t)
	}
	prefixed := make([]byte, 0, len(key)+1)
	prefixed = append(prefixed, t.Prefix())
	return append(prefixed, key...), nil
}

// MetaKey is one of the unprefixed metadata keys.
type MetaKey string

const (
	MetaBestBlockHash       MetaKey = "bestBlockHash"
	MetaGenesisBlockHash    MetaKey = "genesisBlockHash"
	MetaLatestBlockSymbol   MetaKey = "latestBlockSymbol"
	MetaLatestTxSymbol      MetaKey = "latestTxSymbol"
	MetaLatestAddressSymbol MetaKey = "latestAddressSymbol"
)

// Op is a pending write against a table. Delete ops carry no value.
type Op struct {
	Table  Table
	Key    []byte
	Value  []byte
	Delete bool
}

// MetaOp is a pending write against a metadata key.
type MetaOp struct {
	Key    MetaKey
	Value  []byte
	Delete bool
}

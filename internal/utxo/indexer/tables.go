package indexer

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/codec"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/kvstore"
)

// readFunc is either the buffered read of the worker or the durable read of
// the query path.
type readFunc func(t kvstore.Table, key []byte) ([]byte, bool, error)

// hashKey returns the stored key of a block hash or txid: the hex string
// decoded as written, without byte reversal.
func hashKey(hash string) ([]byte, error) {
	if len(hash) != chainhash.MaxHashStringSize {
		return nil, fmt.Errorf("%w: hash %q must be %d hex characters", ErrInvalidArgument, hash, chainhash.MaxHashStringSize)
	}
	key, err := hex.DecodeString(hash)
	if err != nil {
		return nil, fmt.Errorf("%w: hash %q: %v", ErrInvalidArgument, hash, err)
	}
	return key, nil
}

// read resolves key against the write buffer first and the store second.
func (e *Engine) read(t kvstore.Table, key []byte) ([]byte, bool, error) {
	if value, deleted, ok := e.buffer.get(t, key); ok {
		if deleted {
			return nil, false, nil
		}
		return value, true, nil
	}
	return e.store.Get(t, key)
}

func lookupSymbol(read readFunc, t kvstore.Table, key []byte) (uint64, bool, error) {
	raw, ok, err := read(t, key)
	if err != nil || !ok {
		return 0, false, err
	}
	symbol, err := codec.DecodeSymbol(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%s %x: %w", t, key, err)
	}
	return symbol, true, nil
}

func lookupHashSymbol(read readFunc, t kvstore.Table, hash string) (uint64, bool, error) {
	key, err := hashKey(hash)
	if err != nil {
		return 0, false, err
	}
	return lookupSymbol(read, t, key)
}

func lookupBlockHash(read readFunc, symbol uint64) (string, bool, error) {
	raw, ok, err := read(kvstore.SymBlock, codec.EncodeSymbol(symbol))
	if err != nil || !ok {
		return "", false, err
	}
	return hex.EncodeToString(raw), true, nil
}

// lookupUtxo resolves txid:vout through the tx symbol table.
func lookupUtxo(read readFunc, txid string, vout uint32) (codec.UtxoKey, codec.UtxoValue, bool, error) {
	txSymbol, ok, err := lookupHashSymbol(read, kvstore.TxSym, txid)
	if err != nil || !ok {
		return codec.UtxoKey{}, codec.UtxoValue{}, false, err
	}
	key := codec.UtxoKey{TxSymbol: txSymbol, N: uint64(vout)}
	value, ok, err := lookupUtxoValue(read, key)
	return key, value, ok, err
}

func lookupUtxoValue(read readFunc, key codec.UtxoKey) (codec.UtxoValue, bool, error) {
	raw, ok, err := read(kvstore.Utxo, key.Encode())
	if err != nil || !ok {
		return codec.UtxoValue{}, false, err
	}
	value, err := codec.DecodeUtxoValue(raw)
	if err != nil {
		return codec.UtxoValue{}, false, fmt.Errorf("utxo %d:%d: %w", key.TxSymbol, key.N, err)
	}
	return value, true, nil
}

func lookupAddressList(read readFunc, addressSymbol uint64) (codec.AddressList, bool, error) {
	raw, ok, err := read(kvstore.AddressUtxos, codec.EncodeSymbol(addressSymbol))
	if err != nil || !ok {
		return codec.AddressList{}, false, err
	}
	list, err := codec.DecodeAddressList(raw)
	if err != nil {
		return codec.AddressList{}, false, fmt.Errorf("address list %d: %w", addressSymbol, err)
	}
	return list, true, nil
}

func (e *Engine) blockSymbol(hash string) (uint64, bool, error) {
	return lookupHashSymbol(e.read, kvstore.BlockSym, hash)
}

// addressSymbol returns the symbol of address, allocating the next one when
// allocate is set and the address was never seen.
func (e *Engine) addressSymbol(address string, allocate bool) (uint64, bool, error) {
	if address == "" {
		return 0, false, fmt.Errorf("%w: empty address", ErrInvalidArgument)
	}
	symbol, ok, err := lookupSymbol(e.read, kvstore.AddressSym, []byte(address))
	if err != nil || ok || !allocate {
		return symbol, ok, err
	}
	e.lastAddressSymbol++
	symbol = uint64(e.lastAddressSymbol)
	e.buffer.put(kvstore.AddressSym, []byte(address), codec.EncodeSymbol(symbol))
	return symbol, true, nil
}

// materializeAppends merges queued address list entries onto the current
// lists and buffers the results.
func (e *Engine) materializeAppends() error {
	for _, addressSymbol := range e.buffer.appendOrder {
		pending := e.buffer.appends[addressSymbol]
		list, _, err := lookupAddressList(e.read, addressSymbol)
		if err != nil {
			return err
		}
		list.TxSymbols = append(list.TxSymbols, pending.entries.TxSymbols...)
		list.Vouts = append(list.Vouts, pending.entries.Vouts...)
		if list.Address == nil {
			address := pending.address
			list.Address = &address
		}
		encoded, err := list.Encode()
		if err != nil {
			return err
		}
		e.buffer.put(kvstore.AddressUtxos, codec.EncodeSymbol(addressSymbol), encoded)
	}
	e.buffer.clearAppends()
	return nil
}

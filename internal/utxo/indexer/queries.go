package indexer

import (
	"context"
	"fmt"
	"math"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/codec"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/kvstore"
	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/safe"
)

// BlockRef selects a block by height or by hash. Height wins when both
// are set. A nil BlockRef selects the durable tip.
type BlockRef struct {
	Height *uint64
	Hash   string
}

// AtHeight selects the block at height.
func AtHeight(height uint64) *BlockRef {
	return &BlockRef{Height: &height}
}

// AtHash selects the block with hash.
func AtHash(hash string) *BlockRef {
	return &BlockRef{Hash: hash}
}

type Balance struct {
	Sats        uint64
	BlockSymbol uint64
	BlockHash   string
}

type Utxo struct {
	TxSymbol       uint64
	Vout           uint64
	Sats           uint64
	CreatedOnBlock uint64
	SpentOnBlock   *uint64
	SpentInTx      *uint64
}

type UtxoData struct {
	Address        string
	Sats           uint64
	CreatedOnBlock uint64
	SpentOnBlock   *uint64
	SpentInTx      *uint64
}

// Status is a snapshot of the engine watermarks. Symbols are -1 until the
// first block is indexed. BestBlockHash pairs with LastBlockSymbol and may
// be unflushed; SafeBestBlockHash pairs with SafeLastBlockSymbol.
type Status struct {
	SafeLastBlockSymbol int64
	SafeBestBlockHash   string
	LastBlockSymbol     int64
	BestBlockHash       string
	GenesisBlockHash    string
}

func (e *Engine) Status() Status {
	return Status{
		SafeLastBlockSymbol: e.safeLastBlockSymbol.Load(),
		SafeBestBlockHash:   e.safeBestBlockHash.Load(),
		LastBlockSymbol:     e.lastBlockSymbol.Load(),
		BestBlockHash:       e.bestBlockHash.Load(),
		GenesisBlockHash:    e.genesisBlockHash.Load(),
	}
}

// Available reports whether queries at height are served from durable data.
func (e *Engine) Available(height uint64) bool {
	h, err := safe.Int64(height)
	if err != nil {
		return false
	}
	sym := e.safeLastBlockSymbol.Load()
	return sym >= 0 && h <= sym
}

// BlockSymbol returns the symbol of a flushed block.
func (e *Engine) BlockSymbol(ctx context.Context, hash string) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	symbol, ok, err := lookupHashSymbol(e.store.Get, kvstore.BlockSym, hash)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: block %s", ErrNotFound, hash)
	}
	return symbol, nil
}

// BlockHash returns the hash of the flushed block with symbol.
func (e *Engine) BlockHash(ctx context.Context, symbol uint64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	hash, ok, err := lookupBlockHash(e.store.Get, symbol)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: block symbol %d", ErrNotFound, symbol)
	}
	return hash, nil
}

// AccountBalance sums the outputs of address that are unspent at the
// selected block. An address never seen has a zero balance.
func (e *Engine) AccountBalance(ctx context.Context, address string, at *BlockRef) (Balance, error) {
	if address == "" {
		return Balance{}, fmt.Errorf("%w: empty address", ErrInvalidArgument)
	}
	symbol, hash, err := e.resolveBlock(ctx, at)
	if err != nil {
		return Balance{}, err
	}
	balance := Balance{BlockSymbol: symbol, BlockHash: hash}

	list, ok, err := e.durableAddressList(address)
	if err != nil || !ok {
		return balance, err
	}

	var sats float64
	for i := range list.TxSymbols {
		if i%balanceCtxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Balance{}, err
			}
		}
		value, ok, err := lookupUtxoValue(e.store.Get, codec.UtxoKey{TxSymbol: list.TxSymbols[i], N: list.Vouts[i]})
		if err != nil {
			return Balance{}, err
		}
		if ok && value.UnspentAt(symbol) {
			sats += value.Sats
		}
	}
	balance.Sats = toSats(sats)
	return balance, nil
}

// AccountUtxos lists the outputs ever paid to address, or only the
// currently unspent ones.
func (e *Engine) AccountUtxos(ctx context.Context, address string, onlyUnspent bool) ([]Utxo, error) {
	if address == "" {
		return nil, fmt.Errorf("%w: empty address", ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	list, ok, err := e.durableAddressList(address)
	if err != nil || !ok {
		return []Utxo{}, err
	}

	utxos := make([]Utxo, 0, list.Len())
	for i := range list.TxSymbols {
		if i%balanceCtxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		key := codec.UtxoKey{TxSymbol: list.TxSymbols[i], N: list.Vouts[i]}
		value, ok, err := lookupUtxoValue(e.store.Get, key)
		if err != nil {
			return nil, err
		}
		if !ok || (onlyUnspent && !value.Unspent()) {
			continue
		}
		utxos = append(utxos, Utxo{
			TxSymbol:       key.TxSymbol,
			Vout:           key.N,
			Sats:           toSats(value.Sats),
			CreatedOnBlock: value.CreatedOnBlock,
			SpentOnBlock:   value.SpentOnBlock,
			SpentInTx:      value.SpentInTx,
		})
	}
	return utxos, nil
}

// UtxoData returns the indexed record of txid:vout.
func (e *Engine) UtxoData(ctx context.Context, txid string, vout uint32) (UtxoData, error) {
	if err := ctx.Err(); err != nil {
		return UtxoData{}, err
	}
	_, value, ok, err := lookupUtxo(e.store.Get, txid, vout)
	if err != nil {
		return UtxoData{}, err
	}
	if !ok {
		return UtxoData{}, fmt.Errorf("%w: utxo %s:%d", ErrNotFound, txid, vout)
	}

	data := UtxoData{
		Sats:           toSats(value.Sats),
		CreatedOnBlock: value.CreatedOnBlock,
		SpentOnBlock:   value.SpentOnBlock,
		SpentInTx:      value.SpentInTx,
	}
	if value.Address != nil {
		if data.Address, err = e.AddressBySymbol(ctx, *value.Address); err != nil {
			return UtxoData{}, err
		}
	}
	return data, nil
}

// AddressBySymbol returns the address an address symbol was allocated for.
func (e *Engine) AddressBySymbol(ctx context.Context, symbol uint64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	list, ok, err := lookupAddressList(e.store.Get, symbol)
	if err != nil {
		return "", err
	}
	if !ok || list.Address == nil {
		return "", fmt.Errorf("%w: address symbol %d", ErrNotFound, symbol)
	}
	return *list.Address, nil
}

func (e *Engine) durableAddressList(address string) (codec.AddressList, bool, error) {
	symbol, ok, err := lookupSymbol(e.store.Get, kvstore.AddressSym, []byte(address))
	if err != nil || !ok {
		return codec.AddressList{}, false, err
	}
	return lookupAddressList(e.store.Get, symbol)
}

// resolveBlock maps at to a block symbol no higher than the durable
// watermark.
func (e *Engine) resolveBlock(ctx context.Context, at *BlockRef) (uint64, string, error) {
	if err := ctx.Err(); err != nil {
		return 0, "", err
	}
	safeSymbol := e.safeLastBlockSymbol.Load()
	if safeSymbol < 0 {
		return 0, "", fmt.Errorf("%w: nothing indexed yet", ErrStillSyncing)
	}

	var symbol uint64
	switch {
	case at == nil || (at.Height == nil && at.Hash == ""):
		symbol = uint64(safeSymbol)
	case at.Height != nil:
		symbol = *at.Height
		if !e.Available(symbol) {
			return 0, "", fmt.Errorf("%w: height %d above %d", ErrStillSyncing, symbol, safeSymbol)
		}
	default:
		var ok bool
		var err error
		symbol, ok, err = lookupHashSymbol(e.store.Get, kvstore.BlockSym, at.Hash)
		if err != nil {
			return 0, "", err
		}
		if !ok {
			return 0, "", fmt.Errorf("%w: block %s", ErrNotFound, at.Hash)
		}
		if !e.Available(symbol) {
			return 0, "", fmt.Errorf("%w: block %s above %d", ErrStillSyncing, at.Hash, safeSymbol)
		}
	}

	hash, ok, err := lookupBlockHash(e.store.Get, symbol)
	if err != nil {
		return 0, "", err
	}
	if !ok {
		return 0, "", fmt.Errorf("%w: block symbol %d", ErrNotFound, symbol)
	}
	return symbol, hash, nil
}

func toSats(v float64) uint64 {
	if v <= 0 {
		return 0
	}
	return uint64(math.Round(v))
}

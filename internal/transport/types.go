package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/indexer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Indexer interface {
		Status() indexer.Status
		Err() error
		AccountBalance(ctx context.Context, address string, at *indexer.BlockRef) (indexer.Balance, error)
		AccountUtxos(ctx context.Context, address string, onlyUnspent bool) ([]indexer.Utxo, error)
		UtxoData(ctx context.Context, txid string, vout uint32) (indexer.UtxoData, error)
		BlockSymbol(ctx context.Context, hash string) (uint64, error)
		BlockHash(ctx context.Context, symbol uint64) (string, error)
	}
	SyncState interface {
		Synced() bool
	}
)

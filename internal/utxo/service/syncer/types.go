package syncer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/indexer"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Engine interface {
		Status() indexer.Status
		BlockHash(ctx context.Context, symbol uint64) (string, error)
		HandleBlock(ctx context.Context, block *model.RawBlock, removed bool) error
		SaveState(ctx context.Context) error
		Done() <-chan struct{}
	}
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		BlockHashAt(ctx context.Context, height uint64) (string, error)
		FetchBlock(ctx context.Context, hash string) (*model.RawBlock, error)
	}
	BlockCache interface {
		Put(hash string, block *model.RawBlock)
		Get(hash string) (*model.RawBlock, bool)
	}
	Metrics interface {
		ObserveIteration(err error, blocks int, started time.Time)
		ObserveReorg(depth int)
		SetNodeHeight(height uint64)
	}
)

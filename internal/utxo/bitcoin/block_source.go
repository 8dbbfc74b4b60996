package bitcoin

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/safe"
	"go.uber.org/ratelimit"
)

// BlockSource reads blocks from the node, throttled to a fixed request rate.
type BlockSource struct {
	rpc     RPCClient
	decoder ScriptDecoder
	limiter ratelimit.Limiter
}

// NewBlockSource builds a BlockSource. rps <= 0 disables throttling.
func NewBlockSource(rpc RPCClient, decoder ScriptDecoder, rps int) *BlockSource {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &BlockSource{
		rpc:     rpc,
		decoder: decoder,
		limiter: limiter,
	}
}

// LatestHeight returns the height of the node tip.
func (s *BlockSource) LatestHeight(ctx context.Context) (uint64, error) {
	if err := s.take(ctx); err != nil {
		return 0, err
	}
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// BlockHashAt returns the hash of the node's block at height.
func (s *BlockSource) BlockHashAt(ctx context.Context, height uint64) (string, error) {
	h, err := safe.Int64(height)
	if err != nil {
		return "", fmt.Errorf("block height %d exceeds rpc limit: %w", height, err)
	}
	if err := s.take(ctx); err != nil {
		return "", err
	}
	hash, err := s.rpc.GetBlockHash(h)
	if err != nil {
		return "", fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return hash.String(), nil
}

// FetchBlock retrieves the block with hash and converts it.
func (s *BlockSource) FetchBlock(ctx context.Context, hash string) (*model.RawBlock, error) {
	blockHash, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return nil, fmt.Errorf("parse block hash %q: %w", hash, err)
	}
	if err := s.take(ctx); err != nil {
		return nil, err
	}
	src, err := s.rpc.GetBlockVerboseTx(blockHash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	return BuildRawBlock(*src, s.decoder)
}

// FetchBlockAt retrieves the block at height.
func (s *BlockSource) FetchBlockAt(ctx context.Context, height uint64) (*model.RawBlock, error) {
	hash, err := s.BlockHashAt(ctx, height)
	if err != nil {
		return nil, err
	}
	block, err := s.FetchBlock(ctx, hash)
	if err != nil {
		return nil, err
	}
	if uint64(block.Height) != height {
		return nil, fmt.Errorf("block %s reported height %d, requested %d", hash, block.Height, height)
	}
	return block, nil
}

func (s *BlockSource) take(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.limiter.Take()
	return ctx.Err()
}

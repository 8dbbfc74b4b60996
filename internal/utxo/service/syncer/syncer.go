// Package syncer follows the node tip and feeds blocks to the indexer engine.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/indexer"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/workerpool"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

var (
	// ErrReorgTooDeep stops the loop when the node replaced more blocks than allowed.
	ErrReorgTooDeep = errors.New("syncer: reorg too deep")
	// ErrNoCommonAncestor stops the loop when even the indexed genesis is not on the node chain.
	ErrNoCommonAncestor = errors.New("syncer: no common ancestor with node")
)

// Service keeps the engine on the node's best chain.
type Service struct {
	logger      *zap.Logger
	engine      Engine
	source      BlockSource
	cache       BlockCache
	metrics     Metrics
	cfg         Config
	sleep       func(context.Context, time.Duration) error
	backoff     clock.Backoff
	blockSignal <-chan struct{}
	synced      atomic.Bool
}

// New builds a Service. blockSignal may be nil, in which case the loop polls.
func New(
	engine Engine,
	source BlockSource,
	cache BlockCache,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*Service, error) {
	switch {
	case engine == nil:
		return nil, errors.New("syncer engine is required")
	case source == nil:
		return nil, errors.New("syncer block source is required")
	case cache == nil:
		return nil, errors.New("syncer block cache is required")
	case metrics == nil:
		return nil, errors.New("syncer metrics is required")
	}

	return &Service{
		logger:      logger.Named("syncer"),
		engine:      engine,
		source:      source,
		cache:       cache,
		metrics:     metrics,
		cfg:         cfg.withDefaults(),
		sleep:       clock.SleepWithContext,
		backoff:     clock.Backoff{Min: minBackoff, Max: maxBackoff},
		blockSignal: blockSignal,
	}, nil
}

// Synced reports whether the last iteration left the engine at the node tip.
func (s *Service) Synced() bool {
	return s.synced.Load()
}

// Run follows the node until the context is canceled or a fatal error occurs.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		caughtUp, err := s.run(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if s.fatal(err) {
				s.logger.Error("sync stopped", zap.Error(err))
				return err
			}
			d := s.backoff.Next()
			s.logger.Warn("sync iteration failed, backing off", zap.Error(err), zap.Duration("sleep", d))
			if sleepErr := s.sleep(ctx, d); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		s.backoff.Reset()

		if caughtUp {
			if err := s.wait(ctx, s.cfg.PollInterval); err != nil {
				return err
			}
		}
	}
}

func (s *Service) run(ctx context.Context) (caughtUp bool, err error) {
	started := time.Now()
	blocks := 0
	defer func() {
		s.metrics.ObserveIteration(err, blocks, started)
	}()

	nodeHeight, err := s.source.LatestHeight(ctx)
	if err != nil {
		return false, fmt.Errorf("latest height: %w", err)
	}
	s.metrics.SetNodeHeight(nodeHeight)

	forkHeight, forkHash, removed, err := s.rewind(ctx, nodeHeight)
	blocks += removed
	if err == nil {
		var added int
		added, err = s.advance(ctx, forkHeight, forkHash, nodeHeight)
		blocks += added
	}
	if blocks > 0 {
		if saveErr := s.engine.SaveState(ctx); saveErr != nil {
			err = errors.Join(err, fmt.Errorf("save state: %w", saveErr))
		}
	}
	if err != nil {
		return false, err
	}

	tip := s.engine.Status().LastBlockSymbol
	caughtUp = tip >= 0 && uint64(tip) == nodeHeight
	if caughtUp && !s.synced.Swap(true) {
		s.logger.Info("synced with node", zap.Uint64("height", nodeHeight))
	} else if !caughtUp {
		s.synced.Store(false)
		s.logger.Debug("sync progress", zap.Int64("tip", tip), zap.Uint64("nodeHeight", nodeHeight), zap.Int("blocks", blocks))
	}
	return caughtUp, nil
}

// rewind walks back from the engine tip until the indexed hash matches the
// node's hash at the same height and queues removal of every block above
// that point, tip first. It returns the fork height and hash, -1 and "" when
// nothing is indexed.
func (s *Service) rewind(ctx context.Context, nodeHeight uint64) (int64, string, int, error) {
	tip := s.engine.Status().LastBlockSymbol
	var stale []string
	height, forkHash := tip, ""
	for ; height >= 0; height-- {
		indexed, err := s.engine.BlockHash(ctx, uint64(height))
		if err != nil {
			return 0, "", 0, fmt.Errorf("indexed hash at %d: %w", height, err)
		}
		if uint64(height) <= nodeHeight {
			nodeHash, err := s.source.BlockHashAt(ctx, uint64(height))
			if err != nil {
				return 0, "", 0, err
			}
			if nodeHash == indexed {
				forkHash = indexed
				break
			}
		}
		if len(stale) >= s.cfg.MaxReorgDepth {
			return 0, "", 0, fmt.Errorf("%w: more than %d blocks below tip %d", ErrReorgTooDeep, s.cfg.MaxReorgDepth, tip)
		}
		stale = append(stale, indexed)
	}
	if len(stale) == 0 {
		return height, forkHash, 0, nil
	}
	if height < 0 {
		return 0, "", 0, ErrNoCommonAncestor
	}

	s.logger.Warn("reorg detected",
		zap.Int64("tip", tip),
		zap.Int64("forkHeight", height),
		zap.Int("depth", len(stale)))
	s.metrics.ObserveReorg(len(stale))

	for i, hash := range stale {
		block, err := s.block(ctx, hash)
		if err != nil {
			return 0, "", i, fmt.Errorf("stale block %s: %w", hash, err)
		}
		if err := s.engine.HandleBlock(ctx, block, true); err != nil {
			return 0, "", i, err
		}
	}
	return height, forkHash, len(stale), nil
}

// advance prefetches the next chunk above the fork point and queues it in
// height order. It stops early, without error, when the fetched blocks no
// longer link to each other so the next iteration can detect the reorg.
func (s *Service) advance(ctx context.Context, forkHeight int64, forkHash string, nodeHeight uint64) (int, error) {
	start := uint64(forkHeight + 1)
	if start > nodeHeight {
		return 0, nil
	}
	end := nodeHeight
	if chunkEnd := start + uint64(s.cfg.ChunkSize) - 1; chunkEnd < end {
		end = chunkEnd
	}

	heights := make([]uint64, 0, end-start+1)
	for h := start; h <= end; h++ {
		heights = append(heights, h)
	}
	blocks, err := workerpool.Map(ctx, s.cfg.PrefetchWorkers, heights, s.blockAt)
	if err != nil {
		return 0, fmt.Errorf("prefetch blocks %d-%d: %w", start, end, err)
	}

	parent := forkHash
	for i, block := range blocks {
		if !block.IsGenesis() && block.PreviousBlockHash != parent {
			s.logger.Info("node chain moved during prefetch",
				zap.Int64("height", block.Height),
				zap.String("expectedParent", parent),
				zap.String("parent", block.PreviousBlockHash))
			return i, nil
		}
		if err := s.engine.HandleBlock(ctx, block, false); err != nil {
			return i, err
		}
		parent = block.Hash
	}
	return len(blocks), nil
}

func (s *Service) blockAt(ctx context.Context, height uint64) (*model.RawBlock, error) {
	hash, err := s.source.BlockHashAt(ctx, height)
	if err != nil {
		return nil, err
	}
	block, err := s.block(ctx, hash)
	if err != nil {
		return nil, err
	}
	if block.Height < 0 || uint64(block.Height) != height {
		return nil, fmt.Errorf("block %s reported height %d, requested %d", hash, block.Height, height)
	}
	return block, nil
}

func (s *Service) block(ctx context.Context, hash string) (*model.RawBlock, error) {
	if block, ok := s.cache.Get(hash); ok {
		return block, nil
	}
	block, err := s.source.FetchBlock(ctx, hash)
	if err != nil {
		return nil, err
	}
	s.cache.Put(hash, block)
	return block, nil
}

func (s *Service) fatal(err error) bool {
	if errors.Is(err, ErrReorgTooDeep) || errors.Is(err, ErrNoCommonAncestor) || errors.Is(err, indexer.ErrEngineHalted) {
		return true
	}
	select {
	case <-s.engine.Done():
		return true
	default:
		return false
	}
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if s.blockSignal == nil {
		return s.sleep(ctx, d)
	}
	return clock.SleepUntilSignal(ctx, d, s.blockSignal)
}

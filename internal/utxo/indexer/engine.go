// Package indexer maintains the symbol tables and UTXO index of a chain.
//
// Blocks are queued with HandleBlock and applied or rolled back one at a
// time by a single worker. Writes are buffered and flushed atomically
// together with the metadata watermark; queries only see flushed data.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

type work struct {
	block   *model.RawBlock
	removed bool
}

// Engine is the indexing state machine. It is IDLE while no worker runs
// and WORKER_ACTIVE while the queue is drained.
type Engine struct {
	store   Store
	cfg     Config
	metrics Metrics
	logger  *zap.Logger

	initialized atomic.Bool

	// stateMu serializes block processing and flushes.
	stateMu           sync.Mutex
	buffer            *writeBuffer
	lastTxSymbol      int64
	lastAddressSymbol int64
	genesisUpdated    bool

	lastBlockSymbol     atomic.Int64
	safeLastBlockSymbol atomic.Int64
	bestBlockHash       atomic.String
	safeBestBlockHash   atomic.String
	genesisBlockHash    atomic.String

	queueMu sync.Mutex
	queue   []work
	active  bool
	waiters []chan struct{}
	fatal   error
	done    chan struct{}
}

// New builds an Engine over store. Init must be called before use.
func New(store Store, cfg Config, metrics Metrics, logger *zap.Logger) (*Engine, error) {
	if store == nil {
		return nil, errors.New("indexer store is required")
	}
	if metrics == nil {
		return nil, errors.New("indexer metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		store:             store,
		cfg:               cfg.withDefaults(),
		metrics:           metrics,
		logger:            logger.Named("indexer"),
		buffer:            newWriteBuffer(),
		lastTxSymbol:      -1,
		lastAddressSymbol: -1,
		done:              make(chan struct{}),
	}
	e.lastBlockSymbol.Store(-1)
	e.safeLastBlockSymbol.Store(-1)
	return e, nil
}

// Init restores the watermarks from the store metadata. Only the first
// call has an effect.
func (e *Engine) Init(ctx context.Context) error {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	if e.initialized.Load() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	st, err := e.loadState()
	if err != nil {
		return fmt.Errorf("restore indexer state: %w", err)
	}

	e.lastTxSymbol = st.lastTxSymbol
	e.lastAddressSymbol = st.lastAddressSymbol
	e.lastBlockSymbol.Store(st.lastBlockSymbol)
	e.safeLastBlockSymbol.Store(st.lastBlockSymbol)
	e.bestBlockHash.Store(st.bestBlockHash)
	e.safeBestBlockHash.Store(st.bestBlockHash)
	e.genesisBlockHash.Store(st.genesisBlockHash)
	e.metrics.SetWatermark(st.lastBlockSymbol)
	e.initialized.Store(true)

	e.logger.Info("indexer state restored",
		zap.Int64("lastBlockSymbol", st.lastBlockSymbol),
		zap.Int64("lastTxSymbol", st.lastTxSymbol),
		zap.Int64("lastAddressSymbol", st.lastAddressSymbol),
		zap.String("bestBlockHash", st.bestBlockHash),
		zap.String("genesisBlockHash", st.genesisBlockHash))
	return nil
}

// HandleBlock queues block for addition, or for removal when removed is
// set, and starts the worker if it is idle. It is safe for concurrent use.
func (e *Engine) HandleBlock(ctx context.Context, block *model.RawBlock, removed bool) error {
	if block == nil || block.Hash == "" || block.Height < 0 {
		return fmt.Errorf("%w: block needs a hash and a non-negative height", ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !e.initialized.Load() {
		return ErrNotInitialized
	}

	e.queueMu.Lock()
	defer e.queueMu.Unlock()

	if e.fatal != nil {
		return halted(e.fatal)
	}
	e.queue = append(e.queue, work{block: block, removed: removed})
	e.metrics.SetQueueLength(len(e.queue))
	if !e.active {
		e.active = true
		go e.drain()
	}
	return nil
}

// WaitIdle blocks until the current drain cycle ends. It returns at once
// when no worker is active.
func (e *Engine) WaitIdle(ctx context.Context) error {
	e.queueMu.Lock()
	if !e.active {
		fatal := e.fatal
		e.queueMu.Unlock()
		if fatal != nil {
			return halted(fatal)
		}
		return nil
	}
	wait := make(chan struct{})
	e.waiters = append(e.waiters, wait)
	e.queueMu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wait:
	}
	if err := e.Err(); err != nil {
		return halted(err)
	}
	return nil
}

// SaveState waits for an active worker to drain the queue and flushes
// everything buffered. A flush failure halts the engine.
func (e *Engine) SaveState(ctx context.Context) error {
	if !e.initialized.Load() {
		return ErrNotInitialized
	}
	if err := e.WaitIdle(ctx); err != nil {
		return err
	}

	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	if err := e.Err(); err != nil {
		return halted(err)
	}
	if err := e.processBatches(); err != nil {
		e.halt(err)
		return err
	}
	return nil
}

// Done is closed when the engine halts on a fatal error.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Err returns the fatal error that halted the engine, if any.
func (e *Engine) Err() error {
	e.queueMu.Lock()
	defer e.queueMu.Unlock()
	return e.fatal
}

func (e *Engine) drain() {
	for {
		w, ok := e.next()
		if !ok {
			return
		}
		if err := e.processWork(w); err != nil {
			e.halt(err)
		}
	}
}

// next pops the oldest queued block. When the queue is empty or the engine
// halted it switches back to IDLE and releases every waiter.
func (e *Engine) next() (work, bool) {
	e.queueMu.Lock()
	defer e.queueMu.Unlock()

	if e.fatal != nil || len(e.queue) == 0 {
		e.active = false
		e.queue = nil
		for _, wait := range e.waiters {
			close(wait)
		}
		e.waiters = nil
		e.metrics.SetQueueLength(0)
		return work{}, false
	}

	w := e.queue[0]
	e.queue[0] = work{}
	e.queue = e.queue[1:]
	e.metrics.SetQueueLength(len(e.queue))
	return w, true
}

func (e *Engine) halt(err error) {
	e.logger.Error("indexer halted", zap.Error(err))

	e.queueMu.Lock()
	defer e.queueMu.Unlock()
	if e.fatal != nil {
		return
	}
	e.fatal = err
	close(e.done)
}

func (e *Engine) processWork(w work) (err error) {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	started := time.Now()
	operation := OperationApply
	if w.removed {
		operation = OperationRemove
	}
	defer func() {
		e.metrics.ObserveBlock(operation, err, len(w.block.Txs), started)
	}()

	block := w.block
	if e.genesisBlockHash.Load() == "" {
		if !block.IsGenesis() {
			return inconsistent("first block %s has height %d, expected genesis", block.Hash, block.Height)
		}
		e.genesisBlockHash.Store(block.Hash)
		e.genesisUpdated = true
	}

	if w.removed {
		return e.removeBlock(block)
	}
	return e.addBlock(block)
}

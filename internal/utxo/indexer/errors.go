package indexer

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a lookup miss on a query path.
	ErrNotFound = errors.New("indexer: not found")
	// ErrStillSyncing reports a query above the durable watermark.
	ErrStillSyncing = errors.New("indexer: still syncing")
	// ErrInconsistentState wraps every fatal divergence between the index and the chain.
	ErrInconsistentState = errors.New("indexer: inconsistent state")
	// ErrEngineHalted is returned once the worker stopped on a fatal error.
	ErrEngineHalted = errors.New("indexer: engine halted")
	// ErrNotInitialized is returned when the engine is used before Init.
	ErrNotInitialized = errors.New("indexer: not initialized")
	// ErrInvalidArgument reports malformed hashes, addresses or blocks.
	ErrInvalidArgument = errors.New("indexer: invalid argument")
)

func inconsistent(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInconsistentState, fmt.Sprintf(format, args...))
}

func halted(cause error) error {
	return fmt.Errorf("%w: %w", ErrEngineHalted, cause)
}

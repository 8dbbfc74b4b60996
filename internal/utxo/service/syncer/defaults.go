package syncer

import "time"

const (
	defaultChunkSize       = 1000
	defaultPrefetchWorkers = 8
	defaultMaxReorgDepth   = 100

	minBackoff   = time.Second
	maxBackoff   = time.Minute
	pollInterval = 30 * time.Second
)

// Config tunes the sync loop. Zero values fall back to defaults.
type Config struct {
	ChunkSize       int
	PrefetchWorkers int
	MaxReorgDepth   int
	PollInterval    time.Duration
}

func (c Config) withDefaults() Config {
	if c.ChunkSize <= 0 {
		c.ChunkSize = defaultChunkSize
	}
	if c.PrefetchWorkers <= 0 {
		c.PrefetchWorkers = defaultPrefetchWorkers
	}
	if c.MaxReorgDepth <= 0 {
		c.MaxReorgDepth = defaultMaxReorgDepth
	}
	if c.PollInterval <= 0 {
		c.PollInterval = pollInterval
	}
	return c
}

package indexer

const (
	defaultBlockBatchSize   = 200
	defaultTxBatchSize      = 20_000
	defaultAddressBatchSize = 20_000

	// balanceCtxCheckEvery bounds how many list entries a query scans
	// between context checks.
	balanceCtxCheckEvery = 1024
)

// Config holds the flush thresholds, counted in pending ops per table.
type Config struct {
	BlockBatchSize   int
	TxBatchSize      int
	AddressBatchSize int
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		BlockBatchSize:   defaultBlockBatchSize,
		TxBatchSize:      defaultTxBatchSize,
		AddressBatchSize: defaultAddressBatchSize,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BlockBatchSize <= 0 {
		c.BlockBatchSize = d.BlockBatchSize
	}
	if c.TxBatchSize <= 0 {
		c.TxBatchSize = d.TxBatchSize
	}
	if c.AddressBatchSize <= 0 {
		c.AddressBatchSize = d.AddressBatchSize
	}
	return c
}

// Package model defines the raw chain shapes consumed by the indexer.
package model

// RawBlock is a block as delivered by the node, already validated upstream.
type RawBlock struct {
	Hash              string
	Height            int64
	PreviousBlockHash string
	Txs               []RawTransaction
}

// IsGenesis reports whether the block sits at height zero.
func (b *RawBlock) IsGenesis() bool {
	return b.Height == 0
}

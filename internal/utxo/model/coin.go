package model

// Coin names the chain whose blocks are indexed.
type Coin string

// Network names the chain network.
type Network string

var (
	BTC Coin = "BTC"
	LTC Coin = "LTC"
	DGB Coin = "DGB"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
	Regtest Network = "regtest"
)

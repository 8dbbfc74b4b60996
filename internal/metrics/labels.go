// Package metrics holds the Prometheus collectors of the indexer components.
package metrics

import "github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"

const namespace = "blockinsight7000"

type labels struct {
	coin    string
	network string
}

func newLabels(coin model.Coin, network model.Network) labels {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return labels{coin: string(coin), network: string(network)}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

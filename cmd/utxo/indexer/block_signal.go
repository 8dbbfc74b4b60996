//go:build !zmq

package main

import (
	"context"

	"go.uber.org/zap"
)

// startBlockSignal is a no-op without zmq support; the syncer polls instead.
func startBlockSignal(_ context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr != "" {
		logger.Warn("built without zmq support, polling the node instead", zap.String("zmqAddr", addr))
	}
	return nil, nil
}

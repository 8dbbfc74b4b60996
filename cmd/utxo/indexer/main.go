// Command indexer follows a Bitcoin node and serves address balances and UTXOs.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/indexer"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/kvstore"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/service/syncer"
	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/blockcache"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

type config struct {
	DataDir          string        `long:"data-dir" env:"UTXO_INDEXER_DATA_DIR" description:"directory holding the index" required:"true"`
	Coin             model.Coin    `long:"coin" env:"UTXO_INDEXER_COIN" description:"coin name" default:"BTC"`
	Network          model.Network `long:"network" env:"UTXO_INDEXER_NETWORK" description:"network name" required:"true"`
	RPCURL           string        `long:"rpc-url" env:"UTXO_INDEXER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser          string        `long:"rpc-user" env:"UTXO_INDEXER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword      string        `long:"rpc-password" env:"UTXO_INDEXER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRPS           int           `long:"rpc-rps" env:"UTXO_INDEXER_RPC_RPS" description:"max RPC requests per second, 0 for unlimited" default:"0"`
	MetricsAddr      string        `long:"metrics-addr" env:"UTXO_INDEXER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	APIAddr          string        `long:"api-addr" env:"UTXO_INDEXER_API_ADDR" description:"address for the query API" default:":8001"`
	BlockCacheSize   int           `long:"block-cache-size" env:"UTXO_INDEXER_BLOCK_CACHE_SIZE" description:"number of fetched blocks kept in memory" default:"1000"`
	BlockBatchSize   int           `long:"block-batch-size" env:"UTXO_INDEXER_BLOCK_BATCH_SIZE" description:"buffered blocks before a flush" default:"200"`
	TxBatchSize      int           `long:"tx-batch-size" env:"UTXO_INDEXER_TX_BATCH_SIZE" description:"buffered transactions before a flush" default:"20000"`
	AddressBatchSize int           `long:"address-batch-size" env:"UTXO_INDEXER_ADDRESS_BATCH_SIZE" description:"buffered new addresses before a flush" default:"20000"`
	PrefetchWorkers  int           `long:"prefetch-workers" env:"UTXO_INDEXER_PREFETCH_WORKERS" description:"concurrent block fetches" default:"8"`
	SyncChunk        int           `long:"sync-chunk" env:"UTXO_INDEXER_SYNC_CHUNK" description:"blocks fetched per sync iteration" default:"1000"`
	MaxReorgDepth    int           `long:"max-reorg-depth" env:"UTXO_INDEXER_MAX_REORG_DEPTH" description:"deepest reorg unwound automatically" default:"100"`
	PollInterval     time.Duration `long:"poll-interval" env:"UTXO_INDEXER_POLL_INTERVAL" description:"node poll interval once synced" default:"30s"`
	ZMQAddr          string        `long:"zmq-addr" env:"UTXO_INDEXER_ZMQ_ADDR" description:"zmq hashblock publisher address"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("utxo indexer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(
		zap.String("coin", string(cfg.Coin)),
		zap.String("network", string(cfg.Network)),
	)

	store, err := kvstore.Open(filepath.Join(cfg.DataDir, "utxo"), metrics.NewKVStore(cfg.Coin, cfg.Network))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close store", zap.Error(err))
		}
	}()

	engine, err := indexer.New(store, indexer.Config{
		BlockBatchSize:   cfg.BlockBatchSize,
		TxBatchSize:      cfg.TxBatchSize,
		AddressBatchSize: cfg.AddressBatchSize,
	}, metrics.NewIndexer(cfg.Coin, cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init engine: %w", err)
	}
	if err := engine.Init(ctx); err != nil {
		return fmt.Errorf("restore engine state: %w", err)
	}

	decoder, err := bitcoin.NewScriptDecoder(cfg.Coin, cfg.Network)
	if err != nil {
		return err
	}
	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	source := bitcoin.NewBlockSource(
		bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network)),
		decoder,
		cfg.RPCRPS,
	)

	cache, err := blockcache.New[*model.RawBlock](cfg.BlockCacheSize)
	if err != nil {
		return err
	}
	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return err
	}
	sync, err := syncer.New(engine, source, cache, metrics.NewSyncer(cfg.Coin, cfg.Network), syncer.Config{
		ChunkSize:       cfg.SyncChunk,
		PrefetchWorkers: cfg.PrefetchWorkers,
		MaxReorgDepth:   cfg.MaxReorgDepth,
		PollInterval:    cfg.PollInterval,
	}, logger, blockSignal)
	if err != nil {
		return err
	}
	handler := transport.NewQueryHandler(engine, sync, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sync.Run(gctx)
	})
	g.Go(func() error {
		return serve(gctx, "api", transport.NewHTTPServer(cfg.APIAddr, handler.Routes()), logger)
	})
	g.Go(func() error {
		return serve(gctx, "metrics", newMetricsServer(cfg.MetricsAddr), logger)
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			return nil
		case <-engine.Done():
			return engine.Err()
		}
	})
	err = g.Wait()
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		err = nil
	}

	if engine.Err() == nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if saveErr := engine.SaveState(shutdownCtx); saveErr != nil {
			err = errors.Join(err, fmt.Errorf("save state: %w", saveErr))
		} else {
			logger.Info("state saved", zap.Int64("lastBlockSymbol", engine.Status().LastBlockSymbol))
		}
	}
	return err
}

func serve(ctx context.Context, name string, srv *http.Server, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("server", name), zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%s server: %w", name, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown http server", zap.String("server", name), zap.Error(err))
	}
	return nil
}

func newMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}

// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/sprintertech/signet-orders/api"
	"github.com/sprintertech/signet-orders/api/handlers"
	"github.com/sprintertech/signet-orders/bundle"
	"github.com/sprintertech/signet-orders/cache"
	"github.com/sprintertech/signet-orders/chains/evm/calls/contracts"
	evmListener "github.com/sprintertech/signet-orders/chains/evm/listener"
	"github.com/sprintertech/signet-orders/chains/evm/transactor"
	"github.com/sprintertech/signet-orders/config"
	"github.com/sprintertech/signet-orders/filler"
	"github.com/sprintertech/signet-orders/health"
	"github.com/sprintertech/signet-orders/metrics"
	"github.com/sprintertech/signet-orders/price"
	"github.com/sprintertech/signet-orders/signer"
	"github.com/sprintertech/signet-orders/store"
	"github.com/sprintertech/signet-orders/txcache"
	"github.com/sygmaprotocol/sygma-core/observability"
)

var Version string

func Run() error {
	configuration, err := LoadConfig()
	panicOnError(err)
	fillerConfig := configuration.FillerConfig

	observability.ConfigureLogger(fillerConfig.Level(), os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chains, err := ConnectChains(ctx, configuration.ChainConfigs)
	panicOnError(err)
	log.Info().
		Uint64("host", chains.System.Host.ChainID).
		Uint64("rollup", chains.System.Rollup.ChainID).
		Msg("Connected to host and rollup")

	go health.StartHealthEndpoint(fillerConfig.HealthPort, chains.Rollup)

	fillerSigner, err := signer.NewSignerFromConfig(ctx, fillerConfig.Signer)
	panicOnError(err)

	mp, err := observability.InitMetricProvider(ctx, fillerConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	fillerMetrics, err := metrics.NewFillerMetrics(ctx, mp.Meter("filler-metric-provider"), fillerConfig.Env, fillerSigner.Address().Hex(), Version)
	panicOnError(err)

	txCache, err := NewTxCacheClient(fillerConfig)
	panicOnError(err)

	journalPath := viper.GetString(config.JournalFlagName)
	if journalPath == "" {
		journalPath = fillerConfig.JournalPath
	}
	journal, err := store.NewJournal(journalPath)
	panicOnError(err)
	defer journal.Close()

	clock := clockwork.NewRealClock()
	bundleCache := cache.NewBundleCache(ctx, fillerConfig.BundleTTL)
	sender := bundle.NewSender(txCache, bundleCache)
	strategy, err := filler.ParseStrategy(fillerConfig.Strategy)
	panicOnError(err)

	opts := []filler.Option{
		filler.WithPendingOrders(bundleCache),
		filler.WithMetrics(fillerMetrics),
	}
	if fillerConfig.Preflight {
		opts = append(opts, filler.WithPreflight(contracts.NewPermit2Contract(chains.Rollup, chains.System.Rollup.Permit2)))
	}
	if fillerConfig.Profit.Enabled {
		priceAPI := price.NewCoinmarketcapAPI(fillerConfig.Profit.CoinmarketcapURL, fillerConfig.Profit.CoinmarketcapApiKey)
		opts = append(opts, filler.WithProfitChecker(price.NewProfitChecker(priceAPI, chains.Tokens, chains.System.Rollup.ChainID, fillerConfig.Profit.MinProfitUSD)))
	}

	f := filler.NewFiller(
		fillerSigner,
		chains.System,
		txCache,
		sender,
		chains.Rollup,
		transactor.NewTransactor(chains.Rollup, fillerSigner, chains.System.Rollup.ChainID, chains.RollupConfig.TxOpts()),
		transactor.NewTransactor(chains.Host, fillerSigner, chains.System.Host.ChainID, chains.HostConfig.TxOpts()),
		clock,
		filler.Config{
			Strategy:           strategy,
			SubmitBlocks:       fillerConfig.SubmitBlocks,
			MaxConcurrentFills: fillerConfig.MaxConcurrentFills,
			RequestTimeout:     fillerConfig.RequestTimeout,
			PollInterval:       fillerConfig.PollInterval,
		},
		opts...,
	)
	go f.Start(ctx)

	watcher := evmListener.NewBundleWatcher(
		log.With().Str("chain", chains.RollupConfig.GeneralChainConfig.Name),
		chains.Rollup,
		bundleCache,
		journal,
		fillerMetrics,
		chains.System.Rollup.Orders,
		clock,
		chains.RollupConfig.BlockRetryInterval,
	)
	go watcher.Start(ctx)

	statusHandler := handlers.NewStatusHandler(bundleCache, journal)
	go api.Serve(ctx, fillerConfig.ApiAddr, api.StatusRouter(statusHandler))

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started filler %s with address %s. Version: v%s", fillerConfig.Id, fillerSigner.Address().Hex(), Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func NewTxCacheClient(c config.FillerConfig) (*txcache.Client, error) {
	return txcache.NewClient(txcache.Config{
		URL:        c.TxCache.URL,
		MaxRetries: c.TxCache.MaxRetries,
		RetryDelay: c.TxCache.RetryDelay,
		Timeout:    c.RequestTimeout,
	})
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}

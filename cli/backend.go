// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sprintertech/signet-orders/api"
	"github.com/sprintertech/signet-orders/api/handlers"
	"github.com/sprintertech/signet-orders/app"
	"github.com/sprintertech/signet-orders/bundle"
	"github.com/sprintertech/signet-orders/cache"
	"github.com/sprintertech/signet-orders/chains/evm/listener"
	"github.com/sprintertech/signet-orders/chains/evm/transactor"
	"github.com/sprintertech/signet-orders/config"
	"github.com/sprintertech/signet-orders/devnet"
	"github.com/sprintertech/signet-orders/filler"
	"github.com/sprintertech/signet-orders/initiator"
	"github.com/sprintertech/signet-orders/orders"
	"github.com/sprintertech/signet-orders/signer"
	"github.com/sprintertech/signet-orders/txcache"
)

const (
	DevnetFlagName     = "devnet"
	DevnetAddrFlagName = "devnet-addr"

	DEFAULT_DEVNET_ADDR  = "127.0.0.1:3030"
	ROUNDTRIP_BUNDLE_TTL = time.Minute * 2
)

// DEVNET_FUNDING is minted on both devnet chains for the generated account.
var DEVNET_FUNDING = new(big.Int).Mul(initiator.EXAMPLE_AMOUNT, big.NewInt(10))

type txCache interface {
	initiator.OrderForwarder
	filler.OrderSource
	bundle.Relay
}

type chainClient interface {
	transactor.ChainClient
	listener.ChainReader
}

// backend is the chains, transaction cache and account the command line
// tools operate on.
type backend struct {
	system       orders.SystemConstants
	tokens       *config.TokenStore
	cache        txCache
	host         chainClient
	rollup       chainClient
	hostOpts     transactor.TxOpts
	rollupOpts   transactor.TxOpts
	signer       orders.Signer
	submitBlocks int
	devnet       *devnet.Devnet
}

func bindDevnetFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(DevnetFlagName, false, "Run against an in-process devnet instead of the configured chains")
	cmd.Flags().String(DevnetAddrFlagName, DEFAULT_DEVNET_ADDR, "Address the devnet transaction cache listens on")
}

func newBackend(ctx context.Context, cmd *cobra.Command) (*backend, error) {
	useDevnet, err := cmd.Flags().GetBool(DevnetFlagName)
	if err != nil {
		return nil, err
	}
	if useDevnet {
		addr, err := cmd.Flags().GetString(DevnetAddrFlagName)
		if err != nil {
			return nil, err
		}
		return devnetBackend(ctx, addr)
	}
	return configuredBackend(ctx)
}

func configuredBackend(ctx context.Context) (*backend, error) {
	configuration, err := app.LoadConfig()
	if err != nil {
		return nil, err
	}

	chains, err := app.ConnectChains(ctx, configuration.ChainConfigs)
	if err != nil {
		return nil, err
	}

	s, err := signer.NewSignerFromConfig(ctx, configuration.FillerConfig.Signer)
	if err != nil {
		return nil, err
	}

	client, err := app.NewTxCacheClient(configuration.FillerConfig)
	if err != nil {
		return nil, err
	}

	return &backend{
		system:       chains.System,
		tokens:       chains.Tokens,
		cache:        client,
		host:         chains.Host,
		rollup:       chains.Rollup,
		hostOpts:     chains.HostConfig.TxOpts(),
		rollupOpts:   chains.RollupConfig.TxOpts(),
		signer:       s,
		submitBlocks: configuration.FillerConfig.SubmitBlocks,
	}, nil
}

// devnetBackend starts a devnet behind a local transaction cache endpoint and
// funds a freshly generated account on both chains, including rollup native
// value for GetOut orders.
func devnetBackend(ctx context.Context, addr string) (*backend, error) {
	system := devnet.DefaultSystem()
	tokens := devnet.DefaultTokens()
	d := devnet.New(system, clockwork.NewRealClock())

	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	account := signer.NewLocalSigner(key)

	for _, chainID := range []uint64{system.Host.ChainID, system.Rollup.ChainID} {
		token, err := tokens.ConfigBySymbol(chainID, initiator.EXAMPLE_TOKEN)
		if err != nil {
			return nil, err
		}
		err = d.Fund(chainID, token.Address, account.Address(), DEVNET_FUNDING)
		if err != nil {
			return nil, err
		}
	}
	err = d.Fund(system.Rollup.ChainID, orders.NativeToken, account.Address(), DEVNET_FUNDING)
	if err != nil {
		return nil, err
	}

	go api.Serve(ctx, addr, api.TxCacheRouter(handlers.NewTxCacheHandler(d)))

	client, err := txcache.NewClient(txcache.Config{
		URL:        fmt.Sprintf("http://%s", addr),
		MaxRetries: 3,
		RetryDelay: time.Millisecond * 500,
		Timeout:    time.Second * 10,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("account", account.Address().Hex()).Str("addr", addr).Msg("Started devnet")
	return &backend{
		system: system,
		tokens: tokens,
		cache:  client,
		host:   d.Host(),
		rollup: d.Rollup(),
		signer: account,
		devnet: d,
	}, nil
}

// minePoller produces a devnet block before every poll of the watcher.
type minePoller struct {
	devnet  *devnet.Devnet
	watcher *listener.BundleWatcher
}

func (p minePoller) Poll(ctx context.Context) error {
	result := p.devnet.MineBlock()
	log.Debug().Uint64("block", result.Number).Int("mined", len(result.Mined)).Msg("Mined devnet block")
	return p.watcher.Poll(ctx)
}

func (b *backend) rollupTransactor() *transactor.Transactor {
	return transactor.NewTransactor(b.rollup, b.signer, b.system.Rollup.ChainID, b.rollupOpts)
}

// roundtrip wires an individual filler and a bundle watcher around the
// backend account, which acts both as the swapper and the filler.
func (b *backend) roundtrip(ctx context.Context) *initiator.Roundtrip {
	clock := clockwork.NewRealClock()
	bundles := cache.NewBundleCache(ctx, ROUNDTRIP_BUNDLE_TTL)

	f := filler.NewFiller(
		b.signer,
		b.system,
		b.cache,
		bundle.NewSender(b.cache, bundles),
		b.rollup,
		b.rollupTransactor(),
		transactor.NewTransactor(b.host, b.signer, b.system.Host.ChainID, b.hostOpts),
		clock,
		filler.Config{
			Strategy:     filler.Individual,
			SubmitBlocks: b.submitBlocks,
		},
		filler.WithPendingOrders(bundles),
	)

	watcher := listener.NewBundleWatcher(
		log.With().Str("component", "roundtrip"),
		b.rollup,
		bundles,
		nil,
		nil,
		b.system.Rollup.Orders,
		clock,
		0,
	)
	var poller initiator.BundlePoller = watcher
	if b.devnet != nil {
		poller = minePoller{devnet: b.devnet, watcher: watcher}
	}

	i := initiator.NewInitiator(b.signer, b.system, b.tokens, b.cache, clock)
	return initiator.NewRoundtrip(i, f, poller, clock, initiator.DEFAULT_RESOLVE_PERIOD)
}

func bindEnvFlag(cmd *cobra.Command, flag string, env string) {
	_ = viper.BindPFlag(flag, cmd.Flags().Lookup(flag))
	_ = viper.BindEnv(flag, env)
}

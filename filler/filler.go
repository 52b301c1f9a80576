package filler

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/sprintertech/signet-orders/bundle"
	"github.com/sprintertech/signet-orders/chains/evm/calls/contracts"
	"github.com/sprintertech/signet-orders/chains/evm/transactor"
	"github.com/sprintertech/signet-orders/orders"
)

const (
	DEFAULT_SUBMIT_BLOCKS        = 1
	DEFAULT_MAX_CONCURRENT_FILLS = 8
	DEFAULT_REQUEST_TIMEOUT      = time.Second * 10
	DEFAULT_POLL_INTERVAL        = time.Second * 5
)

type OrderSource interface {
	GetOrders(ctx context.Context) ([]*orders.SignedOrder, error)
}

type BundleSubmitter interface {
	Submit(ctx context.Context, b *bundle.Bundle) error
}

type HeadReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

type TxSigner interface {
	SignAndEncode(ctx context.Context, calls []transactor.Call) (*transactor.SignedTxs, error)
	ResetNonces()
}

type PendingOrders interface {
	HasPendingOrder(orderHash common.Hash) bool
}

type NonceChecker interface {
	NonceUsed(ctx context.Context, owner common.Address, nonce *big.Int) (bool, error)
}

type ProfitChecker interface {
	IsProfitable(ctx context.Context, order orders.Order) (bool, error)
}

type Metrics interface {
	TrackOpenOrders(count int)
	TrackBundleSubmitted()
	TrackRelayRejection()
	StartRound(roundID string)
	EndRound(roundID string)
}

type Config struct {
	Strategy           Strategy
	SubmitBlocks       int
	MaxConcurrentFills int
	RequestTimeout     time.Duration
	PollInterval       time.Duration
}

type Option func(f *Filler)

// WithPendingOrders skips orders that are part of a bundle still pending.
func WithPendingOrders(pending PendingOrders) Option {
	return func(f *Filler) {
		f.pending = pending
	}
}

// WithPreflight drops orders whose Permit2 nonce is already consumed.
func WithPreflight(checker NonceChecker) Option {
	return func(f *Filler) {
		f.nonceChecker = checker
	}
}

func WithProfitChecker(checker ProfitChecker) Option {
	return func(f *Filler) {
		f.profitChecker = checker
	}
}

func WithMetrics(metrics Metrics) Option {
	return func(f *Filler) {
		f.metrics = metrics
	}
}

// Filler discovers open orders and settles them through bundles made of
// initiate and fill transactions.
type Filler struct {
	signer    orders.Signer
	system    orders.SystemConstants
	source    OrderSource
	submitter BundleSubmitter
	head      HeadReader
	rollupTxs TxSigner
	hostTxs   TxSigner
	nonces    *orders.NonceSource
	clock     clockwork.Clock
	cfg       Config

	// held while a bundle reserves its rollup and host nonces
	signMu sync.Mutex

	rollupOrders *contracts.OrdersContract
	hostOrders   *contracts.OrdersContract

	pending       PendingOrders
	nonceChecker  NonceChecker
	profitChecker ProfitChecker
	metrics       Metrics
}

func NewFiller(
	signer orders.Signer,
	system orders.SystemConstants,
	source OrderSource,
	submitter BundleSubmitter,
	head HeadReader,
	rollupTxs TxSigner,
	hostTxs TxSigner,
	clock clockwork.Clock,
	cfg Config,
	opts ...Option,
) *Filler {
	if cfg.Strategy == "" {
		cfg.Strategy = Aggregate
	}
	if cfg.SubmitBlocks <= 0 {
		cfg.SubmitBlocks = DEFAULT_SUBMIT_BLOCKS
	}
	if cfg.MaxConcurrentFills <= 0 {
		cfg.MaxConcurrentFills = DEFAULT_MAX_CONCURRENT_FILLS
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DEFAULT_REQUEST_TIMEOUT
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = DEFAULT_POLL_INTERVAL
	}

	f := &Filler{
		signer:       signer,
		system:       system,
		source:       source,
		submitter:    submitter,
		head:         head,
		rollupTxs:    rollupTxs,
		hostTxs:      hostTxs,
		nonces:       orders.NewNonceSource(clock),
		clock:        clock,
		cfg:          cfg,
		rollupOrders: contracts.NewOrdersContract(system.Rollup.Orders),
		hostOrders:   contracts.NewOrdersContract(system.Host.Orders),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Start runs a fill round every poll interval until ctx is done.
func (f *Filler) Start(ctx context.Context) {
	ticker := f.clock.NewTicker(f.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			{
				_, err := f.Round(ctx)
				if err != nil {
					log.Warn().Err(err).Msgf("Fill round failed")
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

// Round discovers open orders, selects the fillable ones and settles them
// with the configured strategy.
func (f *Filler) Round(ctx context.Context) ([]*bundle.Bundle, error) {
	roundID := uuid.NewString()
	if f.metrics != nil {
		f.metrics.StartRound(roundID)
		defer f.metrics.EndRound(roundID)
	}

	open, err := f.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	if f.metrics != nil {
		f.metrics.TrackOpenOrders(len(open))
	}

	selected := f.Select(ctx, open)
	if len(selected) == 0 {
		log.Debug().Msgf("No fillable orders out of %d open orders", len(open))
		return nil, nil
	}

	switch f.cfg.Strategy {
	case Individual:
		return f.FillIndividually(ctx, selected)
	default:
		return f.Fill(ctx, selected)
	}
}

// GetOrders returns a snapshot of the open orders in the transaction cache.
func (f *Filler) GetOrders(ctx context.Context) ([]*orders.SignedOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.RequestTimeout)
	defer cancel()

	log.Debug().Msg("Querying transaction cache for orders")
	open, err := f.source.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	log.Info().Int("orders", len(open)).Msg("Retrieved orders from cache")
	return open, nil
}

// Select drops expired orders, orders in a pending bundle, orders with a
// consumed permit and unprofitable orders.
func (f *Filler) Select(ctx context.Context, open []*orders.SignedOrder) []*orders.SignedOrder {
	now := f.clock.Now()
	selected := make([]*orders.SignedOrder, 0, len(open))
	for _, signed := range open {
		orderHash := signed.OrderHash()
		l := log.With().Str("orderHash", orderHash.Hex()).Logger()

		order := signed.Order()
		if order.IsExpired(now) {
			l.Debug().Err(orders.ErrOrderExpired).Msg("Skipping order")
			continue
		}

		if f.pending != nil && f.pending.HasPendingOrder(orderHash) {
			l.Debug().Msg("Skipping order in pending bundle")
			continue
		}

		if f.nonceChecker != nil {
			used, err := f.nonceUsed(ctx, signed)
			if err != nil {
				l.Warn().Err(err).Msg("Failed checking permit nonce")
				continue
			}
			if used {
				l.Info().Err(orders.ErrOrderConsumed).Msg("Skipping order")
				continue
			}
		}

		if f.profitChecker != nil {
			profitable, err := f.profitChecker.IsProfitable(ctx, order)
			if err != nil {
				l.Warn().Err(err).Msg("Failed evaluating order profit")
				continue
			}
			if !profitable {
				l.Debug().Msg("Skipping unprofitable order")
				continue
			}
		}

		selected = append(selected, signed)
	}
	return selected
}

func (f *Filler) nonceUsed(ctx context.Context, signed *orders.SignedOrder) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.RequestTimeout)
	defer cancel()

	return f.nonceChecker.NonceUsed(ctx, signed.Permit.Owner, signed.Permit.Permit.Nonce)
}

// Fill settles every order in a single bundle per target block. Either all
// orders settle or none does.
func (f *Filler) Fill(ctx context.Context, signed []*orders.SignedOrder) ([]*bundle.Bundle, error) {
	if len(signed) == 0 {
		return nil, orders.ErrNoOrders
	}
	log.Info().Int("orders", len(signed)).Msg("Filling orders in bundle")
	f.resetNonces()

	bundles, err := f.fill(ctx, signed)
	if err != nil {
		return bundles, &FillError{
			OrderHashes: orderHashes(signed),
			Strategy:    Aggregate,
			Err:         err,
		}
	}
	return bundles, nil
}

// FillIndividually settles every order in its own bundle. Orders are
// processed concurrently and a failing order never stops the others from
// being submitted. Bundles take consecutive nonce ranges, so all of them can
// land in the same block.
func (f *Filler) FillIndividually(ctx context.Context, signed []*orders.SignedOrder) ([]*bundle.Bundle, error) {
	if len(signed) == 0 {
		return nil, orders.ErrNoOrders
	}
	log.Info().Int("orders", len(signed)).Msg("Filling orders individually")
	f.resetNonces()

	var mu sync.Mutex
	bundles := make([]*bundle.Bundle, 0, len(signed))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(f.cfg.MaxConcurrentFills)
	for _, order := range signed {
		order := order
		p.Go(func(ctx context.Context) error {
			orderBundles, err := f.fill(ctx, []*orders.SignedOrder{order})

			mu.Lock()
			bundles = append(bundles, orderBundles...)
			mu.Unlock()

			if err != nil {
				log.Warn().Err(err).Str("orderHash", order.OrderHash().Hex()).Msg("Failed filling order")
				return &FillError{
					OrderHashes: []common.Hash{order.OrderHash()},
					Strategy:    Individual,
					Err:         err,
				}
			}
			return nil
		})
	}

	err := p.Wait()
	return bundles, err
}

// resetNonces starts a new reservation on both chains. Bundles signed
// within one fill call chain their nonces.
func (f *Filler) resetNonces() {
	f.rollupTxs.ResetNonces()
	f.hostTxs.ResetNonces()
}

// BuildTxs signs the rollup and host transactions settling signed in the
// given order. Each order contributes [initiate, fill] on the rollup and its
// host fill to the host transactions.
func (f *Filler) BuildTxs(ctx context.Context, signed []*orders.SignedOrder) (*transactor.SignedTxs, *transactor.SignedTxs, error) {
	rollupCalls := make([]transactor.Call, 0, len(signed)*2)
	hostCalls := make([]transactor.Call, 0)
	for _, order := range signed {
		initiate, err := f.rollupOrders.InitiatePermit2(f.signer.Address(), order)
		if err != nil {
			return nil, nil, err
		}
		rollupCalls = append(rollupCalls, transactor.Call{To: f.system.Rollup.Orders, Data: initiate})

		fills, err := f.fillCalls(ctx, order.Outputs, orders.DeadlineFromBig(order.Permit.Permit.Deadline))
		if err != nil {
			return nil, nil, err
		}
		rollupCalls = append(rollupCalls, fills[f.system.Rollup.ChainID]...)
		hostCalls = append(hostCalls, fills[f.system.Host.ChainID]...)
	}
	return f.signTxs(ctx, rollupCalls, hostCalls)
}

func (f *Filler) signTxs(ctx context.Context, rollupCalls []transactor.Call, hostCalls []transactor.Call) (*transactor.SignedTxs, *transactor.SignedTxs, error) {
	f.signMu.Lock()
	defer f.signMu.Unlock()

	rollupTxs, err := f.rollupTxs.SignAndEncode(ctx, rollupCalls)
	if err != nil {
		return nil, nil, err
	}
	hostTxs, err := f.hostTxs.SignAndEncode(ctx, hostCalls)
	if err != nil {
		return nil, nil, err
	}
	return rollupTxs, hostTxs, nil
}

// FillInitiated settles an order the swapper initiates with its own rollup
// transactions instead of a Permit2 authorization, as GetOut orders are.
// initiate leads the rollup transactions of every bundle.
func (f *Filler) FillInitiated(ctx context.Context, order orders.Order, initiate *transactor.SignedTxs) ([]*bundle.Bundle, error) {
	if initiate == nil || len(initiate.Raw) == 0 {
		return nil, fmt.Errorf("%w: missing initiate transaction", orders.ErrNoOrders)
	}
	log.Info().Int("outputs", len(order.Outputs)).Msg("Filling initiated order")
	f.resetNonces()

	fills, err := f.fillCalls(ctx, order.Outputs, order.Deadline)
	if err != nil {
		return nil, err
	}
	rollupFills, hostTxs, err := f.signTxs(ctx, fills[f.system.Rollup.ChainID], fills[f.system.Host.ChainID])
	if err != nil {
		return nil, err
	}

	rollupTxs := &transactor.SignedTxs{}
	for _, txs := range []*transactor.SignedTxs{initiate, rollupFills} {
		rollupTxs.Raw = append(rollupTxs.Raw, txs.Raw...)
		rollupTxs.Hashes = append(rollupTxs.Hashes, txs.Hashes...)
	}
	return f.submitAll(ctx, rollupTxs, hostTxs, nil)
}

// Refill rebuilds a missed bundle with freshly signed transactions for the
// orders it carried and submits it for the block after the rollup head.
func (f *Filler) Refill(ctx context.Context, missed *bundle.Bundle, signed []*orders.SignedOrder) error {
	if missed.State() != bundle.Missed {
		return fmt.Errorf("%w: refilling %s bundle", bundle.ErrInvalidTransition, missed.State())
	}
	f.resetNonces()

	layout, err := OrderLayout(signed, f.system)
	if err != nil {
		return err
	}
	rollupTxs, hostTxs, err := f.BuildTxs(ctx, layout)
	if err != nil {
		return err
	}
	head, err := f.headNumber(ctx)
	if err != nil {
		return err
	}

	err = missed.Rebuild(head+1, rollupTxs, hostTxs)
	if err != nil {
		return err
	}
	log.Info().Uint64("targetBlock", missed.TargetBlock()).Int("orders", len(layout)).Msg("Rebuilt missed bundle")
	return f.submit(ctx, missed)
}

func (f *Filler) fill(ctx context.Context, signed []*orders.SignedOrder) ([]*bundle.Bundle, error) {
	layout, err := OrderLayout(signed, f.system)
	if err != nil {
		return nil, err
	}

	rollupTxs, hostTxs, err := f.BuildTxs(ctx, layout)
	if err != nil {
		return nil, err
	}
	return f.submitAll(ctx, rollupTxs, hostTxs, orderHashes(layout))
}

func (f *Filler) headNumber(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.RequestTimeout)
	defer cancel()

	head, err := f.head.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed fetching rollup head: %w", err)
	}
	return head, nil
}

// submitAll submits the transactions as one bundle for each of the next
// SubmitBlocks blocks.
func (f *Filler) submitAll(ctx context.Context, rollupTxs *transactor.SignedTxs, hostTxs *transactor.SignedTxs, hashes []common.Hash) ([]*bundle.Bundle, error) {
	head, err := f.headNumber(ctx)
	if err != nil {
		return nil, err
	}

	bundles := make([]*bundle.Bundle, 0, f.cfg.SubmitBlocks)
	for i := 1; i <= f.cfg.SubmitBlocks; i++ {
		b := bundle.NewBundle(head+uint64(i), rollupTxs, hostTxs, hashes)
		err := f.submit(ctx, b)
		if err != nil {
			return bundles, err
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}

func (f *Filler) submit(ctx context.Context, b *bundle.Bundle) error {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.RequestTimeout)
	defer cancel()

	err := f.submitter.Submit(ctx, b)
	if f.metrics != nil {
		if errors.Is(err, orders.ErrRelayRejected) {
			f.metrics.TrackRelayRejection()
		} else if err == nil {
			f.metrics.TrackBundleSubmitted()
		}
	}
	return err
}

// fillCalls signs fresh fills for the outputs of a single order, keyed by
// destination chain. Native outputs are paid as value through fill, the
// rest through fillPermit2.
func (f *Filler) fillCalls(ctx context.Context, outputs []orders.Output, deadline uint64) (map[uint64][]transactor.Call, error) {
	agg := orders.NewAggregateOrders()
	native := make(map[uint64][]orders.Output)
	permitOutputs := make([]orders.Output, 0)
	for _, out := range outputs {
		if out.Token == orders.NativeToken {
			native[uint64(out.ChainID)] = append(native[uint64(out.ChainID)], out)
			continue
		}
		permitOutputs = append(permitOutputs, out)
	}
	agg.Ingest(orders.Order{
		Outputs:  permitOutputs,
		Deadline: deadline,
	})

	calls := make(map[uint64][]transactor.Call)
	if len(permitOutputs) > 0 {
		fills, err := orders.NewUnsignedFill(agg).
			WithNonce(f.nonces.Next()).
			WithChain(f.system).
			Sign(ctx, f.signer)
		if err != nil {
			return nil, err
		}

		for chainID, fill := range fills {
			contract, err := f.ordersContract(chainID)
			if err != nil {
				return nil, err
			}
			data, err := contract.FillPermit2(fill)
			if err != nil {
				return nil, err
			}
			calls[chainID] = append(calls[chainID], transactor.Call{To: contract.Address(), Data: data})
		}
	}

	for chainID, outputs := range native {
		contract, err := f.ordersContract(chainID)
		if err != nil {
			return nil, err
		}
		data, err := contract.Fill(outputs)
		if err != nil {
			return nil, err
		}

		value := new(big.Int)
		for _, out := range outputs {
			value.Add(value, out.Amount)
		}
		calls[chainID] = append(calls[chainID], transactor.Call{To: contract.Address(), Data: data, Value: value})
	}
	return calls, nil
}

func (f *Filler) ordersContract(chainID uint64) (*contracts.OrdersContract, error) {
	switch chainID {
	case f.system.Rollup.ChainID:
		return f.rollupOrders, nil
	case f.system.Host.ChainID:
		return f.hostOrders, nil
	default:
		return nil, fmt.Errorf("%w: %d", orders.ErrUnsupportedChain, chainID)
	}
}

func orderHashes(signed []*orders.SignedOrder) []common.Hash {
	hashes := make([]common.Hash, len(signed))
	for i, order := range signed {
		hashes[i] = order.OrderHash()
	}
	return hashes
}

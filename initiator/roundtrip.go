package initiator

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/signet-orders/bundle"
	"github.com/sprintertech/signet-orders/chains/evm/transactor"
	"github.com/sprintertech/signet-orders/orders"
)

const (
	TX_CACHE_WAIT_TIME     = time.Millisecond * 500
	DEFAULT_RESOLVE_PERIOD = time.Second
)

var (
	ErrOrderNotListed = errors.New("order not listed by the transaction cache")
	ErrBundleMissed   = errors.New("every fill bundle missed its target block")
)

type Filler interface {
	GetOrders(ctx context.Context) ([]*orders.SignedOrder, error)
	FillIndividually(ctx context.Context, signed []*orders.SignedOrder) ([]*bundle.Bundle, error)
	FillInitiated(ctx context.Context, order orders.Order, initiate *transactor.SignedTxs) ([]*bundle.Bundle, error)
	Refill(ctx context.Context, missed *bundle.Bundle, signed []*orders.SignedOrder) error
}

type BundlePoller interface {
	Poll(ctx context.Context) error
}

// Roundtrip initiates an order, fills the same order from the transaction
// cache and waits until one of its bundles resolves.
type Roundtrip struct {
	initiator *Initiator
	filler    Filler
	poller    BundlePoller
	clock     clockwork.Clock
	period    time.Duration
	rebuilds  int
}

func NewRoundtrip(
	initiator *Initiator,
	filler Filler,
	poller BundlePoller,
	clock clockwork.Clock,
	period time.Duration,
) *Roundtrip {
	if period == 0 {
		period = DEFAULT_RESOLVE_PERIOD
	}

	return &Roundtrip{
		initiator: initiator,
		filler:    filler,
		poller:    poller,
		clock:     clock,
		period:    period,
	}
}

// WithRebuilds allows rebuilding the last missed bundle up to n times before
// giving up on an order.
func (r *Roundtrip) WithRebuilds(n int) *Roundtrip {
	r.rebuilds = n
	return r
}

// Run returns the mined bundle settling order. Cancelling ctx stops waiting
// without resubmitting.
func (r *Roundtrip) Run(ctx context.Context, order orders.Order) (*bundle.Bundle, error) {
	signed, err := r.initiator.SignAndSend(ctx, order)
	if err != nil {
		return nil, err
	}
	orderHash := signed.OrderHash()

	select {
	case <-r.clock.After(TX_CACHE_WAIT_TIME):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	open, err := r.filler.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	var target *orders.SignedOrder
	for _, o := range open {
		if o.OrderHash() == orderHash {
			target = o
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotListed, orderHash.Hex())
	}

	bundles, err := r.filler.FillIndividually(ctx, []*orders.SignedOrder{target})
	if err != nil {
		return nil, err
	}
	log.Info().Int("bundles", len(bundles)).Msgf("Submitted fill of order %s", orderHash.Hex())

	for rebuilt := 0; ; rebuilt++ {
		mined, err := r.wait(ctx, bundles)
		if !errors.Is(err, ErrBundleMissed) || rebuilt >= r.rebuilds || len(bundles) == 0 {
			return mined, err
		}

		last := bundles[len(bundles)-1]
		err = r.filler.Refill(ctx, last, []*orders.SignedOrder{target})
		if err != nil {
			return nil, err
		}
		log.Info().Uint64("targetBlock", last.TargetBlock()).Msgf("Resubmitted fill of order %s", orderHash.Hex())
		bundles = []*bundle.Bundle{last}
	}
}

// RunGetOut initiates a GetOut order converting value of the rollup native
// token into outputToken on the host and returns the mined bundle settling
// it. txs signs the initiate transaction of the swapper.
func (r *Roundtrip) RunGetOut(ctx context.Context, value *big.Int, outputToken common.Address, txs TxSigner) (*bundle.Bundle, error) {
	order, initiate, err := r.initiator.SignGetOut(ctx, value, outputToken, txs)
	if err != nil {
		return nil, err
	}

	bundles, err := r.filler.FillInitiated(ctx, order, initiate)
	if err != nil {
		return nil, err
	}
	log.Info().Int("bundles", len(bundles)).Str("value", value.String()).Msg("Submitted GetOut fill")

	return r.wait(ctx, bundles)
}

func (r *Roundtrip) wait(ctx context.Context, bundles []*bundle.Bundle) (*bundle.Bundle, error) {
	ticker := r.clock.NewTicker(r.period)
	defer ticker.Stop()

	for {
		err := r.poller.Poll(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Failed polling bundles")
		}

		missed := 0
		for _, b := range bundles {
			switch b.State() {
			case bundle.Mined:
				return b, nil
			case bundle.Missed:
				missed++
			}
		}
		if missed == len(bundles) {
			return nil, ErrBundleMissed
		}

		select {
		case <-ticker.Chan():
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

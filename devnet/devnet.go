package devnet

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/signet-orders/orders"
	"github.com/sprintertech/signet-orders/txcache"
)

type submittedBundle struct {
	id     uuid.UUID
	bundle *txcache.SignetBundle
}

// BlockResult describes a mined rollup block.
type BlockResult struct {
	Number   uint64
	Mined    []uuid.UUID
	Reverted map[uuid.UUID]error
}

// Devnet is an in-process host and rollup pair fronted by a transaction
// cache. Bundles are executed atomically when the block they target is mined.
type Devnet struct {
	mu     sync.Mutex
	clock  clockwork.Clock
	system orders.SystemConstants

	host   *Chain
	rollup *Chain

	bundles map[uint64][]*submittedBundle
	orders  []*orders.SignedOrder
}

func New(system orders.SystemConstants, clock clockwork.Clock) *Devnet {
	d := &Devnet{
		clock:   clock,
		system:  system,
		bundles: make(map[uint64][]*submittedBundle),
		orders:  make([]*orders.SignedOrder, 0),
	}
	d.host = newChain(d, system.Host, false)
	d.rollup = newChain(d, system.Rollup, true)

	// nolint:gosec
	now := uint64(clock.Now().Unix())
	d.host.headTime = now
	d.rollup.headTime = now
	return d
}

func (d *Devnet) Host() *Chain {
	return d.host
}

func (d *Devnet) Rollup() *Chain {
	return d.rollup
}

// ForwardOrder stores a signed order as open. The permit signature is checked
// against the rollup constants.
func (d *Devnet) ForwardOrder(ctx context.Context, order *orders.SignedOrder) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := order.VerifySignature(d.system.Rollup)
	if err != nil {
		return &txcache.RelayRejectedError{StatusCode: http.StatusBadRequest, Reason: err.Error()}
	}
	if order.Permit.Permit.Nonce == nil || d.rollup.state.permitUsed(order.Permit.Owner, order.Permit.Permit.Nonce) {
		return &txcache.RelayRejectedError{StatusCode: http.StatusBadRequest, Reason: orders.ErrOrderConsumed.Error()}
	}

	orderHash := order.OrderHash()
	for _, o := range d.orders {
		if o.OrderHash() == orderHash {
			return nil
		}
	}
	d.orders = append(d.orders, order)
	log.Debug().Str("orderHash", orderHash.Hex()).Msg("Order stored in devnet cache")
	return nil
}

// GetOrders returns orders that are neither consumed nor expired.
func (d *Devnet) GetOrders(ctx context.Context) ([]*orders.SignedOrder, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.clock.Now()
	open := make([]*orders.SignedOrder, 0, len(d.orders))
	for _, o := range d.orders {
		if d.rollup.state.permitUsed(o.Permit.Owner, o.Permit.Permit.Nonce) || o.Order().IsExpired(now) {
			continue
		}
		open = append(open, o)
	}
	return open, nil
}

// ForwardBundle queues a bundle for the rollup block it targets.
func (d *Devnet) ForwardBundle(ctx context.Context, b *txcache.SignetBundle) (*txcache.BundleResponse, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	target := uint64(b.BlockNumber)
	if target <= d.rollup.head {
		return nil, &txcache.RelayRejectedError{
			StatusCode: http.StatusBadRequest,
			Reason:     fmt.Sprintf("block %d is not after head %d", target, d.rollup.head),
		}
	}
	if len(b.Txs) == 0 && len(b.HostTxs) == 0 {
		return nil, &txcache.RelayRejectedError{StatusCode: http.StatusBadRequest, Reason: "empty bundle"}
	}

	id := uuid.New()
	d.bundles[target] = append(d.bundles[target], &submittedBundle{id: id, bundle: b})
	log.Debug().Str("bundleID", id.String()).Uint64("block", target).Msg("Bundle queued in devnet")
	return &txcache.BundleResponse{ID: id}, nil
}

// MineBlock mines the next rollup block together with a host block. Bundles
// targeting it execute in submission order, each one either fully applied or
// discarded. Discarded bundles are retried while the previous pass applied
// any bundle, so bundles with chained nonces land regardless of submission
// order.
func (d *Devnet) MineBlock() BlockResult {
	d.mu.Lock()
	defer d.mu.Unlock()

	target := d.rollup.head + 1
	hostTarget := d.host.head + 1
	// nolint:gosec
	blockTime := uint64(d.clock.Now().Unix())
	if blockTime < d.rollup.headTime {
		blockTime = d.rollup.headTime
	}

	result := BlockResult{
		Number:   target,
		Mined:    make([]uuid.UUID, 0),
		Reverted: make(map[uuid.UUID]error),
	}
	queued := d.bundles[target]
	for len(queued) > 0 {
		failed := make([]*submittedBundle, 0, len(queued))
		for _, sb := range queued {
			err := d.apply(sb.bundle, target, hostTarget, blockTime)
			if err != nil {
				result.Reverted[sb.id] = err
				failed = append(failed, sb)
				continue
			}
			delete(result.Reverted, sb.id)
			result.Mined = append(result.Mined, sb.id)
		}
		if len(failed) == len(queued) {
			break
		}
		queued = failed
	}
	for id, err := range result.Reverted {
		log.Debug().Err(err).Str("bundleID", id.String()).Uint64("block", target).Msg("Bundle reverted")
	}
	delete(d.bundles, target)
	for block := range d.bundles {
		if block < target {
			delete(d.bundles, block)
		}
	}

	d.rollup.head = target
	d.rollup.headTime = blockTime
	d.host.head = hostTarget
	d.host.headTime = blockTime
	d.pruneOrders()
	return result
}

// apply executes host transactions before rollup transactions and checks
// that every initiated output is filled. Chains are restored on failure.
func (d *Devnet) apply(b *txcache.SignetBundle, rollupBlock uint64, hostBlock uint64, blockTime uint64) error {
	hostState := d.host.state
	rollupState := d.rollup.state
	d.host.state = hostState.copy()
	d.rollup.state = rollupState.copy()

	exec := newExecution(blockTime)
	receipts := make(map[*Chain][]*types.Receipt)
	err := func() error {
		for _, raw := range b.HostTxs {
			receipt, err := d.host.execute(raw, hostBlock, exec)
			if err != nil {
				return err
			}
			receipts[d.host] = append(receipts[d.host], receipt)
		}
		for _, raw := range b.Txs {
			receipt, err := d.rollup.execute(raw, rollupBlock, exec)
			if err != nil {
				return err
			}
			receipts[d.rollup] = append(receipts[d.rollup], receipt)
		}
		return exec.settle()
	}()
	if err != nil {
		d.host.state = hostState
		d.rollup.state = rollupState
		return err
	}

	for chain, chainReceipts := range receipts {
		for _, receipt := range chainReceipts {
			chain.receipts[receipt.TxHash] = receipt
		}
	}
	return nil
}

func (d *Devnet) pruneOrders() {
	open := make([]*orders.SignedOrder, 0, len(d.orders))
	for _, o := range d.orders {
		if d.rollup.state.permitUsed(o.Permit.Owner, o.Permit.Permit.Nonce) {
			continue
		}
		open = append(open, o)
	}
	d.orders = open
}

// Fund credits amount of token to account on the chain with chainID.
func (d *Devnet) Fund(chainID uint64, token common.Address, account common.Address, amount *big.Int) error {
	chain, err := d.chain(chainID)
	if err != nil {
		return err
	}
	chain.Mint(token, account, amount)
	return nil
}

func (d *Devnet) chain(chainID uint64) (*Chain, error) {
	switch chainID {
	case d.system.Host.ChainID:
		return d.host, nil
	case d.system.Rollup.ChainID:
		return d.rollup, nil
	default:
		return nil, fmt.Errorf("%w: %d", orders.ErrUnsupportedChain, chainID)
	}
}

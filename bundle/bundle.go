package bundle

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/sprintertech/signet-orders/chains/evm/transactor"
	"github.com/sprintertech/signet-orders/txcache"
)

type State int

const (
	Built State = iota
	Submitted
	Mined
	Missed
)

func (s State) String() string {
	switch s {
	case Built:
		return "built"
	case Submitted:
		return "submitted"
	case Mined:
		return "mined"
	case Missed:
		return "missed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

var ErrInvalidTransition = errors.New("invalid bundle state transition")

// Bundle is an ordered set of transactions valid for a single target block.
// Host transactions execute before the rollup transactions. A missed bundle
// is only reused through Rebuild with a later target and fresh transactions.
type Bundle struct {
	mu sync.RWMutex

	id          uuid.UUID
	state       State
	targetBlock uint64
	txs         *transactor.SignedTxs
	hostTxs     *transactor.SignedTxs
	orderHashes []common.Hash
}

// Status is a point in time copy of a bundle.
type Status struct {
	ID          uuid.UUID     `json:"id"`
	State       string        `json:"state"`
	TargetBlock uint64        `json:"targetBlock"`
	TxHashes    []common.Hash `json:"txHashes"`
	HostTxs     int           `json:"hostTxs"`
	OrderHashes []common.Hash `json:"orderHashes"`
}

func NewBundle(targetBlock uint64, txs *transactor.SignedTxs, hostTxs *transactor.SignedTxs, orderHashes []common.Hash) *Bundle {
	if txs == nil {
		txs = &transactor.SignedTxs{}
	}
	if hostTxs == nil {
		hostTxs = &transactor.SignedTxs{}
	}

	return &Bundle{
		state:       Built,
		targetBlock: targetBlock,
		txs:         txs,
		hostTxs:     hostTxs,
		orderHashes: orderHashes,
	}
}

func (b *Bundle) ID() uuid.UUID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.id
}

func (b *Bundle) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

func (b *Bundle) TargetBlock() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.targetBlock
}

// TxHashes returns the hashes of the rollup transactions in bundle order.
func (b *Bundle) TxHashes() []common.Hash {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]common.Hash{}, b.txs.Hashes...)
}

func (b *Bundle) HostTxHashes() []common.Hash {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]common.Hash{}, b.hostTxs.Hashes...)
}

func (b *Bundle) OrderHashes() []common.Hash {
	return b.orderHashes
}

// Request converts the bundle into the transaction cache wire format.
func (b *Bundle) Request() *txcache.SignetBundle {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return &txcache.SignetBundle{
		Txs:               append([]hexutil.Bytes{}, b.txs.Raw...),
		HostTxs:           append([]hexutil.Bytes{}, b.hostTxs.Raw...),
		BlockNumber:       hexutil.Uint64(b.targetBlock),
		RevertingTxHashes: []common.Hash{},
	}
}

func (b *Bundle) MarkSubmitted(id uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != Built {
		return b.invalidTransition(Submitted)
	}
	b.id = id
	b.state = Submitted
	return nil
}

func (b *Bundle) MarkMined() error {
	return b.resolve(Mined)
}

func (b *Bundle) MarkMissed() error {
	return b.resolve(Missed)
}

// Rebuild moves a missed bundle back to Built for a later target block.
func (b *Bundle) Rebuild(targetBlock uint64, txs *transactor.SignedTxs, hostTxs *transactor.SignedTxs) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != Missed {
		return b.invalidTransition(Built)
	}
	if targetBlock <= b.targetBlock {
		return fmt.Errorf("%w: target block %d not after %d", ErrInvalidTransition, targetBlock, b.targetBlock)
	}
	if txs == nil || sameTxs(txs, b.txs) {
		return fmt.Errorf("%w: rebuild requires fresh transactions", ErrInvalidTransition)
	}
	if hostTxs == nil {
		hostTxs = &transactor.SignedTxs{}
	}

	b.id = uuid.Nil
	b.targetBlock = targetBlock
	b.txs = txs
	b.hostTxs = hostTxs
	b.state = Built
	return nil
}

func (b *Bundle) Status() Status {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return Status{
		ID:          b.id,
		State:       b.state.String(),
		TargetBlock: b.targetBlock,
		TxHashes:    append([]common.Hash{}, b.txs.Hashes...),
		HostTxs:     len(b.hostTxs.Raw),
		OrderHashes: b.orderHashes,
	}
}

func (b *Bundle) resolve(to State) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != Submitted {
		return b.invalidTransition(to)
	}
	b.state = to
	return nil
}

func (b *Bundle) invalidTransition(to State) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.state, to)
}

func sameTxs(a *transactor.SignedTxs, b *transactor.SignedTxs) bool {
	if len(a.Hashes) != len(b.Hashes) || len(a.Hashes) == 0 {
		return false
	}
	for i := range a.Hashes {
		if a.Hashes[i] != b.Hashes[i] {
			return false
		}
	}
	return true
}

package orders

import (
	"math/big"
	"sync"

	"github.com/jonboulle/clockwork"
)

// NonceSource hands out Permit2 nonces derived from the clock in
// microseconds, strictly increasing within the process.
type NonceSource struct {
	clock clockwork.Clock

	mu   sync.Mutex
	last int64
}

func NewNonceSource(clock clockwork.Clock) *NonceSource {
	return &NonceSource{
		clock: clock,
	}
}

func (n *NonceSource) Next() *big.Int {
	n.mu.Lock()
	defer n.mu.Unlock()

	next := n.clock.Now().UnixMicro()
	if next <= n.last {
		next = n.last + 1
	}
	n.last = next
	return big.NewInt(next)
}

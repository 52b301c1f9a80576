package orders

import (
	"context"
	"math"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// NativeToken is the token address standing for the native asset of a chain.
var NativeToken = common.Address{}

// NoDeadline marks an order that never expires on the basis of time.
const NoDeadline uint64 = math.MaxUint64

// Signer signs 32 byte digests. Signatures are 65 bytes [R || S || V] with V
// being the raw recovery id (0 or 1).
type Signer interface {
	Address() common.Address
	SignHash(ctx context.Context, digest []byte) ([]byte, error)
}

// TokenResolver answers whether a chain and a token address on it are known.
type TokenResolver interface {
	SupportsChain(chainID uint64) bool
	IsSupported(chainID uint64, token common.Address) bool
}

type Input struct {
	Token  common.Address
	Amount *big.Int
}

type Output struct {
	Token     common.Address
	Amount    *big.Int
	Recipient common.Address
	ChainID   uint32
}

// Order exchanges Inputs escrowed on the rollup for Outputs delivered on the
// chain each Output names.
type Order struct {
	Inputs   []Input
	Outputs  []Output
	Deadline uint64
}

// IsExpired reports whether the deadline is strictly before now.
func (o Order) IsExpired(now time.Time) bool {
	if o.Deadline == NoDeadline {
		return false
	}
	unix := now.Unix()
	return unix > 0 && uint64(unix) > o.Deadline
}

// OutputsForChain returns the outputs delivered on chainID, preserving order.
func (o Order) OutputsForChain(chainID uint64) []Output {
	outputs := make([]Output, 0)
	for _, out := range o.Outputs {
		if uint64(out.ChainID) == chainID {
			outputs = append(outputs, out)
		}
	}
	return outputs
}

// DeadlineFromBig converts an on-chain uint256 deadline, saturating to
// NoDeadline.
func DeadlineFromBig(d *big.Int) uint64 {
	if d == nil || !d.IsUint64() {
		return NoDeadline
	}
	return d.Uint64()
}

func copyAmount(a *big.Int) *big.Int {
	if a == nil {
		return nil
	}
	return new(big.Int).Set(a)
}

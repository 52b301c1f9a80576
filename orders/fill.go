package orders

import (
	"context"
	"fmt"
	"math/big"
)

// UnsignedFill collects the outputs a filler delivers and signs one Permit2
// authorization per destination chain.
type UnsignedFill struct {
	agg      *AggregateOrders
	deadline uint64
	nonce    *big.Int
	system   *SystemConstants
}

func NewUnsignedFill(agg *AggregateOrders) *UnsignedFill {
	return &UnsignedFill{
		agg:      agg,
		deadline: agg.Deadline(),
	}
}

func (u *UnsignedFill) WithDeadline(deadline uint64) *UnsignedFill {
	u.deadline = deadline
	return u
}

func (u *UnsignedFill) WithNonce(nonce *big.Int) *UnsignedFill {
	u.nonce = copyAmount(nonce)
	return u
}

func (u *UnsignedFill) WithChain(system SystemConstants) *UnsignedFill {
	u.system = &system
	return u
}

// Sign returns a SignedFill for every destination chain, keyed by chain id.
// All fills share the nonce, each is only valid on its own chain.
func (u *UnsignedFill) Sign(ctx context.Context, s Signer) (map[uint64]*SignedFill, error) {
	if u.system == nil {
		return nil, fmt.Errorf("%w: fill chains not set", ErrMissingAddress)
	}
	if u.nonce == nil {
		return nil, fmt.Errorf("%w: fill nonce not set", ErrValidation)
	}

	fills := make(map[uint64]*SignedFill)
	for _, chainID := range u.agg.DestinationChains() {
		chain, err := u.system.ByChainID(chainID)
		if err != nil {
			return nil, err
		}

		outputs := make([]Output, 0)
		permitted := make([]TokenPermissions, 0)
		for _, out := range u.agg.Outputs() {
			if uint64(out.ChainID) != chainID {
				continue
			}
			outputs = append(outputs, out)
			permitted = append(permitted, TokenPermissions{Token: out.Token, Amount: copyAmount(out.Amount)})
		}

		permit := PermitBatchTransferFrom{
			Permitted: permitted,
			Nonce:     copyAmount(u.nonce),
			Deadline:  new(big.Int).SetUint64(u.deadline),
		}
		sig, err := signPermit(ctx, s, permit, outputs, chain)
		if err != nil {
			return nil, err
		}

		fills[chainID] = &SignedFill{
			Permit: Permit2Batch{
				Permit:    permit,
				Owner:     s.Address(),
				Signature: sig,
			},
			Outputs: outputs,
		}
	}
	return fills, nil
}

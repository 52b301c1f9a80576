package orders

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jonboulle/clockwork"
	"github.com/sprintertech/signet-orders/chains/evm/signature"
)

// DEFAULT_DEADLINE_SKEW is how far in the past a deadline may be before it is
// considered invalid at construction time.
const DEFAULT_DEADLINE_SKEW = 5 * time.Second

var defaultNonces = NewNonceSource(clockwork.NewRealClock())

// UnsignedOrder builds an Order and its Permit2 authorization. Construction is
// pure, nothing leaves the process until the signed order is submitted.
type UnsignedOrder struct {
	order  Order
	nonce  *big.Int
	nonces *NonceSource
	chain  *ChainConstants
}

func NewUnsignedOrder() *UnsignedOrder {
	return &UnsignedOrder{
		order: Order{
			Inputs:   make([]Input, 0),
			Outputs:  make([]Output, 0),
			Deadline: NoDeadline,
		},
	}
}

// UnsignedOrderFrom starts a builder from an existing order value.
func UnsignedOrderFrom(order Order) *UnsignedOrder {
	u := NewUnsignedOrder()
	for _, in := range order.Inputs {
		u.WithInput(in.Token, in.Amount)
	}
	for _, out := range order.Outputs {
		u.WithOutput(out.Token, out.Amount, out.Recipient, out.ChainID)
	}
	return u.WithDeadline(order.Deadline)
}

func (u *UnsignedOrder) WithInput(token common.Address, amount *big.Int) *UnsignedOrder {
	u.order.Inputs = append(u.order.Inputs, Input{Token: token, Amount: copyAmount(amount)})
	return u
}

func (u *UnsignedOrder) WithOutput(token common.Address, amount *big.Int, recipient common.Address, chainID uint32) *UnsignedOrder {
	u.order.Outputs = append(u.order.Outputs, Output{
		Token:     token,
		Amount:    copyAmount(amount),
		Recipient: recipient,
		ChainID:   chainID,
	})
	return u
}

func (u *UnsignedOrder) WithDeadline(deadline uint64) *UnsignedOrder {
	u.order.Deadline = deadline
	return u
}

func (u *UnsignedOrder) WithNonce(nonce *big.Int) *UnsignedOrder {
	u.nonce = copyAmount(nonce)
	return u
}

// WithNonceSource sets where the nonce is drawn from when none is set.
func (u *UnsignedOrder) WithNonceSource(nonces *NonceSource) *UnsignedOrder {
	u.nonces = nonces
	return u
}

// WithChain sets the rollup the order is initiated on.
func (u *UnsignedOrder) WithChain(chain ChainConstants) *UnsignedOrder {
	u.chain = &chain
	return u
}

func (u *UnsignedOrder) Order() Order {
	return u.order
}

// Validate checks token resolvability and deadline against now, allowing
// skew of clock drift.
func (u *UnsignedOrder) Validate(tokens TokenResolver, now time.Time, skew time.Duration) error {
	if u.chain == nil {
		return fmt.Errorf("%w: order chain not set", ErrMissingAddress)
	}
	if len(u.order.Inputs) == 0 || len(u.order.Outputs) == 0 {
		return ErrEmptyOrder
	}

	for _, in := range u.order.Inputs {
		if in.Amount == nil || in.Amount.Sign() <= 0 {
			return fmt.Errorf("%w: input %s", ErrInvalidAmount, in.Token.Hex())
		}
		if !supported(tokens, u.chain.ChainID, in.Token) {
			return fmt.Errorf("%w: input %s on chain %d", ErrInvalidToken, in.Token.Hex(), u.chain.ChainID)
		}
	}

	for _, out := range u.order.Outputs {
		if out.Amount == nil || out.Amount.Sign() <= 0 {
			return fmt.Errorf("%w: output %s", ErrInvalidAmount, out.Token.Hex())
		}
		if !supported(tokens, uint64(out.ChainID), out.Token) {
			return fmt.Errorf("%w: output %s on chain %d", ErrInvalidToken, out.Token.Hex(), out.ChainID)
		}
	}

	if u.order.Deadline != NoDeadline {
		earliest := now.Add(-skew).Unix()
		if earliest > 0 && u.order.Deadline < uint64(earliest) {
			return fmt.Errorf("%w: %d is before %d", ErrInvalidDeadline, u.order.Deadline, earliest)
		}
	}
	return nil
}

// supported allows the native token on any known chain.
func supported(tokens TokenResolver, chainID uint64, token common.Address) bool {
	if !tokens.SupportsChain(chainID) {
		return false
	}
	return token == NativeToken || tokens.IsSupported(chainID, token)
}

// Sign produces the Permit2 authorization for the order inputs with the
// outputs as witness.
func (u *UnsignedOrder) Sign(ctx context.Context, s Signer) (*SignedOrder, error) {
	if u.chain == nil {
		return nil, fmt.Errorf("%w: order chain not set", ErrMissingAddress)
	}

	nonce := u.nonce
	if nonce == nil {
		nonces := u.nonces
		if nonces == nil {
			nonces = defaultNonces
		}
		nonce = nonces.Next()
	}

	permitted := make([]TokenPermissions, len(u.order.Inputs))
	for i, in := range u.order.Inputs {
		permitted[i] = TokenPermissions{Token: in.Token, Amount: copyAmount(in.Amount)}
	}
	permit := PermitBatchTransferFrom{
		Permitted: permitted,
		Nonce:     nonce,
		Deadline:  new(big.Int).SetUint64(u.order.Deadline),
	}

	sig, err := signPermit(ctx, s, permit, u.order.Outputs, *u.chain)
	if err != nil {
		return nil, err
	}

	return &SignedOrder{
		Permit: Permit2Batch{
			Permit:    permit,
			Owner:     s.Address(),
			Signature: sig,
		},
		Outputs: u.order.Outputs,
	}, nil
}

func signPermit(ctx context.Context, s Signer, permit PermitBatchTransferFrom, outputs []Output, chain ChainConstants) ([]byte, error) {
	digest, err := signature.Permit2Hash(PermitWitness(permit, outputs, chain.Orders), chain.ChainID, chain.Permit2)
	if err != nil {
		return nil, err
	}

	sig, err := s.SignHash(ctx, digest)
	if err != nil {
		return nil, err
	}
	if len(sig) != 65 {
		return nil, fmt.Errorf("%w: signature length %d", ErrSigning, len(sig))
	}

	sig[64] += 27
	return sig, nil
}

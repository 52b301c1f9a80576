package devnet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/sprintertech/signet-orders/chains/evm/calls/contracts"
	"github.com/sprintertech/signet-orders/orders"
)

var DEFAULT_BASE_FEE = big.NewInt(params.GWei)

// Chain is one simulated chain of the devnet. It serves the read calls the
// filler and its tooling make against an RPC endpoint.
type Chain struct {
	devnet    *Devnet
	constants orders.ChainConstants
	contract  *contracts.OrdersContract
	rollup    bool

	state    *state
	head     uint64
	headTime uint64
	receipts map[common.Hash]*types.Receipt
}

func newChain(devnet *Devnet, constants orders.ChainConstants, rollup bool) *Chain {
	return &Chain{
		devnet:    devnet,
		constants: constants,
		contract:  contracts.NewOrdersContract(constants.Orders),
		rollup:    rollup,
		state:     newState(),
		receipts:  make(map[common.Hash]*types.Receipt),
	}
}

func (c *Chain) ChainID() uint64 {
	return c.constants.ChainID
}

func (c *Chain) BlockNumber(ctx context.Context) (uint64, error) {
	c.devnet.mu.Lock()
	defer c.devnet.mu.Unlock()

	return c.head, nil
}

func (c *Chain) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	c.devnet.mu.Lock()
	defer c.devnet.mu.Unlock()

	if number != nil && number.Uint64() != c.head {
		return nil, ethereum.NotFound
	}
	return &types.Header{
		Number:  new(big.Int).SetUint64(c.head),
		Time:    c.headTime,
		BaseFee: new(big.Int).Set(DEFAULT_BASE_FEE),
	}, nil
}

// PendingNonceAt returns the nonce of the next transaction of account. Bundles
// are not part of the pending state.
func (c *Chain) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	c.devnet.mu.Lock()
	defer c.devnet.mu.Unlock()

	return c.state.nonces[account], nil
}

func (c *Chain) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	c.devnet.mu.Lock()
	defer c.devnet.mu.Unlock()

	receipt, ok := c.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

// NonceUsed reports whether the Permit2 nonce of owner is consumed.
func (c *Chain) NonceUsed(ctx context.Context, owner common.Address, nonce *big.Int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	c.devnet.mu.Lock()
	defer c.devnet.mu.Unlock()

	return c.state.permitUsed(owner, nonce), nil
}

func (c *Chain) BalanceOf(token common.Address, account common.Address) *big.Int {
	c.devnet.mu.Lock()
	defer c.devnet.mu.Unlock()

	return c.state.balance(token, account)
}

// Mint credits amount of token to account.
func (c *Chain) Mint(token common.Address, account common.Address, amount *big.Int) {
	c.devnet.mu.Lock()
	defer c.devnet.mu.Unlock()

	c.state.credit(token, account, amount)
}

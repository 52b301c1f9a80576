// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/signet-orders/chains/evm/calls/consts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"
)

type ContractCaller interface {
	CallContract(ctx context.Context, callArgs map[string]interface{}, blockNumber *big.Int) ([]byte, error)
}

type Permit2Contract struct {
	contracts.Contract
	caller ContractCaller
}

func NewPermit2Contract(
	caller ContractCaller,
	address common.Address,
) *Permit2Contract {
	return &Permit2Contract{
		Contract: contracts.NewContract(address, consts.Permit2ABI, nil, nil, nil),
		caller:   caller,
	}
}

// NonceUsed checks the unordered nonce bitmap of owner for nonce.
func (c *Permit2Contract) NonceUsed(ctx context.Context, owner common.Address, nonce *big.Int) (bool, error) {
	wordPos, bitPos := NoncePosition(nonce)
	input, err := c.PackMethod("nonceBitmap", owner, wordPos)
	if err != nil {
		return false, err
	}

	out, err := c.caller.CallContract(ctx, client.ToCallArg(ethereum.CallMsg{
		To:   c.ContractAddress(),
		Data: input,
	}), nil)
	if err != nil {
		return false, err
	}
	if len(out) == 0 {
		return false, fmt.Errorf("empty nonceBitmap result from %s", c.ContractAddress())
	}

	res, err := c.UnpackResult("nonceBitmap", out)
	if err != nil {
		return false, err
	}
	bitmap := abi.ConvertType(res[0], new(big.Int)).(*big.Int)
	return bitmap.Bit(int(bitPos)) == 1, nil
}

// NoncePosition splits a Permit2 unordered nonce into its bitmap word and bit.
func NoncePosition(nonce *big.Int) (*big.Int, uint8) {
	wordPos := new(big.Int).Rsh(nonce, 8)
	bitPos := uint8(new(big.Int).And(nonce, big.NewInt(0xff)).Uint64())
	return wordPos, bitPos
}

package devnet

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/signet-orders/config"
	"github.com/sprintertech/signet-orders/orders"
)

const (
	HOST_CHAIN_ID   uint64 = 3151908
	ROLLUP_CHAIN_ID uint64 = 14174
)

var (
	PERMIT2_ADDRESS       = common.HexToAddress("0x000000000022D473030F116dDEE9F6B43aC78BA3")
	HOST_ORDERS_ADDRESS   = common.HexToAddress("0x4E8cC181805aFC307C83298242271142b8e2f249")
	ROLLUP_ORDERS_ADDRESS = common.HexToAddress("0x000000000000007369676E65742D6f7264657273")
	HOST_WETH_ADDRESS     = common.HexToAddress("0xD1278f17e86071f1E658B656084c65b7FD3c90eF")
	ROLLUP_WETH_ADDRESS   = common.HexToAddress("0x0000000000000000007369676e65742d77657468")
)

// DefaultSystem returns the host and rollup constants the devnet is started
// with when no configuration is given.
func DefaultSystem() orders.SystemConstants {
	return orders.SystemConstants{
		Host: orders.ChainConstants{
			ChainID: HOST_CHAIN_ID,
			Orders:  HOST_ORDERS_ADDRESS,
			Permit2: PERMIT2_ADDRESS,
		},
		Rollup: orders.ChainConstants{
			ChainID: ROLLUP_CHAIN_ID,
			Orders:  ROLLUP_ORDERS_ADDRESS,
			Permit2: PERMIT2_ADDRESS,
		},
	}
}

func DefaultTokens() *config.TokenStore {
	tokens := config.NewTokenStore()
	tokens.Add(HOST_CHAIN_ID, map[string]config.TokenConfig{
		"WETH": {Address: HOST_WETH_ADDRESS, Decimals: 18},
	})
	tokens.Add(ROLLUP_CHAIN_ID, map[string]config.TokenConfig{
		"WETH": {Address: ROLLUP_WETH_ADDRESS, Decimals: 18},
	})
	return tokens
}

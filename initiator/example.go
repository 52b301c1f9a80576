package initiator

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/signet-orders/config"
	"github.com/sprintertech/signet-orders/orders"
)

const (
	EXAMPLE_TOKEN    = "WETH"
	EXAMPLE_DEADLINE = time.Minute * 10
)

// EXAMPLE_AMOUNT is 1 gwei.
var EXAMPLE_AMOUNT = big.NewInt(1_000_000_000)

// ExampleOrder swaps 1 gwei of rollup WETH for the same amount of WETH paid
// to recipient on the rollup, or on the host when toRollup is false.
func ExampleOrder(
	tokens *config.TokenStore,
	system orders.SystemConstants,
	recipient common.Address,
	toRollup bool,
	now time.Time,
) (orders.Order, error) {
	input, err := tokens.ConfigBySymbol(system.Rollup.ChainID, EXAMPLE_TOKEN)
	if err != nil {
		return orders.Order{}, err
	}

	destination := system.Host
	if toRollup {
		destination = system.Rollup
	}
	output, err := tokens.ConfigBySymbol(destination.ChainID, EXAMPLE_TOKEN)
	if err != nil {
		return orders.Order{}, err
	}

	// nolint:gosec
	deadline := uint64(now.Add(EXAMPLE_DEADLINE).Unix())
	return orders.NewUnsignedOrder().
		WithInput(input.Address, EXAMPLE_AMOUNT).
		// nolint:gosec
		WithOutput(output.Address, EXAMPLE_AMOUNT, recipient, uint32(destination.ChainID)).
		WithDeadline(deadline).
		Order(), nil
}

package initiator

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/signet-orders/chains/evm/calls/contracts"
	"github.com/sprintertech/signet-orders/chains/evm/transactor"
	"github.com/sprintertech/signet-orders/orders"
)

// GET_OUT_WINDOW is how long a GetOut order stays fillable after signing.
const GET_OUT_WINDOW = time.Minute

type TxSigner interface {
	SignAndEncode(ctx context.Context, calls []transactor.Call) (*transactor.SignedTxs, error)
}

// SignGetOut converts value of the rollup native token into outputToken paid
// to the signer on the host and signs the initiate transaction carrying
// value. The order is initiated on-chain, nothing is forwarded to the
// transaction cache.
func (i *Initiator) SignGetOut(
	ctx context.Context,
	value *big.Int,
	outputToken common.Address,
	txs TxSigner,
) (orders.Order, *transactor.SignedTxs, error) {
	now := i.clock.Now()
	// nolint:gosec
	order, err := orders.GetOut(value, outputToken, i.signer.Address(), uint32(i.host.ChainID), now.Add(GET_OUT_WINDOW))
	if err != nil {
		return orders.Order{}, nil, err
	}
	err = orders.UnsignedOrderFrom(order).WithChain(i.rollup).Validate(i.tokens, now, orders.DEFAULT_DEADLINE_SKEW)
	if err != nil {
		return orders.Order{}, nil, err
	}

	data, err := contracts.NewOrdersContract(i.rollup.Orders).Initiate(order)
	if err != nil {
		return orders.Order{}, nil, err
	}
	signed, err := txs.SignAndEncode(ctx, []transactor.Call{{To: i.rollup.Orders, Data: data, Value: value}})
	if err != nil {
		return orders.Order{}, nil, fmt.Errorf("failed signing initiate: %w", err)
	}

	log.Debug().Str("value", value.String()).Str("desired", order.Outputs[0].Amount.String()).Msg("Signed GetOut initiate")
	return order, signed, nil
}

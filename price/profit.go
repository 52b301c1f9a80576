package price

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/sprintertech/signet-orders/config"
	"github.com/sprintertech/signet-orders/orders"
)

type TokenPricer interface {
	TokenPrice(ctx context.Context, symbol string) (float64, error)
}

type TokenConfigs interface {
	ConfigByAddress(chainID uint64, address common.Address) (string, config.TokenConfig, error)
}

// ProfitChecker values order inputs and outputs in USD.
type ProfitChecker struct {
	prices        TokenPricer
	tokens        TokenConfigs
	rollupChainID uint64
	minProfit     decimal.Decimal
}

func NewProfitChecker(prices TokenPricer, tokens TokenConfigs, rollupChainID uint64, minProfitUSD float64) *ProfitChecker {
	return &ProfitChecker{
		prices:        prices,
		tokens:        tokens,
		rollupChainID: rollupChainID,
		minProfit:     decimal.NewFromFloat(minProfitUSD),
	}
}

// Profit is the USD value of the inputs escrowed on the rollup minus the
// USD value of the outputs the filler pays.
func (c *ProfitChecker) Profit(ctx context.Context, order orders.Order) (decimal.Decimal, error) {
	profit := decimal.Zero
	for _, input := range order.Inputs {
		value, err := c.value(ctx, c.rollupChainID, input.Token, input.Amount)
		if err != nil {
			return decimal.Zero, err
		}
		profit = profit.Add(value)
	}

	for _, output := range order.Outputs {
		value, err := c.value(ctx, uint64(output.ChainID), output.Token, output.Amount)
		if err != nil {
			return decimal.Zero, err
		}
		profit = profit.Sub(value)
	}
	return profit, nil
}

// IsProfitable reports whether the order profit reaches the configured
// minimum.
func (c *ProfitChecker) IsProfitable(ctx context.Context, order orders.Order) (bool, error) {
	profit, err := c.Profit(ctx, order)
	if err != nil {
		return false, err
	}

	log.Debug().Str("profit", profit.StringFixed(4)).Msg("Evaluated order profit")
	return profit.GreaterThanOrEqual(c.minProfit), nil
}

func (c *ProfitChecker) value(ctx context.Context, chainID uint64, token common.Address, amount *big.Int) (decimal.Decimal, error) {
	symbol, tokenConfig, err := c.tokens.ConfigByAddress(chainID, token)
	if err != nil {
		return decimal.Zero, err
	}

	price, err := c.prices.TokenPrice(ctx, symbol)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed fetching %s price: %w", symbol, err)
	}

	return decimal.NewFromBigInt(amount, -int32(tokenConfig.Decimals)).Mul(decimal.NewFromFloat(price)), nil
}

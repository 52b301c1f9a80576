// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/sprintertech/signet-orders/chains/evm/transactor"
	"github.com/sprintertech/signet-orders/config"
	"github.com/sprintertech/signet-orders/config/chain"
	"github.com/sprintertech/signet-orders/orders"
)

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	Orders  common.Address
	Permit2 common.Address
	Tokens  map[string]config.TokenConfig
	// NativeSymbol prices the native asset of the chain.
	NativeSymbol string

	GasLimit           uint64
	PriorityFee        *big.Int
	BlockRetryInterval time.Duration
}

type RawTokenConfig struct {
	Address  string `mapstructure:"address"`
	Decimals uint8  `mapstructure:"decimals"`
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	Orders                   string                    `mapstructure:"orders"`
	Permit2                  string                    `mapstructure:"permit2" default:"0x000000000022D473030F116dDEE9F6B43aC78BA3"`
	Tokens                   map[string]RawTokenConfig `mapstructure:"tokens"`
	NativeSymbol             string                    `mapstructure:"nativeSymbol" default:"ETH"`

	GasLimit           uint64 `mapstructure:"gasLimit" default:"1000000"`
	PriorityFee        int64  `mapstructure:"priorityFee" default:"16000000000"`
	BlockRetryInterval uint64 `mapstructure:"blockRetryInterval" default:"5"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if !common.IsHexAddress(c.Orders) {
		return fmt.Errorf("%w: invalid orders address '%s' for chain %d", orders.ErrMissingAddress, c.Orders, *c.Id)
	}
	if !common.IsHexAddress(c.Permit2) {
		return fmt.Errorf("%w: invalid permit2 address '%s' for chain %d", orders.ErrMissingAddress, c.Permit2, *c.Id)
	}
	for symbol, token := range c.Tokens {
		if !common.IsHexAddress(token.Address) {
			return fmt.Errorf("%w: invalid %s address '%s' for chain %d", orders.ErrMissingAddress, symbol, token.Address, *c.Id)
		}
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	tokens := make(map[string]config.TokenConfig)
	for symbol, t := range c.Tokens {
		tokens[symbol] = config.TokenConfig{
			Address:  common.HexToAddress(t.Address),
			Decimals: t.Decimals,
		}
	}

	return &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		Orders:             common.HexToAddress(c.Orders),
		Permit2:            common.HexToAddress(c.Permit2),
		Tokens:             tokens,
		NativeSymbol:       c.NativeSymbol,
		GasLimit:           c.GasLimit,
		PriorityFee:        big.NewInt(c.PriorityFee),
		// nolint:gosec
		BlockRetryInterval: time.Duration(c.BlockRetryInterval) * time.Second,
	}, nil
}

func (c *EVMConfig) TxOpts() transactor.TxOpts {
	return transactor.TxOpts{
		GasLimit:    c.GasLimit,
		PriorityFee: c.PriorityFee,
	}
}

func (c *EVMConfig) Constants() orders.ChainConstants {
	return orders.ChainConstants{
		ChainID: *c.GeneralChainConfig.Id,
		Orders:  c.Orders,
		Permit2: c.Permit2,
	}
}

// NewSystem pairs the host and rollup chain configs into system constants
// and a token table covering both chains.
func NewSystem(configs []*EVMConfig) (orders.SystemConstants, *config.TokenStore, error) {
	var system orders.SystemConstants
	tokens := config.NewTokenStore()

	var host, rollup bool
	for _, c := range configs {
		switch c.GeneralChainConfig.Role {
		case chain.HostRole:
			if host {
				return system, nil, fmt.Errorf("%w: more than one host chain", orders.ErrConfiguration)
			}
			host = true
			system.Host = c.Constants()
		case chain.RollupRole:
			if rollup {
				return system, nil, fmt.Errorf("%w: more than one rollup chain", orders.ErrConfiguration)
			}
			rollup = true
			system.Rollup = c.Constants()
		}
		tokens.Add(*c.GeneralChainConfig.Id, c.Tokens)
		tokens.AddNative(*c.GeneralChainConfig.Id, c.NativeSymbol)
	}

	err := system.Validate()
	if err != nil {
		return system, nil, err
	}
	return system, tokens, nil
}

type ChainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// VerifyChainID fails when the RPC endpoint serves a different chain than
// the one configured.
func VerifyChainID(ctx context.Context, client ChainIDReader, c *EVMConfig) error {
	id, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed fetching chain id of %s: %w", c.GeneralChainConfig.Name, err)
	}
	if !id.IsUint64() || id.Uint64() != *c.GeneralChainConfig.Id {
		return fmt.Errorf("%w: chain %s configured as %d, rpc reports %s",
			orders.ErrUnsupportedChain, c.GeneralChainConfig.Name, *c.GeneralChainConfig.Id, id)
	}
	return nil
}

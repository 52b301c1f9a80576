package orders

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ChainConstants are the settlement addresses deployed on a single chain.
type ChainConstants struct {
	ChainID uint64
	Orders  common.Address
	Permit2 common.Address
}

// SystemConstants pairs the host chain with the rollup settling on it. It is
// resolved once at startup and passed to every component.
type SystemConstants struct {
	Host   ChainConstants
	Rollup ChainConstants
}

func (c SystemConstants) Validate() error {
	if c.Host.ChainID == 0 || c.Rollup.ChainID == 0 {
		return fmt.Errorf("%w: host %d, rollup %d", ErrUnsupportedChain, c.Host.ChainID, c.Rollup.ChainID)
	}
	if c.Host.ChainID == c.Rollup.ChainID {
		return fmt.Errorf("%w: host and rollup share chain id %d", ErrUnsupportedChain, c.Host.ChainID)
	}

	for _, chain := range []ChainConstants{c.Host, c.Rollup} {
		if chain.Orders == (common.Address{}) {
			return fmt.Errorf("%w: orders contract for chain %d", ErrMissingAddress, chain.ChainID)
		}
		if chain.Permit2 == (common.Address{}) {
			return fmt.Errorf("%w: permit2 contract for chain %d", ErrMissingAddress, chain.ChainID)
		}
	}
	return nil
}

func (c SystemConstants) ByChainID(chainID uint64) (ChainConstants, error) {
	switch chainID {
	case c.Host.ChainID:
		return c.Host, nil
	case c.Rollup.ChainID:
		return c.Rollup, nil
	default:
		return ChainConstants{}, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}
}

func (c SystemConstants) IsRollup(chainID uint64) bool {
	return chainID == c.Rollup.ChainID
}

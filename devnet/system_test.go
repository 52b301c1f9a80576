package devnet_test

import (
	"testing"

	"github.com/sprintertech/signet-orders/devnet"
	"github.com/stretchr/testify/suite"
)

type DefaultSystemTestSuite struct {
	suite.Suite
}

func TestRunDefaultSystemTestSuite(t *testing.T) {
	suite.Run(t, new(DefaultSystemTestSuite))
}

func (s *DefaultSystemTestSuite) Test_DefaultSystem_Valid() {
	system := devnet.DefaultSystem()

	s.Nil(system.Validate())
	s.Equal(devnet.HOST_CHAIN_ID, system.Host.ChainID)
	s.Equal(devnet.ROLLUP_CHAIN_ID, system.Rollup.ChainID)
}

func (s *DefaultSystemTestSuite) Test_DefaultTokens_WethOnBothChains() {
	tokens := devnet.DefaultTokens()

	host, err := tokens.ConfigBySymbol(devnet.HOST_CHAIN_ID, "WETH")
	s.Nil(err)
	s.Equal(devnet.HOST_WETH_ADDRESS, host.Address)

	rollup, err := tokens.ConfigBySymbol(devnet.ROLLUP_CHAIN_ID, "WETH")
	s.Nil(err)
	s.Equal(devnet.ROLLUP_WETH_ADDRESS, rollup.Address)
	s.True(tokens.IsSupported(devnet.ROLLUP_CHAIN_ID, devnet.ROLLUP_WETH_ADDRESS))
}

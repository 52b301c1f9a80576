package config_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/signet-orders/config"
	"github.com/stretchr/testify/suite"
)

type TokenStoreTestSuite struct {
	suite.Suite

	store *config.TokenStore
}

func TestRunTokenStoreTestSuite(t *testing.T) {
	suite.Run(t, new(TokenStoreTestSuite))
}

func (s *TokenStoreTestSuite) SetupTest() {
	s.store = config.NewTokenStore()
	s.store.Add(1, map[string]config.TokenConfig{
		"WETH": {Address: common.HexToAddress("0x1"), Decimals: 18},
		"ETH":  {Address: common.Address{}, Decimals: 18},
	})
}

func (s *TokenStoreTestSuite) Test_ConfigByAddress() {
	symbol, c, err := s.store.ConfigByAddress(1, common.HexToAddress("0x1"))

	s.Nil(err)
	s.Equal("WETH", symbol)
	s.Equal(uint8(18), c.Decimals)
}

func (s *TokenStoreTestSuite) Test_ConfigBySymbol_Missing() {
	_, err := s.store.ConfigBySymbol(1, "USDC")

	s.ErrorIs(err, config.ErrUnknownToken)
}

func (s *TokenStoreTestSuite) Test_ConfigByAddress_UnknownChain() {
	_, _, err := s.store.ConfigByAddress(2, common.HexToAddress("0x1"))

	s.ErrorIs(err, config.ErrUnknownToken)
}

func (s *TokenStoreTestSuite) Test_IsSupported() {
	s.True(s.store.IsSupported(1, common.HexToAddress("0x1")))
	s.True(s.store.IsSupported(1, common.Address{}))
	s.False(s.store.IsSupported(1, common.HexToAddress("0x2")))
	s.False(s.store.IsSupported(2, common.HexToAddress("0x1")))
	s.False(s.store.IsSupported(2, common.Address{}))
}

func (s *TokenStoreTestSuite) Test_SupportsChain() {
	s.True(s.store.SupportsChain(1))
	s.False(s.store.SupportsChain(999))
}

func (s *TokenStoreTestSuite) Test_ConfigByAddress_NativeFallback() {
	s.store.Add(2, map[string]config.TokenConfig{
		"USDC": {Address: common.HexToAddress("0x3"), Decimals: 6},
	})
	s.store.AddNative(2, "USD")

	symbol, c, err := s.store.ConfigByAddress(2, common.Address{})

	s.Nil(err)
	s.Equal("USD", symbol)
	s.Equal(uint8(config.DEFAULT_NATIVE_DECIMALS), c.Decimals)
}

func (s *TokenStoreTestSuite) Test_ConfigByAddress_NativeOnUnknownChain() {
	_, _, err := s.store.ConfigByAddress(999, common.Address{})

	s.ErrorIs(err, config.ErrUnknownToken)
}

package config

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const (
	DEFAULT_NATIVE_SYMBOL   = "ETH"
	DEFAULT_NATIVE_DECIMALS = 18
)

var ErrUnknownToken = errors.New("unknown token")

type TokenConfig struct {
	Address  common.Address
	Decimals uint8
}

// TokenStore is the token table of the host and the rollup, keyed by chain id
// and symbol.
type TokenStore struct {
	Tokens map[uint64]map[string]TokenConfig
	// Native maps a chain id to the symbol of its native asset.
	Native map[uint64]string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{
		Tokens: make(map[uint64]map[string]TokenConfig),
		Native: make(map[uint64]string),
	}
}

// Add registers the tokens of chainID, replacing any previous table.
func (s *TokenStore) Add(chainID uint64, tokens map[string]TokenConfig) {
	if s.Tokens == nil {
		s.Tokens = make(map[uint64]map[string]TokenConfig)
	}
	s.Tokens[chainID] = tokens
}

// AddNative sets the symbol the native asset of chainID is priced by.
func (s *TokenStore) AddNative(chainID uint64, symbol string) {
	if s.Native == nil {
		s.Native = make(map[uint64]string)
	}
	s.Native[chainID] = symbol
}

// ConfigByAddress resolves a token of chainID. The zero address resolves to
// the native asset of any known chain unless it is configured explicitly.
func (s *TokenStore) ConfigByAddress(chainID uint64, address common.Address) (string, TokenConfig, error) {
	for symbol, c := range s.Tokens[chainID] {
		if c.Address == address {
			return symbol, c, nil
		}
	}

	if address == (common.Address{}) && s.SupportsChain(chainID) {
		symbol, ok := s.Native[chainID]
		if !ok || symbol == "" {
			symbol = DEFAULT_NATIVE_SYMBOL
		}
		return symbol, TokenConfig{Decimals: DEFAULT_NATIVE_DECIMALS}, nil
	}
	return "", TokenConfig{}, fmt.Errorf("%w: %s on chain %d", ErrUnknownToken, address.Hex(), chainID)
}

func (s *TokenStore) ConfigBySymbol(chainID uint64, symbol string) (TokenConfig, error) {
	c, ok := s.Tokens[chainID][symbol]
	if !ok {
		return TokenConfig{}, fmt.Errorf("%w: %s on chain %d", ErrUnknownToken, symbol, chainID)
	}
	return c, nil
}

func (s *TokenStore) SupportsChain(chainID uint64) bool {
	_, ok := s.Tokens[chainID]
	return ok
}

func (s *TokenStore) IsSupported(chainID uint64, address common.Address) bool {
	_, _, err := s.ConfigByAddress(chainID, address)
	return err == nil
}

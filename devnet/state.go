package devnet

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/signet-orders/orders"
)

// state is the mutable ledger of a single chain.
type state struct {
	balances map[common.Address]map[common.Address]*big.Int
	nonces   map[common.Address]uint64
	permits  map[common.Address]map[string]bool
}

func newState() *state {
	return &state{
		balances: make(map[common.Address]map[common.Address]*big.Int),
		nonces:   make(map[common.Address]uint64),
		permits:  make(map[common.Address]map[string]bool),
	}
}

func (s *state) copy() *state {
	c := newState()
	for token, accounts := range s.balances {
		c.balances[token] = make(map[common.Address]*big.Int, len(accounts))
		for account, amount := range accounts {
			c.balances[token][account] = new(big.Int).Set(amount)
		}
	}
	for account, nonce := range s.nonces {
		c.nonces[account] = nonce
	}
	for owner, nonces := range s.permits {
		c.permits[owner] = make(map[string]bool, len(nonces))
		for nonce := range nonces {
			c.permits[owner][nonce] = true
		}
	}
	return c
}

func (s *state) balance(token common.Address, account common.Address) *big.Int {
	accounts, ok := s.balances[token]
	if !ok {
		return new(big.Int)
	}
	amount, ok := accounts[account]
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(amount)
}

func (s *state) credit(token common.Address, account common.Address, amount *big.Int) {
	accounts, ok := s.balances[token]
	if !ok {
		accounts = make(map[common.Address]*big.Int)
		s.balances[token] = accounts
	}
	balance, ok := accounts[account]
	if !ok {
		balance = new(big.Int)
		accounts[account] = balance
	}
	balance.Add(balance, amount)
}

func (s *state) transfer(token common.Address, from common.Address, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return fmt.Errorf("%w: %v", orders.ErrInvalidAmount, amount)
	}

	balance := s.balance(token, from)
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s holds %s of %s, needs %s", orders.ErrInsufficientBalance, from.Hex(), balance, token.Hex(), amount)
	}

	s.credit(token, from, new(big.Int).Neg(amount))
	s.credit(token, to, amount)
	return nil
}

func (s *state) permitUsed(owner common.Address, nonce *big.Int) bool {
	return s.permits[owner][nonce.String()]
}

func (s *state) usePermit(owner common.Address, nonce *big.Int) error {
	if s.permitUsed(owner, nonce) {
		return fmt.Errorf("%w: owner %s, nonce %s", orders.ErrPermitReused, owner.Hex(), nonce)
	}

	nonces, ok := s.permits[owner]
	if !ok {
		nonces = make(map[string]bool)
		s.permits[owner] = nonces
	}
	nonces[nonce.String()] = true
	return nil
}

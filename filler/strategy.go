package filler

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/signet-orders/orders"
)

type Strategy string

const (
	Aggregate  Strategy = "aggregate"
	Individual Strategy = "individual"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case Aggregate, "":
		return Aggregate, nil
	case Individual:
		return Individual, nil
	default:
		return "", fmt.Errorf("%w: unknown fill strategy %s", orders.ErrConfiguration, s)
	}
}

// FillError reports which orders a failed fill attempt covered.
type FillError struct {
	OrderHashes []common.Hash
	Strategy    Strategy
	Err         error
}

func (e *FillError) Error() string {
	hashes := make([]string, len(e.OrderHashes))
	for i, hash := range e.OrderHashes {
		hashes[i] = hash.Hex()
	}
	return fmt.Sprintf("%s fill of orders [%s] failed: %s", e.Strategy, strings.Join(hashes, ", "), e.Err)
}

func (e *FillError) Unwrap() error {
	return e.Err
}

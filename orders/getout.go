package orders

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const (
	GET_OUT_FEE_BPS = 50
	BPS_DENOMINATOR = 10_000
)

// GetOutDesired is the output amount for value after the fixed fee, truncated
// toward zero. Zero or missing value is rejected.
func GetOutDesired(value *big.Int) (*big.Int, error) {
	if value == nil || value.Sign() <= 0 {
		return nil, ErrZeroValue
	}

	desired := new(big.Int).Mul(value, big.NewInt(BPS_DENOMINATOR-GET_OUT_FEE_BPS))
	return desired.Quo(desired, big.NewInt(BPS_DENOMINATOR)), nil
}

// GetOut converts native value into a single input, single output order that
// has to be filled at the next opportunity.
func GetOut(value *big.Int, outputToken common.Address, recipient common.Address, chainID uint32, now time.Time) (Order, error) {
	desired, err := GetOutDesired(value)
	if err != nil {
		return Order{}, err
	}

	return Order{
		Inputs: []Input{
			{Token: NativeToken, Amount: new(big.Int).Set(value)},
		},
		Outputs: []Output{
			{Token: outputToken, Amount: desired, Recipient: recipient, ChainID: chainID},
		},
		// nolint:gosec
		Deadline: uint64(now.Unix()),
	}, nil
}

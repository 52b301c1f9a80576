package orders

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type outputKey struct {
	chainID   uint32
	token     common.Address
	recipient common.Address
}

// AggregateOrders sums the inputs and outputs of several orders. Outputs are
// merged per destination chain, token and recipient, keeping first-seen order.
type AggregateOrders struct {
	inputs      []Input
	inputIndex  map[common.Address]int
	outputs     []Output
	outputIndex map[outputKey]int
	deadline    uint64
}

func NewAggregateOrders() *AggregateOrders {
	return &AggregateOrders{
		inputs:      make([]Input, 0),
		inputIndex:  make(map[common.Address]int),
		outputs:     make([]Output, 0),
		outputIndex: make(map[outputKey]int),
		deadline:    NoDeadline,
	}
}

func AggregateSignedOrders(orders ...*SignedOrder) *AggregateOrders {
	agg := NewAggregateOrders()
	for _, o := range orders {
		agg.Ingest(o.Order())
	}
	return agg
}

func (a *AggregateOrders) Ingest(order Order) {
	for _, in := range order.Inputs {
		i, ok := a.inputIndex[in.Token]
		if !ok {
			a.inputIndex[in.Token] = len(a.inputs)
			a.inputs = append(a.inputs, Input{Token: in.Token, Amount: new(big.Int)})
			i = len(a.inputs) - 1
		}
		a.inputs[i].Amount.Add(a.inputs[i].Amount, in.Amount)
	}

	for _, out := range order.Outputs {
		key := outputKey{chainID: out.ChainID, token: out.Token, recipient: out.Recipient}
		i, ok := a.outputIndex[key]
		if !ok {
			a.outputIndex[key] = len(a.outputs)
			a.outputs = append(a.outputs, Output{
				Token:     out.Token,
				Amount:    new(big.Int),
				Recipient: out.Recipient,
				ChainID:   out.ChainID,
			})
			i = len(a.outputs) - 1
		}
		a.outputs[i].Amount.Add(a.outputs[i].Amount, out.Amount)
	}

	if order.Deadline < a.deadline {
		a.deadline = order.Deadline
	}
}

func (a *AggregateOrders) Inputs() []Input {
	return a.inputs
}

func (a *AggregateOrders) Outputs() []Output {
	return a.outputs
}

// Deadline is the earliest deadline of the ingested orders.
func (a *AggregateOrders) Deadline() uint64 {
	return a.deadline
}

// DestinationChains lists the chains receiving outputs in first-seen order.
func (a *AggregateOrders) DestinationChains() []uint64 {
	seen := make(map[uint64]bool)
	chains := make([]uint64, 0)
	for _, out := range a.outputs {
		if seen[uint64(out.ChainID)] {
			continue
		}
		seen[uint64(out.ChainID)] = true
		chains = append(chains, uint64(out.ChainID))
	}
	return chains
}

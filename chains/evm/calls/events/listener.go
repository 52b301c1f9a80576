// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/sprintertech/signet-orders/chains/evm/calls/consts"
	"github.com/sprintertech/signet-orders/orders"
)

type input struct {
	Token  common.Address
	Amount *big.Int
}

type output struct {
	Token     common.Address
	Amount    *big.Int
	Recipient common.Address
	ChainId   uint32
}

// Order is emitted by the orders contract once inputs are escrowed.
type Order struct {
	Deadline *big.Int
	Inputs   []orders.Input
	Outputs  []orders.Output
}

// Filled is emitted by the orders contract when outputs are delivered.
type Filled struct {
	Outputs []orders.Output
}

type Listener struct {
	abi abi.ABI
}

func NewListener() *Listener {
	return &Listener{
		abi: consts.OrdersABI,
	}
}

// OrderLogs decodes every Order event emitted by contract in logs.
func (l *Listener) OrderLogs(contract common.Address, logs []*ethTypes.Log) []*Order {
	orderEvents := make([]*Order, 0)
	for _, lg := range logs {
		if lg.Address != contract || len(lg.Topics) == 0 || lg.Topics[0] != OrderSig.GetTopic() {
			continue
		}

		var ev struct {
			Deadline *big.Int
			Inputs   []input
			Outputs  []output
		}
		err := l.abi.UnpackIntoInterface(&ev, "Order", lg.Data)
		if err != nil {
			log.Err(err).Msgf("failed unpacking order event log")
			continue
		}

		inputs := make([]orders.Input, len(ev.Inputs))
		for i, in := range ev.Inputs {
			inputs[i] = orders.Input{Token: in.Token, Amount: in.Amount}
		}
		orderEvents = append(orderEvents, &Order{
			Deadline: ev.Deadline,
			Inputs:   inputs,
			Outputs:  fromOutputs(ev.Outputs),
		})
	}
	return orderEvents
}

// FilledLogs decodes every Filled event emitted by contract in logs.
func (l *Listener) FilledLogs(contract common.Address, logs []*ethTypes.Log) []*Filled {
	filledEvents := make([]*Filled, 0)
	for _, lg := range logs {
		if lg.Address != contract || len(lg.Topics) == 0 || lg.Topics[0] != FilledSig.GetTopic() {
			continue
		}

		var ev struct {
			Outputs []output
		}
		err := l.abi.UnpackIntoInterface(&ev, "Filled", lg.Data)
		if err != nil {
			log.Err(err).Msgf("failed unpacking filled event log")
			continue
		}
		filledEvents = append(filledEvents, &Filled{Outputs: fromOutputs(ev.Outputs)})
	}
	return filledEvents
}

// OrderLog builds the log the orders contract emits for an initiated order.
func OrderLog(contract common.Address, deadline *big.Int, inputs []orders.Input, outputs []orders.Output) (*ethTypes.Log, error) {
	in := make([]input, len(inputs))
	for i, x := range inputs {
		in[i] = input{Token: x.Token, Amount: x.Amount}
	}

	data, err := consts.OrdersABI.Events["Order"].Inputs.Pack(deadline, in, toOutputs(outputs))
	if err != nil {
		return nil, err
	}
	return &ethTypes.Log{
		Address: contract,
		Topics:  []common.Hash{OrderSig.GetTopic()},
		Data:    data,
	}, nil
}

// FilledLog builds the log the orders contract emits for delivered outputs.
func FilledLog(contract common.Address, outputs []orders.Output) (*ethTypes.Log, error) {
	data, err := consts.OrdersABI.Events["Filled"].Inputs.Pack(toOutputs(outputs))
	if err != nil {
		return nil, err
	}
	return &ethTypes.Log{
		Address: contract,
		Topics:  []common.Hash{FilledSig.GetTopic()},
		Data:    data,
	}, nil
}

func toOutputs(outputs []orders.Output) []output {
	out := make([]output, len(outputs))
	for i, o := range outputs {
		out[i] = output{Token: o.Token, Amount: o.Amount, Recipient: o.Recipient, ChainId: o.ChainID}
	}
	return out
}

func fromOutputs(outputs []output) []orders.Output {
	out := make([]orders.Output, len(outputs))
	for i, o := range outputs {
		out[i] = orders.Output{Token: o.Token, Amount: o.Amount, Recipient: o.Recipient, ChainID: o.ChainId}
	}
	return out
}

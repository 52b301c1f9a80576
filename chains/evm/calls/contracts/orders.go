package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/signet-orders/chains/evm/calls/consts"
	"github.com/sprintertech/signet-orders/orders"
)

const (
	InitiateMethod        = "initiate"
	InitiatePermit2Method = "initiatePermit2"
	FillMethod            = "fill"
	FillPermit2Method     = "fillPermit2"
)

type abiInput struct {
	Token  common.Address
	Amount *big.Int
}

type abiOutput struct {
	Token     common.Address
	Amount    *big.Int
	Recipient common.Address
	ChainId   uint32
}

type abiTokenPermissions struct {
	Token  common.Address
	Amount *big.Int
}

type abiPermitBatch struct {
	Permitted []abiTokenPermissions
	Nonce     *big.Int
	Deadline  *big.Int
}

type abiPermit2Batch struct {
	Permit    abiPermitBatch
	Owner     common.Address
	Signature []byte
}

// Call is a decoded orders contract call.
type Call struct {
	Method         string
	TokenRecipient common.Address
	Deadline       *big.Int
	Inputs         []orders.Input
	Outputs        []orders.Output
	Permit         *orders.Permit2Batch
}

// OrdersContract encodes and decodes calls to the settlement contract of a
// single chain.
type OrdersContract struct {
	address common.Address
	abi     abi.ABI
}

func NewOrdersContract(address common.Address) *OrdersContract {
	return &OrdersContract{
		address: address,
		abi:     consts.OrdersABI,
	}
}

func (c *OrdersContract) Address() common.Address {
	return c.address
}

// InitiatePermit2 escrows the order inputs, releasing them to tokenRecipient
// once the outputs are filled.
func (c *OrdersContract) InitiatePermit2(tokenRecipient common.Address, order *orders.SignedOrder) ([]byte, error) {
	return c.abi.Pack(InitiatePermit2Method, tokenRecipient, toABIOutputs(order.Outputs), toABIPermit(order.Permit))
}

func (c *OrdersContract) FillPermit2(fill *orders.SignedFill) ([]byte, error) {
	return c.abi.Pack(FillPermit2Method, toABIOutputs(fill.Outputs), toABIPermit(fill.Permit))
}

// Initiate creates an order paid with the sender's own funds, native inputs
// being attached as value.
func (c *OrdersContract) Initiate(order orders.Order) ([]byte, error) {
	inputs := make([]abiInput, len(order.Inputs))
	for i, in := range order.Inputs {
		inputs[i] = abiInput{Token: in.Token, Amount: in.Amount}
	}
	return c.abi.Pack(InitiateMethod, new(big.Int).SetUint64(order.Deadline), inputs, toABIOutputs(order.Outputs))
}

func (c *OrdersContract) Fill(outputs []orders.Output) ([]byte, error) {
	return c.abi.Pack(FillMethod, toABIOutputs(outputs))
}

func (c *OrdersContract) Decode(data []byte) (*Call, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("calldata too short")
	}

	method, err := c.abi.MethodById(data[:4])
	if err != nil {
		return nil, err
	}
	values, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, err
	}

	call := &Call{Method: method.Name}
	switch method.Name {
	case InitiateMethod:
		var args struct {
			Deadline *big.Int
			Inputs   []abiInput
			Outputs  []abiOutput
		}
		if err := method.Inputs.Copy(&args, values); err != nil {
			return nil, err
		}
		call.Deadline = args.Deadline
		call.Inputs = make([]orders.Input, len(args.Inputs))
		for i, in := range args.Inputs {
			call.Inputs[i] = orders.Input{Token: in.Token, Amount: in.Amount}
		}
		call.Outputs = fromABIOutputs(args.Outputs)
	case InitiatePermit2Method:
		var args struct {
			TokenRecipient common.Address
			Outputs        []abiOutput
			Permit2        abiPermit2Batch
		}
		if err := method.Inputs.Copy(&args, values); err != nil {
			return nil, err
		}
		call.TokenRecipient = args.TokenRecipient
		call.Outputs = fromABIOutputs(args.Outputs)
		call.Permit = fromABIPermit(args.Permit2)
	case FillMethod:
		var outputs []abiOutput
		if err := method.Inputs.Copy(&outputs, values); err != nil {
			return nil, err
		}
		call.Outputs = fromABIOutputs(outputs)
	case FillPermit2Method:
		var args struct {
			Outputs []abiOutput
			Permit2 abiPermit2Batch
		}
		if err := method.Inputs.Copy(&args, values); err != nil {
			return nil, err
		}
		call.Outputs = fromABIOutputs(args.Outputs)
		call.Permit = fromABIPermit(args.Permit2)
	default:
		return nil, fmt.Errorf("unsupported method %s", method.Name)
	}
	return call, nil
}

func toABIOutputs(outputs []orders.Output) []abiOutput {
	out := make([]abiOutput, len(outputs))
	for i, o := range outputs {
		out[i] = abiOutput{
			Token:     o.Token,
			Amount:    o.Amount,
			Recipient: o.Recipient,
			ChainId:   o.ChainID,
		}
	}
	return out
}

func fromABIOutputs(outputs []abiOutput) []orders.Output {
	out := make([]orders.Output, len(outputs))
	for i, o := range outputs {
		out[i] = orders.Output{
			Token:     o.Token,
			Amount:    o.Amount,
			Recipient: o.Recipient,
			ChainID:   o.ChainId,
		}
	}
	return out
}

func toABIPermit(p orders.Permit2Batch) abiPermit2Batch {
	permitted := make([]abiTokenPermissions, len(p.Permit.Permitted))
	for i, t := range p.Permit.Permitted {
		permitted[i] = abiTokenPermissions{Token: t.Token, Amount: t.Amount}
	}

	return abiPermit2Batch{
		Permit: abiPermitBatch{
			Permitted: permitted,
			Nonce:     p.Permit.Nonce,
			Deadline:  p.Permit.Deadline,
		},
		Owner:     p.Owner,
		Signature: p.Signature,
	}
}

func fromABIPermit(p abiPermit2Batch) *orders.Permit2Batch {
	permitted := make([]orders.TokenPermissions, len(p.Permit.Permitted))
	for i, t := range p.Permit.Permitted {
		permitted[i] = orders.TokenPermissions{Token: t.Token, Amount: t.Amount}
	}

	return &orders.Permit2Batch{
		Permit: orders.PermitBatchTransferFrom{
			Permitted: permitted,
			Nonce:     p.Permit.Nonce,
			Deadline:  p.Permit.Deadline,
		},
		Owner:     p.Owner,
		Signature: p.Signature,
	}
}

package devnet

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sprintertech/signet-orders/chains/evm/calls/contracts"
	"github.com/sprintertech/signet-orders/chains/evm/calls/events"
	"github.com/sprintertech/signet-orders/chains/evm/transactor"
	"github.com/sprintertech/signet-orders/orders"
)

var (
	ErrNonceMismatch   = fmt.Errorf("%w: nonce mismatch", orders.ErrSettlementReversion)
	ErrUnsupportedCall = fmt.Errorf("%w: unsupported call", orders.ErrSettlementReversion)
)

type outputKey struct {
	chainID   uint32
	token     common.Address
	recipient common.Address
}

// execution accumulates the effects of a single bundle. Outputs required by
// initiated orders must be covered by fills of the same bundle.
type execution struct {
	blockTime uint64
	required  map[outputKey]*big.Int
	filled    map[outputKey]*big.Int
}

func newExecution(blockTime uint64) *execution {
	return &execution{
		blockTime: blockTime,
		required:  make(map[outputKey]*big.Int),
		filled:    make(map[outputKey]*big.Int),
	}
}

func (e *execution) require(outputs []orders.Output) {
	for _, out := range outputs {
		add(e.required, outputKey{chainID: out.ChainID, token: out.Token, recipient: out.Recipient}, out.Amount)
	}
}

func (e *execution) fill(chainID uint64, outputs []orders.Output) {
	for _, out := range outputs {
		// nolint:gosec
		add(e.filled, outputKey{chainID: uint32(chainID), token: out.Token, recipient: out.Recipient}, out.Amount)
	}
}

func (e *execution) settle() error {
	for key, amount := range e.required {
		filled, ok := e.filled[key]
		if !ok || filled.Cmp(amount) < 0 {
			return fmt.Errorf(
				"%w: %s of %s to %s on chain %d",
				orders.ErrOutputsNotFilled, amount, key.token.Hex(), key.recipient.Hex(), key.chainID)
		}
	}
	return nil
}

func add(m map[outputKey]*big.Int, key outputKey, amount *big.Int) {
	current, ok := m[key]
	if !ok {
		current = new(big.Int)
		m[key] = current
	}
	current.Add(current, amount)
}

// execute applies a raw transaction to the chain state and returns its
// receipt. Any error reverts the whole bundle.
func (c *Chain) execute(raw []byte, blockNumber uint64, exec *execution) (*types.Receipt, error) {
	tx, from, err := transactor.Decode(raw, c.constants.ChainID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCall, err)
	}
	if tx.Nonce() != c.state.nonces[from] {
		return nil, fmt.Errorf("%w: %s sent nonce %d, expected %d", ErrNonceMismatch, from.Hex(), tx.Nonce(), c.state.nonces[from])
	}
	c.state.nonces[from]++

	if tx.To() == nil {
		return nil, fmt.Errorf("%w: contract creation", ErrUnsupportedCall)
	}

	logs := make([]*types.Log, 0)
	if *tx.To() != c.constants.Orders {
		err = c.state.transfer(orders.NativeToken, from, *tx.To(), tx.Value())
	} else {
		logs, err = c.call(from, tx, exec)
	}
	if err != nil {
		return nil, fmt.Errorf("tx %s: %w", tx.Hash().Hex(), err)
	}

	for i, l := range logs {
		l.TxHash = tx.Hash()
		l.BlockNumber = blockNumber
		l.Index = uint(i)
	}
	return &types.Receipt{
		Type:        tx.Type(),
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      tx.Hash(),
		GasUsed:     tx.Gas(),
		BlockNumber: new(big.Int).SetUint64(blockNumber),
		Logs:        logs,
	}, nil
}

func (c *Chain) call(from common.Address, tx *types.Transaction, exec *execution) ([]*types.Log, error) {
	call, err := c.contract.Decode(tx.Data())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCall, err)
	}

	switch call.Method {
	case contracts.InitiateMethod:
		return c.initiate(from, tx.Value(), call, exec)
	case contracts.InitiatePermit2Method:
		return c.initiatePermit2(tx.Value(), call, exec)
	case contracts.FillMethod:
		return c.fill(from, tx.Value(), call, exec)
	case contracts.FillPermit2Method:
		return c.fillPermit2(tx.Value(), call, exec)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCall, call.Method)
	}
}

// initiate escrows inputs paid by the sender in the orders contract.
func (c *Chain) initiate(from common.Address, value *big.Int, call *contracts.Call, exec *execution) ([]*types.Log, error) {
	if !c.rollup {
		return nil, fmt.Errorf("%w: initiate on host chain", ErrUnsupportedCall)
	}
	if len(call.Inputs) == 0 && len(call.Outputs) == 0 {
		return nil, orders.ErrEmptyOrder
	}
	if expired(call.Deadline, exec.blockTime) {
		return nil, fmt.Errorf("%w: deadline %s, block time %d", orders.ErrOrderExpired, call.Deadline, exec.blockTime)
	}

	native := new(big.Int)
	for _, in := range call.Inputs {
		if in.Token == orders.NativeToken {
			native.Add(native, in.Amount)
			continue
		}
		err := c.state.transfer(in.Token, from, c.constants.Orders, in.Amount)
		if err != nil {
			return nil, err
		}
	}
	if native.Cmp(value) != 0 {
		return nil, fmt.Errorf("%w: native inputs %s, value %s", orders.ErrInvalidAmount, native, value)
	}
	err := c.state.transfer(orders.NativeToken, from, c.constants.Orders, value)
	if err != nil {
		return nil, err
	}

	exec.require(call.Outputs)
	l, err := events.OrderLog(c.constants.Orders, call.Deadline, call.Inputs, call.Outputs)
	if err != nil {
		return nil, err
	}
	return []*types.Log{l}, nil
}

// initiatePermit2 moves the permitted inputs from the order owner to the
// token recipient.
func (c *Chain) initiatePermit2(value *big.Int, call *contracts.Call, exec *execution) ([]*types.Log, error) {
	if !c.rollup {
		return nil, fmt.Errorf("%w: initiate on host chain", ErrUnsupportedCall)
	}
	if value.Sign() != 0 {
		return nil, fmt.Errorf("%w: value sent to non payable initiatePermit2", ErrUnsupportedCall)
	}

	order := &orders.SignedOrder{Permit: *call.Permit, Outputs: call.Outputs}
	err := c.consumePermit(order.Permit, exec, func() error {
		return order.VerifySignature(c.constants)
	})
	if err != nil {
		return nil, err
	}

	inputs := make([]orders.Input, len(order.Permit.Permit.Permitted))
	for i, p := range order.Permit.Permit.Permitted {
		if p.Token == orders.NativeToken {
			return nil, fmt.Errorf("%w: native token in permit", orders.ErrInvalidToken)
		}
		err := c.state.transfer(p.Token, order.Permit.Owner, call.TokenRecipient, p.Amount)
		if err != nil {
			return nil, err
		}
		inputs[i] = orders.Input{Token: p.Token, Amount: p.Amount}
	}

	exec.require(call.Outputs)
	l, err := events.OrderLog(c.constants.Orders, order.Permit.Permit.Deadline, inputs, call.Outputs)
	if err != nil {
		return nil, err
	}
	return []*types.Log{l}, nil
}

// fill pays outputs from the sender, native outputs being covered by value.
func (c *Chain) fill(from common.Address, value *big.Int, call *contracts.Call, exec *execution) ([]*types.Log, error) {
	native := new(big.Int)
	for _, out := range call.Outputs {
		if out.Token == orders.NativeToken {
			native.Add(native, out.Amount)
			err := c.state.transfer(orders.NativeToken, from, out.Recipient, out.Amount)
			if err != nil {
				return nil, err
			}
			continue
		}
		err := c.state.transfer(out.Token, from, out.Recipient, out.Amount)
		if err != nil {
			return nil, err
		}
	}
	if native.Cmp(value) != 0 {
		return nil, fmt.Errorf("%w: native outputs %s, value %s", orders.ErrInvalidAmount, native, value)
	}

	exec.fill(c.constants.ChainID, call.Outputs)
	l, err := events.FilledLog(c.constants.Orders, call.Outputs)
	if err != nil {
		return nil, err
	}
	return []*types.Log{l}, nil
}

// fillPermit2 pays each output from the permit owner using the matching
// permitted token.
func (c *Chain) fillPermit2(value *big.Int, call *contracts.Call, exec *execution) ([]*types.Log, error) {
	if value.Sign() != 0 {
		return nil, fmt.Errorf("%w: value sent to non payable fillPermit2", ErrUnsupportedCall)
	}

	fill := &orders.SignedFill{Permit: *call.Permit, Outputs: call.Outputs}
	if len(fill.Permit.Permit.Permitted) != len(fill.Outputs) {
		return nil, fmt.Errorf("%w: %d permitted tokens for %d outputs", orders.ErrInvalidAmount, len(fill.Permit.Permit.Permitted), len(fill.Outputs))
	}
	err := c.consumePermit(fill.Permit, exec, func() error {
		return fill.VerifySignature(c.constants)
	})
	if err != nil {
		return nil, err
	}

	for i, out := range fill.Outputs {
		permitted := fill.Permit.Permit.Permitted[i]
		if permitted.Token != out.Token || permitted.Amount.Cmp(out.Amount) < 0 {
			return nil, fmt.Errorf("%w: permit does not cover output %d", orders.ErrInvalidAmount, i)
		}
		err := c.state.transfer(out.Token, fill.Permit.Owner, out.Recipient, out.Amount)
		if err != nil {
			return nil, err
		}
	}

	exec.fill(c.constants.ChainID, call.Outputs)
	l, err := events.FilledLog(c.constants.Orders, call.Outputs)
	if err != nil {
		return nil, err
	}
	return []*types.Log{l}, nil
}

// consumePermit rejects expired, reused and forged permits before any side
// effect, then marks the nonce used.
func (c *Chain) consumePermit(permit orders.Permit2Batch, exec *execution, verify func() error) error {
	if permit.Permit.Nonce == nil || permit.Permit.Deadline == nil {
		return fmt.Errorf("%w: incomplete permit", orders.ErrInvalidSignature)
	}
	if expired(permit.Permit.Deadline, exec.blockTime) {
		return fmt.Errorf("%w: deadline %s, block time %d", orders.ErrOrderExpired, permit.Permit.Deadline, exec.blockTime)
	}
	if c.state.permitUsed(permit.Owner, permit.Permit.Nonce) {
		return fmt.Errorf("%w: owner %s, nonce %s", orders.ErrPermitReused, permit.Owner.Hex(), permit.Permit.Nonce)
	}

	err := verify()
	if err != nil {
		return err
	}
	return c.state.usePermit(permit.Owner, permit.Permit.Nonce)
}

func expired(deadline *big.Int, blockTime uint64) bool {
	if deadline == nil {
		return true
	}
	return deadline.Cmp(new(big.Int).SetUint64(blockTime)) < 0
}

package orders

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/sprintertech/signet-orders/chains/evm/signature"
)

type TokenPermissions struct {
	Token  common.Address
	Amount *big.Int
}

type PermitBatchTransferFrom struct {
	Permitted []TokenPermissions
	Nonce     *big.Int
	Deadline  *big.Int
}

// Permit2Batch is a signed Permit2 batch transfer, submitted as a single
// argument to the orders contract.
type Permit2Batch struct {
	Permit    PermitBatchTransferFrom `json:"permit"`
	Owner     common.Address          `json:"owner"`
	Signature hexutil.Bytes           `json:"signature"`
}

// SignedOrder is an Order authorized by its owner through Permit2. The
// permitted tokens are the order inputs.
type SignedOrder struct {
	Permit  Permit2Batch `json:"permit"`
	Outputs []Output     `json:"outputs"`
}

// SignedFill authorizes the orders contract on a single chain to move the
// filler's tokens to the output recipients.
type SignedFill struct {
	Permit  Permit2Batch `json:"permit"`
	Outputs []Output     `json:"outputs"`
}

// Order returns the order the permit authorizes.
func (o *SignedOrder) Order() Order {
	inputs := make([]Input, len(o.Permit.Permit.Permitted))
	for i, p := range o.Permit.Permit.Permitted {
		inputs[i] = Input{Token: p.Token, Amount: copyAmount(p.Amount)}
	}

	outputs := make([]Output, len(o.Outputs))
	for i, out := range o.Outputs {
		outputs[i] = out
		outputs[i].Amount = copyAmount(out.Amount)
	}

	return Order{
		Inputs:   inputs,
		Outputs:  outputs,
		Deadline: DeadlineFromBig(o.Permit.Permit.Deadline),
	}
}

// OrderHash identifies the order by its canonical encoding, owner and permit
// nonce.
func (o *SignedOrder) OrderHash() common.Hash {
	// the argument types are fixed, packing only fails on a programming error
	data, err := encodePermit(o.Permit, o.Outputs)
	if err != nil {
		panic(err)
	}
	return crypto.Keccak256Hash(data)
}

// VerifySignature checks that the permit was signed by its owner for the
// orders contract of chain.
func (o *SignedOrder) VerifySignature(chain ChainConstants) error {
	return verifyPermit(o.Permit, o.Outputs, chain)
}

func (f *SignedFill) VerifySignature(chain ChainConstants) error {
	return verifyPermit(f.Permit, f.Outputs, chain)
}

// PermitWitness converts a permit and its outputs into the signed Permit2
// witness structure.
func PermitWitness(permit PermitBatchTransferFrom, outputs []Output, spender common.Address) signature.PermitBatchWitness {
	permitted := make([]signature.TokenPermission, len(permit.Permitted))
	for i, p := range permit.Permitted {
		permitted[i] = signature.TokenPermission{Token: p.Token, Amount: p.Amount}
	}

	witness := make([]signature.WitnessOutput, len(outputs))
	for i, out := range outputs {
		witness[i] = signature.WitnessOutput{
			Token:     out.Token,
			Amount:    out.Amount,
			Recipient: out.Recipient,
			ChainID:   out.ChainID,
		}
	}

	return signature.PermitBatchWitness{
		Permitted: permitted,
		Spender:   spender,
		Nonce:     permit.Nonce,
		Deadline:  permit.Deadline,
		Outputs:   witness,
	}
}

func verifyPermit(permit Permit2Batch, outputs []Output, chain ChainConstants) error {
	digest, err := signature.Permit2Hash(PermitWitness(permit.Permit, outputs, chain.Orders), chain.ChainID, chain.Permit2)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	signer, err := signature.RecoverPermitSigner(digest, permit.Signature)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}
	if signer != permit.Owner {
		return fmt.Errorf("%w: signed by %s, owner %s", ErrInvalidSignature, signer.Hex(), permit.Owner.Hex())
	}
	return nil
}

type hashPermission struct {
	Token  common.Address
	Amount *big.Int
}

type hashOutput struct {
	Token     common.Address
	Amount    *big.Int
	Recipient common.Address
	ChainId   uint32
}

var orderHashArguments = newOrderHashArguments()

func newOrderHashArguments() abi.Arguments {
	permitted, err := abi.NewType("tuple[]", "", []abi.ArgumentMarshaling{
		{Name: "token", Type: "address"},
		{Name: "amount", Type: "uint256"},
	})
	if err != nil {
		panic(err)
	}
	outputs, err := abi.NewType("tuple[]", "", []abi.ArgumentMarshaling{
		{Name: "token", Type: "address"},
		{Name: "amount", Type: "uint256"},
		{Name: "recipient", Type: "address"},
		{Name: "chainId", Type: "uint32"},
	})
	if err != nil {
		panic(err)
	}
	uint256, err := abi.NewType("uint256", "", nil)
	if err != nil {
		panic(err)
	}
	address, err := abi.NewType("address", "", nil)
	if err != nil {
		panic(err)
	}

	return abi.Arguments{
		{Name: "permitted", Type: permitted},
		{Name: "nonce", Type: uint256},
		{Name: "deadline", Type: uint256},
		{Name: "owner", Type: address},
		{Name: "outputs", Type: outputs},
	}
}

// encodePermit is the ABI encoding of
// (permitted[], nonce, deadline, owner, outputs[]).
func encodePermit(permit Permit2Batch, outputs []Output) ([]byte, error) {
	permitted := make([]hashPermission, len(permit.Permit.Permitted))
	for i, p := range permit.Permit.Permitted {
		permitted[i] = hashPermission{Token: p.Token, Amount: orZero(p.Amount)}
	}

	outs := make([]hashOutput, len(outputs))
	for i, out := range outputs {
		outs[i] = hashOutput{
			Token:     out.Token,
			Amount:    orZero(out.Amount),
			Recipient: out.Recipient,
			ChainId:   out.ChainID,
		}
	}

	return orderHashArguments.Pack(
		permitted,
		orZero(permit.Permit.Nonce),
		orZero(permit.Permit.Deadline),
		permit.Owner,
		outs,
	)
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

type tokenPermissionsJSON struct {
	Token  common.Address `json:"token"`
	Amount *hexutil.Big   `json:"amount"`
}

func (t TokenPermissions) MarshalJSON() ([]byte, error) {
	return json.Marshal(tokenPermissionsJSON{
		Token:  t.Token,
		Amount: (*hexutil.Big)(t.Amount),
	})
}

func (t *TokenPermissions) UnmarshalJSON(data []byte) error {
	var v tokenPermissionsJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Amount == nil {
		return fmt.Errorf("missing token amount")
	}

	t.Token = v.Token
	t.Amount = v.Amount.ToInt()
	return nil
}

type permitBatchJSON struct {
	Permitted []TokenPermissions `json:"permitted"`
	Nonce     *hexutil.Big       `json:"nonce"`
	Deadline  *hexutil.Big       `json:"deadline"`
}

func (p PermitBatchTransferFrom) MarshalJSON() ([]byte, error) {
	return json.Marshal(permitBatchJSON{
		Permitted: p.Permitted,
		Nonce:     (*hexutil.Big)(p.Nonce),
		Deadline:  (*hexutil.Big)(p.Deadline),
	})
}

func (p *PermitBatchTransferFrom) UnmarshalJSON(data []byte) error {
	var v permitBatchJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Nonce == nil || v.Deadline == nil {
		return fmt.Errorf("missing permit nonce or deadline")
	}

	p.Permitted = v.Permitted
	p.Nonce = v.Nonce.ToInt()
	p.Deadline = v.Deadline.ToInt()
	return nil
}

type outputJSON struct {
	Token     common.Address `json:"token"`
	Amount    *hexutil.Big   `json:"amount"`
	Recipient common.Address `json:"recipient"`
	ChainID   uint32         `json:"chainId"`
}

func (o Output) MarshalJSON() ([]byte, error) {
	return json.Marshal(outputJSON{
		Token:     o.Token,
		Amount:    (*hexutil.Big)(o.Amount),
		Recipient: o.Recipient,
		ChainID:   o.ChainID,
	})
}

func (o *Output) UnmarshalJSON(data []byte) error {
	var v outputJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Amount == nil {
		return fmt.Errorf("missing output amount")
	}

	o.Token = v.Token
	o.Amount = v.Amount.ToInt()
	o.Recipient = v.Recipient
	o.ChainID = v.ChainID
	return nil
}

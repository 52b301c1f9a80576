package signature

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

const (
	DOMAIN_NAME = "Permit2"

	PERMIT_BATCH_WITNESS_TYPE = "PermitBatchWitnessTransferFrom"
)

type TokenPermission struct {
	Token  common.Address
	Amount *big.Int
}

type WitnessOutput struct {
	Token     common.Address
	Amount    *big.Int
	Recipient common.Address
	ChainID   uint32
}

// PermitBatchWitness is the Permit2 batch transfer authorization with the
// order outputs attached as witness.
type PermitBatchWitness struct {
	Permitted []TokenPermission
	Spender   common.Address
	Nonce     *big.Int
	Deadline  *big.Int
	Outputs   []WitnessOutput
}

// Permit2Hash calculates the EIP-712 digest the permit owner signs so that the
// Permit2 contract on chainID lets spender pull the permitted tokens.
func Permit2Hash(permit PermitBatchWitness, chainID uint64, permit2 common.Address) ([]byte, error) {
	permitted := make([]interface{}, len(permit.Permitted))
	for i, p := range permit.Permitted {
		permitted[i] = map[string]interface{}{
			"token":  p.Token.Hex(),
			"amount": p.Amount,
		}
	}

	outputs := make([]interface{}, len(permit.Outputs))
	for i, o := range permit.Outputs {
		outputs[i] = map[string]interface{}{
			"token":     o.Token.Hex(),
			"amount":    o.Amount,
			"recipient": o.Recipient.Hex(),
			"chainId":   new(big.Int).SetUint64(uint64(o.ChainID)),
		}
	}

	msg := apitypes.TypedDataMessage{
		"permitted": permitted,
		"spender":   permit.Spender.Hex(),
		"nonce":     permit.Nonce,
		"deadline":  permit.Deadline,
		"outputs":   outputs,
	}

	chainId := math.HexOrDecimal256(*new(big.Int).SetUint64(chainID))
	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			PERMIT_BATCH_WITNESS_TYPE: []apitypes.Type{
				{Name: "permitted", Type: "TokenPermissions[]"},
				{Name: "spender", Type: "address"},
				{Name: "nonce", Type: "uint256"},
				{Name: "deadline", Type: "uint256"},
				{Name: "outputs", Type: "Output[]"},
			},
			"TokenPermissions": []apitypes.Type{
				{Name: "token", Type: "address"},
				{Name: "amount", Type: "uint256"},
			},
			"Output": []apitypes.Type{
				{Name: "token", Type: "address"},
				{Name: "amount", Type: "uint256"},
				{Name: "recipient", Type: "address"},
				{Name: "chainId", Type: "uint32"},
			},
		},
		PrimaryType: PERMIT_BATCH_WITNESS_TYPE,
		Domain: apitypes.TypedDataDomain{
			Name:              DOMAIN_NAME,
			ChainId:           &chainId,
			VerifyingContract: permit2.Hex(),
		},
		Message: msg,
	}

	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return []byte{}, err
	}

	messageHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return []byte{}, err
	}

	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(messageHash)))
	return crypto.Keccak256(rawData), nil
}

// RecoverPermitSigner returns the address that produced a 65 byte permit
// signature over digest. Both 0/1 and 27/28 recovery ids are accepted.
func RecoverPermitSigner(digest []byte, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length %d", len(sig))
	}

	s := make([]byte, len(sig))
	copy(s, sig)
	if s[crypto.RecoveryIDOffset] >= 27 {
		s[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(digest, s)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}

package signature_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/sprintertech/signet-orders/chains/evm/signature"
	"github.com/stretchr/testify/suite"
)

type Permit2HashTestSuite struct {
	suite.Suite

	permit  signature.PermitBatchWitness
	permit2 common.Address
}

func TestRunPermit2HashTestSuite(t *testing.T) {
	suite.Run(t, new(Permit2HashTestSuite))
}

func (s *Permit2HashTestSuite) SetupTest() {
	s.permit2 = common.HexToAddress("0x000000000022D473030F116dDEE9F6B43aC78BA3")
	s.permit = signature.PermitBatchWitness{
		Permitted: []signature.TokenPermission{
			{Token: common.HexToAddress("0x1"), Amount: big.NewInt(1000)},
		},
		Spender:  common.HexToAddress("0x2"),
		Nonce:    big.NewInt(7),
		Deadline: big.NewInt(1700000000),
		Outputs: []signature.WitnessOutput{
			{
				Token:     common.HexToAddress("0x3"),
				Amount:    big.NewInt(990),
				Recipient: common.HexToAddress("0x4"),
				ChainID:   519,
			},
		},
	}
}

func (s *Permit2HashTestSuite) Test_Deterministic() {
	h1, err := signature.Permit2Hash(s.permit, 519, s.permit2)
	s.Nil(err)
	h2, err := signature.Permit2Hash(s.permit, 519, s.permit2)
	s.Nil(err)

	s.Len(h1, 32)
	s.Equal(h1, h2)
}

func (s *Permit2HashTestSuite) Test_ChainIDChangesDigest() {
	h1, err := signature.Permit2Hash(s.permit, 519, s.permit2)
	s.Nil(err)
	h2, err := signature.Permit2Hash(s.permit, 1, s.permit2)
	s.Nil(err)

	s.NotEqual(h1, h2)
}

func (s *Permit2HashTestSuite) Test_WitnessChangesDigest() {
	h1, err := signature.Permit2Hash(s.permit, 519, s.permit2)
	s.Nil(err)

	s.permit.Outputs[0].Recipient = common.HexToAddress("0x5")
	h2, err := signature.Permit2Hash(s.permit, 519, s.permit2)
	s.Nil(err)

	s.NotEqual(h1, h2)
}

func (s *Permit2HashTestSuite) Test_RecoverPermitSigner() {
	key, _ := crypto.GenerateKey()
	digest, err := signature.Permit2Hash(s.permit, 519, s.permit2)
	s.Nil(err)

	sig, err := crypto.Sign(digest, key)
	s.Nil(err)
	sig[64] += 27

	signer, err := signature.RecoverPermitSigner(digest, sig)

	s.Nil(err)
	s.Equal(crypto.PubkeyToAddress(key.PublicKey), signer)
}

func (s *Permit2HashTestSuite) Test_RecoverPermitSigner_InvalidLength() {
	_, err := signature.RecoverPermitSigner(make([]byte, 32), []byte{1, 2, 3})

	s.NotNil(err)
}

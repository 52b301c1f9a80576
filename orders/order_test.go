package orders_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jonboulle/clockwork"
	"github.com/sprintertech/signet-orders/orders"
	"github.com/sprintertech/signet-orders/signer"
	"github.com/stretchr/testify/suite"
)

var (
	weth     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	usdc     = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	hostWeth = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

type tokenSet map[uint64][]common.Address

func (t tokenSet) SupportsChain(chainID uint64) bool {
	_, ok := t[chainID]
	return ok
}

func (t tokenSet) IsSupported(chainID uint64, token common.Address) bool {
	for _, a := range t[chainID] {
		if a == token {
			return true
		}
	}
	return false
}

func testSystem() orders.SystemConstants {
	return orders.SystemConstants{
		Host: orders.ChainConstants{
			ChainID: 3151908,
			Orders:  common.HexToAddress("0x0000000000000000000000000000000000000011"),
			Permit2: common.HexToAddress("0x000000000022D473030F116dDEE9F6B43aC78BA3"),
		},
		Rollup: orders.ChainConstants{
			ChainID: 14174,
			Orders:  common.HexToAddress("0x0000000000000000000000000000000000000022"),
			Permit2: common.HexToAddress("0x000000000022D473030F116dDEE9F6B43aC78BA3"),
		},
	}
}

type OrderTestSuite struct {
	suite.Suite
}

func TestRunOrderTestSuite(t *testing.T) {
	suite.Run(t, new(OrderTestSuite))
}

func (s *OrderTestSuite) Test_IsExpired() {
	now := time.Unix(1000, 0)

	s.False(orders.Order{Deadline: 1000}.IsExpired(now))
	s.False(orders.Order{Deadline: 1001}.IsExpired(now))
	s.True(orders.Order{Deadline: 999}.IsExpired(now))
	s.False(orders.Order{Deadline: orders.NoDeadline}.IsExpired(time.Unix(1<<62, 0)))
}

func (s *OrderTestSuite) Test_DeadlineFromBig() {
	s.Equal(uint64(5), orders.DeadlineFromBig(big.NewInt(5)))
	s.Equal(orders.NoDeadline, orders.DeadlineFromBig(new(big.Int).Lsh(big.NewInt(1), 200)))
	s.Equal(orders.NoDeadline, orders.DeadlineFromBig(nil))
}

func (s *OrderTestSuite) Test_OutputsForChain() {
	order := orders.Order{
		Outputs: []orders.Output{
			{Token: weth, Amount: big.NewInt(1), ChainID: 1},
			{Token: usdc, Amount: big.NewInt(2), ChainID: 2},
			{Token: usdc, Amount: big.NewInt(3), ChainID: 1},
		},
	}

	outputs := order.OutputsForChain(1)

	s.Len(outputs, 2)
	s.Equal(int64(1), outputs[0].Amount.Int64())
	s.Equal(int64(3), outputs[1].Amount.Int64())
}

type GetOutTestSuite struct {
	suite.Suite
}

func TestRunGetOutTestSuite(t *testing.T) {
	suite.Run(t, new(GetOutTestSuite))
}

func (s *GetOutTestSuite) Test_Desired() {
	testcases := []struct {
		value    int64
		expected int64
	}{
		{value: 1000, expected: 995},
		{value: 1, expected: 0},
		{value: 999, expected: 994},
		{value: 1_000_000_000, expected: 995_000_000},
		{value: 201, expected: 199},
	}

	for _, tc := range testcases {
		desired, err := orders.GetOutDesired(big.NewInt(tc.value))

		s.Nil(err)
		s.Equal(tc.expected, desired.Int64(), "value %d", tc.value)
	}
}

func (s *GetOutTestSuite) Test_ZeroValueRejected() {
	_, err := orders.GetOutDesired(big.NewInt(0))
	s.ErrorIs(err, orders.ErrZeroValue)

	_, err = orders.GetOutDesired(nil)
	s.ErrorIs(err, orders.ErrZeroValue)

	_, err = orders.GetOut(big.NewInt(0), weth, common.HexToAddress("0x1"), 1, time.Now())
	s.ErrorIs(err, orders.ErrZeroValue)
	s.ErrorIs(err, orders.ErrValidation)
}

func (s *GetOutTestSuite) Test_Order() {
	now := time.Unix(1700000000, 0)
	recipient := common.HexToAddress("0x1")

	order, err := orders.GetOut(big.NewInt(10_000), weth, recipient, 1, now)

	s.Nil(err)
	s.Equal([]orders.Input{{Token: orders.NativeToken, Amount: big.NewInt(10_000)}}, order.Inputs)
	s.Equal([]orders.Output{{Token: weth, Amount: big.NewInt(9950), Recipient: recipient, ChainID: 1}}, order.Outputs)
	s.Equal(uint64(1700000000), order.Deadline)
	s.False(order.IsExpired(now))
	s.True(order.IsExpired(now.Add(time.Second)))
}

type UnsignedOrderTestSuite struct {
	suite.Suite

	system orders.SystemConstants
	tokens tokenSet
	signer *signer.LocalSigner
	now    time.Time
}

func TestRunUnsignedOrderTestSuite(t *testing.T) {
	suite.Run(t, new(UnsignedOrderTestSuite))
}

func (s *UnsignedOrderTestSuite) SetupTest() {
	s.system = testSystem()
	s.tokens = tokenSet{
		s.system.Rollup.ChainID: {weth, usdc},
		s.system.Host.ChainID:   {hostWeth},
	}
	key, _ := crypto.GenerateKey()
	s.signer = signer.NewLocalSigner(key)
	s.now = time.Unix(1700000000, 0)
}

func (s *UnsignedOrderTestSuite) validOrder() *orders.UnsignedOrder {
	return orders.NewUnsignedOrder().
		WithInput(weth, big.NewInt(1_000_000_000)).
		WithOutput(hostWeth, big.NewInt(1_000_000_000), s.signer.Address(), uint32(s.system.Host.ChainID)).
		WithDeadline(uint64(s.now.Unix()) + 600).
		WithChain(s.system.Rollup)
}

func (s *UnsignedOrderTestSuite) Test_Validate_Valid() {
	err := s.validOrder().Validate(s.tokens, s.now, orders.DEFAULT_DEADLINE_SKEW)

	s.Nil(err)
}

func (s *UnsignedOrderTestSuite) Test_Validate_NativeInput() {
	err := orders.NewUnsignedOrder().
		WithInput(orders.NativeToken, big.NewInt(1)).
		WithOutput(usdc, big.NewInt(1), s.signer.Address(), uint32(s.system.Rollup.ChainID)).
		WithChain(s.system.Rollup).
		Validate(s.tokens, s.now, orders.DEFAULT_DEADLINE_SKEW)

	s.Nil(err)
}

func (s *UnsignedOrderTestSuite) Test_Validate_NativeOutputOnUnknownChain() {
	err := s.validOrder().
		WithOutput(orders.NativeToken, big.NewInt(1), s.signer.Address(), 999).
		Validate(s.tokens, s.now, orders.DEFAULT_DEADLINE_SKEW)

	s.ErrorIs(err, orders.ErrInvalidToken)
	s.ErrorIs(err, orders.ErrValidation)
}

func (s *UnsignedOrderTestSuite) Test_Validate_NativeOutputOnHost() {
	err := s.validOrder().
		WithOutput(orders.NativeToken, big.NewInt(1), s.signer.Address(), uint32(s.system.Host.ChainID)).
		Validate(s.tokens, s.now, orders.DEFAULT_DEADLINE_SKEW)

	s.Nil(err)
}

func (s *UnsignedOrderTestSuite) Test_Validate_InvalidInputToken() {
	err := s.validOrder().
		WithInput(hostWeth, big.NewInt(1)).
		Validate(s.tokens, s.now, orders.DEFAULT_DEADLINE_SKEW)

	s.ErrorIs(err, orders.ErrInvalidToken)
	s.ErrorIs(err, orders.ErrValidation)
}

func (s *UnsignedOrderTestSuite) Test_Validate_OutputTokenOnWrongChain() {
	err := s.validOrder().
		WithOutput(hostWeth, big.NewInt(1), s.signer.Address(), uint32(s.system.Rollup.ChainID)).
		Validate(s.tokens, s.now, orders.DEFAULT_DEADLINE_SKEW)

	s.ErrorIs(err, orders.ErrInvalidToken)
}

func (s *UnsignedOrderTestSuite) Test_Validate_PastDeadline() {
	err := s.validOrder().
		WithDeadline(uint64(s.now.Unix()) - 60).
		Validate(s.tokens, s.now, orders.DEFAULT_DEADLINE_SKEW)

	s.ErrorIs(err, orders.ErrInvalidDeadline)
}

func (s *UnsignedOrderTestSuite) Test_Validate_DeadlineWithinSkew() {
	err := s.validOrder().
		WithDeadline(uint64(s.now.Unix()) - 2).
		Validate(s.tokens, s.now, orders.DEFAULT_DEADLINE_SKEW)

	s.Nil(err)
}

func (s *UnsignedOrderTestSuite) Test_Validate_NoDeadline() {
	err := s.validOrder().
		WithDeadline(orders.NoDeadline).
		Validate(s.tokens, s.now, orders.DEFAULT_DEADLINE_SKEW)

	s.Nil(err)
}

func (s *UnsignedOrderTestSuite) Test_Validate_Empty() {
	err := orders.NewUnsignedOrder().
		WithChain(s.system.Rollup).
		Validate(s.tokens, s.now, orders.DEFAULT_DEADLINE_SKEW)

	s.ErrorIs(err, orders.ErrEmptyOrder)
}

func (s *UnsignedOrderTestSuite) Test_Validate_ZeroAmount() {
	err := s.validOrder().
		WithInput(usdc, big.NewInt(0)).
		Validate(s.tokens, s.now, orders.DEFAULT_DEADLINE_SKEW)

	s.ErrorIs(err, orders.ErrInvalidAmount)
}

func (s *UnsignedOrderTestSuite) Test_Validate_MissingChain() {
	err := orders.NewUnsignedOrder().
		WithInput(weth, big.NewInt(1)).
		Validate(s.tokens, s.now, orders.DEFAULT_DEADLINE_SKEW)

	s.ErrorIs(err, orders.ErrConfiguration)
}

func (s *UnsignedOrderTestSuite) Test_Sign_VerifiesAgainstOwner() {
	signed, err := s.validOrder().WithNonce(big.NewInt(42)).Sign(context.Background(), s.signer)

	s.Nil(err)
	s.Equal(s.signer.Address(), signed.Permit.Owner)
	s.Equal(int64(42), signed.Permit.Permit.Nonce.Int64())
	s.Len(signed.Permit.Signature, 65)
	s.True(signed.Permit.Signature[64] == 27 || signed.Permit.Signature[64] == 28)
	s.Nil(signed.VerifySignature(s.system.Rollup))
	s.ErrorIs(signed.VerifySignature(s.system.Host), orders.ErrInvalidSignature)
}

func (s *UnsignedOrderTestSuite) Test_Sign_TamperedOutputsFailVerification() {
	signed, err := s.validOrder().WithNonce(big.NewInt(42)).Sign(context.Background(), s.signer)
	s.Nil(err)

	signed.Outputs[0].Recipient = common.HexToAddress("0xdead")

	s.ErrorIs(signed.VerifySignature(s.system.Rollup), orders.ErrInvalidSignature)
}

func (s *UnsignedOrderTestSuite) Test_Sign_OrderRoundTrip() {
	unsigned := s.validOrder().WithNonce(big.NewInt(1))
	signed, err := unsigned.Sign(context.Background(), s.signer)
	s.Nil(err)

	s.Equal(unsigned.Order(), signed.Order())
}

func (s *UnsignedOrderTestSuite) Test_Sign_NonceFromSource() {
	clock := clockwork.NewFakeClockAt(s.now)
	nonces := orders.NewNonceSource(clock)

	a, err := s.validOrder().WithNonceSource(nonces).Sign(context.Background(), s.signer)
	s.Nil(err)
	b, err := s.validOrder().WithNonceSource(nonces).Sign(context.Background(), s.signer)
	s.Nil(err)

	s.Equal(s.now.UnixMicro(), a.Permit.Permit.Nonce.Int64())
	s.Equal(s.now.UnixMicro()+1, b.Permit.Permit.Nonce.Int64())
}

func (s *UnsignedOrderTestSuite) Test_Sign_ExplicitNonceWinsOverSource() {
	nonces := orders.NewNonceSource(clockwork.NewFakeClockAt(s.now))

	signed, err := s.validOrder().WithNonceSource(nonces).WithNonce(big.NewInt(7)).Sign(context.Background(), s.signer)

	s.Nil(err)
	s.Equal(int64(7), signed.Permit.Permit.Nonce.Int64())
}

func (s *UnsignedOrderTestSuite) Test_Sign_DefaultNonceSourceIsUnique() {
	a, err := s.validOrder().Sign(context.Background(), s.signer)
	s.Nil(err)
	b, err := s.validOrder().Sign(context.Background(), s.signer)
	s.Nil(err)

	s.NotEqual(a.OrderHash(), b.OrderHash())
}

func (s *UnsignedOrderTestSuite) Test_OrderHash_NonceIsPartOfIdentity() {
	a, err := s.validOrder().WithNonce(big.NewInt(1)).Sign(context.Background(), s.signer)
	s.Nil(err)
	b, err := s.validOrder().WithNonce(big.NewInt(2)).Sign(context.Background(), s.signer)
	s.Nil(err)
	c, err := s.validOrder().WithNonce(big.NewInt(1)).Sign(context.Background(), s.signer)
	s.Nil(err)

	s.NotEqual(a.OrderHash(), b.OrderHash())
	s.Equal(a.OrderHash(), c.OrderHash())
}

func (s *UnsignedOrderTestSuite) Test_OrderHash_DistinguishesInputAndOutputCounts() {
	second := common.HexToAddress("0x02")
	third := common.HexToAddress("0x03")
	output := orders.Output{Token: hostWeth, Amount: big.NewInt(5), Recipient: common.HexToAddress("0x09"), ChainID: 1}
	a := &orders.SignedOrder{
		Permit: orders.Permit2Batch{
			Permit: orders.PermitBatchTransferFrom{
				Permitted: []orders.TokenPermissions{
					{Token: weth, Amount: big.NewInt(1)},
					{Token: second, Amount: big.NewInt(2)},
					{Token: third, Amount: big.NewInt(3)},
				},
				Nonce:    big.NewInt(4),
				Deadline: big.NewInt(6),
			},
			Owner: common.HexToAddress("0x07"),
		},
		Outputs: []orders.Output{output},
	}
	// same words as a when concatenated without lengths or offsets
	b := &orders.SignedOrder{
		Permit: orders.Permit2Batch{
			Permit: orders.PermitBatchTransferFrom{
				Permitted: []orders.TokenPermissions{{Token: weth, Amount: big.NewInt(1)}},
				Nonce:     new(big.Int).SetBytes(second.Bytes()),
				Deadline:  big.NewInt(2),
			},
			Owner: third,
		},
		Outputs: []orders.Output{
			{Token: common.BigToAddress(big.NewInt(3)), Amount: big.NewInt(4), Recipient: common.BigToAddress(big.NewInt(6)), ChainID: 7},
			output,
		},
	}

	s.NotEqual(a.OrderHash(), b.OrderHash())
}

func (s *UnsignedOrderTestSuite) Test_SignedOrder_WireFormat() {
	signed, err := s.validOrder().WithNonce(big.NewInt(16)).Sign(context.Background(), s.signer)
	s.Nil(err)

	data, err := json.Marshal(signed)
	s.Nil(err)
	s.True(strings.Contains(string(data), `"nonce":"0x10"`))
	s.True(strings.Contains(string(data), `"chainId":3151908`))

	var decoded orders.SignedOrder
	err = json.Unmarshal(data, &decoded)
	s.Nil(err)
	s.Equal(signed.OrderHash(), decoded.OrderHash())
	s.Nil(decoded.VerifySignature(s.system.Rollup))
}

func (s *UnsignedOrderTestSuite) Test_SignedOrder_MissingAmount() {
	var decoded orders.SignedOrder
	err := json.Unmarshal([]byte(`{"permit":{"permit":{"permitted":[{"token":"0x00000000000000000000000000000000000000aa"}],"nonce":"0x1","deadline":"0x1"},"owner":"0x0000000000000000000000000000000000000001","signature":"0x"},"outputs":[]}`), &decoded)

	s.NotNil(err)
}

type failingSigner struct {
	address common.Address
}

func (f failingSigner) Address() common.Address { return f.address }
func (f failingSigner) SignHash(context.Context, []byte) ([]byte, error) {
	return nil, orders.ErrSigningUnavailable
}

func (s *UnsignedOrderTestSuite) Test_Sign_SignerUnavailable() {
	_, err := s.validOrder().Sign(context.Background(), failingSigner{})

	s.True(errors.Is(err, orders.ErrSigningUnavailable))
	s.True(orders.IsTransient(err))
}

type FillTestSuite struct {
	suite.Suite

	system orders.SystemConstants
	filler *signer.LocalSigner
	swap   *signer.LocalSigner
}

func TestRunFillTestSuite(t *testing.T) {
	suite.Run(t, new(FillTestSuite))
}

func (s *FillTestSuite) SetupTest() {
	s.system = testSystem()
	fk, _ := crypto.GenerateKey()
	sk, _ := crypto.GenerateKey()
	s.filler = signer.NewLocalSigner(fk)
	s.swap = signer.NewLocalSigner(sk)
}

func (s *FillTestSuite) order(nonce int64, amount int64, chainID uint64, deadline uint64) *orders.SignedOrder {
	signed, err := orders.NewUnsignedOrder().
		WithInput(weth, big.NewInt(amount)).
		WithOutput(weth, big.NewInt(amount), s.swap.Address(), uint32(chainID)).
		WithDeadline(deadline).
		WithNonce(big.NewInt(nonce)).
		WithChain(s.system.Rollup).
		Sign(context.Background(), s.swap)
	s.Nil(err)
	return signed
}

func (s *FillTestSuite) Test_Aggregate_MergesOutputs() {
	agg := orders.AggregateSignedOrders(
		s.order(1, 10, s.system.Rollup.ChainID, 200),
		s.order(2, 5, s.system.Rollup.ChainID, 100),
		s.order(3, 7, s.system.Host.ChainID, orders.NoDeadline),
	)

	s.Len(agg.Inputs(), 1)
	s.Equal(int64(22), agg.Inputs()[0].Amount.Int64())
	s.Len(agg.Outputs(), 2)
	s.Equal(int64(15), agg.Outputs()[0].Amount.Int64())
	s.Equal(int64(7), agg.Outputs()[1].Amount.Int64())
	s.Equal(uint64(100), agg.Deadline())
	s.Equal([]uint64{s.system.Rollup.ChainID, s.system.Host.ChainID}, agg.DestinationChains())
}

func (s *FillTestSuite) Test_Sign_OneFillPerChain() {
	agg := orders.AggregateSignedOrders(
		s.order(1, 10, s.system.Rollup.ChainID, orders.NoDeadline),
		s.order(2, 7, s.system.Host.ChainID, orders.NoDeadline),
	)

	fills, err := orders.NewUnsignedFill(agg).
		WithNonce(big.NewInt(99)).
		WithChain(s.system).
		Sign(context.Background(), s.filler)

	s.Nil(err)
	s.Len(fills, 2)
	s.Nil(fills[s.system.Rollup.ChainID].VerifySignature(s.system.Rollup))
	s.Nil(fills[s.system.Host.ChainID].VerifySignature(s.system.Host))
	s.NotNil(fills[s.system.Host.ChainID].VerifySignature(s.system.Rollup))
	s.Equal(s.filler.Address(), fills[s.system.Host.ChainID].Permit.Owner)
	s.Equal(int64(7), fills[s.system.Host.ChainID].Permit.Permit.Permitted[0].Amount.Int64())
}

func (s *FillTestSuite) Test_Sign_MissingNonce() {
	agg := orders.AggregateSignedOrders(s.order(1, 10, s.system.Rollup.ChainID, orders.NoDeadline))

	_, err := orders.NewUnsignedFill(agg).WithChain(s.system).Sign(context.Background(), s.filler)

	s.ErrorIs(err, orders.ErrValidation)
}

func (s *FillTestSuite) Test_Sign_UnsupportedChain() {
	agg := orders.AggregateSignedOrders(s.order(1, 10, 1, orders.NoDeadline))

	_, err := orders.NewUnsignedFill(agg).WithNonce(big.NewInt(1)).WithChain(s.system).Sign(context.Background(), s.filler)

	s.ErrorIs(err, orders.ErrUnsupportedChain)
}

type SystemConstantsTestSuite struct {
	suite.Suite
}

func TestRunSystemConstantsTestSuite(t *testing.T) {
	suite.Run(t, new(SystemConstantsTestSuite))
}

func (s *SystemConstantsTestSuite) Test_Validate() {
	system := testSystem()
	s.Nil(system.Validate())

	system.Host.Orders = common.Address{}
	s.ErrorIs(system.Validate(), orders.ErrMissingAddress)

	system = testSystem()
	system.Rollup.ChainID = system.Host.ChainID
	s.ErrorIs(system.Validate(), orders.ErrUnsupportedChain)
}

func (s *SystemConstantsTestSuite) Test_ByChainID() {
	system := testSystem()

	c, err := system.ByChainID(system.Rollup.ChainID)
	s.Nil(err)
	s.Equal(system.Rollup, c)

	_, err = system.ByChainID(1)
	s.ErrorIs(err, orders.ErrConfiguration)
}

type NonceSourceTestSuite struct {
	suite.Suite
}

func TestRunNonceSourceTestSuite(t *testing.T) {
	suite.Run(t, new(NonceSourceTestSuite))
}

func (s *NonceSourceTestSuite) Test_StrictlyIncreasing() {
	clock := clockwork.NewFakeClockAt(time.UnixMicro(1000))
	nonces := orders.NewNonceSource(clock)

	s.Equal(int64(1000), nonces.Next().Int64())
	s.Equal(int64(1001), nonces.Next().Int64())

	clock.Advance(time.Millisecond)
	s.Equal(int64(2000), nonces.Next().Int64())
}

package devnet_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sprintertech/signet-orders/chains/evm/calls/contracts"
	"github.com/sprintertech/signet-orders/chains/evm/calls/events"
	"github.com/sprintertech/signet-orders/chains/evm/transactor"
	"github.com/sprintertech/signet-orders/devnet"
	"github.com/sprintertech/signet-orders/orders"
	"github.com/sprintertech/signet-orders/signer"
	"github.com/sprintertech/signet-orders/txcache"
	"github.com/stretchr/testify/suite"
)

var (
	weth     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	hostWeth = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

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

func newSigner(s *suite.Suite) *signer.LocalSigner {
	key, err := crypto.GenerateKey()
	s.Nil(err)
	return signer.NewLocalSigner(key)
}

type DevnetTestSuite struct {
	suite.Suite

	ctx    context.Context
	clock  clockwork.FakeClock
	system orders.SystemConstants
	devnet *devnet.Devnet

	user   *signer.LocalSigner
	filler *signer.LocalSigner

	fillNonce int64
}

func TestRunDevnetTestSuite(t *testing.T) {
	suite.Run(t, new(DevnetTestSuite))
}

func (s *DevnetTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clockwork.NewFakeClockAt(time.Unix(1_700_000_000, 0))
	s.system = testSystem()
	s.devnet = devnet.New(s.system, s.clock)
	s.user = newSigner(&s.Suite)
	s.filler = newSigner(&s.Suite)
	s.fillNonce = 100

	s.Nil(s.devnet.Fund(s.system.Rollup.ChainID, weth, s.user.Address(), big.NewInt(1000)))
	s.Nil(s.devnet.Fund(s.system.Host.ChainID, hostWeth, s.filler.Address(), big.NewInt(1000)))
}

func (s *DevnetTestSuite) now() uint64 {
	// nolint:gosec
	return uint64(s.clock.Now().Unix())
}

func (s *DevnetTestSuite) order(nonce int64, deadline uint64) *orders.SignedOrder {
	signed, err := orders.NewUnsignedOrder().
		WithInput(weth, big.NewInt(1000)).
		WithOutput(hostWeth, big.NewInt(995), s.user.Address(), uint32(s.system.Host.ChainID)).
		WithDeadline(deadline).
		WithNonce(big.NewInt(nonce)).
		WithChain(s.system.Rollup).
		Sign(s.ctx, s.user)
	s.Nil(err)
	return signed
}

func (s *DevnetTestSuite) hostFill(order *orders.SignedOrder) []hexutil.Bytes {
	s.fillNonce++
	fills, err := orders.NewUnsignedFill(orders.AggregateSignedOrders(order)).
		WithNonce(big.NewInt(s.fillNonce)).
		WithChain(s.system).
		Sign(s.ctx, s.filler)
	s.Nil(err)

	data, err := contracts.NewOrdersContract(s.system.Host.Orders).FillPermit2(fills[s.system.Host.ChainID])
	s.Nil(err)
	return s.sign(s.devnet.Host(), s.filler, transactor.Call{To: s.system.Host.Orders, Data: data})
}

func (s *DevnetTestSuite) initiate(order *orders.SignedOrder) []hexutil.Bytes {
	data, err := contracts.NewOrdersContract(s.system.Rollup.Orders).InitiatePermit2(s.filler.Address(), order)
	s.Nil(err)
	return s.sign(s.devnet.Rollup(), s.filler, transactor.Call{To: s.system.Rollup.Orders, Data: data})
}

func (s *DevnetTestSuite) sign(chain *devnet.Chain, from orders.Signer, calls ...transactor.Call) []hexutil.Bytes {
	txs, err := transactor.NewTransactor(chain, from, chain.ChainID(), transactor.TxOpts{}).SignAndEncode(s.ctx, calls)
	s.Nil(err)
	return txs.Raw
}

func (s *DevnetTestSuite) forward(target uint64, txs []hexutil.Bytes, hostTxs []hexutil.Bytes) *txcache.BundleResponse {
	res, err := s.devnet.ForwardBundle(s.ctx, &txcache.SignetBundle{
		Txs:         txs,
		HostTxs:     hostTxs,
		BlockNumber: hexutil.Uint64(target),
	})
	s.Nil(err)
	return res
}

func (s *DevnetTestSuite) head() uint64 {
	head, err := s.devnet.Rollup().BlockNumber(s.ctx)
	s.Nil(err)
	return head
}

func (s *DevnetTestSuite) Test_MineBlock_SettlesWithoutLeftover() {
	order := s.order(1, s.now()+60)
	res := s.forward(s.head()+1, s.initiate(order), s.hostFill(order))

	block := s.devnet.MineBlock()

	s.Equal([]uuid.UUID{res.ID}, block.Mined)
	s.Len(block.Reverted, 0)
	s.Equal(int64(0), s.devnet.Rollup().BalanceOf(weth, s.user.Address()).Int64())
	s.Equal(int64(1000), s.devnet.Rollup().BalanceOf(weth, s.filler.Address()).Int64())
	s.Equal(int64(0), s.devnet.Rollup().BalanceOf(weth, s.system.Rollup.Orders).Int64())
	s.Equal(int64(995), s.devnet.Host().BalanceOf(hostWeth, s.user.Address()).Int64())
	s.Equal(int64(5), s.devnet.Host().BalanceOf(hostWeth, s.filler.Address()).Int64())

	used, err := s.devnet.Rollup().NonceUsed(context.Background(), s.user.Address(), big.NewInt(1))
	s.Nil(err)
	s.True(used)
}

func (s *DevnetTestSuite) Test_MineBlock_ReceiptsCarryOrderEvents() {
	order := s.order(1, s.now()+60)
	txs := s.initiate(order)
	s.forward(s.head()+1, txs, s.hostFill(order))
	s.devnet.MineBlock()

	tx, _, err := transactor.Decode(txs[0], s.system.Rollup.ChainID)
	s.Nil(err)
	receipt, err := s.devnet.Rollup().TransactionReceipt(s.ctx, tx.Hash())
	s.Nil(err)
	s.Equal(uint64(1), receipt.Status)
	s.Equal(uint64(1), receipt.BlockNumber.Uint64())

	orderEvents := events.NewListener().OrderLogs(s.system.Rollup.Orders, receipt.Logs)
	s.Len(orderEvents, 1)
	s.Equal(order.Outputs, orderEvents[0].Outputs)
}

func (s *DevnetTestSuite) Test_MineBlock_UnfilledOrderRevertsAtomically() {
	order := s.order(1, s.now()+60)
	res := s.forward(s.head()+1, s.initiate(order), nil)

	block := s.devnet.MineBlock()

	s.Len(block.Mined, 0)
	s.ErrorIs(block.Reverted[res.ID], orders.ErrOutputsNotFilled)
	s.Equal(int64(1000), s.devnet.Rollup().BalanceOf(weth, s.user.Address()).Int64())
	s.Equal(int64(0), s.devnet.Rollup().BalanceOf(weth, s.filler.Address()).Int64())
	used, err := s.devnet.Rollup().NonceUsed(context.Background(), s.user.Address(), big.NewInt(1))
	s.Nil(err)
	s.False(used)
	nonce, err := s.devnet.Rollup().PendingNonceAt(s.ctx, s.filler.Address())
	s.Nil(err)
	s.Equal(uint64(0), nonce)
}

func (s *DevnetTestSuite) Test_MineBlock_DoubleInitiateReverts() {
	order := s.order(1, s.now()+60)
	s.forward(s.head()+1, s.initiate(order), s.hostFill(order))
	s.Len(s.devnet.MineBlock().Mined, 1)
	s.Nil(s.devnet.Fund(s.system.Host.ChainID, hostWeth, s.filler.Address(), big.NewInt(1000)))

	res := s.forward(s.head()+1, s.initiate(order), s.hostFill(order))
	block := s.devnet.MineBlock()

	s.ErrorIs(block.Reverted[res.ID], orders.ErrPermitReused)
	s.Equal(int64(995), s.devnet.Host().BalanceOf(hostWeth, s.user.Address()).Int64())
}

func (s *DevnetTestSuite) Test_MineBlock_ExpiredOrderReverts() {
	order := s.order(1, s.now()+60)
	res := s.forward(s.head()+1, s.initiate(order), s.hostFill(order))
	s.clock.Advance(time.Minute * 2)

	block := s.devnet.MineBlock()

	s.ErrorIs(block.Reverted[res.ID], orders.ErrOrderExpired)
}

func (s *DevnetTestSuite) Test_MineBlock_NoDeadlineOrderSettles() {
	order := s.order(1, orders.NoDeadline)
	s.forward(s.head()+1, s.initiate(order), s.hostFill(order))
	s.clock.Advance(time.Hour * 24 * 365)

	block := s.devnet.MineBlock()

	s.Len(block.Mined, 1)
	s.Len(block.Reverted, 0)
}

func (s *DevnetTestSuite) Test_MineBlock_ForgedSignatureReverts() {
	order := s.order(1, s.now()+60)
	order.Outputs[0].Recipient = s.filler.Address()
	res := s.forward(s.head()+1, s.initiate(order), s.hostFill(order))

	block := s.devnet.MineBlock()

	s.ErrorIs(block.Reverted[res.ID], orders.ErrInvalidSignature)
}

func (s *DevnetTestSuite) Test_MineBlock_SharedNonceMinesOnce() {
	first := s.order(1, s.now()+60)
	second := s.order(2, s.now()+60)
	s.Nil(s.devnet.Fund(s.system.Rollup.ChainID, weth, s.user.Address(), big.NewInt(1000)))
	s.Nil(s.devnet.Fund(s.system.Host.ChainID, hostWeth, s.filler.Address(), big.NewInt(1000)))

	firstRes := s.forward(s.head()+1, s.initiate(first), s.hostFill(first))
	secondRes := s.forward(s.head()+1, s.initiate(second), s.hostFill(second))
	block := s.devnet.MineBlock()

	s.Equal([]uuid.UUID{firstRes.ID}, block.Mined)
	s.ErrorIs(block.Reverted[secondRes.ID], devnet.ErrNonceMismatch)
}

func (s *DevnetTestSuite) Test_MineBlock_ChainedNoncesLandOutOfOrder() {
	first := s.order(1, s.now()+60)
	second := s.order(2, s.now()+60)
	s.Nil(s.devnet.Fund(s.system.Rollup.ChainID, weth, s.user.Address(), big.NewInt(1000)))
	s.Nil(s.devnet.Fund(s.system.Host.ChainID, hostWeth, s.filler.Address(), big.NewInt(1000)))
	rollupTxs := transactor.NewTransactor(s.devnet.Rollup(), s.filler, s.system.Rollup.ChainID, transactor.TxOpts{})
	hostTxs := transactor.NewTransactor(s.devnet.Host(), s.filler, s.system.Host.ChainID, transactor.TxOpts{})
	bundleTxs := func(order *orders.SignedOrder) ([]hexutil.Bytes, []hexutil.Bytes) {
		initiate, err := contracts.NewOrdersContract(s.system.Rollup.Orders).InitiatePermit2(s.filler.Address(), order)
		s.Nil(err)
		s.fillNonce++
		fills, err := orders.NewUnsignedFill(orders.AggregateSignedOrders(order)).
			WithNonce(big.NewInt(s.fillNonce)).
			WithChain(s.system).
			Sign(s.ctx, s.filler)
		s.Nil(err)
		fill, err := contracts.NewOrdersContract(s.system.Host.Orders).FillPermit2(fills[s.system.Host.ChainID])
		s.Nil(err)

		txs, err := rollupTxs.SignAndEncode(s.ctx, []transactor.Call{{To: s.system.Rollup.Orders, Data: initiate}})
		s.Nil(err)
		host, err := hostTxs.SignAndEncode(s.ctx, []transactor.Call{{To: s.system.Host.Orders, Data: fill}})
		s.Nil(err)
		return txs.Raw, host.Raw
	}
	firstTxs, firstHost := bundleTxs(first)
	secondTxs, secondHost := bundleTxs(second)

	secondRes := s.forward(s.head()+1, secondTxs, secondHost)
	firstRes := s.forward(s.head()+1, firstTxs, firstHost)
	block := s.devnet.MineBlock()

	s.Equal([]uuid.UUID{firstRes.ID, secondRes.ID}, block.Mined)
	s.Len(block.Reverted, 0)
	s.Equal(int64(1990), s.devnet.Host().BalanceOf(hostWeth, s.user.Address()).Int64())
}

func (s *DevnetTestSuite) Test_MineBlock_FutureTargetWaits() {
	order := s.order(1, s.now()+60)
	s.forward(s.head()+2, s.initiate(order), s.hostFill(order))

	s.Len(s.devnet.MineBlock().Mined, 0)
	s.Len(s.devnet.MineBlock().Mined, 1)
}

func (s *DevnetTestSuite) Test_MineBlock_GetOutNativeInitiate() {
	s.Nil(s.devnet.Fund(s.system.Rollup.ChainID, orders.NativeToken, s.user.Address(), big.NewInt(1000)))
	getOut, err := orders.GetOut(big.NewInt(1000), hostWeth, s.user.Address(), uint32(s.system.Host.ChainID), s.clock.Now())
	s.Nil(err)
	s.Equal(int64(995), getOut.Outputs[0].Amount.Int64())

	data, err := contracts.NewOrdersContract(s.system.Rollup.Orders).Initiate(getOut)
	s.Nil(err)
	initiate := s.sign(s.devnet.Rollup(), s.user, transactor.Call{To: s.system.Rollup.Orders, Data: data, Value: big.NewInt(1000)})

	s.fillNonce++
	agg := orders.NewAggregateOrders()
	agg.Ingest(getOut)
	fills, err := orders.NewUnsignedFill(agg).WithDeadline(s.now()+60).WithChain(s.system).WithNonce(big.NewInt(s.fillNonce)).Sign(s.ctx, s.filler)
	s.Nil(err)
	fillData, err := contracts.NewOrdersContract(s.system.Host.Orders).FillPermit2(fills[s.system.Host.ChainID])
	s.Nil(err)
	hostFill := s.sign(s.devnet.Host(), s.filler, transactor.Call{To: s.system.Host.Orders, Data: fillData})

	s.forward(s.head()+1, initiate, hostFill)
	block := s.devnet.MineBlock()

	s.Len(block.Mined, 1)
	s.Equal(int64(1000), s.devnet.Rollup().BalanceOf(orders.NativeToken, s.system.Rollup.Orders).Int64())
	s.Equal(int64(995), s.devnet.Host().BalanceOf(hostWeth, s.user.Address()).Int64())
}

func (s *DevnetTestSuite) Test_ForwardBundle_StaleBlockRejected() {
	s.devnet.MineBlock()

	_, err := s.devnet.ForwardBundle(s.ctx, &txcache.SignetBundle{
		Txs:         []hexutil.Bytes{{1}},
		BlockNumber: hexutil.Uint64(1),
	})

	s.ErrorIs(err, orders.ErrRelayRejected)
	reason, ok := txcache.RejectionReason(err)
	s.True(ok)
	s.Contains(reason, "head 1")
}

func (s *DevnetTestSuite) Test_ForwardBundle_EmptyRejected() {
	_, err := s.devnet.ForwardBundle(s.ctx, &txcache.SignetBundle{BlockNumber: hexutil.Uint64(1)})

	s.ErrorIs(err, orders.ErrRelayRejected)
}

func (s *DevnetTestSuite) Test_Orders() {
	order := s.order(1, s.now()+60)
	expiring := s.order(2, s.now()+10)
	forged := s.order(3, s.now()+60)
	forged.Permit.Owner = s.filler.Address()

	s.Nil(s.devnet.ForwardOrder(s.ctx, order))
	s.Nil(s.devnet.ForwardOrder(s.ctx, order))
	s.Nil(s.devnet.ForwardOrder(s.ctx, expiring))
	s.ErrorIs(s.devnet.ForwardOrder(s.ctx, forged), orders.ErrRelayRejected)

	open, err := s.devnet.GetOrders(s.ctx)
	s.Nil(err)
	s.Len(open, 2)

	s.clock.Advance(time.Second * 30)
	open, err = s.devnet.GetOrders(s.ctx)
	s.Nil(err)
	s.Equal([]*orders.SignedOrder{order}, open)

	s.forward(s.head()+1, s.initiate(order), s.hostFill(order))
	s.Len(s.devnet.MineBlock().Mined, 1)

	open, err = s.devnet.GetOrders(s.ctx)
	s.Nil(err)
	s.Len(open, 0)
	s.ErrorIs(s.devnet.ForwardOrder(s.ctx, order), orders.ErrRelayRejected)
}

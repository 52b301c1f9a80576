package initiator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/signet-orders/bundle"
	"github.com/sprintertech/signet-orders/cache"
	"github.com/sprintertech/signet-orders/chains/evm/listener"
	"github.com/sprintertech/signet-orders/chains/evm/transactor"
	"github.com/sprintertech/signet-orders/config"
	"github.com/sprintertech/signet-orders/devnet"
	"github.com/sprintertech/signet-orders/filler"
	"github.com/sprintertech/signet-orders/initiator"
	mock_initiator "github.com/sprintertech/signet-orders/initiator/mock"
	"github.com/sprintertech/signet-orders/orders"
	"github.com/sprintertech/signet-orders/signer"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// minePoller produces a devnet block before every poll.
type minePoller struct {
	devnet  *devnet.Devnet
	watcher *listener.BundleWatcher
}

func (p minePoller) Poll(ctx context.Context) error {
	p.devnet.MineBlock()
	return p.watcher.Poll(ctx)
}

type RoundtripTestSuite struct {
	suite.Suite

	ctx       context.Context
	cancel    context.CancelFunc
	clock     clockwork.Clock
	system    orders.SystemConstants
	tokens    *config.TokenStore
	devnet    *devnet.Devnet
	account   *signer.LocalSigner
	roundtrip *initiator.Roundtrip
}

func TestRunRoundtripTestSuite(t *testing.T) {
	suite.Run(t, new(RoundtripTestSuite))
}

func (s *RoundtripTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithTimeout(context.Background(), time.Second*10)
	s.clock = clockwork.NewRealClock()
	s.system = testSystem()
	s.tokens = testTokens(s.system)
	s.devnet = devnet.New(s.system, s.clock)

	key, err := crypto.GenerateKey()
	s.Nil(err)
	s.account = signer.NewLocalSigner(key)

	bundles := cache.NewBundleCache(s.ctx, time.Minute)
	f := filler.NewFiller(
		s.account,
		s.system,
		s.devnet,
		bundle.NewSender(s.devnet, bundles),
		s.devnet.Rollup(),
		transactor.NewTransactor(s.devnet.Rollup(), s.account, s.system.Rollup.ChainID, transactor.TxOpts{}),
		transactor.NewTransactor(s.devnet.Host(), s.account, s.system.Host.ChainID, transactor.TxOpts{}),
		s.clock,
		filler.Config{Strategy: filler.Individual},
		filler.WithPendingOrders(bundles),
	)
	watcher := listener.NewBundleWatcher(log.With(), s.devnet.Rollup(), bundles, nil, nil, s.system.Rollup.Orders, s.clock, time.Millisecond*10)
	i := initiator.NewInitiator(s.account, s.system, s.tokens, s.devnet, s.clock)
	s.roundtrip = initiator.NewRoundtrip(i, f, minePoller{devnet: s.devnet, watcher: watcher}, s.clock, time.Millisecond*10)
}

func (s *RoundtripTestSuite) TearDownTest() {
	s.cancel()
}

func (s *RoundtripTestSuite) fund(chainID uint64, symbol string) {
	token, err := s.tokens.ConfigBySymbol(chainID, symbol)
	s.Nil(err)
	s.Nil(s.devnet.Fund(chainID, token.Address, s.account.Address(), initiator.EXAMPLE_AMOUNT))
}

func (s *RoundtripTestSuite) Test_Run_Host() {
	s.fund(s.system.Rollup.ChainID, initiator.EXAMPLE_TOKEN)
	s.fund(s.system.Host.ChainID, initiator.EXAMPLE_TOKEN)
	order, err := initiator.ExampleOrder(s.tokens, s.system, s.account.Address(), false, s.clock.Now())
	s.Nil(err)

	mined, err := s.roundtrip.Run(s.ctx, order)

	s.Nil(err)
	s.Equal(bundle.Mined, mined.State())
	s.Equal(0, s.devnet.Host().BalanceOf(hostWeth, s.account.Address()).Cmp(initiator.EXAMPLE_AMOUNT))
	s.Equal(0, s.devnet.Rollup().BalanceOf(weth, s.account.Address()).Cmp(initiator.EXAMPLE_AMOUNT))
}

func (s *RoundtripTestSuite) Test_Run_Rollup() {
	s.fund(s.system.Rollup.ChainID, initiator.EXAMPLE_TOKEN)
	order, err := initiator.ExampleOrder(s.tokens, s.system, s.account.Address(), true, s.clock.Now())
	s.Nil(err)

	mined, err := s.roundtrip.Run(s.ctx, order)

	s.Nil(err)
	s.Equal(bundle.Mined, mined.State())
	s.Equal(0, s.devnet.Rollup().BalanceOf(weth, s.account.Address()).Cmp(initiator.EXAMPLE_AMOUNT))
}

func (s *RoundtripTestSuite) Test_Run_UnfundedFillerMisses() {
	s.fund(s.system.Rollup.ChainID, initiator.EXAMPLE_TOKEN)
	order, err := initiator.ExampleOrder(s.tokens, s.system, s.account.Address(), false, s.clock.Now())
	s.Nil(err)

	_, err = s.roundtrip.Run(s.ctx, order)

	s.ErrorIs(err, initiator.ErrBundleMissed)
	s.Equal(0, s.devnet.Rollup().BalanceOf(weth, s.account.Address()).Cmp(initiator.EXAMPLE_AMOUNT))
}

func (s *RoundtripTestSuite) Test_RunGetOut() {
	s.Nil(s.devnet.Fund(s.system.Rollup.ChainID, orders.NativeToken, s.account.Address(), initiator.EXAMPLE_AMOUNT))
	s.fund(s.system.Host.ChainID, initiator.EXAMPLE_TOKEN)
	swapper := transactor.NewTransactor(s.devnet.Rollup(), s.account, s.system.Rollup.ChainID, transactor.TxOpts{})

	mined, err := s.roundtrip.RunGetOut(s.ctx, initiator.EXAMPLE_AMOUNT, hostWeth, swapper)

	s.Nil(err)
	s.Equal(bundle.Mined, mined.State())
	s.Equal(0, s.devnet.Rollup().BalanceOf(orders.NativeToken, s.system.Rollup.Orders).Cmp(initiator.EXAMPLE_AMOUNT))
	s.Equal(0, s.devnet.Host().BalanceOf(hostWeth, s.account.Address()).Cmp(initiator.EXAMPLE_AMOUNT))
}

type RoundtripMockTestSuite struct {
	suite.Suite

	ctx           context.Context
	clock         clockwork.Clock
	system        orders.SystemConstants
	tokens        *config.TokenStore
	account       *signer.LocalSigner
	mockForwarder *mock_initiator.MockOrderForwarder
	mockFiller    *mock_initiator.MockFiller
	mockPoller    *mock_initiator.MockBundlePoller
	roundtrip     *initiator.Roundtrip
	order         orders.Order
	forwarded     *orders.SignedOrder
}

func TestRunRoundtripMockTestSuite(t *testing.T) {
	suite.Run(t, new(RoundtripMockTestSuite))
}

func (s *RoundtripMockTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = context.Background()
	s.clock = clockwork.NewRealClock()
	s.system = testSystem()
	s.tokens = testTokens(s.system)

	key, err := crypto.GenerateKey()
	s.Nil(err)
	s.account = signer.NewLocalSigner(key)

	s.mockForwarder = mock_initiator.NewMockOrderForwarder(ctrl)
	s.mockFiller = mock_initiator.NewMockFiller(ctrl)
	s.mockPoller = mock_initiator.NewMockBundlePoller(ctrl)
	i := initiator.NewInitiator(s.account, s.system, s.tokens, s.mockForwarder, s.clock)
	s.roundtrip = initiator.NewRoundtrip(i, s.mockFiller, s.mockPoller, s.clock, time.Millisecond)

	s.order, err = initiator.ExampleOrder(s.tokens, s.system, s.account.Address(), false, s.clock.Now())
	s.Nil(err)
	s.mockForwarder.EXPECT().ForwardOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, signed *orders.SignedOrder) error {
		s.forwarded = signed
		return nil
	})
}

func (s *RoundtripMockTestSuite) submittedBundle() *bundle.Bundle {
	b := bundle.NewBundle(11, &transactor.SignedTxs{}, nil, nil)
	s.Nil(b.MarkSubmitted(uuid.New()))
	return b
}

func (s *RoundtripMockTestSuite) Test_Run_OrderNotListed() {
	s.mockFiller.EXPECT().GetOrders(gomock.Any()).Return([]*orders.SignedOrder{}, nil)

	_, err := s.roundtrip.Run(s.ctx, s.order)

	s.ErrorIs(err, initiator.ErrOrderNotListed)
}

func (s *RoundtripMockTestSuite) Test_Run_CacheFailure() {
	s.mockFiller.EXPECT().GetOrders(gomock.Any()).Return(nil, orders.ErrSubmissionFailed)

	_, err := s.roundtrip.Run(s.ctx, s.order)

	s.ErrorIs(err, orders.ErrSubmissionFailed)
}

func (s *RoundtripMockTestSuite) Test_Run_FillRejected() {
	s.mockFiller.EXPECT().GetOrders(gomock.Any()).DoAndReturn(func(context.Context) ([]*orders.SignedOrder, error) {
		return []*orders.SignedOrder{s.forwarded}, nil
	})
	s.mockFiller.EXPECT().FillIndividually(gomock.Any(), gomock.Any()).Return(nil, &filler.FillError{
		Strategy: filler.Individual,
		Err:      orders.ErrRelayRejected,
	})

	_, err := s.roundtrip.Run(s.ctx, s.order)

	s.ErrorIs(err, orders.ErrRelayRejected)
}

func (s *RoundtripMockTestSuite) Test_Run_Cancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.roundtrip.Run(ctx, s.order)

	s.True(errors.Is(err, context.Canceled))
}

func (s *RoundtripMockTestSuite) Test_Run_WaitsUntilMined() {
	b := s.submittedBundle()
	s.mockFiller.EXPECT().GetOrders(gomock.Any()).DoAndReturn(func(context.Context) ([]*orders.SignedOrder, error) {
		return []*orders.SignedOrder{s.forwarded}, nil
	})
	s.mockFiller.EXPECT().FillIndividually(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, signed []*orders.SignedOrder) ([]*bundle.Bundle, error) {
		s.Len(signed, 1)
		s.Equal(s.forwarded.OrderHash(), signed[0].OrderHash())
		return []*bundle.Bundle{b}, nil
	})
	s.mockPoller.EXPECT().Poll(gomock.Any()).Return(nil)
	s.mockPoller.EXPECT().Poll(gomock.Any()).DoAndReturn(func(context.Context) error {
		return b.MarkMined()
	})

	mined, err := s.roundtrip.Run(s.ctx, s.order)

	s.Nil(err)
	s.Equal(b, mined)
}

func (s *RoundtripMockTestSuite) missedFill() *bundle.Bundle {
	b := s.submittedBundle()
	s.mockFiller.EXPECT().GetOrders(gomock.Any()).DoAndReturn(func(context.Context) ([]*orders.SignedOrder, error) {
		return []*orders.SignedOrder{s.forwarded}, nil
	})
	s.mockFiller.EXPECT().FillIndividually(gomock.Any(), gomock.Any()).Return([]*bundle.Bundle{b}, nil)
	s.mockPoller.EXPECT().Poll(gomock.Any()).DoAndReturn(func(context.Context) error {
		return b.MarkMissed()
	})
	return b
}

func (s *RoundtripMockTestSuite) Test_Run_MissedWithoutRebuilds() {
	s.missedFill()

	_, err := s.roundtrip.Run(s.ctx, s.order)

	s.ErrorIs(err, initiator.ErrBundleMissed)
}

func (s *RoundtripMockTestSuite) Test_Run_RebuildsMissedBundle() {
	b := s.missedFill()
	s.mockFiller.EXPECT().Refill(gomock.Any(), b, gomock.Any()).DoAndReturn(func(_ context.Context, missed *bundle.Bundle, signed []*orders.SignedOrder) error {
		s.Len(signed, 1)
		s.Equal(s.forwarded.OrderHash(), signed[0].OrderHash())
		s.Nil(missed.Rebuild(12, &transactor.SignedTxs{
			Raw:    []hexutil.Bytes{{1}},
			Hashes: []common.Hash{common.BytesToHash([]byte{1})},
		}, nil))
		return missed.MarkSubmitted(uuid.New())
	})
	s.mockPoller.EXPECT().Poll(gomock.Any()).DoAndReturn(func(context.Context) error {
		return b.MarkMined()
	})

	mined, err := s.roundtrip.WithRebuilds(1).Run(s.ctx, s.order)

	s.Nil(err)
	s.Equal(b, mined)
	s.Equal(uint64(12), mined.TargetBlock())
}

func (s *RoundtripMockTestSuite) Test_Run_RebuildFails() {
	b := s.missedFill()
	s.mockFiller.EXPECT().Refill(gomock.Any(), b, gomock.Any()).Return(orders.ErrRelayRejected)

	_, err := s.roundtrip.WithRebuilds(1).Run(s.ctx, s.order)

	s.ErrorIs(err, orders.ErrRelayRejected)
}

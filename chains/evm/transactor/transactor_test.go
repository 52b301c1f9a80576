package transactor_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/sprintertech/signet-orders/chains/evm/transactor"
	mock_transactor "github.com/sprintertech/signet-orders/chains/evm/transactor/mock"
	"github.com/sprintertech/signet-orders/signer"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TransactorTestSuite struct {
	suite.Suite

	mockClient *mock_transactor.MockChainClient
	signer     *signer.LocalSigner
	transactor *transactor.Transactor
}

func TestRunTransactorTestSuite(t *testing.T) {
	suite.Run(t, new(TransactorTestSuite))
}

func (s *TransactorTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockClient = mock_transactor.NewMockChainClient(ctrl)
	key, _ := crypto.GenerateKey()
	s.signer = signer.NewLocalSigner(key)
	s.transactor = transactor.NewTransactor(s.mockClient, s.signer, 14174, transactor.TxOpts{})
}

func (s *TransactorTestSuite) Test_SignAndEncode_NoCalls() {
	signed, err := s.transactor.SignAndEncode(context.Background(), []transactor.Call{})

	s.Nil(err)
	s.Len(signed.Raw, 0)
}

func (s *TransactorTestSuite) Test_SignAndEncode_NonceFetchFails() {
	s.mockClient.EXPECT().HeaderByNumber(gomock.Any(), gomock.Nil()).Return(&types.Header{}, nil)
	s.mockClient.EXPECT().PendingNonceAt(gomock.Any(), s.signer.Address()).Return(uint64(0), errors.New("error"))

	_, err := s.transactor.SignAndEncode(context.Background(), []transactor.Call{{To: common.HexToAddress("0x1")}})

	s.NotNil(err)
}

func (s *TransactorTestSuite) Test_SignAndEncode_SequentialNonces() {
	s.mockClient.EXPECT().PendingNonceAt(gomock.Any(), s.signer.Address()).Return(uint64(7), nil)
	s.mockClient.EXPECT().HeaderByNumber(gomock.Any(), gomock.Nil()).Return(&types.Header{BaseFee: big.NewInt(100)}, nil)

	to := common.HexToAddress("0x22")
	signed, err := s.transactor.SignAndEncode(context.Background(), []transactor.Call{
		{To: to, Data: []byte{1, 2, 3, 4}},
		{To: to, Value: big.NewInt(5)},
	})

	s.Nil(err)
	s.Len(signed.Raw, 2)
	s.Len(signed.Hashes, 2)

	for i, raw := range signed.Raw {
		tx, from, err := transactor.Decode(raw, 14174)
		s.Nil(err)
		s.Equal(s.signer.Address(), from)
		s.Equal(uint64(7+i), tx.Nonce())
		s.Equal(signed.Hashes[i], tx.Hash())
		s.Equal(uint64(transactor.DEFAULT_GAS_LIMIT), tx.Gas())
		s.Equal(transactor.DEFAULT_PRIORITY_FEE, tx.GasTipCap())
		s.Equal(new(big.Int).Add(transactor.DEFAULT_PRIORITY_FEE, big.NewInt(200)), tx.GasFeeCap())
		s.Equal(to, *tx.To())
	}
}

func (s *TransactorTestSuite) Test_Decode_WrongChain() {
	s.mockClient.EXPECT().PendingNonceAt(gomock.Any(), s.signer.Address()).Return(uint64(0), nil)
	s.mockClient.EXPECT().HeaderByNumber(gomock.Any(), gomock.Nil()).Return(&types.Header{}, nil)

	signed, err := s.transactor.SignAndEncode(context.Background(), []transactor.Call{{To: common.HexToAddress("0x1")}})
	s.Nil(err)

	_, _, err = transactor.Decode(signed.Raw[0], 1)
	s.NotNil(err)
}

func (s *TransactorTestSuite) nonces(signed *transactor.SignedTxs) []uint64 {
	nonces := make([]uint64, len(signed.Raw))
	for i, raw := range signed.Raw {
		tx, _, err := transactor.Decode(raw, 14174)
		s.Nil(err)
		nonces[i] = tx.Nonce()
	}
	return nonces
}

func (s *TransactorTestSuite) Test_SignAndEncode_ReservesNoncesUntilReset() {
	s.mockClient.EXPECT().PendingNonceAt(gomock.Any(), s.signer.Address()).Return(uint64(7), nil).Times(3)
	s.mockClient.EXPECT().HeaderByNumber(gomock.Any(), gomock.Nil()).Return(&types.Header{}, nil).Times(3)
	to := common.HexToAddress("0x22")

	first, err := s.transactor.SignAndEncode(context.Background(), []transactor.Call{{To: to}, {To: to}})
	s.Nil(err)
	second, err := s.transactor.SignAndEncode(context.Background(), []transactor.Call{{To: to}})
	s.Nil(err)
	s.transactor.ResetNonces()
	third, err := s.transactor.SignAndEncode(context.Background(), []transactor.Call{{To: to}})
	s.Nil(err)

	s.Equal([]uint64{7, 8}, s.nonces(first))
	s.Equal([]uint64{9}, s.nonces(second))
	s.Equal([]uint64{7}, s.nonces(third))
}

func (s *TransactorTestSuite) Test_SignAndEncode_PendingNonceAheadOfReservation() {
	gomock.InOrder(
		s.mockClient.EXPECT().PendingNonceAt(gomock.Any(), s.signer.Address()).Return(uint64(7), nil),
		s.mockClient.EXPECT().PendingNonceAt(gomock.Any(), s.signer.Address()).Return(uint64(12), nil),
	)
	s.mockClient.EXPECT().HeaderByNumber(gomock.Any(), gomock.Nil()).Return(&types.Header{}, nil).Times(2)
	to := common.HexToAddress("0x22")

	_, err := s.transactor.SignAndEncode(context.Background(), []transactor.Call{{To: to}})
	s.Nil(err)
	signed, err := s.transactor.SignAndEncode(context.Background(), []transactor.Call{{To: to}})
	s.Nil(err)

	s.Equal([]uint64{12}, s.nonces(signed))
}

func (s *TransactorTestSuite) Test_SignAndEncode_ConcurrentCallsNeverShareNonces() {
	s.mockClient.EXPECT().PendingNonceAt(gomock.Any(), s.signer.Address()).Return(uint64(0), nil).Times(4)
	s.mockClient.EXPECT().HeaderByNumber(gomock.Any(), gomock.Nil()).Return(&types.Header{}, nil).Times(4)
	to := common.HexToAddress("0x22")

	var wg sync.WaitGroup
	results := make([]*transactor.SignedTxs, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			signed, err := s.transactor.SignAndEncode(context.Background(), []transactor.Call{{To: to}, {To: to}})
			s.Nil(err)
			results[i] = signed
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]bool)
	for _, signed := range results {
		for _, nonce := range s.nonces(signed) {
			s.False(seen[nonce])
			seen[nonce] = true
		}
	}
	s.Len(seen, 8)
}

package store_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/sprintertech/signet-orders/bundle"
	"github.com/sprintertech/signet-orders/chains/evm/transactor"
	"github.com/sprintertech/signet-orders/store"
	"github.com/stretchr/testify/suite"
)

type JournalTestSuite struct {
	suite.Suite

	journal *store.Journal
}

func TestRunJournalTestSuite(t *testing.T) {
	suite.Run(t, new(JournalTestSuite))
}

func (s *JournalTestSuite) SetupTest() {
	journal, err := store.NewJournal(":memory:")
	s.Nil(err)
	s.journal = journal
}

func (s *JournalTestSuite) TearDownTest() {
	_ = s.journal.Close()
}

func (s *JournalTestSuite) resolvedBundle(target uint64, mined bool) *bundle.Bundle {
	b := bundle.NewBundle(target, &transactor.SignedTxs{
		Raw:    []hexutil.Bytes{{1}},
		Hashes: []common.Hash{common.HexToHash("0x1")},
	}, nil, []common.Hash{common.HexToHash("0xaa")})
	s.Nil(b.MarkSubmitted(uuid.New()))
	if mined {
		s.Nil(b.MarkMined())
	} else {
		s.Nil(b.MarkMissed())
	}
	return b
}

func (s *JournalTestSuite) Test_Record_Outcomes() {
	first := s.resolvedBundle(10, true)
	second := s.resolvedBundle(11, false)

	s.Nil(s.journal.Record(context.Background(), first.Status(), 1))
	s.Nil(s.journal.Record(context.Background(), second.Status(), 0))

	outcomes, err := s.journal.Outcomes(context.Background(), 10)

	s.Nil(err)
	s.Len(outcomes, 2)
	s.Equal(second.ID().String(), outcomes[0].BundleID)
	s.Equal("missed", outcomes[0].State)
	s.Equal(first.ID().String(), outcomes[1].BundleID)
	s.Equal("mined", outcomes[1].State)
	s.Equal(1, outcomes[1].FilledCount)
	s.Equal([]common.Hash{common.HexToHash("0xaa")}, outcomes[1].OrderHashes)
	s.Equal([]common.Hash{common.HexToHash("0x1")}, outcomes[1].TxHashes)
}

func (s *JournalTestSuite) Test_Record_ReplacesSameBundle() {
	b := s.resolvedBundle(10, true)

	s.Nil(s.journal.Record(context.Background(), b.Status(), 0))
	s.Nil(s.journal.Record(context.Background(), b.Status(), 2))

	outcomes, err := s.journal.Outcomes(context.Background(), 10)
	s.Nil(err)
	s.Len(outcomes, 1)
	s.Equal(2, outcomes[0].FilledCount)
}

func (s *JournalTestSuite) Test_Counts() {
	s.Nil(s.journal.Record(context.Background(), s.resolvedBundle(10, true).Status(), 1))
	s.Nil(s.journal.Record(context.Background(), s.resolvedBundle(11, true).Status(), 1))
	s.Nil(s.journal.Record(context.Background(), s.resolvedBundle(12, false).Status(), 0))

	counts, err := s.journal.Counts(context.Background())

	s.Nil(err)
	s.Equal(map[string]int{"mined": 2, "missed": 1}, counts)
}

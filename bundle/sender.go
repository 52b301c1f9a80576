package bundle

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/signet-orders/chains/evm/transactor"
	"github.com/sprintertech/signet-orders/txcache"
)

const DEFAULT_DUMMY_BUNDLES = 10

type Relay interface {
	ForwardBundle(ctx context.Context, bundle *txcache.SignetBundle) (*txcache.BundleResponse, error)
}

type Tracker interface {
	Track(b *Bundle)
}

type HeadReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

type TxSigner interface {
	SignAndEncode(ctx context.Context, calls []transactor.Call) (*transactor.SignedTxs, error)
}

// Sender forwards built bundles to the transaction cache and registers the
// submitted ones with the tracker.
type Sender struct {
	relay   Relay
	tracker Tracker
}

func NewSender(relay Relay, tracker Tracker) *Sender {
	return &Sender{
		relay:   relay,
		tracker: tracker,
	}
}

// Submit forwards a built bundle. A rejected or failed submission leaves the
// bundle in Built.
func (s *Sender) Submit(ctx context.Context, b *Bundle) error {
	if b.State() != Built {
		return fmt.Errorf("%w: submitting %s bundle", ErrInvalidTransition, b.State())
	}

	resp, err := s.relay.ForwardBundle(ctx, b.Request())
	if err != nil {
		return err
	}

	err = b.MarkSubmitted(resp.ID)
	if err != nil {
		return err
	}

	log.Info().
		Str("bundleID", resp.ID.String()).
		Uint64("targetBlock", b.TargetBlock()).
		Int("txs", len(b.TxHashes())).
		Int("orders", len(b.OrderHashes())).
		Msg("Bundle submitted")
	if s.tracker != nil {
		s.tracker.Track(b)
	}
	return nil
}

// SendDummyBundles submits a single 1 wei transfer to the zero address as a
// separate bundle for each of the next n blocks.
func (s *Sender) SendDummyBundles(ctx context.Context, head HeadReader, txSigner TxSigner, n int) ([]*Bundle, error) {
	if n <= 0 {
		n = DEFAULT_DUMMY_BUNDLES
	}

	txs, err := txSigner.SignAndEncode(ctx, []transactor.Call{{
		To:    common.Address{},
		Value: big.NewInt(1),
	}})
	if err != nil {
		return nil, err
	}

	latest, err := head.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed fetching head: %w", err)
	}

	bundles := make([]*Bundle, 0, n)
	for i := 1; i <= n; i++ {
		b := NewBundle(latest+uint64(i), txs, nil, nil)
		err = s.Submit(ctx, b)
		if err != nil {
			return bundles, err
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}

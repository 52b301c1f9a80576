// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package listener

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sprintertech/signet-orders/bundle"
	"github.com/sprintertech/signet-orders/chains/evm/calls/events"
)

const DEFAULT_POLL_INTERVAL = time.Second * 2

type ChainReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type PendingBundles interface {
	Pending() []*bundle.Bundle
}

type Journal interface {
	Record(ctx context.Context, status bundle.Status, filledCount int) error
}

type BundleMetrics interface {
	TrackBundleMined(filledCount int)
	TrackBundleMissed()
}

// BundleWatcher resolves submitted bundles once the rollup reaches their
// target block. Missed bundles are never resubmitted.
type BundleWatcher struct {
	log           zerolog.Logger
	client        ChainReader
	bundles       PendingBundles
	journal       Journal
	metrics       BundleMetrics
	eventListener *events.Listener
	ordersAddress common.Address
	clock         clockwork.Clock
	interval      time.Duration
}

func NewBundleWatcher(
	logC zerolog.Context,
	client ChainReader,
	bundles PendingBundles,
	journal Journal,
	metrics BundleMetrics,
	ordersAddress common.Address,
	clock clockwork.Clock,
	interval time.Duration,
) *BundleWatcher {
	if interval == 0 {
		interval = DEFAULT_POLL_INTERVAL
	}

	return &BundleWatcher{
		log:           logC.Logger(),
		client:        client,
		bundles:       bundles,
		journal:       journal,
		metrics:       metrics,
		eventListener: events.NewListener(),
		ordersAddress: ordersAddress,
		clock:         clock,
		interval:      interval,
	}
}

func (w *BundleWatcher) Start(ctx context.Context) {
	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			{
				err := w.Poll(ctx)
				if err != nil {
					w.log.Warn().Err(err).Msgf("Failed polling bundles")
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

// Poll resolves every pending bundle whose target block has been produced.
func (w *BundleWatcher) Poll(ctx context.Context) error {
	pending := w.bundles.Pending()
	if len(pending) == 0 {
		return nil
	}

	head, err := w.client.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed fetching head: %w", err)
	}

	for _, b := range pending {
		if head < b.TargetBlock() {
			continue
		}

		err := w.resolve(ctx, b)
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *BundleWatcher) resolve(ctx context.Context, b *bundle.Bundle) error {
	hashes := b.TxHashes()
	logs := make([]*types.Log, 0)
	mined := len(hashes) > 0
	for _, hash := range hashes {
		receipt, err := w.client.TransactionReceipt(ctx, hash)
		if errors.Is(err, ethereum.NotFound) {
			mined = false
			break
		}
		if err != nil {
			return fmt.Errorf("failed fetching receipt %s: %w", hash.Hex(), err)
		}

		if receipt.Status != types.ReceiptStatusSuccessful ||
			receipt.BlockNumber == nil ||
			receipt.BlockNumber.Uint64() != b.TargetBlock() {
			mined = false
			break
		}
		logs = append(logs, receipt.Logs...)
	}

	filledCount := 0
	if mined {
		err := b.MarkMined()
		if err != nil {
			return err
		}

		filledCount = len(w.eventListener.OrderLogs(w.ordersAddress, logs))
		w.log.Info().
			Str("bundleID", b.ID().String()).
			Uint64("targetBlock", b.TargetBlock()).
			Int("orders", filledCount).
			Msg("Bundle mined")
		if w.metrics != nil {
			w.metrics.TrackBundleMined(filledCount)
		}
	} else {
		err := b.MarkMissed()
		if err != nil {
			return err
		}

		w.log.Warn().
			Str("bundleID", b.ID().String()).
			Uint64("targetBlock", b.TargetBlock()).
			Msg("Bundle missed target block")
		if w.metrics != nil {
			w.metrics.TrackBundleMissed()
		}
	}

	if w.journal != nil {
		err := w.journal.Record(ctx, b.Status(), filledCount)
		if err != nil {
			w.log.Warn().Err(err).Msgf("Failed journaling bundle %s", b.ID())
		}
	}
	return nil
}

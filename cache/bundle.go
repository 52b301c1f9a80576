package cache

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/signet-orders/bundle"
)

const (
	BUNDLE_TTL = time.Minute * 10
)

// BundleCache keeps submitted bundles until they expire. It only suppresses
// refilling orders that are part of a still pending bundle.
type BundleCache struct {
	bundleCache *ttlcache.Cache[uuid.UUID, *bundle.Bundle]
}

func NewBundleCache(ctx context.Context, ttl time.Duration) *BundleCache {
	if ttl == 0 {
		ttl = BUNDLE_TTL
	}
	cache := ttlcache.New(
		ttlcache.WithTTL[uuid.UUID, *bundle.Bundle](ttl),
	)

	bc := &BundleCache{
		bundleCache: cache,
	}

	go cache.Start()
	go bc.watch(ctx)
	return bc
}

// Track registers a submitted bundle. A rebuilt bundle replaces the entry of
// its previous submission.
func (c *BundleCache) Track(b *bundle.Bundle) {
	for id, item := range c.bundleCache.Items() {
		if item.Value() == b && id != b.ID() {
			c.bundleCache.Delete(id)
		}
	}
	log.Debug().Msgf("Tracking bundle %s for block %d", b.ID(), b.TargetBlock())
	c.bundleCache.Set(b.ID(), b, ttlcache.DefaultTTL)
}

func (c *BundleCache) Bundle(id uuid.UUID) (*bundle.Bundle, error) {
	b := c.bundleCache.Get(id)
	if b == nil {
		return nil, fmt.Errorf("no bundle found with id %s", id)
	}

	return b.Value(), nil
}

// Pending returns the submitted bundles that are not yet resolved, ordered by
// target block.
func (c *BundleCache) Pending() []*bundle.Bundle {
	pending := make([]*bundle.Bundle, 0)
	for _, item := range c.bundleCache.Items() {
		b := item.Value()
		if b.State() == bundle.Submitted {
			pending = append(pending, b)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].TargetBlock() < pending[j].TargetBlock()
	})
	return pending
}

// HasPendingOrder reports whether the order is part of a pending bundle.
func (c *BundleCache) HasPendingOrder(orderHash common.Hash) bool {
	for _, b := range c.Pending() {
		for _, hash := range b.OrderHashes() {
			if hash == orderHash {
				return true
			}
		}
	}
	return false
}

func (c *BundleCache) watch(ctx context.Context) {
	<-ctx.Done()
	c.bundleCache.Stop()
}

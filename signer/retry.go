package signer

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/signet-orders/orders"
)

const (
	DEFAULT_SIGN_RETRIES  = 5
	DEFAULT_SIGN_INTERVAL = 200 * time.Millisecond
)

// RetrySigner retries signing while the wrapped signer reports it is
// unavailable. Any other error is returned immediately.
type RetrySigner struct {
	orders.Signer

	maxRetries uint64
	interval   time.Duration
}

func NewRetrySigner(s orders.Signer, maxRetries uint64, interval time.Duration) *RetrySigner {
	return &RetrySigner{
		Signer:     s,
		maxRetries: maxRetries,
		interval:   interval,
	}
}

func (s *RetrySigner) Address() common.Address {
	return s.Signer.Address()
}

func (s *RetrySigner) SignHash(ctx context.Context, digest []byte) ([]byte, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.interval
	policy := backoff.WithContext(backoff.WithMaxRetries(b, s.maxRetries), ctx)

	var sig []byte
	err := backoff.RetryNotify(func() error {
		var err error
		sig, err = s.Signer.SignHash(ctx, digest)
		if err != nil && !orders.IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, d time.Duration) {
		log.Warn().Err(err).Msgf("Signer unavailable, retrying in %s", d)
	})
	if err != nil {
		return nil, err
	}
	return sig, nil
}

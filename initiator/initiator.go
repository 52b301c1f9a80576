package initiator

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/signet-orders/orders"
)

type OrderForwarder interface {
	ForwardOrder(ctx context.Context, order *orders.SignedOrder) error
}

// Initiator signs orders for the configured rollup and hands them to the
// transaction cache.
type Initiator struct {
	signer    orders.Signer
	rollup    orders.ChainConstants
	host      orders.ChainConstants
	tokens    orders.TokenResolver
	forwarder OrderForwarder
	nonces    *orders.NonceSource
	clock     clockwork.Clock
}

func NewInitiator(
	signer orders.Signer,
	system orders.SystemConstants,
	tokens orders.TokenResolver,
	forwarder OrderForwarder,
	clock clockwork.Clock,
) *Initiator {
	return &Initiator{
		signer:    signer,
		rollup:    system.Rollup,
		host:      system.Host,
		tokens:    tokens,
		forwarder: forwarder,
		nonces:    orders.NewNonceSource(clock),
		clock:     clock,
	}
}

// SignOrder validates the order and signs its Permit2 authorization with a
// fresh nonce.
func (i *Initiator) SignOrder(ctx context.Context, order orders.Order) (*orders.SignedOrder, error) {
	unsigned := orders.UnsignedOrderFrom(order).
		WithNonceSource(i.nonces).
		WithChain(i.rollup)
	err := unsigned.Validate(i.tokens, i.clock.Now(), orders.DEFAULT_DEADLINE_SKEW)
	if err != nil {
		return nil, err
	}

	signed, err := unsigned.Sign(ctx, i.signer)
	if err != nil {
		return nil, fmt.Errorf("failed signing order: %w", err)
	}
	log.Debug().Str("owner", signed.Permit.Owner.Hex()).Msgf("Signed order %s", signed.OrderHash().Hex())
	return signed, nil
}

// SendOrder forwards a signed order to the transaction cache.
func (i *Initiator) SendOrder(ctx context.Context, signed *orders.SignedOrder) error {
	err := i.forwarder.ForwardOrder(ctx, signed)
	if err != nil {
		return fmt.Errorf("failed forwarding order %s: %w", signed.OrderHash().Hex(), err)
	}

	log.Info().Msgf("Forwarded order %s to the transaction cache", signed.OrderHash().Hex())
	return nil
}

func (i *Initiator) SignAndSend(ctx context.Context, order orders.Order) (*orders.SignedOrder, error) {
	signed, err := i.SignOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	return signed, i.SendOrder(ctx, signed)
}

// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/sprintertech/signet-orders/bundle"
	"github.com/sprintertech/signet-orders/initiator"
	"github.com/sprintertech/signet-orders/orders"
)

const (
	RollupFlagName   = "rollup"
	TimeoutFlagName  = "timeout"
	GetOutFlagName   = "get-out"
	RebuildsFlagName = "rebuilds"

	DEFAULT_ROUNDTRIP_TIMEOUT = time.Minute * 2
)

var (
	roundtripCMD = &cobra.Command{
		Use:          "roundtrip",
		Short:        "Send an example order and fill it",
		Long:         "Sign and send an example order, then fill it individually and wait until the bundle resolves",
		SilenceUsage: true,
		RunE:         roundtrip,
	}
)

func init() {
	roundtripCMD.Flags().Bool(RollupFlagName, false, "Deliver the order output on the rollup instead of the host")
	roundtripCMD.Flags().Duration(TimeoutFlagName, DEFAULT_ROUNDTRIP_TIMEOUT, "Time to wait for the fill to resolve")
	bindRoundtripFlags(roundtripCMD)
	bindDevnetFlags(roundtripCMD)
}

// roundtripOpts selects the order a roundtrip sends.
type roundtripOpts struct {
	toRollup bool
	getOut   bool
	timeout  time.Duration
}

func bindRoundtripFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(GetOutFlagName, false, "Send a GetOut order initiated with rollup native value instead of a Permit2 order")
	cmd.Flags().Int(RebuildsFlagName, 0, "Times a missed fill bundle is rebuilt for a later block")
}

func roundtripFlags(cmd *cobra.Command) (int, bool, error) {
	rebuilds, err := cmd.Flags().GetInt(RebuildsFlagName)
	if err != nil {
		return 0, false, err
	}
	getOut, err := cmd.Flags().GetBool(GetOutFlagName)
	if err != nil {
		return 0, false, err
	}
	return rebuilds, getOut, nil
}

func roundtrip(cmd *cobra.Command, args []string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	toRollup, err := cmd.Flags().GetBool(RollupFlagName)
	if err != nil {
		return err
	}
	timeout, err := cmd.Flags().GetDuration(TimeoutFlagName)
	if err != nil {
		return err
	}
	rebuilds, getOut, err := roundtripFlags(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b, err := newBackend(ctx, cmd)
	if err != nil {
		return err
	}

	opts := roundtripOpts{toRollup: toRollup, getOut: getOut, timeout: timeout}
	return runRoundtrip(ctx, b, b.roundtrip(ctx).WithRebuilds(rebuilds), opts)
}

func runRoundtrip(ctx context.Context, b *backend, r *initiator.Roundtrip, opts roundtripOpts) error {
	if opts.getOut && opts.toRollup {
		return errors.New("GetOut orders deliver on the host only")
	}

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	var mined *bundle.Bundle
	var err error
	if opts.getOut {
		mined, err = runGetOut(ctx, b, r)
	} else {
		var order orders.Order
		order, err = initiator.ExampleOrder(b.tokens, b.system, b.signer.Address(), opts.toRollup, time.Now())
		if err != nil {
			return err
		}
		mined, err = r.Run(ctx, order)
	}
	if err != nil {
		log.Error().Err(err).Bool("rollup", opts.toRollup).Bool("getOut", opts.getOut).Msg("Roundtrip failed")
		return err
	}

	log.Info().
		Str("bundle", mined.ID().String()).
		Uint64("block", mined.TargetBlock()).
		Bool("rollup", opts.toRollup).
		Bool("getOut", opts.getOut).
		Msg("Order filled")
	return nil
}

func runGetOut(ctx context.Context, b *backend, r *initiator.Roundtrip) (*bundle.Bundle, error) {
	token, err := b.tokens.ConfigBySymbol(b.system.Host.ChainID, initiator.EXAMPLE_TOKEN)
	if err != nil {
		return nil, err
	}
	return r.RunGetOut(ctx, initiator.EXAMPLE_AMOUNT, token.Address, b.rollupTransactor())
}

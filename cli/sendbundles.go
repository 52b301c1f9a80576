// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/sprintertech/signet-orders/bundle"
	"github.com/sprintertech/signet-orders/cache"
)

var (
	sendBundlesCMD = &cobra.Command{
		Use:          "send-bundles",
		Short:        "Send dummy bundles",
		Long:         "Send a 1 wei transfer as a separate bundle for each of the next blocks",
		SilenceUsage: true,
		RunE:         sendBundles,
	}
)

func init() {
	sendBundlesCMD.Flags().Int(CountFlagName, bundle.DEFAULT_DUMMY_BUNDLES, "Number of blocks to send bundles for")
	bindDevnetFlags(sendBundlesCMD)
}

func sendBundles(cmd *cobra.Command, args []string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	count, err := cmd.Flags().GetInt(CountFlagName)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b, err := newBackend(ctx, cmd)
	if err != nil {
		return err
	}

	sender := bundle.NewSender(b.cache, cache.NewBundleCache(ctx, ROUNDTRIP_BUNDLE_TTL))
	bundles, err := sender.SendDummyBundles(ctx, b.rollup, b.rollupTransactor(), count)
	for _, sent := range bundles {
		log.Info().
			Str("bundle", sent.ID().String()).
			Uint64("block", sent.TargetBlock()).
			Msg("Sent dummy bundle")
	}
	return err
}

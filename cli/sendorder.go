// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	SendToRollupFlagName = "send-to-rollup"
	SleepTimeFlagName    = "sleep-time"
	CountFlagName        = "count"

	DEFAULT_SLEEP_TIME = 1000
)

var (
	sendOrderCMD = &cobra.Command{
		Use:          "send-order",
		Short:        "Continuously send and fill example orders",
		Long:         "Repeatedly sign, send and fill an example order, sleeping between rounds",
		SilenceUsage: true,
		RunE:         sendOrders,
	}
)

func init() {
	sendOrderCMD.Flags().Bool(SendToRollupFlagName, false, "Deliver the order outputs on the rollup instead of the host")
	bindEnvFlag(sendOrderCMD, SendToRollupFlagName, "SEND_TO_ROLLUP")
	sendOrderCMD.Flags().Int64(SleepTimeFlagName, DEFAULT_SLEEP_TIME, "Time to sleep between orders, in ms")
	bindEnvFlag(sendOrderCMD, SleepTimeFlagName, "SLEEP_TIME")
	sendOrderCMD.Flags().Int(CountFlagName, 0, "Number of orders to send, 0 sends until interrupted")
	sendOrderCMD.Flags().Duration(TimeoutFlagName, DEFAULT_ROUNDTRIP_TIMEOUT, "Time to wait for each fill to resolve")
	bindRoundtripFlags(sendOrderCMD)
	bindDevnetFlags(sendOrderCMD)
}

func sendOrders(cmd *cobra.Command, args []string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	toRollup := viper.GetBool(SendToRollupFlagName)
	sleep := time.Duration(viper.GetInt64(SleepTimeFlagName)) * time.Millisecond
	count, err := cmd.Flags().GetInt(CountFlagName)
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
	r := b.roundtrip(ctx).WithRebuilds(rebuilds)
	opts := roundtripOpts{toRollup: toRollup, getOut: getOut, timeout: timeout}

	for sent := 0; count == 0 || sent < count; sent++ {
		err = runRoundtrip(ctx, b, r, opts)
		if err != nil {
			return err
		}

		time.Sleep(sleep)
	}
	return nil
}

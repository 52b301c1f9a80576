// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sprintertech/signet-orders/config"
)

var (
	rootCMD = &cobra.Command{
		Use:   "signet-orders",
		Short: "Signet order filler and order tooling",
	}
)

func init() {
	config.BindFlags(rootCMD)
	rootCMD.PersistentFlags().String("name", "", "filler name")
	_ = viper.BindPFlag("name", rootCMD.PersistentFlags().Lookup("name"))

	rootCMD.PersistentFlags().String("config-url", "", "URL of shared configuration")
	_ = viper.BindPFlag("config-url", rootCMD.PersistentFlags().Lookup("config-url"))
}

func Execute() {
	rootCMD.AddCommand(runCMD, roundtripCMD, sendOrderCMD, sendBundlesCMD)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}

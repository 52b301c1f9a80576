// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName  = "config"
	JournalFlagName = "journal"
)

func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, ".", "Path to JSON configuration file or 'env' to load from environment")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(JournalFlagName, "", "Path to the bundle outcome journal")
	_ = viper.BindPFlag(JournalFlagName, rootCMD.PersistentFlags().Lookup(JournalFlagName))
}

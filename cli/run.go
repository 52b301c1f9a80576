// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"
	"github.com/sprintertech/signet-orders/app"
)

var (
	runCMD = &cobra.Command{
		Use:   "run",
		Short: "Run filler",
		Long:  "Run filler that settles open orders from the transaction cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}
)

// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"
)

const (
	HostRole   = "host"
	RollupRole = "rollup"
)

type GeneralChainConfig struct {
	Name      string  `mapstructure:"name"`
	Id        *uint64 `mapstructure:"id"`
	Endpoint  string  `mapstructure:"endpoint"`
	Type      string  `mapstructure:"type"`
	Role      string  `mapstructure:"role"`
	Blocktime uint64  `mapstructure:"blocktime" default:"12"`
}

func (c *GeneralChainConfig) Validate() error {
	// viper defaults to 0 for not specified ints
	if c.Id == nil {
		return fmt.Errorf("required field domain.Id empty for chain %v", c.Id)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("required field chain.Endpoint empty for chain %v", *c.Id)
	}
	if c.Name == "" {
		return fmt.Errorf("required field chain.Name empty for chain %v", *c.Id)
	}
	if c.Role != HostRole && c.Role != RollupRole {
		return fmt.Errorf("chain %v role '%s' is neither %s nor %s", *c.Id, c.Role, HostRole, RollupRole)
	}
	return nil
}

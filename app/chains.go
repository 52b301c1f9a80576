package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/sprintertech/signet-orders/chains/evm"
	"github.com/sprintertech/signet-orders/config"
	"github.com/sprintertech/signet-orders/config/chain"
	"github.com/sprintertech/signet-orders/orders"
	evmClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
)

// Chains are the connected host and rollup with the constants resolved from
// their configs.
type Chains struct {
	System orders.SystemConstants
	Tokens *config.TokenStore

	Host         *evmClient.EVMClient
	HostConfig   *evm.EVMConfig
	Rollup       *evmClient.EVMClient
	RollupConfig *evm.EVMConfig
}

// LoadConfig resolves the configuration from the config flag, optionally on
// top of the shared configuration at config-url.
func LoadConfig() (*config.Config, error) {
	var shared *config.Config
	var err error
	configURL := viper.GetString("config-url")
	if configURL != "" {
		shared, err = config.GetSharedConfigFromNetwork(configURL, config.SHARED_CONFIG_TIMEOUT)
		if err != nil {
			return nil, err
		}
	}

	configFlag := viper.GetString(config.ConfigFlagName)
	if strings.ToLower(configFlag) == "env" {
		return config.GetConfigFromENV(shared)
	}
	return config.GetConfigFromFile(configFlag, shared)
}

// ConnectChains dials every configured chain and verifies that the rpc
// serves the configured chain id.
func ConnectChains(ctx context.Context, chainConfigs []map[string]interface{}) (*Chains, error) {
	chains := &Chains{}
	evmConfigs := make([]*evm.EVMConfig, 0, len(chainConfigs))
	for _, chainConfig := range chainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				c, err := evm.NewEVMConfig(chainConfig)
				if err != nil {
					return nil, err
				}

				client, err := evmClient.NewEVMClient(c.GeneralChainConfig.Endpoint, nil)
				if err != nil {
					return nil, err
				}
				err = evm.VerifyChainID(ctx, client, c)
				if err != nil {
					return nil, err
				}

				switch c.GeneralChainConfig.Role {
				case chain.HostRole:
					chains.Host = client
					chains.HostConfig = c
				case chain.RollupRole:
					chains.Rollup = client
					chains.RollupConfig = c
				}
				evmConfigs = append(evmConfigs, c)
			}
		default:
			return nil, fmt.Errorf("type '%s' not recognized", chainConfig["type"])
		}
	}

	system, tokens, err := evm.NewSystem(evmConfigs)
	if err != nil {
		return nil, err
	}
	chains.System = system
	chains.Tokens = tokens
	return chains, nil
}

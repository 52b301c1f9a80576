// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"
)

const (
	ENV_PREFIX     = "SIGNET"
	CHAINS_ENV_VAR = "SIGNET_CHAINS"

	SHARED_CONFIG_TIMEOUT     = time.Second * 10
	SHARED_CONFIG_MAX_RETRIES = 3
)

type Config struct {
	FillerConfig FillerConfig             `mapstructure:"filler" json:"filler"`
	ChainConfigs []map[string]interface{} `mapstructure:"chains" json:"chains"`
}

// GetConfigFromFile reads the configuration from path and merges it over
// shared, which may be nil.
func GetConfigFromFile(path string, shared *Config) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("failed reading config file %s: %w", path, err)
	}

	local := &Config{}
	err = v.Unmarshal(local)
	if err != nil {
		return nil, err
	}
	return processConfig(local, shared)
}

// GetConfigFromENV reads filler fields from SIGNET_FILLER_* variables and the
// chains as a JSON array from SIGNET_CHAINS.
func GetConfigFromENV(shared *Config) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range configKeys("filler", reflect.TypeOf(FillerConfig{})) {
		_ = v.BindEnv(key, envName(key))
	}

	local := &Config{}
	err := v.Unmarshal(local)
	if err != nil {
		return nil, err
	}

	chains := os.Getenv(CHAINS_ENV_VAR)
	if chains != "" {
		err = json.Unmarshal([]byte(chains), &local.ChainConfigs)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", CHAINS_ENV_VAR, err)
		}
	}
	return processConfig(local, shared)
}

// GetSharedConfigFromNetwork fetches a JSON configuration shared between
// fillers. Each attempt is bounded by timeout. It is not validated on its own.
func GetSharedConfigFromNetwork(url string, timeout time.Duration) (*Config, error) {
	client := &retryablehttp.Client{
		HTTPClient:   &http.Client{Timeout: timeout},
		RetryMax:     SHARED_CONFIG_MAX_RETRIES,
		RetryWaitMin: time.Millisecond * 100,
		RetryWaitMax: time.Second,
		Backoff:      retryablehttp.DefaultBackoff,
		CheckRetry:   retryablehttp.DefaultRetryPolicy,
	}
	req, err := retryablehttp.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed fetching shared config: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed fetching shared config: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	err = json.Unmarshal(body, config)
	if err != nil {
		return nil, err
	}
	return config, nil
}

// processConfig overrides shared values with non zero local ones. Chains are
// merged by id.
func processConfig(local *Config, shared *Config) (*Config, error) {
	config := local
	if shared != nil {
		err := mergo.Merge(&shared.FillerConfig, local.FillerConfig, mergo.WithOverride)
		if err != nil {
			return nil, err
		}

		chains, err := mergeChains(shared.ChainConfigs, local.ChainConfigs)
		if err != nil {
			return nil, err
		}
		config = &Config{
			FillerConfig: shared.FillerConfig,
			ChainConfigs: chains,
		}
	}

	err := defaults.Set(&config.FillerConfig)
	if err != nil {
		return nil, err
	}
	err = config.FillerConfig.Validate()
	if err != nil {
		return nil, err
	}

	if len(config.ChainConfigs) != 2 {
		return nil, fmt.Errorf("expected host and rollup chain configs, got %d", len(config.ChainConfigs))
	}
	return config, nil
}

func mergeChains(shared []map[string]interface{}, local []map[string]interface{}) ([]map[string]interface{}, error) {
	merged := make([]map[string]interface{}, 0, len(shared)+len(local))
	byID := make(map[string]map[string]interface{})
	for _, chain := range shared {
		c := make(map[string]interface{})
		for k, v := range chain {
			c[k] = v
		}
		byID[chainKey(chain["id"])] = c
		merged = append(merged, c)
	}

	for _, chain := range local {
		c, ok := byID[chainKey(chain["id"])]
		if !ok {
			merged = append(merged, chain)
			continue
		}

		err := mergo.Merge(&c, chain, mergo.WithOverride)
		if err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// chainKey normalizes ids decoded from JSON as float64.
func chainKey(id interface{}) string {
	if f, ok := id.(float64); ok {
		return strconv.FormatUint(uint64(f), 10)
	}
	return fmt.Sprint(id)
}

func configKeys(prefix string, t reflect.Type) []string {
	keys := make([]string, 0)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key := fmt.Sprintf("%s.%s", prefix, field.Tag.Get("mapstructure"))
		if field.Type.Kind() == reflect.Struct {
			keys = append(keys, configKeys(key, field.Type)...)
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

func envName(key string) string {
	return fmt.Sprintf("%s_%s", ENV_PREFIX, strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
}

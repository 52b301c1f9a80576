package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	AggregateStrategy  = "aggregate"
	IndividualStrategy = "individual"
)

type TxCacheConfig struct {
	URL        string        `mapstructure:"url" json:"url"`
	MaxRetries int           `mapstructure:"maxRetries" json:"maxRetries" default:"3"`
	RetryDelay time.Duration `mapstructure:"retryDelay" json:"retryDelay" default:"500ms"`
}

// SignerConfig selects a local hex key or a KMS key. Exactly one of Key and
// KmsKeyID is set.
type SignerConfig struct {
	Key           string        `mapstructure:"key" json:"key"`
	KmsKeyID      string        `mapstructure:"kmsKeyId" json:"kmsKeyId"`
	KmsRegion     string        `mapstructure:"kmsRegion" json:"kmsRegion" default:"us-east-1"`
	KmsEndpoint   string        `mapstructure:"kmsEndpoint" json:"kmsEndpoint"`
	KmsAccessKey  string        `mapstructure:"kmsAccessKey" json:"kmsAccessKey"`
	KmsSecretKey  string        `mapstructure:"kmsSecretKey" json:"kmsSecretKey"`
	Retries       uint64        `mapstructure:"retries" json:"retries" default:"3"`
	RetryInterval time.Duration `mapstructure:"retryInterval" json:"retryInterval" default:"1s"`
}

type ProfitConfig struct {
	Enabled             bool    `mapstructure:"enabled" json:"enabled"`
	MinProfitUSD        float64 `mapstructure:"minProfitUSD" json:"minProfitUSD"`
	CoinmarketcapURL    string  `mapstructure:"coinmarketcapURL" json:"coinmarketcapURL" default:"https://pro-api.coinmarketcap.com"`
	CoinmarketcapApiKey string  `mapstructure:"coinmarketcapApiKey" json:"coinmarketcapApiKey"`
}

type FillerConfig struct {
	Id                        string `mapstructure:"id" json:"id"`
	Env                       string `mapstructure:"env" json:"env"`
	LogLevel                  string `mapstructure:"logLevel" json:"logLevel" default:"info"`
	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL" json:"openTelemetryCollectorURL"`
	HealthPort                uint16 `mapstructure:"healthPort" json:"healthPort" default:"9001"`
	ApiAddr                   string `mapstructure:"apiAddr" json:"apiAddr" default:"0.0.0.0:3000"`
	JournalPath               string `mapstructure:"journalPath" json:"journalPath" default:"./journal.db"`

	Strategy           string        `mapstructure:"strategy" json:"strategy" default:"aggregate"`
	SubmitBlocks       int           `mapstructure:"submitBlocks" json:"submitBlocks" default:"1"`
	MaxConcurrentFills int           `mapstructure:"maxConcurrentFills" json:"maxConcurrentFills" default:"8"`
	RequestTimeout     time.Duration `mapstructure:"requestTimeout" json:"requestTimeout" default:"10s"`
	PollInterval       time.Duration `mapstructure:"pollInterval" json:"pollInterval" default:"5s"`
	BundleTTL          time.Duration `mapstructure:"bundleTTL" json:"bundleTTL" default:"2m"`
	Preflight          bool          `mapstructure:"preflight" json:"preflight"`

	TxCache TxCacheConfig `mapstructure:"txCache" json:"txCache"`
	Signer  SignerConfig  `mapstructure:"signer" json:"signer"`
	Profit  ProfitConfig  `mapstructure:"profit" json:"profit"`
}

func (c *FillerConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %s: %w", c.LogLevel, err)
	}
	if c.Strategy != AggregateStrategy && c.Strategy != IndividualStrategy {
		return fmt.Errorf("unknown fill strategy %s", c.Strategy)
	}
	if c.TxCache.URL == "" {
		return fmt.Errorf("required field txCache.url empty")
	}
	if (c.Signer.Key == "") == (c.Signer.KmsKeyID == "") {
		return fmt.Errorf("exactly one of signer.key and signer.kmsKeyId has to be set")
	}
	if c.SubmitBlocks <= 0 {
		return fmt.Errorf("submitBlocks has to be positive, got %d", c.SubmitBlocks)
	}
	return nil
}

// Level is the parsed LogLevel, valid after Validate.
func (c *FillerConfig) Level() zerolog.Level {
	level, _ := zerolog.ParseLevel(c.LogLevel)
	return level
}

package txcache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/signet-orders/orders"
)

const (
	ORDERS_PATH  = "orders"
	BUNDLES_PATH = "bundles"
)

type Config struct {
	URL        string
	MaxRetries int
	RetryDelay time.Duration
	Timeout    time.Duration
}

// Client talks to the transaction cache. Connection errors and server errors
// are retried, client errors are returned as RelayRejectedError.
type Client struct {
	baseURL *url.URL
	client  *retryablehttp.Client
}

type leveledLogger struct {
	logger zerolog.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Trace().Fields(keysAndValues).Msg(msg)
}

func NewClient(cfg Config) (*Client, error) {
	baseURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid transaction cache url: %s", orders.ErrConfiguration, err)
	}
	if baseURL.Scheme == "" {
		baseURL.Scheme = "http"
	}

	client := &retryablehttp.Client{
		HTTPClient:   &http.Client{Timeout: cfg.Timeout},
		Logger:       leveledLogger{logger: log.With().Str("component", "txcache").Logger()},
		RetryMax:     cfg.MaxRetries,
		RetryWaitMin: cfg.RetryDelay,
		RetryWaitMax: 2 * cfg.RetryDelay,
		Backoff:      retryablehttp.LinearJitterBackoff,
		CheckRetry:   retryablehttp.DefaultRetryPolicy,
	}

	log.Info().Str("url", baseURL.String()).Int("maxRetries", cfg.MaxRetries).Msg("Connecting to transaction cache")
	return &Client{
		baseURL: baseURL,
		client:  client,
	}, nil
}

// ForwardOrder submits a signed order to be filled.
func (c *Client) ForwardOrder(ctx context.Context, order *orders.SignedOrder) error {
	return c.req(ctx, http.MethodPost, ORDERS_PATH, order, nil)
}

// ForwardBundle submits a bundle for its target block.
func (c *Client) ForwardBundle(ctx context.Context, bundle *SignetBundle) (*BundleResponse, error) {
	resp := new(BundleResponse)
	err := c.req(ctx, http.MethodPost, BUNDLES_PATH, bundle, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetOrders returns a snapshot of the open orders.
func (c *Client) GetOrders(ctx context.Context) ([]*orders.SignedOrder, error) {
	resp := new(OrdersResponse)
	err := c.req(ctx, http.MethodGet, ORDERS_PATH, nil, resp)
	if err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *Client) req(ctx context.Context, method string, path string, reqBody interface{}, resBody interface{}) error {
	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", orders.ErrSubmissionFailed, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response body: %s", orders.ErrSubmissionFailed, err)
	}

	if res.StatusCode >= http.StatusBadRequest && res.StatusCode < http.StatusInternalServerError {
		return &RelayRejectedError{StatusCode: res.StatusCode, Reason: reason(data)}
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status code: %d, %s", orders.ErrSubmissionFailed, res.StatusCode, string(data))
	}

	if resBody != nil {
		err = json.Unmarshal(data, resBody)
		if err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}

func reason(data []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Reason != "" {
		return errResp.Reason
	}
	return strings.TrimSpace(string(data))
}

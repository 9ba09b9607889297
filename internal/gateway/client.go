// Package gateway performs read-only fetches against an Esplora-style block explorer API.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const maxBodySize = 64 << 20

// Config locates the explorer API.
type Config struct {
	BaseURL string
	// RecentBlocksURL defaults to BaseURL + "/blocks".
	RecentBlocksURL string
	// RPS caps outbound requests per second; zero or less disables the limit.
	RPS int
}

// Client fetches explorer resources. Every call is a fresh round trip: nothing is
// cached and nothing is retried.
type Client struct {
	doer      Doer
	baseURL   string
	recentURL string
	limiter   ratelimit.Limiter
	metrics   Metrics
	logger    *zap.Logger
}

// NewClient constructs a Client.
func NewClient(doer Doer, cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("parse explorer url: %w", err)
	}
	recent := cfg.RecentBlocksURL
	if recent == "" {
		recent = base + "/blocks"
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	return &Client{
		doer:      doer,
		baseURL:   base,
		recentURL: recent,
		limiter:   limiter,
		metrics:   metrics,
		logger:    logger.Named("gateway"),
	}, nil
}

// FetchJSON decodes the JSON document at rawURL into dst.
func (c *Client) FetchJSON(ctx context.Context, rawURL string, dst any) error {
	return c.fetchJSON(ctx, "fetch_json", rawURL, dst)
}

// FetchText returns the body at rawURL as a string.
func (c *Client) FetchText(ctx context.Context, rawURL string) (string, error) {
	return c.fetchText(ctx, "fetch_text", rawURL)
}

// FetchRaw returns the body at rawURL untouched after checking it is valid JSON.
func (c *Client) FetchRaw(ctx context.Context, rawURL string) ([]byte, error) {
	return c.fetchRaw(ctx, "fetch_raw", rawURL)
}

// TipHash returns the hash of the current chain tip.
func (c *Client) TipHash(ctx context.Context) (string, error) {
	hash, err := c.fetchText(ctx, "tip_hash", c.baseURL+"/blocks/tip/hash")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(hash), nil
}

// Block returns the block with the given hash.
func (c *Client) Block(ctx context.Context, hash string) (*model.Block, error) {
	var block model.Block
	if err := c.fetchJSON(ctx, "block", c.baseURL+"/block/"+url.PathEscape(hash), &block); err != nil {
		return nil, err
	}
	return &block, nil
}

// BlockHash resolves a height to the hash of the block at that height.
func (c *Client) BlockHash(ctx context.Context, height uint64) (string, error) {
	hash, err := c.fetchText(ctx, "block_hash", c.baseURL+"/block-height/"+strconv.FormatUint(height, 10))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(hash), nil
}

// MempoolTxIDs returns every pending transaction identifier.
func (c *Client) MempoolTxIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := c.fetchJSON(ctx, "mempool_txids", c.baseURL+"/mempool/txids", &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Transaction returns the transaction with the given id.
func (c *Client) Transaction(ctx context.Context, txid string) (*model.Transaction, error) {
	var tx model.Transaction
	if err := c.fetchJSON(ctx, "transaction", c.baseURL+"/tx/"+url.PathEscape(txid), &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// RecentBlocks returns the newest blocks, newest first, as delivered.
func (c *Client) RecentBlocks(ctx context.Context) ([]model.Block, error) {
	var blocks []model.Block
	if err := c.fetchJSON(ctx, "recent_blocks", c.recentURL, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// RecentBlocksRaw returns the explorer's recent-blocks JSON array exactly as
// served. It always reads the explorer itself, never RecentBlocksURL, since
// that may point back at the service's own proxy.
func (c *Client) RecentBlocksRaw(ctx context.Context) ([]byte, error) {
	return c.fetchRaw(ctx, "recent_blocks_raw", c.baseURL+"/blocks")
}

// BaseURL returns the explorer API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) fetchJSON(ctx context.Context, operation, rawURL string, dst any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	body, status, err := c.get(ctx, rawURL)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(body, dst); err != nil {
		err = &FetchError{Kind: KindDecode, StatusCode: status, URL: rawURL, Err: err}
		c.logger.Debug("explorer response not decoded", zap.String("url", rawURL), zap.Error(err))
		return err
	}
	return nil
}

func (c *Client) fetchText(ctx context.Context, operation, rawURL string) (text string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	body, _, err := c.get(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) fetchRaw(ctx context.Context, operation, rawURL string) (body []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	body, status, err := c.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		err = &FetchError{Kind: KindDecode, StatusCode: status, URL: rawURL, Err: fmt.Errorf("invalid json payload")}
		return nil, err
	}
	return body, nil
}

// get performs the round trip and returns the body of a 2xx response.
// Any other status is reported without reading the payload as data.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, &FetchError{Kind: KindNetwork, URL: rawURL, Err: err}
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	c.limiter.Take()
	if err = ctx.Err(); err != nil {
		return nil, 0, &FetchError{Kind: KindNetwork, URL: rawURL, Err: err}
	}
	resp, err := c.doer.Do(req)
	if err != nil {
		c.logger.Debug("explorer request failed", zap.String("url", rawURL), zap.Error(err))
		return nil, 0, &FetchError{Kind: KindNetwork, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		c.logger.Debug("explorer returned non-success status",
			zap.String("url", rawURL),
			zap.Int("status", resp.StatusCode),
		)
		return nil, resp.StatusCode, &FetchError{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			URL:        rawURL,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, resp.StatusCode, &FetchError{Kind: KindNetwork, StatusCode: resp.StatusCode, URL: rawURL, Err: err}
	}
	return body, resp.StatusCode, nil
}

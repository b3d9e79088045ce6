// Package coingecko wraps the CoinGecko markets API for single and batch
// token market lookups keyed by CoinGecko coin ids.
package coingecko

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	apperr "github.com/DonutLabs-ai/mcp-solana-data/internal/errors"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/httpx"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/model"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3"

type Client struct {
	http    *httpx.Client
	baseURL string
	apiKey  string
}

// New creates a markets client. The demo API key is optional; requests are
// sent without the key header when it is empty and may be rejected upstream.
func New(httpClient *httpx.Client, apiKey string) *Client {
	return &Client{
		http:    httpClient,
		baseURL: defaultBaseURL,
		apiKey:  strings.TrimSpace(apiKey),
	}
}

func (c *Client) TokenMarket(ctx context.Context, id string) (model.MarketRecord, error) {
	records, err := c.BatchMarkets(ctx, []string{id})
	if err != nil {
		return model.MarketRecord{}, err
	}
	if len(records) == 0 {
		return model.MarketRecord{}, apperr.New(apperr.CodeNotFound, fmt.Sprintf("no market data for token %s", id))
	}
	return records[0], nil
}

func (c *Client) BatchMarkets(ctx context.Context, ids []string) ([]model.MarketRecord, error) {
	if len(ids) == 0 {
		return nil, apperr.New(apperr.CodeUsage, "at least one token id is required")
	}

	vals := url.Values{}
	vals.Set("vs_currency", "usd")
	vals.Set("ids", strings.Join(ids, ","))

	endpoint := fmt.Sprintf("%s/coins/markets?%s", strings.TrimRight(c.baseURL, "/"), vals.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "build coingecko markets request", err)
	}
	if c.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	var records []model.MarketRecord
	if _, err := c.http.DoJSON(ctx, req, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Package solsniffer wraps the solsniffer.com token analysis API. Reports
// are returned verbatim; no normalization is applied.
package solsniffer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apperr "github.com/DonutLabs-ai/mcp-solana-data/internal/errors"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/httpx"
)

const defaultBaseURL = "https://solsniffer.com/api/v2/token"

type Client struct {
	http    *httpx.Client
	baseURL string
	apiKey  string
}

// New creates a solsniffer client. An absent key is forwarded as an empty
// header value and the call is left to fail upstream.
func New(httpClient *httpx.Client, apiKey string) *Client {
	return &Client{
		http:    httpClient,
		baseURL: defaultBaseURL,
		apiKey:  strings.TrimSpace(apiKey),
	}
}

func (c *Client) Report(ctx context.Context, mint string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/%s", strings.TrimRight(c.baseURL, "/"), mint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "build solsniffer report request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	var report json.RawMessage
	if _, err := c.http.DoJSON(ctx, req, &report); err != nil {
		return nil, err
	}
	return report, nil
}

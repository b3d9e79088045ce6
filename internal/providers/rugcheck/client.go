// Package rugcheck wraps the rugcheck.xyz token report API. Reports are
// returned verbatim; no normalization is applied.
package rugcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apperr "github.com/DonutLabs-ai/mcp-solana-data/internal/errors"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/httpx"
)

const defaultBaseURL = "https://api.rugcheck.xyz/v1"

type Client struct {
	http    *httpx.Client
	baseURL string
}

func New(httpClient *httpx.Client) *Client {
	return &Client{http: httpClient, baseURL: defaultBaseURL}
}

func (c *Client) Report(ctx context.Context, mint string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/tokens/%s/report", strings.TrimRight(c.baseURL, "/"), mint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "build rugcheck report request", err)
	}

	var report json.RawMessage
	if _, err := c.http.DoJSON(ctx, req, &report); err != nil {
		return nil, err
	}
	return report, nil
}

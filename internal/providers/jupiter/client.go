// Package jupiter wraps the Jupiter swap API: exact-input quotes and
// unsigned swap transaction construction. No credential is required; an API
// key switches the client to the pro endpoint for higher limits.
package jupiter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apperr "github.com/DonutLabs-ai/mcp-solana-data/internal/errors"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/httpx"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/model"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/providers"
)

const (
	defaultLiteBase = "https://lite-api.jup.ag/swap/v1"
	defaultProBase  = "https://api.jup.ag/swap/v1"

	defaultSlippageBps = 50
)

type Client struct {
	http    *httpx.Client
	baseURL string
	apiKey  string
}

func New(httpClient *httpx.Client, apiKey string) *Client {
	apiKey = strings.TrimSpace(apiKey)
	baseURL := defaultLiteBase
	if apiKey != "" {
		baseURL = defaultProBase
	}
	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type quoteResponse struct {
	InputMint  string `json:"inputMint"`
	OutputMint string `json:"outputMint"`
	InAmount   string `json:"inAmount"`
	OutAmount  string `json:"outAmount"`
}

func (c *Client) Quote(ctx context.Context, req providers.SwapQuoteRequest) (model.SwapQuote, error) {
	vals := url.Values{}
	vals.Set("inputMint", req.InputMint)
	vals.Set("outputMint", req.OutputMint)
	vals.Set("amount", strconv.FormatUint(req.Amount, 10))
	vals.Set("slippageBps", strconv.Itoa(defaultSlippageBps))

	endpoint := fmt.Sprintf("%s/quote?%s", strings.TrimRight(c.baseURL, "/"), vals.Encode())
	hReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.SwapQuote{}, apperr.Wrap(apperr.CodeInternal, "build jupiter quote request", err)
	}
	if c.apiKey != "" {
		hReq.Header.Set("x-api-key", c.apiKey)
	}

	// The raw body is kept because the swap-build endpoint consumes the
	// quote verbatim.
	var raw json.RawMessage
	if _, err := c.http.DoJSON(ctx, hReq, &raw); err != nil {
		return model.SwapQuote{}, err
	}
	var resp quoteResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return model.SwapQuote{}, apperr.Wrap(apperr.CodeUnavailable, "decode jupiter quote", err)
	}
	if strings.TrimSpace(resp.OutAmount) == "" {
		return model.SwapQuote{}, apperr.New(apperr.CodeUnavailable, "jupiter quote missing output amount")
	}

	return model.SwapQuote{
		InputMint:  resp.InputMint,
		OutputMint: resp.OutputMint,
		InAmount:   resp.InAmount,
		OutAmount:  resp.OutAmount,
		Raw:        raw,
	}, nil
}

type swapRequest struct {
	QuoteResponse json.RawMessage `json:"quoteResponse"`
	UserPublicKey string          `json:"userPublicKey"`
}

type swapResponse struct {
	SwapTransaction      string `json:"swapTransaction"`
	LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
}

// BuildUnsignedSwap exchanges a previously fetched quote for a serialized,
// unsigned swap transaction. The signer public key only designates the fee
// payer; no signature is produced.
func (c *Client) BuildUnsignedSwap(ctx context.Context, quote model.SwapQuote, userPublicKey string) (model.UnsignedSwap, error) {
	if len(quote.Raw) == 0 {
		return model.UnsignedSwap{}, apperr.New(apperr.CodeUsage, "swap build requires a quote response")
	}

	body, err := json.Marshal(swapRequest{
		QuoteResponse: quote.Raw,
		UserPublicKey: userPublicKey,
	})
	if err != nil {
		return model.UnsignedSwap{}, apperr.Wrap(apperr.CodeInternal, "encode jupiter swap request", err)
	}

	endpoint := fmt.Sprintf("%s/swap", strings.TrimRight(c.baseURL, "/"))
	headers := map[string]string{}
	if c.apiKey != "" {
		headers["x-api-key"] = c.apiKey
	}

	var resp swapResponse
	if _, err := httpx.DoBodyJSON(ctx, c.http, http.MethodPost, endpoint, body, headers, &resp); err != nil {
		return model.UnsignedSwap{}, err
	}
	if strings.TrimSpace(resp.SwapTransaction) == "" {
		return model.UnsignedSwap{}, apperr.New(apperr.CodeUnavailable, "jupiter swap build missing transaction")
	}

	return model.UnsignedSwap{
		SwapTransaction:      resp.SwapTransaction,
		LastValidBlockHeight: resp.LastValidBlockHeight,
	}, nil
}

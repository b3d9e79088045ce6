// Package providers declares the interfaces action handlers consume. Each
// subpackage wraps one external API behind one of these interfaces.
package providers

import (
	"context"
	"encoding/json"

	"github.com/DonutLabs-ai/mcp-solana-data/internal/model"
)

// MarketDataProvider serves market records keyed by the provider's canonical
// token ids (not mint addresses).
type MarketDataProvider interface {
	TokenMarket(ctx context.Context, id string) (model.MarketRecord, error)
	BatchMarkets(ctx context.Context, ids []string) ([]model.MarketRecord, error)
}

// SwapQuoteRequest asks for an exact-input quote between two mints. Amount is
// in the input token's base units.
type SwapQuoteRequest struct {
	InputMint  string
	OutputMint string
	Amount     uint64
}

// SwapProvider quotes swaps and builds unsigned swap transactions. The quote
// passed to BuildUnsignedSwap must be one previously returned by Quote.
type SwapProvider interface {
	Quote(ctx context.Context, req SwapQuoteRequest) (model.SwapQuote, error)
	BuildUnsignedSwap(ctx context.Context, quote model.SwapQuote, userPublicKey string) (model.UnsignedSwap, error)
}

// RiskReportProvider fetches a rug-pull risk report for a mint address. The
// report shape is provider-specific and passed through verbatim.
type RiskReportProvider interface {
	Report(ctx context.Context, mint string) (json.RawMessage, error)
}

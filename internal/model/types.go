// Package model holds the shared domain types exchanged between provider
// clients and action handlers.
package model

import "encoding/json"

// MarketRecord mirrors the market-data provider's per-coin market fields.
type MarketRecord struct {
	ID                           string   `json:"id"`
	Symbol                       string   `json:"symbol"`
	Name                         string   `json:"name"`
	Image                        string   `json:"image"`
	CurrentPrice                 float64  `json:"current_price"`
	MarketCap                    float64  `json:"market_cap"`
	MarketCapRank                int      `json:"market_cap_rank"`
	FullyDilutedValuation        float64  `json:"fully_diluted_valuation"`
	TotalVolume                  float64  `json:"total_volume"`
	High24h                      float64  `json:"high_24h"`
	Low24h                       float64  `json:"low_24h"`
	PriceChange24h               float64  `json:"price_change_24h"`
	PriceChangePercentage24h     float64  `json:"price_change_percentage_24h"`
	MarketCapChange24h           float64  `json:"market_cap_change_24h"`
	MarketCapChangePercentage24h float64  `json:"market_cap_change_percentage_24h"`
	CirculatingSupply            float64  `json:"circulating_supply"`
	TotalSupply                  *float64 `json:"total_supply"`
	MaxSupply                    *float64 `json:"max_supply"`
	ATH                          float64  `json:"ath"`
	ATHChangePercentage          float64  `json:"ath_change_percentage"`
	ATHDate                      string   `json:"ath_date"`
	ATL                          float64  `json:"atl"`
	ATLChangePercentage          float64  `json:"atl_change_percentage"`
	ATLDate                      string   `json:"atl_date"`
	LastUpdated                  string   `json:"last_updated"`
}

// SwapQuote is a quote for an exact-input swap. Raw keeps the provider's
// unmodified quote body, which the swap-build endpoint requires verbatim.
type SwapQuote struct {
	InputMint  string          `json:"inputMint"`
	OutputMint string          `json:"outputMint"`
	InAmount   string          `json:"inAmount"`
	OutAmount  string          `json:"outAmount"`
	Raw        json.RawMessage `json:"-"`
}

// UnsignedSwap carries the serialized, unsigned swap transaction returned by
// the swap-build endpoint.
type UnsignedSwap struct {
	SwapTransaction      string `json:"swapTransaction"`
	LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
}

package action

import "context"

// GetTokenMarketInfoBatch returns market records for several tokens at once.
// Identifiers that resolve to no directory entry are dropped from the
// outbound batch; the action fails only when nothing resolves.
var GetTokenMarketInfoBatch = Definition{
	Name:        "get_token_market_info_batch",
	Description: "Get the market data for a batch of tokens. The input is an array of token identifiers, each a token name, ticker or address.",
	TriggerPhrases: []string{
		"get market data for several tokens",
		"price of sol and ray",
		"compare market caps of tokens",
	},
	Examples: []Example{
		{
			Input: map[string]any{"tokens": []any{"sol", "ray"}},
			Output: map[string]any{
				"status": StatusSuccess,
				"supportedTokens": []map[string]any{
					{"id": "wrapped-solana", "symbol": "sol"},
					{"id": "raydium", "symbol": "ray"},
				},
				"message": "Here is the list of the requested tokens with their market data",
			},
			Explanation: "Receive market information for sol and ray in one call",
		},
	},
	Schema: Schema{Fields: []Field{
		{Name: "tokens", Type: FieldStringArray, Required: true, Description: "Token names, tickers or mint addresses"},
	}},
	Handler: handleGetTokenMarketInfoBatch,
}

func handleGetTokenMarketInfoBatch(ctx context.Context, deps *Deps, input map[string]any) Envelope {
	identifiers := stringSliceArg(input, "tokens")

	seen := make(map[string]struct{}, len(identifiers))
	ids := make([]string, 0, len(identifiers))
	for _, identifier := range identifiers {
		rec, ok := deps.Directory.Resolve(identifier)
		if !ok {
			continue
		}
		if _, dup := seen[rec.CanonicalID]; dup {
			continue
		}
		seen[rec.CanonicalID] = struct{}{}
		ids = append(ids, rec.CanonicalID)
	}

	// "Nothing resolved" must be distinguishable from an empty provider
	// result.
	if len(ids) == 0 {
		return Errorf("none of the requested tokens are supported")
	}

	records, err := deps.Market.BatchMarkets(ctx, ids)
	if err != nil {
		return Errorf("failed to get batch market info: %v", err)
	}

	return Success("Here is the list of the requested tokens with their market data", map[string]any{
		"supportedTokens": records,
	})
}

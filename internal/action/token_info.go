package action

import "context"

// GetTokenInfo returns the market record for a single token identified by
// name, ticker or mint address.
var GetTokenInfo = Definition{
	Name:        "get_token_info",
	Description: "Get the market data for a single token. Use this for single token queries and the batch action for multiple tokens.",
	TriggerPhrases: []string{
		"get token market data",
		"get price of token",
		"get market cap of token",
		"get sol fully diluted valuation",
		"get usdc market information",
		"what is 24h price change of ray",
	},
	Examples: []Example{
		{
			Input: map[string]any{"token": "ray"},
			Output: map[string]any{
				"status": StatusSuccess,
				"supportedTokens": []map[string]any{{
					"id":            "raydium",
					"symbol":        "ray",
					"name":          "Raydium",
					"current_price": 3.17,
					"market_cap":    918372256,
				}},
				"message": "Here is the full information of the requested token",
			},
			Explanation: "Receive market information for ray",
		},
	},
	Schema: Schema{Fields: []Field{
		{Name: "token", Type: FieldString, Required: true, Description: "Token name, ticker or mint address"},
	}},
	Handler: handleGetTokenInfo,
}

func handleGetTokenInfo(ctx context.Context, deps *Deps, input map[string]any) Envelope {
	identifier := stringArg(input, "token")
	rec, ok := deps.Directory.Resolve(identifier)
	if !ok {
		return Errorf("token %s is not supported", identifier)
	}

	record, err := deps.Market.TokenMarket(ctx, rec.CanonicalID)
	if err != nil {
		return Errorf("failed to get token info: %v", err)
	}

	return Success("Here is the full information of the requested token", map[string]any{
		"supportedTokens": []any{record},
	})
}

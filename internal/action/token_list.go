package action

import "context"

// GetTokenList returns the full directory of supported tokens. It is the
// only action that performs no external call.
var GetTokenList = Definition{
	Name:        "get_token_list",
	Description: "Get the list of supported tokens with their canonical id, ticker, name and mint address.",
	TriggerPhrases: []string{
		"get supported tokens",
		"get list of supported tokens",
		"token list",
	},
	Examples: []Example{
		{
			Input: map[string]any{},
			Output: map[string]any{
				"status": StatusSuccess,
				"supportedTokens": []map[string]any{
					{"id": "wrapped-solana", "ticker": "sol", "address": "So11111111111111111111111111111111111111112"},
					{"id": "raydium", "ticker": "ray", "address": "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R"},
				},
				"message": "Here is the list of supported tokens with their ticker, name and address",
			},
			Explanation: "Receive the list of supported tokens",
		},
	},
	Schema:  Schema{},
	Handler: handleGetTokenList,
}

func handleGetTokenList(_ context.Context, deps *Deps, _ map[string]any) Envelope {
	return Success("Here is the list of supported tokens with their ticker, name and address", map[string]any{
		"supportedTokens": deps.Directory.List(),
	})
}

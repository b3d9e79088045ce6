package action

import (
	"context"

	"github.com/DonutLabs-ai/mcp-solana-data/internal/providers"
)

// GetJupiterQuote returns a real-time exact-input swap quote. Both mints are
// checked against the directory before any network call is made.
var GetJupiterQuote = Definition{
	Name:        "get_jupiter_quote",
	Description: "Get a real-time quote for a token swap (uses Jupiter Exchange). The input amount is in the input token's base units.",
	TriggerPhrases: []string{
		"quote token swap",
		"estimate token swap",
		"estimate amount of token received",
		"quote swap sol to usdc",
	},
	Examples: []Example{
		{
			Input: map[string]any{
				"inputMint":   "So11111111111111111111111111111111111111112",
				"outputMint":  "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
				"inputAmount": 1_000_000,
			},
			Output: map[string]any{
				"status":       StatusSuccess,
				"inputToken":   "So11111111111111111111111111111111111111112",
				"outputToken":  "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
				"inputAmount":  1_000_000,
				"outputAmount": "146810",
				"message":      "You will get 146810 of EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v for 1000000 of So11111111111111111111111111111111111111112",
			},
			Explanation: "Get a quote for swapping 0.001 SOL into USDC",
		},
	},
	Schema: Schema{Fields: []Field{
		{Name: "inputMint", Type: FieldString, Required: true, MinLen: 32, Message: "Invalid input mint address", Description: "Mint address of the token to sell"},
		{Name: "outputMint", Type: FieldString, Required: true, MinLen: 32, Message: "Invalid output mint address", Description: "Mint address of the token to buy"},
		{Name: "inputAmount", Type: FieldNumber, Required: true, Positive: true, Message: "Input amount must be positive", Description: "Amount to sell, in the input token's base units"},
	}},
	Handler: handleGetJupiterQuote,
}

func handleGetJupiterQuote(ctx context.Context, deps *Deps, input map[string]any) Envelope {
	outputMint, ok := deps.Directory.SupportedAddress(stringArg(input, "outputMint"))
	if !ok {
		return Errorf("Invalid output mint address")
	}
	inputMint, ok := deps.Directory.SupportedAddress(stringArg(input, "inputMint"))
	if !ok {
		return Errorf("Invalid input mint address")
	}
	amount := uint64(numberArg(input, "inputAmount"))

	quote, err := deps.Swap.Quote(ctx, providers.SwapQuoteRequest{
		InputMint:  inputMint,
		OutputMint: outputMint,
		Amount:     amount,
	})
	if err != nil {
		return Errorf("failed to get quote: %v", err)
	}

	return Success(
		"You will get "+quote.OutAmount+" of "+outputMint+" for "+quote.InAmount+" of "+inputMint,
		map[string]any{
			"inputToken":   inputMint,
			"outputToken":  outputMint,
			"inputAmount":  amount,
			"outputAmount": quote.OutAmount,
		},
	)
}

package action

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/DonutLabs-ai/mcp-solana-data/internal/providers"
)

// GetJupiterUnsignedSwap quotes a swap and builds the corresponding unsigned
// transaction for the caller to sign. The two provider calls form one
// logical operation; the signer public key is format-validated only.
var GetJupiterUnsignedSwap = Definition{
	Name:        "get_jupiter_unsigned_swap",
	Description: "Get an unsigned swap transaction for the user to sign and send to the network (uses Jupiter Exchange).",
	TriggerPhrases: []string{
		"swap 1 sol for usdc",
		"get unsigned swap transaction for 1 sol to usdc",
		"suggest a swap transaction for 1 sol into ray",
	},
	Examples: []Example{
		{
			Input: map[string]any{
				"inputMint":   "So11111111111111111111111111111111111111112",
				"outputMint":  "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
				"inputAmount": 1_000_000,
				"publicKey":   "6DnQ5LiT6Qr2z11tEmqEPyLd1ADRJpuqBdgMGR4DRr2Q",
			},
			Output: map[string]any{
				"status":          StatusSuccess,
				"swapTransaction": "AQAAAAAAAA...",
				"inputToken":      "So11111111111111111111111111111111111111112",
				"outputToken":     "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
				"inputAmount":     1_000_000,
				"outputAmount":    "146810",
				"message":         "The swap transaction can be signed and sent to the network. You will get 146810 of EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v for 1000000 of So11111111111111111111111111111111111111112 if signed",
			},
			Explanation: "Get an unsigned transaction swapping 0.001 SOL into USDC",
		},
	},
	Schema: Schema{Fields: []Field{
		{Name: "inputMint", Type: FieldString, Required: true, MinLen: 32, Message: "Invalid input mint address", Description: "Mint address of the token to sell"},
		{Name: "outputMint", Type: FieldString, Required: true, MinLen: 32, Message: "Invalid output mint address", Description: "Mint address of the token to buy"},
		{Name: "inputAmount", Type: FieldNumber, Required: true, Positive: true, Message: "Input amount must be positive", Description: "Amount to sell, in the input token's base units"},
		{Name: "publicKey", Type: FieldString, Required: true, MinLen: 32, Message: "Invalid public key", Description: "Public key of the wallet that will sign the transaction"},
	}},
	Handler: handleGetJupiterUnsignedSwap,
}

func handleGetJupiterUnsignedSwap(ctx context.Context, deps *Deps, input map[string]any) Envelope {
	outputMint, ok := deps.Directory.SupportedAddress(stringArg(input, "outputMint"))
	if !ok {
		return Errorf("Invalid output mint address")
	}
	inputMint, ok := deps.Directory.SupportedAddress(stringArg(input, "inputMint"))
	if !ok {
		return Errorf("Invalid input mint address")
	}
	publicKey := stringArg(input, "publicKey")
	if _, err := solana.PublicKeyFromBase58(publicKey); err != nil {
		return Errorf("Invalid public key")
	}
	amount := uint64(numberArg(input, "inputAmount"))

	quote, err := deps.Swap.Quote(ctx, providers.SwapQuoteRequest{
		InputMint:  inputMint,
		OutputMint: outputMint,
		Amount:     amount,
	})
	if err != nil {
		return Errorf("failed to get unsigned swap transaction: %v", err)
	}

	swap, err := deps.Swap.BuildUnsignedSwap(ctx, quote, publicKey)
	if err != nil {
		return Errorf("failed to get unsigned swap transaction: %v", err)
	}

	return Success(
		"The swap transaction can be signed and sent to the network. You will get "+quote.OutAmount+" of "+outputMint+" for "+quote.InAmount+" of "+inputMint+" if signed",
		map[string]any{
			"swapTransaction": swap.SwapTransaction,
			"inputToken":      inputMint,
			"outputToken":     outputMint,
			"inputAmount":     amount,
			"outputAmount":    quote.OutAmount,
		},
	)
}

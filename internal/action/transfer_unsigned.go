package action

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/DonutLabs-ai/mcp-solana-data/internal/chain"
)

// TransferUnsigned builds an unsigned transfer of SOL or an SPL token. The
// amount is in human units; base units are derived from the mint's decimals
// (or the fixed SOL exponent for native transfers).
var TransferUnsigned = Definition{
	Name:        "transfer_unsigned",
	Description: "Generate an unsigned transaction to transfer SOL or SPL tokens to another address. The caller signs and submits it.",
	TriggerPhrases: []string{
		"create transaction to transfer tokens",
		"transfer funds with unsigned transaction",
		"build transaction to send money",
		"suggest to send sol to address",
	},
	Examples: []Example{
		{
			Input: map[string]any{
				"from":   "6DnQ5LiT6Qr2z11tEmqEPyLd1ADRJpuqBdgMGR4DRr2Q",
				"to":     "8x2dR8Mpzuz2YqyZyZjUbYWKSWesBo5jMx2Q9Y86udVk",
				"amount": 1,
			},
			Output: map[string]any{
				"status":    StatusSuccess,
				"amount":    1,
				"sender":    "6DnQ5LiT6Qr2z11tEmqEPyLd1ADRJpuqBdgMGR4DRr2Q",
				"recipient": "8x2dR8Mpzuz2YqyZyZjUbYWKSWesBo5jMx2Q9Y86udVk",
				"token":     "SOL",
				"message":   "Transaction generated successfully",
			},
			Explanation: "Unsigned transaction transferring 1 SOL to the recipient",
		},
		{
			Input: map[string]any{
				"from":   "6DnQ5LiT6Qr2z11tEmqEPyLd1ADRJpuqBdgMGR4DRr2Q",
				"to":     "8x2dR8Mpzuz2YqyZyZjUbYWKSWesBo5jMx2Q9Y86udVk",
				"amount": 100,
				"mint":   "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
			},
			Output: map[string]any{
				"status":    StatusSuccess,
				"amount":    100,
				"sender":    "6DnQ5LiT6Qr2z11tEmqEPyLd1ADRJpuqBdgMGR4DRr2Q",
				"recipient": "8x2dR8Mpzuz2YqyZyZjUbYWKSWesBo5jMx2Q9Y86udVk",
				"token":     "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
				"message":   "Transaction generated successfully",
			},
			Explanation: "Unsigned transaction transferring 100 USDC to the recipient",
		},
	},
	Schema: Schema{Fields: []Field{
		{Name: "from", Type: FieldString, Required: true, MinLen: 32, Message: "Invalid sender address", Description: "Sender wallet address, also the fee payer"},
		{Name: "to", Type: FieldString, Required: true, MinLen: 32, Message: "Invalid recipient address", Description: "Recipient wallet address"},
		{Name: "amount", Type: FieldNumber, Required: true, Positive: true, Message: "Amount must be positive", Description: "Amount to transfer, in human units"},
		{Name: "mint", Type: FieldString, Description: "Optional token name, ticker or mint address; omit for native SOL"},
	}},
	Handler: handleTransferUnsigned,
}

func handleTransferUnsigned(ctx context.Context, deps *Deps, input map[string]any) Envelope {
	from, err := solana.PublicKeyFromBase58(stringArg(input, "from"))
	if err != nil {
		return Errorf("Invalid sender address")
	}
	to, err := solana.PublicKeyFromBase58(stringArg(input, "to"))
	if err != nil {
		return Errorf("Invalid recipient address")
	}
	amount := numberArg(input, "amount")

	tokenLabel := "SOL"
	var mint *solana.PublicKey
	if identifier := stringArg(input, "mint"); identifier != "" {
		addr, ok := deps.Directory.SupportedAddress(identifier)
		if !ok {
			return Errorf("Invalid mint address")
		}
		pk, err := solana.PublicKeyFromBase58(addr)
		if err != nil {
			return Errorf("Invalid mint address")
		}
		mint = &pk
		tokenLabel = addr
	}

	transfer, err := chain.BuildUnsignedTransfer(ctx, deps.Node, chain.TransferRequest{
		From:   from,
		To:     to,
		Amount: amount,
		Mint:   mint,
	})
	if err != nil {
		return Errorf("failed to build transfer transaction: %v", err)
	}

	msg := transfer.Transaction.Message
	return Success("Transaction generated successfully", map[string]any{
		"amount":    amount,
		"sender":    from.String(),
		"recipient": to.String(),
		"token":     tokenLabel,
		"transaction": map[string]any{
			"recentBlockhash": msg.RecentBlockhash.String(),
			"feePayer":        from.String(),
			"instructions":    len(msg.Instructions),
			"signers":         []string{},
		},
		"serializedTransaction": transfer.Serialized,
	})
}

package action

import "context"

// SolsnifferReport fetches a rug-pull risk report from solsniffer.com. The
// provider's nested report is passed through verbatim; its shape differs
// from the rugcheck report and the two are deliberately not unified.
var SolsnifferReport = Definition{
	Name:        "solsniffer_report",
	Description: "Get an in-depth token analysis from solsniffer to determine if a token is a rug pull.",
	TriggerPhrases: []string{
		"check rug pull from solsniffer",
		"rug pull check from solsniffer",
		"rug pull alert",
	},
	Examples: []Example{
		{
			Input: map[string]any{"tokenId": "usdc"},
			Output: map[string]any{
				"status":  StatusSuccess,
				"response": map[string]any{"tokenData": map[string]any{"tokenSymbol": "USDC", "score": 71}},
				"message": "Here is the solsniffer risk report for the requested token",
			},
			Explanation: "Receive the solsniffer risk report for usdc",
		},
	},
	Schema: Schema{Fields: []Field{
		{Name: "tokenId", Type: FieldString, Required: true, Description: "Token name, ticker or mint address"},
	}},
	Handler: handleSolsnifferReport,
}

func handleSolsnifferReport(ctx context.Context, deps *Deps, input map[string]any) Envelope {
	identifier := stringArg(input, "tokenId")
	mint, ok := deps.Directory.SupportedAddress(identifier)
	if !ok {
		return Errorf("Token %s not found", identifier)
	}

	report, err := deps.Solsniffer.Report(ctx, mint)
	if err != nil {
		return Errorf("failed to fetch solsniffer report: %v", err)
	}

	return Success("Here is the solsniffer risk report for the requested token", map[string]any{
		"response": report,
	})
}

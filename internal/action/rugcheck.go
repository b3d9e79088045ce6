package action

import "context"

// RugcheckReport fetches a rug-pull risk report from rugcheck.xyz. The
// provider's nested report is passed through verbatim.
var RugcheckReport = Definition{
	Name:        "rugcheck_report",
	Description: "Get an in-depth token analysis from rugcheck.xyz to determine if a token is a rug pull.",
	TriggerPhrases: []string{
		"check rug pull",
		"rug pull check from rugcheck",
		"is this token a rug pull",
	},
	Examples: []Example{
		{
			Input: map[string]any{"tokenId": "ray"},
			Output: map[string]any{
				"status":  StatusSuccess,
				"report":  map[string]any{"mint": "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R", "score": 1},
				"message": "Here is the rug pull risk report for the requested token",
			},
			Explanation: "Receive the rugcheck risk report for ray",
		},
	},
	Schema: Schema{Fields: []Field{
		{Name: "tokenId", Type: FieldString, Required: true, Description: "Token name, ticker or mint address"},
	}},
	Handler: handleRugcheckReport,
}

func handleRugcheckReport(ctx context.Context, deps *Deps, input map[string]any) Envelope {
	identifier := stringArg(input, "tokenId")
	mint, ok := deps.Directory.SupportedAddress(identifier)
	if !ok {
		return Errorf("Token %s not found", identifier)
	}

	report, err := deps.Rugcheck.Report(ctx, mint)
	if err != nil {
		return Errorf("failed to fetch rugcheck report: %v", err)
	}

	return Success("Here is the rug pull risk report for the requested token", map[string]any{
		"report": report,
	})
}

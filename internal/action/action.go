// Package action defines the capability contract: named action descriptors
// with declarative input schemas, example-driven documentation and handlers
// returning a uniform result envelope. Handlers receive their collaborators
// through an injected Deps value and never read global state.
package action

import (
	"context"

	"github.com/DonutLabs-ai/mcp-solana-data/internal/chain"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/providers"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/token"
)

// Deps carries every collaborator a handler may need. Credentials live
// inside the provider clients; an absent credential is an empty string there.
type Deps struct {
	Directory  *token.Directory
	Market     providers.MarketDataProvider
	Swap       providers.SwapProvider
	Rugcheck   providers.RiskReportProvider
	Solsniffer providers.RiskReportProvider
	Node       chain.RPC
}

// Handler receives schema-validated input and returns an envelope. Failures
// of any kind are converted into an error envelope; a Handler never returns
// a Go error to the dispatcher.
type Handler func(ctx context.Context, deps *Deps, input map[string]any) Envelope

// Example documents one input/output pair for an action. Examples are never
// executed at runtime.
type Example struct {
	Input       map[string]any `json:"input"`
	Output      map[string]any `json:"output"`
	Explanation string         `json:"explanation"`
}

// Definition is one exposed capability.
type Definition struct {
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	TriggerPhrases []string  `json:"triggerPhrases"`
	Examples       []Example `json:"examples,omitempty"`
	Schema         Schema    `json:"schema"`
	Handler        Handler   `json:"-"`
}

func stringArg(input map[string]any, name string) string {
	s, _ := input[name].(string)
	return s
}

func numberArg(input map[string]any, name string) float64 {
	f, _ := input[name].(float64)
	return f
}

func stringSliceArg(input map[string]any, name string) []string {
	s, _ := input[name].([]string)
	return s
}

package action

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/DonutLabs-ai/mcp-solana-data/internal/model"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/providers"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/token"
)

const unsupportedMint = "11111111111111111111111111111111"

type fakeMarket struct {
	records []model.MarketRecord
	err     error
	lastIDs []string
	calls   int
}

func (f *fakeMarket) TokenMarket(_ context.Context, id string) (model.MarketRecord, error) {
	f.calls++
	f.lastIDs = []string{id}
	if f.err != nil {
		return model.MarketRecord{}, f.err
	}
	return f.records[0], nil
}

func (f *fakeMarket) BatchMarkets(_ context.Context, ids []string) ([]model.MarketRecord, error) {
	f.calls++
	f.lastIDs = ids
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

type fakeSwap struct {
	quote      model.SwapQuote
	swap       model.UnsignedSwap
	quoteErr   error
	swapErr    error
	quoteCalls int
	swapCalls  int
	lastReq    providers.SwapQuoteRequest
	lastPK     string
}

func (f *fakeSwap) Quote(_ context.Context, req providers.SwapQuoteRequest) (model.SwapQuote, error) {
	f.quoteCalls++
	f.lastReq = req
	if f.quoteErr != nil {
		return model.SwapQuote{}, f.quoteErr
	}
	return f.quote, nil
}

func (f *fakeSwap) BuildUnsignedSwap(_ context.Context, quote model.SwapQuote, pk string) (model.UnsignedSwap, error) {
	f.swapCalls++
	f.lastPK = pk
	if f.swapErr != nil {
		return model.UnsignedSwap{}, f.swapErr
	}
	return f.swap, nil
}

type fakeRisk struct {
	report   json.RawMessage
	err      error
	lastMint string
}

func (f *fakeRisk) Report(_ context.Context, mint string) (json.RawMessage, error) {
	f.lastMint = mint
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

type fakeNode struct {
	blockhash solana.Hash
	exists    bool
	decimals  uint8
}

func (f *fakeNode) LatestBlockhash(context.Context) (solana.Hash, error) { return f.blockhash, nil }
func (f *fakeNode) AccountExists(context.Context, solana.PublicKey) (bool, error) {
	return f.exists, nil
}
func (f *fakeNode) MintDecimals(context.Context, solana.PublicKey) (uint8, error) {
	return f.decimals, nil
}

func testDeps(t *testing.T) *Deps {
	t.Helper()
	directory, err := token.Load()
	if err != nil {
		t.Fatalf("load directory: %v", err)
	}
	return &Deps{Directory: directory}
}

func validate(t *testing.T, def Definition, args map[string]any) map[string]any {
	t.Helper()
	input, err := def.Schema.Validate(args)
	if err != nil {
		t.Fatalf("schema rejected test input: %v", err)
	}
	return input
}

func TestGetTokenInfoResolvesBeforeCalling(t *testing.T) {
	deps := testDeps(t)
	market := &fakeMarket{records: []model.MarketRecord{{ID: "raydium", Symbol: "ray"}}}
	deps.Market = market

	env := GetTokenInfo.Handler(context.Background(), deps, validate(t, GetTokenInfo, map[string]any{"token": "RAY"}))
	if env.IsError() {
		t.Fatalf("unexpected error: %s", env.Message)
	}
	if len(market.lastIDs) != 1 || market.lastIDs[0] != "raydium" {
		t.Fatalf("expected canonical id lookup, got %v", market.lastIDs)
	}
}

func TestGetTokenInfoUnknownToken(t *testing.T) {
	deps := testDeps(t)
	market := &fakeMarket{}
	deps.Market = market

	env := GetTokenInfo.Handler(context.Background(), deps, validate(t, GetTokenInfo, map[string]any{"token": "totally-fake-token"}))
	if !env.IsError() {
		t.Fatal("expected error envelope")
	}
	if market.calls != 0 {
		t.Fatal("provider must not be called for an unresolvable token")
	}
}

func TestBatchMarketInfoDropsUnresolvable(t *testing.T) {
	deps := testDeps(t)
	market := &fakeMarket{records: []model.MarketRecord{{ID: "wrapped-solana"}, {ID: "raydium"}}}
	deps.Market = market

	input := validate(t, GetTokenMarketInfoBatch, map[string]any{"tokens": []any{"sol", "ray", "totally-fake-token"}})
	env := GetTokenMarketInfoBatch.Handler(context.Background(), deps, input)
	if env.IsError() {
		t.Fatalf("unexpected error: %s", env.Message)
	}

	seen := map[string]int{}
	for _, id := range market.lastIDs {
		seen[id]++
	}
	if len(market.lastIDs) != 2 || seen["wrapped-solana"] != 1 || seen["raydium"] != 1 {
		t.Fatalf("expected each resolved id exactly once, got %v", market.lastIDs)
	}
}

func TestBatchMarketInfoNothingResolves(t *testing.T) {
	deps := testDeps(t)
	market := &fakeMarket{}
	deps.Market = market

	input := validate(t, GetTokenMarketInfoBatch, map[string]any{"tokens": []any{"totally-fake-token"}})
	env := GetTokenMarketInfoBatch.Handler(context.Background(), deps, input)
	if !env.IsError() {
		t.Fatal("zero resolved identifiers must be an error, not an empty success")
	}
	if market.calls != 0 {
		t.Fatal("provider must not be called when nothing resolves")
	}
}

func TestGetTokenListReturnsFullDirectory(t *testing.T) {
	deps := testDeps(t)

	env := GetTokenList.Handler(context.Background(), deps, map[string]any{})
	if env.IsError() {
		t.Fatalf("unexpected error: %s", env.Message)
	}
	records, ok := env.Payload["supportedTokens"].([]token.Record)
	if !ok {
		t.Fatalf("unexpected payload type: %T", env.Payload["supportedTokens"])
	}
	if len(records) != deps.Directory.Len() {
		t.Fatalf("listing returned %d records, directory has %d", len(records), deps.Directory.Len())
	}
}

func TestQuoteRejectsUnsupportedOutputMint(t *testing.T) {
	deps := testDeps(t)
	swap := &fakeSwap{}
	deps.Swap = swap

	input := validate(t, GetJupiterQuote, map[string]any{
		"inputMint":   "So11111111111111111111111111111111111111112",
		"outputMint":  unsupportedMint,
		"inputAmount": float64(1000000),
	})
	env := GetJupiterQuote.Handler(context.Background(), deps, input)
	if !env.IsError() || env.Message != "Invalid output mint address" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if swap.quoteCalls != 0 {
		t.Fatal("quote provider must not be called after resolution failure")
	}
}

func TestQuoteDistinguishesInputMintFailure(t *testing.T) {
	deps := testDeps(t)
	deps.Swap = &fakeSwap{}

	input := validate(t, GetJupiterQuote, map[string]any{
		"inputMint":   unsupportedMint,
		"outputMint":  "So11111111111111111111111111111111111111112",
		"inputAmount": float64(1000000),
	})
	env := GetJupiterQuote.Handler(context.Background(), deps, input)
	if !env.IsError() || env.Message != "Invalid input mint address" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestQuoteSuccess(t *testing.T) {
	deps := testDeps(t)
	swap := &fakeSwap{quote: model.SwapQuote{
		InputMint:  "So11111111111111111111111111111111111111112",
		OutputMint: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		InAmount:   "1000000",
		OutAmount:  "146810",
	}}
	deps.Swap = swap

	input := validate(t, GetJupiterQuote, map[string]any{
		"inputMint":   "So11111111111111111111111111111111111111112",
		"outputMint":  "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		"inputAmount": float64(1000000),
	})
	env := GetJupiterQuote.Handler(context.Background(), deps, input)
	if env.IsError() {
		t.Fatalf("unexpected error: %s", env.Message)
	}
	if swap.lastReq.Amount != 1000000 {
		t.Fatalf("unexpected quote amount: %d", swap.lastReq.Amount)
	}
	if env.Payload["outputAmount"] != "146810" {
		t.Fatalf("unexpected payload: %+v", env.Payload)
	}
}

func TestUnsignedSwapRunsQuoteThenBuild(t *testing.T) {
	deps := testDeps(t)
	swap := &fakeSwap{
		quote: model.SwapQuote{
			InAmount:  "1000000",
			OutAmount: "146810",
			Raw:       json.RawMessage(`{"outAmount":"146810"}`),
		},
		swap: model.UnsignedSwap{SwapTransaction: "AQAAbase64"},
	}
	deps.Swap = swap

	input := validate(t, GetJupiterUnsignedSwap, map[string]any{
		"inputMint":   "So11111111111111111111111111111111111111112",
		"outputMint":  "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		"inputAmount": float64(1000000),
		"publicKey":   "6DnQ5LiT6Qr2z11tEmqEPyLd1ADRJpuqBdgMGR4DRr2Q",
	})
	env := GetJupiterUnsignedSwap.Handler(context.Background(), deps, input)
	if env.IsError() {
		t.Fatalf("unexpected error: %s", env.Message)
	}
	if swap.quoteCalls != 1 || swap.swapCalls != 1 {
		t.Fatalf("expected one quote and one build call, got %d and %d", swap.quoteCalls, swap.swapCalls)
	}
	if swap.lastPK != "6DnQ5LiT6Qr2z11tEmqEPyLd1ADRJpuqBdgMGR4DRr2Q" {
		t.Fatalf("unexpected signer key: %q", swap.lastPK)
	}
	if env.Payload["swapTransaction"] != "AQAAbase64" {
		t.Fatalf("unexpected payload: %+v", env.Payload)
	}
}

func TestUnsignedSwapRejectsMalformedPublicKey(t *testing.T) {
	deps := testDeps(t)
	swap := &fakeSwap{}
	deps.Swap = swap

	input := validate(t, GetJupiterUnsignedSwap, map[string]any{
		"inputMint":   "So11111111111111111111111111111111111111112",
		"outputMint":  "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		"inputAmount": float64(1000000),
		// Long enough for the schema but not valid base58 (contains 0).
		"publicKey": "00000000000000000000000000000000000000000000",
	})
	env := GetJupiterUnsignedSwap.Handler(context.Background(), deps, input)
	if !env.IsError() || env.Message != "Invalid public key" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if swap.quoteCalls != 0 {
		t.Fatal("no provider call expected after key validation failure")
	}
}

func TestTransferUnsignedNative(t *testing.T) {
	deps := testDeps(t)
	deps.Node = &fakeNode{}

	input := validate(t, TransferUnsigned, map[string]any{
		"from":   "6DnQ5LiT6Qr2z11tEmqEPyLd1ADRJpuqBdgMGR4DRr2Q",
		"to":     "8x2dR8Mpzuz2YqyZyZjUbYWKSWesBo5jMx2Q9Y86udVk",
		"amount": float64(1),
	})
	env := TransferUnsigned.Handler(context.Background(), deps, input)
	if env.IsError() {
		t.Fatalf("unexpected error: %s", env.Message)
	}
	if env.Payload["token"] != "SOL" {
		t.Fatalf("expected native transfer, got token %v", env.Payload["token"])
	}
	serialized, _ := env.Payload["serializedTransaction"].(string)
	if serialized == "" {
		t.Fatal("expected a serialized transaction")
	}
}

func TestTransferUnsignedResolvesMintByTicker(t *testing.T) {
	deps := testDeps(t)
	deps.Node = &fakeNode{exists: true, decimals: 6}

	input := validate(t, TransferUnsigned, map[string]any{
		"from":   "6DnQ5LiT6Qr2z11tEmqEPyLd1ADRJpuqBdgMGR4DRr2Q",
		"to":     "8x2dR8Mpzuz2YqyZyZjUbYWKSWesBo5jMx2Q9Y86udVk",
		"amount": float64(100),
		"mint":   "usdc",
	})
	env := TransferUnsigned.Handler(context.Background(), deps, input)
	if env.IsError() {
		t.Fatalf("unexpected error: %s", env.Message)
	}
	if env.Payload["token"] != "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v" {
		t.Fatalf("expected resolved mint address, got %v", env.Payload["token"])
	}
}

func TestTransferUnsignedUnsupportedMint(t *testing.T) {
	deps := testDeps(t)
	deps.Node = &fakeNode{}

	input := validate(t, TransferUnsigned, map[string]any{
		"from":   "6DnQ5LiT6Qr2z11tEmqEPyLd1ADRJpuqBdgMGR4DRr2Q",
		"to":     "8x2dR8Mpzuz2YqyZyZjUbYWKSWesBo5jMx2Q9Y86udVk",
		"amount": float64(1),
		"mint":   "totally-fake-token",
	})
	env := TransferUnsigned.Handler(context.Background(), deps, input)
	if !env.IsError() || env.Message != "Invalid mint address" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestRugcheckReportPassthrough(t *testing.T) {
	deps := testDeps(t)
	risk := &fakeRisk{report: json.RawMessage(`{"score": 1, "rugged": false}`)}
	deps.Rugcheck = risk

	env := RugcheckReport.Handler(context.Background(), deps, validate(t, RugcheckReport, map[string]any{"tokenId": "ray"}))
	if env.IsError() {
		t.Fatalf("unexpected error: %s", env.Message)
	}
	if risk.lastMint != "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R" {
		t.Fatalf("expected resolved mint, got %q", risk.lastMint)
	}
	if string(env.Payload["report"].(json.RawMessage)) != `{"score": 1, "rugged": false}` {
		t.Fatalf("report must be passed through verbatim: %+v", env.Payload)
	}
}

func TestSolsnifferReportUnknownToken(t *testing.T) {
	deps := testDeps(t)
	deps.Solsniffer = &fakeRisk{}

	env := SolsnifferReport.Handler(context.Background(), deps, validate(t, SolsnifferReport, map[string]any{"tokenId": "totally-fake-token"}))
	if !env.IsError() || env.Message != "Token totally-fake-token not found" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestRegistryNamesAreUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for _, def := range All() {
		if def.Name == "" || def.Handler == nil {
			t.Fatalf("incomplete definition: %+v", def.Name)
		}
		if _, dup := seen[def.Name]; dup {
			t.Fatalf("duplicate action name %q", def.Name)
		}
		seen[def.Name] = struct{}{}
	}
}

func TestEnabledRejectsUnknownAction(t *testing.T) {
	if _, err := Enabled([]string{"get_token_info", "bogus_action"}); err == nil {
		t.Fatal("expected unknown action to be rejected")
	}

	defs, err := Enabled([]string{"get_token_list"})
	if err != nil {
		t.Fatalf("Enabled failed: %v", err)
	}
	if len(defs) != 1 || defs[0].Name != "get_token_list" {
		t.Fatalf("unexpected selection: %+v", defs)
	}
}

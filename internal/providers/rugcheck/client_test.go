package rugcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperr "github.com/DonutLabs-ai/mcp-solana-data/internal/errors"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/httpx"
)

func TestReportPathAndPassthrough(t *testing.T) {
	const body = `{"mint":"4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R","score":1,"risks":[{"name":"Low Liquidity","level":"warn"}]}`
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := New(httpx.New(2*time.Second, 0))
	c.baseURL = srv.URL

	report, err := c.Report(context.Background(), "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R")
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if gotPath != "/tokens/4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R/report" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if string(report) != body {
		t.Fatalf("report must be passed through verbatim, got %s", report)
	}
}

func TestReportUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(httpx.New(2*time.Second, 0))
	c.baseURL = srv.URL

	_, err := c.Report(context.Background(), "somemint")
	typed, ok := apperr.As(err)
	if !ok || typed.Code != apperr.CodeUnavailable {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

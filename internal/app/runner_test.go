package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/DonutLabs-ai/mcp-solana-data/internal/version"
)

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := NewRunnerWithWriters(&stdout, &stderr).Run(args)
	return stdout.String(), stderr.String(), code
}

func TestVersionCommand(t *testing.T) {
	stdout, _, code := run(t, "version")
	if code != 0 {
		t.Fatalf("unexpected exit code %d", code)
	}
	want := version.ServerName + " " + version.Version + "\n"
	if stdout != want {
		t.Fatalf("unexpected output %q, want %q", stdout, want)
	}
}

func TestToolsCommandListsDescriptors(t *testing.T) {
	stdout, _, code := run(t, "tools")
	if code != 0 {
		t.Fatalf("unexpected exit code %d", code)
	}

	var descriptors []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(stdout), &descriptors); err != nil {
		t.Fatalf("tools output is not JSON: %v", err)
	}
	if len(descriptors) != 8 {
		t.Fatalf("expected 8 action descriptors, got %d", len(descriptors))
	}
	for _, d := range descriptors {
		if d.Name == "" || d.Description == "" {
			t.Fatalf("incomplete descriptor: %+v", d)
		}
	}
}

func TestServeRejectsUnknownAction(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, stderr, code := run(t, "serve", "--enable-actions", "bogus_action")
	if code == 0 {
		t.Fatal("expected a failure exit code")
	}
	if !strings.Contains(stderr, "bogus_action") {
		t.Fatalf("stderr should name the unknown action: %q", stderr)
	}
}

func TestServeRejectsUnknownTransport(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, stderr, code := run(t, "serve", "--transport", "websocket")
	if code == 0 {
		t.Fatal("expected a failure exit code")
	}
	if !strings.Contains(stderr, "unsupported transport") {
		t.Fatalf("unexpected stderr: %q", stderr)
	}
}

func TestUnknownCommandFails(t *testing.T) {
	_, stderr, code := run(t, "definitely-not-a-command")
	if code == 0 {
		t.Fatal("expected a failure exit code")
	}
	if !strings.Contains(stderr, "Error:") {
		t.Fatalf("unexpected stderr: %q", stderr)
	}
}

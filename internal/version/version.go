package version

const (
	// ServerName is the MCP server name announced during initialization.
	ServerName = "mcp-solana-data"

	// Version is overridden at build time via -ldflags.
	Version = "0.1.0"
)

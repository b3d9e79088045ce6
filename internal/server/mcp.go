// Package server adapts action definitions to the MCP tool-calling protocol
// and serves them over stdio or SSE.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/DonutLabs-ai/mcp-solana-data/internal/action"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/version"
)

// New builds an MCP server exposing the given actions. Each tool call runs
// the uniform template: validate against the action schema, invoke the
// handler, serialize the envelope. The dispatcher always receives a
// well-formed envelope, even on panic.
func New(defs []action.Definition, deps *action.Deps, log *slog.Logger) *mcpserver.MCPServer {
	srv := mcpserver.NewMCPServer(
		version.ServerName,
		version.Version,
		mcpserver.WithToolCapabilities(true),
	)
	for _, def := range defs {
		srv.AddTool(toolFromDefinition(def), invoke(def, deps, log))
	}
	return srv
}

// ServeStdio blocks serving the MCP protocol on stdin/stdout.
func ServeStdio(srv *mcpserver.MCPServer) error {
	return mcpserver.ServeStdio(srv)
}

// ServeSSE blocks serving the MCP protocol over SSE on addr.
func ServeSSE(srv *mcpserver.MCPServer, addr string) error {
	sse := mcpserver.NewSSEServer(srv,
		mcpserver.WithSSEEndpoint("/sse"),
		mcpserver.WithMessageEndpoint("/message"),
		mcpserver.WithKeepAlive(true),
	)
	return sse.Start(addr)
}

func toolFromDefinition(def action.Definition) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}
	for _, f := range def.Schema.Fields {
		var propOpts []mcp.PropertyOption
		if f.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		if f.Description != "" {
			propOpts = append(propOpts, mcp.Description(f.Description))
		}
		switch f.Type {
		case action.FieldString:
			if f.MinLen > 0 {
				propOpts = append(propOpts, mcp.MinLength(f.MinLen))
			}
			opts = append(opts, mcp.WithString(f.Name, propOpts...))
		case action.FieldNumber:
			if f.Positive {
				propOpts = append(propOpts, mcp.Min(0))
			}
			opts = append(opts, mcp.WithNumber(f.Name, propOpts...))
		case action.FieldBoolean:
			opts = append(opts, mcp.WithBoolean(f.Name, propOpts...))
		case action.FieldStringArray:
			propOpts = append(propOpts, mcp.Items(map[string]any{"type": "string"}))
			opts = append(opts, mcp.WithArray(f.Name, propOpts...))
		}
	}
	return mcp.NewTool(def.Name, opts...)
}

func invoke(def action.Definition, deps *action.Deps, log *slog.Logger) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("action panicked", "action", def.Name, "panic", r)
				result, err = envelopeResult(action.Errorf("%s failed: internal error", def.Name))
			}
		}()

		env := run(ctx, def, deps, request.GetArguments())
		if env.IsError() {
			log.Warn("action returned error", "action", def.Name, "message", env.Message)
		} else {
			log.Debug("action succeeded", "action", def.Name)
		}
		return envelopeResult(env)
	}
}

func run(ctx context.Context, def action.Definition, deps *action.Deps, args map[string]any) action.Envelope {
	input, err := def.Schema.Validate(args)
	if err != nil {
		return action.Errorf("%s", validationMessage(err))
	}
	return def.Handler(ctx, deps, input)
}

func validationMessage(err error) string {
	// Validation errors carry the schema's own message; surface it verbatim.
	return err.Error()
}

func envelopeResult(env action.Envelope) (*mcp.CallToolResult, error) {
	body, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return mcp.NewToolResultText(string(body)), nil
}

// Package app wires configuration, the token directory, provider clients
// and the MCP server into the CLI entrypoint.
package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/DonutLabs-ai/mcp-solana-data/internal/action"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/chain"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/config"
	apperr "github.com/DonutLabs-ai/mcp-solana-data/internal/errors"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/httpx"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/providers/coingecko"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/providers/jupiter"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/providers/rugcheck"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/providers/solsniffer"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/server"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/token"
	"github.com/DonutLabs-ai/mcp-solana-data/internal/version"
)

type Runner struct {
	stdout io.Writer
	stderr io.Writer
}

func NewRunner() *Runner {
	return NewRunnerWithWriters(os.Stdout, os.Stderr)
}

func NewRunnerWithWriters(stdout, stderr io.Writer) *Runner {
	return &Runner{stdout: stdout, stderr: stderr}
}

func (r *Runner) Run(args []string) int {
	root := r.newRootCommand()
	root.SetArgs(args)
	root.SetOut(r.stdout)
	root.SetErr(r.stderr)
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		fmt.Fprintf(r.stderr, "Error: %v\n", err)
		return apperr.ExitCode(err)
	}
	return 0
}

func (r *Runner) newRootCommand() *cobra.Command {
	var flags config.GlobalFlags

	cmd := &cobra.Command{
		Use:   version.ServerName,
		Short: "MCP server exposing Solana token data, swap quotes and unsigned transactions",
	}
	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "path to config file")
	cmd.PersistentFlags().StringVar(&flags.RPCURL, "rpc-url", "", "Solana JSON-RPC endpoint")
	cmd.PersistentFlags().StringVar(&flags.Transport, "transport", "", "MCP transport: stdio or sse")
	cmd.PersistentFlags().StringVar(&flags.ListenAddr, "listen", "", "listen address for the sse transport")
	cmd.PersistentFlags().StringVar(&flags.Timeout, "timeout", "", "outbound HTTP timeout (e.g. 10s)")
	cmd.PersistentFlags().IntVar(&flags.Retries, "retries", 0, "outbound HTTP retries for transient failures")
	cmd.PersistentFlags().StringVar(&flags.EnableActions, "enable-actions", "", "comma-separated action names to expose (default all)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(r.newServeCommand(&flags))
	cmd.AddCommand(r.newToolsCommand())
	cmd.AddCommand(r.newVersionCommand())
	return cmd
}

func (r *Runner) newServeCommand(flags *config.GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(*flags)
			if err != nil {
				return apperr.Wrap(apperr.CodeUsage, "load configuration", err)
			}

			// stdout belongs to the stdio transport; logs go to stderr.
			log := newLogger(r.stderr, settings.LogLevel)

			directory, err := token.Load()
			if err != nil {
				return apperr.Wrap(apperr.CodeInternal, "load token directory", err)
			}

			httpClient := httpx.New(settings.Timeout, settings.Retries)
			deps := &action.Deps{
				Directory:  directory,
				Market:     coingecko.New(httpClient, settings.CoingeckoAPIKey),
				Swap:       jupiter.New(httpClient, settings.JupiterAPIKey),
				Rugcheck:   rugcheck.New(httpClient),
				Solsniffer: solsniffer.New(httpClient, settings.SolsnifferAPIKey),
				Node:       chain.NewClient(settings.RPCURL),
			}

			defs, err := action.Enabled(settings.EnabledActions)
			if err != nil {
				return apperr.Wrap(apperr.CodeUsage, "select actions", err)
			}

			srv := server.New(defs, deps, log)
			log.Info("starting server",
				"transport", settings.Transport,
				"actions", len(defs),
				"tokens", directory.Len(),
			)

			switch settings.Transport {
			case "sse":
				return server.ServeSSE(srv, settings.ListenAddr)
			default:
				return server.ServeStdio(srv)
			}
		},
	}
}

func (r *Runner) newToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print every action descriptor as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := json.MarshalIndent(action.All(), "", "  ")
			if err != nil {
				return apperr.Wrap(apperr.CodeInternal, "encode action descriptors", err)
			}
			fmt.Fprintln(r.stdout, string(body))
			return nil
		},
	}
}

func (r *Runner) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(r.stdout, "%s %s\n", version.ServerName, version.Version)
		},
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

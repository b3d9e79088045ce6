package main

import (
	"os"

	"github.com/DonutLabs-ai/mcp-solana-data/internal/app"
)

func main() {
	runner := app.NewRunner()
	os.Exit(runner.Run(os.Args[1:]))
}

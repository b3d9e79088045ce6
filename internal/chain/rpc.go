// Package chain provides the minimal Solana RPC surface used for unsigned
// transaction construction: blockhash fetch, account existence checks and
// mint decimals. Nothing in this package signs or submits transactions.
package chain

import (
	"context"
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"

	apperr "github.com/DonutLabs-ai/mcp-solana-data/internal/errors"
)

// RPC is the read-only node surface the transfer builder needs.
type RPC interface {
	LatestBlockhash(ctx context.Context) (solana.Hash, error)
	AccountExists(ctx context.Context, account solana.PublicKey) (bool, error)
	MintDecimals(ctx context.Context, mint solana.PublicKey) (uint8, error)
}

// Client wraps a Solana JSON-RPC endpoint.
type Client struct {
	rpc *rpc.Client
}

func NewClient(endpoint string) *Client {
	return &Client{rpc: rpc.New(endpoint)}
}

func (c *Client) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	out, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, apperr.Wrap(apperr.CodeUnavailable, "fetch latest blockhash", err)
	}
	return out.Value.Blockhash, nil
}

func (c *Client) AccountExists(ctx context.Context, account solana.PublicKey) (bool, error) {
	_, err := c.rpc.GetAccountInfo(ctx, account)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return false, nil
		}
		return false, apperr.Wrap(apperr.CodeUnavailable, "fetch account info", err)
	}
	return true, nil
}

func (c *Client) MintDecimals(ctx context.Context, mint solana.PublicKey) (uint8, error) {
	out, err := c.rpc.GetAccountInfo(ctx, mint)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return 0, apperr.New(apperr.CodeNotFound, "mint account does not exist")
		}
		return 0, apperr.Wrap(apperr.CodeUnavailable, "fetch mint account", err)
	}

	var m token.Mint
	if err := bin.NewBinDecoder(out.Value.Data.GetBinary()).Decode(&m); err != nil {
		return 0, apperr.Wrap(apperr.CodeUnavailable, "decode mint account", err)
	}
	return m.Decimals, nil
}

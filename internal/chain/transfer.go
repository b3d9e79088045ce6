package chain

import (
	"context"
	"math"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"

	apperr "github.com/DonutLabs-ai/mcp-solana-data/internal/errors"
)

// TransferRequest describes a transfer in human units. A nil Mint means a
// native SOL transfer.
type TransferRequest struct {
	From   solana.PublicKey
	To     solana.PublicKey
	Amount float64
	Mint   *solana.PublicKey
}

// UnsignedTransfer is a constructed transaction with signatures omitted.
// Serialized is the base64 wire form; the transaction cannot be submitted
// until the sender signs it.
type UnsignedTransfer struct {
	Transaction *solana.Transaction
	Serialized  string
}

// BuildUnsignedTransfer assembles a SOL or SPL-token transfer without
// signing. For SPL transfers, an associated-token-account creation
// instruction is prepended when the recipient's account does not exist yet,
// and the amount is scaled by the mint's decimals fetched at call time.
func BuildUnsignedTransfer(ctx context.Context, node RPC, req TransferRequest) (UnsignedTransfer, error) {
	if req.Amount <= 0 {
		return UnsignedTransfer{}, apperr.New(apperr.CodeUsage, "transfer amount must be positive")
	}

	var instructions []solana.Instruction
	if req.Mint == nil {
		lamports := uint64(req.Amount * float64(solana.LAMPORTS_PER_SOL))
		instructions = append(instructions,
			system.NewTransferInstruction(lamports, req.From, req.To).Build(),
		)
	} else {
		mint := *req.Mint
		fromAta, _, err := solana.FindAssociatedTokenAddress(req.From, mint)
		if err != nil {
			return UnsignedTransfer{}, apperr.Wrap(apperr.CodeInternal, "derive sender token account", err)
		}
		toAta, _, err := solana.FindAssociatedTokenAddress(req.To, mint)
		if err != nil {
			return UnsignedTransfer{}, apperr.Wrap(apperr.CodeInternal, "derive recipient token account", err)
		}

		exists, err := node.AccountExists(ctx, toAta)
		if err != nil {
			return UnsignedTransfer{}, err
		}
		if !exists {
			instructions = append(instructions,
				associatedtokenaccount.NewCreateInstruction(req.From, req.To, mint).Build(),
			)
		}

		decimals, err := node.MintDecimals(ctx, mint)
		if err != nil {
			return UnsignedTransfer{}, err
		}
		baseUnits := uint64(req.Amount * math.Pow10(int(decimals)))
		instructions = append(instructions,
			token.NewTransferInstruction(baseUnits, fromAta, toAta, req.From, nil).Build(),
		)
	}

	blockhash, err := node.LatestBlockhash(ctx)
	if err != nil {
		return UnsignedTransfer{}, err
	}

	tx, err := solana.NewTransaction(instructions, blockhash, solana.TransactionPayer(req.From))
	if err != nil {
		return UnsignedTransfer{}, apperr.Wrap(apperr.CodeInternal, "assemble transaction", err)
	}

	serialized, err := tx.ToBase64()
	if err != nil {
		return UnsignedTransfer{}, apperr.Wrap(apperr.CodeInternal, "serialize transaction", err)
	}

	return UnsignedTransfer{Transaction: tx, Serialized: serialized}, nil
}

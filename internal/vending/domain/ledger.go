package domain

import (
	"context"

	"github.com/mumeireplit/vending/internal/pkg/storage"
)

// Ledger keeps per-user coin balances. Accounts come into being on first
// reference with a zero balance and are never removed; a balance can never
// go below zero.
type Ledger interface {
	GetBalance(ctx context.Context, userID string) (uint32, error)

	FetchBalance(ctx context.Context, executor storage.Executor, userID string) (uint32, error)
	Credit(ctx context.Context, executor storage.Executor, userID string, amount uint32) (uint32, error)
	Debit(ctx context.Context, executor storage.Executor, userID string, amount uint32) (uint32, error)
}

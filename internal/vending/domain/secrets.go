package domain

import (
	"context"

	"github.com/mumeireplit/vending/internal/pkg/storage"
)

// SecretEntry is one admin-submitted pool entry. The tag is an opaque
// identifier carried by the submission format; it has no ordering or dedup
// meaning and is dropped on storage.
type SecretEntry struct {
	Tag     string
	Content string
}

// SecretVault holds the one-time redemption secrets of every catalog item.
// Each added secret is its own allocatable unit: two entries with identical
// content are issued independently and exhaust independently.
type SecretVault interface {
	AddSecrets(ctx context.Context, executor storage.Executor, itemName string, entries []SecretEntry) (int, error)
	Allocate(ctx context.Context, executor storage.Executor, itemName string) (string, error)
	CountSecrets(ctx context.Context, itemName string) (total int, issued int, err error)
}

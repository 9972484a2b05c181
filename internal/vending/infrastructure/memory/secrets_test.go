package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mumeireplit/vending/internal/pkg/storage"
	"github.com/mumeireplit/vending/internal/vending/domain"
)

func addSecrets(t *testing.T, store *Store, itemName string, contents ...string) int {
	t.Helper()

	entries := make([]domain.SecretEntry, 0, len(contents))
	for _, content := range contents {
		entries = append(entries, domain.SecretEntry{Content: content})
	}

	var added int
	err := store.WithinTransaction(context.Background(), func(ctx context.Context, executor storage.Executor) error {
		count, err := store.AddSecrets(ctx, executor, itemName, entries)
		added = count
		return err
	})
	require.NoError(t, err)

	return added
}

func TestStore_AddSecretsSkipsEmptyContents(t *testing.T) {
	t.Parallel()

	store := newSeededStore(t, domain.Item{Name: "Cola", Price: 120, Stock: 5})

	added := addSecrets(t, store, "Cola", "CODE-A", "", "CODE-B", "")
	assert.Equal(t, 2, added)

	total, issued, err := store.CountSecrets(context.Background(), "Cola")
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 0, issued)
}

func TestStore_AddSecretsUnknownItem(t *testing.T) {
	t.Parallel()

	store := newSeededStore(t)

	err := store.WithinTransaction(context.Background(), func(ctx context.Context, executor storage.Executor) error {
		_, err := store.AddSecrets(ctx, executor, "nonexistent", []domain.SecretEntry{{Content: "CODE-A"}})
		return err
	})
	assert.ErrorIs(t, err, &domain.UnknownItemError{})
}

func TestStore_AllocateNeverReissues(t *testing.T) {
	t.Parallel()

	store := newSeededStore(t, domain.Item{Name: "Cola", Price: 120, Stock: 5})
	addSecrets(t, store, "Cola", "CODE-A", "CODE-B", "CODE-C")

	seen := make(map[string]int)
	err := store.WithinTransaction(context.Background(), func(ctx context.Context, executor storage.Executor) error {
		for i := 0; i < 3; i++ {
			secret, err := store.Allocate(ctx, executor, "Cola")
			if err != nil {
				return err
			}
			seen[secret]++
		}

		_, err := store.Allocate(ctx, executor, "Cola")
		assert.ErrorIs(t, err, &domain.SecretsExhaustedError{})

		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"CODE-A": 1, "CODE-B": 1, "CODE-C": 1}, seen)
}

// Two entries with the same content are two allocatable units; issuing one
// must not exhaust the other.
func TestStore_DuplicateContentsAllocateIndependently(t *testing.T) {
	t.Parallel()

	store := newSeededStore(t, domain.Item{Name: "Cola", Price: 120, Stock: 5})
	addSecrets(t, store, "Cola", "SAME", "SAME")

	err := store.WithinTransaction(context.Background(), func(ctx context.Context, executor storage.Executor) error {
		for i := 0; i < 2; i++ {
			secret, err := store.Allocate(ctx, executor, "Cola")
			if err != nil {
				return err
			}
			assert.Equal(t, "SAME", secret)
		}

		_, err := store.Allocate(ctx, executor, "Cola")
		assert.ErrorIs(t, err, &domain.SecretsExhaustedError{})

		return nil
	})
	require.NoError(t, err)

	total, issued, err := store.CountSecrets(context.Background(), "Cola")
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 2, issued)
}

func TestStore_DeleteItemDropsPool(t *testing.T) {
	t.Parallel()

	store := newSeededStore(t, domain.Item{Name: "Cola", Price: 120, Stock: 5})
	addSecrets(t, store, "Cola", "CODE-A")

	err := store.WithinTransaction(context.Background(), func(ctx context.Context, executor storage.Executor) error {
		return store.DeleteItem(ctx, executor, "Cola")
	})
	require.NoError(t, err)

	_, _, err = store.CountSecrets(context.Background(), "Cola")
	assert.ErrorIs(t, err, &domain.UnknownItemError{})
}

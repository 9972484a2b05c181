package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mumeireplit/vending/internal/pkg/storage"
	"github.com/mumeireplit/vending/internal/vending/domain"
)

func TestStore_BalancesStartAtZero(t *testing.T) {
	t.Parallel()

	store := newSeededStore(t)

	balance, err := store.GetBalance(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), balance)
}

func TestStore_CreditAndDebit(t *testing.T) {
	t.Parallel()

	store := newSeededStore(t)

	err := store.WithinTransaction(context.Background(), func(ctx context.Context, executor storage.Executor) error {
		balance, err := store.Credit(ctx, executor, "alice", 200)
		require.NoError(t, err)
		assert.Equal(t, uint32(200), balance)

		balance, err = store.Debit(ctx, executor, "alice", 80)
		require.NoError(t, err)
		assert.Equal(t, uint32(120), balance)

		return nil
	})
	require.NoError(t, err)
}

func TestStore_DebitGuardsBalance(t *testing.T) {
	t.Parallel()

	store := newSeededStore(t)
	creditUser(t, store, "alice", 50)

	err := store.WithinTransaction(context.Background(), func(ctx context.Context, executor storage.Executor) error {
		_, err := store.Debit(ctx, executor, "alice", 51)
		return err
	})
	assert.ErrorIs(t, err, &domain.InsufficientBalanceError{})

	balance, err := store.GetBalance(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, uint32(50), balance)
}

func TestStore_ZeroAmountsRejected(t *testing.T) {
	t.Parallel()

	store := newSeededStore(t)

	err := store.WithinTransaction(context.Background(), func(ctx context.Context, executor storage.Executor) error {
		_, err := store.Credit(ctx, executor, "alice", 0)
		assert.ErrorIs(t, err, &domain.InvalidArgumentsError{})

		_, err = store.Debit(ctx, executor, "alice", 0)
		assert.ErrorIs(t, err, &domain.InvalidArgumentsError{})

		return nil
	})
	require.NoError(t, err)
}

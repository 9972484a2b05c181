package memory

import (
	"context"
	"fmt"

	"github.com/mumeireplit/vending/internal/pkg/storage"
	"github.com/mumeireplit/vending/internal/vending/domain"
)

// Accounts are created lazily: an absent user simply reads as zero, the
// first credit materializes the map entry.

func (s *Store) GetBalance(ctx context.Context, userID string) (uint32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.coins[userID], nil
}

func (s *Store) FetchBalance(ctx context.Context, executor storage.Executor, userID string) (uint32, error) {
	if err := s.own(executor); err != nil {
		return 0, err
	}

	return s.coins[userID], nil
}

func (s *Store) Credit(ctx context.Context, executor storage.Executor, userID string, amount uint32) (uint32, error) {
	if err := s.own(executor); err != nil {
		return 0, err
	}

	if amount == 0 {
		return 0, &domain.InvalidArgumentsError{Msg: "credit amount must be positive"}
	}

	s.coins[userID] += amount
	return s.coins[userID], nil
}

func (s *Store) Debit(ctx context.Context, executor storage.Executor, userID string, amount uint32) (uint32, error) {
	if err := s.own(executor); err != nil {
		return 0, err
	}

	if amount == 0 {
		return 0, &domain.InvalidArgumentsError{Msg: "debit amount must be positive"}
	}

	balance := s.coins[userID]
	if balance < amount {
		return 0, &domain.InsufficientBalanceError{Msg: fmt.Sprintf("user %s has insufficient balance", userID)}
	}

	s.coins[userID] = balance - amount
	return s.coins[userID], nil
}

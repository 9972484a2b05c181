package memory

import (
	"context"
	"fmt"

	"github.com/mumeireplit/vending/internal/pkg/storage"
	"github.com/mumeireplit/vending/internal/vending/domain"
)

func (s *Store) AddSecrets(ctx context.Context, executor storage.Executor, itemName string, entries []domain.SecretEntry) (int, error) {
	if err := s.own(executor); err != nil {
		return 0, err
	}

	state, exists := s.items[itemName]
	if !exists {
		return 0, &domain.UnknownItemError{Msg: fmt.Sprintf("item %s not found", itemName)}
	}

	added := 0
	for _, entry := range entries {
		if entry.Content == "" {
			continue
		}

		state.secrets = append(state.secrets, secretUnit{content: entry.Content})
		added++
	}

	return added, nil
}

// Allocate issues one unissued unit chosen at random. Units are tracked
// individually, so two secrets with identical content are two allocations.
func (s *Store) Allocate(ctx context.Context, executor storage.Executor, itemName string) (string, error) {
	if err := s.own(executor); err != nil {
		return "", err
	}

	state, exists := s.items[itemName]
	if !exists {
		return "", &domain.UnknownItemError{Msg: fmt.Sprintf("item %s not found", itemName)}
	}

	available := make([]int, 0, len(state.secrets))
	for i, unit := range state.secrets {
		if !unit.issued {
			available = append(available, i)
		}
	}

	if len(available) == 0 {
		return "", &domain.SecretsExhaustedError{Msg: fmt.Sprintf("item %s has no secrets left", itemName)}
	}

	picked := available[s.rng.Intn(len(available))]
	state.secrets[picked].issued = true

	return state.secrets[picked].content, nil
}

func (s *Store) CountSecrets(ctx context.Context, itemName string) (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, exists := s.items[itemName]
	if !exists {
		return 0, 0, &domain.UnknownItemError{Msg: fmt.Sprintf("item %s not found", itemName)}
	}

	issued := 0
	for _, unit := range state.secrets {
		if unit.issued {
			issued++
		}
	}

	return len(state.secrets), issued, nil
}

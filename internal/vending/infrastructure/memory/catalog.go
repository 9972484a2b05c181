package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/mumeireplit/vending/internal/pkg/storage"
	"github.com/mumeireplit/vending/internal/vending/domain"
)

func (s *Store) GetItem(ctx context.Context, name string) (domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findItem(name)
}

func (s *Store) ListItems(ctx context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Item, 0, len(s.items))
	for _, state := range s.items {
		items = append(items, state.item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})

	return items, nil
}

func (s *Store) FetchItem(ctx context.Context, executor storage.Executor, name string) (domain.Item, error) {
	if err := s.own(executor); err != nil {
		return domain.Item{}, err
	}

	return s.findItem(name)
}

func (s *Store) CreateItem(ctx context.Context, executor storage.Executor, item domain.Item) error {
	if err := s.own(executor); err != nil {
		return err
	}

	if _, exists := s.items[item.Name]; exists {
		return &domain.DuplicateItemError{Msg: fmt.Sprintf("item %s already exists", item.Name)}
	}

	s.items[item.Name] = &itemState{item: item}
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, executor storage.Executor, name string) error {
	if err := s.own(executor); err != nil {
		return err
	}

	if _, exists := s.items[name]; !exists {
		return &domain.UnknownItemError{Msg: fmt.Sprintf("item %s not found", name)}
	}

	delete(s.items, name)
	return nil
}

func (s *Store) DecrementStock(ctx context.Context, executor storage.Executor, name string) (int, error) {
	if err := s.own(executor); err != nil {
		return 0, err
	}

	state, exists := s.items[name]
	if !exists {
		return 0, &domain.UnknownItemError{Msg: fmt.Sprintf("item %s not found", name)}
	}

	if state.item.Stock <= 0 {
		return 0, &domain.OutOfStockError{Msg: fmt.Sprintf("item %s is out of stock", name)}
	}

	state.item.Stock--
	return state.item.Stock, nil
}

func (s *Store) SetStock(ctx context.Context, executor storage.Executor, name string, stock int) error {
	if err := s.own(executor); err != nil {
		return err
	}

	if stock < 0 {
		return &domain.InvalidArgumentsError{Msg: fmt.Sprintf("item %s must have a non-negative stock", name)}
	}

	state, exists := s.items[name]
	if !exists {
		return &domain.UnknownItemError{Msg: fmt.Sprintf("item %s not found", name)}
	}

	state.item.Stock = stock
	return nil
}

func (s *Store) SetPrice(ctx context.Context, executor storage.Executor, name string, price uint32) error {
	if err := s.own(executor); err != nil {
		return err
	}

	if price == 0 {
		return &domain.InvalidArgumentsError{Msg: fmt.Sprintf("item %s must have a positive price", name)}
	}

	state, exists := s.items[name]
	if !exists {
		return &domain.UnknownItemError{Msg: fmt.Sprintf("item %s not found", name)}
	}

	state.item.Price = price
	return nil
}

func (s *Store) findItem(name string) (domain.Item, error) {
	state, exists := s.items[name]
	if !exists {
		return domain.Item{}, &domain.UnknownItemError{Msg: fmt.Sprintf("item %s not found", name)}
	}

	return state.item, nil
}

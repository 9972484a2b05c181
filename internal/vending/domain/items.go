package domain

import (
	"context"
	"fmt"

	"github.com/mumeireplit/vending/internal/pkg/storage"
)

// DefaultStock is applied when an admin creates an item without an explicit
// stock count.
const DefaultStock = 5

type Item struct {
	Name  string
	Price uint32
	Stock int
}

// NewItem validates the admin-supplied fields. Price must be positive, stock
// non-negative; the name is the immutable catalog key.
func NewItem(name string, price uint32, stock int) (Item, error) {
	if name == "" {
		return Item{}, &InvalidArgumentsError{Msg: "item name must not be empty"}
	}
	if price == 0 {
		return Item{}, &InvalidArgumentsError{Msg: fmt.Sprintf("item %s must have a positive price", name)}
	}
	if stock < 0 {
		return Item{}, &InvalidArgumentsError{Msg: fmt.Sprintf("item %s must have a non-negative stock", name)}
	}

	return Item{Name: name, Price: price, Stock: stock}, nil
}

type CatalogRepository interface {
	GetItem(ctx context.Context, name string) (Item, error)
	ListItems(ctx context.Context) ([]Item, error)

	FetchItem(ctx context.Context, executor storage.Executor, name string) (Item, error)
	CreateItem(ctx context.Context, executor storage.Executor, item Item) error
	DeleteItem(ctx context.Context, executor storage.Executor, name string) error
	DecrementStock(ctx context.Context, executor storage.Executor, name string) (int, error)
	SetStock(ctx context.Context, executor storage.Executor, name string, stock int) error
	SetPrice(ctx context.Context, executor storage.Executor, name string, price uint32) error
}

package application

import (
	"context"

	"github.com/mumeireplit/vending/internal/vending/domain"
)

type InfoCase struct {
	catalog domain.CatalogRepository
	ledger  domain.Ledger
}

func NewInfoCase(catalog domain.CatalogRepository, ledger domain.Ledger) *InfoCase {
	return &InfoCase{
		catalog: catalog,
		ledger:  ledger,
	}
}

func (ic *InfoCase) GetBalance(ctx context.Context, userID string) (uint32, error) {
	return ic.ledger.GetBalance(ctx, userID)
}

func (ic *InfoCase) ListItems(ctx context.Context) ([]domain.Item, error) {
	return ic.catalog.ListItems(ctx)
}

package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	vendingmocks "github.com/mumeireplit/vending/gen/mocks/vending"
	"github.com/mumeireplit/vending/internal/vending/domain"
	"github.com/stretchr/testify/assert"
)

func TestInfoCase_GetBalance(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := vendingmocks.NewMockCatalogRepository(ctrl)
	ledger := vendingmocks.NewMockLedger(ctrl)
	ledger.EXPECT().GetBalance(gomock.Any(), "alice").Return(uint32(340), nil)

	infoCase := NewInfoCase(catalog, ledger)

	balance, err := infoCase.GetBalance(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Equal(t, uint32(340), balance)
}

func TestInfoCase_ListItems(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected := []domain.Item{
		{Name: "Cola", Price: 120, Stock: 5},
		{Name: "Tea", Price: 100, Stock: 2},
	}

	catalog := vendingmocks.NewMockCatalogRepository(ctrl)
	ledger := vendingmocks.NewMockLedger(ctrl)
	catalog.EXPECT().ListItems(gomock.Any()).Return(expected, nil)

	infoCase := NewInfoCase(catalog, ledger)

	items, err := infoCase.ListItems(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, items)
}

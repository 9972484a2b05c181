package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	storagemocks "github.com/mumeireplit/vending/gen/mocks/storage"
	vendingmocks "github.com/mumeireplit/vending/gen/mocks/vending"
	"github.com/mumeireplit/vending/internal/pkg/logging"
	"github.com/mumeireplit/vending/internal/pkg/storage"
	"github.com/mumeireplit/vending/internal/vending/domain"
)

const adminID = "8j1u"

type adminDeps struct {
	catalog   *vendingmocks.MockCatalogRepository
	ledger    *vendingmocks.MockLedger
	vault     *vendingmocks.MockSecretVault
	txManager *storagemocks.MockTxManager
}

func newAdminCaseWithMocks(ctrl *gomock.Controller) (*AdminCase, *adminDeps) {
	d := &adminDeps{
		catalog:   vendingmocks.NewMockCatalogRepository(ctrl),
		ledger:    vendingmocks.NewMockLedger(ctrl),
		vault:     vendingmocks.NewMockSecretVault(ctrl),
		txManager: storagemocks.NewMockTxManager(ctrl),
	}

	adminCase := NewAdminCase(d.catalog, d.ledger, d.vault, d.txManager, []string{adminID, "mume_dayo"}, logging.NopLogger)
	return adminCase, d
}

// executeTxFn is a helper gomock.DoAndReturn that actually invokes the TxFunc callback
func executeTxFn(ctx context.Context, txFn storage.TxFunc) error {
	return txFn(ctx, nil)
}

func TestAdminCase_CreditUser(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		actorID string
		amount  uint32

		prepareFn func(t *testing.T, d *adminDeps)

		expectedBalance uint32
		expectedErr     error
	}

	tests := []testCase{
		{
			name:    "successful credit",
			actorID: adminID,
			amount:  500,
			prepareFn: func(t *testing.T, d *adminDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.ledger.EXPECT().Credit(gomock.Any(), nil, "alice", uint32(500)).
					Return(uint32(620), nil)
			},
			expectedBalance: 620,
		},
		{
			name:        "unauthorized actor",
			actorID:     "random-user",
			amount:      500,
			prepareFn:   func(t *testing.T, d *adminDeps) {},
			expectedErr: &domain.UnauthorizedError{},
		},
		{
			name:    "invalid amount",
			actorID: adminID,
			amount:  0,
			prepareFn: func(t *testing.T, d *adminDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.ledger.EXPECT().Credit(gomock.Any(), nil, "alice", uint32(0)).
					Return(uint32(0), &domain.InvalidArgumentsError{Msg: "credit amount must be positive"})
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adminCase, d := newAdminCaseWithMocks(ctrl)
			tt.prepareFn(t, d)

			balance, err := adminCase.CreditUser(context.Background(), tt.actorID, "alice", tt.amount)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestAdminCase_CreateItem(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		actorID  string
		itemName string
		price    uint32
		stock    int

		prepareFn func(t *testing.T, d *adminDeps)

		expectedErr error
	}

	tests := []testCase{
		{
			name:     "successful creation",
			actorID:  adminID,
			itemName: "Soda",
			price:    150,
			stock:    5,
			prepareFn: func(t *testing.T, d *adminDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.catalog.EXPECT().CreateItem(gomock.Any(), nil, domain.Item{Name: "Soda", Price: 150, Stock: 5}).
					Return(nil)
			},
		},
		{
			name:        "unauthorized actor",
			actorID:     "random-user",
			itemName:    "Soda",
			price:       150,
			stock:       5,
			prepareFn:   func(t *testing.T, d *adminDeps) {},
			expectedErr: &domain.UnauthorizedError{},
		},
		{
			name:        "zero price rejected before any transaction",
			actorID:     adminID,
			itemName:    "Soda",
			price:       0,
			stock:       5,
			prepareFn:   func(t *testing.T, d *adminDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "negative stock rejected before any transaction",
			actorID:     adminID,
			itemName:    "Soda",
			price:       150,
			stock:       -1,
			prepareFn:   func(t *testing.T, d *adminDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:     "duplicate item",
			actorID:  adminID,
			itemName: "Cola",
			price:    120,
			stock:    5,
			prepareFn: func(t *testing.T, d *adminDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.catalog.EXPECT().CreateItem(gomock.Any(), nil, domain.Item{Name: "Cola", Price: 120, Stock: 5}).
					Return(&domain.DuplicateItemError{Msg: "item Cola already exists"})
			},
			expectedErr: &domain.DuplicateItemError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adminCase, d := newAdminCaseWithMocks(ctrl)
			tt.prepareFn(t, d)

			err := adminCase.CreateItem(context.Background(), tt.actorID, tt.itemName, tt.price, tt.stock)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdminCase_DeleteItem(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		actorID  string
		itemName string

		prepareFn func(t *testing.T, d *adminDeps)

		expectedErr error
	}

	tests := []testCase{
		{
			name:     "successful deletion",
			actorID:  adminID,
			itemName: "Cola",
			prepareFn: func(t *testing.T, d *adminDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.catalog.EXPECT().DeleteItem(gomock.Any(), nil, "Cola").
					Return(nil)
			},
		},
		{
			name:        "unauthorized actor",
			actorID:     "random-user",
			itemName:    "Cola",
			prepareFn:   func(t *testing.T, d *adminDeps) {},
			expectedErr: &domain.UnauthorizedError{},
		},
		{
			name:     "unknown item",
			actorID:  adminID,
			itemName: "nonexistent",
			prepareFn: func(t *testing.T, d *adminDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.catalog.EXPECT().DeleteItem(gomock.Any(), nil, "nonexistent").
					Return(&domain.UnknownItemError{Msg: "item nonexistent not found"})
			},
			expectedErr: &domain.UnknownItemError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adminCase, d := newAdminCaseWithMocks(ctrl)
			tt.prepareFn(t, d)

			err := adminCase.DeleteItem(context.Background(), tt.actorID, tt.itemName)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdminCase_AddSecrets(t *testing.T) {
	t.Parallel()

	entries := []domain.SecretEntry{
		{Tag: "1", Content: "CODE-A"},
		{Tag: "2", Content: "CODE-B"},
		{Tag: "3", Content: ""},
	}

	type testCase struct {
		name    string
		actorID string

		prepareFn func(t *testing.T, d *adminDeps)

		expectedAdded int
		expectedTotal int
		expectedErr   error
	}

	tests := []testCase{
		{
			name:    "successful add reports count and pool size",
			actorID: adminID,
			prepareFn: func(t *testing.T, d *adminDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.vault.EXPECT().AddSecrets(gomock.Any(), nil, "Cola", entries).
					Return(2, nil)
				d.vault.EXPECT().CountSecrets(gomock.Any(), "Cola").
					Return(7, 3, nil)
			},
			expectedAdded: 2,
			expectedTotal: 7,
		},
		{
			name:        "unauthorized actor",
			actorID:     "random-user",
			prepareFn:   func(t *testing.T, d *adminDeps) {},
			expectedErr: &domain.UnauthorizedError{},
		},
		{
			name:    "unknown item",
			actorID: adminID,
			prepareFn: func(t *testing.T, d *adminDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.vault.EXPECT().AddSecrets(gomock.Any(), nil, "Cola", entries).
					Return(0, &domain.UnknownItemError{Msg: "item Cola not found"})
			},
			expectedErr: &domain.UnknownItemError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adminCase, d := newAdminCaseWithMocks(ctrl)
			tt.prepareFn(t, d)

			added, total, err := adminCase.AddSecrets(context.Background(), tt.actorID, "Cola", entries)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAdded, added)
				assert.Equal(t, tt.expectedTotal, total)
			}
		})
	}
}

func TestAdminCase_AdjustItem(t *testing.T) {
	t.Parallel()

	t.Run("adjust stock authorized", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adminCase, d := newAdminCaseWithMocks(ctrl)
		d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(executeTxFn)
		d.catalog.EXPECT().SetStock(gomock.Any(), nil, "Cola", 10).
			Return(nil)

		assert.NoError(t, adminCase.AdjustStock(context.Background(), adminID, "Cola", 10))
	})

	t.Run("adjust price authorized", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adminCase, d := newAdminCaseWithMocks(ctrl)
		d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(executeTxFn)
		d.catalog.EXPECT().SetPrice(gomock.Any(), nil, "Cola", uint32(90)).
			Return(nil)

		assert.NoError(t, adminCase.AdjustPrice(context.Background(), adminID, "Cola", 90))
	})

	t.Run("adjustments gated by allow-list", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		adminCase, _ := newAdminCaseWithMocks(ctrl)

		assert.ErrorIs(t, adminCase.AdjustStock(context.Background(), "random-user", "Cola", 10), &domain.UnauthorizedError{})
		assert.ErrorIs(t, adminCase.AdjustPrice(context.Background(), "random-user", "Cola", 90), &domain.UnauthorizedError{})
	})
}

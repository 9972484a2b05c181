package application

import (
	"context"
	"fmt"

	"github.com/mumeireplit/vending/internal/pkg/logging"
	"github.com/mumeireplit/vending/internal/pkg/storage"
	"github.com/mumeireplit/vending/internal/vending/domain"
)

// AdminCase gates every catalog and ledger mutation behind a static
// allow-list of privileged identities. Authorization is plain identity
// equality; a miss changes no state.
type AdminCase struct {
	catalog   domain.CatalogRepository
	ledger    domain.Ledger
	vault     domain.SecretVault
	txManager storage.TxManager
	admins    map[string]struct{}
	logger    logging.Logger
}

func NewAdminCase(
	catalog domain.CatalogRepository,
	ledger domain.Ledger,
	vault domain.SecretVault,
	txManager storage.TxManager,
	adminIDs []string,
	logger logging.Logger,
) *AdminCase {
	admins := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return &AdminCase{
		catalog:   catalog,
		ledger:    ledger,
		vault:     vault,
		txManager: txManager,
		admins:    admins,
		logger:    logger,
	}
}

func (ac *AdminCase) authorize(actorID string) error {
	if _, ok := ac.admins[actorID]; !ok {
		return &domain.UnauthorizedError{Msg: fmt.Sprintf("user %s is not allowed to administrate the catalog", actorID)}
	}

	return nil
}

func (ac *AdminCase) CreditUser(ctx context.Context, actorID string, targetID string, amount uint32) (uint32, error) {
	if err := ac.authorize(actorID); err != nil {
		return 0, err
	}

	var newBalance uint32
	err := ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor storage.Executor) error {
		balance, err := ac.ledger.Credit(ctx, executor, targetID, amount)
		if err != nil {
			return err
		}

		newBalance = balance
		return nil
	})
	if err != nil {
		return 0, err
	}

	ac.logger.Info("credited user", "actor", actorID, "target", targetID, "amount", amount)
	return newBalance, nil
}

func (ac *AdminCase) CreateItem(ctx context.Context, actorID string, name string, price uint32, stock int) error {
	if err := ac.authorize(actorID); err != nil {
		return err
	}

	item, err := domain.NewItem(name, price, stock)
	if err != nil {
		return err
	}

	err = ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor storage.Executor) error {
		return ac.catalog.CreateItem(ctx, executor, item)
	})
	if err != nil {
		return err
	}

	ac.logger.Info("created item", "actor", actorID, "item", name, "price", price, "stock", stock)
	return nil
}

func (ac *AdminCase) DeleteItem(ctx context.Context, actorID string, name string) error {
	if err := ac.authorize(actorID); err != nil {
		return err
	}

	err := ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor storage.Executor) error {
		return ac.catalog.DeleteItem(ctx, executor, name)
	})
	if err != nil {
		return err
	}

	ac.logger.Info("deleted item", "actor", actorID, "item", name)
	return nil
}

func (ac *AdminCase) AdjustStock(ctx context.Context, actorID string, name string, stock int) error {
	if err := ac.authorize(actorID); err != nil {
		return err
	}

	return ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor storage.Executor) error {
		return ac.catalog.SetStock(ctx, executor, name, stock)
	})
}

func (ac *AdminCase) AdjustPrice(ctx context.Context, actorID string, name string, price uint32) error {
	if err := ac.authorize(actorID); err != nil {
		return err
	}

	return ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor storage.Executor) error {
		return ac.catalog.SetPrice(ctx, executor, name, price)
	})
}

// AddSecrets appends the non-empty entries to the item's pool and reports
// how many were taken along with the pool size afterwards.
func (ac *AdminCase) AddSecrets(ctx context.Context, actorID string, name string, entries []domain.SecretEntry) (added int, total int, err error) {
	if err := ac.authorize(actorID); err != nil {
		return 0, 0, err
	}

	err = ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor storage.Executor) error {
		count, err := ac.vault.AddSecrets(ctx, executor, name, entries)
		if err != nil {
			return err
		}

		added = count
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	total, _, err = ac.vault.CountSecrets(ctx, name)
	if err != nil {
		return added, 0, err
	}

	ac.logger.Info("added secrets", "actor", actorID, "item", name, "added", added, "total", total)
	return added, total, nil
}

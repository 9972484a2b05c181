package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mumeireplit/vending/internal/pkg/logging"
	"github.com/mumeireplit/vending/internal/pkg/storage"
	"github.com/mumeireplit/vending/internal/vending/domain"
)

type PurchaseCase struct {
	catalog   domain.CatalogRepository
	ledger    domain.Ledger
	vault     domain.SecretVault
	txManager storage.TxManager
	courier   domain.SecretCourier
	logger    logging.Logger
}

func NewPurchaseCase(
	catalog domain.CatalogRepository,
	ledger domain.Ledger,
	vault domain.SecretVault,
	txManager storage.TxManager,
	courier domain.SecretCourier,
	logger logging.Logger,
) *PurchaseCase {
	return &PurchaseCase{
		catalog:   catalog,
		ledger:    ledger,
		vault:     vault,
		txManager: txManager,
		courier:   courier,
		logger:    logger,
	}
}

// BuyItem runs the whole purchase inside one store transaction: lookup,
// stock guard, funds guard, then debit, stock decrement and secret
// allocation. The guards come strictly before the first mutation, so every
// error path leaves catalog, ledger and pool untouched. A dry secret pool
// does not abort the purchase; the receipt records it and the courier sends
// an exhaustion notice instead of a secret.
func (pc *PurchaseCase) BuyItem(ctx context.Context, userID string, itemName string) (domain.Receipt, error) {
	var receipt domain.Receipt

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor storage.Executor) error {
		item, err := pc.catalog.FetchItem(ctx, executor, itemName)
		if err != nil {
			return err
		}

		if item.Stock <= 0 {
			return &domain.OutOfStockError{Msg: fmt.Sprintf("item %s is out of stock", itemName)}
		}

		balance, err := pc.ledger.FetchBalance(ctx, executor, userID)
		if err != nil {
			return err
		}

		if balance < item.Price {
			return &domain.InsufficientBalanceError{Msg: fmt.Sprintf("user %s cannot afford item %s", userID, itemName)}
		}

		newBalance, err := pc.ledger.Debit(ctx, executor, userID, item.Price)
		if err != nil {
			return err
		}

		remaining, err := pc.catalog.DecrementStock(ctx, executor, itemName)
		if err != nil {
			return err
		}

		secret, err := pc.vault.Allocate(ctx, executor, itemName)
		if err != nil && !errors.Is(err, &domain.SecretsExhaustedError{}) {
			return err
		}

		receipt = domain.Receipt{
			ID:             uuid.NewString(),
			UserID:         userID,
			ItemName:       itemName,
			PricePaid:      item.Price,
			NewBalance:     newBalance,
			RemainingStock: remaining,
			Secret:         secret,
			SecretIssued:   err == nil,
		}

		return nil
	})
	if err != nil {
		return domain.Receipt{}, err
	}

	// The transaction is committed and its lock released before delivery;
	// a slow or failing courier cannot stall other purchases or undo this one.
	pc.deliver(ctx, receipt)

	return receipt, nil
}

func (pc *PurchaseCase) deliver(ctx context.Context, receipt domain.Receipt) {
	var err error
	if receipt.SecretIssued {
		err = pc.courier.DeliverSecret(ctx, receipt.UserID, receipt.ItemName, receipt.Secret)
	} else {
		err = pc.courier.DeliverExhaustionNotice(ctx, receipt.UserID, receipt.ItemName)
	}

	if err != nil {
		pc.logger.Error("failed to hand off secret delivery",
			"user", receipt.UserID, "item", receipt.ItemName, "error", err.Error())
	}
}

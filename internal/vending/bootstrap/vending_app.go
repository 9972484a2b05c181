package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mumeireplit/vending/internal/pkg/logging"
	"github.com/mumeireplit/vending/internal/pkg/storage"
	"github.com/mumeireplit/vending/internal/vending/application"
	"github.com/mumeireplit/vending/internal/vending/domain"
	httpwrap "github.com/mumeireplit/vending/internal/vending/http"
	"github.com/mumeireplit/vending/internal/vending/infrastructure/delivery"
	"github.com/mumeireplit/vending/internal/vending/infrastructure/memory"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 5 * time.Second
)

type VendingApp struct {
	cfg    VendingConfig
	logger logging.Logger

	server *http.Server
}

func NewVendingApp(cfg VendingConfig, logger logging.Logger) *VendingApp {
	return &VendingApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *VendingApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg

	seed := DefaultCatalog()
	if cfg.CatalogSeedPath != "" {
		loaded, err := LoadCatalogSeed(cfg.CatalogSeedPath)
		if err != nil {
			return err
		}
		seed = loaded
	}

	store := memory.NewStore(logger)
	if err := seedCatalog(ctx, store, seed); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	courier := delivery.NewDMCourier(cfg.DeliveryQueueSize, logger)

	purchaseCase := application.NewPurchaseCase(store, store, store, store, courier, logger)
	adminCase := application.NewAdminCase(store, store, store, store, cfg.AdminUsers, logger)
	infoCase := application.NewInfoCase(store, store)

	vendingHandler := httpwrap.NewVendingHandler(purchaseCase, infoCase)
	adminHandler := httpwrap.NewAdminHandler(adminCase)

	a.server = &http.Server{
		Addr:    cfg.HttpPort,
		Handler: httpwrap.NewRouter(vendingHandler, adminHandler),
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return courier.Run(groupCtx)
	})

	group.Go(func() error {
		logger.Info("Starting server", "port", cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("error while starting http server: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		a.Shutdown()
		return nil
	})

	return group.Wait()
}

func (a *VendingApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}
}

func seedCatalog(ctx context.Context, store *memory.Store, items []domain.Item) error {
	return store.WithinTransaction(ctx, func(ctx context.Context, executor storage.Executor) error {
		for _, item := range items {
			if err := store.CreateItem(ctx, executor, item); err != nil {
				return err
			}
		}

		return nil
	})
}

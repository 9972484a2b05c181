package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mumeireplit/vending/internal/pkg/env"
	"github.com/mumeireplit/vending/internal/pkg/logging"
	"github.com/mumeireplit/vending/internal/vending/bootstrap"
)

const defaultDeliveryQueueSize = 64

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	httpPort := ":8080"
	adminUsers := "8j1u,mume_dayo"
	seedPath := ""
	deliveryQueueSize := defaultDeliveryQueueSize

	env.TrySetFromEnv(env.EnvHttpPort, &httpPort)
	env.TrySetFromEnv(env.EnvAdminUsers, &adminUsers)
	env.TrySetFromEnv(env.EnvCatalogSeedPath, &seedPath)
	env.TrySetIntFromEnv(env.EnvDeliveryQueueSize, &deliveryQueueSize)

	if deliveryQueueSize <= 0 {
		deliveryQueueSize = defaultDeliveryQueueSize
	}

	cfg := bootstrap.VendingConfig{
		HttpPort:          httpPort,
		AdminUsers:        splitList(adminUsers),
		CatalogSeedPath:   seedPath,
		DeliveryQueueSize: deliveryQueueSize,
	}

	app := bootstrap.NewVendingApp(cfg, defaultLogger)
	if err := app.Run(mainCtx); err != nil {
		defaultLogger.Error("vending app stopped", "error", err.Error())
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}

	return list
}

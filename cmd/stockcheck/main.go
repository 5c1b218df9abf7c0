// Command stockcheck queues a low stock alert for the shop admin and
// optionally writes the same listing to an xlsx workbook.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/logger"
	"github.com/polkiloo/storefront/internal/storage/postgres"
	"github.com/polkiloo/storefront/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		alerts *usecase.NotificationUseCase
		cfg    *config.Config
		log    *slog.Logger
	)
	app := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		config.Module,
		logger.Module,
		postgres.Module,
		fx.Provide(usecase.NewNotificationUseCase),
		fx.Populate(&alerts, &cfg, &log),
	)
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start stockcheck: %v\n", err)
		os.Exit(1)
	}

	err := check(ctx, alerts, cfg.LowStockThreshold, cfg.LowStockReport, log)

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if stopErr := app.Stop(stopCtx); stopErr != nil {
		fmt.Fprintf(os.Stderr, "failed to stop stockcheck: %v\n", stopErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "stock check failed: %v\n", err)
		os.Exit(1)
	}
}

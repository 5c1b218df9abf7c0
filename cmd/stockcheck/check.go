package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/polkiloo/storefront/internal/report"
	"github.com/polkiloo/storefront/internal/usecase"
)

type alertEnqueuer interface {
	EnqueueLowStockAlert(ctx context.Context, threshold int) (*usecase.LowStockAlert, error)
}

func check(ctx context.Context, alerts alertEnqueuer, threshold int, reportPath string, logger *slog.Logger) error {
	alert, err := alerts.EnqueueLowStockAlert(ctx, threshold)
	if err != nil {
		return fmt.Errorf("enqueue low stock alert: %w", err)
	}

	attrs := []any{slog.Int("threshold", threshold), slog.Int("products", len(alert.Products))}
	if alert.Notification != nil {
		attrs = append(attrs, slog.Int64("notification_id", alert.Notification.ID))
	}
	logger.Info("stock check complete", attrs...)

	if reportPath == "" {
		return nil
	}
	return writeReport(reportPath, alert, threshold)
}

func writeReport(path string, alert *usecase.LowStockAlert, threshold int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close report: %w", closeErr)
		}
	}()
	if err := report.WriteLowStock(f, alert.Products, threshold); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

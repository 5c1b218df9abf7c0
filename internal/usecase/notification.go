package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// NotificationUseCase exposes the outbox to the dispatcher and raises alerts.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
	catalog       repository.CatalogRepository
	shop          config.ShopInfo
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(notifications repository.NotificationRepository, catalog repository.CatalogRepository, cfg *config.Config) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications, catalog: catalog, shop: cfg.Shop}
}

// ClaimDue returns a batch of deliverable notifications leased to the caller.
func (u *NotificationUseCase) ClaimDue(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error) {
	return u.notifications.ClaimDue(ctx, limit, lease)
}

// MarkSent records a successful delivery.
func (u *NotificationUseCase) MarkSent(ctx context.Context, id int64) error {
	return u.notifications.MarkSent(ctx, id)
}

// MarkFailed schedules another attempt.
func (u *NotificationUseCase) MarkFailed(ctx context.Context, id int64, attempts int, next time.Time, lastErr string) error {
	return u.notifications.MarkFailed(ctx, id, attempts, next, lastErr)
}

// MarkDead stops retrying a notification.
func (u *NotificationUseCase) MarkDead(ctx context.Context, id int64, attempts int, lastErr string) error {
	return u.notifications.MarkDead(ctx, id, attempts, lastErr)
}

// LowStockAlert is the result of a stock check.
type LowStockAlert struct {
	Products     []model.Product
	Notification *model.Notification
}

// EnqueueLowStockAlert queues an alert listing products at or below threshold.
// Nothing is queued when every product is sufficiently stocked.
func (u *NotificationUseCase) EnqueueLowStockAlert(ctx context.Context, threshold int) (*LowStockAlert, error) {
	products, err := u.catalog.LowStockProducts(ctx, threshold)
	if err != nil {
		return nil, err
	}
	alert := &LowStockAlert{Products: products}
	if len(products) == 0 || u.shop.AdminEmail == "" {
		return alert, nil
	}

	queued, err := u.notifications.Enqueue(ctx, LowStockNotification(u.shop.AdminEmail, products, threshold))
	if err != nil {
		return nil, err
	}
	alert.Notification = queued
	return alert, nil
}

// LowStockNotification renders the alert mail for products.
func LowStockNotification(recipient string, products []model.Product, threshold int) model.Notification {
	var body strings.Builder
	fmt.Fprintf(&body, "The following products have %d or fewer units in stock:\n\n", threshold)
	for _, p := range products {
		fmt.Fprintf(&body, "- %s (%s): %d left\n", p.Name, p.ID, p.Stock)
	}
	return model.Notification{
		Kind:      model.NotificationLowStock,
		Recipient: recipient,
		Subject:   fmt.Sprintf("Low stock alert: %d products", len(products)),
		Body:      body.String(),
	}
}

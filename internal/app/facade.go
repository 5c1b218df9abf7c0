package app

import (
	"context"
	"time"

	"github.com/polkiloo/storefront/internal/adapter/mailer"
	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/usecase"
)

// HealthChecker reports whether a backing store answers.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Probes checks every store in order and reports the first failure.
type Probes []HealthChecker

func (p Probes) HealthCheck(ctx context.Context) error {
	for _, probe := range p {
		if err := probe.HealthCheck(ctx); err != nil {
			return err
		}
	}
	return nil
}

type StorefrontFacade struct {
	catalog       *usecase.CatalogUseCase
	carts         *usecase.CartUseCase
	orders        *usecase.OrderUseCase
	contacts      *usecase.ContactUseCase
	notifications *usecase.NotificationUseCase
	mailer        mailer.Mailer
	health        HealthChecker
}

func NewStorefrontFacade(
	catalog *usecase.CatalogUseCase,
	carts *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	contacts *usecase.ContactUseCase,
	notifications *usecase.NotificationUseCase,
	m mailer.Mailer,
	health HealthChecker,
) *StorefrontFacade {
	return &StorefrontFacade{
		catalog:       catalog,
		carts:         carts,
		orders:        orders,
		contacts:      contacts,
		notifications: notifications,
		mailer:        m,
		health:        health,
	}
}

func (f *StorefrontFacade) Home(ctx context.Context) (*usecase.HomePage, error) {
	return f.catalog.Home(ctx)
}

func (f *StorefrontFacade) Products(ctx context.Context, q usecase.ProductListQuery) (*usecase.ProductPage, error) {
	return f.catalog.ListProducts(ctx, q)
}

func (f *StorefrontFacade) ProductDetail(ctx context.Context, id string) (*usecase.ProductDetail, error) {
	return f.catalog.ProductDetail(ctx, id)
}

func (f *StorefrontFacade) Search(ctx context.Context, query string) ([]model.Product, error) {
	return f.catalog.Search(ctx, query)
}

func (f *StorefrontFacade) Services(ctx context.Context) ([]model.Service, error) {
	return f.catalog.Services(ctx)
}

func (f *StorefrontFacade) LowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	return f.catalog.LowStock(ctx, threshold)
}

func (f *StorefrontFacade) Cart(ctx context.Context, sessionID string) (usecase.CartResult, error) {
	return f.carts.Summary(ctx, sessionID)
}

func (f *StorefrontFacade) AddToCart(ctx context.Context, sessionID, productID string, quantity int) (usecase.CartResult, error) {
	return f.carts.Add(ctx, sessionID, productID, quantity)
}

func (f *StorefrontFacade) RemoveFromCart(ctx context.Context, sessionID, productID string) (usecase.CartResult, error) {
	return f.carts.Remove(ctx, sessionID, productID)
}

func (f *StorefrontFacade) UpdateCartItem(ctx context.Context, sessionID, productID string, quantity int) (usecase.CartResult, error) {
	return f.carts.UpdateQuantity(ctx, sessionID, productID, quantity)
}

func (f *StorefrontFacade) PlaceOrder(ctx context.Context, sessionID string, checkout model.Checkout) (*usecase.PlaceOrderResult, error) {
	return f.orders.PlaceOrder(ctx, sessionID, checkout)
}

func (f *StorefrontFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *StorefrontFacade) UpdateOrder(ctx context.Context, id string, update model.OrderUpdate) (*model.Order, error) {
	return f.orders.Update(ctx, id, update)
}

func (f *StorefrontFacade) ShopInfo() config.ShopInfo {
	return f.contacts.Shop()
}

func (f *StorefrontFacade) SubmitContact(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	return f.contacts.Submit(ctx, msg)
}

func (f *StorefrontFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

func (f *StorefrontFacade) DueNotifications(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error) {
	return f.notifications.ClaimDue(ctx, limit, lease)
}

func (f *StorefrontFacade) DeliverNotification(ctx context.Context, n model.Notification) error {
	return f.mailer.Send(ctx, n)
}

func (f *StorefrontFacade) MarkNotificationSent(ctx context.Context, id int64) error {
	return f.notifications.MarkSent(ctx, id)
}

func (f *StorefrontFacade) RetryNotification(ctx context.Context, id int64, attempts int, next time.Time, lastErr string) error {
	return f.notifications.MarkFailed(ctx, id, attempts, next, lastErr)
}

func (f *StorefrontFacade) BuryNotification(ctx context.Context, id int64, attempts int, lastErr string) error {
	return f.notifications.MarkDead(ctx, id, attempts, lastErr)
}

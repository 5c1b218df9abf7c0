package handlers

import (
	"context"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/usecase"
)

// CatalogFacade serves read-only catalog pages.
type CatalogFacade interface {
	Home(ctx context.Context) (*usecase.HomePage, error)
	Products(ctx context.Context, q usecase.ProductListQuery) (*usecase.ProductPage, error)
	ProductDetail(ctx context.Context, id string) (*usecase.ProductDetail, error)
	Search(ctx context.Context, query string) ([]model.Product, error)
	Services(ctx context.Context) ([]model.Service, error)
	LowStock(ctx context.Context, threshold int) ([]model.Product, error)
}

// CartFacade mutates the session cart.
type CartFacade interface {
	Cart(ctx context.Context, sessionID string) (usecase.CartResult, error)
	AddToCart(ctx context.Context, sessionID, productID string, quantity int) (usecase.CartResult, error)
	RemoveFromCart(ctx context.Context, sessionID, productID string) (usecase.CartResult, error)
	UpdateCartItem(ctx context.Context, sessionID, productID string, quantity int) (usecase.CartResult, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, sessionID string, checkout model.Checkout) (*usecase.PlaceOrderResult, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	UpdateOrder(ctx context.Context, id string, update model.OrderUpdate) (*model.Order, error)
}

// ContactFacade handles shop info and visitor enquiries.
type ContactFacade interface {
	ShopInfo() config.ShopInfo
	SubmitContact(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error)
}

// HealthFacade reports backing store health.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	CatalogFacade
	CartFacade
	OrderFacade
	ContactFacade
	HealthFacade
}

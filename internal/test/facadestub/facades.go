// Package facadestub holds controllable handler facades for HTTP tests.
package facadestub

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/cart"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/usecase"
)

// CatalogFacadeStub serves canned catalog pages.
type CatalogFacadeStub struct {
	HomeFn     func(context.Context) (*usecase.HomePage, error)
	ProductsFn func(context.Context, usecase.ProductListQuery) (*usecase.ProductPage, error)
	DetailFn   func(context.Context, string) (*usecase.ProductDetail, error)
	SearchFn   func(context.Context, string) ([]model.Product, error)
	ServicesFn func(context.Context) ([]model.Service, error)
	LowStockFn func(context.Context, int) ([]model.Product, error)
}

// Home returns configured landing page or an empty one.
func (s CatalogFacadeStub) Home(ctx context.Context) (*usecase.HomePage, error) {
	if s.HomeFn != nil {
		return s.HomeFn(ctx)
	}
	return &usecase.HomePage{}, nil
}

// Products returns configured listing or a single empty page.
func (s CatalogFacadeStub) Products(ctx context.Context, q usecase.ProductListQuery) (*usecase.ProductPage, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, q)
	}
	return &usecase.ProductPage{Page: 1, NumPages: 1}, nil
}

// ProductDetail returns configured detail or ErrNotFound.
func (s CatalogFacadeStub) ProductDetail(ctx context.Context, id string) (*usecase.ProductDetail, error) {
	if s.DetailFn != nil {
		return s.DetailFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// Search returns configured results or none.
func (s CatalogFacadeStub) Search(ctx context.Context, query string) ([]model.Product, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query)
	}
	return []model.Product{}, nil
}

// Services returns configured services or none.
func (s CatalogFacadeStub) Services(ctx context.Context) ([]model.Service, error) {
	if s.ServicesFn != nil {
		return s.ServicesFn(ctx)
	}
	return []model.Service{}, nil
}

// LowStock returns configured products or none.
func (s CatalogFacadeStub) LowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	if s.LowStockFn != nil {
		return s.LowStockFn(ctx, threshold)
	}
	return []model.Product{}, nil
}

// CartFacadeStub returns canned carts.
type CartFacadeStub struct {
	CartFn   func(context.Context, string) (usecase.CartResult, error)
	AddFn    func(context.Context, string, string, int) (usecase.CartResult, error)
	RemoveFn func(context.Context, string, string) (usecase.CartResult, error)
	UpdateFn func(context.Context, string, string, int) (usecase.CartResult, error)
}

func emptyCartResult() usecase.CartResult {
	c := cart.New()
	return usecase.CartResult{Cart: c, Totals: c.Totals()}
}

// Cart returns configured cart or an empty one.
func (s CartFacadeStub) Cart(ctx context.Context, sessionID string) (usecase.CartResult, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, sessionID)
	}
	return emptyCartResult(), nil
}

// AddToCart delegates to AddFn or returns a one line cart.
func (s CartFacadeStub) AddToCart(ctx context.Context, sessionID, productID string, quantity int) (usecase.CartResult, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, sessionID, productID, quantity)
	}
	c, _ := cart.New().Add(cart.Product{ID: productID, Name: productID, Price: decimal.NewFromInt(10)}, quantity)
	return usecase.CartResult{Cart: c, Totals: c.Totals(), Message: productID + " added to cart!"}, nil
}

// RemoveFromCart delegates to RemoveFn or returns an empty cart.
func (s CartFacadeStub) RemoveFromCart(ctx context.Context, sessionID, productID string) (usecase.CartResult, error) {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, sessionID, productID)
	}
	return emptyCartResult(), nil
}

// UpdateCartItem delegates to UpdateFn or returns an empty cart.
func (s CartFacadeStub) UpdateCartItem(ctx context.Context, sessionID, productID string, quantity int) (usecase.CartResult, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, sessionID, productID, quantity)
	}
	return emptyCartResult(), nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn  func(context.Context, string, model.Checkout) (*usecase.PlaceOrderResult, error)
	OrderFn  func(context.Context, string) (*model.Order, error)
	UpdateFn func(context.Context, string, model.OrderUpdate) (*model.Order, error)
}

// PlaceOrder delegates to PlaceFn or returns a fixed order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, sessionID string, checkout model.Checkout) (*usecase.PlaceOrderResult, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, sessionID, checkout)
	}
	return &usecase.PlaceOrderResult{
		Order:      &model.Order{ID: "NG20240501ABCDEF", Total: decimal.NewFromInt(25), Status: model.OrderStatusNew},
		MomoNumber: "0597427569",
	}, nil
}

// Order delegates to OrderFn or returns ErrNotFound.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateOrder delegates to UpdateFn or returns ErrNotFound.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id string, update model.OrderUpdate) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	return nil, domainErrors.ErrNotFound
}

// ContactFacadeStub stores submitted messages.
type ContactFacadeStub struct {
	Info     config.ShopInfo
	SubmitFn func(context.Context, model.ContactMessage) (*model.ContactMessage, error)
}

// ShopInfo returns configured shop details.
func (s ContactFacadeStub) ShopInfo() config.ShopInfo {
	return s.Info
}

// SubmitContact delegates to SubmitFn or echoes the message.
func (s ContactFacadeStub) SubmitContact(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, msg)
	}
	msg.ID = 1
	return &msg, nil
}

// HealthFacadeStub reports the configured error.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns Err.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// StorefrontFacadeStub aggregates all handler facade stubs.
type StorefrontFacadeStub struct {
	CatalogFacadeStub
	CartFacadeStub
	OrderFacadeStub
	ContactFacadeStub
	HealthFacadeStub
}

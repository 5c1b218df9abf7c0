package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// PlaceOrderParams carries everything persisted atomically by PlaceOrder.
type PlaceOrderParams struct {
	Order        model.Order
	Checkout     model.Checkout
	Items        []model.OrderItem
	Notification *model.Notification
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// PlaceOrder upserts the customer by phone, inserts the order with its
	// items and enqueues the notification in a single transaction.
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// Update applies the edit only while the order is still in status from.
	Update(ctx context.Context, id string, from model.OrderStatus, update model.OrderUpdate) error
}

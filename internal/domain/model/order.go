package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "NEW"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusNew:        {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:      {OrderStatusCompleted, OrderStatusCancelled},
}

// Valid reports whether status is a known value.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the order may move from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentMethod is the way the customer intends to pay.
type PaymentMethod string

// PaymentMethodMomo is the only method offered at checkout.
const PaymentMethodMomo PaymentMethod = "MOMO"

// PaymentStatus tracks settlement of an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Valid reports whether status is a known value.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

// Customer is identified by phone number.
type Customer struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
}

// Order is a placed purchase.
type Order struct {
	ID            string
	CustomerID    int64
	Customer      Customer
	Subtotal      decimal.Decimal
	ShippingCost  decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	Status        OrderStatus
	CustomerNotes string
	AdminNote     string
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem captures a product line with its price at purchase time.
type OrderItem struct {
	ID              int64
	OrderID         string
	ProductID       string
	ProductName     string
	Quantity        int
	PriceAtPurchase decimal.Decimal
}

// LineTotal is quantity multiplied by purchase price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Checkout holds visitor supplied details for order placement.
type Checkout struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// OrderUpdate is an admin edit of an existing order.
type OrderUpdate struct {
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	AdminNote     *string
}

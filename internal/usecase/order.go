package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/cart"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

const maxOrderIDAttempts = 3

// PlaceOrderResult is returned to the visitor after checkout.
type PlaceOrderResult struct {
	Order      *model.Order
	MomoNumber string
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
	carts  repository.CartStore
	shop   config.ShopInfo
	logger *slog.Logger
	now    func() time.Time
	newID  func(time.Time) string
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, carts repository.CartStore, cfg *config.Config, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		orders: orders,
		carts:  carts,
		shop:   cfg.Shop,
		logger: logger,
		now:    time.Now,
		newID:  NewOrderID,
	}
}

// NewOrderID formats "NG", the calendar date and six random upper-case hex digits.
func NewOrderID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "NG" + now.Format("20060102") + strings.ToUpper(random[:6])
}

func normalizeCheckout(c model.Checkout) model.Checkout {
	return model.Checkout{
		Name:  strings.TrimSpace(c.Name),
		Phone: strings.TrimSpace(c.Phone),
		Email: strings.TrimSpace(c.Email),
		Notes: strings.TrimSpace(c.Notes),
	}
}

// PlaceOrder turns the session cart into an order and clears the cart.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, sessionID string, checkout model.Checkout) (*PlaceOrderResult, error) {
	current, err := u.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current.IsEmpty() {
		return nil, domainErrors.ErrEmptyCart
	}

	checkout = normalizeCheckout(checkout)
	if checkout.Name == "" || checkout.Phone == "" {
		return nil, domainErrors.ErrInvalidCheckout
	}

	lines := current.Lines()
	items := make([]model.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, model.OrderItem{
			ProductID:       line.ProductID,
			ProductName:     line.Name,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.Price,
		})
	}
	total := current.Total()

	var order *model.Order
	for attempt := 1; attempt <= maxOrderIDAttempts; attempt++ {
		id := u.newID(u.now())
		params := repository.PlaceOrderParams{
			Order: model.Order{
				ID:            id,
				Subtotal:      total,
				ShippingCost:  decimal.Zero,
				Total:         total,
				PaymentMethod: model.PaymentMethodMomo,
				PaymentStatus: model.PaymentStatusPending,
				Status:        model.OrderStatusNew,
				CustomerNotes: checkout.Notes,
			},
			Checkout:     checkout,
			Items:        items,
			Notification: u.orderNotification(id, checkout, lines, total),
		}

		order, err = u.orders.PlaceOrder(ctx, params)
		if !errors.Is(err, domainErrors.ErrAlreadyExists) {
			break
		}
		u.logger.Warn("order id collision", slog.String("order_id", id), slog.Int("attempt", attempt))
	}
	if err != nil {
		return nil, err
	}

	if err := u.carts.Delete(ctx, sessionID); err != nil {
		u.logger.Error("failed to clear cart after order", slog.String("order_id", order.ID), slog.String("error", err.Error()))
	}
	u.logger.Info("order placed", slog.String("order_id", order.ID), slog.String("total", order.Total.StringFixed(2)))

	return &PlaceOrderResult{Order: order, MomoNumber: u.shop.MomoNumber}, nil
}

func (u *OrderUseCase) orderNotification(id string, checkout model.Checkout, lines []cart.Item, total decimal.Decimal) *model.Notification {
	if u.shop.AdminEmail == "" {
		return nil
	}
	var body strings.Builder
	fmt.Fprintf(&body, "Order: %s\n", id)
	fmt.Fprintf(&body, "Customer: %s (%s)\n", checkout.Name, checkout.Phone)
	if checkout.Email != "" {
		fmt.Fprintf(&body, "Email: %s\n", checkout.Email)
	}
	body.WriteString("Items:\n")
	for _, line := range lines {
		fmt.Fprintf(&body, "- %d x %s @ %s = %s\n", line.Quantity, line.Name, line.Price.StringFixed(2), line.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(&body, "Total: %s\n", total.StringFixed(2))
	if checkout.Notes != "" {
		fmt.Fprintf(&body, "Notes: %s\n", checkout.Notes)
	}
	fmt.Fprintf(&body, "Payment: mobile money to %s\n", u.shop.MomoNumber)

	return &model.Notification{
		Kind:      model.NotificationOrderPlaced,
		Recipient: u.shop.AdminEmail,
		Subject:   fmt.Sprintf("New order %s", id),
		Body:      body.String(),
	}
}

// Get returns an order with its items.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// Update applies an admin edit. Status changes must follow the order lifecycle
// and payment is frozen once the order is completed or cancelled.
func (u *OrderUseCase) Update(ctx context.Context, id string, update model.OrderUpdate) (*model.Order, error) {
	if update.Status != nil && !update.Status.Valid() {
		return nil, domainErrors.ErrUnknownStatus
	}
	if update.PaymentStatus != nil && !update.PaymentStatus.Valid() {
		return nil, domainErrors.ErrUnknownStatus
	}

	current, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Status != nil {
		if *update.Status == current.Status {
			update.Status = nil
		} else if !current.Status.CanTransitionTo(*update.Status) {
			return nil, domainErrors.ErrInvalidStatusTransition
		}
	}
	if update.PaymentStatus != nil {
		if *update.PaymentStatus == current.PaymentStatus {
			update.PaymentStatus = nil
		} else if current.Status.Terminal() {
			return nil, domainErrors.ErrInvalidStatusTransition
		}
	}
	if update.Status == nil && update.PaymentStatus == nil && update.AdminNote == nil {
		return current, nil
	}

	if err := u.orders.Update(ctx, id, current.Status, update); err != nil {
		return nil, err
	}
	if update.Status != nil {
		u.logger.Info("order status changed",
			slog.String("order_id", id),
			slog.String("from", string(current.Status)),
			slog.String("to", string(*update.Status)),
		)
	}
	if update.PaymentStatus != nil {
		u.logger.Info("order payment changed",
			slog.String("order_id", id),
			slog.String("from", string(current.PaymentStatus)),
			slog.String("to", string(*update.PaymentStatus)),
		)
	}
	return u.orders.GetByID(ctx, id)
}

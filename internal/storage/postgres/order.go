package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

func (r *orderRepository) PlaceOrder(ctx context.Context, params repository.PlaceOrderParams) (*model.Order, error) {
	order := params.Order
	order.Items = make([]model.OrderItem, 0, len(params.Items))

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const upsertCustomer = `INSERT INTO customers (name, phone, email) VALUES ($1, $2, $3)
                                ON CONFLICT (phone) DO UPDATE
                                SET name = EXCLUDED.name,
                                    email = COALESCE(NULLIF(EXCLUDED.email, ''), customers.email)
                                RETURNING id, email, created_at`
		customer := model.Customer{Name: params.Checkout.Name, Phone: params.Checkout.Phone}
		if err := tx.QueryRow(ctx, upsertCustomer, params.Checkout.Name, params.Checkout.Phone, params.Checkout.Email).
			Scan(&customer.ID, &customer.Email, &customer.CreatedAt); err != nil {
			return fmt.Errorf("upsert customer: %w", err)
		}
		order.CustomerID = customer.ID
		order.Customer = customer

		const insertOrder = `INSERT INTO orders (id, customer_id, subtotal, shipping_cost, total, payment_method,
                                                 payment_status, status, customer_notes)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                             RETURNING created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder, order.ID, order.CustomerID, order.Subtotal, order.ShippingCost, order.Total,
			order.PaymentMethod, order.PaymentStatus, order.Status, order.CustomerNotes).
			Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrAlreadyExists
			}
			return fmt.Errorf("insert order: %w", err)
		}

		for _, item := range params.Items {
			var name string
			if err := tx.QueryRow(ctx, `SELECT name FROM products WHERE id=$1`, item.ProductID).Scan(&name); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("%w: %s", domainErrors.ErrProductNotFound, item.ProductID)
				}
				return fmt.Errorf("lookup product: %w", err)
			}

			const insertItem = `INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase)
                                VALUES ($1, $2, $3, $4) RETURNING id`
			item.OrderID = order.ID
			item.ProductName = name
			if err := tx.QueryRow(ctx, insertItem, order.ID, item.ProductID, item.Quantity, item.PriceAtPurchase).Scan(&item.ID); err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
			order.Items = append(order.Items, item)
		}

		if params.Notification != nil {
			if _, err := enqueueNotification(ctx, tx, *params.Notification); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT o.id, o.customer_id, c.name, c.phone, c.email, o.subtotal, o.shipping_cost, o.total,
                          o.payment_method, o.payment_status, o.status, o.customer_notes, o.admin_note,
                          o.created_at, o.updated_at
                   FROM orders o JOIN customers c ON c.id = o.customer_id
                   WHERE o.id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.CustomerID, &o.Customer.Name, &o.Customer.Phone,
		&o.Customer.Email, &o.Subtotal, &o.ShippingCost, &o.Total, &o.PaymentMethod, &o.PaymentStatus, &o.Status,
		&o.CustomerNotes, &o.AdminNote, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	o.Customer.ID = o.CustomerID

	const itemsQuery = `SELECT i.id, i.order_id, i.product_id, p.name, i.quantity, i.price_at_purchase
                        FROM order_items i JOIN products p ON p.id = i.product_id
                        WHERE i.order_id=$1 ORDER BY i.id`
	rows, err := r.storage.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.PriceAtPurchase); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Update(ctx context.Context, id string, from model.OrderStatus, update model.OrderUpdate) error {
	const query = `UPDATE orders
                   SET status = COALESCE($3, status),
                       admin_note = COALESCE($4, admin_note),
                       payment_status = COALESCE($5, payment_status),
                       updated_at = NOW()
                   WHERE id=$1 AND status=$2`
	tag, err := r.storage.pool.Exec(ctx, query, id, from, update.Status, update.AdminNote, update.PaymentStatus)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrInvalidStatusTransition
	}
	return nil
}

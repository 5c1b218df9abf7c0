package dto

import "time"

// OrderUpdateRequest is an admin edit. Absent fields are left unchanged.
type OrderUpdateRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
	AdminNote     *string `json:"admin_note"`
}

// CustomerResponse describes the ordering customer.
type CustomerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// OrderItemResponse is one purchased line.
type OrderItemResponse struct {
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
	LineTotal       float64 `json:"line_total"`
}

// OrderResponse is the admin view of an order.
type OrderResponse struct {
	ID            string              `json:"id"`
	Customer      CustomerResponse    `json:"customer"`
	Subtotal      float64             `json:"subtotal"`
	ShippingCost  float64             `json:"shipping_cost"`
	Total         float64             `json:"total"`
	PaymentMethod string              `json:"payment_method"`
	PaymentStatus string              `json:"payment_status"`
	Status        string              `json:"status"`
	CustomerNotes string              `json:"customer_notes,omitempty"`
	AdminNote     string              `json:"admin_note,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// LowStockQuery selects the report threshold.
type LowStockQuery struct {
	Threshold *int `form:"threshold"`
}

package dto

// CartItemRequest identifies a cart line. Quantity defaults to one.
type CartItemRequest struct {
	ProductID string `json:"product_id" form:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity" form:"quantity"`
}

// CartRemoveRequest identifies the line to drop.
type CartRemoveRequest struct {
	ProductID string `json:"product_id" form:"product_id" binding:"required"`
}

// CartTotalsResponse is returned by cart mutations.
type CartTotalsResponse struct {
	Success   bool    `json:"success"`
	CartCount int     `json:"cart_count"`
	CartTotal float64 `json:"cart_total"`
	Message   string  `json:"message,omitempty"`
}

// CartItemResponse is a single cart line.
type CartItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// CartResponse is the full cart summary.
type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	CartCount int                `json:"cart_count"`
	CartTotal float64            `json:"cart_total"`
}

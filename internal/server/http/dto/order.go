package dto

// PlaceOrderRequest carries checkout details. Message is the customer note.
type PlaceOrderRequest struct {
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// PlaceOrderResponse tells the customer where to pay.
type PlaceOrderResponse struct {
	Success    bool    `json:"success"`
	OrderID    string  `json:"order_id"`
	Total      float64 `json:"total"`
	MomoNumber string  `json:"momo_number"`
	Message    string  `json:"message"`
}

// MessageResponse is the generic outcome payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

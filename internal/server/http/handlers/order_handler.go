package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

const orderPlacedMessage = "Order placed successfully!"

// OrderHandler manages checkout.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /order/place/.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "invalid checkout details")
		return
	}

	result, err := h.facade.PlaceOrder(c.Request.Context(), CurrentSessionID(c), model.Checkout{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PlaceOrderResponse{
		Success:    true,
		OrderID:    result.Order.ID,
		Total:      money(result.Order.Total),
		MomoNumber: result.MomoNumber,
		Message:    orderPlacedMessage,
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/usecase"
)

// CartHandler manages the session cart endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

func quantityOrDefault(q *int) int {
	if q == nil {
		return 1
	}
	return *q
}

func totalsResponse(res usecase.CartResult) dto.CartTotalsResponse {
	return dto.CartTotalsResponse{
		Success:   true,
		CartCount: res.Totals.Count,
		CartTotal: money(res.Totals.Total),
		Message:   res.Message,
	}
}

// respondCart writes the cart aggregates. Domain errors still carry the
// unchanged aggregates so the client can refresh its badge.
func respondCart(c *gin.Context, res usecase.CartResult, err error) {
	if err == nil {
		c.JSON(http.StatusOK, totalsResponse(res))
		return
	}
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		respondError(c, err)
		return
	}
	body := totalsResponse(res)
	body.Success = false
	body.Message = err.Error()
	c.JSON(status, body)
}

// Summary handles GET /cart/.
func (h *CartHandler) Summary(c *gin.Context) {
	res, err := h.facade.Cart(c.Request.Context(), CurrentSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	lines := res.Cart.Lines()
	items := make([]dto.CartItemResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, dto.CartItemResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     money(line.Price),
			Quantity:  line.Quantity,
			Subtotal:  money(line.Subtotal()),
		})
	}
	c.JSON(http.StatusOK, dto.CartResponse{Items: items, CartCount: res.Totals.Count, CartTotal: money(res.Totals.Total)})
}

// Add handles POST /cart/add/.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.CartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "product_id is required")
		return
	}
	res, err := h.facade.AddToCart(c.Request.Context(), CurrentSessionID(c), req.ProductID, quantityOrDefault(req.Quantity))
	respondCart(c, res, err)
}

// Remove handles POST /cart/remove/.
func (h *CartHandler) Remove(c *gin.Context) {
	var req dto.CartRemoveRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "product_id is required")
		return
	}
	res, err := h.facade.RemoveFromCart(c.Request.Context(), CurrentSessionID(c), req.ProductID)
	respondCart(c, res, err)
}

// Update handles POST /cart/update/.
func (h *CartHandler) Update(c *gin.Context) {
	var req dto.CartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "product_id is required")
		return
	}
	res, err := h.facade.UpdateCartItem(c.Request.Context(), CurrentSessionID(c), req.ProductID, quantityOrDefault(req.Quantity))
	respondCart(c, res, err)
}

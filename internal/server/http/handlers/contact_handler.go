package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/usecase"
)

// ContactHandler serves the about and contact pages.
type ContactHandler struct {
	facade ContactFacade
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(facade ContactFacade) *ContactHandler {
	return &ContactHandler{facade: facade}
}

func (h *ContactHandler) shopInfo() dto.ShopInfoResponse {
	info := h.facade.ShopInfo()
	return dto.ShopInfoResponse{
		Name:     info.Name,
		Location: info.Location,
		Phone:    info.Phone,
		Email:    info.Email,
		Momo:     info.MomoNumber,
	}
}

// About handles GET /about/.
func (h *ContactHandler) About(c *gin.Context) {
	c.JSON(http.StatusOK, h.shopInfo())
}

// Info handles GET /contact/.
func (h *ContactHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, h.shopInfo())
}

// Submit handles POST /contact/.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "invalid contact form")
		return
	}

	_, err := h.facade.SubmitContact(c.Request.Context(), model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: usecase.ContactThanksMessage})
}

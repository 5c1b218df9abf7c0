package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/report"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// AdminHandler exposes order management and stock reports.
type AdminHandler struct {
	orders           OrderFacade
	catalog          CatalogFacade
	defaultThreshold int
	now              func() time.Time
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(orders OrderFacade, catalog CatalogFacade, defaultThreshold int) *AdminHandler {
	return &AdminHandler{orders: orders, catalog: catalog, defaultThreshold: defaultThreshold, now: time.Now}
}

// GetOrder handles GET /admin/orders/:id.
func (h *AdminHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateOrder handles PATCH /admin/orders/:id.
func (h *AdminHandler) UpdateOrder(c *gin.Context) {
	var req dto.OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid order update")
		return
	}

	var update model.OrderUpdate
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		update.Status = &status
	}
	if req.PaymentStatus != nil {
		payment := model.PaymentStatus(*req.PaymentStatus)
		update.PaymentStatus = &payment
	}
	update.AdminNote = req.AdminNote

	order, err := h.orders.UpdateOrder(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// LowStockReport handles GET /admin/reports/low-stock.xlsx.
func (h *AdminHandler) LowStockReport(c *gin.Context) {
	var q dto.LowStockQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "threshold must be an integer")
		return
	}
	threshold := h.defaultThreshold
	if q.Threshold != nil {
		threshold = *q.Threshold
	}
	if threshold < 0 {
		badRequest(c, "threshold must not be negative")
		return
	}

	products, err := h.catalog.LowStock(c.Request.Context(), threshold)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteLowStock(&buf, products, threshold); err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("low-stock-%s.xlsx", h.now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, report.ContentTypeXLSX, buf.Bytes())
}

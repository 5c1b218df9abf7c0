package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

const internalErrorMessage = "Internal server error"

// CurrentSessionID extracts the visitor session identifier from context.
func CurrentSessionID(c *gin.Context) string {
	return c.GetString(middleware.SessionIDContextKey)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound), errors.Is(err, domainErrors.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrItemNotInCart),
		errors.Is(err, domainErrors.ErrInvalidCheckout),
		errors.Is(err, domainErrors.ErrInvalidContact),
		errors.Is(err, domainErrors.ErrUnknownStatus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrInvalidStatusTransition), errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {success:false, message}. Internal errors are attached
// to the gin context for the request logger and hidden from the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, dto.MessageResponse{Success: false, Message: internalErrorMessage})
		return
	}
	c.JSON(status, dto.MessageResponse{Success: false, Message: err.Error()})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.MessageResponse{Success: false, Message: message})
}

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func productURL(id string) string {
	return "/products/" + id + "/"
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Category:         p.CategorySlug,
		SubCategory:      p.SubCategory,
		Brand:            p.Brand,
		Price:            money(p.Price),
		Currency:         p.Currency,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		SKU:              p.SKU,
		Stock:            p.Stock,
		InStock:          p.Stock > 0,
		IsFeatured:       p.IsFeatured,
		Processor:        p.Processor,
		RAM:              p.RAM,
		Storage:          p.Storage,
		ScreenSize:       p.ScreenSize,
		URL:              productURL(p.ID),
		CreatedAt:        p.CreatedAt,
	}
}

func toProductResponses(products []model.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toServiceResponses(services []model.Service) []dto.ServiceResponse {
	out := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, dto.ServiceResponse{
			ID:               s.ID,
			Name:             s.Name,
			Category:         string(s.Category),
			Description:      s.Description,
			DurationEstimate: s.DurationEstimate,
			PriceRange:       s.PriceRange,
			Availability:     s.Availability,
			Icon:             s.Icon,
			IsFeatured:       s.IsFeatured,
		})
	}
	return out
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			Quantity:        item.Quantity,
			PriceAtPurchase: money(item.PriceAtPurchase),
			LineTotal:       money(item.LineTotal()),
		})
	}
	return dto.OrderResponse{
		ID:            o.ID,
		Customer:      dto.CustomerResponse{Name: o.Customer.Name, Phone: o.Customer.Phone, Email: o.Customer.Email},
		Subtotal:      money(o.Subtotal),
		ShippingCost:  money(o.ShippingCost),
		Total:         money(o.Total),
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
		Status:        string(o.Status),
		CustomerNotes: o.CustomerNotes,
		AdminNote:     o.AdminNote,
		Items:         items,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

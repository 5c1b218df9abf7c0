package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/usecase"
)

// CatalogHandler serves product and service pages.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Home handles GET /.
func (h *CatalogHandler) Home(c *gin.Context) {
	home, err := h.facade.Home(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.HomeResponse{
		FeaturedProducts: toProductResponses(home.FeaturedProducts),
		FeaturedServices: toServiceResponses(home.FeaturedServices),
	})
}

// Products handles GET /products/.
func (h *CatalogHandler) Products(c *gin.Context) {
	var q dto.ProductListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid query")
		return
	}

	page, err := h.facade.Products(c.Request.Context(), usecase.ProductListQuery{
		Category:   q.Category,
		PriceRange: q.PriceRange,
		SortBy:     q.SortBy,
		Search:     q.Search,
		Page:       q.Page,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	categories := make([]dto.CategoryResponse, 0, len(page.Categories))
	for _, cat := range page.Categories {
		categories = append(categories, dto.CategoryResponse{ID: cat.ID, Name: cat.Name, Slug: cat.Slug, Description: cat.Description})
	}

	c.JSON(http.StatusOK, dto.ProductListResponse{
		Products:          toProductResponses(page.Products),
		Categories:        categories,
		Page:              page.Page,
		NumPages:          page.NumPages,
		Total:             page.Total,
		CurrentCategory:   page.Filter.CategorySlug,
		CurrentPriceRange: string(page.Filter.PriceBand),
		CurrentSort:       string(page.Filter.Sort),
		SearchQuery:       page.Filter.Search,
	})
}

// ProductDetail handles GET /products/:id/.
func (h *CatalogHandler) ProductDetail(c *gin.Context) {
	detail, err := h.facade.ProductDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProductDetailResponse{
		Product:         toProductResponse(*detail.Product),
		RelatedProducts: toProductResponses(detail.Related),
	})
}

// Services handles GET /services/.
func (h *CatalogHandler) Services(c *gin.Context) {
	services, err := h.facade.Services(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ServicesResponse{Services: toServiceResponses(services)})
}

// Search handles GET /search/?q=.
func (h *CatalogHandler) Search(c *gin.Context) {
	products, err := h.facade.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	results := make([]dto.SearchResult, 0, len(products))
	for _, p := range products {
		results = append(results, dto.SearchResult{
			ID:               p.ID,
			Name:             p.Name,
			Price:            money(p.Price),
			ShortDescription: p.ShortDescription,
			URL:              productURL(p.ID),
		})
	}
	c.JSON(http.StatusOK, dto.SearchResponse{Results: results})
}

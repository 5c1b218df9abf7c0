package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

const (
	ProductsPerPage       = 12
	FeaturedProductsLimit = 4
	FeaturedServicesLimit = 6
	RelatedProductsLimit  = 4
	SearchResultsLimit    = 10
)

// ProductListQuery holds raw listing parameters as received from the visitor.
type ProductListQuery struct {
	Category   string
	PriceRange string
	SortBy     string
	Search     string
	Page       string
}

// ProductPage is one page of a filtered product listing.
type ProductPage struct {
	Products   []model.Product
	Categories []model.Category
	Filter     model.ProductFilter
	Page       int
	NumPages   int
	Total      int
}

// HomePage holds the featured blocks of the landing page.
type HomePage struct {
	FeaturedProducts []model.Product
	FeaturedServices []model.Service
}

// ProductDetail is a product with a few others from its category.
type ProductDetail struct {
	Product *model.Product
	Related []model.Product
}

// CatalogUseCase serves read-only catalog pages.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// Home returns the newest featured products and the featured services.
func (u *CatalogUseCase) Home(ctx context.Context) (*HomePage, error) {
	products, err := u.catalog.FeaturedProducts(ctx, FeaturedProductsLimit)
	if err != nil {
		return nil, err
	}
	services, err := u.catalog.Services(ctx, true, FeaturedServicesLimit)
	if err != nil {
		return nil, err
	}
	return &HomePage{FeaturedProducts: products, FeaturedServices: services}, nil
}

// ListProducts filters, sorts and paginates active products.
func (u *CatalogUseCase) ListProducts(ctx context.Context, q ProductListQuery) (*ProductPage, error) {
	filter := model.ProductFilter{
		CategorySlug: strings.TrimSpace(q.Category),
		PriceBand:    model.ParsePriceBand(q.PriceRange),
		Sort:         model.ParseProductSort(q.SortBy),
		Search:       strings.TrimSpace(q.Search),
	}

	total, err := u.catalog.CountProducts(ctx, filter)
	if err != nil {
		return nil, err
	}
	numPages := pageCount(total, ProductsPerPage)
	page := clampPage(q.Page, numPages)

	filter.Limit = ProductsPerPage
	filter.Offset = (page - 1) * ProductsPerPage
	products, err := u.catalog.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}
	categories, err := u.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Products:   products,
		Categories: categories,
		Filter:     filter,
		Page:       page,
		NumPages:   numPages,
		Total:      total,
	}, nil
}

// pageCount is never below one so an empty listing still has a first page.
func pageCount(total, perPage int) int {
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// clampPage maps unparsable or non-positive input to the first page and
// input past the end to the last page.
func clampPage(raw string, numPages int) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	if page > numPages {
		return numPages
	}
	return page
}

// ProductDetail returns an active product and related items of the same category.
func (u *CatalogUseCase) ProductDetail(ctx context.Context, id string) (*ProductDetail, error) {
	product, err := u.catalog.GetActiveProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	related, err := u.catalog.RelatedProducts(ctx, product, RelatedProductsLimit)
	if err != nil {
		return nil, err
	}
	return &ProductDetail{Product: product, Related: related}, nil
}

// Search matches the trimmed query against name, description and brand.
func (u *CatalogUseCase) Search(ctx context.Context, query string) ([]model.Product, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []model.Product{}, nil
	}
	return u.catalog.SearchProducts(ctx, q, SearchResultsLimit)
}

// Services lists every active service.
func (u *CatalogUseCase) Services(ctx context.Context) ([]model.Service, error) {
	return u.catalog.Services(ctx, false, 0)
}

// LowStock lists active products with stock at or below threshold.
func (u *CatalogUseCase) LowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	return u.catalog.LowStockProducts(ctx, threshold)
}

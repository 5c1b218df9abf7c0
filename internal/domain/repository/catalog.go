package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// CatalogRepository provides read access to products, categories and services.
type CatalogRepository interface {
	GetActiveProduct(ctx context.Context, id string) (*model.Product, error)
	CountProducts(ctx context.Context, filter model.ProductFilter) (int, error)
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	SearchProducts(ctx context.Context, query string, limit int) ([]model.Product, error)
	FeaturedProducts(ctx context.Context, limit int) ([]model.Product, error)
	RelatedProducts(ctx context.Context, product *model.Product, limit int) ([]model.Product, error)
	LowStockProducts(ctx context.Context, threshold int) ([]model.Product, error)
	Categories(ctx context.Context) ([]model.Category, error)
	Services(ctx context.Context, featuredOnly bool, limit int) ([]model.Service, error)
}

package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{Shop: config.ShopInfo{
		Name:       "NickyG Computers",
		MomoNumber: "0597427569",
		AdminEmail: "admin@example.com",
	}}
}

func product(id, name, category string, price int64, opts ...func(*model.Product)) model.Product {
	p := model.Product{
		ID:           id,
		Name:         name,
		CategorySlug: category,
		Price:        decimal.NewFromInt(price),
		Stock:        10,
		IsActive:     true,
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	switch category {
	case "computers":
		p.CategoryID = 1
	case "phones":
		p.CategoryID = 2
	default:
		p.CategoryID = 3
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func featured(p *model.Product)         { p.IsFeatured = true }
func inactive(p *model.Product)         { p.IsActive = false }
func brand(b string) func(*model.Product) { return func(p *model.Product) { p.Brand = b } }
func stock(n int) func(*model.Product)    { return func(p *model.Product) { p.Stock = n } }
func describe(d string) func(*model.Product) {
	return func(p *model.Product) { p.ShortDescription = d }
}

func sampleCatalog() *test.CatalogRepositoryStub {
	return &test.CatalogRepositoryStub{
		Products: []model.Product{
			product("laptop-hp-001", "HP Pavilion 15 Laptop", "computers", 3500, featured, brand("HP"), stock(5),
				describe("Powerful laptop for work and entertainment")),
			product("phone-samsung-001", "Samsung Galaxy A54", "phones", 1800, featured, brand("Samsung"), stock(8)),
			product("desktop-dell-001", "Dell OptiPlex Desktop", "computers", 2800, featured, brand("Dell"), stock(3)),
			product("phone-iphone-001", "iPhone 12", "phones", 4200, featured, brand("Apple"), stock(2)),
			product("accessory-mouse-001", "Wireless Mouse", "accessories", 85, brand("Logitech"), stock(25)),
			product("band-edge-500", "Edge 500", "accessories", 500),
			product("band-edge-2000", "Edge 2000", "accessories", 2000),
			product("hidden-hp-002", "HP Old Laptop", "computers", 900, inactive, brand("HP"), stock(0)),
		},
		CategoryList: []model.Category{
			{ID: 3, Name: "Accessories", Slug: "accessories"},
			{ID: 1, Name: "Computers", Slug: "computers"},
			{ID: 2, Name: "Phones", Slug: "phones"},
		},
		ServiceList: []model.Service{
			{ID: "s1", Name: "Computer Repair", IsActive: true, IsFeatured: true},
			{ID: "s2", Name: "Internet Cafe", IsActive: true},
			{ID: "s3", Name: "Retired", IsActive: false, IsFeatured: true},
		},
	}
}

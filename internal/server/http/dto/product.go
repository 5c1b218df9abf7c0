package dto

import "time"

// ProductListQuery holds listing filters from the query string.
type ProductListQuery struct {
	Category   string `form:"category"`
	PriceRange string `form:"price_range"`
	SortBy     string `form:"sort_by"`
	Search     string `form:"search"`
	Page       string `form:"page"`
}

// ProductResponse describes a catalog product.
type ProductResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	SubCategory      string    `json:"sub_category,omitempty"`
	Brand            string    `json:"brand,omitempty"`
	Price            float64   `json:"price"`
	Currency         string    `json:"currency"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description,omitempty"`
	SKU              string    `json:"sku,omitempty"`
	Stock            int       `json:"stock"`
	InStock          bool      `json:"in_stock"`
	IsFeatured       bool      `json:"is_featured"`
	Processor        string    `json:"processor,omitempty"`
	RAM              string    `json:"ram,omitempty"`
	Storage          string    `json:"storage,omitempty"`
	ScreenSize       string    `json:"screen_size,omitempty"`
	URL              string    `json:"url"`
	CreatedAt        time.Time `json:"created_at"`
}

// CategoryResponse describes a product category.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// ServiceResponse describes a shop service.
type ServiceResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	DurationEstimate string `json:"duration_estimate"`
	PriceRange       string `json:"price_range"`
	Availability     string `json:"availability"`
	Icon             string `json:"icon"`
	IsFeatured       bool   `json:"is_featured"`
}

// HomeResponse is the landing page payload.
type HomeResponse struct {
	FeaturedProducts []ProductResponse `json:"featured_products"`
	FeaturedServices []ServiceResponse `json:"featured_services"`
}

// ProductListResponse is one page of the product listing.
type ProductListResponse struct {
	Products          []ProductResponse  `json:"products"`
	Categories        []CategoryResponse `json:"categories"`
	Page              int                `json:"page"`
	NumPages          int                `json:"num_pages"`
	Total             int                `json:"total"`
	CurrentCategory   string             `json:"current_category"`
	CurrentPriceRange string             `json:"current_price_range"`
	CurrentSort       string             `json:"current_sort"`
	SearchQuery       string             `json:"search_query"`
}

// ProductDetailResponse is a product with related items.
type ProductDetailResponse struct {
	Product         ProductResponse   `json:"product"`
	RelatedProducts []ProductResponse `json:"related_products"`
}

// ServicesResponse lists active services.
type ServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

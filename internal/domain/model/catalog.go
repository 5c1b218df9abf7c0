package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products on the storefront.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
}

// Product is a sellable catalog item.
type Product struct {
	ID               string
	Name             string
	CategoryID       int64
	CategorySlug     string
	SubCategory      string
	Brand            string
	Price            decimal.Decimal
	Currency         string
	ShortDescription string
	LongDescription  string
	SKU              string
	Stock            int
	IsFeatured       bool
	IsActive         bool
	Processor        string
	RAM              string
	Storage          string
	ScreenSize       string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ServiceCategory classifies shop services.
type ServiceCategory string

const (
	ServiceCategoryIT        ServiceCategory = "IT"
	ServiceCategoryDigital   ServiceCategory = "DIGITAL"
	ServiceCategoryEducation ServiceCategory = "EDUCATION"
	ServiceCategoryBusiness  ServiceCategory = "BUSINESS"
)

// Service is a non-product offering of the shop.
type Service struct {
	ID               string
	Name             string
	Category         ServiceCategory
	Description      string
	DurationEstimate string
	PriceRange       string
	Availability     string
	Icon             string
	IsFeatured       bool
	IsActive         bool
	CreatedAt        time.Time
}

// PriceBand is one of the fixed product price filters.
type PriceBand string

const (
	PriceBandAll      PriceBand = "all"
	PriceBandUpTo500  PriceBand = "0-500"
	PriceBand500To2k  PriceBand = "500-2000"
	PriceBand2kTo5k   PriceBand = "2000-5000"
	PriceBandFrom5000 PriceBand = "5000+"
)

// Bounds returns inclusive price limits of the band. A nil bound is open.
func (b PriceBand) Bounds() (lo, hi *decimal.Decimal) {
	d := func(v int64) *decimal.Decimal {
		x := decimal.NewFromInt(v)
		return &x
	}
	switch b {
	case PriceBandUpTo500:
		return nil, d(500)
	case PriceBand500To2k:
		return d(500), d(2000)
	case PriceBand2kTo5k:
		return d(2000), d(5000)
	case PriceBandFrom5000:
		return d(5000), nil
	default:
		return nil, nil
	}
}

// ProductSort is the ordering applied to product listings.
type ProductSort string

const (
	SortByName      ProductSort = "name"
	SortByPriceLow  ProductSort = "price-low"
	SortByPriceHigh ProductSort = "price-high"
	SortByFeatured  ProductSort = "featured"
)

// ParseProductSort falls back to name ordering for unknown keys.
func ParseProductSort(raw string) ProductSort {
	switch s := ProductSort(raw); s {
	case SortByPriceLow, SortByPriceHigh, SortByFeatured:
		return s
	default:
		return SortByName
	}
}

// ParsePriceBand falls back to all prices for unknown bands.
func ParsePriceBand(raw string) PriceBand {
	switch b := PriceBand(raw); b {
	case PriceBandUpTo500, PriceBand500To2k, PriceBand2kTo5k, PriceBandFrom5000:
		return b
	default:
		return PriceBandAll
	}
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategorySlug string
	PriceBand    PriceBand
	Sort         ProductSort
	Search       string
	Limit        int
	Offset       int
}

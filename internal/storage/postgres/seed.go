package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/domain/model"
)

type seedCategory struct {
	Name, Slug, Description string
}

type seedProduct struct {
	model.Product
	Category string
}

var seedCategories = []seedCategory{
	{"Computers", "computers", "Desktop computers and laptops"},
	{"Phones", "phones", "Smartphones and mobile devices"},
	{"Accessories", "accessories", "Computer and phone accessories"},
	{"Stationary", "stationary", "Office and school supplies"},
}

func seedPrice(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

var seedProducts = []seedProduct{
	{Category: "computers", Product: model.Product{ID: "laptop-hp-001", Name: "HP Pavilion 15 Laptop", SubCategory: "laptops", Brand: "HP",
		Price: seedPrice(3500), Stock: 5, IsFeatured: true,
		ShortDescription: "Powerful laptop for work and entertainment",
		LongDescription:  "HP Pavilion 15 with Intel Core i5 processor, 8GB RAM, 256GB SSD, and 15.6-inch Full HD display.",
		Processor:        "Intel Core i5", RAM: "8GB", Storage: "256GB SSD", ScreenSize: "15.6 inch"}},
	{Category: "phones", Product: model.Product{ID: "phone-samsung-001", Name: "Samsung Galaxy A54", SubCategory: "smartphones", Brand: "Samsung",
		Price: seedPrice(1800), Stock: 8, IsFeatured: true,
		ShortDescription: "Feature-rich smartphone with excellent camera",
		LongDescription:  "Samsung Galaxy A54 with 128GB storage, 6GB RAM, triple camera system, and long-lasting battery.",
		RAM:              "6GB", Storage: "128GB"}},
	{Category: "computers", Product: model.Product{ID: "desktop-dell-001", Name: "Dell OptiPlex Desktop", SubCategory: "desktops", Brand: "Dell",
		Price: seedPrice(2800), Stock: 3, IsFeatured: true,
		ShortDescription: "Reliable desktop for office work",
		LongDescription:  "Dell OptiPlex desktop with Intel Core i3, 4GB RAM and 500GB HDD.",
		Processor:        "Intel Core i3", RAM: "4GB", Storage: "500GB HDD"}},
	{Category: "phones", Product: model.Product{ID: "phone-iphone-001", Name: "iPhone 12", SubCategory: "smartphones", Brand: "Apple",
		Price: seedPrice(4200), Stock: 2, IsFeatured: true,
		ShortDescription: "Apple iPhone 12 with A14 Bionic chip",
		LongDescription:  "iPhone 12 with 64GB storage, dual camera system and Super Retina XDR display.",
		Storage:          "64GB"}},
	{Category: "accessories", Product: model.Product{ID: "accessory-mouse-001", Name: "Wireless Mouse", SubCategory: "peripherals", Brand: "Logitech",
		Price: seedPrice(85), Stock: 25,
		ShortDescription: "Comfortable wireless mouse",
		LongDescription:  "Logitech wireless mouse with long battery life and USB receiver."}},
	{Category: "accessories", Product: model.Product{ID: "accessory-keyboard-001", Name: "Mechanical Keyboard", SubCategory: "peripherals", Brand: "Corsair",
		Price: seedPrice(320), Stock: 10,
		ShortDescription: "RGB mechanical gaming keyboard",
		LongDescription:  "Corsair mechanical keyboard with RGB backlighting and durable switches."}},
	{Category: "stationary", Product: model.Product{ID: "stationary-notebook-001", Name: "Exercise Books (Pack of 10)", SubCategory: "books", Brand: "Local",
		Price: seedPrice(25), Stock: 100,
		ShortDescription: "Quality exercise books for school",
		LongDescription:  "Pack of 10 ruled exercise books, 80 pages each."}},
	{Category: "stationary", Product: model.Product{ID: "stationary-pens-001", Name: "Ballpoint Pens (Pack of 12)", SubCategory: "writing", Brand: "Bic",
		Price: seedPrice(18), Stock: 50,
		ShortDescription: "Smooth writing ballpoint pens",
		LongDescription:  "Pack of 12 Bic ballpoint pens in blue ink."}},
}

var seedServices = []model.Service{
	{ID: "service-repair-001", Name: "Computer Repair", Category: model.ServiceCategoryIT, IsFeatured: true,
		Description:      "Hardware and software repair for laptops and desktops",
		DurationEstimate: "1-3 days", PriceRange: "GH₵ 50 - 500", Availability: "Mon-Sat 8am-6pm", Icon: "🔧"},
	{ID: "service-internet-001", Name: "Internet Cafe", Category: model.ServiceCategoryDigital, IsFeatured: true,
		Description:      "High-speed internet browsing, printing and scanning",
		DurationEstimate: "Per hour", PriceRange: "GH₵ 5 per hour", Availability: "Mon-Sat 7am-9pm", Icon: "🌐"},
	{ID: "service-waec-001", Name: "WAEC Registration", Category: model.ServiceCategoryEducation, IsFeatured: true,
		Description:      "Online registration for WAEC examinations",
		DurationEstimate: "30 minutes", PriceRange: "GH₵ 20", Availability: "During registration periods", Icon: "📝"},
	{ID: "service-passport-001", Name: "Passport Photos", Category: model.ServiceCategoryBusiness, IsFeatured: true,
		Description:      "Professional passport and ID photos",
		DurationEstimate: "15 minutes", PriceRange: "GH₵ 10 - 30", Availability: "Mon-Sat 8am-6pm", Icon: "📷"},
	{ID: "service-typing-001", Name: "Document Typing", Category: model.ServiceCategoryBusiness, IsFeatured: true,
		Description:      "Typing, formatting and printing of documents",
		DurationEstimate: "Varies", PriceRange: "GH₵ 2 per page", Availability: "Mon-Sat 8am-6pm", Icon: "⌨️"},
	{ID: "service-momo-001", Name: "Mobile Money Services", Category: model.ServiceCategoryBusiness, IsFeatured: true,
		Description:      "Cash in, cash out and transfers on all networks",
		DurationEstimate: "5 minutes", PriceRange: "Standard fees", Availability: "Mon-Sun 7am-9pm", Icon: "💰"},
}

// generateSKU derives a SKU from the category name and a random suffix.
func generateSKU(categoryName string) string {
	prefix := strings.ToUpper(categoryName)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return prefix + uuid.NewString()[:8]
}

// Seed inserts the sample catalog. Existing rows are left untouched.
func (s *Storage) Seed(ctx context.Context) error {
	return s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		categoryIDs := make(map[string]int64, len(seedCategories))
		categoryNames := make(map[string]string, len(seedCategories))
		for _, c := range seedCategories {
			const query = `INSERT INTO categories (name, slug, description) VALUES ($1, $2, $3)
                           ON CONFLICT (slug) DO UPDATE SET name = categories.name
                           RETURNING id`
			var id int64
			if err := tx.QueryRow(ctx, query, c.Name, c.Slug, c.Description).Scan(&id); err != nil {
				return fmt.Errorf("seed category %s: %w", c.Slug, err)
			}
			categoryIDs[c.Slug] = id
			categoryNames[c.Slug] = c.Name
		}

		for _, p := range seedProducts {
			const query = `INSERT INTO products (id, name, category_id, sub_category, brand, price, short_description,
                                                 long_description, sku, stock, is_featured, processor, ram, storage, screen_size)
                           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
                           ON CONFLICT (id) DO NOTHING`
			if _, err := tx.Exec(ctx, query, p.ID, p.Name, categoryIDs[p.Category], p.SubCategory, p.Brand, p.Price,
				p.ShortDescription, p.LongDescription, generateSKU(categoryNames[p.Category]), p.Stock, p.IsFeatured,
				p.Processor, p.RAM, p.Storage, p.ScreenSize); err != nil {
				return fmt.Errorf("seed product %s: %w", p.ID, err)
			}
		}

		for _, svc := range seedServices {
			const query = `INSERT INTO services (id, name, category, description, duration_estimate, price_range,
                                                 availability, icon, is_featured)
                           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                           ON CONFLICT (id) DO NOTHING`
			if _, err := tx.Exec(ctx, query, svc.ID, svc.Name, svc.Category, svc.Description, svc.DurationEstimate,
				svc.PriceRange, svc.Availability, svc.Icon, svc.IsFeatured); err != nil {
				return fmt.Errorf("seed service %s: %w", svc.ID, err)
			}
		}

		s.logger.Info("catalog seeded",
			slog.Int("categories", len(seedCategories)),
			slog.Int("products", len(seedProducts)),
			slog.Int("services", len(seedServices)),
		)
		return nil
	})
}

package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

var productRowColumns = []string{"id", "name", "category_id", "slug", "sub_category", "brand", "price", "currency",
	"short_description", "long_description", "sku", "stock", "is_featured", "is_active",
	"processor", "ram", "storage", "screen_size", "created_at", "updated_at"}

// anyArgs matches n positional arguments of any value.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmockv3.AnyArg()
	}
	return args
}

func productRows(products ...model.Product) *pgxmockv3.Rows {
	rows := pgxmockv3.NewRows(productRowColumns)
	for _, p := range products {
		rows.AddRow(p.ID, p.Name, p.CategoryID, p.CategorySlug, p.SubCategory, p.Brand, p.Price, p.Currency,
			p.ShortDescription, p.LongDescription, p.SKU, p.Stock, p.IsFeatured, p.IsActive,
			p.Processor, p.RAM, p.Storage, p.ScreenSize, p.CreatedAt, p.UpdatedAt)
	}
	return rows
}

func sampleProduct(id string, price string) model.Product {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return model.Product{
		ID: id, Name: "Product " + id, CategoryID: 2, CategorySlug: "phones", Brand: "Samsung",
		Price: dec(price), Currency: "GH₵", SKU: "PHO" + id, Stock: 4, IsActive: true,
		CreatedAt: now, UpdatedAt: now,
	}
}

func TestProductWhere(t *testing.T) {
	where, args := productWhere(model.ProductFilter{})
	if where != " WHERE p.is_active" || len(args) != 0 {
		t.Fatalf("unexpected empty filter: %q %v", where, args)
	}

	where, args = productWhere(model.ProductFilter{
		CategorySlug: "phones",
		PriceBand:    model.PriceBand500To2k,
		Search:       "  sam ",
	})
	want := " WHERE p.is_active AND c.slug = $1 AND p.price >= $2 AND p.price <= $3" +
		" AND (p.name ILIKE $4 OR p.short_description ILIKE $4 OR p.brand ILIKE $4)"
	if where != want {
		t.Fatalf("unexpected where clause:\n got %q\nwant %q", where, want)
	}
	if len(args) != 4 || args[0] != "phones" || args[3] != "%sam%" {
		t.Fatalf("unexpected args: %v", args)
	}
	if lo := args[1].(decimal.Decimal); !lo.Equal(dec("500")) {
		t.Fatalf("unexpected lower bound %v", lo)
	}

	where, args = productWhere(model.ProductFilter{PriceBand: model.PriceBandFrom5000})
	if where != " WHERE p.is_active AND p.price >= $1" || len(args) != 1 {
		t.Fatalf("unexpected open band clause: %q %v", where, args)
	}
}

func TestProductOrder(t *testing.T) {
	cases := map[model.ProductSort]string{
		model.SortByName:      " ORDER BY p.name ASC",
		model.SortByPriceLow:  " ORDER BY p.price ASC, p.name ASC",
		model.SortByPriceHigh: " ORDER BY p.price DESC, p.name ASC",
		model.SortByFeatured:  " ORDER BY p.is_featured DESC, p.name ASC",
		"bogus":               " ORDER BY p.name ASC",
	}
	for sort, want := range cases {
		if got := productOrder(sort); got != want {
			t.Errorf("productOrder(%q) = %q, want %q", sort, got, want)
		}
	}
}

func TestCatalogGetActiveProduct(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Catalog()

	product := sampleProduct("phone-1", "1800")
	mock.ExpectQuery("WHERE p.id=").WithArgs("phone-1").WillReturnRows(productRows(product))

	got, err := repo.GetActiveProduct(context.Background(), "phone-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "phone-1" || got.CategorySlug != "phones" || !got.Price.Equal(dec("1800")) {
		t.Fatalf("unexpected product: %+v", got)
	}

	mock.ExpectQuery("WHERE p.id=").WithArgs("missing").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetActiveProduct(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrProductNotFound) {
		t.Fatalf("expected product not found, got %v", err)
	}

	mock.ExpectQuery("WHERE p.id=").WithArgs("broken").WillReturnError(errors.New("db"))
	if _, err := repo.GetActiveProduct(context.Background(), "broken"); err == nil || errors.Is(err, domainErrors.ErrProductNotFound) {
		t.Fatalf("expected raw db error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCatalogListAndCountProducts(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Catalog()

	filter := model.ProductFilter{
		CategorySlug: "phones",
		PriceBand:    model.PriceBand500To2k,
		Sort:         model.SortByPriceLow,
		Limit:        12,
		Offset:       12,
	}

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("phones", decimalArg{dec("500")}, decimalArg{dec("2000")}).
		WillReturnRows(pgxmockv3.NewRows([]string{"count"}).AddRow(14))
	total, err := repo.CountProducts(context.Background(), filter)
	if err != nil || total != 14 {
		t.Fatalf("unexpected count: %d %v", total, err)
	}

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY p.price ASC, p.name ASC LIMIT $4 OFFSET $5")).
		WithArgs("phones", decimalArg{dec("500")}, decimalArg{dec("2000")}, 12, 12).
		WillReturnRows(productRows(sampleProduct("a", "600"), sampleProduct("b", "900")))
	products, err := repo.ListProducts(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 || products[0].ID != "a" {
		t.Fatalf("unexpected products: %+v", products)
	}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.is_active ORDER BY p.name ASC")).
		WillReturnRows(productRows())
	products, err = repo.ListProducts(context.Background(), model.ProductFilter{})
	if err != nil || len(products) != 0 {
		t.Fatalf("unexpected unbounded listing: %v %v", products, err)
	}

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("db"))
	if _, err := repo.CountProducts(context.Background(), model.ProductFilter{}); err == nil {
		t.Fatal("expected count error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCatalogSearchProducts(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Catalog()

	results, err := repo.SearchProducts(context.Background(), "   ", 10)
	if err != nil || results != nil {
		t.Fatalf("blank search must not hit the database: %v %v", results, err)
	}

	mock.ExpectQuery("ORDER BY p.created_at DESC").
		WithArgs("%hp%", 10).
		WillReturnRows(productRows(sampleProduct("laptop-hp-001", "3500")))
	results, err = repo.SearchProducts(context.Background(), " hp ", 10)
	if err != nil || len(results) != 1 {
		t.Fatalf("unexpected search result: %v %v", results, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCatalogFeaturedRelatedAndLowStock(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Catalog()
	ctx := context.Background()

	mock.ExpectQuery("p.is_featured").WithArgs(4).WillReturnRows(productRows(sampleProduct("f", "100")))
	if featured, err := repo.FeaturedProducts(ctx, 4); err != nil || len(featured) != 1 {
		t.Fatalf("unexpected featured: %v %v", featured, err)
	}

	product := sampleProduct("phone-1", "1800")
	mock.ExpectQuery("p.category_id=").WithArgs(int64(2), "phone-1", 4).
		WillReturnRows(productRows(sampleProduct("phone-2", "1200")))
	related, err := repo.RelatedProducts(ctx, &product, 4)
	if err != nil || len(related) != 1 || related[0].ID != "phone-2" {
		t.Fatalf("unexpected related: %v %v", related, err)
	}

	mock.ExpectQuery("p.stock <=").WithArgs(5).WillReturnRows(productRows(sampleProduct("low", "10")))
	low, err := repo.LowStockProducts(ctx, 5)
	if err != nil || len(low) != 1 {
		t.Fatalf("unexpected low stock: %v %v", low, err)
	}

	mock.ExpectQuery("p.stock <=").WithArgs(5).WillReturnError(errors.New("db"))
	if _, err := repo.LowStockProducts(ctx, 5); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCollectProductsRowsError(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: &rowsErrorPool{rows: &errorRows{err: errors.New("rows")}}, logger: logger}

	if _, err := storage.Catalog().FeaturedProducts(context.Background(), 4); err == nil {
		t.Fatal("expected rows error")
	}
}

func TestCatalogCategoriesAndServices(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Catalog()
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("FROM categories ORDER BY name").WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "name", "slug", "description", "created_at"}).
			AddRow(int64(1), "Accessories", "accessories", "", now).
			AddRow(int64(2), "Phones", "phones", "", now))
	categories, err := repo.Categories(ctx)
	if err != nil || len(categories) != 2 || categories[1].Slug != "phones" {
		t.Fatalf("unexpected categories: %v %v", categories, err)
	}

	serviceColumns := []string{"id", "name", "category", "description", "duration_estimate", "price_range",
		"availability", "icon", "is_featured", "is_active", "created_at"}
	mock.ExpectQuery("FROM services").WithArgs(true, 6).WillReturnRows(
		pgxmockv3.NewRows(serviceColumns).
			AddRow("service-repair-001", "Computer Repair", model.ServiceCategoryIT, "", "1-3 days", "GH₵ 50", "Mon-Sat", "", true, true, now))
	services, err := repo.Services(ctx, true, 6)
	if err != nil || len(services) != 1 || services[0].Category != model.ServiceCategoryIT {
		t.Fatalf("unexpected services: %v %v", services, err)
	}

	mock.ExpectQuery("FROM services").WithArgs(false).WillReturnRows(pgxmockv3.NewRows(serviceColumns))
	services, err = repo.Services(ctx, false, 0)
	if err != nil || len(services) != 0 {
		t.Fatalf("unexpected all services: %v %v", services, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func placeOrderParams() repository.PlaceOrderParams {
	return repository.PlaceOrderParams{
		Order: model.Order{
			ID:            "NG20240501ABC123",
			Subtotal:      dec("7000"),
			ShippingCost:  decimal.Zero,
			Total:         dec("7000"),
			PaymentMethod: model.PaymentMethodMomo,
			PaymentStatus: model.PaymentStatusPending,
			Status:        model.OrderStatusNew,
			CustomerNotes: "call first",
		},
		Checkout: model.Checkout{Name: "Ama", Phone: "0240000000", Email: "ama@example.com", Notes: "call first"},
		Items: []model.OrderItem{
			{ProductID: "laptop-hp-001", Quantity: 2, PriceAtPurchase: dec("3500")},
		},
		Notification: &model.Notification{
			Kind: model.NotificationOrderPlaced, Recipient: "admin@example.com", Subject: "New order", Body: "body",
		},
	}
}

func TestOrderPlaceOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Orders()
	now := time.Now()
	params := placeOrderParams()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO customers").
		WithArgs("Ama", "0240000000", "ama@example.com").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "email", "created_at"}).AddRow(int64(7), "ama@example.com", now))
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("NG20240501ABC123", int64(7), decimalArg{dec("7000")}, decimalArg{decimal.Zero}, decimalArg{dec("7000")},
			model.PaymentMethodMomo, model.PaymentStatusPending, model.OrderStatusNew, "call first").
		WillReturnRows(pgxmockv3.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectQuery("SELECT name FROM products").WithArgs("laptop-hp-001").
		WillReturnRows(pgxmockv3.NewRows([]string{"name"}).AddRow("HP Pavilion 15 Laptop"))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs("NG20240501ABC123", "laptop-hp-001", 2, decimalArg{dec("3500")}).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectQuery("INSERT INTO notifications").
		WithArgs(model.NotificationOrderPlaced, "admin@example.com", "New order", "body", model.NotificationPending).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "attempts", "next_attempt_at", "created_at"}).AddRow(int64(1), 0, now, now))
	mock.ExpectCommit()

	order, err := repo.PlaceOrder(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.CustomerID != 7 || order.Customer.Phone != "0240000000" {
		t.Fatalf("unexpected customer: %+v", order.Customer)
	}
	if len(order.Items) != 1 || order.Items[0].ID != 11 || order.Items[0].ProductName != "HP Pavilion 15 Laptop" {
		t.Fatalf("unexpected items: %+v", order.Items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderPlaceOrderMissingProductRollsBack(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO customers").
		WithArgs(anyArgs(3)...).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "email", "created_at"}).AddRow(int64(7), "", now))
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(anyArgs(9)...).
		WillReturnRows(pgxmockv3.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectQuery("SELECT name FROM products").WithArgs("laptop-hp-001").WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := storage.Orders().PlaceOrder(context.Background(), placeOrderParams())
	if !errors.Is(err, domainErrors.ErrProductNotFound) {
		t.Fatalf("expected product not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderPlaceOrderDuplicateID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO customers").
		WithArgs(anyArgs(3)...).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "email", "created_at"}).AddRow(int64(7), "", now))
	mock.ExpectQuery("INSERT INTO orders").WithArgs(anyArgs(9)...).WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	_, err := storage.Orders().PlaceOrder(context.Background(), placeOrderParams())
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Orders()
	now := time.Now()

	orderColumns := []string{"id", "customer_id", "name", "phone", "email", "subtotal", "shipping_cost", "total",
		"payment_method", "payment_status", "status", "customer_notes", "admin_note", "created_at", "updated_at"}
	mock.ExpectQuery("FROM orders o JOIN customers c").WithArgs("NG1").WillReturnRows(
		pgxmockv3.NewRows(orderColumns).AddRow("NG1", int64(7), "Ama", "0240000000", "", dec("85"), decimal.Zero, dec("85"),
			model.PaymentMethodMomo, model.PaymentStatusPending, model.OrderStatusNew, "", "", now, now))
	mock.ExpectQuery("FROM order_items i JOIN products p").WithArgs("NG1").WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "order_id", "product_id", "name", "quantity", "price_at_purchase"}).
			AddRow(int64(1), "NG1", "accessory-mouse-001", "Wireless Mouse", 1, dec("85")))

	order, err := repo.GetByID(context.Background(), "NG1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Customer.ID != 7 || order.Status != model.OrderStatusNew || len(order.Items) != 1 {
		t.Fatalf("unexpected order: %+v", order)
	}
	if !order.Items[0].LineTotal().Equal(dec("85")) {
		t.Fatalf("unexpected line total %v", order.Items[0].LineTotal())
	}

	mock.ExpectQuery("FROM orders o JOIN customers c").WithArgs("NG404").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), "NG404"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderUpdate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Orders()

	status := model.OrderStatusProcessing
	update := model.OrderUpdate{Status: &status}

	mock.ExpectExec("UPDATE orders").
		WithArgs("NG1", model.OrderStatusNew, &status, (*string)(nil), (*model.PaymentStatus)(nil)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.Update(context.Background(), "NG1", model.OrderStatusNew, update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE orders").WithArgs(anyArgs(5)...).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.Update(context.Background(), "NG1", model.OrderStatusNew, update); !errors.Is(err, domainErrors.ErrInvalidStatusTransition) {
		t.Fatalf("expected stale status error, got %v", err)
	}

	mock.ExpectExec("UPDATE orders").WithArgs(anyArgs(5)...).WillReturnError(errors.New("db"))
	if err := repo.Update(context.Background(), "NG1", model.OrderStatusNew, update); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestContactCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	now := time.Now()

	msg := model.ContactMessage{Name: "Kofi", Email: "kofi@example.com", Subject: "Repair", Message: "Is my laptop ready?"}
	notification := &model.Notification{Kind: model.NotificationContactMessage, Recipient: "admin@example.com", Subject: "Repair"}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO contact_messages").
		WithArgs("Kofi", "kofi@example.com", "", "Repair", "Is my laptop ready?").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "is_read", "created_at"}).AddRow(int64(3), false, now))
	mock.ExpectQuery("INSERT INTO notifications").
		WithArgs(model.NotificationContactMessage, "admin@example.com", "Repair", "", model.NotificationPending).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "attempts", "next_attempt_at", "created_at"}).AddRow(int64(9), 0, now, now))
	mock.ExpectCommit()

	saved, err := storage.Contacts().Create(context.Background(), msg, notification)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 3 || saved.IsRead {
		t.Fatalf("unexpected message: %+v", saved)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO contact_messages").
		WithArgs(anyArgs(5)...).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "is_read", "created_at"}).AddRow(int64(4), false, now))
	mock.ExpectQuery("INSERT INTO notifications").WithArgs(anyArgs(5)...).WillReturnError(errors.New("outbox"))
	mock.ExpectRollback()

	if _, err := storage.Contacts().Create(context.Background(), msg, notification); err == nil {
		t.Fatal("expected outbox failure to abort the message")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

var notificationRowColumns = []string{"id", "kind", "recipient", "subject", "body", "status", "attempts",
	"next_attempt_at", "last_error", "created_at"}

func TestNotificationEnqueue(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO notifications").
		WithArgs(model.NotificationLowStock, "admin@example.com", "Low stock", "body", model.NotificationPending).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "attempts", "next_attempt_at", "created_at"}).AddRow(int64(5), 0, now, now))

	n, err := storage.Notifications().Enqueue(context.Background(), model.Notification{
		Kind: model.NotificationLowStock, Recipient: "admin@example.com", Subject: "Low stock", Body: "body",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.ID != 5 || n.Status != model.NotificationPending {
		t.Fatalf("unexpected notification: %+v", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestNotificationClaimDue(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Notifications()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE SKIP LOCKED").WithArgs(16).WillReturnRows(
		pgxmockv3.NewRows(notificationRowColumns).
			AddRow(int64(1), model.NotificationOrderPlaced, "a@example.com", "s", "b", model.NotificationPending, 0, now, "", now).
			AddRow(int64(2), model.NotificationContactMessage, "a@example.com", "s", "b", model.NotificationPending, 1, now, "smtp", now))
	mock.ExpectExec("UPDATE notifications SET next_attempt_at").
		WithArgs(pgxmockv3.AnyArg(), []int64{1, 2}).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 2))
	mock.ExpectCommit()

	claimed, err := repo.ClaimDue(context.Background(), 16, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(claimed) != 2 || claimed[1].Attempts != 1 || claimed[1].LastError != "smtp" {
		t.Fatalf("unexpected claim: %+v", claimed)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE SKIP LOCKED").WithArgs(16).WillReturnRows(pgxmockv3.NewRows(notificationRowColumns))
	mock.ExpectCommit()
	claimed, err = repo.ClaimDue(context.Background(), 16, time.Minute)
	if err != nil || len(claimed) != 0 {
		t.Fatalf("unexpected empty claim: %v %v", claimed, err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE SKIP LOCKED").WithArgs(16).WillReturnError(errors.New("db"))
	mock.ExpectRollback()
	if _, err := repo.ClaimDue(context.Background(), 16, time.Minute); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestNotificationMarks(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Notifications()
	ctx := context.Background()
	next := time.Now().Add(time.Minute)

	mock.ExpectExec("SET status='SENT'").WithArgs(int64(1)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.MarkSent(ctx, 1); err != nil {
		t.Fatalf("mark sent: %v", err)
	}

	mock.ExpectExec("SET attempts=").WithArgs(int64(2), 3, next, "timeout").WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.MarkFailed(ctx, 2, 3, next, "timeout"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	mock.ExpectExec("SET status='DEAD'").WithArgs(int64(3), 5, "gone").WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.MarkDead(ctx, 3, 5, "gone"); err != nil {
		t.Fatalf("mark dead: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSeed(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	for i, c := range seedCategories {
		mock.ExpectQuery("INSERT INTO categories").
			WithArgs(c.Name, c.Slug, c.Description).
			WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(i + 1)))
	}
	for range seedProducts {
		mock.ExpectExec("INSERT INTO products").WithArgs(anyArgs(15)...).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	}
	for range seedServices {
		mock.ExpectExec("INSERT INTO services").WithArgs(anyArgs(9)...).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	}
	mock.ExpectCommit()

	if err := storage.Seed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSeedFailureRollsBack(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO categories").WithArgs(anyArgs(3)...).WillReturnError(errors.New("db"))
	mock.ExpectRollback()

	if err := storage.Seed(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestGenerateSKU(t *testing.T) {
	sku := generateSKU("Phones")
	if len(sku) != 11 || sku[:3] != "PHO" {
		t.Fatalf("unexpected sku %q", sku)
	}
	if generateSKU("Phones") == sku {
		t.Fatal("expected unique suffix")
	}
	if short := generateSKU("IT"); short[:2] != "IT" || len(short) != 10 {
		t.Fatalf("unexpected short sku %q", short)
	}
}

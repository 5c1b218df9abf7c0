package test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/polkiloo/storefront/internal/domain/cart"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// CatalogRepositoryStub keeps an in-memory catalog and filters it the way
// the SQL repository does.
type CatalogRepositoryStub struct {
	Products      []model.Product
	CategoryList  []model.Category
	ServiceList   []model.Service
	Err           error
	ListedFilters []model.ProductFilter
}

func (s *CatalogRepositoryStub) active() []model.Product {
	var result []model.Product
	for _, p := range s.Products {
		if p.IsActive {
			result = append(result, p)
		}
	}
	return result
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchesSearch(p model.Product, q string) bool {
	return containsFold(p.Name, q) || containsFold(p.ShortDescription, q) || containsFold(p.Brand, q)
}

func (s *CatalogRepositoryStub) filter(filter model.ProductFilter) []model.Product {
	lo, hi := filter.PriceBand.Bounds()
	var result []model.Product
	for _, p := range s.active() {
		if filter.CategorySlug != "" && p.CategorySlug != filter.CategorySlug {
			continue
		}
		if lo != nil && p.Price.LessThan(*lo) {
			continue
		}
		if hi != nil && p.Price.GreaterThan(*hi) {
			continue
		}
		if filter.Search != "" && !matchesSearch(p, filter.Search) {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		switch filter.Sort {
		case model.SortByPriceLow:
			if !a.Price.Equal(b.Price) {
				return a.Price.LessThan(b.Price)
			}
		case model.SortByPriceHigh:
			if !a.Price.Equal(b.Price) {
				return a.Price.GreaterThan(b.Price)
			}
		case model.SortByFeatured:
			if a.IsFeatured != b.IsFeatured {
				return a.IsFeatured
			}
		}
		return a.Name < b.Name
	})
	return result
}

// GetActiveProduct returns an active product by id.
func (s *CatalogRepositoryStub) GetActiveProduct(_ context.Context, id string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Products {
		if p.ID == id && p.IsActive {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrProductNotFound
}

// CountProducts counts matches of filter ignoring pagination.
func (s *CatalogRepositoryStub) CountProducts(_ context.Context, filter model.ProductFilter) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return len(s.filter(filter)), nil
}

// ListProducts returns one page of matches.
func (s *CatalogRepositoryStub) ListProducts(_ context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.ListedFilters = append(s.ListedFilters, filter)
	result := s.filter(filter)
	if filter.Limit <= 0 {
		return result, nil
	}
	if filter.Offset >= len(result) {
		return nil, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(result) {
		end = len(result)
	}
	return result[filter.Offset:end], nil
}

// SearchProducts matches active products in declaration order.
func (s *CatalogRepositoryStub) SearchProducts(_ context.Context, query string, limit int) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.active() {
		if matchesSearch(p, query) {
			result = append(result, p)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

// FeaturedProducts returns up to limit featured active products.
func (s *CatalogRepositoryStub) FeaturedProducts(_ context.Context, limit int) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.active() {
		if p.IsFeatured && len(result) < limit {
			result = append(result, p)
		}
	}
	return result, nil
}

// RelatedProducts returns other active products in the same category.
func (s *CatalogRepositoryStub) RelatedProducts(_ context.Context, product *model.Product, limit int) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.active() {
		if p.CategoryID == product.CategoryID && p.ID != product.ID && len(result) < limit {
			result = append(result, p)
		}
	}
	return result, nil
}

// LowStockProducts returns active products with stock at or below threshold.
func (s *CatalogRepositoryStub) LowStockProducts(_ context.Context, threshold int) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.active() {
		if p.Stock <= threshold {
			result = append(result, p)
		}
	}
	return result, nil
}

// Categories returns configured categories.
func (s *CatalogRepositoryStub) Categories(context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.CategoryList, nil
}

// Services returns active services, optionally only featured ones.
func (s *CatalogRepositoryStub) Services(_ context.Context, featuredOnly bool, limit int) ([]model.Service, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Service
	for _, svc := range s.ServiceList {
		if !svc.IsActive || (featuredOnly && !svc.IsFeatured) {
			continue
		}
		if limit > 0 && len(result) == limit {
			break
		}
		result = append(result, svc)
	}
	return result, nil
}

// OrderRepositoryStub records placed orders in memory.
type OrderRepositoryStub struct {
	PlaceOrderFn func(context.Context, repository.PlaceOrderParams) (*model.Order, error)
	GetByIDFn    func(context.Context, string) (*model.Order, error)
	UpdateFn     func(context.Context, string, model.OrderStatus, model.OrderUpdate) error

	Placed      []repository.PlaceOrderParams
	Orders      map[string]*model.Order
	UpdateCalls []OrderUpdateCall
}

// OrderUpdateCall captures arguments of Update.
type OrderUpdateCall struct {
	ID     string
	From   model.OrderStatus
	Update model.OrderUpdate
}

// PlaceOrder stores the order with its items unless overridden.
func (s *OrderRepositoryStub) PlaceOrder(ctx context.Context, params repository.PlaceOrderParams) (*model.Order, error) {
	s.Placed = append(s.Placed, params)
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, params)
	}
	order := params.Order
	order.Customer = model.Customer{Name: params.Checkout.Name, Phone: params.Checkout.Phone, Email: params.Checkout.Email}
	order.Items = append([]model.OrderItem(nil), params.Items...)
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	s.Orders[order.ID] = &order
	return &order, nil
}

// GetByID returns a stored order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if o, ok := s.Orders[id]; ok {
		order := *o
		return &order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Update applies the edit when the stored status still equals from.
func (s *OrderRepositoryStub) Update(ctx context.Context, id string, from model.OrderStatus, update model.OrderUpdate) error {
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{ID: id, From: from, Update: update})
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, from, update)
	}
	o, ok := s.Orders[id]
	if !ok || o.Status != from {
		return domainErrors.ErrInvalidStatusTransition
	}
	if update.Status != nil {
		o.Status = *update.Status
	}
	if update.PaymentStatus != nil {
		o.PaymentStatus = *update.PaymentStatus
	}
	if update.AdminNote != nil {
		o.AdminNote = *update.AdminNote
	}
	return nil
}

// ContactRepositoryStub records stored messages.
type ContactRepositoryStub struct {
	Err           error
	Messages      []model.ContactMessage
	Notifications []*model.Notification
}

// Create stores msg and its notification.
func (s *ContactRepositoryStub) Create(_ context.Context, msg model.ContactMessage, notification *model.Notification) (*model.ContactMessage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	msg.ID = int64(len(s.Messages) + 1)
	msg.CreatedAt = time.Now()
	s.Messages = append(s.Messages, msg)
	s.Notifications = append(s.Notifications, notification)
	return &msg, nil
}

// FailedCall captures arguments of MarkFailed.
type FailedCall struct {
	ID          int64
	Attempts    int
	NextAttempt time.Time
	LastError   string
}

// DeadCall captures arguments of MarkDead.
type DeadCall struct {
	ID        int64
	Attempts  int
	LastError string
}

// NotificationRepositoryStub is a concurrency safe outbox for worker tests.
type NotificationRepositoryStub struct {
	mu sync.Mutex

	Due       []model.Notification
	ClaimErr  error
	MarkErr   error
	EnqueueFn func(context.Context, model.Notification) (*model.Notification, error)

	Enqueued []model.Notification
	Sent     []int64
	Failed   []FailedCall
	Dead     []DeadCall
	Claims   int
}

// Enqueue appends n to the pending list.
func (s *NotificationRepositoryStub) Enqueue(ctx context.Context, n model.Notification) (*model.Notification, error) {
	if s.EnqueueFn != nil {
		return s.EnqueueFn(ctx, n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = int64(len(s.Enqueued) + 1)
	n.Status = model.NotificationPending
	s.Enqueued = append(s.Enqueued, n)
	return &n, nil
}

// ClaimDue hands out and forgets up to limit due notifications.
func (s *NotificationRepositoryStub) ClaimDue(_ context.Context, limit int, _ time.Duration) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Claims++
	if s.ClaimErr != nil {
		return nil, s.ClaimErr
	}
	if limit > len(s.Due) {
		limit = len(s.Due)
	}
	batch := append([]model.Notification(nil), s.Due[:limit]...)
	s.Due = s.Due[limit:]
	return batch, nil
}

// MarkSent records a delivery.
func (s *NotificationRepositoryStub) MarkSent(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, id)
	return s.MarkErr
}

// MarkFailed records a retry schedule.
func (s *NotificationRepositoryStub) MarkFailed(_ context.Context, id int64, attempts int, next time.Time, lastErr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Failed = append(s.Failed, FailedCall{ID: id, Attempts: attempts, NextAttempt: next, LastError: lastErr})
	return s.MarkErr
}

// MarkDead records a dead letter.
func (s *NotificationRepositoryStub) MarkDead(_ context.Context, id int64, attempts int, lastErr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Dead = append(s.Dead, DeadCall{ID: id, Attempts: attempts, LastError: lastErr})
	return s.MarkErr
}

// Snapshot returns copies of recorded outcomes.
func (s *NotificationRepositoryStub) Snapshot() (sent []int64, failed []FailedCall, dead []DeadCall) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.Sent...), append([]FailedCall(nil), s.Failed...), append([]DeadCall(nil), s.Dead...)
}

// CartStoreStub keeps carts in memory.
type CartStoreStub struct {
	mu sync.Mutex

	Carts     map[string]cart.Cart
	LoadErr   error
	SaveErr   error
	DeleteErr error
	Saves     int
}

// NewCartStoreStub constructs an empty store.
func NewCartStoreStub() *CartStoreStub {
	return &CartStoreStub{Carts: make(map[string]cart.Cart)}
}

// Load returns the stored cart or an empty one.
func (s *CartStoreStub) Load(_ context.Context, sessionID string) (cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return cart.Cart{}, s.LoadErr
	}
	if c, ok := s.Carts[sessionID]; ok {
		return c, nil
	}
	return cart.New(), nil
}

// Save stores c for the session.
func (s *CartStoreStub) Save(_ context.Context, sessionID string, c cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if s.Carts == nil {
		s.Carts = make(map[string]cart.Cart)
	}
	s.Saves++
	s.Carts[sessionID] = c
	return nil
}

// Delete forgets the session cart.
func (s *CartStoreStub) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.Carts, sessionID)
	return nil
}

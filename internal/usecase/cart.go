package usecase

import (
	"context"
	"fmt"

	"github.com/polkiloo/storefront/internal/domain/cart"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// CartResult is the cart state after an operation.
type CartResult struct {
	Cart    cart.Cart
	Totals  cart.Totals
	Message string
}

func newCartResult(c cart.Cart) CartResult {
	return CartResult{Cart: c, Totals: c.Totals()}
}

// CartUseCase applies cart commands to the session cart.
type CartUseCase struct {
	carts   repository.CartStore
	catalog repository.CatalogRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartStore, catalog repository.CatalogRepository) *CartUseCase {
	return &CartUseCase{carts: carts, catalog: catalog}
}

// Summary returns the session cart without modifying it.
func (u *CartUseCase) Summary(ctx context.Context, sessionID string) (CartResult, error) {
	c, err := u.carts.Load(ctx, sessionID)
	if err != nil {
		return CartResult{}, err
	}
	return newCartResult(c), nil
}

// Add puts quantity units of an active product into the cart.
func (u *CartUseCase) Add(ctx context.Context, sessionID, productID string, quantity int) (CartResult, error) {
	current, err := u.carts.Load(ctx, sessionID)
	if err != nil {
		return CartResult{}, err
	}
	if quantity <= 0 {
		return newCartResult(current), domainErrors.ErrInvalidQuantity
	}

	product, err := u.catalog.GetActiveProduct(ctx, productID)
	if err != nil {
		return newCartResult(current), err
	}
	next, err := current.Add(cart.Product{ID: product.ID, Name: product.Name, Price: product.Price}, quantity)
	if err != nil {
		return newCartResult(current), err
	}
	if err := u.carts.Save(ctx, sessionID, next); err != nil {
		return CartResult{}, err
	}

	result := newCartResult(next)
	result.Message = fmt.Sprintf("%s added to cart!", product.Name)
	return result, nil
}

// Remove drops a product line. Removing an absent line succeeds.
func (u *CartUseCase) Remove(ctx context.Context, sessionID, productID string) (CartResult, error) {
	current, err := u.carts.Load(ctx, sessionID)
	if err != nil {
		return CartResult{}, err
	}
	if _, ok := current.Get(productID); !ok {
		return newCartResult(current), nil
	}
	next := current.Remove(productID)
	if err := u.carts.Save(ctx, sessionID, next); err != nil {
		return CartResult{}, err
	}
	return newCartResult(next), nil
}

// UpdateQuantity overwrites the quantity of an existing line. On a domain
// error the returned result reflects the unchanged cart.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (CartResult, error) {
	current, err := u.carts.Load(ctx, sessionID)
	if err != nil {
		return CartResult{}, err
	}
	next, err := current.UpdateQuantity(productID, quantity)
	if err != nil {
		return newCartResult(current), err
	}
	if err := u.carts.Save(ctx, sessionID, next); err != nil {
		return CartResult{}, err
	}
	return newCartResult(next), nil
}

// Clear empties the session cart.
func (u *CartUseCase) Clear(ctx context.Context, sessionID string) error {
	return u.carts.Delete(ctx, sessionID)
}
